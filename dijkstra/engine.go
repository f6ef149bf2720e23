package dijkstra

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metroplan/bfs"
	"github.com/katalvlaran/metroplan/core"
)

// DefaultCacheSize is the number of shortest-path trees an Engine keeps.
const DefaultCacheSize = 64

// Path is a resolved shortest route between two vertices.
type Path struct {
	Source   int
	Target   int
	Distance int64
	Vertices []int // Source first, Target last
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	cacheSize int
	tree      []Option
	logger    *slog.Logger
}

// WithCacheSize bounds the LRU cache of trees; 0 disables caching.
// Panics with ErrBadCacheSize on a negative size.
func WithCacheSize(n int) EngineOption {
	if n < 0 {
		panic(ErrBadCacheSize.Error())
	}

	return func(c *engineConfig) { c.cacheSize = n }
}

// WithTreeOptions forwards options to every Dijkstra run.
func WithTreeOptions(opts ...Option) EngineOption {
	return func(c *engineConfig) { c.tree = append(c.tree, opts...) }
}

// WithLogger sets the engine logger; nil keeps it silent.
func WithLogger(l *slog.Logger) EngineOption {
	return func(c *engineConfig) { c.logger = l }
}

// Engine answers repeated shortest-path queries over one sealed graph.
//
// Trees are memoized per source in a bounded LRU cache and component labels
// are computed once, so an unreachable pair is rejected without a search.
// The graph is immutable after Seal and the cache is internally locked,
// so an Engine is safe for concurrent use.
type Engine struct {
	g     *core.Graph
	tree  []Option
	comp  []int
	cache *lru.Cache[int, *Tree] // nil when caching is off
	log   *slog.Logger
}

// NewEngine prepares an Engine for g.
// Errors: ErrNilGraph, ErrGraphNotSealed.
func NewEngine(g *core.Graph, opts ...EngineOption) (*Engine, error) {
	cfg := engineConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Sealed() {
		return nil, ErrGraphNotSealed
	}

	comp, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: components: %w", err)
	}

	e := &Engine{g: g, tree: cfg.tree, comp: comp, log: cfg.logger}
	if cfg.cacheSize > 0 {
		if e.cache, err = lru.New[int, *Tree](cfg.cacheSize); err != nil {
			return nil, fmt.Errorf("dijkstra: cache: %w", err)
		}
	}

	return e, nil
}

// Graph returns the network the engine searches.
func (e *Engine) Graph() *core.Graph { return e.g }

// Tree returns the shortest-path tree rooted at source, from cache when
// possible. The returned Tree is shared and must not be modified.
func (e *Engine) Tree(source int) (*Tree, error) {
	if e.cache != nil {
		if t, ok := e.cache.Get(source); ok {
			return t, nil
		}
	}
	t, err := Dijkstra(e.g, source, e.tree...)
	if err != nil {
		return nil, err
	}
	if e.cache != nil {
		e.cache.Add(source, t)
	}
	if e.log != nil {
		e.log.Debug("shortest-path tree computed", "source", source, "station", e.g.Name(source))
	}

	return t, nil
}

// Connected reports whether some path joins vertices a and b, ignoring any
// MaxDistance cap. Out-of-range indices are never connected.
func (e *Engine) Connected(a, b int) bool {
	n := len(e.comp)
	if a < 0 || a >= n || b < 0 || b >= n {
		return false
	}

	return e.comp[a] == e.comp[b]
}

// Between returns the shortest path from vertex a to vertex b.
// Errors: ErrVertexNotFound, ErrUnreachable.
func (e *Engine) Between(a, b int) (Path, error) {
	n := e.g.VertexCount()
	if b < 0 || b >= n {
		return Path{}, fmt.Errorf("%w: target %d of %d", ErrVertexNotFound, b, n)
	}
	if a >= 0 && a < n && !e.Connected(a, b) {
		return Path{}, fmt.Errorf("%d → %d: %w", a, b, ErrUnreachable)
	}
	t, err := e.Tree(a)
	if err != nil {
		return Path{}, err
	}

	return pathFrom(t, b)
}

// BetweenStations returns the shortest path between any occurrence of src
// and any occurrence of dst. Sources are tried in insertion order and
// targets likewise; among equal distances the first pair found wins.
//
// Errors: ErrUnknownStation, ErrUnreachable.
// Complexity: O(k·V²) for k occurrences of src on a cold cache.
func (e *Engine) BetweenStations(src, dst string) (Path, error) {
	from := e.g.Indices(src)
	if len(from) == 0 {
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownStation, src)
	}
	to := e.g.Indices(dst)
	if len(to) == 0 {
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownStation, dst)
	}

	var (
		best   *Tree
		target = -1
		dist   = Unreachable
	)
	for _, s := range from {
		if !slices.ContainsFunc(to, func(d int) bool { return e.Connected(s, d) }) {
			continue
		}
		t, err := e.Tree(s)
		if err != nil {
			return Path{}, err
		}
		for _, d := range to {
			if t.Dist[d].Less(dist) {
				best, target, dist = t, d, t.Dist[d]
			}
		}
	}
	if best == nil {
		return Path{}, fmt.Errorf("%q → %q: %w", src, dst, ErrUnreachable)
	}

	return pathFrom(best, target)
}

// StationDistance returns the shortest distance between two stations.
func (e *Engine) StationDistance(src, dst string) (int64, error) {
	p, err := e.BetweenStations(src, dst)
	if err != nil {
		return 0, err
	}

	return p.Distance, nil
}

func pathFrom(t *Tree, target int) (Path, error) {
	vs, err := t.PathTo(target)
	if err != nil {
		return Path{}, err
	}

	return Path{Source: t.Source, Target: target, Distance: t.Dist[target].v, Vertices: vs}, nil
}
