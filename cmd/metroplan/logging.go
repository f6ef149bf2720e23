package main

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/exp/slog"
)

// LogHandler writes one compact line per record:
//
//	2024/03/01 12:00:00 WARN interchange ignored station="Mandi House" occurrences=1
//
// Attributes added through WithAttrs and WithGroup are prefixed and kept
// in order ahead of the record's own attributes.
type LogHandler struct {
	level  slog.Leveler
	mu     *sync.Mutex
	out    io.Writer
	prefix string   // dotted group path, "" at top level
	pre    []string // rendered attributes from WithAttrs
}

// NewLogHandler creates a handler writing to o. A nil opts logs at info.
func NewLogHandler(o io.Writer, opts *slog.HandlerOptions) *LogHandler {
	h := &LogHandler{out: o, mu: &sync.Mutex{}, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}

	return h
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.pre = append([]string(nil), h.pre...)
	for _, a := range attrs {
		c.pre = appendAttr(c.pre, h.prefix, a)
	}

	return &c
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	strs := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message}
	strs = append(strs, h.pre...)
	r.Attrs(func(a slog.Attr) bool {
		strs = appendAttr(strs, h.prefix, a)
		return true
	})
	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(b)

	return err
}

// appendAttr renders a as key=value, flattening groups into dotted keys.
func appendAttr(dst []string, prefix string, a slog.Attr) []string {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, g := range v.Group() {
			dst = appendAttr(dst, prefix, g)
		}
		return dst
	}
	if a.Key == "" {
		return dst
	}
	s := v.String()
	if needsQuoting(s) {
		s = strconv.Quote(s)
	}

	return append(dst, prefix+a.Key+"="+s)
}

// needsQuoting reports whether s would be ambiguous unquoted.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r == ' ' || r == '=' || r == '"' || r == '\\' || !unicode.IsPrint(r) {
			return true
		}
	}

	return false
}

// newLogger builds the CLI logger for a level name (debug, info, warn, error).
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	return slog.New(NewLogHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
