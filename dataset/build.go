package dataset

import (
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/metroplan/builder"
	"github.com/katalvlaran/metroplan/core"
)

// Build turns the dataset into a sealed graph. Lines are added in file
// order, then the interchanges; configured weights are applied before
// extra opts, so callers can still override them.
func (ds *Dataset) Build(opts ...builder.BuilderOption) (*core.Graph, error) {
	bopts := make([]builder.BuilderOption, 0, len(opts)+2)
	if ds.Weights.Line > 0 {
		bopts = append(bopts, builder.WithLineWeight(ds.Weights.Line))
	}
	if ds.Weights.Transfer > 0 {
		bopts = append(bopts, builder.WithTransferWeight(ds.Weights.Transfer))
	}
	bopts = append(bopts, opts...)

	cons := make([]builder.Constructor, 0, len(ds.Lines)+1)
	for _, l := range ds.Lines {
		cons = append(cons, builder.Line(l.Tag, l.Stations...))
	}
	cons = append(cons, builder.Interchanges(ds.Interchanges...))

	return builder.BuildNetwork(bopts, cons...)
}

// LogValue summarizes the dataset for structured logs.
func (ds *Dataset) LogValue() slog.Value {
	stops := 0
	for _, l := range ds.Lines {
		stops += len(l.Stations)
	}

	return slog.GroupValue(
		slog.String("name", ds.Name),
		slog.Int("lines", len(ds.Lines)),
		slog.Int("stops", stops),
		slog.Int("interchanges", len(ds.Interchanges)),
	)
}
