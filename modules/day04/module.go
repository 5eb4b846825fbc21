// Package day04 registers the grid word search puzzles.
package day04

import (
	"context"
	"iter"

	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/grid"
	"github.com/vk/gridsolve/internal/registry"
	"github.com/vk/gridsolve/internal/wordsearch"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// CountXMAS counts every straight-line XMAS in the grid, in all eight directions.
func CountXMAS(ctx context.Context, lines iter.Seq[string]) (int, error) {
	g := grid.Build(lines)
	ctxlog.FromContext(ctx).Debug("Grid built.", "rows", g.Rows(), "word", wordsearch.Word)
	return wordsearch.CountWord(g, wordsearch.Word), nil
}

// CountCrossMAS counts the cells at the centre of two diagonal MAS words.
func CountCrossMAS(ctx context.Context, lines iter.Seq[string]) (int, error) {
	g := grid.Build(lines)
	ctxlog.FromContext(ctx).Debug("Grid built.", "rows", g.Rows(), "word", wordsearch.CrossWord)
	return wordsearch.CountCrosses(g), nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(4, 1, &registry.RegisteredPuzzle{
		Title: "XMAS word search",
		Fn:    CountXMAS,
	})
	r.RegisterPuzzle(4, 2, &registry.RegisteredPuzzle{
		Title: "X-MAS crosses",
		Fn:    CountCrossMAS,
	})
}
