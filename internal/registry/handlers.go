package registry

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
)

// SolveFunc computes a puzzle answer from the input lines.
type SolveFunc func(ctx context.Context, lines iter.Seq[string]) (int, error)

// RegisteredPuzzle holds the compiled Go parts of one puzzle part.
type RegisteredPuzzle struct {
	Key
	// Title is a short human-readable description used in logs.
	Title string
	Fn    SolveFunc
}

// RegisterPuzzle registers the solver for day and part. Registering the same
// key twice, or a non-positive key, is a programming error and panics.
func (r *Registry) RegisterPuzzle(day, part int, handler *RegisteredPuzzle) {
	key := Key{Day: day, Part: part}
	if day < 1 || part < 1 {
		panic(fmt.Sprintf("invalid puzzle key '%s'", key))
	}
	if handler == nil || handler.Fn == nil {
		panic(fmt.Sprintf("puzzle '%s' registered without a solver", key))
	}
	if _, exists := r.puzzles[key]; exists {
		panic(fmt.Sprintf("puzzle handler for '%s' already registered", key))
	}
	slog.Debug("Registering puzzle handler.", "day", day, "part", part, "title", handler.Title)
	handler.Key = key
	r.puzzles[key] = handler
}
