package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// ErrUnknownPuzzle is returned when no solver is registered for a key.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// Module is the interface that all puzzle modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Key identifies one part of one day's puzzle.
type Key struct {
	Day  int
	Part int
}

func (k Key) String() string {
	return fmt.Sprintf("day %d part %d", k.Day, k.Part)
}

// Registry holds all registered puzzle solvers for a single application instance.
type Registry struct {
	puzzles map[Key]*RegisteredPuzzle
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		puzzles: make(map[Key]*RegisteredPuzzle),
	}
}

// Len returns the number of registered solvers.
func (r *Registry) Len() int {
	return len(r.puzzles)
}

// Keys returns every registered key ordered by day, then part.
func (r *Registry) Keys() []Key {
	return slices.SortedFunc(maps.Keys(r.puzzles), func(a, b Key) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.Part - b.Part
	})
}

// Lookup returns the solver registered for day and part.
func (r *Registry) Lookup(day, part int) (*RegisteredPuzzle, error) {
	p, ok := r.puzzles[Key{Day: day, Part: part}]
	if !ok {
		return nil, fmt.Errorf("%w: day %d part %d", ErrUnknownPuzzle, day, part)
	}
	return p, nil
}

// Parts returns the solvers registered for day, ordered by part.
func (r *Registry) Parts(day int) []*RegisteredPuzzle {
	var parts []*RegisteredPuzzle
	for _, k := range r.Keys() {
		if k.Day == day {
			parts = append(parts, r.puzzles[k])
		}
	}
	return parts
}

// LatestDay returns the highest registered day, or 0 for an empty registry.
func (r *Registry) LatestDay() int {
	latest := 0
	for k := range r.puzzles {
		latest = max(latest, k.Day)
	}
	slog.Debug("Latest registered day resolved.", "day", latest)
	return latest
}
