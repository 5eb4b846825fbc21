// Package day02 registers the report safety puzzles.
package day02

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/numutil"
	"github.com/vk/gridsolve/internal/registry"
)

const (
	minStep = 1
	maxStep = 3
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// IsSafe reports whether levels move strictly in one direction by steps of
// 1 to 3. Reports with fewer than two levels are safe.
func IsSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		prev, curr := levels[i-1], levels[i]
		if d := numutil.AbsDiff(curr, prev); d < minStep || d > maxStep {
			return false
		}
		if (curr > prev) != increasing {
			return false
		}
	}
	return true
}

// IsSafeWithDampener reports whether levels are safe as-is or after removing
// exactly one level.
func IsSafeWithDampener(levels []int) bool {
	if IsSafe(levels) {
		return true
	}
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = buf[:0]
		buf = append(buf, levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if IsSafe(buf) {
			return true
		}
	}
	return false
}

func countReports(ctx context.Context, lines iter.Seq[string], safe func([]int) bool) (int, error) {
	count, n := 0, 0
	for line := range lines {
		n++
		if strings.TrimSpace(line) == "" {
			continue
		}
		levels, err := numutil.Ints(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", n, err)
		}
		if safe(levels) {
			count++
		}
	}
	ctxlog.FromContext(ctx).Debug("Reports checked.", "lines", n, "safe", count)
	return count, nil
}

// CountSafe counts the safe reports.
func CountSafe(ctx context.Context, lines iter.Seq[string]) (int, error) {
	return countReports(ctx, lines, IsSafe)
}

// CountSafeWithDampener counts reports that are safe with one level removed.
func CountSafeWithDampener(ctx context.Context, lines iter.Seq[string]) (int, error) {
	return countReports(ctx, lines, IsSafeWithDampener)
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(2, 1, &registry.RegisteredPuzzle{
		Title: "safe reports",
		Fn:    CountSafe,
	})
	r.RegisterPuzzle(2, 2, &registry.RegisteredPuzzle{
		Title: "safe reports with dampener",
		Fn:    CountSafeWithDampener,
	})
}
