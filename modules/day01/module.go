// Package day01 registers the list distance and similarity puzzles.
package day01

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/numutil"
	"github.com/vk/gridsolve/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// parseLists splits each non-blank line into a left and a right value.
func parseLists(lines iter.Seq[string]) (left, right []int, err error) {
	n := 0
	for line := range lines {
		n++
		if strings.TrimSpace(line) == "" {
			continue
		}
		nums, err := numutil.Ints(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", n, err)
		}
		if len(nums) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 2 numbers, got %d", n, len(nums))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	return left, right, nil
}

// TotalDistance pairs the smallest left value with the smallest right value,
// and so on upwards, and sums the distances of the pairs.
func TotalDistance(ctx context.Context, lines iter.Seq[string]) (int, error) {
	left, right, err := parseLists(lines)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)
	ctxlog.FromContext(ctx).Debug("Lists sorted.", "left", len(left), "right", len(right))

	total := 0
	for i, l := range left {
		r := 0 // a missing partner counts as zero
		if i < len(right) {
			r = right[i]
		}
		total += numutil.AbsDiff(l, r)
	}
	return total, nil
}

// Similarity sums each left value multiplied by how often it occurs on the right.
func Similarity(ctx context.Context, lines iter.Seq[string]) (int, error) {
	left, right, err := parseLists(lines)
	if err != nil {
		return 0, err
	}

	counts := make(map[int]int, len(right))
	for _, r := range right {
		counts[r]++
	}
	ctxlog.FromContext(ctx).Debug("Right list counted.", "distinct", len(counts))

	score := 0
	for _, l := range left {
		score += l * counts[l]
	}
	return score, nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(1, 1, &registry.RegisteredPuzzle{
		Title: "total list distance",
		Fn:    TotalDistance,
	})
	r.RegisterPuzzle(1, 2, &registry.RegisteredPuzzle{
		Title: "list similarity score",
		Fn:    Similarity,
	})
}
