// Package day03 registers the corrupted instruction puzzles.
package day03

import (
	"context"
	"iter"
	"regexp"
	"strconv"

	"github.com/vk/gridsolve/internal/ctxlog"
	"github.com/vk/gridsolve/internal/registry"
)

// instructionRx matches mul(A,B) with 1-3 digit operands, do() and don't().
var instructionRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Module implements the registry.Module interface for this package.
type Module struct{}

// scan sums the products of every enabled mul. With toggles set, don't()
// disables and do() re-enables later muls; the state carries across lines.
func scan(ctx context.Context, lines iter.Seq[string], toggles bool) int {
	total, muls := 0, 0
	enabled := true
	for line := range lines {
		for _, m := range instructionRx.FindAllStringSubmatch(line, -1) {
			switch m[0] {
			case "do()":
				enabled = true
			case "don't()":
				enabled = !toggles
			default:
				if !enabled {
					continue
				}
				// Operands are at most three digits, Atoi cannot fail.
				a, _ := strconv.Atoi(m[1])
				b, _ := strconv.Atoi(m[2])
				total += a * b
				muls++
			}
		}
	}
	ctxlog.FromContext(ctx).Debug("Instructions scanned.", "muls", muls, "toggles", toggles)
	return total
}

// SumProducts adds up the result of every mul instruction.
func SumProducts(ctx context.Context, lines iter.Seq[string]) (int, error) {
	return scan(ctx, lines, false), nil
}

// SumEnabledProducts adds up the mul instructions left enabled by do()/don't().
func SumEnabledProducts(ctx context.Context, lines iter.Seq[string]) (int, error) {
	return scan(ctx, lines, true), nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(3, 1, &registry.RegisteredPuzzle{
		Title: "sum of mul instructions",
		Fn:    SumProducts,
	})
	r.RegisterPuzzle(3, 2, &registry.RegisteredPuzzle{
		Title: "sum of enabled mul instructions",
		Fn:    SumEnabledProducts,
	})
}
