// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package grid

import (
	"iter"
	"strings"
)

// Grid is an immutable matrix of characters addressed by (row, column).
type Grid struct {
	rows [][]rune
}

// Build materializes a Grid from lines. Row order follows the input order and
// each line's characters are taken verbatim. No input yields an empty grid.
func Build(lines iter.Seq[string]) *Grid {
	g := &Grid{}
	for line := range lines {
		g.rows = append(g.rows, []rune(line))
	}
	return g
}

// FromRows is a convenience wrapper around Build for literal rows.
func FromRows(rows ...string) *Grid {
	return Build(func(yield func(string) bool) {
		for _, r := range rows {
			if !yield(r) {
				return
			}
		}
	})
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Width returns the length of the given row, or 0 if the row does not exist.
func (g *Grid) Width(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Contains reports whether p addresses an existing cell.
func (g *Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < len(g.rows) && p.Col >= 0 && p.Col < len(g.rows[p.Row])
}

// At returns the character at p. The boolean is false when p is out of bounds.
func (g *Grid) At(p Point) (rune, bool) {
	if !g.Contains(p) {
		return 0, false
	}
	return g.rows[p.Row][p.Col], true
}

// Interior reports whether p has a neighbour on all four sides, measured
// against the row p sits on.
func (g *Grid) Interior(p Point) bool {
	return p.Row >= 1 && p.Row < len(g.rows)-1 &&
		p.Col >= 1 && p.Col < len(g.rows[p.Row])-1
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
