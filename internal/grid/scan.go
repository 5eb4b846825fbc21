// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package grid

// CellFunc inspects a single cell and returns its contribution to the total.
type CellFunc func(g *Grid, p Point) int

// Scan visits every cell exactly once in row-major order and returns the sum
// of fn over all of them.
func (g *Grid) Scan(fn CellFunc) int {
	total := 0
	for row := range g.rows {
		for col := range g.rows[row] {
			total += fn(g, Point{Row: row, Col: col})
		}
	}
	return total
}

// Count is Scan for boolean detectors.
func (g *Grid) Count(pred func(g *Grid, p Point) bool) int {
	return g.Scan(func(g *Grid, p Point) int {
		if pred(g, p) {
			return 1
		}
		return 0
	})
}
