// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package wordsearch

import "github.com/vk/gridsolve/internal/grid"

// CrossWord is the diagonal word of an X cross. A diagonal may also read it
// backwards.
const CrossWord = "MAS"

// crossSequences holds the accepted diagonal readings: the word and its reverse.
var crossSequences = [2]string{CrossWord, "SAM"}

// IsCrossAt reports whether both diagonals through p read one of the accepted
// sequences. Cells without a full one-cell margin never qualify.
func IsCrossAt(g *grid.Grid, p grid.Point) bool {
	if !g.Interior(p) {
		return false
	}
	// top-left to bottom-right, then top-right to bottom-left
	diagonals := [2][3]grid.Point{
		{p.Add(grid.NorthWest), p, p.Add(grid.SouthEast)},
		{p.Add(grid.NorthEast), p, p.Add(grid.SouthWest)},
	}
	for _, diag := range diagonals {
		if !acceptedDiagonal(g, diag) {
			return false
		}
	}
	return true
}

// CountCrosses returns the number of cells in g that are the centre of a cross.
func CountCrosses(g *grid.Grid) int {
	return g.Count(IsCrossAt)
}

func acceptedDiagonal(g *grid.Grid, cells [3]grid.Point) bool {
	var word [3]rune
	for i, c := range cells {
		r, ok := g.At(c)
		if !ok {
			// The row above or below may be shorter than the centre row.
			return false
		}
		word[i] = r
	}
	s := string(word[:])
	for _, seq := range crossSequences {
		if s == seq {
			return true
		}
	}
	return false
}
