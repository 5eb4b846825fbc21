// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package wordsearch

import "github.com/vk/gridsolve/internal/grid"

// Word is the word counted by the straight-line search.
const Word = "XMAS"

// Matches reports whether word reads from start stepping by d. The start cell
// holds the first character.
func Matches(g *grid.Grid, d grid.Direction, word string, start grid.Point) bool {
	p := start
	for _, want := range word {
		got, ok := g.At(p)
		if !ok || got != want {
			return false
		}
		p = p.Add(d)
	}
	return true
}

// CountAt returns how many compass directions spell word from p. The result
// is always in [0, 8].
func CountAt(g *grid.Grid, p grid.Point, word string) int {
	n := 0
	for _, d := range grid.Compass {
		if Matches(g, d, word, p) {
			n++
		}
	}
	return n
}

// CountWord returns the number of occurrences of word in g across all cells
// and directions.
func CountWord(g *grid.Grid, word string) int {
	return g.Scan(func(g *grid.Grid, p grid.Point) int {
		return CountAt(g, p, word)
	})
}
