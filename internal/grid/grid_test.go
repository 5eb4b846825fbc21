package grid

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("rows follow input order", func(t *testing.T) {
		g := Build(slices.Values([]string{"ABC", "DEF"}))

		require.Equal(t, 2, g.Rows())
		want := [][]rune{[]rune("ABC"), []rune("DEF")}
		if diff := cmp.Diff(want, g.rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty input yields empty grid", func(t *testing.T) {
		g := Build(slices.Values([]string{}))
		assert.Equal(t, 0, g.Rows())
		assert.Equal(t, 0, g.Width(0))
		assert.Equal(t, "", g.String())
	})

	t.Run("characters are taken verbatim", func(t *testing.T) {
		g := FromRows(" xM", "é.")
		r, ok := g.At(Point{0, 0})
		require.True(t, ok)
		assert.Equal(t, ' ', r)
		r, ok = g.At(Point{0, 1})
		require.True(t, ok)
		assert.Equal(t, 'x', r)
		r, ok = g.At(Point{1, 0})
		require.True(t, ok)
		assert.Equal(t, 'é', r)
		assert.Equal(t, 2, g.Width(1))
	})
}

func TestContains_RaggedRows(t *testing.T) {
	g := FromRows("ABCD", "E", "FG")

	assert.True(t, g.Contains(Point{0, 3}))
	assert.False(t, g.Contains(Point{1, 1}), "row 1 has a single column")
	assert.True(t, g.Contains(Point{2, 1}))
	assert.False(t, g.Contains(Point{3, 0}))
	assert.False(t, g.Contains(Point{-1, 0}))
	assert.False(t, g.Contains(Point{0, -1}))

	_, ok := g.At(Point{1, 2})
	assert.False(t, ok)
}

func TestInterior(t *testing.T) {
	g := FromRows("...", "...", "...")

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			p := Point{row, col}
			assert.Equal(t, row == 1 && col == 1, g.Interior(p), "cell %s", p)
		}
	}

	ragged := FromRows("....", "..", "....")
	assert.False(t, ragged.Interior(Point{1, 1}), "last column of a short row is an edge")
}

func TestCompass(t *testing.T) {
	seen := make(map[Direction]bool)
	for _, d := range Compass {
		assert.False(t, d.DRow == 0 && d.DCol == 0, "zero vector in compass")
		assert.LessOrEqual(t, abs(d.DRow), 1)
		assert.LessOrEqual(t, abs(d.DCol), 1)
		assert.False(t, seen[d], "duplicate direction %s", d)
		seen[d] = true
	}
	assert.Len(t, seen, 8)

	for _, d := range Compass {
		assert.True(t, seen[d.Reverse()], "reverse of %s missing", d)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{2, 2}
	assert.Equal(t, Point{1, 3}, p.Add(NorthEast))
	assert.Equal(t, Point{3, 1}, p.Add(SouthWest))
	assert.Equal(t, p, p.Add(West).Add(East))
	assert.Equal(t, "SE", SouthEast.String())
	assert.Equal(t, "(2,2)", p.String())
}

func TestScan(t *testing.T) {
	t.Run("visits every cell once in row-major order", func(t *testing.T) {
		g := FromRows("ab", "c", "de")
		var visited []Point

		total := g.Scan(func(_ *Grid, p Point) int {
			visited = append(visited, p)
			return 1
		})

		want := []Point{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {2, 1}}
		assert.Equal(t, 5, total)
		if diff := cmp.Diff(want, visited); diff != "" {
			t.Errorf("visit order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("count sums boolean results", func(t *testing.T) {
		g := FromRows("XAX", "AXA")
		n := g.Count(func(g *Grid, p Point) bool {
			r, _ := g.At(p)
			return r == 'X'
		})
		assert.Equal(t, 3, n)
	})

	t.Run("empty grid scans to zero", func(t *testing.T) {
		g := FromRows()
		assert.Zero(t, g.Scan(func(*Grid, Point) int { return 1 }))
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
