// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package grid

import "fmt"

// Point is a cell address. Indices are 0-based.
type Point struct {
	Row, Col int
}

// Add returns p moved one step in direction d.
func (p Point) Add(d Direction) Point {
	return Point{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a unit step on the grid. Both deltas are in {-1, 0, 1} and
// they are never both zero.
type Direction struct {
	DRow, DCol int
}

var (
	North     = Direction{DRow: -1}
	NorthEast = Direction{DRow: -1, DCol: +1}
	East      = Direction{DCol: +1}
	SouthEast = Direction{DRow: +1, DCol: +1}
	South     = Direction{DRow: +1}
	SouthWest = Direction{DRow: +1, DCol: -1}
	West      = Direction{DCol: -1}
	NorthWest = Direction{DRow: -1, DCol: -1}
)

// Compass lists the eight directions clockwise from North.
var Compass = [8]Direction{
	North, NorthEast, East, SouthEast,
	South, SouthWest, West, NorthWest,
}

// Reverse returns the direction pointing the opposite way.
func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

var directionNames = map[Direction]string{
	North: "N", NorthEast: "NE", East: "E", SouthEast: "SE",
	South: "S", SouthWest: "SW", West: "W", NorthWest: "NW",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction{%d,%d}", d.DRow, d.DCol)
}
