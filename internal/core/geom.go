// Package core provides fundamental types and utilities for the boxworld engine.
// It contains no external dependencies (especially no Bubble Tea) to keep engine
// logic pure and testable.
package core

import "fmt"

// Coord is an integer world coordinate.
// X increases to the right, Y increases downward (screen coordinates).
// It doubles as the lookup key for tiles and entity locations.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns the "x,y" form used in content files and debug output.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Near reports whether other lies within dist tiles of c on both axes (inclusive).
func (c Coord) Near(other Coord, dist int) bool {
	return Abs(c.X-other.X) <= dist && Abs(c.Y-other.Y) <= dist
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
