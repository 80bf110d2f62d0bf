// Package worldmap assembles layered tile grids and extracts the fixed-size
// window the engine renders and collides against. Everything here is a pure
// function of its inputs.
package worldmap

import (
	"strings"

	"github.com/vovakirdan/boxworld/internal/core"
)

// BlockSize is the side of one map block and of the visible window.
const BlockSize = 11

// BlankKey is the key reported for synthesized out-of-range tiles.
const BlankKey = "blank"

// blockingMaterials are foreground tags that stop movement.
var blockingMaterials = []string{"wall", "stem", "fence"}

// Tile is one map cell with up to three stacked layers.
// Empty layer strings mean the layer is absent.
type Tile struct {
	ID         core.Coord
	Blank      bool
	Ground     string
	Foreground string
	Overlay    string
}

// Key returns "blank" for synthesized tiles and "x,y" otherwise.
func (t Tile) Key() string {
	if t.Blank {
		return BlankKey
	}
	return t.ID.String()
}

// Empty reports whether the tile has no layers at all.
func (t Tile) Empty() bool {
	return t.Ground == "" && t.Foreground == "" && t.Overlay == ""
}

// Blocking reports whether the foreground layer is a blocking material.
func (t Tile) Blocking() bool {
	return IsBlocking(t.Foreground)
}

// IsBlocking reports whether a foreground tag contains any blocking material.
func IsBlocking(tag string) bool {
	if tag == "" {
		return false
	}
	for _, m := range blockingMaterials {
		if strings.Contains(tag, m) {
			return true
		}
	}
	return false
}

// Grid is a row-major tile grid: Grid[y][x] has ID (x, y).
type Grid [][]Tile

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns of the first row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the tile at c and whether the grid has data there.
// Missing data is open floor for collision purposes.
func (g Grid) At(c core.Coord) (Tile, bool) {
	if c.Y < 0 || c.Y >= len(g) {
		return Tile{}, false
	}
	row := g[c.Y]
	if c.X < 0 || c.X >= len(row) {
		return Tile{}, false
	}
	return row[c.X], true
}

// Blocked reports whether the tile at c blocks movement.
func (g Grid) Blocked(c core.Coord) bool {
	t, ok := g.At(c)
	return ok && t.Blocking()
}
