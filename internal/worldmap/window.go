package worldmap

import "github.com/vovakirdan/boxworld/internal/core"

// WindowCells is the number of cells in every extracted window.
const WindowCells = BlockSize * BlockSize

// Occupant is anything that can stand on a tile.
type Occupant interface {
	Position() core.Coord
}

// Cell is a window tile with its resolved occupant, if any.
type Cell struct {
	Tile
	Occupant Occupant
}

// Window returns the BlockSize x BlockSize neighbourhood centred on offset,
// row-major. The top-left corner is offset - BlockSize/2 on both axes, which
// is the ceiling of offset - BlockSize/2.0 for integer offsets.
// Cells outside the grid are blank; the window never shrinks.
func Window(offset core.Coord, g Grid, occupants []Occupant) []Cell {
	half := BlockSize / 2
	rowStart := offset.Y - half
	colStart := offset.X - half

	out := make([]Cell, 0, WindowCells)
	for y := rowStart; y < rowStart+BlockSize; y++ {
		for x := colStart; x < colStart+BlockSize; x++ {
			t, ok := g.At(core.C(x, y))
			if !ok {
				out = append(out, Cell{Tile: Tile{Blank: true}})
				continue
			}
			out = append(out, Cell{Tile: t, Occupant: occupantAt(t.ID, occupants)})
		}
	}
	return out
}

func occupantAt(c core.Coord, occupants []Occupant) Occupant {
	for _, o := range occupants {
		if o.Position() == c {
			return o
		}
	}
	return nil
}

// Increment maps a direction to its unit step.
func Increment(d core.Direction) core.Coord {
	return d.Delta()
}
