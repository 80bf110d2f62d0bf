package worldmap

import "github.com/vovakirdan/boxworld/internal/core"

// Block is one BlockSize x BlockSize layer of tags, indexed [row][col].
type Block [][]string

// Blocks is a layer split into blocks, indexed [blockRow][blockCol].
type Blocks [][]Block

// Assemble stitches three parallel block layers into one grid.
// Block (br, bc) row r column c lands at x = bc*BlockSize+c, y = br*BlockSize+r.
func Assemble(ground, fg, overlay Blocks) Grid {
	blockRows := len(ground)
	if blockRows == 0 {
		return Grid{}
	}
	blockCols := len(ground[0])

	grid := make(Grid, 0, blockRows*BlockSize)
	for y := 0; y < blockRows*BlockSize; y++ {
		br := y / BlockSize
		r := y - br*BlockSize
		row := make([]Tile, 0, blockCols*BlockSize)
		for bc := 0; bc < blockCols; bc++ {
			for c := 0; c < BlockSize; c++ {
				row = append(row, Tile{
					ID:         core.C(bc*BlockSize+c, y),
					Ground:     blockCell(ground, br, bc, r, c),
					Foreground: blockCell(fg, br, bc, r, c),
					Overlay:    blockCell(overlay, br, bc, r, c),
				})
			}
		}
		grid = append(grid, row)
	}
	return grid
}

// AssembleBlock builds a grid for a standalone BlockSize x BlockSize room.
func AssembleBlock(ground, fg, overlay Block) Grid {
	grid := make(Grid, BlockSize)
	for y := 0; y < BlockSize; y++ {
		grid[y] = make([]Tile, BlockSize)
		for x := 0; x < BlockSize; x++ {
			grid[y][x] = Tile{
				ID:         core.C(x, y),
				Ground:     cell(ground, y, x),
				Foreground: cell(fg, y, x),
				Overlay:    cell(overlay, y, x),
			}
		}
	}
	return grid
}

// SplitBlocks cuts a row-major layer whose sides are multiples of BlockSize
// into blocks. Ragged edges are padded with empty cells.
func SplitBlocks(rows [][]string) Blocks {
	h := len(rows)
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	blockRows := (h + BlockSize - 1) / BlockSize
	blockCols := (w + BlockSize - 1) / BlockSize

	out := make(Blocks, blockRows)
	for br := range out {
		out[br] = make([]Block, blockCols)
		for bc := range out[br] {
			b := make(Block, BlockSize)
			for r := range b {
				b[r] = make([]string, BlockSize)
				for c := range b[r] {
					b[r][c] = cell(rows, br*BlockSize+r, bc*BlockSize+c)
				}
			}
			out[br][bc] = b
		}
	}
	return out
}

func blockCell(layer Blocks, br, bc, r, c int) string {
	if br >= len(layer) || bc >= len(layer[br]) {
		return ""
	}
	return cell(layer[br][bc], r, c)
}

func cell(rows [][]string, r, c int) string {
	if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}
