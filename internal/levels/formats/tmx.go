package formats

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

// Layer names read from Tiled maps.
const (
	TMXGround     = "ground"
	TMXForeground = "foreground"
	TMXOverlay    = "overlay"
)

// TMXLayers is a Tiled map flattened into tag rows per layer.
type TMXLayers struct {
	Width      int
	Height     int
	Ground     [][]string
	Foreground [][]string
	Overlay    [][]string
}

// ParseTMX loads a Tiled map from fsys. Each tile becomes its tileset tile's
// "tag" property, or the tileset name when the tile has none. Layers other
// than ground, foreground and overlay are ignored.
func ParseTMX(fsys fs.FS, name string) (TMXLayers, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return TMXLayers{}, err
	}
	defer f.Close()

	m, err := tiled.LoadReader(path.Dir(name), f, tiled.WithFileSystem(fsys))
	if err != nil {
		return TMXLayers{}, fmt.Errorf("tiled: %w", err)
	}

	out := TMXLayers{Width: m.Width, Height: m.Height}
	for _, layer := range m.Layers {
		var dst *[][]string
		switch layer.Name {
		case TMXGround:
			dst = &out.Ground
		case TMXForeground:
			dst = &out.Foreground
		case TMXOverlay:
			dst = &out.Overlay
		default:
			continue
		}
		*dst = layerRows(m, layer)
	}
	return out, nil
}

func layerRows(m *tiled.Map, layer *tiled.Layer) [][]string {
	rows := make([][]string, m.Height)
	for y := 0; y < m.Height; y++ {
		rows[y] = make([]string, m.Width)
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if idx >= len(layer.Tiles) {
				continue
			}
			rows[y][x] = tileTag(layer.Tiles[idx])
		}
	}
	return rows
}

func tileTag(tile *tiled.LayerTile) string {
	if tile == nil || tile.IsNil() || tile.Tileset == nil {
		return ""
	}
	for _, t := range tile.Tileset.Tiles {
		if t.ID != tile.ID {
			continue
		}
		if tag := t.Properties.GetString("tag"); tag != "" {
			return tag
		}
	}
	return tile.Tileset.Name
}
