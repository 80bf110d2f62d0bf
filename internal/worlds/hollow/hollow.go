// Package hollow is the built-in world pack. Its content ships inside the
// binary and registers itself with the pack registry.
package hollow

import (
	"embed"
	"io/fs"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/levels"
	"github.com/vovakirdan/boxworld/internal/registry"
)

// ID is the registry identifier.
const ID = "hollow"

//go:embed pack/*.yaml
var packFS embed.FS

func init() {
	registry.Register(ID, "The Hollow", Open)
}

// Open loads a fresh copy of the pack.
func Open(c levels.Compiler) (*content.Pack, error) {
	sub, err := fs.Sub(packFS, "pack")
	if err != nil {
		return nil, err
	}
	l := &levels.Loader{FS: sub, Compiler: c}
	return l.LoadPack()
}
