// Package levels loads world packs: a world.yaml plus one YAML document per
// level, optionally backed by Tiled maps.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/levels/formats"
)

// WorldFile is the pack manifest name.
const WorldFile = "world.yaml"

// Compiler turns script source into predicates and effects.
// *script.VM implements it.
type Compiler interface {
	Predicate(expr string) (content.Predicate, error)
	Effect(body string) (content.Effect, error)
}

// Loader reads packs from a file system.
type Loader struct {
	FS       fs.FS
	Compiler Compiler // nil rejects content that carries Lua
}

// NewLoader creates a loader rooted at dir on disk.
func NewLoader(dir string, c Compiler) *Loader {
	return &Loader{FS: os.DirFS(dir), Compiler: c}
}

// LoadPack reads world.yaml and every level document next to it.
// Levels are ordered by file name for determinism.
func (l *Loader) LoadPack() (*content.Pack, error) {
	data, err := fs.ReadFile(l.FS, WorldFile)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", WorldFile, err)
	}
	world, err := formats.ParseYAMLWorld(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", WorldFile, err)
	}

	files, err := l.levelFiles()
	if err != nil {
		return nil, err
	}

	pack := &content.Pack{
		ID:         world.ID,
		Title:      world.Title,
		Byline:     world.Byline,
		StartLevel: world.Start,
	}
	b := &builder{compiler: l.Compiler, items: world.Items, fsys: l.FS}
	for _, name := range files {
		lvl, err := l.loadLevel(b, name)
		if err != nil {
			return nil, err
		}
		pack.Levels = append(pack.Levels, lvl)
	}

	if err := ValidatePack(pack); err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return pack, nil
}

// ListLevels returns the level file names the pack would load.
func (l *Loader) ListLevels() ([]string, error) {
	return l.levelFiles()
}

func (l *Loader) loadLevel(b *builder, name string) (*content.Level, error) {
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", name, err)
	}
	yl, err := formats.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", name, err)
	}
	if yl.ID == "" {
		yl.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	lvl, err := b.level(yl, path.Dir(name))
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return lvl, nil
}

func (l *Loader) levelFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || p == WorldFile {
			return nil
		}
		if isSupportedExtension(strings.ToLower(path.Ext(p))) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking pack: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
