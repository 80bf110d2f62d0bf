// Package registry provides a global registry for world packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and open worlds without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/boxworld/internal/content"
	"github.com/vovakirdan/boxworld/internal/levels"
)

// Opener builds a fresh pack. Each call returns independent runtime state,
// so one pack can back many concurrent sessions.
type Opener func(c levels.Compiler) (*content.Pack, error)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

type entry struct {
	title string
	open  Opener
}

var (
	packs = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a pack opener to the registry.
// Typically called from a world package's init() function.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, open Opener) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}
	packs[id] = entry{title: title, open: open}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, e := range packs {
		result = append(result, PackInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Open builds a new instance of the pack with the given ID.
// Returns an error if the ID is not registered.
func Open(id string, c levels.Compiler) (*content.Pack, error) {
	mu.RLock()
	e, ok := packs[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}
	return e.open(c)
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
