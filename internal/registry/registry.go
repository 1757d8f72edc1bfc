// Package registry provides a global catalog of built-in level layouts.
// Layouts register themselves in init() functions, allowing the game and the CLI
// to look them up by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh copy of a layout.
type Factory func() level.Level

type entry struct {
	title   string
	factory Factory
}

var (
	layouts = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a layout to the catalog.
// Typically called from an init() function.
// Panics if a layout with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := layouts[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	layouts[id] = entry{title: title, factory: f}
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(layouts))
	for id, e := range layouts {
		result = append(result, LayoutInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new copy of the layout with the given ID.
// Returns an error if the ID is not registered.
func Create(id string) (level.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := layouts[id]
	if !ok {
		return level.Level{}, fmt.Errorf("registry: unknown layout %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := layouts[id]
	return ok
}
