// Package registry holds the built-in mazes. Mazes register themselves in
// init() functions, allowing the command line and the level resolver to
// list and look them up by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/maze-chase/internal/maze"
)

// DefaultID names the maze used when nothing else is selected.
const DefaultID = "classic"

// Entry is a registered maze layout in the plain legend format.
type Entry struct {
	ID    string
	Title string
	Text  string
}

// Maze parses the entry's layout.
func (e Entry) Maze() *maze.Maze {
	return maze.Parse(e.Text)
}

// Info contains metadata about a registered maze.
type Info struct {
	ID     string
	Title  string
	Width  int
	Height int
}

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds a maze to the registry.
// Panics if a maze with the same ID is already registered.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[e.ID]; exists {
		panic(fmt.Sprintf("registry: maze %q already registered", e.ID))
	}
	entries[e.ID] = e
}

// List returns information about all registered mazes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		m := e.Maze()
		result = append(result, Info{
			ID:     e.ID,
			Title:  e.Title,
			Width:  m.Width(),
			Height: m.Height(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered maze by its ID.
func Get(id string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("registry: unknown maze %q", id)
	}
	return e, nil
}

// Exists checks if a maze with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
