package maze

import (
	_ "embed"
)

//go:embed fallback.txt
var fallbackText string

// FallbackText returns the raw text of the built-in maze.
func FallbackText() string {
	return fallbackText
}

// Fallback parses the built-in maze. It is used whenever the external maze
// resource is unavailable or unreadable.
func Fallback() *Maze {
	return Parse(fallbackText)
}
