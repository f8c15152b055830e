// Package formats provides pluggable maze file format parsers.
package formats

import (
	"errors"
	"strings"
)

// Level represents a parsed maze file.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
}

var errEmpty = errors.New("maze has no rows")

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".maze", ".yaml", ".yml"}
}

// trimRows strips carriage returns and drops empty rows. A row of spaces is
// open floor and is kept, as maze.Parse does.
func trimRows(rows []string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		r = strings.ReplaceAll(r, "\r", "")
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
