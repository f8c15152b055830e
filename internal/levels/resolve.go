package levels

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

// Source is the maze selected for a run.
type Source struct {
	ID       string
	Name     string
	Text     string
	Path     string // empty for built-in mazes
	Fallback bool   // the reference could not be loaded
}

// Maze parses the selected layout.
func (s Source) Maze() *maze.Maze {
	return maze.Parse(s.Text)
}

// Resolve is Loader.Resolve without a maze directory.
func Resolve(ref string, logger *log.Logger) Source {
	return (&Loader{}).Resolve(ref, logger)
}

// Resolve picks the maze named by ref. An empty ref selects the default
// built-in maze. Otherwise ref is tried as a built-in name, then a file
// path, then an ID under Root. Resolve never fails: when nothing matches it
// logs a warning and returns the built-in fallback layout.
func (l *Loader) Resolve(ref string, logger *log.Logger) Source {
	if ref == "" {
		return builtin(registry.DefaultID)
	}

	if registry.Exists(ref) {
		return builtin(ref)
	}

	var lastErr error
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		lvl, err := l.LoadFile(ref)
		if err == nil {
			return fromLevel(lvl)
		}
		lastErr = err
	} else if l.Root != "" {
		lvl, err := l.LoadByID(ref)
		if err == nil {
			return fromLevel(lvl)
		}
		lastErr = err
	}

	if logger != nil {
		if lastErr != nil {
			logger.Warn("maze unavailable, using built-in layout", "maze", ref, "err", lastErr)
		} else {
			logger.Warn("maze not found, using built-in layout", "maze", ref)
		}
	}

	return Source{
		ID:       registry.DefaultID,
		Name:     "Classic",
		Text:     maze.FallbackText(),
		Fallback: true,
	}
}

func builtin(id string) Source {
	e, err := registry.Get(id)
	if err != nil {
		return Source{ID: id, Name: id, Text: maze.FallbackText(), Fallback: true}
	}
	return Source{ID: e.ID, Name: e.Title, Text: e.Text}
}

func fromLevel(lvl Level) Source {
	return Source{
		ID:   lvl.ID,
		Name: lvl.Name,
		Text: lvl.Text(),
		Path: lvl.FilePath,
	}
}
