package registry

import (
	_ "embed"

	"github.com/vovakirdan/maze-chase/internal/maze"
)

//go:embed mazes/mini.txt
var miniText string

//go:embed mazes/tunnels.txt
var tunnelsText string

func init() {
	Register(Entry{ID: DefaultID, Title: "Classic", Text: maze.FallbackText()})
	Register(Entry{ID: "mini", Title: "Mini", Text: miniText})
	Register(Entry{ID: "tunnels", Title: "Twin Tunnels", Text: tunnelsText})
}
