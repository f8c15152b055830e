// Package maze parses the tile-character maze format into immutable static
// data: walls, collectible items, gate cells, tunnel cells and spawn points.
//
// A Maze is read-only after Parse and may be shared by pointer between any
// number of simulations.
package maze

import (
	"strings"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// MaxHunters is the maximum number of hunter spawns honoured by a maze.
const MaxHunters = 4

// Item is a collectible placed on the grid at load time.
// Eaten is only meaningful on copies owned by a simulation.
type Item struct {
	X, Y  int
	Power bool
	Eaten bool
}

// Pos returns the item's tile.
func (it Item) Pos() core.Point {
	return core.Point{X: it.X, Y: it.Y}
}

// Maze is the parsed, immutable static data of one maze.
type Maze struct {
	width  int
	height int
	rows   []string // padded source rows
	tiles  []Tile   // row-major, len width*height

	items        []Item
	gates        map[core.Point]bool
	tunnels      map[core.Point]bool
	tunnelOrder  []core.Point // scan order, used for partner lookup
	runnerSpawn  core.Point
	hunterSpawns []core.Point
}

// Parse builds a Maze from raw maze text. Carriage returns are stripped and
// blank lines are dropped.
func Parse(text string) *Maze {
	text = strings.ReplaceAll(text, "\r", "")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return ParseLines(lines)
}

// ParseLines builds a Maze from rows of legend characters. Rows shorter than
// the widest row are right-padded with spaces.
func ParseLines(lines []string) *Maze {
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}

	m := &Maze{
		width:       width,
		height:      len(lines),
		rows:        make([]string, len(lines)),
		tiles:       make([]Tile, width*len(lines)),
		gates:       make(map[core.Point]bool),
		tunnels:     make(map[core.Point]bool),
		runnerSpawn: core.Point{X: 1, Y: 1},
	}

	for y, line := range lines {
		runes := []rune(line)
		if pad := width - len(runes); pad > 0 {
			line += strings.Repeat(" ", pad)
			runes = []rune(line)
		}
		m.rows[y] = line

		for x, r := range runes {
			t := TileFromRune(r)
			m.tiles[y*width+x] = t
			p := core.Point{X: x, Y: y}

			switch t {
			case TileRunner:
				m.runnerSpawn = p
			case TileHunter:
				m.hunterSpawns = append(m.hunterSpawns, p)
			case TileItem:
				m.items = append(m.items, Item{X: x, Y: y})
			case TilePower:
				m.items = append(m.items, Item{X: x, Y: y, Power: true})
			case TileGate:
				m.gates[p] = true
			case TileTunnel:
				m.tunnels[p] = true
				m.tunnelOrder = append(m.tunnelOrder, p)
			}
		}
	}

	m.ensurePower()
	return m
}

// ensurePower promotes normal items near the four corners to power items when
// the maze declares none.
func (m *Maze) ensurePower() {
	for _, it := range m.items {
		if it.Power {
			return
		}
	}

	corners := []core.Point{
		{X: 1, Y: 1},
		{X: m.width - 2, Y: 1},
		{X: 1, Y: m.height - 2},
		{X: m.width - 2, Y: m.height - 2},
	}
	for _, c := range corners {
		for i := range m.items {
			if m.items[i].X == c.X && m.items[i].Y == c.Y {
				m.items[i].Power = true
				break
			}
		}
	}
}

// Width returns the grid width.
func (m *Maze) Width() int { return m.width }

// Height returns the grid height.
func (m *Maze) Height() int { return m.height }

// Rows returns a copy of the padded source rows.
func (m *Maze) Rows() []string {
	out := make([]string, len(m.rows))
	copy(out, m.rows)
	return out
}

// InBounds reports whether p lies on the grid.
func (m *Maze) InBounds(p core.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

// Tile returns the tile at p. Out-of-bounds cells read as floor.
func (m *Maze) Tile(p core.Point) Tile {
	if !m.InBounds(p) {
		return TileFloor
	}
	return m.tiles[p.Y*m.width+p.X]
}

// IsWall reports whether p is a wall cell.
func (m *Maze) IsWall(p core.Point) bool {
	return m.Tile(p) == TileWall
}

// IsGate reports whether p is a gate cell.
func (m *Maze) IsGate(p core.Point) bool {
	return m.gates[p]
}

// IsTunnel reports whether p is a tunnel cell.
func (m *Maze) IsTunnel(p core.Point) bool {
	return m.tunnels[p]
}

// PassableForRunner reports whether the runner may occupy p.
// Gates block the runner.
func (m *Maze) PassableForRunner(p core.Point) bool {
	if !m.InBounds(p) || m.IsWall(p) {
		return false
	}
	return !m.gates[p]
}

// PassableForHunter reports whether a hunter may occupy p.
// Gates admit hunters so they can leave the holding pen.
func (m *Maze) PassableForHunter(p core.Point) bool {
	return m.InBounds(p) && !m.IsWall(p)
}

// Items returns a fresh copy of the item list with every Eaten flag false.
func (m *Maze) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Gates returns the gate cells in scan order.
func (m *Maze) Gates() []core.Point {
	return m.collect(TileGate)
}

// Tunnels returns the tunnel cells in scan order.
func (m *Maze) Tunnels() []core.Point {
	out := make([]core.Point, len(m.tunnelOrder))
	copy(out, m.tunnelOrder)
	return out
}

// RunnerSpawn returns the runner's spawn tile, (1,1) when the maze has none.
func (m *Maze) RunnerSpawn() core.Point {
	return m.runnerSpawn
}

// HunterSpawns returns at most MaxHunters hunter spawns in scan order.
func (m *Maze) HunterSpawns() []core.Point {
	n := min(len(m.hunterSpawns), MaxHunters)
	out := make([]core.Point, n)
	copy(out, m.hunterSpawns[:n])
	return out
}

// Teleport resolves the position of an agent that has just committed to p.
// On a tunnel cell it moves to another tunnel on the same row; otherwise an
// off-grid x wraps to the opposite edge. An unpaired tunnel inside the grid
// is left where it is.
func (m *Maze) Teleport(p core.Point) core.Point {
	if m.tunnels[p] {
		for _, t := range m.tunnelOrder {
			if t.Y == p.Y && t.X != p.X {
				return t
			}
		}
	}
	if p.X < 0 {
		p.X = m.width - 1
	}
	if p.X >= m.width {
		p.X = 0
	}
	return p
}

func (m *Maze) collect(t Tile) []core.Point {
	var out []core.Point
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.tiles[y*m.width+x] == t {
				out = append(out, core.Point{X: x, Y: y})
			}
		}
	}
	return out
}
