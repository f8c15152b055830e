package maze

// Tile is the static meaning of one grid cell.
type Tile uint8

const (
	TileFloor  Tile = iota // open floor (space or any unknown character)
	TileWall               // '#'
	TileItem               // '.'
	TilePower              // 'o'
	TileHunter             // 'G' hunter spawn
	TileRunner             // 'P' runner spawn
	TileTunnel             // 'X'
	TileGate               // '-'
)

// Legend characters of the maze text format.
const (
	CharWall   = '#'
	CharItem   = '.'
	CharPower  = 'o'
	CharHunter = 'G'
	CharRunner = 'P'
	CharTunnel = 'X'
	CharGate   = '-'
)

// TileFromRune maps a legend character to its tile. Unknown characters are floor.
func TileFromRune(r rune) Tile {
	switch r {
	case CharWall:
		return TileWall
	case CharItem:
		return TileItem
	case CharPower:
		return TilePower
	case CharHunter:
		return TileHunter
	case CharRunner:
		return TileRunner
	case CharTunnel:
		return TileTunnel
	case CharGate:
		return TileGate
	default:
		return TileFloor
	}
}

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileItem:
		return "item"
	case TilePower:
		return "power"
	case TileHunter:
		return "hunter-spawn"
	case TileRunner:
		return "runner-spawn"
	case TileTunnel:
		return "tunnel"
	case TileGate:
		return "gate"
	default:
		return "unknown"
	}
}
