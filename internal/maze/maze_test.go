package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/core"
)

func TestParsePadsRows(t *testing.T) {
	m := Parse("#####\r\n#P.\n\n#####\n")

	require.Equal(t, 5, m.Width())
	require.Equal(t, 3, m.Height())
	assert.Equal(t, "#P.  ", m.Rows()[1])
	assert.Equal(t, TileFloor, m.Tile(core.P(4, 1)))
}

func TestParseLegend(t *testing.T) {
	m := ParseLines([]string{
		"#######",
		"#P.o-X#",
		"#G GX #",
		"#######",
	})

	assert.Equal(t, core.P(1, 1), m.RunnerSpawn())
	assert.Equal(t, []core.Point{core.P(1, 2), core.P(3, 2)}, m.HunterSpawns())
	assert.Equal(t, []core.Point{core.P(4, 1)}, m.Gates())
	assert.Equal(t, []core.Point{core.P(5, 1), core.P(4, 2)}, m.Tunnels())

	items := m.Items()
	require.Len(t, items, 2)
	assert.Equal(t, Item{X: 2, Y: 1}, items[0])
	assert.Equal(t, Item{X: 3, Y: 1, Power: true}, items[1])

	assert.True(t, m.IsWall(core.P(0, 0)))
	assert.True(t, m.IsGate(core.P(4, 1)))
	assert.True(t, m.IsTunnel(core.P(5, 1)))
	assert.Equal(t, TileFloor, m.Tile(core.P(2, 2)))
}

func TestParseDefaultsRunnerSpawn(t *testing.T) {
	m := ParseLines([]string{"....", "...."})
	assert.Equal(t, core.P(1, 1), m.RunnerSpawn())
}

func TestHunterSpawnsCapped(t *testing.T) {
	m := ParseLines([]string{"GGGGGG"})
	assert.Len(t, m.HunterSpawns(), MaxHunters)
	assert.Equal(t, core.P(3, 0), m.HunterSpawns()[3])
}

func TestPassability(t *testing.T) {
	m := ParseLines([]string{
		"#####",
		"#.-.#",
		"#####",
	})

	tests := []struct {
		name   string
		p      core.Point
		runner bool
		hunter bool
	}{
		{"floor", core.P(1, 1), true, true},
		{"gate blocks runner, admits hunter", core.P(2, 1), false, true},
		{"wall", core.P(0, 1), false, false},
		{"out of bounds left", core.P(-1, 1), false, false},
		{"out of bounds below", core.P(1, 3), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.runner, m.PassableForRunner(tc.p))
			assert.Equal(t, tc.hunter, m.PassableForHunter(tc.p))
		})
	}
}

func TestPowerPromotion(t *testing.T) {
	m := ParseLines([]string{
		"#####",
		"#...#",
		"#. .#",
		"#...#",
		"#####",
	})

	power := map[core.Point]bool{}
	for _, it := range m.Items() {
		if it.Power {
			power[it.Pos()] = true
		}
	}

	assert.Equal(t, map[core.Point]bool{
		core.P(1, 1): true,
		core.P(3, 1): true,
		core.P(1, 3): true,
		core.P(3, 3): true,
	}, power)
}

func TestPowerPromotionSkippedWhenDeclared(t *testing.T) {
	m := ParseLines([]string{
		"#####",
		"#..o#",
		"#####",
	})

	count := 0
	for _, it := range m.Items() {
		if it.Power {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPowerPromotionOnlyExistingItems(t *testing.T) {
	// Only one corner holds an item.
	m := ParseLines([]string{
		"#####",
		"#.  #",
		"#   #",
		"#####",
	})

	items := m.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].Power)
}

func TestTeleport(t *testing.T) {
	m := ParseLines([]string{
		"X...X",
		"X....",
		".....",
	})

	tests := []struct {
		name     string
		in       core.Point
		expected core.Point
	}{
		{"left tunnel to right partner", core.P(0, 0), core.P(4, 0)},
		{"right tunnel to left partner", core.P(4, 0), core.P(0, 0)},
		{"unpaired tunnel stays", core.P(0, 1), core.P(0, 1)},
		{"off left edge wraps", core.P(-1, 2), core.P(4, 2)},
		{"off right edge wraps", core.P(5, 2), core.P(0, 2)},
		{"plain cell unchanged", core.P(2, 2), core.P(2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, m.Teleport(tc.in))
		})
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	m := ParseLines([]string{"P.o"})

	items := m.Items()
	items[0].Eaten = true

	assert.False(t, m.Items()[0].Eaten)
}

func TestFallback(t *testing.T) {
	m := Fallback()

	assert.Equal(t, 28, m.Width())
	assert.Equal(t, 24, m.Height())
	assert.Equal(t, core.P(13, 14), m.RunnerSpawn())
	assert.Equal(t, []core.Point{core.P(12, 10), core.P(13, 10), core.P(14, 10), core.P(15, 10)}, m.HunterSpawns())
	assert.Equal(t, []core.Point{core.P(13, 9), core.P(14, 9)}, m.Gates())
	assert.Len(t, m.Tunnels(), 4)

	// The fallback declares no 'o', so the corners are promoted.
	powers := 0
	for _, it := range m.Items() {
		if it.Power {
			powers++
		}
	}
	assert.Equal(t, 4, powers)

	// Every row is padded to the full width.
	for _, row := range m.Rows() {
		assert.Len(t, row, m.Width())
	}
}
