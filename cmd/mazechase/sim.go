package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
)

var (
	flagTicks   int
	flagIntents string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless, seeded simulation",
	Long: `Runs the simulation without a terminal UI and prints a summary.

--intents is a comma separated script of DIR:TICKS segments, where DIR is
R, L, U or D (or N for no new intent). Each segment sets the steering
intent and holds it for TICKS ticks; after the script ends the last intent
stays. The same seed, maze and script always produce the same result.

Examples:
  mazechase sim --ticks 600
  mazechase sim --seed 7 --intents "L:30,U:20,R:200" --maze mini`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagIntents, "intents", "", `Intent script, e.g. "L:30,U:20"`)
}

// segment holds one intent for a number of ticks.
type segment struct {
	dir   core.Dir
	set   bool
	ticks int
}

// parseIntents parses a DIR:TICKS script.
func parseIntents(script string) ([]segment, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var out []segment
	for _, part := range strings.Split(script, ",") {
		dirStr, ticksStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("intent %q: want DIR:TICKS", part)
		}
		ticks, err := strconv.Atoi(ticksStr)
		if err != nil || ticks < 0 {
			return nil, fmt.Errorf("intent %q: ticks must be a non-negative integer", part)
		}

		seg := segment{ticks: ticks, set: true}
		switch strings.ToUpper(dirStr) {
		case "R":
			seg.dir = core.DirRight
		case "L":
			seg.dir = core.DirLeft
		case "U":
			seg.dir = core.DirUp
		case "D":
			seg.dir = core.DirDown
		case "N":
			seg.set = false
		default:
			return nil, fmt.Errorf("intent %q: unknown direction %q", part, dirStr)
		}
		out = append(out, seg)
	}
	return out, nil
}

// simSummary is what a headless run reports.
type simSummary struct {
	Ticks     int
	Final     engine.Snapshot
	HUD       engine.HUD
	Events    map[engine.EventKind]int
	StoppedAt int // tick of game over, or 0
}

// simulate drives a Sim through the script for n ticks, stopping early on
// game over.
func simulate(sim *engine.Sim, script []segment, n int) simSummary {
	sum := simSummary{Events: make(map[engine.EventKind]int)}

	seg, left := 0, 0
	if len(script) > 0 {
		left = script[0].ticks
		if script[0].set {
			sim.SetIntent(script[0].dir.X, script[0].dir.Y)
		}
	}

	for i := 1; i <= n; i++ {
		for seg < len(script) && left == 0 {
			seg++
			if seg < len(script) {
				left = script[seg].ticks
				if script[seg].set {
					sim.SetIntent(script[seg].dir.X, script[seg].dir.Y)
				}
			}
		}
		if left > 0 {
			left--
		}

		res := sim.Tick()
		sum.Ticks = i
		for _, e := range res.Events {
			sum.Events[e.Kind]++
		}
		if res.State.Over {
			sum.StoppedAt = i
			break
		}
	}

	sum.Final = sim.Snapshot()
	sum.HUD = sim.HUD()
	return sum
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}
	script, err := parseIntents(flagIntents)
	if err != nil {
		return err
	}

	s, err := newSession(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	sim := engine.New(s.maze.Maze(),
		engine.WithParams(s.cfg.Params()),
		engine.WithSeed(s.cfg.Runtime.Seed),
		engine.WithLogger(s.logger),
	)

	s.logger.Info("simulation started", "maze", s.maze.ID, "ticks", flagTicks, "seed", s.cfg.Runtime.Seed)
	sum := simulate(sim, script, flagTicks)
	s.logger.Info("simulation finished", "ticks", sum.Ticks, "score", sum.HUD.Score)

	printSummary(cmd.OutOrStdout(), s.maze.Name, s.cfg.Runtime.Seed, sum)
	return nil
}

func printSummary(w io.Writer, mazeName string, seed int64, sum simSummary) {
	snap := sum.Final
	fmt.Fprintf(w, "Maze:      %s (%dx%d)\n", mazeName, snap.Width, snap.Height)
	fmt.Fprintf(w, "Seed:      %d\n", seed)
	fmt.Fprintf(w, "Ticks:     %d\n", sum.Ticks)
	fmt.Fprintf(w, "%s\n", sum.HUD)
	fmt.Fprintf(w, "Phase:     %s\n", snap.Phase)
	fmt.Fprintf(w, "Runner:    %s heading %s\n", snap.Runner.Tile, snap.Runner.Dir)
	for _, h := range snap.Hunters {
		mode := "chasing"
		if h.Frightened {
			mode = "frightened"
		}
		fmt.Fprintf(w, "Hunter:    %-7s %s %s\n", h.Role, h.Tile, mode)
	}
	fmt.Fprintf(w, "Items:     %d of %d left\n", snap.RemainingItems(), len(snap.Items))

	kinds := []engine.EventKind{
		engine.EventItemEaten,
		engine.EventPowerActivated,
		engine.EventHunterCaught,
		engine.EventLifeLost,
		engine.EventLevelAdvanced,
		engine.EventGameOver,
	}
	fmt.Fprintln(w, "Events:")
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-16s %d\n", k, sum.Events[k])
	}
	if sum.StoppedAt > 0 {
		fmt.Fprintf(w, "Game over at tick %d\n", sum.StoppedAt)
	}
}
