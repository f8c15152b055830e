package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/mazechase"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space/Esc       - Pause
  R                 - Restart
  Ctrl+S            - Save a text screenshot
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Logs are discarded while playing unless --log-file is set.

Examples:
  mazechase play
  mazechase play --maze tunnels --fps 30
  mazechase play --config ./my-tuning.yaml --log-file play.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Logging to the terminal would corrupt the alt screen.
	s, err := newSession(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer s.close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := mazechase.New(
		mazechase.WithMaze(s.maze.Name, s.maze.Maze()),
		mazechase.WithParams(s.cfg.Params()),
		mazechase.WithLogger(s.logger),
	)

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.cfg.Runtime.TickRate,
		Seed:     s.cfg.Runtime.Seed,
	}
	return tui.Run(game, rc, s.logger)
}
