// mazechase is a terminal maze-chase game: steer the runner through the
// maze, eat every item and avoid the hunters.
//
// Usage:
//
//	mazechase play              - Play in the terminal
//	mazechase mazes             - List built-in and on-disk mazes
//	mazechase sim               - Run a headless simulation and print a summary
//	mazechase config            - Print the effective configuration
//	mazechase version           - Print the version
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--maze <ref>        - Built-in maze name, maze file, or ID under --maze-dir
//	--config <path>     - Custom config YAML
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagMaze     string
	flagMazeDir  string
	flagConfig   string
	flagEnvFile  string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - eat the items, dodge the hunters",
	Long: `Maze Chase is a terminal maze game. The runner clears a maze of items
while four hunters, each with its own targeting style, close in. Power items
turn the tables for a few seconds.

Available commands:
  play     - Play in the terminal
  mazes    - List available mazes
  sim      - Run a headless, seeded simulation
  config   - Print the effective configuration
  version  - Print the version

Examples:
  mazechase play
  mazechase play --maze mini
  mazechase play --maze ./my-maze.txt --seed 42
  mazechase sim --ticks 3600 --intents "L:120,U:60" --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time when playing)")
	pf.StringVar(&flagMaze, "maze", "", "Maze: built-in name, file path, or ID under --maze-dir")
	pf.StringVar(&flagMazeDir, "maze-dir", "", "Directory of .txt/.maze/.yaml maze files")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Optional dotenv file with MAZECHASE_* overrides")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
