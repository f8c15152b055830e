package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/levels"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List available mazes",
	Long:  `Shows the built-in mazes and, with --maze-dir, the maze files found there.`,
	Args:  cobra.NoArgs,
	RunE:  runMazes,
}

type mazeRow struct {
	id, title, size, source string
}

func runMazes(cmd *cobra.Command, args []string) error {
	var rows []mazeRow
	for _, m := range registry.List() {
		rows = append(rows, mazeRow{m.ID, m.Title, fmt.Sprintf("%dx%d", m.Width, m.Height), "built-in"})
	}

	if flagMazeDir != "" {
		lvls, err := levels.NewLoader(flagMazeDir).LoadAll()
		if err != nil {
			return err
		}
		for _, l := range lvls {
			m := l.Maze()
			rows = append(rows, mazeRow{l.ID, l.Name, fmt.Sprintf("%dx%d", m.Width(), m.Height()), l.FilePath})
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available mazes:")
	fmt.Fprintln(out)

	// Calculate column widths
	idW, titleW, sizeW := 2, 5, 4
	for _, r := range rows {
		idW = max(idW, len(r.id))
		titleW = max(titleW, len(r.title))
		sizeW = max(sizeW, len(r.size))
	}

	fmt.Fprintf(out, "  %-*s  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", sizeW, "Size", "Source")
	fmt.Fprintf(out, "  %-*s  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", sizeW, "----", "------")
	for _, r := range rows {
		fmt.Fprintf(out, "  %-*s  %-*s  %-*s  %s\n", idW, r.id, titleW, r.title, sizeW, r.size, r.source)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'mazechase play --maze <id>' to play a maze.")
	return nil
}
