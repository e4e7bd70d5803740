package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/tui"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive visualizer",
		Long: `Open the interactive visualizer.

Click a node (or press its number) to start BFS, then press space to step.
p pauses, a toggles auto-step, +/- change its delay, r resets,
g generates a new graph and q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// the terminal belongs to the UI, so logs go to log.file or nowhere
			if err := a.setup(cmd, io.Discard); err != nil {
				return err
			}
			defer a.close()

			opts := []tui.Option{tui.WithLogger(a.log)}
			if a.seeded {
				opts = append(opts, tui.WithSeed(a.flagSeed))
			}
			m := tui.New(a.cfg, opts...)

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running visualizer: %w", err)
			}

			return nil
		},
	}
}
