package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
)

func newTraceCmd(a *app) *cobra.Command {
	var start int
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Generate a layout and print every BFS step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd, os.Stderr); err != nil {
				return err
			}
			defer a.close()

			g, rep := a.generate()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "nodes: %d, edges: %d\n", rep.Realized, g.EdgeCount())

			return trace(w, g, start, a)
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "Start node id")

	return cmd
}

// trace steps a controller from start to completion, one line per step,
// then prints each node's depth and BFS-tree path.
func trace(w io.Writer, g *core.Graph, start int, a *app) error {
	c := bfs.NewController(g, a.cfg.Traversal, bfs.WithLogger(a.log))
	if !c.StartBFS(start) {
		return fmt.Errorf("%w: %d", bfs.ErrStartNotFound, start)
	}
	fmt.Fprintf(w, "start %d  queue=%v\n", start, c.Queue())

	for i := 1; c.Step(); i++ {
		cur := "-"
		if id, ok := c.Current(); ok {
			cur = fmt.Sprint(id)
		}
		fmt.Fprintf(w, "step %2d  %-8s current=%-2s queue=%v order=%v\n", i, c.State(), cur, c.Queue(), c.VisitOrder())
	}

	for _, id := range c.VisitOrder() {
		d, _ := c.Depth(id)
		path, err := c.PathTo(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  node %2d depth %d path %v\n", id, d, path)
	}

	return nil
}
