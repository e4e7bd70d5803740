// Package bfsviz is a teaching tool that lays out random connected graphs
// and animates breadth-first search over them, one step at a time.
//
// What is bfsviz?
//
//	A small stack of packages, each usable on its own:
//		• core    — Graph of positioned nodes with symmetric adjacency and hit-testing
//		• spatial — R-tree point index behind hit-testing and placement checks
//		• layout  — ring → grid → random placement plus spanning-tree connectivity
//		• bfs     — resumable BFS state machine with pause/resume/reset and auto-step
//		• config  — named options, window-derived defaults, YAML loading, validation
//		• tui     — bubbletea front end drawing the graph, queue strip and info panel
//
// Quick ASCII example:
//
//	    (0)───(1)
//	     │     │
//	    (2)   (3)
//
//	StartBFS(0) then four Steps visit 0, 1, 2, 3 and end Finished.
//
// The command in cmd/bfsviz ties everything together:
//
//	bfsviz run                      # interactive visualizer
//	bfsviz generate --format yaml   # print one layout
//	bfsviz trace --start 0          # print every BFS step
package bfsviz
