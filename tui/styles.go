package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/bfsviz/core"
)

// =============================================================================
// Styles
// =============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	queueBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("220")).
			Padding(0, 1).
			MarginRight(1)

	edgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	// node fills follow the classic BFS colouring: white, yellow, red, green
	nodeStyles = map[core.NodeState]lipgloss.Style{
		core.Unvisited: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("255")),
		core.InQueue:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")),
		core.Current:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("196")).Bold(true),
		core.Visited:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("46")),
	}
)

func nodeStyle(s core.NodeState) lipgloss.Style {
	if st, ok := nodeStyles[s]; ok {
		return st
	}

	return nodeStyles[core.Unvisited]
}
