package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/bfsviz/bfs"
)

// defaultCols and defaultRows are used before the first WindowSizeMsg.
const (
	defaultCols = 120
	defaultRows = 40
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderGraph(),
		m.renderInfo(),
	)
}

// canvas sizes a fresh canvas for the current terminal.
func (m Model) canvas() *canvas {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = defaultCols, defaultRows
	}

	return newCanvas(m.cfg.Window.Width, m.cfg.Window.Height, w, h-headerRows-footerRows)
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("BFS Visualizer"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Queue: "))
	for _, id := range m.ctrl.Queue() {
		b.WriteString(queueBoxStyle.Render(strconv.Itoa(id)))
	}

	return b.String()
}

func (m Model) renderGraph() string {
	cv := m.canvas()
	nodes := m.graph.Nodes()
	for _, e := range m.graph.Edges() {
		a, _ := m.graph.Position(e.A)
		b, _ := m.graph.Position(e.B)
		cv.drawEdge(a, b)
	}
	for _, n := range nodes {
		cv.drawNode(n)
	}

	return cv.render()
}

func (m Model) renderInfo() string {
	lines := make([]string, 0, footerRows)

	state := labelStyle.Render("State: ") + m.ctrl.State().String()
	if cur, ok := m.ctrl.Current(); ok {
		state += labelStyle.Render("   Current Node: ") + strconv.Itoa(cur)
	}
	lines = append(lines, state)

	order := m.ctrl.VisitOrder()
	parts := make([]string, len(order))
	for i, id := range order {
		parts[i] = strconv.Itoa(id)
	}
	lines = append(lines, labelStyle.Render("Visit Order: ")+strings.Join(parts, " -> "))

	lines = append(lines, labelStyle.Render("Auto-step: ")+onOff(m.ctrl.AutoStep())+
		labelStyle.Render("   Delay: ")+m.ctrl.StepDelay().String())
	lines = append(lines, statusStyle.Render(m.status))
	lines = append(lines, m.renderHelp())

	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"space", stepHint(m.ctrl.State())},
		{"p", "pause"},
		{"r", "reset"},
		{"a", "auto-step"},
		{"g", "new graph"},
		{"+/-", "delay"},
		{"0-9/click", "start"},
		{"q", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = helpKeyStyle.Render(k.key) + " " + helpDescStyle.Render(k.desc)
	}

	return strings.Join(parts, "  ")
}

func stepHint(s bfs.State) string {
	if s == bfs.Paused {
		return "resume"
	}

	return "step"
}
