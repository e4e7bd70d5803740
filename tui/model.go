// Package tui provides the interactive terminal front end for bfsviz.
//
// # Description
//
// Model is a bubbletea model that owns a core.Graph, lays it out with the
// layout package and drives a bfs.Controller from keyboard, mouse and a
// fixed frame tick. It only reads graph and traversal state for display;
// every change goes through the controller's commands.
//
// # Thread Safety
//
// Model is designed for single-threaded use within the bubbletea event
// loop. Do not access it from other goroutines.
package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/layout"
)

const (
	// frameInterval drives Controller.Tick at roughly 60 Hz.
	frameInterval = time.Second / 60

	// delayStep is the +/- increment for the auto-step delay.
	delayStep = 250 * time.Millisecond

	// headerRows and footerRows frame the canvas.
	headerRows = 2
	footerRows = 6
)

// =============================================================================
// Messages
// =============================================================================

// frameMsg carries the wall-clock time of a frame tick.
type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// =============================================================================
// Options
// =============================================================================

// Option customizes a Model.
type Option func(*Model)

// WithSeed makes the sequence of generated layouts reproducible.
func WithSeed(seed int64) Option {
	return func(m *Model) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes generator and controller traces to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// =============================================================================
// Model
// =============================================================================

// Model is the bubbletea model for the visualizer.
type Model struct {
	cfg   config.Config
	rng   *rand.Rand
	log   logrus.FieldLogger
	graph *core.Graph
	ctrl  *bfs.Controller

	report layout.Report

	// Terminal dimensions
	width  int
	height int

	lastFrame time.Time
	status    string
	quitting  bool
}

// New builds a Model and generates its first layout.
func New(cfg config.Config, opts ...Option) Model {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	m := Model{cfg: cfg, log: discard}
	for _, opt := range opts {
		opt(&m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m.graph = core.NewGraph(core.WithNodeRadius(cfg.Node.Radius))
	m.ctrl = bfs.NewController(m.graph, cfg.Traversal, bfs.WithLogger(m.log))
	m.regenerate()

	return m
}

// Graph exposes the displayed graph for read-only use.
func (m Model) Graph() *core.Graph { return m.graph }

// Controller exposes the traversal controller.
func (m Model) Controller() *bfs.Controller { return m.ctrl }

// Report returns the report of the latest layout.
func (m Model) Report() layout.Report { return m.report }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frame()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			m.ctrl.Tick(now.Sub(m.lastFrame))
		}
		m.lastFrame = now

		return m, frame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.handleClick(msg.X, msg.Y)
		}

		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		m.quitting = true

		return m, tea.Quit

	case " ", "space":
		switch m.ctrl.State() {
		case bfs.Ready:
			m.status = "Click on a node (or press its number) to start BFS"
		case bfs.Running:
			m.ctrl.Step()
			m.status = ""
		case bfs.Paused:
			m.ctrl.Resume()
			m.status = "Resumed"
		}

	case "p":
		switch m.ctrl.State() {
		case bfs.Running:
			m.ctrl.Pause()
			m.status = "Paused"
		case bfs.Paused:
			m.ctrl.Resume()
			m.status = "Resumed"
		}

	case "r":
		m.ctrl.Reset()
		m.status = "Reset"

	case "a":
		m.ctrl.SetAutoStep(!m.ctrl.AutoStep())
		m.status = fmt.Sprintf("Auto-step %s", onOff(m.ctrl.AutoStep()))

	case "g":
		m.ctrl.Reset()
		m.regenerate()

	case "+", "=":
		m.ctrl.SetStepDelay(m.ctrl.StepDelay() + delayStep)
		m.status = fmt.Sprintf("Step delay %s", m.ctrl.StepDelay())

	case "-", "_":
		if d := m.ctrl.StepDelay() - delayStep; d >= delayStep {
			m.ctrl.SetStepDelay(d)
		}
		m.status = fmt.Sprintf("Step delay %s", m.ctrl.StepDelay())

	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			m.startFrom(int(key[0] - '0'))
		}
	}

	return m, nil
}

// handleClick hit-tests the cell under the pointer and starts BFS from the
// node found there, but only while Ready.
func (m *Model) handleClick(x, y int) {
	cv := m.canvas()
	row := y - headerRows
	if row < 0 || row >= cv.rows || x < 0 || x >= cv.cols {
		return
	}
	id, ok := m.graph.NodeAt(cv.toWorld(x, row))
	if !ok {
		return
	}
	m.startFrom(id)
}

func (m *Model) startFrom(id int) {
	if m.ctrl.State() != bfs.Ready {
		m.status = "Press r to reset before choosing a new start node"

		return
	}
	if !m.ctrl.StartBFS(id) {
		m.status = fmt.Sprintf("No node %d", id)

		return
	}
	m.status = fmt.Sprintf("Started BFS from node %d", id)
	m.log.WithField("start", id).Info("tui: traversal started")
}

func (m *Model) regenerate() {
	m.report = layout.Generate(m.graph, m.cfg.Layout, layout.WithRand(m.rng), layout.WithLogger(m.log))
	m.status = fmt.Sprintf("Generated %d nodes, %d edges", m.report.Realized, m.graph.EdgeCount())
	if m.report.Degraded() {
		m.status += fmt.Sprintf(" (wanted %d)", m.report.Target)
	}
	m.log.WithFields(logrus.Fields{
		"target":   m.report.Target,
		"realized": m.report.Realized,
		"edges":    m.graph.EdgeCount(),
	}).Info("tui: layout generated")
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}
