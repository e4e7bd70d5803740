package tui

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/bfsviz/core"
)

// cellKind says what occupies a canvas cell; it selects the render style.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellEdge
	cellNode
)

type cell struct {
	r     rune
	kind  cellKind
	state core.NodeState
}

// canvas rasterizes world coordinates onto a cols×rows character grid.
// The whole world extent is scaled to fit, so the aspect is not preserved.
type canvas struct {
	worldW, worldH float64
	cols, rows     int
	cells          [][]cell
}

func newCanvas(worldW, worldH float64, cols, rows int) *canvas {
	cols, rows = max(cols, 1), max(rows, 1)
	cells := make([][]cell, rows)
	for r := range cells {
		cells[r] = make([]cell, cols)
		for c := range cells[r] {
			cells[r][c] = cell{r: ' '}
		}
	}

	return &canvas{worldW: worldW, worldH: worldH, cols: cols, rows: rows, cells: cells}
}

// toCell maps a world point to the cell containing it, clamped to the grid.
func (cv *canvas) toCell(p orb.Point) (col, row int) {
	col = int(p.X() / cv.worldW * float64(cv.cols))
	row = int(p.Y() / cv.worldH * float64(cv.rows))

	return min(max(col, 0), cv.cols-1), min(max(row, 0), cv.rows-1)
}

// toWorld maps a cell to the world point at its centre.
func (cv *canvas) toWorld(col, row int) orb.Point {
	return orb.Point{
		(float64(col) + 0.5) * cv.worldW / float64(cv.cols),
		(float64(row) + 0.5) * cv.worldH / float64(cv.rows),
	}
}

func (cv *canvas) set(col, row int, c cell) {
	if row < 0 || row >= cv.rows || col < 0 || col >= cv.cols {
		return
	}
	cv.cells[row][col] = c
}

// drawEdge rasterizes a segment with Bresenham's algorithm.
func (cv *canvas) drawEdge(a, b orb.Point) {
	x0, y0 := cv.toCell(a)
	x1, y1 := cv.toCell(b)
	r := edgeRune(x1-x0, y1-y0)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if cv.cells[y0][x0].kind == cellEmpty {
			cv.set(x0, y0, cell{r: r, kind: cellEdge})
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// drawNode writes the node id as a "(id)" label centred on its cell.
func (cv *canvas) drawNode(n core.Node) {
	col, row := cv.toCell(n.Position)
	label := []rune("(" + strconv.Itoa(n.ID) + ")")
	start := col - len(label)/2
	for i, r := range label {
		cv.set(start+i, row, cell{r: r, kind: cellNode, state: n.State})
	}
}

// render emits the grid row by row, styling runs of equal cells together.
func (cv *canvas) render() string {
	var b strings.Builder
	for r, row := range cv.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for i := 0; i < len(row); {
			j := i
			var run strings.Builder
			for j < len(row) && sameStyle(row[i], row[j]) {
				run.WriteRune(row[j].r)
				j++
			}
			b.WriteString(styleRun(row[i], run.String()))
			i = j
		}
	}

	return b.String()
}

func sameStyle(a, b cell) bool {
	if a.kind != b.kind {
		return false
	}

	return a.kind != cellNode || a.state == b.state
}

func styleRun(c cell, s string) string {
	switch c.kind {
	case cellEdge:
		return edgeStyle.Render(s)
	case cellNode:
		return nodeStyle(c.state).Render(s)
	default:
		return s
	}
}

// edgeRune picks a line glyph from the overall slope (rows grow downward).
func edgeRune(dx, dy int) rune {
	switch {
	case dy == 0 || abs(dy)*3 < abs(dx):
		return '─'
	case dx == 0 || abs(dx) < abs(dy):
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
