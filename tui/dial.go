package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/egg-timer/common"
	"github.com/yllada/egg-timer/eggtimer"
)

// Terminal cells are about twice as tall as they are wide. Dial geometry
// works in units of one row; a column is 1/cellAspect of that.
const (
	cellAspect  = 2.0
	dialRadius  = 9.0
	labelRadius = 11.0

	dialRows = int(2*labelRadius) + 1
	dialCols = int(2*labelRadius*cellAspect) + 3
)

type cellKind int

const (
	cellBlank cellKind = iota
	cellSector
	cellTick
	cellMajor
	cellLabel
	cellHand
)

var cellStyles = map[cellKind]lipgloss.Style{
	cellBlank:  faceStyle,
	cellSector: sectorStyle,
	cellTick:   tickStyle,
	cellMajor:  majorStyle,
	cellLabel:  labelStyle,
	cellHand:   handStyle,
}

type cell struct {
	r    rune
	kind cellKind
}

// dialCenter is the center of the dial in dial-local geometric units.
func dialCenter() eggtimer.Point {
	return eggtimer.Point{
		X: float64(dialCols/2) / cellAspect,
		Y: labelRadius,
	}
}

// cellPoint converts a cell position to geometric units.
func cellPoint(col, row int) eggtimer.Point {
	return eggtimer.Point{X: float64(col) / cellAspect, Y: float64(row)}
}

// pointCell is the inverse of cellPoint, rounded to the nearest cell.
func pointCell(p eggtimer.Point) (col, row int) {
	return int(math.Round(p.X * cellAspect)), int(math.Round(p.Y))
}

func distance(a, b eggtimer.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

type dialGrid [][]cell

func newDialGrid() dialGrid {
	g := make(dialGrid, dialRows)
	for i := range g {
		g[i] = make([]cell, dialCols)
		for j := range g[i] {
			g[i][j] = cell{r: ' '}
		}
	}
	return g
}

func (g dialGrid) set(col, row int, r rune, kind cellKind) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return
	}
	g[row][col] = cell{r: r, kind: kind}
}

func (g dialGrid) kindAt(col, row int) cellKind {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return cellBlank
	}
	return g[row][col].kind
}

// renderDial draws the dial for angle, in degrees.
func renderDial(angle float64) string {
	g := newDialGrid()
	center := dialCenter()

	if angle > 0 {
		for row := 0; row < dialRows; row++ {
			for col := 0; col < dialCols; col++ {
				p := cellPoint(col, row)
				if distance(p, center) >= dialRadius-0.5 {
					continue
				}
				if eggtimer.Angle(p, center) <= angle {
					g.set(col, row, '░', cellSector)
				}
			}
		}
	}

	for i := 0; i < common.TotalTicks; i++ {
		p := eggtimer.PointOnDial(center, dialRadius, float64(i)*360/common.TotalTicks)
		col, row := pointCell(p)
		if i%common.TicksPerLabel == 0 {
			g.set(col, row, '●', cellMajor)
		} else if g.kindAt(col, row) != cellMajor {
			g.set(col, row, '·', cellTick)
		}
	}

	labels := common.TotalTicks / common.TicksPerLabel
	for i := 0; i < labels; i++ {
		p := eggtimer.PointOnDial(center, labelRadius, float64(i)*360/float64(labels))
		col, row := pointCell(p)
		text := fmt.Sprintf("%02d", i*common.TicksPerLabel)
		for j, r := range text {
			g.set(col-1+j, row, r, cellLabel)
		}
	}

	for r := 1.0; r <= dialRadius-1.5; r += 0.25 {
		col, row := pointCell(eggtimer.PointOnDial(center, r, angle))
		g.set(col, row, '•', cellHand)
	}
	col, row := pointCell(eggtimer.PointOnDial(center, dialRadius-1, angle))
	g.set(col, row, '◆', cellHand)
	col, row = pointCell(center)
	g.set(col, row, '◉', cellHand)

	return g.String()
}

// String renders the grid, styling runs of equal kind together.
func (g dialGrid) String() string {
	var b strings.Builder
	for i, line := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for j := 1; j <= len(line); j++ {
			if j < len(line) && line[j].kind == line[start].kind {
				continue
			}
			var run strings.Builder
			for _, c := range line[start:j] {
				run.WriteRune(c.r)
			}
			b.WriteString(cellStyles[line[start].kind].Render(run.String()))
			start = j
		}
	}
	return b.String()
}
