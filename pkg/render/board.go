package render

import (
	"image/color"
	"math"

	"github.com/cbodonnell/tictaccube/pkg/game"
	"github.com/cbodonnell/tictaccube/pkg/game/constants"
	"github.com/cbodonnell/tictaccube/pkg/projection"
)

// NoCell marks the absence of a hovered cell.
const NoCell = -1

const (
	glyphScale      = 0.32
	hoverOuterScale = 0.88
	hoverInnerScale = 0.75
	circleSegments  = 24
)

// BoardView is the read-only state needed to draw the board.
type BoardView struct {
	Board game.Board
	// Hover is the hovered cell or NoCell.
	Hover    int
	GameOver bool
	Flipping bool
	// Progress holds the fade-in progress of animating cells. A cell without an
	// entry is drawn fully.
	Progress map[int]float64
	Outcome  game.Outcome
}

// CellProgress returns the fade-in progress of a cell, 1 if it has none.
func (v BoardView) CellProgress(idx int) float64 {
	if p, ok := v.Progress[idx]; ok {
		return p
	}
	return 1
}

func (v BoardView) showHover(idx int) bool {
	return v.Hover == idx && v.Board[idx] == game.Empty && !v.GameOver && !v.Flipping
}

// BoardRenderer draws the grid, hover highlight, marks and winning line on the
// front face of the cube.
type BoardRenderer struct {
	palette   Palette
	lineWidth float64
}

type NewBoardRendererOptions struct {
	// Palette defaults to DefaultPalette.
	Palette *Palette
	// LineWidth is the glyph stroke width. Defaults to constants.LineWidth.
	LineWidth float64
}

func NewBoardRenderer(opts NewBoardRendererOptions) *BoardRenderer {
	palette := DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = constants.LineWidth
	}
	return &BoardRenderer{
		palette:   palette,
		lineWidth: lineWidth,
	}
}

// CellCenter returns the model space center of a cell on the front face.
func CellCenter(t projection.Transform, idx int) projection.Vec3 {
	cell := t.Size() / 3
	row, col := game.RowCol(idx)
	return projection.Vec3{
		X: -t.Half + float64(col)*cell + cell/2,
		Y: t.Half - float64(row)*cell - cell/2,
		Z: t.Half,
	}
}

// square returns the corners of an axis aligned square on the front face,
// clockwise from the top left.
func square(center projection.Vec3, half float64) [4]projection.Vec3 {
	return [4]projection.Vec3{
		{X: center.X - half, Y: center.Y + half, Z: center.Z},
		{X: center.X + half, Y: center.Y + half, Z: center.Z},
		{X: center.X + half, Y: center.Y - half, Z: center.Z},
		{X: center.X - half, Y: center.Y - half, Z: center.Z},
	}
}

func (r *BoardRenderer) Draw(s Surface, t projection.Transform, view BoardView) {
	r.drawGrid(s, t)

	cell := t.Size() / 3
	for idx, mark := range view.Board {
		center := CellCenter(t, idx)
		if view.showHover(idx) {
			r.drawHover(s, t, center, cell)
		}
		size := cell * glyphScale * view.CellProgress(idx)
		switch mark {
		case game.MarkX:
			r.drawX(s, t, center, size)
		case game.MarkO:
			r.drawO(s, t, center, size)
		}
	}

	if view.GameOver && view.Outcome.Result == game.ResultWin {
		r.drawWinLine(s, t, view.Outcome.Line)
	}
}

func (r *BoardRenderer) drawGrid(s Surface, t projection.Transform) {
	half := t.Half
	cell := t.Size() / 3
	for i := 1; i <= 2; i++ {
		offset := -half + float64(i)*cell
		strokeLine(s,
			t.Project(projection.Vec3{X: offset, Y: half, Z: half}),
			t.Project(projection.Vec3{X: offset, Y: -half, Z: half}),
			r.palette.GridLine, 2, CapButt)
		strokeLine(s,
			t.Project(projection.Vec3{X: -half, Y: offset, Z: half}),
			t.Project(projection.Vec3{X: half, Y: offset, Z: half}),
			r.palette.GridLine, 2, CapButt)
	}
}

func (r *BoardRenderer) drawHover(s Surface, t projection.Transform, center projection.Vec3, cell float64) {
	outer := square(center, cell/2*hoverOuterScale)
	tracePolygon(s, t.ProjectAll(outer[:]...))
	s.Fill(r.palette.HoverFill)
	s.Stroke(r.palette.HoverStroke, 2, CapButt)

	inner := square(center, cell/2*hoverInnerScale)
	tracePolygon(s, t.ProjectAll(inner[:]...))
	s.Stroke(r.palette.HoverInner, 1, CapButt)
}

func (r *BoardRenderer) drawX(s Surface, t projection.Transform, center projection.Vec3, size float64) {
	cross := func(c color.RGBA, width, size float64) {
		strokeLine(s,
			t.Project(projection.Vec3{X: center.X - size, Y: center.Y + size, Z: center.Z}),
			t.Project(projection.Vec3{X: center.X + size, Y: center.Y - size, Z: center.Z}),
			c, width, CapRound)
		strokeLine(s,
			t.Project(projection.Vec3{X: center.X + size, Y: center.Y + size, Z: center.Z}),
			t.Project(projection.Vec3{X: center.X - size, Y: center.Y - size, Z: center.Z}),
			c, width, CapRound)
	}
	xGlow.each(r.palette.GlowBase(), r.palette.XGlow, r.lineWidth, func(c color.RGBA, width, scale float64) {
		cross(c, width, size*scale)
	})
	cross(r.palette.X, r.lineWidth, size)
}

func (r *BoardRenderer) drawO(s Surface, t projection.Transform, center projection.Vec3, radius float64) {
	ring := func(c color.RGBA, width, radius float64) {
		points := make([]projection.Point, circleSegments)
		for i := range points {
			angle := 2 * math.Pi * float64(i) / circleSegments
			points[i] = t.Project(projection.Vec3{
				X: center.X + radius*math.Cos(angle),
				Y: center.Y + radius*math.Sin(angle),
				Z: center.Z,
			})
		}
		tracePolygon(s, points)
		s.Stroke(c, width, CapRound)
	}
	oGlow.each(r.palette.GlowBase(), r.palette.OGlow, r.lineWidth, func(c color.RGBA, width, scale float64) {
		ring(c, width, radius*scale)
	})
	ring(r.palette.O, r.lineWidth, radius)
}

func (r *BoardRenderer) drawWinLine(s Surface, t projection.Transform, line game.Line) {
	start := t.Project(CellCenter(t, line[0]))
	end := t.Project(CellCenter(t, line[2]))
	winGlow.each(r.palette.GlowBase(), r.palette.WinGlow, r.lineWidth, func(c color.RGBA, width, _ float64) {
		strokeLine(s, start, end, c, width, CapRound)
	})
	strokeLine(s, start, end, r.palette.Win, r.lineWidth+2, CapRound)
}
