package render

import (
	"image/color"

	"github.com/cbodonnell/tictaccube/pkg/projection"
)

// LineCap is the shape drawn at the ends of an open stroked path.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// Surface is a 2D drawing target with canvas-style path operations.
// A path is started with BeginPath and stays current until the next BeginPath,
// so it can be filled and then stroked.
type Surface interface {
	// Clear starts a new frame.
	Clear()
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill(c color.RGBA)
	Stroke(c color.RGBA, width float64, lineCap LineCap)
}

func tracePolygon(s Surface, points []projection.Point) {
	s.BeginPath()
	for i, p := range points {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
			continue
		}
		s.LineTo(p.X, p.Y)
	}
	s.ClosePath()
}

func strokeLine(s Surface, from, to projection.Point, c color.RGBA, width float64, lineCap LineCap) {
	s.BeginPath()
	s.MoveTo(from.X, from.Y)
	s.LineTo(to.X, to.Y)
	s.Stroke(c, width, lineCap)
}
