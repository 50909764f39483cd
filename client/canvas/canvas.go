package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cbodonnell/tictaccube/pkg/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas paints render.Surface paths onto an ebiten image with anti-aliased
// triangles.
type Canvas struct {
	target *ebiten.Image
	path   vector.Path

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Surface = &Canvas{}

func New() *Canvas {
	return &Canvas{}
}

// SetTarget sets the image the following operations draw on.
func (c *Canvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Clear drops the current path. The target keeps its pixels so that whatever
// was drawn below the cube stays visible.
func (c *Canvas) Clear() {
	c.path = vector.Path{}
}

func (c *Canvas) BeginPath() {
	c.path = vector.Path{}
}

func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(float32(x), float32(y))
}

func (c *Canvas) LineTo(x, y float64) {
	c.path.LineTo(float32(x), float32(y))
}

func (c *Canvas) ClosePath() {
	c.path.Close()
}

func (c *Canvas) Fill(clr color.RGBA) {
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.draw(clr)
}

func (c *Canvas) Stroke(clr color.RGBA, width float64, lineCap render.LineCap) {
	opts := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapButt,
	}
	if lineCap == render.CapRound {
		opts.LineCap = vector.LineCapRound
	}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], opts)
	c.draw(clr)
}

func (c *Canvas) draw(clr color.RGBA) {
	if c.target == nil || len(c.indices) == 0 {
		return
	}
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	c.target.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
