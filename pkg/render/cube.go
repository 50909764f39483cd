package render

import (
	"sort"

	"github.com/cbodonnell/tictaccube/pkg/projection"
)

// FaceKind names one of the six cube faces.
type FaceKind int

const (
	FaceFront FaceKind = iota
	FaceBack
	FaceTop
	FaceBottom
	FaceRight
	FaceLeft
	faceKindCount
)

func (k FaceKind) String() string {
	switch k {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	}
	return "unknown"
}

// VisibilityThreshold is the smallest rotated normal Z of a drawn face.
// It is slightly negative so faces seen exactly edge-on do not flicker.
const VisibilityThreshold = -0.01

// Face is the fixed description of one cube face on a unit cube.
type Face struct {
	Kind FaceKind
	// Vertices indexes the result of Vertices, in drawing order.
	Vertices [4]int
	// Normal is the outward unit normal.
	Normal projection.Vec3
	// U and V are unit vectors spanning the face.
	U, V projection.Vec3
}

// Center returns the face center on a cube with the given half extent.
func (f Face) Center(half float64) projection.Vec3 {
	return f.Normal.Scale(half)
}

// Point returns the point at (u, v) in the face plane.
func (f Face) Point(half, u, v float64) projection.Vec3 {
	return f.Center(half).Add(f.U.Scale(u)).Add(f.V.Scale(v))
}

var (
	axisX = projection.Vec3{X: 1}
	axisY = projection.Vec3{Y: 1}
	axisZ = projection.Vec3{Z: 1}
)

// Faces lists the cube faces in declaration order.
var Faces = [faceKindCount]Face{
	{Kind: FaceFront, Vertices: [4]int{0, 1, 2, 3}, Normal: projection.Vec3{Z: 1}, U: axisX, V: axisY},
	{Kind: FaceBack, Vertices: [4]int{5, 4, 7, 6}, Normal: projection.Vec3{Z: -1}, U: axisX, V: axisY},
	{Kind: FaceTop, Vertices: [4]int{0, 1, 5, 4}, Normal: projection.Vec3{Y: 1}, U: axisX, V: axisZ},
	{Kind: FaceBottom, Vertices: [4]int{3, 2, 6, 7}, Normal: projection.Vec3{Y: -1}, U: axisX, V: axisZ},
	{Kind: FaceRight, Vertices: [4]int{1, 2, 6, 5}, Normal: projection.Vec3{X: 1}, U: axisY, V: axisZ},
	{Kind: FaceLeft, Vertices: [4]int{0, 3, 7, 4}, Normal: projection.Vec3{X: -1}, U: axisY, V: axisZ},
}

// Vertices returns the 8 cube corners. 0-3 are the front face and 4-7 the back.
func Vertices(half float64) [8]projection.Vec3 {
	return [8]projection.Vec3{
		{X: -half, Y: half, Z: half},
		{X: half, Y: half, Z: half},
		{X: half, Y: -half, Z: half},
		{X: -half, Y: -half, Z: half},
		{X: -half, Y: half, Z: -half},
		{X: half, Y: half, Z: -half},
		{X: half, Y: -half, Z: -half},
		{X: -half, Y: -half, Z: -half},
	}
}

// DepthFace is a visible face with its depth key.
type DepthFace struct {
	Face
	Depth float64
}

// VisibleFaces returns the faces turned towards the viewer, farthest first.
// Faces at equal depth keep their declaration order.
func VisibleFaces(t projection.Transform) []DepthFace {
	visible := make([]DepthFace, 0, len(Faces))
	for _, f := range Faces {
		if t.TransformNormal(f.Normal).Z <= VisibilityThreshold {
			continue
		}
		visible = append(visible, DepthFace{
			Face:  f,
			Depth: t.FaceDepth(f.Center(t.Half)),
		})
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Depth < visible[j].Depth
	})
	return visible
}

// CubeRenderer paints the cube with the painter's algorithm and hands the
// front face to a BoardRenderer.
type CubeRenderer struct {
	palette Palette
	board   *BoardRenderer
}

type NewCubeRendererOptions struct {
	// Palette defaults to DefaultPalette.
	Palette *Palette
	// Board draws the front face content. Defaults to a BoardRenderer with the same palette.
	Board *BoardRenderer
}

func NewCubeRenderer(opts NewCubeRendererOptions) *CubeRenderer {
	palette := DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	board := opts.Board
	if board == nil {
		board = NewBoardRenderer(NewBoardRendererOptions{Palette: &palette})
	}
	return &CubeRenderer{
		palette: palette,
		board:   board,
	}
}

// Palette returns the colors the renderer paints with.
func (r *CubeRenderer) Palette() Palette {
	return r.palette
}

// Draw paints the visible faces of the cube and the board on its front face.
func (r *CubeRenderer) Draw(s Surface, t projection.Transform, view BoardView) {
	vertices := Vertices(t.Half)
	for _, f := range VisibleFaces(t) {
		style := r.palette.Faces[f.Kind]

		corners := make([]projection.Point, len(f.Vertices))
		for i, vi := range f.Vertices {
			corners[i] = t.Project(vertices[vi])
		}
		tracePolygon(s, corners)
		s.Fill(style.Fill)
		if style.StrokeWidth > 0 {
			s.Stroke(style.Stroke, style.StrokeWidth, CapButt)
		}

		if f.Kind == FaceFront {
			r.board.Draw(s, t, view)
			continue
		}
		if style.GridWidth > 0 {
			r.drawFaceGrid(s, t, f.Face, style)
		}
	}
}

// drawFaceGrid draws the two interior lines in each direction of a side face.
func (r *CubeRenderer) drawFaceGrid(s Surface, t projection.Transform, f Face, style FaceStyle) {
	half := t.Half
	size := t.Size()
	for i := 1; i <= 2; i++ {
		c := -half + float64(i)*size/3
		strokeLine(s, t.Project(f.Point(half, c, -half)), t.Project(f.Point(half, c, half)), style.Grid, style.GridWidth, CapButt)
		strokeLine(s, t.Project(f.Point(half, -half, c)), t.Project(f.Point(half, half, c)), style.Grid, style.GridWidth, CapButt)
	}
}
