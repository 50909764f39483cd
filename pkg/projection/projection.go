package projection

import "math"

const (
	// DefaultTiltX is the fixed rotation about the horizontal axis, in degrees.
	DefaultTiltX = 15.0
	// DefaultTiltY is the fixed rotation about the vertical axis, in degrees.
	DefaultTiltY = -20.0
	// Scale maps model units to screen pixels.
	Scale = 0.9
)

// Vec3 is a point or direction in model space. Y points up and Z points
// towards the viewer.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Point is a position on the drawing surface. Y grows downward.
type Point struct {
	X, Y float64
}

// Transform describes the camera for one frame.
type Transform struct {
	// CenterX is the screen x of the cube center.
	CenterX float64
	// CenterY is the screen y of the cube center.
	CenterY float64
	// Half is half the cube edge length.
	Half float64
	// TiltX is the fixed rotation about the horizontal axis, in degrees.
	TiltX float64
	// TiltY is the fixed rotation about the vertical axis, in degrees.
	TiltY float64
	// Flip is the current flip rotation about the vertical axis, in degrees.
	Flip float64
}

// NewTransform returns a transform with the default tilt.
func NewTransform(centerX, centerY, size, flip float64) Transform {
	return Transform{
		CenterX: centerX,
		CenterY: centerY,
		Half:    size / 2,
		TiltX:   DefaultTiltX,
		TiltY:   DefaultTiltY,
		Flip:    flip,
	}
}

// WithFlip returns a copy of t with a different flip angle.
func (t Transform) WithFlip(flip float64) Transform {
	t.Flip = flip
	return t
}

// Size returns the cube edge length.
func (t Transform) Size() float64 {
	return t.Half * 2
}

// Rotate applies the flip, then the vertical tilt, then the horizontal tilt.
// Project, TransformNormal and FaceDepth all go through it.
func (t Transform) Rotate(v Vec3) Vec3 {
	v = rotateY(v, radians(t.Flip))
	v = rotateY(v, radians(t.TiltY))
	return rotateX(v, radians(t.TiltX))
}

// Project maps a model point to the drawing surface.
func (t Transform) Project(v Vec3) Point {
	r := t.Rotate(v)
	return Point{
		X: t.CenterX + r.X*Scale,
		Y: t.CenterY - r.Y*Scale,
	}
}

// ProjectAll maps several model points to the drawing surface.
func (t Transform) ProjectAll(vs ...Vec3) []Point {
	points := make([]Point, len(vs))
	for i, v := range vs {
		points[i] = t.Project(v)
	}
	return points
}

// TransformNormal rotates a direction without scaling or translating it.
func (t Transform) TransformNormal(n Vec3) Vec3 {
	return t.Rotate(n)
}

// FaceDepth returns the rotated Z of a point. Larger values are nearer the viewer.
func (t Transform) FaceDepth(c Vec3) float64 {
	return t.Rotate(c).Z
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func rotateY(v Vec3, a float64) Vec3 {
	cos, sin := math.Cos(a), math.Sin(a)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

func rotateX(v Vec3, a float64) Vec3 {
	cos, sin := math.Cos(a), math.Sin(a)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}
