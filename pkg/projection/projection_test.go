package projection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func length(v Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func TestTransform_frontFacesViewerAtRest(t *testing.T) {
	tr := NewTransform(260, 390, 300, 0)

	front := tr.TransformNormal(Vec3{0, 0, 1})
	assert.Greater(t, front.Z, 0.0)

	back := tr.TransformNormal(Vec3{0, 0, -1})
	assert.Less(t, back.Z, 0.0)

	assert.Greater(t, tr.FaceDepth(Vec3{0, 0, tr.Half}), tr.FaceDepth(Vec3{0, 0, -tr.Half}))
}

func TestTransform_normalAndDepthAgree(t *testing.T) {
	normals := []Vec3{
		{0, 0, 1}, {0, 0, -1},
		{0, 1, 0}, {0, -1, 0},
		{1, 0, 0}, {-1, 0, 0},
	}
	for _, flip := range []float64{0, 13, 45, 90, 135, 179, 180, 225, 270, 333, 360, -90, -200} {
		tr := NewTransform(0, 0, 300, flip)

		for _, n := range normals {
			center := n.Scale(tr.Half)
			assert.InDelta(t, tr.Half*tr.TransformNormal(n).Z, tr.FaceDepth(center), epsilon, "flip %v normal %v", flip, n)
		}

		// whichever of front and back faces the viewer is also the nearer one
		frontNormal := tr.TransformNormal(Vec3{0, 0, 1}).Z
		frontNearer := tr.FaceDepth(Vec3{0, 0, tr.Half}) > tr.FaceDepth(Vec3{0, 0, -tr.Half})
		if math.Abs(frontNormal) > epsilon {
			assert.Equal(t, frontNormal > 0, frontNearer, "flip %v", flip)
		}
	}
}

func TestTransform_halfTurnShowsBack(t *testing.T) {
	tr := NewTransform(0, 0, 300, 180)
	assert.Less(t, tr.TransformNormal(Vec3{0, 0, 1}).Z, 0.0)
	assert.Greater(t, tr.TransformNormal(Vec3{0, 0, -1}).Z, 0.0)
}

func TestTransform_Project(t *testing.T) {
	tr := NewTransform(260, 390, 300, 0)

	center := tr.Project(Vec3{})
	assert.InDelta(t, 260, center.X, epsilon)
	assert.InDelta(t, 390, center.Y, epsilon)

	up := tr.Project(Vec3{0, 100, 0})
	assert.Less(t, up.Y, center.Y, "screen y grows downward")

	for _, v := range []Vec3{{150, 150, 150}, {-150, 20, 150}, {10, -150, -150}} {
		r := tr.Rotate(v)
		p := tr.Project(v)
		assert.InDelta(t, tr.CenterX+r.X*Scale, p.X, epsilon)
		assert.InDelta(t, tr.CenterY-r.Y*Scale, p.Y, epsilon)
	}
}

func TestTransform_Rotate(t *testing.T) {
	v := Vec3{150, -150, 150}
	for _, flip := range []float64{0, 30, 90, 200} {
		tr := NewTransform(0, 0, 300, flip)
		assert.InDelta(t, length(v), length(tr.Rotate(v)), epsilon)
	}

	full := NewTransform(0, 0, 300, 360).Rotate(v)
	rest := NewTransform(0, 0, 300, 0).Rotate(v)
	assert.InDelta(t, rest.X, full.X, 1e-6)
	assert.InDelta(t, rest.Y, full.Y, 1e-6)
	assert.InDelta(t, rest.Z, full.Z, 1e-6)
}

func TestTransform_WithFlip(t *testing.T) {
	tr := NewTransform(10, 20, 300, 90)
	rest := tr.WithFlip(0)
	assert.Equal(t, 0.0, rest.Flip)
	assert.Equal(t, 90.0, tr.Flip)
	assert.Equal(t, 300.0, rest.Size())
}
