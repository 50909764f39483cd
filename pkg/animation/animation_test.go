package animation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/cbodonnell/tictaccube/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	flipAngle  float64
	flipAngles []float64
	flipping   bool
	shakeX     float64
	shakeY     float64
	shaking    bool
	progress   map[int][]float64
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{progress: make(map[int][]float64)}
}

func (f *fakeTarget) SetFlipAngle(degrees float64) {
	f.flipAngle = degrees
	f.flipAngles = append(f.flipAngles, degrees)
}

func (f *fakeTarget) SetFlipping(flipping bool) { f.flipping = flipping }

func (f *fakeTarget) SetShakeOffset(x, y float64) {
	f.shakeX, f.shakeY = x, y
}

func (f *fakeTarget) SetShaking(shaking bool) { f.shaking = shaking }

func (f *fakeTarget) SetSymbolProgress(idx int, progress float64) {
	f.progress[idx] = append(f.progress[idx], progress)
}

func newController(target Target, redraws *int) (*Controller, *schedule.TickScheduler) {
	s := schedule.NewTickScheduler()
	c := NewController(NewControllerOptions{
		Scheduler: s,
		Target:    target,
		Rand:      rand.New(rand.NewSource(1)),
		Redraw: func() {
			if redraws != nil {
				*redraws++
			}
		},
	})
	return c, s
}

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-12)
	assert.Equal(t, 1.0, EaseOutCubic(2))
	assert.Equal(t, 0.0, EaseOutCubic(-1))

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestController_AnimateFlip(t *testing.T) {
	for _, direction := range []float64{1, -1} {
		t.Run("direction", func(t *testing.T) {
			target := newFakeTarget()
			c, s := newController(target, nil)

			c.AnimateFlip(direction)
			assert.True(t, target.flipping)

			s.Advance(c.Timing().FlipStepDelay * time.Duration(c.Timing().FlipSteps) / 2)
			assert.True(t, target.flipping)
			assert.NotZero(t, target.flipAngle)
			assert.Equal(t, direction > 0, target.flipAngle > 0)

			s.RunUntilIdle(time.Millisecond, 10_000)
			assert.False(t, target.flipping)
			assert.Exactly(t, 0.0, target.flipAngle)
			assert.Zero(t, s.Pending())

			// steps 0..30 sweep the full turn, then the angle snaps back
			require.Len(t, target.flipAngles, c.Timing().FlipSteps+2)
			assert.InDelta(t, 360*direction, target.flipAngles[len(target.flipAngles)-2], 1e-9)
		})
	}
}

func TestController_AnimateFlip_duration(t *testing.T) {
	target := newFakeTarget()
	c, s := newController(target, nil)

	// steps 0..30 turn the cube and step 31 settles it
	c.AnimateFlip(1)
	s.Advance(31*16*time.Millisecond - time.Millisecond)
	assert.True(t, target.flipping)
	s.Advance(time.Millisecond)
	assert.False(t, target.flipping)
}

func TestController_AnimateSymbol(t *testing.T) {
	target := newFakeTarget()
	redraws := 0
	c, s := newController(target, &redraws)

	c.AnimateSymbol(4)
	s.RunUntilIdle(c.Timing().SymbolStepDelay, 100)

	progress := target.progress[4]
	require.Len(t, progress, c.Timing().SymbolSteps+1)
	assert.Equal(t, 0.0, progress[0])
	assert.Equal(t, 1.0, progress[len(progress)-1])
	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1])
	}
	assert.Equal(t, len(progress), redraws)
	assert.Equal(t, c.Timing().SymbolDuration(), s.Now())
}

func TestController_AnimateShake(t *testing.T) {
	target := newFakeTarget()
	c, s := newController(target, nil)

	c.AnimateShake()
	assert.True(t, target.shaking)
	amplitude := c.Timing().ShakeAmplitude
	assert.LessOrEqual(t, target.shakeX, amplitude)
	assert.GreaterOrEqual(t, target.shakeX, -amplitude)

	for step := 1; step < c.Timing().ShakeSteps; step++ {
		s.Advance(c.Timing().ShakeStepDelay)
		limit := amplitude * (1 - float64(step)/float64(c.Timing().ShakeSteps))
		assert.LessOrEqual(t, target.shakeX, limit)
		assert.GreaterOrEqual(t, target.shakeX, -limit)
		assert.LessOrEqual(t, target.shakeY, limit)
		assert.GreaterOrEqual(t, target.shakeY, -limit)
	}

	s.Advance(c.Timing().ShakeStepDelay)
	assert.False(t, target.shaking)
	assert.Zero(t, target.shakeX)
	assert.Zero(t, target.shakeY)
	assert.Zero(t, s.Pending())
}

func TestController_retriggerSupersedes(t *testing.T) {
	target := newFakeTarget()
	c, s := newController(target, nil)

	c.AnimateSymbol(0)
	s.Advance(5 * c.Timing().SymbolStepDelay)
	c.AnimateSymbol(0)
	assert.Equal(t, 0.0, target.progress[0][len(target.progress[0])-1], "restart begins at 0")

	s.RunUntilIdle(time.Millisecond, 10_000)
	progress := target.progress[0]
	assert.Equal(t, 1.0, progress[len(progress)-1])
	// 6 steps of the first run, then a full second run
	assert.Len(t, progress, 6+c.Timing().SymbolSteps+1)
}

func TestController_flipRetriggeredMidway(t *testing.T) {
	target := newFakeTarget()
	c, s := newController(target, nil)

	c.AnimateFlip(1)
	s.Advance(10 * c.Timing().FlipStepDelay)
	c.AnimateFlip(-1)

	s.RunUntilIdle(time.Millisecond, 10_000)
	assert.False(t, target.flipping)
	assert.Exactly(t, 0.0, target.flipAngle)
	for _, a := range target.flipAngles[11:] {
		assert.LessOrEqual(t, a, 0.0, "only the latest flip moves the cube")
	}
}

func TestController_Invalidate(t *testing.T) {
	target := newFakeTarget()
	c, s := newController(target, nil)

	c.AnimateSymbol(1)
	c.AnimateShake()
	c.AnimateFlip(1)
	before := len(target.flipAngles)

	c.Invalidate()
	s.RunUntilIdle(time.Millisecond, 10_000)

	assert.Len(t, target.progress[1], 1)
	assert.Len(t, target.flipAngles, before)
	assert.Zero(t, s.Pending())
}
