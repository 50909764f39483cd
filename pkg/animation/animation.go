package animation

import (
	"time"

	"github.com/cbodonnell/tictaccube/pkg/game/constants"
	"github.com/cbodonnell/tictaccube/pkg/schedule"
)

// Target receives the state changes produced by the animations.
type Target interface {
	SetFlipAngle(degrees float64)
	SetFlipping(flipping bool)
	SetShakeOffset(x, y float64)
	SetShaking(shaking bool)
	SetSymbolProgress(idx int, progress float64)
}

// Rand is the source of shake offsets.
type Rand interface {
	Float64() float64
}

// Controller drives the flip, shake and symbol fade-in animations. Each
// animation advances in fixed steps on the scheduler and requests a redraw
// after every step.
//
// Every start of an animation gets a new generation. Steps left over from an
// older generation of the same animation do nothing, so the latest start wins.
type Controller struct {
	scheduler schedule.Scheduler
	target    Target
	rng       Rand
	redraw    func()
	timing    Timing

	flipGen    uint64
	shakeGen   uint64
	symbolGens map[int]uint64
}

// Timing holds the step counts and delays of the animations.
type Timing struct {
	SymbolSteps     int
	SymbolStepDelay time.Duration
	FlipSteps       int
	FlipStepDelay   time.Duration
	ShakeSteps      int
	ShakeStepDelay  time.Duration
	ShakeAmplitude  float64
}

func DefaultTiming() Timing {
	return Timing{
		SymbolSteps:     constants.SymbolSteps,
		SymbolStepDelay: constants.SymbolStepDelay,
		FlipSteps:       constants.FlipSteps,
		FlipStepDelay:   constants.FlipStepDelay,
		ShakeSteps:      constants.ShakeSteps,
		ShakeStepDelay:  constants.ShakeStepDelay,
		ShakeAmplitude:  constants.ShakeAmplitude,
	}
}

// SymbolDuration is the time from the start of a fade-in to its last step.
func (t Timing) SymbolDuration() time.Duration {
	return time.Duration(t.SymbolSteps) * t.SymbolStepDelay
}

type NewControllerOptions struct {
	Scheduler schedule.Scheduler
	Target    Target
	Rand      Rand
	// Redraw is called after every step. Optional.
	Redraw func()
	// Timing defaults to DefaultTiming.
	Timing *Timing
}

func NewController(opts NewControllerOptions) *Controller {
	timing := DefaultTiming()
	if opts.Timing != nil {
		timing = *opts.Timing
	}
	redraw := opts.Redraw
	if redraw == nil {
		redraw = func() {}
	}
	return &Controller{
		scheduler:  opts.Scheduler,
		target:     opts.Target,
		rng:        opts.Rand,
		redraw:     redraw,
		timing:     timing,
		symbolGens: make(map[int]uint64),
	}
}

// Timing returns the step counts and delays in use.
func (c *Controller) Timing() Timing {
	return c.timing
}

// Invalidate abandons every animation in flight. Their remaining steps do
// nothing and the target keeps whatever state it was last given.
func (c *Controller) Invalidate() {
	c.flipGen++
	c.shakeGen++
	for idx := range c.symbolGens {
		c.symbolGens[idx]++
	}
}

// AnimateSymbol fades in the mark at cell idx from progress 0 to 1.
func (c *Controller) AnimateSymbol(idx int) {
	c.symbolGens[idx]++
	gen := c.symbolGens[idx]
	c.symbolStep(idx, gen, 0)
}

func (c *Controller) symbolStep(idx int, gen uint64, step int) {
	if c.symbolGens[idx] != gen {
		return
	}
	steps := c.timing.SymbolSteps
	progress := 1.0
	if steps > 0 {
		progress = EaseOutCubic(float64(step) / float64(steps))
	}
	c.target.SetSymbolProgress(idx, progress)
	c.redraw()
	if step >= steps {
		return
	}
	c.scheduler.After(c.timing.SymbolStepDelay, func() {
		c.symbolStep(idx, gen, step+1)
	})
}

// AnimateFlip turns the cube a full revolution. A negative direction turns it
// the other way. The angle ends at exactly 0.
func (c *Controller) AnimateFlip(direction float64) {
	if direction < 0 {
		direction = -1
	} else {
		direction = 1
	}
	c.flipGen++
	gen := c.flipGen
	c.target.SetFlipping(true)
	c.flipStep(gen, direction, 0)
}

func (c *Controller) flipStep(gen uint64, direction float64, step int) {
	if c.flipGen != gen {
		return
	}
	steps := c.timing.FlipSteps
	if step > steps {
		c.target.SetFlipAngle(0)
		c.target.SetFlipping(false)
		c.redraw()
		return
	}
	t := 1.0
	if steps > 0 {
		t = float64(step) / float64(steps)
	}
	c.target.SetFlipAngle(EaseOutCubic(t) * 360 * direction)
	c.redraw()
	c.scheduler.After(c.timing.FlipStepDelay, func() {
		c.flipStep(gen, direction, step+1)
	})
}

// AnimateShake jitters the cube with offsets that decay linearly to 0.
func (c *Controller) AnimateShake() {
	c.shakeGen++
	gen := c.shakeGen
	c.target.SetShaking(true)
	c.shakeStep(gen, 0)
}

func (c *Controller) shakeStep(gen uint64, step int) {
	if c.shakeGen != gen {
		return
	}
	steps := c.timing.ShakeSteps
	if step >= steps {
		c.target.SetShakeOffset(0, 0)
		c.target.SetShaking(false)
		c.redraw()
		return
	}
	amplitude := c.timing.ShakeAmplitude * (1 - float64(step)/float64(steps))
	c.target.SetShakeOffset(c.uniform(amplitude), c.uniform(amplitude))
	c.redraw()
	c.scheduler.After(c.timing.ShakeStepDelay, func() {
		c.shakeStep(gen, step+1)
	})
}

// uniform returns a value in [-amplitude, amplitude).
func (c *Controller) uniform(amplitude float64) float64 {
	return (c.rng.Float64()*2 - 1) * amplitude
}
