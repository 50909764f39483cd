package render

import "image/color"

// glow describes the faint wide passes drawn under a stroke. Pass k (from
// passes down to 1) has alpha = alpha - k*alphaStep, width = lineWidth + k*widthStep
// and scale = 1 + k*grow.
type glow struct {
	passes    int
	alpha     float64
	alphaStep float64
	widthStep float64
	grow      float64
}

var (
	xGlow   = glow{passes: 3, alpha: 0.15, alphaStep: 0.04, widthStep: 2, grow: 0.1}
	oGlow   = glow{passes: 3, alpha: 0.12, alphaStep: 0.03, widthStep: 2, grow: 0.1}
	winGlow = glow{passes: 5, alpha: 0.25, alphaStep: 0.04, widthStep: 3}
)

func (g glow) each(base, target color.RGBA, lineWidth float64, pass func(c color.RGBA, width, scale float64)) {
	for offset := g.passes; offset >= 1; offset-- {
		k := float64(offset)
		alpha := g.alpha - k*g.alphaStep
		pass(Lerp(base, target, alpha*2), lineWidth+k*g.widthStep, 1+k*g.grow)
	}
}
