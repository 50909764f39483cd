package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tictaccube/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// TextEffect is a short lived banner that rises and fades out.
type TextEffect struct {
	*BaseObject

	text  string
	face  font.Face
	y     float64
	color color.Color
	rise  bool
	ttl   int
	total int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// Face defaults to fonts.TTFLargeFont.
	Face font.Face
	// Y is the starting baseline of the text.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// Rise moves the text up while it fades.
	Rise bool
	// TTL is the time to live in milliseconds.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	face := opts.Face
	if face == nil {
		face = fonts.TTFLargeFont
	}

	baseObjectOpts := &NewBaseObjectOpts{
		ZIndex: opts.ZIndex,
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, baseObjectOpts),
		text:       opts.Text,
		face:       face,
		y:          opts.Y,
		color:      clr,
		rise:       opts.Rise,
		ttl:        opts.TTL,
		total:      opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	if o.rise {
		factor := 60 / float64(ebiten.TPS())
		o.y -= 0.5 * factor
	}
	if o.ttl > 0 {
		o.ttl -= 1000 / ebiten.TPS()
		if o.ttl <= 0 {
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	alpha := float32(1)
	if o.total > 0 {
		alpha = float32(o.ttl) / float32(o.total)
		if alpha < 0 {
			alpha = 0
		}
	}
	drawCentered(screen, o.text, o.face, o.y, o.color, alpha)
}

func faceOrDefault(f font.Face) font.Face {
	if f == nil {
		return fonts.TTFNormalFont
	}
	return f
}
