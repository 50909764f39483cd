package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextObject draws a line of text horizontally centered on the screen.
type TextObject struct {
	*BaseObject

	face  font.Face
	text  func() string
	color func() color.Color
	y     float64
}

type NewTextObjectOptions struct {
	// Face defaults to fonts.TTFNormalFont.
	Face font.Face
	// Text is called every frame.
	Text func() string
	// Color is called every frame. Defaults to white.
	Color func() color.Color
	// Y is the baseline of the text.
	Y      float64
	ZIndex int
}

func NewTextObject(id string, opts NewTextObjectOptions) *TextObject {
	clr := opts.Color
	if clr == nil {
		clr = func() color.Color { return color.White }
	}
	return &TextObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		face:       faceOrDefault(opts.Face),
		text:       opts.Text,
		color:      clr,
		y:          opts.Y,
	}
}

func (o *TextObject) Draw(screen *ebiten.Image) {
	if o.text == nil {
		return
	}
	drawCentered(screen, o.text(), o.face, o.y, o.color(), 1)
}

func drawCentered(screen *ebiten.Image, t string, f font.Face, y float64, clr color.Color, alpha float32) {
	if t == "" {
		return
	}
	bounds, _ := font.BoundString(f, t)
	width := float64((bounds.Max.X - bounds.Min.X) >> 6)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-width/2, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.DrawWithOptions(screen, t, f, op)
}
