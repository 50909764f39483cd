package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cbodonnell/tictaccube/pkg/render"
)

// BackgroundObject fills the screen with a color and, if set, an image scaled
// to cover the whole screen.
type BackgroundObject struct {
	*BaseObject

	color color.Color
	image *ebiten.Image
}

type NewBackgroundObjectOptions struct {
	Color color.Color
	// Image is optional.
	Image *ebiten.Image
}

func NewBackgroundObject(id string, opts NewBackgroundObjectOptions) *BackgroundObject {
	return &BackgroundObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: -100}),
		color:      opts.Color,
		image:      opts.Image,
	}
}

func (o *BackgroundObject) Draw(screen *ebiten.Image) {
	if o.color != nil {
		screen.Fill(o.color)
	}
	if o.image == nil {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := o.image.Bounds().Dx(), o.image.Bounds().Dy()
	scale, ox, oy := render.Cover(float64(iw), float64(ih), float64(sw), float64(sh))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox, oy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.image, op)
}
