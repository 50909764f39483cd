package scenes

import (
	"image/color"

	"github.com/cbodonnell/tictaccube/client/objects"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	objects.Lifecycle

	// Scene specific methods
	GetRoot() objects.GameObject
}

type BaseScene struct {
	Root objects.GameObject
}

func NewBaseScene(root objects.GameObject) *BaseScene {
	return &BaseScene{
		Root: root,
	}
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.Root
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.Root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.Root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.Root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.Root, screen)
}

var (
	textColor         = color.NRGBA{R: 232, G: 236, B: 245, A: 255}
	disabledTextColor = color.NRGBA{R: 120, G: 128, B: 150, A: 255}
	errorTextColor    = color.NRGBA{R: 255, G: 107, B: 107, A: 255}
)

func newButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 123, G: 104, B: 238, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 143, G: 126, B: 245, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 90, G: 74, B: 170, A: 255}),
	}
}
