package scenes

import (
	"github.com/cbodonnell/tictaccube/client/fonts"
	"github.com/cbodonnell/tictaccube/client/objects"
	"github.com/cbodonnell/tictaccube/pkg/game/constants"
)

type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

func NewErrorScene(msg string) (Scene, error) {
	root := objects.NewSortedZIndexObject("error-root")
	scene := &ErrorScene{
		BaseScene: NewBaseScene(root),
	}
	if err := root.AddChild("error-message", objects.NewTextObject("error-message", objects.NewTextObjectOptions{
		Face: fonts.TTFLargeFont,
		Text: func() string { return msg },
		Y:    constants.ScreenHeight / 2,
	})); err != nil {
		return nil, err
	}
	if err := root.AddChild("error-hint", objects.NewTextObject("error-hint", objects.NewTextObjectOptions{
		Face: fonts.TTFSmallFont,
		Text: func() string { return "Click to try again" },
		Y:    constants.ScreenHeight/2 + 40,
	})); err != nil {
		return nil, err
	}
	return scene, nil
}
