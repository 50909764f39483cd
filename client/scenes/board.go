package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tictaccube/client/fonts"
	"github.com/cbodonnell/tictaccube/client/objects"
	"github.com/cbodonnell/tictaccube/pkg/game"
	"github.com/cbodonnell/tictaccube/pkg/game/constants"
	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/render"
	"github.com/cbodonnell/tictaccube/pkg/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// BoardScene is where the games are played.
type BoardScene struct {
	*BaseScene

	session *session.Session
	palette render.Palette

	ui           *ebitenui.UI
	lastRevealed bool
	effects      int
}

type BoardSceneOptions struct {
	Session *session.Session
	// Background and Cube are the scene's drawable objects.
	Background objects.GameObject
	Cube       objects.GameObject
	// Palette colors the status line. Defaults to render.DefaultPalette.
	Palette *render.Palette
}

var _ Scene = &BoardScene{}

func NewBoardScene(opts BoardSceneOptions) (Scene, error) {
	palette := render.DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	root := objects.NewSortedZIndexObject("board-root")
	scene := &BoardScene{
		BaseScene: NewBaseScene(root),
		session:   opts.Session,
		palette:   palette,
	}

	children := []objects.GameObject{
		opts.Background,
		opts.Cube,
		objects.NewTextObject("board-title", objects.NewTextObjectOptions{
			Face:  fonts.TTFLargeFont,
			Text:  func() string { return "Tic Tac Cube" },
			Color: func() color.Color { return palette.TextPrimary },
			Y:     80,
		}),
		objects.NewTextObject("board-status", objects.NewTextObjectOptions{
			Face:   fonts.TTFNormalFont,
			Text:   func() string { return session.StatusText(scene.session.State()) },
			Color:  scene.statusColor,
			Y:      constants.ScreenHeight - 170,
			ZIndex: 1,
		}),
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		if err := root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}
	return scene, nil
}

func (s *BoardScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *BoardScene) statusColor() color.Color {
	st := s.session.State()
	if !st.Revealed {
		if st.Phase() == session.PhaseOpponentTurn {
			return s.palette.TextSecondary
		}
		return s.palette.TextPrimary
	}
	switch {
	case st.Outcome.Result == game.ResultWin && st.Outcome.Winner == game.MarkX:
		return s.palette.Win
	case st.Outcome.Result == game.ResultWin:
		return s.palette.Loss
	default:
		return s.palette.Draw
	}
}

func (s *BoardScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Bottom: 80}),
		)),
	)

	if s.session.State().Revealed {
		playAgainButton := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionCenter,
					VerticalPosition:   widget.AnchorLayoutPositionEnd,
				}),
			),
			widget.ButtonOpts.Image(newButtonImage()),
			widget.ButtonOpts.Text("Play again", fonts.TTFNormalFont, &widget.ButtonTextColor{
				Idle:     textColor,
				Disabled: disabledTextColor,
			}),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   30,
				Right:  30,
				Top:    8,
				Bottom: 8,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				s.PlayAgain()
			}),
		)
		rootContainer.AddChild(playAgainButton)
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

// PlayAgain flips the cube to a new game once the current one is revealed.
func (s *BoardScene) PlayAgain() {
	if !s.session.State().Revealed {
		return
	}
	log.Debug("Play again")
	s.session.Reset(true)
}

func (s *BoardScene) onReveal() error {
	st := s.session.State()
	if !(st.Outcome.Result == game.ResultWin && st.Outcome.Winner == game.MarkX) {
		return nil
	}
	s.effects++
	id := fmt.Sprintf("board-win-effect-%d", s.effects)
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   "You won!",
		Y:      constants.ScreenHeight - 220,
		Color:  s.palette.Win,
		Rise:   true,
		TTL:    1500,
		ZIndex: 10,
	})
	if err := s.Root.AddChild(id, effect); err != nil {
		return fmt.Errorf("failed to add win effect: %v", err)
	}
	return nil
}

func (s *BoardScene) Update() error {
	if revealed := s.session.State().Revealed; revealed != s.lastRevealed {
		s.lastRevealed = revealed
		if revealed {
			if err := s.onReveal(); err != nil {
				return err
			}
		}
		s.renderUI()
	}
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *BoardScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}
