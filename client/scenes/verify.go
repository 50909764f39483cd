package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/tictaccube/client/fonts"
	"github.com/cbodonnell/tictaccube/client/objects"
	"github.com/cbodonnell/tictaccube/client/ui"
	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/verify"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// Verification is what the verify scene shows about the handshake.
type Verification interface {
	Status() verify.Status
	Attempts() int
	MaxAttempts() int
}

// VerifyScene asks the player to start the bot with the session link while the
// locked cube turns behind the dialog.
type VerifyScene struct {
	*BaseScene

	verification Verification
	link         string
	onOpenLink   func() error
	onRetry      func() error

	ui         *ebitenui.UI
	statusText *widget.Text
	lastStatus verify.Status
	ticks      int
	errMsg     string
}

type VerifySceneOptions struct {
	Verification Verification
	// Link is the deep link that starts the bot with the session token.
	Link string
	// Background and Cube are drawn below the dialog.
	Background objects.GameObject
	Cube       objects.GameObject
	// OnOpenLink opens Link outside the game.
	OnOpenLink func() error
	// OnRetry restarts verification after a failure.
	OnRetry func() error
}

var _ Scene = &VerifyScene{}

func NewVerifyScene(opts VerifySceneOptions) (Scene, error) {
	root := objects.NewSortedZIndexObject("verify-root")
	for _, child := range []objects.GameObject{opts.Background, opts.Cube} {
		if child == nil {
			continue
		}
		if err := root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}
	return &VerifyScene{
		BaseScene:    NewBaseScene(root),
		verification: opts.Verification,
		link:         opts.Link,
		onOpenLink:   opts.OnOpenLink,
		onRetry:      opts.OnRetry,
		lastStatus:   opts.Verification.Status(),
	}, nil
}

func (s *VerifyScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *VerifyScene) renderUI() {
	normalFontFace := fonts.TTFNormalFont
	smallFontFace := fonts.TTFSmallFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 11, G: 14, B: 23, A: 225})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(panel)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Tic Tac Cube", fonts.TTFLargeFont, textColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Start the bot to play and get your prize.", normalFontFace, textColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(s.link, smallFontFace, disabledTextColor),
		widget.TextOpts.WidgetOpts(centered),
	))

	status := s.verification.Status()
	label := "Open Telegram"
	handler := s.openLink
	if status == verify.StatusFailed {
		label = "Try again"
		handler = s.retry
	}
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.Image(newButtonImage()),
		widget.ButtonOpts.Text(label, normalFontFace, &widget.ButtonTextColor{
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
			handler()
		}),
	)
	panel.AddChild(button)

	s.statusText = widget.NewText(
		widget.TextOpts.Text(s.statusLine(), smallFontFace, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)
	panel.AddChild(s.statusText)

	if s.errMsg != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(s.errMsg, smallFontFace, errorTextColor),
			widget.TextOpts.WidgetOpts(centered),
		))
		s.errMsg = ""
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *VerifyScene) openLink() {
	if s.onOpenLink == nil {
		return
	}
	if err := s.onOpenLink(); err != nil {
		log.Error("Failed to open link: %v", err)
		s.errMsg = playerMessage(err, "Could not open the browser. Open the link above manually.")
		s.renderUI()
	}
}

func (s *VerifyScene) retry() {
	if s.onRetry == nil {
		return
	}
	if err := s.onRetry(); err != nil {
		log.Error("Failed to retry verification: %v", err)
		s.errMsg = playerMessage(err, "Failed to restart verification. Please try again.")
	}
	s.renderUI()
}

// playerMessage returns the message of an ActionableError in err's chain, or fallback.
func playerMessage(err error, fallback string) string {
	var actionableErr *ui.ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr.Message
	}
	return fallback
}

func (s *VerifyScene) statusLine() string {
	switch s.verification.Status() {
	case verify.StatusPolling:
		dots := strings.Repeat(".", (s.ticks/30)%4)
		return fmt.Sprintf("Waiting for confirmation%-3s  %d/%d", dots, s.verification.Attempts(), s.verification.MaxAttempts())
	case verify.StatusFailed:
		return "Not confirmed in time."
	case verify.StatusConfirmed, verify.StatusBypassed:
		return "Connected!"
	}
	return ""
}

func (s *VerifyScene) Update() error {
	s.ticks++
	if status := s.verification.Status(); status != s.lastStatus {
		s.lastStatus = status
		s.renderUI()
	}
	s.statusText.Label = s.statusLine()
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *VerifyScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}
