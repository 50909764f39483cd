package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/tictaccube/client/audio"
	"github.com/cbodonnell/tictaccube/client/input"
	"github.com/cbodonnell/tictaccube/client/objects"
	"github.com/cbodonnell/tictaccube/client/scenes"
	"github.com/cbodonnell/tictaccube/client/ui"
	gamerules "github.com/cbodonnell/tictaccube/pkg/game"
	"github.com/cbodonnell/tictaccube/pkg/game/constants"
	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/render"
	"github.com/cbodonnell/tictaccube/pkg/schedule"
	"github.com/cbodonnell/tictaccube/pkg/session"
	"github.com/cbodonnell/tictaccube/pkg/verify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/browser"
)

// ChatNotifier delivers outcome messages to the verified chat.
type ChatNotifier interface {
	session.Notifier
	SetChatID(chatID int64)
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// scheduler drives every timed step of the session and the poller.
	scheduler *schedule.TickScheduler
	// session is the tic-tac-toe session on the cube.
	session *session.Session
	// poller confirms the player's chat before play starts.
	poller *verify.Poller
	// notifier is optional.
	notifier ChatNotifier
	// audio is optional.
	audio *audio.Player
	// background is drawn behind the cube. Optional.
	background *ebiten.Image
	palette    render.Palette
	bot        string
	openURL    func(string) error
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type GameMode int

const (
	GameModeVerifying GameMode = iota
	GameModeVerificationFailed
	GameModePlay
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeVerifying:
		return "Verifying"
	case GameModeVerificationFailed:
		return "Verification Failed"
	case GameModePlay:
		return "Play"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug bool
	// Rand drives the opponent, the promo codes and the shake.
	Rand gamerules.Rand
	// Checker confirms the session token. Without one play starts immediately.
	Checker verify.Checker
	// Notifier receives the outcome of every game once the chat is known. Optional.
	Notifier ChatNotifier
	// Bot is the username of the bot the deep link points to.
	Bot string
	// Audio is optional.
	Audio *audio.Player
	// Background is optional.
	Background *ebiten.Image
	// OpenURL defaults to browser.OpenURL.
	OpenURL func(string) error
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug:      opts.Debug,
		scheduler:  schedule.NewTickScheduler(),
		notifier:   opts.Notifier,
		audio:      opts.Audio,
		background: opts.Background,
		palette:    render.DefaultPalette(),
		bot:        opts.Bot,
		openURL:    opts.OpenURL,
	}
	if g.openURL == nil {
		g.openURL = browser.OpenURL
	}

	sessionOpts := session.NewSessionOptions{
		Scheduler: g.scheduler,
		Rand:      opts.Rand,
		Width:     constants.ScreenWidth,
		Height:    constants.ScreenHeight,
	}
	if opts.Notifier != nil {
		sessionOpts.Notifier = opts.Notifier
	}
	g.session = session.NewSession(sessionOpts)

	pollerOpts := verify.NewPollerOptions{
		Scheduler:   g.scheduler,
		OnConfirmed: g.onConfirmed,
		OnBypassed:  g.onBypassed,
		OnFailed:    g.onFailed,
	}
	if opts.Checker != nil {
		pollerOpts.Checker = opts.Checker
	}
	g.poller = verify.NewPoller(pollerOpts)

	if err := g.loadVerify(); err != nil {
		return nil, fmt.Errorf("failed to load verify scene: %v", err)
	}
	g.poller.Start()

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) newBackground() objects.GameObject {
	return objects.NewBackgroundObject("background", objects.NewBackgroundObjectOptions{
		Color: g.palette.Background,
		Image: g.background,
	})
}

func (g *Game) loadVerify() error {
	link := verify.DeepLink(g.bot, g.poller.Token())
	verifyScene, err := scenes.NewVerifyScene(scenes.VerifySceneOptions{
		Verification: g.poller,
		Link:         link,
		Background:   g.newBackground(),
		Cube: objects.NewCubeObject("cube", objects.NewCubeObjectOptions{
			Session: g.session,
		}),
		OnOpenLink: func() error {
			return g.openLink(link)
		},
		OnRetry: g.retryVerification,
	})
	if err != nil {
		return fmt.Errorf("failed to create verify scene: %v", err)
	}
	if err := g.SetScene(verifyScene); err != nil {
		return fmt.Errorf("failed to set verify scene: %v", err)
	}
	g.mode = GameModeVerifying
	return nil
}

func (g *Game) openLink(link string) error {
	log.Info("Opening %s", link)
	if err := g.openURL(link); err != nil {
		return &ui.ActionableError{Message: "Could not open Telegram. Open the link above manually.", Cause: err}
	}
	return nil
}

func (g *Game) loadBoard() error {
	boardScene, err := scenes.NewBoardScene(scenes.BoardSceneOptions{
		Session:    g.session,
		Background: g.newBackground(),
		Cube: objects.NewCubeObject("cube", objects.NewCubeObjectOptions{
			Session: g.session,
			Pointer: func() input.Pointer {
				return input.ReadPointer(constants.ScreenWidth, constants.ScreenHeight)
			},
			OnMove: g.click,
		}),
		Palette: &g.palette,
	})
	if err != nil {
		return fmt.Errorf("failed to create board scene: %v", err)
	}
	if err := g.SetScene(boardScene); err != nil {
		return fmt.Errorf("failed to set board scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

func (g *Game) loadError(msg string) error {
	errorScene, err := scenes.NewErrorScene(msg)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(errorScene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.mode = GameModeError
	return nil
}

// reload returns to the scene that matches the verification status.
func (g *Game) reload() error {
	switch g.poller.Status() {
	case verify.StatusConfirmed, verify.StatusBypassed:
		return g.loadBoard()
	}
	return g.loadVerify()
}

func (g *Game) onConfirmed(chatID int64) {
	log.Info("Verified chat %d", chatID)
	if g.notifier != nil {
		g.notifier.SetChatID(chatID)
	}
	g.startPlay()
}

func (g *Game) onBypassed() {
	log.Info("Messaging is not configured, skipping verification")
	g.startPlay()
}

func (g *Game) onFailed() {
	log.Warn("Verification was not confirmed after %d attempts", g.poller.Attempts())
	g.mode = GameModeVerificationFailed
}

func (g *Game) startPlay() {
	g.session.Reset(false)
	g.session.Unlock()
	if err := g.loadBoard(); err != nil {
		log.Error("Failed to load board scene: %v", err)
		if err := g.loadError("Something went wrong"); err != nil {
			log.Error("Failed to load error scene: %v", err)
		}
	}
}

func (g *Game) retryVerification() error {
	g.poller.Retry()
	if g.poller.Status() != verify.StatusPolling {
		return &ui.ActionableError{Message: "Verification could not be restarted."}
	}
	g.mode = GameModeVerifying
	return nil
}

func (g *Game) click() {
	if g.audio != nil {
		g.audio.Click()
	}
}

func (g *Game) Update() error {
	// Advance timers by one tick
	g.scheduler.Advance(time.Second / time.Duration(ebiten.TPS()))

	// Apply finished verification checks
	g.poller.Update()

	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		log.Error("Failed to update %s scene: %v", g.mode, err)
		if err := g.loadError("Something went wrong"); err != nil {
			return fmt.Errorf("failed to load error scene: %v", err)
		}
	}

	return nil
}

func (g *Game) handleInput() error {
	if input.IsMusicToggleJustPressed() && g.audio != nil {
		g.audio.ToggleMusic()
	}
	if input.IsPositiveJustPressed() && g.audio != nil {
		g.audio.StartMusic()
	}

	switch g.mode {
	case GameModePlay:
		if input.IsRestartJustPressed() && g.session.Phase() == session.PhaseResolved {
			g.session.Reset(true)
		}
	case GameModeError:
		if input.IsPositiveJustPressed() {
			if err := g.reload(); err != nil {
				return fmt.Errorf("failed to reload scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Phase: %s", g.session.Phase()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Verify: %s (%d/%d)", g.poller.Status(), g.poller.Attempts(), g.poller.MaxAttempts()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return constants.ScreenWidth, constants.ScreenHeight
}
