package session

import (
	"fmt"
	"time"

	"github.com/cbodonnell/tictaccube/pkg/animation"
	"github.com/cbodonnell/tictaccube/pkg/game"
	"github.com/cbodonnell/tictaccube/pkg/game/constants"
	"github.com/cbodonnell/tictaccube/pkg/log"
	"github.com/cbodonnell/tictaccube/pkg/projection"
	"github.com/cbodonnell/tictaccube/pkg/render"
	"github.com/cbodonnell/tictaccube/pkg/schedule"
)

// Notifier receives the outcome message of every finished game.
type Notifier interface {
	Notify(text string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// Session runs games between the player (X) and the computer opponent (O) on
// the front face of the cube. All methods must be called from the goroutine
// that advances the scheduler.
type Session struct {
	state     *State
	scheduler schedule.Scheduler
	rng       game.Rand
	opponent  *game.Opponent
	animator  *animation.Controller
	cube      *render.CubeRenderer
	notifier  Notifier
	redraw    func()

	opponentDelay time.Duration
	resultGrace   time.Duration
	cubeSize      float64
	width         float64
	height        float64

	// round changes on every reset so that turns scheduled for an earlier game
	// are dropped.
	round uint64
}

type NewSessionOptions struct {
	Scheduler schedule.Scheduler
	// Rand drives the opponent, the promo code and the shake.
	Rand game.Rand
	// Opponent defaults to an opponent with the default policy over Rand.
	Opponent *game.Opponent
	// Notifier defaults to dropping every message.
	Notifier Notifier
	// Cube defaults to a renderer with the default palette.
	Cube *render.CubeRenderer
	// Redraw is called whenever the picture changes. Optional.
	Redraw func()
	// Timing defaults to animation.DefaultTiming.
	Timing *animation.Timing
	// OpponentDelay defaults to constants.OpponentDelay.
	OpponentDelay time.Duration
	// ResultGrace defaults to constants.ResultGrace.
	ResultGrace time.Duration
	// Width and Height default to the screen size.
	Width  float64
	Height float64
}

func NewSession(opts NewSessionOptions) *Session {
	s := &Session{
		state:         newState(),
		scheduler:     opts.Scheduler,
		rng:           opts.Rand,
		opponent:      opts.Opponent,
		cube:          opts.Cube,
		notifier:      opts.Notifier,
		redraw:        opts.Redraw,
		opponentDelay: opts.OpponentDelay,
		resultGrace:   opts.ResultGrace,
		cubeSize:      constants.CubeSize,
		width:         opts.Width,
		height:        opts.Height,
	}
	if s.opponent == nil {
		s.opponent = game.NewOpponent(game.NewOpponentOptions{Rand: opts.Rand})
	}
	if s.cube == nil {
		s.cube = render.NewCubeRenderer(render.NewCubeRendererOptions{})
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.redraw == nil {
		s.redraw = func() {}
	}
	if s.opponentDelay == 0 {
		s.opponentDelay = constants.OpponentDelay
	}
	if s.resultGrace == 0 {
		s.resultGrace = constants.ResultGrace
	}
	if s.width == 0 {
		s.width = constants.ScreenWidth
	}
	if s.height == 0 {
		s.height = constants.ScreenHeight
	}
	s.animator = animation.NewController(animation.NewControllerOptions{
		Scheduler: opts.Scheduler,
		Target:    s.state,
		Rand:      opts.Rand,
		Redraw:    s.redraw,
		Timing:    opts.Timing,
	})
	return s
}

// State returns a snapshot of the session state.
func (s *Session) State() State {
	return s.state.clone()
}

func (s *Session) Phase() Phase {
	return s.state.Phase()
}

// Unlock allows play to start. It is called once the player is verified or
// verification is bypassed.
func (s *Session) Unlock() {
	if !s.state.InputLocked {
		return
	}
	s.state.InputLocked = false
	log.Info("Session unlocked")
	s.redraw()
}

// Reset abandons the current game and starts a new one. With animate the cube
// flips before the new board accepts moves.
func (s *Session) Reset(animate bool) {
	s.animator.Invalidate()
	s.round++
	s.state.clearGame()

	if !animate {
		log.Debug("Reset game without animation")
		s.redraw()
		return
	}

	s.state.GameNumber++
	direction := -1.0
	if s.state.GameNumber%2 == 1 {
		direction = 1
	}
	log.Debug("Starting game %d with flip direction %v", s.state.GameNumber, direction)
	s.animator.AnimateFlip(direction)
}

// PlayerMove places the player's mark at idx. It returns false and changes
// nothing if the move is not allowed right now.
func (s *Session) PlayerMove(idx int) bool {
	if !s.state.CanPlay() || !game.ValidCell(idx) || s.state.Board[idx] != game.Empty {
		return false
	}
	if err := s.place(idx, game.MarkX); err != nil {
		log.Warn("Rejected player move: %v", err)
		return false
	}
	log.Debug("Player placed %s at %d", game.MarkX, idx)
	if s.evaluate() {
		return true
	}

	s.state.OpponentThinking = true
	round := s.round
	s.scheduler.After(s.opponentDelay, func() {
		s.opponentTurn(round)
	})
	s.redraw()
	return true
}

func (s *Session) opponentTurn(round uint64) {
	if round != s.round || s.state.GameOver {
		return
	}
	idx, err := s.opponent.SelectMove(s.state.Board)
	if err != nil {
		log.Error("Failed to select opponent move: %v", err)
		s.state.OpponentThinking = false
		s.redraw()
		return
	}
	if err := s.place(idx, s.opponent.Mark()); err != nil {
		log.Error("Failed to place opponent move: %v", err)
		s.state.OpponentThinking = false
		s.redraw()
		return
	}
	log.Debug("Opponent placed %s at %d", s.opponent.Mark(), idx)
	s.evaluate()
	s.state.OpponentThinking = false
	s.redraw()
}

func (s *Session) place(idx int, m game.Mark) error {
	if err := s.state.Board.Place(idx, m); err != nil {
		return fmt.Errorf("failed to place %s at %d: %v", m, idx, err)
	}
	s.animator.AnimateSymbol(idx)
	return nil
}

// evaluate checks the board after a move. A decided game locks the board and
// schedules the reveal once the last mark has faded in.
func (s *Session) evaluate() bool {
	outcome := game.CheckOutcome(s.state.Board)
	if !outcome.Decided() {
		return false
	}
	s.state.GameOver = true
	s.state.Outcome = outcome
	log.Info("Game %d decided: %s", s.state.GameNumber, outcomeLabel(outcome))

	round := s.round
	s.scheduler.After(s.animator.Timing().SymbolDuration()+s.resultGrace, func() {
		s.reveal(round)
	})
	s.redraw()
	return true
}

func (s *Session) reveal(round uint64) {
	if round != s.round || s.state.Revealed {
		return
	}
	s.state.Revealed = true

	outcome := s.state.Outcome
	if outcome.Result == game.ResultWin && outcome.Winner == game.MarkX {
		s.state.PromoCode = fmt.Sprintf("%05d", 10000+s.rng.Intn(90000))
		s.animator.AnimateShake()
	}

	if !s.state.Notified {
		s.state.Notified = true
		s.notifier.Notify(OutcomeMessage(outcome, game.MarkX, s.state.PromoCode))
	}
	s.redraw()
}

func outcomeLabel(o game.Outcome) string {
	if o.Result == game.ResultWin {
		return fmt.Sprintf("%s wins", o.Winner)
	}
	return o.Result.String()
}

// SetViewport sets the size of the surface the cube is drawn on.
func (s *Session) SetViewport(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.redraw()
}

// Transform returns the projection for the current frame.
func (s *Session) Transform() projection.Transform {
	cx := s.width/2 + s.state.ShakeX
	cy := s.height/2 + s.state.ShakeY + constants.CubeCenterOffsetY
	return projection.NewTransform(cx, cy, s.cubeSize, s.state.FlipAngle)
}

// View returns what the board renderer needs for the current frame.
func (s *Session) View() render.BoardView {
	progress := make(map[int]float64, len(s.state.Symbols))
	for idx, p := range s.state.Symbols {
		progress[idx] = p
	}
	return render.BoardView{
		Board:    s.state.Board,
		Hover:    s.state.Hover,
		GameOver: s.state.GameOver,
		Flipping: s.state.Flipping,
		Progress: progress,
		Outcome:  s.state.Outcome,
	}
}

// Draw clears the surface and paints the cube.
func (s *Session) Draw(surface render.Surface) {
	surface.Clear()
	s.cube.Draw(surface, s.Transform(), s.View())
}

// PointerMove updates the hovered cell. It reports whether the hover changed.
func (s *Session) PointerMove(x, y float64) bool {
	idx := render.NoCell
	if !s.state.Flipping {
		idx = render.CellAt(s.Transform(), x, y)
	}
	if idx == s.state.Hover {
		return false
	}
	s.state.Hover = idx
	s.redraw()
	return true
}

// PointerLeave clears the hovered cell.
func (s *Session) PointerLeave() {
	if s.state.Hover == render.NoCell {
		return
	}
	s.state.Hover = render.NoCell
	s.redraw()
}

// Click plays the cell under (x, y), if any.
func (s *Session) Click(x, y float64) bool {
	if s.state.Flipping {
		return false
	}
	idx := render.CellAt(s.Transform(), x, y)
	if idx == render.NoCell {
		return false
	}
	return s.PlayerMove(idx)
}
