package session

import (
	"github.com/cbodonnell/tictaccube/pkg/animation"
	"github.com/cbodonnell/tictaccube/pkg/game"
	"github.com/cbodonnell/tictaccube/pkg/render"
)

// Phase is the position of a session in its state machine. It is derived
// from the State flags.
type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhasePlayerTurn
	PhaseOpponentTurn
	PhaseResolved
	PhaseFlipping
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "AwaitingStart"
	case PhasePlayerTurn:
		return "PlayerTurn"
	case PhaseOpponentTurn:
		return "OpponentTurn"
	case PhaseResolved:
		return "Resolved"
	case PhaseFlipping:
		return "Flipping"
	}
	return "Unknown"
}

// State is everything a session tracks between frames.
type State struct {
	Board game.Board

	// InputLocked blocks play until the session is unlocked.
	InputLocked bool
	// GameOver is set as soon as an outcome is decided.
	GameOver bool
	// Revealed is set once the decided outcome has been announced.
	Revealed bool
	// Flipping is set while the new game flip runs.
	Flipping bool
	// Shaking is set while the win shake runs.
	Shaking bool
	// OpponentThinking is set between a player move and the opponent's answer.
	OpponentThinking bool

	// Hover is the cell under the pointer or render.NoCell.
	Hover int
	// FlipAngle is the current flip rotation in degrees.
	FlipAngle float64
	ShakeX    float64
	ShakeY    float64
	// Symbols holds the fade-in progress of marks placed since the last reset.
	Symbols map[int]float64
	// GameNumber counts animated resets. Its parity picks the flip direction.
	GameNumber int

	Outcome   game.Outcome
	PromoCode string
	// Notified is set once the outcome message has been handed to the notifier.
	Notified bool
}

var _ animation.Target = &State{}

func newState() *State {
	return &State{
		InputLocked: true,
		Hover:       render.NoCell,
		Symbols:     make(map[int]float64),
	}
}

func (s *State) SetFlipAngle(degrees float64) {
	s.FlipAngle = degrees
}

func (s *State) SetFlipping(flipping bool) {
	s.Flipping = flipping
}

func (s *State) SetShakeOffset(x, y float64) {
	s.ShakeX, s.ShakeY = x, y
}

func (s *State) SetShaking(shaking bool) {
	s.Shaking = shaking
}

func (s *State) SetSymbolProgress(idx int, progress float64) {
	s.Symbols[idx] = progress
}

// Phase derives the state machine position from the flags.
func (s *State) Phase() Phase {
	switch {
	case s.InputLocked:
		return PhaseAwaitingStart
	case s.Flipping:
		return PhaseFlipping
	case s.GameOver:
		return PhaseResolved
	case s.OpponentThinking:
		return PhaseOpponentTurn
	default:
		return PhasePlayerTurn
	}
}

// CanPlay reports whether a player move would be accepted.
func (s *State) CanPlay() bool {
	return s.Phase() == PhasePlayerTurn
}

// clone returns a copy that shares nothing with s.
func (s *State) clone() State {
	c := *s
	c.Symbols = make(map[int]float64, len(s.Symbols))
	for idx, p := range s.Symbols {
		c.Symbols[idx] = p
	}
	return c
}

// clearGame resets everything that belongs to a single game.
func (s *State) clearGame() {
	s.Board = game.Board{}
	s.GameOver = false
	s.Revealed = false
	s.Flipping = false
	s.Shaking = false
	s.OpponentThinking = false
	s.Hover = render.NoCell
	s.FlipAngle = 0
	s.ShakeX, s.ShakeY = 0, 0
	s.Symbols = make(map[int]float64)
	s.Outcome = game.Outcome{}
	s.PromoCode = ""
	s.Notified = false
}
