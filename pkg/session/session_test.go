package session

import (
	"image/color"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/tictaccube/pkg/game"
	"github.com/cbodonnell/tictaccube/pkg/render"
	"github.com/cbodonnell/tictaccube/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstEmptyRand makes the opponent always take a random move, which is the
// first empty cell, and makes every other draw the lowest possible value.
type firstEmptyRand struct{}

func (firstEmptyRand) Float64() float64 { return 0 }
func (firstEmptyRand) Intn(int) int     { return 0 }

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(text string) {
	n.messages = append(n.messages, text)
}

type countingSurface struct {
	ops []string
}

func (s *countingSurface) Clear()              { s.ops = append(s.ops, "clear") }
func (s *countingSurface) BeginPath()          { s.ops = append(s.ops, "begin") }
func (s *countingSurface) MoveTo(x, y float64) {}
func (s *countingSurface) LineTo(x, y float64) {}
func (s *countingSurface) ClosePath()          {}
func (s *countingSurface) Fill(color.RGBA)     { s.ops = append(s.ops, "fill") }

func (s *countingSurface) Stroke(color.RGBA, float64, render.LineCap) {
	s.ops = append(s.ops, "stroke")
}

type testSession struct {
	*Session
	scheduler *schedule.TickScheduler
	notifier  *recordingNotifier
	redraws   int
}

func newTestSession(t *testing.T, rng game.Rand) *testSession {
	t.Helper()
	ts := &testSession{
		scheduler: schedule.NewTickScheduler(),
		notifier:  &recordingNotifier{},
	}
	ts.Session = NewSession(NewSessionOptions{
		Scheduler: ts.scheduler,
		Rand:      rng,
		Notifier:  ts.notifier,
		Redraw:    func() { ts.redraws++ },
	})
	return ts
}

func (ts *testSession) settle() {
	ts.scheduler.RunUntilIdle(10*time.Millisecond, 1000)
}

func cellCentroid(s *Session, idx int) (float64, float64) {
	corners := render.CellCorners(s.Transform(), idx)
	var x, y float64
	for _, c := range corners {
		x += c.X
		y += c.Y
	}
	return x / float64(len(corners)), y / float64(len(corners))
}

func TestSessionStartsLocked(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})

	assert.Equal(t, PhaseAwaitingStart, ts.Phase())
	assert.False(t, ts.PlayerMove(4))
	assert.Equal(t, game.Board{}, ts.State().Board)
	assert.Equal(t, 0, ts.scheduler.Pending())

	ts.Unlock()
	assert.Equal(t, PhasePlayerTurn, ts.Phase())
}

func TestFirstGameStartsWithoutFlip(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})

	ts.Reset(false)
	assert.Equal(t, PhaseAwaitingStart, ts.Phase())
	ts.Unlock()

	st := ts.State()
	assert.Equal(t, PhasePlayerTurn, ts.Phase())
	assert.Equal(t, 0, st.GameNumber)
	assert.False(t, st.Flipping)
	assert.Equal(t, 0.0, st.FlipAngle)
	assert.Equal(t, 0, ts.scheduler.Pending())
	assert.True(t, ts.PlayerMove(4))
}

func TestPlayerMoveAndOpponentReply(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()

	require.True(t, ts.PlayerMove(4))
	st := ts.State()
	assert.Equal(t, game.MarkX, st.Board[4])
	assert.Equal(t, PhaseOpponentTurn, ts.Phase())
	assert.Equal(t, 0.0, st.Symbols[4])

	// no second move while the opponent is thinking
	assert.False(t, ts.PlayerMove(0))

	ts.scheduler.Advance(449 * time.Millisecond)
	assert.Equal(t, game.Empty, ts.State().Board[0])

	ts.scheduler.Advance(1 * time.Millisecond)
	st = ts.State()
	assert.Equal(t, game.MarkO, st.Board[0])
	assert.Equal(t, PhasePlayerTurn, ts.Phase())

	ts.settle()
	st = ts.State()
	assert.Equal(t, 1.0, st.Symbols[4])
	assert.Equal(t, 1.0, st.Symbols[0])
}

func TestPlayerMoveRejectsIllegalCells(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()

	assert.False(t, ts.PlayerMove(-1))
	assert.False(t, ts.PlayerMove(9))

	require.True(t, ts.PlayerMove(4))
	ts.settle()
	assert.False(t, ts.PlayerMove(4))
	assert.False(t, ts.PlayerMove(0), "taken by the opponent")
}

func TestClickOutsideBoardChangesNothing(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()
	before := ts.State()
	redraws := ts.redraws

	for _, p := range [][2]float64{{0, 0}, {5, 810}, {515, 5}, {260, 800}} {
		assert.False(t, ts.Click(p[0], p[1]))
	}

	assert.Equal(t, before, ts.State())
	assert.Equal(t, 0, ts.scheduler.Pending())
	assert.Equal(t, redraws, ts.redraws)
}

func TestClickPlaysCellUnderPointer(t *testing.T) {
	for idx := 0; idx < game.BoardSize; idx++ {
		ts := newTestSession(t, rand.New(rand.NewSource(int64(idx))))
		ts.Unlock()

		x, y := cellCentroid(ts.Session, idx)
		require.True(t, ts.Click(x, y), "cell %d", idx)
		assert.Equal(t, game.MarkX, ts.State().Board[idx])
	}
}

func TestPointerHover(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()

	x, y := cellCentroid(ts.Session, 2)
	assert.True(t, ts.PointerMove(x, y))
	assert.Equal(t, 2, ts.State().Hover)

	redraws := ts.redraws
	assert.False(t, ts.PointerMove(x+1, y+1))
	assert.Equal(t, redraws, ts.redraws)

	ts.PointerLeave()
	assert.Equal(t, render.NoCell, ts.State().Hover)

	assert.True(t, ts.PointerMove(x, y))
	assert.True(t, ts.PointerMove(1, 1))
	assert.Equal(t, render.NoCell, ts.State().Hover)
}

func TestPlayerWinRevealsPromoCode(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()

	// the opponent answers 0 and then 1, leaving row 3-4-5 to the player
	for _, idx := range []int{4, 5} {
		require.True(t, ts.PlayerMove(idx))
		ts.scheduler.Advance(450 * time.Millisecond)
	}
	require.True(t, ts.PlayerMove(3))

	st := ts.State()
	assert.True(t, st.GameOver)
	assert.False(t, st.Revealed)
	assert.Equal(t, PhaseResolved, ts.Phase())
	assert.Equal(t, game.Outcome{Result: game.ResultWin, Winner: game.MarkX, Line: game.Line{3, 4, 5}}, st.Outcome)
	assert.Empty(t, ts.notifier.messages)

	// the result waits for the last mark to fade in
	ts.scheduler.Advance(16*12*time.Millisecond + 49*time.Millisecond)
	assert.False(t, ts.State().Revealed)
	ts.scheduler.Advance(1 * time.Millisecond)

	st = ts.State()
	assert.True(t, st.Revealed)
	assert.True(t, st.Shaking)
	assert.Equal(t, "10000", st.PromoCode)
	require.Len(t, ts.notifier.messages, 1)
	assert.Contains(t, ts.notifier.messages[0], "<code>10000</code>")
	assert.Equal(t, "You won! Promo code: 10000", StatusText(st))

	ts.settle()
	st = ts.State()
	assert.False(t, st.Shaking)
	assert.Equal(t, 0.0, st.ShakeX)
	assert.Equal(t, 0.0, st.ShakeY)
	assert.Len(t, ts.notifier.messages, 1)
	assert.False(t, ts.PlayerMove(8))
}

func TestPromoCodeRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ts := newTestSession(t, rng)
		ts.Unlock()
		ts.state.Board = game.Board{
			game.MarkX, game.MarkX, game.Empty,
			game.MarkO, game.MarkO, game.Empty,
			game.Empty, game.Empty, game.Empty,
		}
		require.True(t, ts.PlayerMove(2))
		ts.settle()

		code := ts.State().PromoCode
		require.Len(t, code, 5)
		assert.True(t, code >= "10000" && code <= "99999", code)
	}
}

func TestOpponentWinNotifiesLoss(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()

	// the opponent fills 0, 1 and then 2
	for _, idx := range []int{8, 7, 3} {
		require.True(t, ts.PlayerMove(idx))
		ts.scheduler.Advance(450 * time.Millisecond)
	}

	st := ts.State()
	assert.True(t, st.GameOver)
	assert.Equal(t, game.MarkO, st.Outcome.Winner)
	assert.Equal(t, game.Line{0, 1, 2}, st.Outcome.Line)
	assert.Equal(t, PhaseResolved, ts.Phase())

	ts.settle()
	st = ts.State()
	assert.True(t, st.Revealed)
	assert.False(t, st.Shaking)
	assert.Empty(t, st.PromoCode)
	assert.Equal(t, []string{lossMessage}, ts.notifier.messages)
}

func TestDrawNotifiesDraw(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()
	ts.state.Board = game.Board{
		game.MarkX, game.MarkO, game.MarkX,
		game.MarkX, game.MarkO, game.MarkO,
		game.MarkO, game.MarkX, game.Empty,
	}

	require.True(t, ts.PlayerMove(8))
	assert.Equal(t, game.ResultDraw, ts.State().Outcome.Result)

	ts.settle()
	assert.Equal(t, []string{drawMessage}, ts.notifier.messages)
	assert.Equal(t, "Draw. One more round?", StatusText(ts.State()))
}

func TestResetFlipAlternatesDirection(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()
	ts.Reset(false)
	assert.Equal(t, 0, ts.State().GameNumber)
	assert.Equal(t, PhasePlayerTurn, ts.Phase())

	for n, sign := range []float64{1, -1, 1} {
		ts.Reset(true)
		st := ts.State()
		assert.Equal(t, n+1, st.GameNumber)
		assert.True(t, st.Flipping)
		assert.Equal(t, PhaseFlipping, ts.Phase())
		assert.False(t, ts.PlayerMove(4))

		ts.scheduler.Advance(16 * time.Millisecond)
		assert.Greater(t, ts.State().FlipAngle*sign, 0.0)

		ts.settle()
		st = ts.State()
		assert.False(t, st.Flipping)
		assert.Equal(t, 0.0, st.FlipAngle)
		assert.Equal(t, PhasePlayerTurn, ts.Phase())
	}
}

func TestResetDropsPendingTurns(t *testing.T) {
	t.Run("opponent turn", func(t *testing.T) {
		ts := newTestSession(t, firstEmptyRand{})
		ts.Unlock()
		require.True(t, ts.PlayerMove(4))

		ts.Reset(false)
		ts.settle()

		st := ts.State()
		assert.Equal(t, game.Board{}, st.Board)
		assert.Empty(t, st.Symbols)
		assert.Equal(t, PhasePlayerTurn, ts.Phase())
	})

	t.Run("result reveal", func(t *testing.T) {
		ts := newTestSession(t, firstEmptyRand{})
		ts.Unlock()
		for _, idx := range []int{4, 5} {
			require.True(t, ts.PlayerMove(idx))
			ts.scheduler.Advance(450 * time.Millisecond)
		}
		require.True(t, ts.PlayerMove(3))

		ts.Reset(true)
		ts.settle()

		st := ts.State()
		assert.False(t, st.Revealed)
		assert.Empty(t, st.PromoCode)
		assert.Empty(t, ts.notifier.messages)
	})
}

func TestNotifiesOncePerGame(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.Unlock()

	for round := 1; round <= 3; round++ {
		for _, idx := range []int{8, 7, 3} {
			require.True(t, ts.PlayerMove(idx))
			ts.scheduler.Advance(450 * time.Millisecond)
		}
		ts.settle()
		ts.reveal(ts.round)
		assert.Len(t, ts.notifier.messages, round)

		ts.Reset(true)
		ts.settle()
	}
}

func TestTransformFollowsViewportAndShake(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	ts.SetViewport(800, 600)

	tr := ts.Transform()
	assert.Equal(t, 400.0, tr.CenterX)
	assert.Equal(t, 280.0, tr.CenterY)
	assert.Equal(t, 150.0, tr.Half)

	ts.state.SetShakeOffset(3, -4)
	tr = ts.Transform()
	assert.Equal(t, 403.0, tr.CenterX)
	assert.Equal(t, 276.0, tr.CenterY)
}

func TestDrawClearsFirst(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	s := &countingSurface{}

	ts.Draw(s)

	require.NotEmpty(t, s.ops)
	assert.Equal(t, "clear", s.ops[0])
	assert.Contains(t, s.ops, "fill")
	assert.Contains(t, s.ops, "stroke")
}

func TestStatusText(t *testing.T) {
	ts := newTestSession(t, firstEmptyRand{})
	assert.True(t, strings.HasPrefix(StatusText(ts.State()), "Connect"))

	ts.Unlock()
	assert.Equal(t, "Your move", StatusText(ts.State()))

	require.True(t, ts.PlayerMove(4))
	assert.Equal(t, "Opponent is thinking...", StatusText(ts.State()))
}
