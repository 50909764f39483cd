package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = MarkX
	o = MarkO
	e = Empty
)

func TestCheckOutcome(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{
			name:  "empty board",
			board: Board{},
			want:  Outcome{Result: ResultNone},
		},
		{
			name:  "top row for X",
			board: Board{x, x, x, e, e, e, e, e, e},
			want:  Outcome{Result: ResultWin, Winner: MarkX, Line: Line{0, 1, 2}},
		},
		{
			name:  "middle column for O",
			board: Board{x, o, x, e, o, e, x, o, e},
			want:  Outcome{Result: ResultWin, Winner: MarkO, Line: Line{1, 4, 7}},
		},
		{
			name:  "anti diagonal",
			board: Board{o, o, x, e, x, e, x, e, e},
			want:  Outcome{Result: ResultWin, Winner: MarkX, Line: Line{2, 4, 6}},
		},
		{
			name:  "full board without a line is a draw",
			board: Board{x, o, x, x, o, o, o, x, x},
			want:  Outcome{Result: ResultDraw},
		},
		{
			name:  "full board with a line is a win",
			board: Board{x, o, x, o, x, o, o, x, x},
			want:  Outcome{Result: ResultWin, Winner: MarkX, Line: Line{0, 4, 8}},
		},
		{
			name:  "first line in table order is reported",
			board: Board{x, x, x, x, x, x, o, o, e},
			want:  Outcome{Result: ResultWin, Winner: MarkX, Line: Line{0, 1, 2}},
		},
		{
			name:  "game in progress",
			board: Board{x, o, e, e, x, e, e, e, o},
			want:  Outcome{Result: ResultNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckOutcome(tt.board))
		})
	}
}

// TestCheckOutcome_allBoards compares every possible board against a direct
// reading of the rules.
func TestCheckOutcome_allBoards(t *testing.T) {
	var b Board
	var walk func(i int)
	walk = func(i int) {
		if i == BoardSize {
			got := CheckOutcome(b)

			uniform := false
			for _, line := range WinLines {
				if b[line[0]] != Empty && b[line[0]] == b[line[1]] && b[line[1]] == b[line[2]] {
					uniform = true
					break
				}
			}

			switch {
			case uniform:
				require.Equal(t, ResultWin, got.Result, b.String())
				require.Equal(t, b[got.Line[0]], got.Winner)
				require.Equal(t, got.Winner, b[got.Line[1]])
				require.Equal(t, got.Winner, b[got.Line[2]])
			case b.Full():
				require.Equal(t, ResultDraw, got.Result, b.String())
			default:
				require.Equal(t, ResultNone, got.Result, b.String())
			}
			return
		}
		for _, m := range []Mark{Empty, MarkX, MarkO} {
			b[i] = m
			walk(i + 1)
		}
		b[i] = Empty
	}
	walk(0)
}

func TestCheckOutcome_moveOrderIndependent(t *testing.T) {
	moves := []struct {
		idx  int
		mark Mark
	}{
		{4, x}, {0, o}, {2, x}, {6, o}, {3, x}, {5, o}, {1, x}, {7, o}, {8, x},
	}

	rng := rand.New(rand.NewSource(7))
	var want Outcome
	for trial := 0; trial < 50; trial++ {
		order := rng.Perm(len(moves))
		b := Board{}
		for _, i := range order {
			require.NoError(t, b.Place(moves[i].idx, moves[i].mark))
		}
		got := CheckOutcome(b)
		if trial == 0 {
			want = got
			continue
		}
		assert.Equal(t, want, got)
	}
}

func TestBoard_Place(t *testing.T) {
	b := Board{}
	require.NoError(t, b.Place(4, MarkX))
	assert.Equal(t, MarkX, b[4])

	assert.ErrorIs(t, b.Place(4, MarkO), ErrCellOccupied)
	assert.ErrorIs(t, b.Place(9, MarkO), ErrInvalidCell)
	assert.ErrorIs(t, b.Place(-1, MarkO), ErrInvalidCell)
	assert.ErrorIs(t, b.Place(0, Empty), ErrInvalidMark)
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, b.EmptyCells())
}

func TestRowCol(t *testing.T) {
	for idx := 0; idx < BoardSize; idx++ {
		row, col := RowCol(idx)
		assert.Equal(t, idx, row*3+col)
		assert.True(t, row >= 0 && row < 3)
		assert.True(t, col >= 0 && col < 3)
	}
}
