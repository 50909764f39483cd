package game

// Line is a triple of cell indices.
type Line [3]int

// WinLines lists the rows, then the columns, then the diagonals.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result classifies a board.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	}
	return "unknown"
}

// Outcome is the result of evaluating a board. Winner and Line are only set
// when Result is ResultWin.
type Outcome struct {
	Result Result
	Winner Mark
	Line   Line
}

// Decided reports whether the game is over.
func (o Outcome) Decided() bool {
	return o.Result != ResultNone
}

// CheckOutcome returns the first winning line in table order, a draw if the
// board is full, or ResultNone.
func CheckOutcome(b Board) Outcome {
	for _, line := range WinLines {
		a := b[line[0]]
		if a != Empty && a == b[line[1]] && a == b[line[2]] {
			return Outcome{
				Result: ResultWin,
				Winner: a,
				Line:   line,
			}
		}
	}

	if b.Full() {
		return Outcome{Result: ResultDraw}
	}

	return Outcome{Result: ResultNone}
}

// wouldWin reports whether placing m at idx completes a line.
func wouldWin(b Board, idx int, m Mark) bool {
	b[idx] = m
	o := CheckOutcome(b)
	return o.Result == ResultWin && o.Winner == m
}
