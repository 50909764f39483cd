package game

import (
	"errors"
	"strings"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidMark      = errors.New("invalid mark")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// Mark is the content of a single cell.
type Mark int

const (
	Empty Mark = iota
	// MarkX is the human player's mark.
	MarkX
	// MarkO is the computer opponent's mark.
	MarkO
)

func (m Mark) String() string {
	switch m {
	case Empty:
		return "-"
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	}
	return "?"
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	}
	return Empty
}

// Board holds the 9 cells in row-major order.
type Board [BoardSize]Mark

// RowCol maps a cell index to its row and column.
func RowCol(idx int) (row, col int) {
	return idx / 3, idx % 3
}

// ValidCell reports whether idx addresses a cell.
func ValidCell(idx int) bool {
	return idx >= 0 && idx < BoardSize
}

// Place puts a mark into an empty cell.
func (b *Board) Place(idx int, m Mark) error {
	if !ValidCell(idx) {
		return ErrInvalidCell
	}
	if m != MarkX && m != MarkO {
		return ErrInvalidMark
	}
	if b[idx] != Empty {
		return ErrCellOccupied
	}
	b[idx] = m
	return nil
}

// EmptyCells returns the indices of empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, m := range b {
		if m == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// Full reports whether no cell is empty.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	sb := strings.Builder{}
	for i, m := range b {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}
