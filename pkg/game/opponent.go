package game

// Rand is the random source consumed by the opponent policy.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Intn returns a number in [0, n).
	Intn(n int) int
}

const (
	DefaultRandomMoveChance = 0.30
	DefaultMissWinChance    = 0.40
	DefaultMissBlockChance  = 0.50
)

// Opponent picks moves for the computer player. It is deliberately beatable:
// it plays randomly part of the time and sometimes passes up a win or a block.
type Opponent struct {
	rng              Rand
	mark             Mark
	randomMoveChance float64
	missWinChance    float64
	missBlockChance  float64
}

type NewOpponentOptions struct {
	// Rand is the source for every random decision.
	Rand Rand
	// Mark is the mark the opponent plays. Defaults to MarkO.
	Mark Mark
	// RandomMoveChance is the probability of ignoring the board and moving at random.
	RandomMoveChance *float64
	// MissWinChance is the probability of passing up an immediate win.
	MissWinChance *float64
	// MissBlockChance is the probability of not blocking the player's immediate win.
	MissBlockChance *float64
}

func NewOpponent(opts NewOpponentOptions) *Opponent {
	o := &Opponent{
		rng:              opts.Rand,
		mark:             opts.Mark,
		randomMoveChance: DefaultRandomMoveChance,
		missWinChance:    DefaultMissWinChance,
		missBlockChance:  DefaultMissBlockChance,
	}
	if o.mark == Empty {
		o.mark = MarkO
	}
	if opts.RandomMoveChance != nil {
		o.randomMoveChance = *opts.RandomMoveChance
	}
	if opts.MissWinChance != nil {
		o.missWinChance = *opts.MissWinChance
	}
	if opts.MissBlockChance != nil {
		o.missBlockChance = *opts.MissBlockChance
	}
	return o
}

// Mark returns the mark the opponent plays.
func (o *Opponent) Mark() Mark {
	return o.mark
}

// SelectMove returns the index of the cell the opponent plays next.
func (o *Opponent) SelectMove(b Board) (int, error) {
	empties := b.EmptyCells()
	if len(empties) == 0 {
		return -1, ErrNoAvailableMoves
	}

	if o.rng.Float64() < o.randomMoveChance {
		return o.pick(empties), nil
	}

	for _, idx := range empties {
		if wouldWin(b, idx, o.mark) {
			return o.takeOrMiss(empties, idx, o.missWinChance), nil
		}
	}

	for _, idx := range empties {
		if wouldWin(b, idx, o.mark.Other()) {
			return o.takeOrMiss(empties, idx, o.missBlockChance), nil
		}
	}

	return o.pick(empties), nil
}

// takeOrMiss returns target unless a draw below missChance diverts the move to
// another empty cell. With no other cell available the target is taken.
func (o *Opponent) takeOrMiss(empties []int, target int, missChance float64) int {
	if o.rng.Float64() >= missChance {
		return target
	}
	others := make([]int, 0, len(empties)-1)
	for _, idx := range empties {
		if idx != target {
			others = append(others, idx)
		}
	}
	if len(others) == 0 {
		return target
	}
	return o.pick(others)
}

func (o *Opponent) pick(cells []int) int {
	return cells[o.rng.Intn(len(cells))]
}
