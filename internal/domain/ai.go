package domain

import "fmt"

// DefaultMark is the mark the AI plays when a caller does not choose one.
const DefaultMark = O

// MoveSelector picks the next space to play on a board.
type MoveSelector interface {
	NextMove(b Board) (int, error)
}

// AI is a stateless tic-tac-toe opponent. It remembers nothing between calls:
// every move is computed from the board alone.
//
// Moves are chosen in strict priority order:
//  1. complete a line of its own
//  2. block a line the opponent would complete
//  3. opening book: top-left on an empty board, top-left against a center
//     opening, center against a corner opening
//  4. center, then the first free edge, then the first free corner
type AI struct {
	mark     Cell
	opponent Cell
}

var _ MoveSelector = (*AI)(nil)

// NewAI returns an AI playing mark, which must be X or O.
func NewAI(mark Cell) (*AI, error) {
	if !mark.IsMark() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMark, rune(mark))
	}
	return &AI{mark: mark, opponent: mark.Other()}, nil
}

// Mark returns the mark this AI plays.
func (a *AI) Mark() Cell { return a.mark }

// Opponent returns the mark of the other player.
func (a *AI) Opponent() Cell { return a.opponent }

// IsValidGameInProgress reports whether b is a valid, unfinished game in which
// it is the AI's turn to move.
func (a *AI) IsValidGameInProgress(b Board) bool {
	if !b.IsValid() || b.IsFull() {
		return false
	}
	if b.IsWinner(X) || b.IsWinner(O) {
		return false
	}
	// the AI never has more marks down than its opponent when it is to move
	return b.count(a.mark) <= b.count(a.opponent)
}

// NextMove returns the space the AI plays on b. b itself is never modified.
func (a *AI) NextMove(b Board) (int, error) {
	if !a.IsValidGameInProgress(b) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBoard, b.String())
	}

	if i, ok := completingMove(b, a.mark); ok {
		return i, nil
	}
	if i, ok := completingMove(b, a.opponent); ok {
		return i, nil
	}

	// opening
	if b.IsEmpty() {
		return TopLeft, nil
	}
	if b == openedWith(a.opponent, MiddleMiddle) {
		return TopLeft, nil
	}
	for _, i := range CornerMoves {
		if b == openedWith(a.opponent, i) {
			return MiddleMiddle, nil
		}
	}

	// middle and end game
	if b.SpaceIsFree(MiddleMiddle) {
		return MiddleMiddle, nil
	}
	for _, i := range EdgeMoves {
		if b.SpaceIsFree(i) {
			return i, nil
		}
	}
	for _, i := range CornerMoves {
		if b.SpaceIsFree(i) {
			return i, nil
		}
	}

	// unreachable: an in-progress board always has a free space
	return 0, fmt.Errorf("%w: no free space", ErrInvalidBoard)
}

// completingMove returns the first free space where mark would win.
func completingMove(b Board, mark Cell) (int, bool) {
	for _, i := range Moves {
		if !b.SpaceIsFree(i) {
			continue
		}
		sim := b
		sim[i] = mark
		if sim.IsWinner(mark) {
			return i, true
		}
	}
	return 0, false
}

// openedWith returns a board holding a single mark at space i.
func openedWith(mark Cell, i int) Board {
	b := NewBoard()
	b[i] = mark
	return b
}
