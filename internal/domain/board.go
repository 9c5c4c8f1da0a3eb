package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Cell is the content of one board space. A parsed board may hold any rune;
// only Empty, X and O are valid.
type Cell rune

const (
	Empty Cell = ' '
	X     Cell = 'x'
	O     Cell = 'o'
)

// String returns the cell as it appears in a board encoding.
func (c Cell) String() string { return string(c) }

// IsMark reports whether c is one of the two player marks.
func (c Cell) IsMark() bool { return c == X || c == O }

// Other returns the opposing mark, or Empty for anything that is not a mark.
func (c Cell) Other() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark accepts "x" or "o" in either case.
func ParseMark(s string) (Cell, error) {
	switch strings.ToLower(s) {
	case "x":
		return X, nil
	case "o":
		return O, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidMark, s)
}

// Board spaces, row-major.
const (
	TopLeft = iota
	TopMiddle
	TopRight
	MiddleLeft
	MiddleMiddle
	MiddleRight
	BottomLeft
	BottomMiddle
	BottomRight
)

// Size is the number of spaces on a board.
const Size = 9

var (
	Moves       = [Size]int{TopLeft, TopMiddle, TopRight, MiddleLeft, MiddleMiddle, MiddleRight, BottomLeft, BottomMiddle, BottomRight}
	CornerMoves = [4]int{TopLeft, TopRight, BottomLeft, BottomRight}
	EdgeMoves   = [4]int{TopMiddle, MiddleLeft, MiddleRight, BottomMiddle}
)

var lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Errors returned by board and AI operations.
var (
	ErrInvalidLength   = errors.New("board must have exactly 9 spaces")
	ErrInvalidMark     = errors.New("mark must be x or o")
	ErrInvalidPosition = errors.New("position must be 0..8")
	ErrInvalidBoard    = errors.New("board is not a valid game in progress")
)

// Board is a fixed 3x3 board stored row-major. It is a value: assigning it
// copies all nine spaces.
type Board [Size]Cell

// NewBoard returns a board with every space free.
func NewBoard() Board {
	var b Board
	for i := range b {
		b[i] = Empty
	}
	return b
}

// ParseBoard decodes a 9 character encoding such as "xo o   x ".
// Only the length is checked; use IsValid for the contents.
func ParseBoard(s string) (Board, error) {
	if n := utf8.RuneCountInString(s); n != Size {
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	var b Board
	i := 0
	for _, r := range s {
		b[i] = Cell(r)
		i++
	}
	return b, nil
}

// String returns the 9 character encoding, top-left first.
func (b Board) String() string {
	var s strings.Builder
	s.Grow(Size)
	for _, c := range b {
		s.WriteRune(rune(c))
	}
	return s.String()
}

// Render draws the board as a grid:
//
//	x|o|
//	-+-+-
//	o| |
//	-+-+-
//	 |x|
func (b Board) Render() string {
	var s strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			s.WriteString("-+-+-\n")
		}
		for c := 0; c < 3; c++ {
			if c > 0 {
				s.WriteByte('|')
			}
			s.WriteRune(rune(b[r*3+c]))
		}
		s.WriteByte('\n')
	}
	return s.String()
}

// Equal reports whether both boards hold the same cell in every space.
func (b Board) Equal(other Board) bool { return b == other }

// IsEmpty reports whether every space is free.
func (b Board) IsEmpty() bool {
	for _, c := range b {
		if c != Empty {
			return false
		}
	}
	return true
}

// IsFull reports whether no space is free.
func (b Board) IsFull() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// SpaceIsFree reports whether space i is blank. Out of range spaces are never free.
func (b Board) SpaceIsFree(i int) bool {
	return i >= 0 && i < Size && b[i] == Empty
}

// IsWinner reports whether mark fills any row, column or diagonal.
func (b Board) IsWinner(mark Cell) bool {
	for _, ln := range lines {
		if b[ln[0]] == mark && b[ln[1]] == mark && b[ln[2]] == mark {
			return true
		}
	}
	return false
}

// Winner returns the mark owning a completed line, or Empty if there is none.
// X is checked first.
func (b Board) Winner() Cell {
	switch {
	case b.IsWinner(X):
		return X
	case b.IsWinner(O):
		return O
	}
	return Empty
}

func (b Board) count(mark Cell) int {
	n := 0
	for _, c := range b {
		if c == mark {
			n++
		}
	}
	return n
}

// CountX returns the number of x marks.
func (b Board) CountX() int { return b.count(X) }

// CountO returns the number of o marks.
func (b Board) CountO() int { return b.count(O) }

// SwapMarks turns every x into o and every o into x. Free spaces are kept.
func (b *Board) SwapMarks() {
	for i, c := range b {
		if c.IsMark() {
			b[i] = c.Other()
		}
	}
}

// IsValid reports whether the board could have come from alternating play:
// only x, o and blank cells, and mark counts at most one apart.
// Reachability and double wins are not checked.
func (b Board) IsValid() bool {
	for _, c := range b {
		if c != X && c != O && c != Empty {
			return false
		}
	}
	d := b.CountX() - b.CountO()
	return d >= -1 && d <= 1
}

// MakeMove writes mark into space i. Occupied spaces are overwritten.
// The board is left unchanged on error.
func (b *Board) MakeMove(mark Cell, i int) error {
	if !mark.IsMark() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, rune(mark))
	}
	if i < 0 || i >= Size {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, i)
	}
	b[i] = mark
	return nil
}
