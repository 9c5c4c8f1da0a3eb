package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAI(t *testing.T, mark Cell) *AI {
	t.Helper()
	ai, err := NewAI(mark)
	require.NoError(t, err)
	return ai
}

func TestNewAI(t *testing.T) {
	ai := mustAI(t, X)
	assert.Equal(t, X, ai.Mark())
	assert.Equal(t, O, ai.Opponent())

	ai = mustAI(t, DefaultMark)
	assert.Equal(t, O, ai.Mark())
	assert.Equal(t, X, ai.Opponent())

	for _, bad := range []Cell{Empty, 'X', 'q'} {
		_, err := NewAI(bad)
		assert.ErrorIs(t, err, ErrInvalidMark, "mark %q", rune(bad))
	}
}

func TestNextMoveBlocks(t *testing.T) {
	move, err := mustAI(t, X).NextMove(mustParse(t, "oo x     "))
	require.NoError(t, err)
	assert.Equal(t, TopRight, move)

	move, err = mustAI(t, O).NextMove(mustParse(t, "xx o     "))
	require.NoError(t, err)
	assert.Equal(t, TopRight, move)

	move, err = mustAI(t, O).NextMove(mustParse(t, "oxo x    "))
	require.NoError(t, err)
	assert.Equal(t, BottomMiddle, move)
}

func TestNextMoveTakesWin(t *testing.T) {
	move, err := mustAI(t, X).NextMove(mustParse(t, "xx oo    "))
	require.NoError(t, err)
	assert.Equal(t, TopRight, move)

	move, err = mustAI(t, O).NextMove(mustParse(t, "oo xx    "))
	require.NoError(t, err)
	assert.Equal(t, TopRight, move)
}

func TestNextMovePrefersWinOverBlock(t *testing.T) {
	// both sides threaten; o completes the middle row instead of blocking the top
	move, err := mustAI(t, O).NextMove(mustParse(t, "xx oo  x "))
	require.NoError(t, err)
	assert.Equal(t, MiddleRight, move)
}

func TestNextMoveOpening(t *testing.T) {
	cases := []struct {
		name  string
		mark  Cell
		board string
		want  int
	}{
		{"empty board as o", O, "         ", TopLeft},
		{"empty board as x", X, "         ", TopLeft},
		{"center opening", O, "    x    ", TopLeft},
		{"center opening as x", X, "    o    ", TopLeft},
		{"top-left opening", O, "x        ", MiddleMiddle},
		{"top-right opening", X, "  o      ", MiddleMiddle},
		{"bottom-left opening", O, "      x  ", MiddleMiddle},
		{"bottom-right opening", O, "        x", MiddleMiddle},
		{"edge opening falls back to center", X, " o       ", MiddleMiddle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			move, err := mustAI(t, tc.mark).NextMove(mustParse(t, tc.board))
			require.NoError(t, err)
			assert.Equal(t, tc.want, move)
		})
	}
}

func TestNextMoveMidGame(t *testing.T) {
	cases := []struct {
		mark  Cell
		board string
		want  int
	}{
		{O, "xox oox  ", MiddleLeft},
		{O, "x   o    ", TopMiddle},
		{O, "x o      ", MiddleMiddle},
		{O, "o   x    ", TopMiddle},
		{O, "x   o   x", TopMiddle},
		{O, "  x o x  ", TopMiddle},
		{X, "xo  x   o", MiddleLeft},
		{O, "xo o   x ", MiddleMiddle},
	}
	for _, tc := range cases {
		move, err := mustAI(t, tc.mark).NextMove(mustParse(t, tc.board))
		require.NoError(t, err, "%q", tc.board)
		assert.Equal(t, tc.want, move, "%q as %s", tc.board, tc.mark)
	}
}

func TestNextMoveFallsBackToCorner(t *testing.T) {
	// center and every edge taken, no threats
	move, err := mustAI(t, O).NextMove(mustParse(t, " x xox o "))
	require.NoError(t, err)
	assert.Equal(t, TopLeft, move)
}

func TestNextMoveDoesNotMutateBoard(t *testing.T) {
	b := mustParse(t, "xx o     ")
	_, err := mustAI(t, O).NextMove(b)
	require.NoError(t, err)
	assert.Equal(t, "xx o     ", b.String())
}

func TestNextMoveRejectsInvalidBoards(t *testing.T) {
	cases := []struct {
		name  string
		mark  Cell
		board string
	}{
		{"x already won", O, "xxxoo    "},
		{"o already won", X, "ooox x x "},
		{"full board", O, "xoxxoooxx"},
		{"x to move twice", X, "x        "},
		{"o to move twice", O, "o        "},
		{"bad characters", O, "x?       "},
		{"unbalanced counts", O, "xxx      "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ai := mustAI(t, tc.mark)
			b := mustParse(t, tc.board)
			assert.False(t, ai.IsValidGameInProgress(b))
			_, err := ai.NextMove(b)
			assert.ErrorIs(t, err, ErrInvalidBoard)
		})
	}
}

func TestIsValidGameInProgress(t *testing.T) {
	assert.True(t, mustAI(t, O).IsValidGameInProgress(NewBoard()))
	assert.True(t, mustAI(t, X).IsValidGameInProgress(NewBoard()))
	assert.True(t, mustAI(t, O).IsValidGameInProgress(mustParse(t, "x        ")))
	assert.False(t, mustAI(t, X).IsValidGameInProgress(mustParse(t, "x        ")))
	assert.True(t, mustAI(t, X).IsValidGameInProgress(mustParse(t, "xo       ")))
	assert.True(t, mustAI(t, O).IsValidGameInProgress(mustParse(t, "xo       ")))
}

func TestSelfPlayFillsBoard(t *testing.T) {
	b := NewBoard()
	ai := mustAI(t, O)
	for i := 0; i < Size; i++ {
		move, err := ai.NextMove(b)
		require.NoError(t, err, "turn %d on %q", i, b.String())
		require.NoError(t, b.MakeMove(O, move))
		b.SwapMarks()
	}
	assert.True(t, b.IsFull())
	assert.Equal(t, Empty, b.Winner())
	assert.Equal(t, "xxoooxxox", b.String())
}

// TestNextMoveReachablePositions walks every position reachable by
// alternating play and checks the win and block rules on each of them.
func TestNextMoveReachablePositions(t *testing.T) {
	ais := []*AI{mustAI(t, X), mustAI(t, O)}
	seen := map[Board]bool{}
	checked := 0

	var walk func(b Board, turn Cell)
	walk = func(b Board, turn Cell) {
		if seen[b] {
			return
		}
		seen[b] = true
		if b.Winner() != Empty || b.IsFull() {
			return
		}

		for _, ai := range ais {
			if !ai.IsValidGameInProgress(b) {
				continue
			}
			move, err := ai.NextMove(b)
			require.NoError(t, err, "%q as %s", b.String(), ai.Mark())
			require.True(t, b.SpaceIsFree(move), "%q as %s picked %d", b.String(), ai.Mark(), move)

			after := b
			after[move] = ai.Mark()
			if _, canWin := completingMove(b, ai.Mark()); canWin {
				assert.True(t, after.IsWinner(ai.Mark()), "%q as %s missed a win", b.String(), ai.Mark())
			} else if _, mustBlock := completingMove(b, ai.Opponent()); mustBlock {
				blocked := b
				blocked[move] = ai.Opponent()
				assert.True(t, blocked.IsWinner(ai.Opponent()), "%q as %s missed a block", b.String(), ai.Mark())
			}
			checked++
		}

		for _, i := range Moves {
			if b.SpaceIsFree(i) {
				next := b
				next[i] = turn
				walk(next, turn.Other())
			}
		}
	}
	walk(NewBoard(), X)

	assert.Greater(t, checked, 1000)
}
