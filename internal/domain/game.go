package domain

import (
	"errors"
	"fmt"
)

// Game holds a match between a human and the AI. X always moves first.
type Game struct {
	Board  Board
	Human  Cell
	Turn   Cell
	Winner Cell
	Over   bool
	Moves  int
}

// Errors returned by Game.Play.
var (
	ErrOccupied = errors.New("cell occupied")
	ErrGameOver = errors.New("game over")
)

// NewGame returns a new game in which the human plays human and X is to move.
func NewGame(human Cell) (Game, error) {
	if !human.IsMark() {
		return Game{}, fmt.Errorf("%w: %q", ErrInvalidMark, rune(human))
	}
	return Game{Board: NewBoard(), Human: human, Turn: X, Winner: Empty}, nil
}

// AI returns the mark played by the computer.
func (g *Game) AI() Cell { return g.Human.Other() }

// HumanToMove reports whether the game is waiting on the human.
func (g *Game) HumanToMove() bool { return !g.Over && g.Turn == g.Human }

// Play places the mark whose turn it is at space i.
func (g *Game) Play(i int) error {
	if g.Over {
		return ErrGameOver
	}
	if i < 0 || i >= Size {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, i)
	}
	if !g.Board.SpaceIsFree(i) {
		return fmt.Errorf("%w: %d", ErrOccupied, i)
	}

	if err := g.Board.MakeMove(g.Turn, i); err != nil {
		return err
	}
	g.Moves++

	if g.Board.IsWinner(g.Turn) {
		g.Winner = g.Turn
		g.Over = true
		return nil
	}

	if g.Board.IsFull() {
		g.Winner = Empty
		g.Over = true
		return nil
	}

	g.Turn = g.Turn.Other()
	return nil
}
