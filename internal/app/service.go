package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/tttai/internal/domain"
	"github.com/puzpuzpuz/xsync/v3"
)

// Errors exposed by the service layer.
var (
	ErrNotFound    = errors.New("game not found")
	ErrNotYourTurn = errors.New("not your turn")
)

// Challenge parses a board encoding, lets an AI playing mark move on it and
// returns the resulting encoding.
func Challenge(encoding string, mark domain.Cell) (string, error) {
	board, err := domain.ParseBoard(encoding)
	if err != nil {
		return "", err
	}
	ai, err := domain.NewAI(mark)
	if err != nil {
		return "", err
	}
	move, err := ai.NextMove(board)
	if err != nil {
		return "", err
	}
	if err := board.MakeMove(ai.Mark(), move); err != nil {
		return "", fmt.Errorf("apply move %d: %w", move, err)
	}
	return board.String(), nil
}

// GameState is the state tracked per game against the AI.
type GameState struct {
	ID      string
	Game    domain.Game
	Created time.Time
	Updated time.Time
}

// Service manages games played between a human and the AI.
type Service struct {
	games  *xsync.MapOf[string, GameState]
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates an empty service.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		games:  xsync.NewMapOf[string, GameState](),
		logger: logger.With("component", "service"),
		now:    time.Now,
	}
}

// CreateGame registers a new game in which the human plays human. When the
// human plays O the AI has already opened.
func (s *Service) CreateGame(human domain.Cell) (GameState, error) {
	g, err := domain.NewGame(human)
	if err != nil {
		return GameState{}, err
	}
	if err := replyAI(&g); err != nil {
		return GameState{}, err
	}

	now := s.now()
	gs := GameState{ID: uuid.NewString(), Game: g, Created: now, Updated: now}
	s.games.Store(gs.ID, gs)

	s.logger.Debug("game created", "id", gs.ID, "human", human.String())
	return gs, nil
}

// Get returns the game if present.
func (s *Service) Get(id string) (GameState, bool) {
	return s.games.Load(id)
}

// Delete drops a game.
func (s *Service) Delete(id string) error {
	if _, ok := s.games.LoadAndDelete(id); !ok {
		return ErrNotFound
	}
	s.logger.Debug("game deleted", "id", id)
	return nil
}

// Play applies the human's move at index and, unless that ends the game, the
// AI's reply. Moves on one game are applied atomically.
func (s *Service) Play(id string, index int) (GameState, error) {
	var err error
	gs, _ := s.games.Compute(id, func(old GameState, loaded bool) (GameState, bool) {
		if !loaded {
			err = ErrNotFound
			return old, true
		}
		next := old
		if err = playRound(&next.Game, index); err != nil {
			return old, false
		}
		next.Updated = s.now()
		return next, false
	})
	if err != nil {
		return GameState{}, err
	}

	s.logger.Debug("move played",
		"id", id,
		"index", index,
		"board", gs.Game.Board.String(),
		"over", gs.Game.Over,
	)
	return gs, nil
}

// Prune drops every game not updated since before and returns how many
// were removed.
func (s *Service) Prune(before time.Time) int {
	n := 0
	s.games.Range(func(id string, _ GameState) bool {
		// recheck under the entry lock so a game played meanwhile survives
		s.games.Compute(id, func(old GameState, loaded bool) (GameState, bool) {
			if loaded && old.Updated.Before(before) {
				n++
				return old, true
			}
			return old, !loaded
		})
		return true
	})
	if n > 0 {
		s.logger.Info("pruned stale games", "count", n)
	}
	return n
}

// Len returns the number of games held.
func (s *Service) Len() int { return s.games.Size() }

func playRound(g *domain.Game, index int) error {
	if !g.Over && g.Turn != g.Human {
		return ErrNotYourTurn
	}
	if err := g.Play(index); err != nil {
		return err
	}
	return replyAI(g)
}

// replyAI makes the AI's move if it is the AI's turn in an unfinished game.
func replyAI(g *domain.Game) error {
	if g.Over || g.Turn != g.AI() {
		return nil
	}
	ai, err := domain.NewAI(g.AI())
	if err != nil {
		return err
	}
	move, err := ai.NextMove(g.Board)
	if err != nil {
		return err
	}
	if err := g.Play(move); err != nil {
		return fmt.Errorf("ai move %d: %w", move, err)
	}
	return nil
}
