package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jaminalder/tttai/internal/app"
	"github.com/jaminalder/tttai/internal/domain"
)

type handlers struct {
	svc    *app.Service
	aiMark domain.Cell
	logger *slog.Logger
}

// gameView is the JSON form of a game.
type gameView struct {
	ID      string    `json:"id"`
	Board   string    `json:"board"`
	Human   string    `json:"human"`
	Turn    string    `json:"turn"`
	Winner  string    `json:"winner,omitempty"`
	Over    bool      `json:"over"`
	Moves   int       `json:"moves"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

func newGameView(gs app.GameState) gameView {
	v := gameView{
		ID:      gs.ID,
		Board:   gs.Game.Board.String(),
		Human:   gs.Game.Human.String(),
		Turn:    gs.Game.Turn.String(),
		Over:    gs.Game.Over,
		Moves:   gs.Game.Moves,
		Created: gs.Created,
		Updated: gs.Updated,
	}
	if gs.Game.Winner != domain.Empty {
		v.Winner = gs.Game.Winner.String()
	}
	return v
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// challenge answers GET /ttt?board=...: the AI moves on the given board and
// the new encoding is returned. Every failure is a bad request. A missing
// board reads as the empty encoding.
func (h *handlers) challenge(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mark := h.aiMark
	if m := q.Get("mark"); m != "" {
		var err error
		if mark, err = domain.ParseMark(m); err != nil {
			writeError(w, err)
			return
		}
	}

	out, err := app.Challenge(q.Get("board"), mark)
	if err != nil {
		h.logger.Debug("challenge rejected", "board", q.Get("board"), "err", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	human := domain.X
	if m := r.FormValue("mark"); m != "" {
		var err error
		if human, err = domain.ParseMark(m); err != nil {
			writeError(w, err)
			return
		}
	}
	gs, err := h.svc.CreateGame(human)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/game/"+gs.ID)
	writeJSON(w, http.StatusCreated, newGameView(gs))
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	gs, ok := h.svc.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, app.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(gs))
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	idx, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %q", domain.ErrInvalidPosition, r.FormValue("index")))
		return
	}
	gs, err := h.svc.Play(id, idx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newGameView(gs))
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
