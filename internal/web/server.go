package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jaminalder/tttai/internal/app"
	"github.com/jaminalder/tttai/internal/domain"
)

// NewServer wires routes and returns an http.Handler. aiMark is the mark the
// AI plays on /ttt when the request does not name one.
func NewServer(s *app.Service, aiMark domain.Cell, logger *slog.Logger) http.Handler {
	logger = logger.With("component", "http")
	h := &handlers{svc: s, aiMark: aiMark, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)
	r.Get("/ttt", h.challenge)
	r.Post("/game", h.create)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/play", h.play)
		r.Delete("/", h.remove)
	})
	return r
}
