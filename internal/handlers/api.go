// internal/handlers/api.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/okalpak/wordmines/internal/game"
	"github.com/okalpak/wordmines/internal/middleware"
)

// Server bundles the engine, the live event hub and the logger behind the
// HTTP surface.
type Server struct {
	Engine *game.Engine
	Hub    *Hub
	Logger *logrus.Logger
}

// NewServer wires the engine's broadcast hook into a fresh hub.
func NewServer(engine *game.Engine, logger *logrus.Logger) *Server {
	s := &Server{
		Engine: engine,
		Hub:    NewHub(logger),
		Logger: logger,
	}
	engine.BroadcastFn = s.Hub.Broadcast
	return s
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.LogRequests(s.Logger))

	r.Get("/health", s.handleHealth)

	r.Post("/matches/request", s.handleRequestMatch)
	r.Get("/matches/active/{username}", s.handleActiveMatches)
	r.Get("/matches/completed/{username}", s.handleCompletedMatches)
	r.Get("/matches/{id}", s.handleMatchState)
	r.Get("/matches/{id}/board", s.handleBoard)
	r.Get("/matches/{id}/rack/{username}", s.handleRack)
	r.Post("/matches/{id}/move", s.handleMove)
	r.Post("/matches/{id}/pass", s.handlePass)
	r.Post("/matches/{id}/surrender", s.handleSurrender)
	r.Get("/matches/{id}/ws", s.handleMatchWS)

	r.Post("/tickets/cancel", s.handleCancelTicket)
	r.Get("/tickets", s.handleListTickets)

	r.Get("/stats/{username}", s.handleWinStats)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeEngineError maps the engine's failure kinds onto HTTP statuses.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	var gameOver *game.GameOverError
	var insufficient *game.InsufficientTilesError

	switch {
	case errors.Is(err, game.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, game.ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, game.ErrInvalidWord),
		errors.Is(err, game.ErrInvalidMode),
		errors.Is(err, game.ErrInvalidPlacement):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":          err.Error(),
			"missing_letter": insufficient.Letter,
		})
	case errors.As(err, &gameOver):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":  err.Error(),
			"winner": gameOver.Outcome.Winner,
			"draw":   gameOver.Outcome.Draw,
		})
	default:
		s.Logger.WithError(err).Error("internal error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
