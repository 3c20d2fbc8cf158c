// internal/handlers/match.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/okalpak/wordmines/internal/models"
)

type requestMatchRequest struct {
	Username string `json:"username"`
	Mode     string `json:"mode"`
}

func (s *Server) handleRequestMatch(w http.ResponseWriter, r *http.Request) {
	var req requestMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	match, err := s.Engine.RequestMatch(r.Context(), req.Username, req.Mode)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if match == nil {
		writeJSON(w, http.StatusAccepted, map[string]bool{"waiting": true})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"matchId": match.ID.String()})
}

type usernameRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleCancelTicket(w http.ResponseWriter, r *http.Request) {
	var req usernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	if err := s.Engine.CancelTicket(r.Context(), req.Username); err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.Engine.ListPendingTickets(r.Context())
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (s *Server) matchID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid match id"})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) handleMatchState(w http.ResponseWriter, r *http.Request) {
	id, ok := s.matchID(w, r)
	if !ok {
		return
	}
	state, err := s.Engine.GetMatchState(r.Context(), id)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	id, ok := s.matchID(w, r)
	if !ok {
		return
	}
	cells, err := s.Engine.GetBoard(r.Context(), id)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cells)
}

func (s *Server) handleRack(w http.ResponseWriter, r *http.Request) {
	id, ok := s.matchID(w, r)
	if !ok {
		return
	}
	username := chi.URLParam(r, "username")
	tiles, err := s.Engine.GetRack(r.Context(), id, username)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tiles)
}

type moveRequest struct {
	Username  string            `json:"username"`
	Word      string            `json:"word"`
	Positions []models.Position `json:"positions"`
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	id, ok := s.matchID(w, r)
	if !ok {
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	result, err := s.Engine.SubmitMove(r.Context(), id, req.Username, req.Word, req.Positions)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	id, ok := s.matchID(w, r)
	if !ok {
		return
	}
	var req usernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	nextTurn, err := s.Engine.PassTurn(r.Context(), id, req.Username)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"nextTurn": nextTurn})
}

func (s *Server) handleSurrender(w http.ResponseWriter, r *http.Request) {
	id, ok := s.matchID(w, r)
	if !ok {
		return
	}
	var req usernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	outcome, err := s.Engine.Surrender(r.Context(), id, req.Username)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleActiveMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.Engine.ListActiveMatches(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if matches == nil {
		matches = []*models.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleCompletedMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.Engine.ListCompletedMatches(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if matches == nil {
		matches = []*models.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleWinStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Engine.GetWinStats(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
