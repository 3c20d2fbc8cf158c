// internal/handlers/match_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/okalpak/wordmines/internal/game"
	"github.com/okalpak/wordmines/internal/middleware"
)

// Hub fans engine events out to WebSocket subscribers per match. It is a
// pure observer: the engine never waits on it and a match with no
// subscribers behaves identically.
type Hub struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[*websocket.Conn]bool
	logger *logrus.Logger
}

// NewHub builds an empty hub.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		subs:   make(map[uuid.UUID]map[*websocket.Conn]bool),
		logger: logger,
	}
}

func (h *Hub) subscribe(matchID uuid.UUID, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[matchID] == nil {
		h.subs[matchID] = make(map[*websocket.Conn]bool)
	}
	h.subs[matchID][c] = true
}

func (h *Hub) unsubscribe(matchID uuid.UUID, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[matchID], c)
	if len(h.subs[matchID]) == 0 {
		delete(h.subs, matchID)
	}
}

// Broadcast sends an event to every subscriber of its match. Called while
// the engine holds the per-match lock, so writes happen asynchronously
// with their own timeout.
func (h *Hub) Broadcast(ev game.MatchEvent) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.subs[ev.MatchID]))
	for c := range h.subs[ev.MatchID] {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	if len(conns) == 0 {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Errorf("failed to marshal event %s for match %s: %v", ev.Type, ev.MatchID, err)
		return
	}

	go func() {
		for _, c := range conns {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := c.Write(ctx, websocket.MessageText, data); err != nil {
				h.logger.Warnf("failed to write event to subscriber of match %s: %v", ev.MatchID, err)
			}
			cancel()
		}
	}()
}

// handleMatchWS upgrades the connection and streams match events until the
// client goes away. The reader loop only drains control frames; the feed
// is one-directional.
func (s *Server) handleMatchWS(w http.ResponseWriter, r *http.Request) {
	id, ok := s.matchID(w, r)
	if !ok {
		return
	}

	// Reject unknown matches before upgrading.
	if _, err := s.Engine.GetMatchState(r.Context(), id); err != nil {
		s.writeEngineError(w, err)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.Logger.Warnf("WebSocket accept error for match %s: %v", id, err)
		return
	}
	middleware.LogWebSocketConnect(s.Logger, r.RemoteAddr, r.URL.Path)

	s.Hub.subscribe(id, c)
	defer func() {
		s.Hub.unsubscribe(id, c)
		c.Close(websocket.StatusNormalClosure, "")
	}()

	// Block until the peer closes or the request context ends.
	readCtx := r.Context()
	for {
		if _, _, err := c.Read(readCtx); err != nil {
			middleware.LogWebSocketDisconnect(s.Logger, r.RemoteAddr, r.URL.Path, err)
			return
		}
	}
}
