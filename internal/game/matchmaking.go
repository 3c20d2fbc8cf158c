// internal/game/matchmaking.go
package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// RequestMatch pairs the caller with a waiting ticket for the same mode, or
// queues a new ticket when no compatible opponent is waiting. The returned
// match is nil when the caller was queued.
//
// Pairing is check-then-act: find a ticket, then delete-and-create. The
// queue mutex plus compare-and-delete removal guarantee that two
// simultaneous requests never both pair with the same ticket.
func (e *Engine) RequestMatch(ctx context.Context, username, modeStr string) (*models.Match, error) {
	mode, err := models.ParseGameMode(modeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}

	user, err := e.store.LookupUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}

	e.queueMu.Lock()
	defer e.queueMu.Unlock()

	ticket, err := e.store.FindOpponentTicket(ctx, mode, username)
	if err != nil {
		return nil, err
	}
	if ticket != nil {
		deleted, err := e.store.DeleteTicket(ctx, ticket.ID)
		if err != nil {
			return nil, err
		}
		if deleted {
			return e.createMatch(ctx, ticket.Username, username, mode)
		}
		// Someone else consumed the ticket between find and delete; fall
		// through and wait.
	}

	t := &models.Ticket{
		ID:        uuid.New(),
		Username:  username,
		Mode:      mode,
		CreatedAt: e.now().UnixMilli(),
	}
	if err := e.store.CreateTicket(ctx, t); err != nil {
		return nil, err
	}
	return nil, nil
}

// createMatch builds the match row atomically together with its board,
// pool and both initial racks.
func (e *Engine) createMatch(ctx context.Context, player1, player2 string, mode models.GameMode) (*models.Match, error) {
	start := e.now()
	m := &models.Match{
		ID:          uuid.New(),
		Player1:     player1,
		Player2:     player2,
		Mode:        mode,
		StartTime:   start,
		EndTime:     start.Add(mode.Duration()),
		CurrentTurn: rand.Intn(2) + 1,
		IsActive:    true,
	}
	if err := e.store.CreateMatch(ctx, m); err != nil {
		return nil, err
	}
	if err := e.GenerateBoard(ctx, m.ID); err != nil {
		return nil, err
	}
	if err := e.seedPool(ctx, m.ID); err != nil {
		return nil, err
	}
	if err := e.dealInitialRacks(ctx, m.ID, player1, player2); err != nil {
		return nil, err
	}

	e.publish(MatchEvent{Type: EventMatchCreated, MatchID: m.ID, NextTurn: m.CurrentTurn})
	e.logAction(m.ID, "", "match_created", map[string]interface{}{
		"player1": player1,
		"player2": player2,
		"mode":    string(mode),
	})
	return m, nil
}

// CancelTicket withdraws the caller's own pending ticket.
func (e *Engine) CancelTicket(ctx context.Context, username string) error {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()

	deleted, err := e.store.DeleteTicketsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("ticket for %q: %w", username, ErrNotFound)
	}
	return nil
}

// ListPendingTickets returns every ticket currently waiting to be paired.
func (e *Engine) ListPendingTickets(ctx context.Context) ([]*models.Ticket, error) {
	return e.store.ListTickets(ctx)
}
