// internal/memstore/memstore.go
//
// In-memory implementation of the game.Store repositories. Used when the
// server runs without Postgres (STORAGE=memory) and throughout the engine
// tests. State is lost when the process restarts.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/okalpak/wordmines/internal/models"
)

// Store keeps every entity in maps guarded by one RWMutex. The engine
// serializes per-match mutation above this layer; the mutex here only
// protects map access.
type Store struct {
	mu      sync.RWMutex
	matches map[uuid.UUID]*models.Match
	cells   map[uuid.UUID][]models.Cell // keyed by match id, row-major
	pools   map[uuid.UUID]map[string]int
	tiles   map[uuid.UUID][]models.Tile // keyed by match id, insertion order
	tickets map[uuid.UUID]*models.Ticket
	users   map[string]*models.User // keyed by username
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		matches: make(map[uuid.UUID]*models.Match),
		cells:   make(map[uuid.UUID][]models.Cell),
		pools:   make(map[uuid.UUID]map[string]int),
		tiles:   make(map[uuid.UUID][]models.Tile),
		tickets: make(map[uuid.UUID]*models.Ticket),
		users:   make(map[string]*models.User),
	}
}

// AddUser registers a user in the in-memory identity directory.
func (s *Store) AddUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.users[u.Username] = u
}

func (s *Store) LookupUser(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *Store) CreateMatch(ctx context.Context, m *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.matches[m.ID] = &cp
	return nil
}

func (s *Store) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (s *Store) UpdateMatch(ctx context.Context, m *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.matches[m.ID] = &cp
	return nil
}

func (s *Store) listByUser(username string, completed bool) []*models.Match {
	var out []*models.Match
	for _, m := range s.matches {
		if m.Player1 != username && m.Player2 != username {
			continue
		}
		if (completed && m.IsCompleted) || (!completed && m.IsActive) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (s *Store) ListActiveByUser(ctx context.Context, username string) ([]*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listByUser(username, false), nil
}

func (s *Store) ListCompletedByUser(ctx context.Context, username string) ([]*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listByUser(username, true), nil
}

func (s *Store) BoardExists(ctx context.Context, matchID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cells[matchID]
	return ok, nil
}

func (s *Store) CreateCells(ctx context.Context, matchID uuid.UUID, cells []models.Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]models.Cell, len(cells))
	copy(cp, cells)
	s.cells[matchID] = cp
	return nil
}

func (s *Store) GetCells(ctx context.Context, matchID uuid.UUID) ([]models.Cell, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cells := s.cells[matchID]
	cp := make([]models.Cell, len(cells))
	copy(cp, cells)
	return cp, nil
}

func (s *Store) UpdateCellLetters(ctx context.Context, matchID uuid.UUID, updated []models.Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cells := s.cells[matchID]
	for _, u := range updated {
		for i := range cells {
			if cells[i].Row == u.Row && cells[i].Col == u.Col {
				cells[i].Letter = u.Letter
				break
			}
		}
	}
	return nil
}

func (s *Store) SeedPool(ctx context.Context, matchID uuid.UUID, counts map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := make(map[string]int, len(counts))
	for l, n := range counts {
		pool[l] = n
	}
	s.pools[matchID] = pool
	return nil
}

func (s *Store) GetPool(ctx context.Context, matchID uuid.UUID) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pool := s.pools[matchID]
	cp := make(map[string]int, len(pool))
	for l, n := range pool {
		cp[l] = n
	}
	return cp, nil
}

func (s *Store) SetRemaining(ctx context.Context, matchID uuid.UUID, letter string, remaining int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pool, ok := s.pools[matchID]; ok {
		pool[letter] = remaining
	}
	return nil
}

func (s *Store) AddTiles(ctx context.Context, tiles []models.Tile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tiles {
		s.tiles[t.MatchID] = append(s.tiles[t.MatchID], t)
	}
	return nil
}

func (s *Store) GetRack(ctx context.Context, matchID uuid.UUID, username string) ([]models.Tile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Tile
	for _, t := range s.tiles[matchID] {
		if t.Username == username {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) MarkTilesUsed(ctx context.Context, tileIDs []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[uuid.UUID]bool, len(tileIDs))
	for _, id := range tileIDs {
		ids[id] = true
	}
	for matchID, tiles := range s.tiles {
		for i := range tiles {
			if ids[tiles[i].ID] {
				tiles[i].Used = true
			}
		}
		s.tiles[matchID] = tiles
	}
	return nil
}

func (s *Store) CreateTicket(ctx context.Context, t *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.tickets[t.ID] = &cp
	return nil
}

func (s *Store) FindOpponentTicket(ctx context.Context, mode models.GameMode, exclude string) (*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var oldest *models.Ticket
	for _, t := range s.tickets {
		if t.Mode != mode || t.Username == exclude {
			continue
		}
		if oldest == nil || t.CreatedAt < oldest.CreatedAt {
			oldest = t
		}
	}
	if oldest == nil {
		return nil, nil
	}
	cp := *oldest
	return &cp, nil
}

func (s *Store) DeleteTicket(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tickets[id]; !ok {
		return false, nil
	}
	delete(s.tickets, id)
	return true, nil
}

func (s *Store) DeleteTicketsByUsername(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := false
	for id, t := range s.tickets {
		if t.Username == username {
			delete(s.tickets, id)
			deleted = true
		}
	}
	return deleted, nil
}

func (s *Store) ListTickets(ctx context.Context) ([]*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}
