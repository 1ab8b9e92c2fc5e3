package spawn

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
)

var (
	ErrSpawnActive   = errors.New("a card is already active in this room")
	ErrCooldown      = errors.New("room is cooling down")
	ErrNoActiveSpawn = errors.New("there is nothing to catch right now")
)

// Store keeps one spawn record per room. Activate and Claim must be atomic
// per room: concurrent callers may race, only one of them wins.
type Store interface {
	Get(ctx context.Context, roomID string) (*models.Spawn, error)
	// Activate stores s as the active spawn unless an unexpired spawn is
	// active, or, for unforced spawns, the room cooldown since the previous
	// spawn has not elapsed.
	Activate(ctx context.Context, s *models.Spawn, cooldown time.Duration) error
	// Claim moves the active, unexpired spawn of the room to caught, provided
	// it still shows cardID.
	Claim(ctx context.Context, roomID, cardID, userID string, now time.Time) (*models.Spawn, error)
	// Reopen undoes a claim by userID, used when granting the card failed.
	Reopen(ctx context.Context, roomID, userID string) error
	// ExpireDue marks every active spawn past its window as expired and
	// returns them.
	ExpireDue(ctx context.Context, now time.Time) ([]*models.Spawn, error)
}

// MemoryStore is a process-local Store. The mutex makes activation and
// claiming compare-and-swap operations.
type MemoryStore struct {
	mu    sync.Mutex
	rooms map[string]models.Spawn
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string]models.Spawn)}
}

func (m *MemoryStore) Get(_ context.Context, roomID string) (*models.Spawn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.rooms[roomID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *MemoryStore) Activate(_ context.Context, s *models.Spawn, cooldown time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.rooms[s.RoomID]; ok {
		if prev.ActiveAt(s.SpawnedAt) {
			return ErrSpawnActive
		}
		if !s.Forced && s.SpawnedAt.Sub(prev.SpawnedAt) < cooldown {
			return ErrCooldown
		}
	}

	s.Status = models.SpawnActive
	m.rooms[s.RoomID] = *s
	return nil
}

func (m *MemoryStore) Claim(_ context.Context, roomID, cardID, userID string, now time.Time) (*models.Spawn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.rooms[roomID]
	if !ok || !s.ActiveAt(now) || s.CardID != cardID {
		return nil, ErrNoActiveSpawn
	}

	s.Status = models.SpawnCaught
	s.CaughtBy = userID
	s.CaughtAt = now
	m.rooms[roomID] = s
	return &s, nil
}

func (m *MemoryStore) Reopen(_ context.Context, roomID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.rooms[roomID]
	if !ok || s.Status != models.SpawnCaught || s.CaughtBy != userID {
		return nil
	}
	s.Status = models.SpawnActive
	s.CaughtBy = ""
	s.CaughtAt = time.Time{}
	m.rooms[roomID] = s
	return nil
}

func (m *MemoryStore) ExpireDue(_ context.Context, now time.Time) ([]*models.Spawn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []*models.Spawn
	for room, s := range m.rooms {
		if s.Status == models.SpawnActive && !now.Before(s.ExpiresAt) {
			s.Status = models.SpawnExpired
			m.rooms[room] = s
			cp := s
			expired = append(expired, &cp)
		}
	}
	return expired, nil
}
