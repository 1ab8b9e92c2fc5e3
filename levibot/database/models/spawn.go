package models

import (
	"time"

	"github.com/uptrace/bun"
)

type SpawnStatus string

const (
	SpawnActive  SpawnStatus = "active"
	SpawnCaught  SpawnStatus = "caught"
	SpawnExpired SpawnStatus = "expired"
)

// Spawn is the single row per room backing the spawn state machine.
type Spawn struct {
	bun.BaseModel `bun:"table:spawns,alias:sp"`

	RoomID    string      `bun:"room_id,pk,type:text"`
	CardID    string      `bun:"card_id,notnull"`
	Status    SpawnStatus `bun:"status,notnull"`
	Forced    bool        `bun:"forced,notnull,default:false"`
	SpawnedAt time.Time   `bun:"spawned_at,notnull"`
	ExpiresAt time.Time   `bun:"expires_at,notnull"`
	CaughtBy  string      `bun:"caught_by,nullzero"`
	CaughtAt  time.Time   `bun:"caught_at,nullzero"`
}

func (s *Spawn) ActiveAt(now time.Time) bool {
	return s.Status == SpawnActive && now.Before(s.ExpiresAt)
}
