package models

import (
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/uptrace/bun"
)

type BattleStatus string

const (
	BattlePending   BattleStatus = "pending"
	BattleActive    BattleStatus = "active"
	BattleCompleted BattleStatus = "completed"
	BattleCancelled BattleStatus = "cancelled"
)

type Battle struct {
	bun.BaseModel `bun:"table:battles,alias:b"`

	ID             string        `bun:"id,pk,type:text"`
	ChallengerID   string        `bun:"challenger_id,notnull"`
	OpponentID     string        `bun:"opponent_id,notnull"`
	PairKey        string        `bun:"pair_key,notnull"`
	RoomID         string        `bun:"room_id,notnull,default:''"`
	Status         BattleStatus  `bun:"status,notnull"`
	Turns          []battle.Turn `bun:"turns,type:jsonb"`
	ChallengerDeck []string      `bun:"challenger_deck,type:jsonb"`
	OpponentDeck   []string      `bun:"opponent_deck,type:jsonb"`
	Wager          int64         `bun:"wager,notnull,default:0"`
	WinnerID       string        `bun:"winner_id,nullzero"`
	ExpiresAt      time.Time     `bun:"expires_at,notnull"`
	CreatedAt      time.Time     `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt      time.Time     `bun:"updated_at,notnull,default:current_timestamp"`
}
