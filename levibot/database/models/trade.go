package models

import (
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/game/trade"
	"github.com/uptrace/bun"
)

type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeCompleted TradeStatus = "completed"
	TradeCancelled TradeStatus = "cancelled"
)

type Trade struct {
	bun.BaseModel `bun:"table:trades,alias:t"`

	ID               string      `bun:"id,pk,type:text"`
	InitiatorID      string      `bun:"initiator_id,notnull"`
	CounterpartID    string      `bun:"counterpart_id,notnull"`
	PairKey          string      `bun:"pair_key,notnull"`
	RoomID           string      `bun:"room_id,notnull,default:''"`
	Status           TradeStatus `bun:"status,notnull"`
	InitiatorCards   []string    `bun:"initiator_cards,type:jsonb"`
	CounterpartCards []string    `bun:"counterpart_cards,type:jsonb"`
	InitiatorCoins   int64       `bun:"initiator_coins,notnull,default:0"`
	CounterpartCoins int64       `bun:"counterpart_coins,notnull,default:0"`
	ExpiresAt        time.Time   `bun:"expires_at,notnull"`
	CreatedAt        time.Time   `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt        time.Time   `bun:"updated_at,notnull,default:current_timestamp"`
}

// Session converts the row into the negotiation view used by the trade rules.
func (t *Trade) Session() trade.Session {
	return trade.Session{
		ID:            t.ID,
		InitiatorID:   t.InitiatorID,
		CounterpartID: t.CounterpartID,
		Pending:       t.Status == TradePending && time.Now().Before(t.ExpiresAt),
		Initiator:     trade.Offer{UserCardIDs: t.InitiatorCards, Coins: t.InitiatorCoins},
		Counterpart:   trade.Offer{UserCardIDs: t.CounterpartCards, Coins: t.CounterpartCoins},
	}
}
