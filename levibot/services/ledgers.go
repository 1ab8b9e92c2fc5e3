package services

import (
	"context"

	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/economy/utils"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/ellavondegurechaff/levibot/levibot/game/deck"
	"github.com/ellavondegurechaff/levibot/levibot/game/trade"
	"github.com/uptrace/bun"
)

// Settler runs each fn inside one storage transaction. Nothing fn applied
// survives an error. Battles and trades run serializable.
type Settler interface {
	SettleBattle(ctx context.Context, fn func(ctx context.Context, l battle.Ledger) error) error
	SettleTrade(ctx context.Context, fn func(ctx context.Context, l trade.Ledger) error) error
	EditDeck(ctx context.Context, fn func(ctx context.Context, l deck.Ledger) error) error
}

type txSettler struct {
	etm *utils.EconomicTransactionManager
}

func NewSettler(etm *utils.EconomicTransactionManager) Settler {
	return &txSettler{etm: etm}
}

func (s *txSettler) SettleBattle(ctx context.Context, fn func(ctx context.Context, l battle.Ledger) error) error {
	return s.etm.WithTransaction(ctx, utils.SerializableTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, repositories.NewBattleLedger(tx, s.etm))
	})
}

func (s *txSettler) SettleTrade(ctx context.Context, fn func(ctx context.Context, l trade.Ledger) error) error {
	return s.etm.WithTransaction(ctx, utils.SerializableTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, repositories.NewTradeLedger(tx, s.etm))
	})
}

func (s *txSettler) EditDeck(ctx context.Context, fn func(ctx context.Context, l deck.Ledger) error) error {
	return s.etm.WithTransaction(ctx, utils.StandardTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, repositories.NewDeckLedger(tx, s.etm))
	})
}
