package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/cardleveling"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/economy/utils"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/ellavondegurechaff/levibot/levibot/game/deck"
	"github.com/ellavondegurechaff/levibot/levibot/game/trade"
	"github.com/uptrace/bun"
)

var ErrSessionClosed = errors.New("session is no longer open")

// BattleLedger applies battle settlements inside an open transaction.
type BattleLedger struct {
	tx  bun.Tx
	etm *utils.EconomicTransactionManager
}

var _ battle.Ledger = (*BattleLedger)(nil)

func NewBattleLedger(tx bun.Tx, etm *utils.EconomicTransactionManager) *BattleLedger {
	return &BattleLedger{tx: tx, etm: etm}
}

func (l *BattleLedger) Balance(ctx context.Context, userID string) (int64, error) {
	return l.etm.LockBalance(ctx, l.tx, userID)
}

// Progress locks the given cards. Ids that no longer exist are skipped.
func (l *BattleLedger) Progress(ctx context.Context, userCardIDs []string) ([]cardleveling.CardProgress, error) {
	if len(userCardIDs) == 0 {
		return nil, nil
	}

	var cards []models.UserCard
	err := l.tx.NewSelect().
		Model(&cards).
		Column("id", "level", "exp").
		Where("id IN (?)", bun.In(userCardIDs)).
		Order("id ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock deck cards: %w", err)
	}

	progress := make([]cardleveling.CardProgress, 0, len(cards))
	for _, c := range cards {
		progress = append(progress, cardleveling.CardProgress{UserCardID: c.ID, Level: c.Level, Exp: c.Exp})
	}
	return progress, nil
}

func (l *BattleLedger) ApplyBattle(ctx context.Context, s *battle.Settlement) error {
	now := time.Now()

	completed := &models.Battle{
		ID:        s.BattleID,
		Status:    models.BattleCompleted,
		WinnerID:  s.WinnerID,
		Turns:     s.Result.Turns,
		UpdatedAt: now,
	}
	res, err := l.tx.NewUpdate().
		Model(completed).
		Column("status", "winner_id", "turns", "updated_at").
		WherePK().
		Where("status = ?", models.BattleActive).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete battle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("battle %s: %w", s.BattleID, ErrSessionClosed)
	}

	if s.Wager > 0 {
		if err := l.etm.TransferBalance(ctx, l.tx, s.LoserID, s.WinnerID, s.Wager); err != nil {
			return fmt.Errorf("failed to move wager: %w", err)
		}
	}

	for _, p := range s.Progress {
		_, err := l.tx.NewUpdate().
			Model((*models.UserCard)(nil)).
			Set("level = ?", p.NewLevel).
			Set("exp = ?", p.CurrentExp).
			Set("updated_at = ?", now).
			Where("id = ?", p.UserCardID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update card progress: %w", err)
		}
	}

	for userID, column := range map[string]string{s.WinnerID: "battles_won", s.LoserID: "battles_lost"} {
		_, err := l.tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("? = ? + 1", bun.Ident(column), bun.Ident(column)).
			Set("updated_at = ?", now).
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update battle stats: %w", err)
		}
	}

	return nil
}

// TradeLedger validates and applies trades inside an open transaction.
type TradeLedger struct {
	tx  bun.Tx
	etm *utils.EconomicTransactionManager
}

var _ trade.Ledger = (*TradeLedger)(nil)

func NewTradeLedger(tx bun.Tx, etm *utils.EconomicTransactionManager) *TradeLedger {
	return &TradeLedger{tx: tx, etm: etm}
}

// Session locks the trade row, so offers cannot change until the
// transaction ends, and returns its current terms.
func (l *TradeLedger) Session(ctx context.Context, tradeID string) (trade.Session, error) {
	t := new(models.Trade)
	err := l.tx.NewSelect().
		Model(t).
		Where("id = ?", tradeID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trade.Session{}, &NotFoundError{Entity: "trade", ID: tradeID}
		}
		return trade.Session{}, fmt.Errorf("failed to lock trade: %w", err)
	}
	return t.Session(), nil
}

// Holdings locks both accounts, in id order, and every offered card.
func (l *TradeLedger) Holdings(ctx context.Context, s trade.Session) (trade.Holdings, error) {
	h := trade.Holdings{
		Balances: make(map[string]int64, 2),
		Owners:   make(map[string]string),
	}

	users := []string{s.InitiatorID, s.CounterpartID}
	sort.Strings(users)
	for _, id := range users {
		balance, err := l.etm.LockBalance(ctx, l.tx, id)
		if err != nil {
			return h, err
		}
		h.Balances[id] = balance
	}

	ids := append(append([]string(nil), s.Initiator.UserCardIDs...), s.Counterpart.UserCardIDs...)
	if len(ids) == 0 {
		return h, nil
	}

	var cards []models.UserCard
	err := l.tx.NewSelect().
		Model(&cards).
		Column("id", "user_id").
		Where("id IN (?)", bun.In(ids)).
		Order("id ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return h, fmt.Errorf("failed to lock offered cards: %w", err)
	}
	for _, c := range cards {
		h.Owners[c.ID] = c.UserID
	}
	return h, nil
}

func (l *TradeLedger) ApplyTrade(ctx context.Context, plan *trade.Settlement) error {
	res, err := l.tx.NewUpdate().
		Model((*models.Trade)(nil)).
		Set("status = ?", models.TradeCompleted).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND status = ?", plan.TradeID, models.TradePending).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete trade: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return trade.ErrNotPending
	}

	for _, mv := range plan.Cards {
		if err := l.etm.TransferCard(ctx, l.tx, mv.UserCardID, mv.From, mv.To); err != nil {
			return err
		}
	}

	// debits first
	users := make([]string, 0, len(plan.Deltas))
	for id := range plan.Deltas {
		users = append(users, id)
	}
	sort.Slice(users, func(i, j int) bool { return plan.Deltas[users[i]] < plan.Deltas[users[j]] })

	for _, id := range users {
		if plan.Deltas[id] == 0 {
			continue
		}
		if err := l.etm.ValidateAndUpdateBalance(ctx, l.tx, utils.BalanceOperationOptions{
			UserID: id,
			Amount: plan.Deltas[id],
		}); err != nil {
			return err
		}
	}
	return nil
}

// DeckLedger edits one user's deck inside an open transaction.
type DeckLedger struct {
	tx  bun.Tx
	etm *utils.EconomicTransactionManager
}

var _ deck.Ledger = (*DeckLedger)(nil)

func NewDeckLedger(tx bun.Tx, etm *utils.EconomicTransactionManager) *DeckLedger {
	return &DeckLedger{tx: tx, etm: etm}
}

func (l *DeckLedger) LockDeck(ctx context.Context, userID string) ([]deck.Slot, error) {
	return l.etm.LockDeck(ctx, l.tx, userID)
}

func (l *DeckLedger) LockOwnedCard(ctx context.Context, userID, userCardID string) error {
	_, err := l.etm.LockOwnedCard(ctx, l.tx, userCardID, userID)
	return err
}

func (l *DeckLedger) WriteSlots(ctx context.Context, slots []deck.Slot) error {
	return l.etm.WriteDeckSlots(ctx, l.tx, slots)
}

func (l *DeckLedger) ClearSlots(ctx context.Context, userID string, ids []string) (int, error) {
	return l.etm.ClearDeckSlots(ctx, l.tx, userID, ids...)
}
