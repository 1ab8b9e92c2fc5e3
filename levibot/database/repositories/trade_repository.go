package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type TradeRepository interface {
	Create(ctx context.Context, t *models.Trade) error
	GetByID(ctx context.Context, id string) (*models.Trade, error)
	// GetOpenFor returns the pending trade userID takes part in.
	GetOpenFor(ctx context.Context, userID string) (*models.Trade, error)
	// GetIncomingFor returns the newest pending trade offered to userID.
	GetIncomingFor(ctx context.Context, userID string) (*models.Trade, error)
	// Mutate locks the trade row, lets fn edit the offers and saves them.
	Mutate(ctx context.Context, id string, fn func(ctx context.Context, tx bun.Tx, t *models.Trade) error) (*models.Trade, error)
	Transition(ctx context.Context, id string, from, to models.TradeStatus) (bool, error)
	ExpireDue(ctx context.Context, now time.Time) ([]*models.Trade, error)
}

type tradeRepository struct {
	*BaseRepository
}

func NewTradeRepository(db *bun.DB) TradeRepository {
	return &tradeRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *tradeRepository) Create(ctx context.Context, t *models.Trade) error {
	now := time.Now()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.PairKey = PairKey(t.InitiatorID, t.CounterpartID)
	t.Status = models.TradePending
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.InitiatorCards == nil {
		t.InitiatorCards = []string{}
	}
	if t.CounterpartCards == nil {
		t.CounterpartCards = []string{}
	}

	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	// a lapsed trade of the pair the sweeper has not reached yet
	if _, err := r.expirePairQuery(t.PairKey, now).Exec(ctx); err != nil {
		return r.HandleError("expire_pair", "trade", err)
	}
	if _, err := r.db.NewInsert().Model(t).Exec(ctx); err != nil {
		if IsUniqueViolation(err) {
			return &ConflictError{Entity: "trade", Field: "pair", Value: t.PairKey}
		}
		return r.HandleError("create", "trade", err)
	}
	return nil
}

func (r *tradeRepository) GetByID(ctx context.Context, id string) (*models.Trade, error) {
	t := new(models.Trade)
	err := r.SelectOneWithTimeout(ctx, "get", "trade", id, func(ctx context.Context) error {
		return r.db.NewSelect().Model(t).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tradeRepository) GetOpenFor(ctx context.Context, userID string) (*models.Trade, error) {
	t := new(models.Trade)
	err := r.SelectOneWithTimeout(ctx, "get_open", "trade", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(t).
			WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Where("initiator_id = ?", userID).WhereOr("counterpart_id = ?", userID)
			}).
			Where("status = ?", models.TradePending).
			Where("expires_at > ?", time.Now()).
			Order("created_at DESC").
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tradeRepository) GetIncomingFor(ctx context.Context, userID string) (*models.Trade, error) {
	t := new(models.Trade)
	err := r.SelectOneWithTimeout(ctx, "get_incoming", "trade", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(t).
			Where("counterpart_id = ?", userID).
			Where("status = ?", models.TradePending).
			Where("expires_at > ?", time.Now()).
			Order("created_at DESC").
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tradeRepository) Mutate(ctx context.Context, id string, fn func(ctx context.Context, tx bun.Tx, t *models.Trade) error) (*models.Trade, error) {
	t := new(models.Trade)
	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(t).Where("id = ?", id).For("UPDATE").Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &NotFoundError{Entity: "trade", ID: id}
			}
			return fmt.Errorf("failed to lock trade: %w", err)
		}

		if err := fn(ctx, tx, t); err != nil {
			return err
		}

		t.UpdatedAt = time.Now()
		_, err := tx.NewUpdate().
			Model(t).
			Column("initiator_cards", "counterpart_cards", "initiator_coins", "counterpart_coins", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save trade: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tradeRepository) Transition(ctx context.Context, id string, from, to models.TradeStatus) (bool, error) {
	res, err := r.ExecWithTimeout(ctx, "transition", "trade", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*models.Trade)(nil)).
			Set("status = ?", to).
			Set("updated_at = ?", time.Now()).
			Where("id = ? AND status = ?", id, from).
			Exec(ctx)
	})
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}

// ExpireDue cancels pending trades past their window.
func (r *tradeRepository) ExpireDue(ctx context.Context, now time.Time) ([]*models.Trade, error) {
	var expired []*models.Trade
	err := r.SelectWithTimeout(ctx, "expire", "trade", func(ctx context.Context) error {
		_, err := r.expireQuery(now).Returning("*").Exec(ctx, &expired)
		return err
	})
	return expired, err
}

func (r *tradeRepository) expireQuery(now time.Time) *bun.UpdateQuery {
	return r.db.NewUpdate().
		Model((*models.Trade)(nil)).
		Set("status = ?", models.TradeCancelled).
		Set("updated_at = ?", now).
		Where("status = ?", models.TradePending).
		Where("expires_at <= ?", now)
}

func (r *tradeRepository) expirePairQuery(pairKey string, now time.Time) *bun.UpdateQuery {
	return r.expireQuery(now).Where("pair_key = ?", pairKey)
}
