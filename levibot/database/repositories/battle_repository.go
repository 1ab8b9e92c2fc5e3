package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BattleRepository interface {
	Create(ctx context.Context, b *models.Battle) error
	GetByID(ctx context.Context, id string) (*models.Battle, error)
	// GetPendingFor returns the newest pending challenge addressed to userID.
	GetPendingFor(ctx context.Context, userID string) (*models.Battle, error)
	// Transition moves a battle from one status to another and reports
	// whether this caller won the race.
	Transition(ctx context.Context, id string, from, to models.BattleStatus) (bool, error)
	// Start moves a pending battle to active and freezes the opponent deck.
	Start(ctx context.Context, id string, opponentDeck []string) (bool, error)
	ExpireDue(ctx context.Context, now time.Time) ([]*models.Battle, error)
}

type battleRepository struct {
	*BaseRepository
}

func NewBattleRepository(db *bun.DB) BattleRepository {
	return &battleRepository{BaseRepository: NewBaseRepository(db)}
}

// Create inserts a pending battle. A second open battle for the same pair is
// rejected by the partial unique index and reported as ErrAlreadyPending.
// A lapsed battle of the pair the sweeper has not reached yet is cancelled
// first.
func (r *battleRepository) Create(ctx context.Context, b *models.Battle) error {
	now := time.Now()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.PairKey = PairKey(b.ChallengerID, b.OpponentID)
	b.Status = models.BattlePending
	b.CreatedAt = now
	b.UpdatedAt = now

	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	if _, err := r.expirePairQuery(b.PairKey, now).Exec(ctx); err != nil {
		return r.HandleError("expire_pair", "battle", err)
	}
	if _, err := r.db.NewInsert().Model(b).Exec(ctx); err != nil {
		if IsUniqueViolation(err) {
			return &ConflictError{Entity: "battle", Field: "pair", Value: b.PairKey}
		}
		return r.HandleError("create", "battle", err)
	}
	return nil
}

func (r *battleRepository) GetByID(ctx context.Context, id string) (*models.Battle, error) {
	b := new(models.Battle)
	err := r.SelectOneWithTimeout(ctx, "get", "battle", id, func(ctx context.Context) error {
		return r.db.NewSelect().Model(b).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *battleRepository) GetPendingFor(ctx context.Context, userID string) (*models.Battle, error) {
	b := new(models.Battle)
	err := r.SelectOneWithTimeout(ctx, "get_pending", "battle", userID, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(b).
			Where("opponent_id = ?", userID).
			Where("status = ?", models.BattlePending).
			Where("expires_at > ?", time.Now()).
			Order("created_at DESC").
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *battleRepository) Transition(ctx context.Context, id string, from, to models.BattleStatus) (bool, error) {
	res, err := r.ExecWithTimeout(ctx, "transition", "battle", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*models.Battle)(nil)).
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

func (r *battleRepository) Start(ctx context.Context, id string, opponentDeck []string) (bool, error) {
	b := &models.Battle{
		ID:           id,
		Status:       models.BattleActive,
		OpponentDeck: opponentDeck,
		UpdatedAt:    time.Now(),
	}
	res, err := r.ExecWithTimeout(ctx, "start", "battle", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model(b).
			Column("status", "opponent_deck", "updated_at").
			WherePK().
			Where("status = ?", models.BattlePending).
			Where("expires_at > ?", b.UpdatedAt).
			Exec(ctx)
	})
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}

// ExpireDue cancels pending challenges past their window and active battles
// whose settlement never finished.
func (r *battleRepository) ExpireDue(ctx context.Context, now time.Time) ([]*models.Battle, error) {
	var expired []*models.Battle
	err := r.SelectWithTimeout(ctx, "expire", "battle", func(ctx context.Context) error {
		_, err := r.expireQuery(now).Returning("*").Exec(ctx, &expired)
		return err
	})
	return expired, err
}

func (r *battleRepository) expireQuery(now time.Time) *bun.UpdateQuery {
	return r.db.NewUpdate().
		Model((*models.Battle)(nil)).
		Set("status = ?", models.BattleCancelled).
		Set("updated_at = ?", now).
		WhereGroup(" AND ", func(q *bun.UpdateQuery) *bun.UpdateQuery {
			return q.
				WhereGroup(" OR ", func(q *bun.UpdateQuery) *bun.UpdateQuery {
					return q.Where("status = ?", models.BattlePending).Where("expires_at <= ?", now)
				}).
				WhereGroup(" OR ", func(q *bun.UpdateQuery) *bun.UpdateQuery {
					return q.Where("status = ?", models.BattleActive).Where("updated_at <= ?", now.Add(-config.StaleBattleAfter))
				})
		})
}

func (r *battleRepository) expirePairQuery(pairKey string, now time.Time) *bun.UpdateQuery {
	return r.expireQuery(now).Where("pair_key = ?", pairKey)
}
