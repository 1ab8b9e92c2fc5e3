package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
	"github.com/uptrace/bun"
)

// SpawnRepository is the Postgres spawn.Store. Activation and claiming are
// single conditional statements, so concurrent bot instances agree on one
// winner.
type SpawnRepository struct {
	*BaseRepository
}

var _ spawn.Store = (*SpawnRepository)(nil)

func NewSpawnRepository(db *bun.DB) *SpawnRepository {
	return &SpawnRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *SpawnRepository) Get(ctx context.Context, roomID string) (*models.Spawn, error) {
	s := new(models.Spawn)
	err := r.SelectOneWithTimeout(ctx, "get", "spawn", roomID, func(ctx context.Context) error {
		return r.db.NewSelect().Model(s).Where("room_id = ?", roomID).Scan(ctx)
	})
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SpawnRepository) Activate(ctx context.Context, s *models.Spawn, cooldown time.Duration) error {
	s.Status = models.SpawnActive
	s.CaughtBy = ""
	s.CaughtAt = time.Time{}

	res, err := r.ExecWithTimeout(ctx, "activate", "spawn", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(s).
			On("CONFLICT (room_id) DO UPDATE").
			Set("card_id = EXCLUDED.card_id").
			Set("status = EXCLUDED.status").
			Set("forced = EXCLUDED.forced").
			Set("spawned_at = EXCLUDED.spawned_at").
			Set("expires_at = EXCLUDED.expires_at").
			Set("caught_by = NULL").
			Set("caught_at = NULL").
			Where("NOT (sp.status = ? AND sp.expires_at > EXCLUDED.spawned_at)", models.SpawnActive).
			Where("(EXCLUDED.forced OR sp.spawned_at <= ?)", s.SpawnedAt.Add(-cooldown)).
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}

	cur, err := r.Get(ctx, s.RoomID)
	if err != nil {
		return err
	}
	if cur != nil && cur.ActiveAt(s.SpawnedAt) {
		return spawn.ErrSpawnActive
	}
	return spawn.ErrCooldown
}

func (r *SpawnRepository) Claim(ctx context.Context, roomID, cardID, userID string, now time.Time) (*models.Spawn, error) {
	var claimed []*models.Spawn
	err := r.SelectWithTimeout(ctx, "claim", "spawn", func(ctx context.Context) error {
		_, err := r.db.NewUpdate().
			Model((*models.Spawn)(nil)).
			Set("status = ?", models.SpawnCaught).
			Set("caught_by = ?", userID).
			Set("caught_at = ?", now).
			Where("room_id = ?", roomID).
			Where("card_id = ?", cardID).
			Where("status = ?", models.SpawnActive).
			Where("expires_at > ?", now).
			Returning("*").
			Exec(ctx, &claimed)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(claimed) == 0 {
		return nil, spawn.ErrNoActiveSpawn
	}
	return claimed[0], nil
}

func (r *SpawnRepository) Reopen(ctx context.Context, roomID, userID string) error {
	_, err := r.ExecWithTimeout(ctx, "reopen", "spawn", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*models.Spawn)(nil)).
			Set("status = ?", models.SpawnActive).
			Set("caught_by = NULL").
			Set("caught_at = NULL").
			Where("room_id = ?", roomID).
			Where("status = ?", models.SpawnCaught).
			Where("caught_by = ?", userID).
			Exec(ctx)
	})
	return err
}

func (r *SpawnRepository) ExpireDue(ctx context.Context, now time.Time) ([]*models.Spawn, error) {
	var expired []*models.Spawn
	err := r.SelectWithTimeout(ctx, "expire", "spawn", func(ctx context.Context) error {
		_, err := r.db.NewUpdate().
			Model((*models.Spawn)(nil)).
			Set("status = ?", models.SpawnExpired).
			Where("status = ?", models.SpawnActive).
			Where("expires_at <= ?", now).
			Returning("*").
			Exec(ctx, &expired)
		return err
	})
	return expired, err
}
