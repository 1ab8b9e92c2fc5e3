package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/uptrace/bun"
)

// Leaderboard metrics
const (
	LeaderboardCards  = "cards"
	LeaderboardBattle = "battle"
	LeaderboardCoins  = "coins"
	LeaderboardLevel  = "level"
)

type LeaderboardEntry struct {
	UserID string `bun:"user_id"`
	Name   string `bun:"name"`
	Score  int64  `bun:"score"`
}

// Totals are bot-wide counters shown by the stats view.
type Totals struct {
	Users    int   `bun:"users"`
	Commands int64 `bun:"commands"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetOrCreate(ctx context.Context, id, name string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	RecordCommand(ctx context.Context, id, name, command string) (*models.User, error)
	SetBlocked(ctx context.Context, id string, blocked bool) error
	GetBalance(ctx context.Context, id string) (int64, error)
	Leaderboard(ctx context.Context, metric string, limit int) ([]LeaderboardEntry, error)
	Totals(ctx context.Context) (*Totals, error)
	BulkInsert(ctx context.Context, users []*models.User) error
}

type userRepository struct {
	*BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user := new(models.User)
	err := r.SelectOneWithTimeout(ctx, "get", "user", id, func(ctx context.Context) error {
		return r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetOrCreate returns the account, creating an empty one on first contact.
func (r *userRepository) GetOrCreate(ctx context.Context, id, name string) (*models.User, error) {
	if err := EnsureUser(ctx, r.db, id, name); err != nil {
		return nil, r.HandleErrorWithID("create", "user", id, err)
	}
	return r.GetByID(ctx, id)
}

// EnsureUser inserts the account row if it does not exist yet.
func EnsureUser(ctx context.Context, db bun.IDB, id, name string) error {
	now := time.Now()
	_, err := db.NewInsert().
		Model(&models.User{
			ID:            id,
			Name:          name,
			CommandCounts: map[string]int64{},
			CreatedAt:     now,
			UpdatedAt:     now,
		}).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.ExecWithTimeout(ctx, "update", "user", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().Model(user).WherePK().Exec(ctx)
	})
	return err
}

// RecordCommand does the per-command bookkeeping and returns the updated
// account.
func (r *userRepository) RecordCommand(ctx context.Context, id, name, command string) (*models.User, error) {
	user := new(models.User)
	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := EnsureUser(ctx, tx, id, name); err != nil {
			return fmt.Errorf("failed to ensure user: %w", err)
		}

		if err := tx.NewSelect().Model(user).Where("id = ?", id).For("UPDATE").Scan(ctx); err != nil {
			return fmt.Errorf("failed to lock user: %w", err)
		}

		if user.CommandCounts == nil {
			user.CommandCounts = map[string]int64{}
		}
		user.CommandCounts[command]++
		user.CommandsUsed++
		user.FavoriteCommand = favorite(user.CommandCounts)
		if name != "" {
			user.Name = name
		}
		user.LastSeen = time.Now()
		user.UpdatedAt = user.LastSeen

		_, err := tx.NewUpdate().
			Model(user).
			Column("name", "commands_used", "command_counts", "favorite_command", "last_seen", "updated_at").
			WherePK().
			Exec(ctx)
		return err
	})
	if err != nil {
		slog.Error("Failed to record command",
			slog.String("type", "db"),
			slog.String("user_id", id),
			slog.String("name", command),
			slog.Any("error", err))
		return nil, r.HandleErrorWithID("record_command", "user", id, err)
	}
	return user, nil
}

// favorite picks the most used command, ties broken alphabetically.
func favorite(counts map[string]int64) string {
	var best string
	var max int64
	for cmd, n := range counts {
		if n > max || (n == max && cmd < best) {
			best, max = cmd, n
		}
	}
	return best
}

func (r *userRepository) SetBlocked(ctx context.Context, id string, blocked bool) error {
	res, err := r.ExecWithTimeout(ctx, "block", "user", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewUpdate().
			Model((*models.User)(nil)).
			Set("is_blocked = ?", blocked).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Exec(ctx)
	})
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

func (r *userRepository) GetBalance(ctx context.Context, id string) (int64, error) {
	var balance int64
	err := r.SelectOneWithTimeout(ctx, "get_balance", "user", id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model((*models.User)(nil)).
			Column("balance").
			Where("id = ?", id).
			Scan(ctx, &balance)
	})
	return balance, err
}

func (r *userRepository) Leaderboard(ctx context.Context, metric string, limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry

	q := r.db.NewSelect().
		TableExpr("users AS u").
		ColumnExpr("u.id AS user_id").
		ColumnExpr("u.name AS name").
		Where("NOT u.is_blocked").
		Limit(limit)

	switch metric {
	case LeaderboardCoins:
		q = q.ColumnExpr("u.balance AS score")
	case LeaderboardBattle:
		q = q.ColumnExpr("u.battles_won AS score")
	case LeaderboardCards:
		q = q.ColumnExpr("COUNT(uc.id) AS score").
			Join("LEFT JOIN user_cards AS uc ON uc.user_id = u.id").
			Group("u.id", "u.name")
	case LeaderboardLevel:
		q = q.ColumnExpr("COALESCE(SUM(uc.level), 0) AS score").
			Join("LEFT JOIN user_cards AS uc ON uc.user_id = u.id").
			Group("u.id", "u.name")
	default:
		return nil, fmt.Errorf("unknown leaderboard %q", metric)
	}
	q = q.OrderExpr("score DESC, u.id ASC")

	err := r.SelectWithTimeout(ctx, "leaderboard", "user", func(ctx context.Context) error {
		return q.Scan(ctx, &entries)
	})
	return entries, err
}

func (r *userRepository) Totals(ctx context.Context) (*Totals, error) {
	totals := new(Totals)
	err := r.SelectWithTimeout(ctx, "totals", "user", func(ctx context.Context) error {
		return r.db.NewSelect().
			TableExpr("users").
			ColumnExpr("COUNT(*) AS users").
			ColumnExpr("COALESCE(SUM(commands_used), 0) AS commands").
			Scan(ctx, totals)
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *userRepository) BulkInsert(ctx context.Context, users []*models.User) error {
	if len(users) == 0 {
		return nil
	}
	return r.BatchInsert(ctx, "user", &users)
}
