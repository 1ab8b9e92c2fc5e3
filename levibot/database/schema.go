package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
)

// tables in creation order; ResetAppTables walks it backwards.
var tables = []any{
	(*models.Card)(nil),
	(*models.User)(nil),
	(*models.UserCard)(nil),
	(*models.Spawn)(nil),
	(*models.Battle)(nil),
	(*models.Trade)(nil),
}

var tableNames = []string{"cards", "users", "user_cards", "spawns", "battles", "trades"}

// columnUpgrades add columns to tables created before they existed.
var columnUpgrades = []string{
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS command_counts JSONB`,
	`ALTER TABLE users ADD COLUMN IF NOT EXISTS cleaning_skill BIGINT NOT NULL DEFAULT 0`,
	`ALTER TABLE user_cards ADD COLUMN IF NOT EXISTS favorite BOOLEAN NOT NULL DEFAULT false`,
	`ALTER TABLE spawns ADD COLUMN IF NOT EXISTS forced BOOLEAN NOT NULL DEFAULT false`,
	`UPDATE users SET command_counts = '{}'::jsonb WHERE command_counts IS NULL`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_cards_rarity ON cards(rarity)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_anime_rarity ON cards(LOWER(anime), rarity)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(LOWER(name))`,
	`CREATE INDEX IF NOT EXISTS idx_user_cards_user_id ON user_cards(user_id)`,
	// at most one card per deck slot
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_cards_deck_slot ON user_cards(user_id, deck_position) WHERE in_deck`,
	`CREATE INDEX IF NOT EXISTS idx_spawns_active ON spawns(expires_at) WHERE status = 'active'`,
	// one open battle and one pending trade per pair
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_battles_open_pair ON battles(pair_key) WHERE status IN ('pending', 'active')`,
	`CREATE INDEX IF NOT EXISTS idx_battles_opponent_pending ON battles(opponent_id, created_at DESC) WHERE status = 'pending'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_trades_pending_pair ON trades(pair_key) WHERE status = 'pending'`,
	`CREATE INDEX IF NOT EXISTS idx_trades_initiator_pending ON trades(initiator_id) WHERE status = 'pending'`,
	`CREATE INDEX IF NOT EXISTS idx_trades_counterpart_pending ON trades(counterpart_id) WHERE status = 'pending'`,
}

// InitializeSchema creates missing tables, applies column upgrades and
// builds the indexes. Every step is idempotent.
func (db *DB) InitializeSchema(ctx context.Context) error {
	if err := db.checkEncoding(ctx); err != nil {
		return err
	}

	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	for _, stmt := range columnUpgrades {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to upgrade schema: %w", err)
		}
	}
	for _, stmt := range indexes {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	slog.Info("Schema ready", slog.String("type", "db"), slog.Int("tables", len(tables)))
	return nil
}

// ResetAppTables empties every table the bot owns.
func (db *DB) ResetAppTables(ctx context.Context) error {
	rows, err := db.Query(ctx, `SELECT table_name FROM information_schema.tables WHERE table_schema = current_schema()`)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	present, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("failed to read tables: %w", err)
	}

	quoted := resetOrder(tableNames, present)
	if len(quoted) == 0 {
		slog.Warn("No tables to reset", slog.String("type", "db"))
		return nil
	}

	if _, err = db.Exec(ctx, "TRUNCATE TABLE "+strings.Join(quoted, ", ")+" CASCADE"); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	slog.Info("Tables reset", slog.String("type", "db"), slog.Int("tables", len(quoted)))
	return nil
}

// resetOrder returns the quoted names of the owned tables that exist,
// dependents first.
func resetOrder(owned, present []string) []string {
	exists := make(map[string]bool, len(present))
	for _, name := range present {
		exists[name] = true
	}

	var out []string
	for i := len(owned) - 1; i >= 0; i-- {
		if exists[owned[i]] {
			out = append(out, pgx.Identifier{owned[i]}.Sanitize())
		}
	}
	return out
}

func (db *DB) checkEncoding(ctx context.Context) error {
	var encoding string
	if err := db.pool.QueryRow(ctx, `SHOW server_encoding`).Scan(&encoding); err != nil {
		return fmt.Errorf("failed to read server encoding: %w", err)
	}
	if encoding != "UTF8" {
		slog.Warn("Database is not UTF8, card names may be mangled",
			slog.String("type", "db"),
			slog.String("encoding", encoding))
	}
	return nil
}
