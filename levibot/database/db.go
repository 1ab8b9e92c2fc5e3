// Package database owns the Postgres connections: a pgx pool for raw
// statements and a bun handle for the repositories.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
	pingTimeout     = 5 * time.Second
)

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	PoolSize int
	// SSLMode defaults to "disable".
	SSLMode string
}

// DSN renders the config as a postgres:// URL.
func (c DBConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {sslMode}, "connect_timeout": {"5"}}.Encode(),
	}
	return u.String()
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

// New opens both handles and waits until the server answers, retrying while
// it is still starting up.
func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolCfg.MaxConns = int32(cfg.PoolSize)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN())))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}
	db := &DB{pool: pool, bunDB: bun.NewDB(sqldb, pgdialect.New())}

	for attempt := 1; ; attempt++ {
		err = db.Ping(ctx)
		if err == nil {
			return db, nil
		}
		if attempt == connectAttempts {
			db.Close()
			return nil, fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
		}
		slog.Warn("Database not reachable yet",
			slog.String("type", "db"),
			slog.Int("attempt", attempt),
			slog.Any("error", err))

		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(connectBackoff):
		}
	}
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool ping: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	if db.bunDB != nil {
		_ = db.bunDB.Close()
	}
	if db.pool != nil {
		db.pool.Close()
	}
}

// Exec runs a raw statement on the pool and logs it at debug level.
func (db *DB) Exec(ctx context.Context, stmt string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := db.pool.Exec(ctx, stmt, args...)
	logStatement("exec", stmt, time.Since(start), err)
	return tag, err
}

func (db *DB) Query(ctx context.Context, stmt string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, stmt, args...)
	logStatement("query", stmt, time.Since(start), err)
	return rows, err
}

func logStatement(op, stmt string, took time.Duration, err error) {
	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", op),
			slog.String("query", stmt),
			slog.Duration("took", took),
			slog.Any("error", err))
		return
	}
	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", op),
		slog.String("query", stmt),
		slog.Duration("took", took))
}
