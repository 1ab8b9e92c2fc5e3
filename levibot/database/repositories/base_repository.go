package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ellavondegurechaff/levibot/levibot/config"
)

// ErrAlreadyPending is returned when a pair already has an open battle or
// trade.
var ErrAlreadyPending = errors.New("an open session already exists for this pair")

// pgUniqueViolation is the SQLSTATE of a unique index conflict.
const pgUniqueViolation = "23505"

// BaseRepository bounds every query with a timeout and maps driver errors
// onto the error types below.
type BaseRepository struct {
	db      *bun.DB
	timeout time.Duration
}

func NewBaseRepository(db *bun.DB) *BaseRepository {
	return &BaseRepository{db: db, timeout: config.DefaultQueryTimeout}
}

type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Entity, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// ConflictError is a unique index hit on one of the open session indexes.
type ConflictError struct {
	Entity string
	Field  string
	Value  any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %v already exists", e.Entity, e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error {
	return ErrAlreadyPending
}

func (br *BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, br.timeout)
}

func (br *BaseRepository) HandleError(operation, entity string, err error) error {
	return br.HandleErrorWithID(operation, entity, nil, err)
}

// HandleErrorWithID turns sql.ErrNoRows into a NotFoundError for id and wraps
// everything else.
func (br *BaseRepository) HandleErrorWithID(operation, entity string, id any, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		if id == nil {
			id = "?"
		}
		return &NotFoundError{Entity: entity, ID: id}
	default:
		return &RepositoryError{Operation: operation, Entity: entity, Err: err}
	}
}

func (br *BaseRepository) ExecWithTimeout(ctx context.Context, operation, entity string, query func(context.Context) (sql.Result, error)) (sql.Result, error) {
	ctx, cancel := br.WithTimeout(ctx)
	defer cancel()

	res, err := query(ctx)
	return res, br.HandleError(operation, entity, err)
}

func (br *BaseRepository) SelectWithTimeout(ctx context.Context, operation, entity string, query func(context.Context) error) error {
	return br.SelectOneWithTimeout(ctx, operation, entity, nil, query)
}

func (br *BaseRepository) SelectOneWithTimeout(ctx context.Context, operation, entity string, id any, query func(context.Context) error) error {
	ctx, cancel := br.WithTimeout(ctx)
	defer cancel()

	return br.HandleErrorWithID(operation, entity, id, query(ctx))
}

// Transaction runs fn in a read committed transaction under the query
// timeout.
func (br *BaseRepository) Transaction(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
	ctx, cancel := br.WithTimeout(ctx)
	defer cancel()

	return br.db.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// BatchInsert inserts items, a pointer to a slice of models, leaving rows
// whose key already exists untouched.
func (br *BaseRepository) BatchInsert(ctx context.Context, entity string, items any) error {
	ctx, cancel := context.WithTimeout(ctx, config.BatchQueryTimeout)
	defer cancel()

	_, err := br.db.NewInsert().Model(items).On("CONFLICT DO NOTHING").Exec(ctx)
	return br.HandleError("batch_insert", entity, err)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation
}

// PairKey is the order-independent key of two users.
func PairKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, ":")
}
