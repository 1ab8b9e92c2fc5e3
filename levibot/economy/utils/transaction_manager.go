package utils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/deck"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserNotFound        = errors.New("user not found")
	ErrCardNotOwned        = errors.New("card is not owned by the user")
)

// TransactionOptions configures transaction behavior
type TransactionOptions struct {
	IsolationLevel sql.IsolationLevel
	Timeout        time.Duration
}

// EconomicTransactionManager provides standardized transaction utilities for economic operations
type EconomicTransactionManager struct {
	db *bun.DB
}

// NewEconomicTransactionManager creates a new transaction manager
func NewEconomicTransactionManager(db *bun.DB) *EconomicTransactionManager {
	return &EconomicTransactionManager{db: db}
}

// StandardTransactionOptions returns default transaction options
func StandardTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelReadCommitted,
		Timeout:        DefaultTxTimeout,
	}
}

// SerializableTransactionOptions returns serializable isolation level options for critical operations
func SerializableTransactionOptions() *TransactionOptions {
	return &TransactionOptions{
		IsolationLevel: sql.LevelSerializable,
		Timeout:        DefaultTxTimeout,
	}
}

// WithTransaction executes a function within a database transaction.
// Serialization failures are retried with a fresh transaction.
func (etm *EconomicTransactionManager) WithTransaction(ctx context.Context, opts *TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	if opts == nil {
		opts = StandardTransactionOptions()
	}

	var err error
	for attempt := 1; attempt <= MaxTxRetries; attempt++ {
		err = etm.runOnce(ctx, opts, fn)
		if !IsSerializationFailure(err) {
			return err
		}

		slog.Warn("Retrying transaction after serialization failure",
			slog.String("type", "db"),
			slog.Int("attempt", attempt))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * RetryBackoff):
		}
	}
	return err
}

func (etm *EconomicTransactionManager) runOnce(ctx context.Context, opts *TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	// Create timeout context
	timeoutCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	tx, err := etm.db.BeginTx(timeoutCtx, &sql.TxOptions{
		Isolation: opts.IsolationLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(timeoutCtx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IsSerializationFailure reports SQLSTATE 40001 anywhere in the chain.
func IsSerializationFailure(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "40001"
	}
	return false
}

// BalanceOperationOptions configures balance operations
type BalanceOperationOptions struct {
	UserID         string
	Amount         int64
	MinimumBalance int64 // Validation threshold
}

// LockBalance reads the balance with the user row locked until the
// transaction ends.
func (etm *EconomicTransactionManager) LockBalance(ctx context.Context, tx bun.Tx, userID string) (int64, error) {
	var user models.User
	err := tx.NewSelect().
		Model(&user).
		Column("balance").
		Where("id = ?", userID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return 0, fmt.Errorf("failed to get user balance: %w", err)
	}
	return user.Balance, nil
}

// ValidateAndUpdateBalance validates user balance and updates it
func (etm *EconomicTransactionManager) ValidateAndUpdateBalance(ctx context.Context, tx bun.Tx, opts BalanceOperationOptions) error {
	balance, err := etm.LockBalance(ctx, tx, opts.UserID)
	if err != nil {
		return err
	}

	// Deductions must be covered by the locked balance
	if opts.Amount < 0 && balance < -opts.Amount {
		return fmt.Errorf("%w (has %d, needs %d)", ErrInsufficientBalance, balance, -opts.Amount)
	}

	if opts.MinimumBalance > 0 && balance+opts.Amount < opts.MinimumBalance {
		return fmt.Errorf("operation would violate minimum balance constraint")
	}

	result, err := tx.NewUpdate().
		Model((*models.User)(nil)).
		Set("balance = balance + ?", opts.Amount).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", opts.UserID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("%w when updating balance", ErrUserNotFound)
	}

	return nil
}

// TransferBalance transfers balance from one user to another
func (etm *EconomicTransactionManager) TransferBalance(ctx context.Context, tx bun.Tx, fromUserID, toUserID string, amount int64) error {
	if err := etm.ValidateAndUpdateBalance(ctx, tx, BalanceOperationOptions{
		UserID: fromUserID,
		Amount: -amount,
	}); err != nil {
		return fmt.Errorf("failed to deduct from source: %w", err)
	}

	if err := etm.ValidateAndUpdateBalance(ctx, tx, BalanceOperationOptions{
		UserID: toUserID,
		Amount: amount,
	}); err != nil {
		return fmt.Errorf("failed to add to destination: %w", err)
	}

	return nil
}

// GrantCard creates a fresh owned copy of cardID for userID.
func (etm *EconomicTransactionManager) GrantCard(ctx context.Context, tx bun.Tx, userID, cardID string) (*models.UserCard, error) {
	now := time.Now()
	uc := &models.UserCard{
		ID:         uuid.NewString(),
		UserID:     userID,
		CardID:     cardID,
		Level:      MinCardLevel,
		Exp:        StarterExp,
		ObtainedAt: now,
		UpdatedAt:  now,
	}
	if _, err := tx.NewInsert().Model(uc).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to add new card: %w", err)
	}
	return uc, nil
}

// LockOwnedCard locks the card row and checks who owns it.
func (etm *EconomicTransactionManager) LockOwnedCard(ctx context.Context, tx bun.Tx, userCardID, userID string) (*models.UserCard, error) {
	uc := new(models.UserCard)
	err := tx.NewSelect().
		Model(uc).
		Where("id = ?", userCardID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrCardNotOwned, userCardID)
		}
		return nil, fmt.Errorf("failed to get user card: %w", err)
	}
	if uc.UserID != userID {
		return nil, fmt.Errorf("%w: %s", ErrCardNotOwned, userCardID)
	}
	return uc, nil
}

// TransferCard moves an owned card to another user. The card leaves the old
// owner's deck, which is compacted.
func (etm *EconomicTransactionManager) TransferCard(ctx context.Context, tx bun.Tx, userCardID, fromUserID, toUserID string) error {
	uc, err := etm.LockOwnedCard(ctx, tx, userCardID, fromUserID)
	if err != nil {
		return err
	}

	_, err = tx.NewUpdate().
		Model((*models.UserCard)(nil)).
		Set("user_id = ?", toUserID).
		Set("in_deck = FALSE").
		Set("deck_position = NULL").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userCardID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to transfer card: %w", err)
	}

	if uc.InDeck {
		return etm.CompactDeck(ctx, tx, fromUserID)
	}
	return nil
}

// LockDeck returns the user's deck slots with their rows locked.
func (etm *EconomicTransactionManager) LockDeck(ctx context.Context, tx bun.Tx, userID string) ([]deck.Slot, error) {
	var cards []models.UserCard
	err := tx.NewSelect().
		Model(&cards).
		Column("id", "deck_position").
		Where("user_id = ? AND in_deck", userID).
		Order("deck_position ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock deck: %w", err)
	}

	slots := make([]deck.Slot, 0, len(cards))
	for _, c := range cards {
		pos := 0
		if c.DeckPosition != nil {
			pos = *c.DeckPosition
		}
		slots = append(slots, deck.Slot{UserCardID: c.ID, Position: pos})
	}
	return slots, nil
}

// WriteDeckSlots stores the given slot positions. Slots must be ordered by
// ascending target position so that each target is already free under the
// (user_id, deck_position) unique index.
func (etm *EconomicTransactionManager) WriteDeckSlots(ctx context.Context, tx bun.Tx, slots []deck.Slot) error {
	for _, s := range slots {
		_, err := tx.NewUpdate().
			Model((*models.UserCard)(nil)).
			Set("in_deck = TRUE").
			Set("deck_position = ?", s.Position).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", s.UserCardID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to move deck slot: %w", err)
		}
	}
	return nil
}

// ClearDeckSlots takes cards out of the user's deck. With no ids the whole
// deck is cleared. It returns how many cards left the deck.
func (etm *EconomicTransactionManager) ClearDeckSlots(ctx context.Context, tx bun.Tx, userID string, ids ...string) (int, error) {
	q := tx.NewUpdate().
		Model((*models.UserCard)(nil)).
		Set("in_deck = FALSE").
		Set("deck_position = NULL").
		Set("updated_at = ?", time.Now()).
		Where("user_id = ? AND in_deck", userID)
	if len(ids) > 0 {
		q = q.Where("id IN (?)", bun.In(ids))
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear deck: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// CompactDeck renumbers the user's deck to 0..n-1.
func (etm *EconomicTransactionManager) CompactDeck(ctx context.Context, tx bun.Tx, userID string) error {
	slots, err := etm.LockDeck(ctx, tx, userID)
	if err != nil {
		return err
	}

	var changed []deck.Slot
	for i, s := range deck.Compact(slots) {
		if s.Position != slots[i].Position {
			changed = append(changed, s)
		}
	}
	return etm.WriteDeckSlots(ctx, tx, changed)
}
