package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/uptrace/bun"
)

type UserCardRepository interface {
	Create(ctx context.Context, userCard *models.UserCard) error
	GetByID(ctx context.Context, id string) (*models.UserCard, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.UserCard, error)
	GetAllByUserID(ctx context.Context, userID string) ([]*models.UserCard, error)
	GetDeck(ctx context.Context, userID string) ([]*models.UserCard, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	BulkInsert(ctx context.Context, cards []*models.UserCard) error
}

type userCardRepository struct {
	*BaseRepository
}

func NewUserCardRepository(db *bun.DB) UserCardRepository {
	return &userCardRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userCardRepository) Create(ctx context.Context, userCard *models.UserCard) error {
	userCard.ObtainedAt = time.Now()
	userCard.UpdatedAt = time.Now()
	_, err := r.ExecWithTimeout(ctx, "create", "user_card", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().Model(userCard).Exec(ctx)
	})
	return err
}

func (r *userCardRepository) GetByID(ctx context.Context, id string) (*models.UserCard, error) {
	userCard := new(models.UserCard)
	err := r.SelectOneWithTimeout(ctx, "get", "user_card", id, func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(userCard).
			Relation("Card").
			Where("uc.id = ?", id).
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return userCard, nil
}

func (r *userCardRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.UserCard, error) {
	var userCards []*models.UserCard
	if len(ids) == 0 {
		return userCards, nil
	}
	err := r.SelectWithTimeout(ctx, "get_many", "user_card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&userCards).
			Relation("Card").
			Where("uc.id IN (?)", bun.In(ids)).
			Scan(ctx)
	})
	return userCards, err
}

// GetAllByUserID lists a collection, deck cards first, then newest first.
func (r *userCardRepository) GetAllByUserID(ctx context.Context, userID string) ([]*models.UserCard, error) {
	var userCards []*models.UserCard
	err := r.SelectWithTimeout(ctx, "get_all", "user_card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&userCards).
			Relation("Card").
			Where("uc.user_id = ?", userID).
			OrderExpr("uc.in_deck DESC, uc.deck_position ASC NULLS LAST, uc.obtained_at DESC").
			Scan(ctx)
	})
	return userCards, err
}

func (r *userCardRepository) GetDeck(ctx context.Context, userID string) ([]*models.UserCard, error) {
	var userCards []*models.UserCard
	err := r.SelectWithTimeout(ctx, "get_deck", "user_card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&userCards).
			Relation("Card").
			Where("uc.user_id = ? AND uc.in_deck", userID).
			Order("uc.deck_position ASC").
			Scan(ctx)
	})
	return userCards, err
}

func (r *userCardRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.SelectWithTimeout(ctx, "count", "user_card", func(ctx context.Context) error {
		var err error
		n, err = r.db.NewSelect().
			Model((*models.UserCard)(nil)).
			Where("user_id = ?", userID).
			Count(ctx)
		return err
	})
	return n, err
}

func (r *userCardRepository) BulkInsert(ctx context.Context, cards []*models.UserCard) error {
	if len(cards) == 0 {
		return nil
	}
	return r.BatchInsert(ctx, "user_card", &cards)
}
