package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/uptrace/bun"
)

type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	BulkUpsert(ctx context.Context, cards []*models.Card) (int, error)
	GetByID(ctx context.Context, id string) (*models.Card, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Card, error)
	GetAll(ctx context.Context) ([]*models.Card, error)
	GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error)
	GetByAnimeAndRarity(ctx context.Context, anime, rarity string) ([]*models.Card, error)
	SearchByName(ctx context.Context, query string, limit int) ([]*models.Card, error)
	// Animes lists the distinct series tags in the catalog.
	Animes(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

type cardRepository struct {
	*BaseRepository
}

func NewCardRepository(db *bun.DB) CardRepository {
	return &cardRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	card.CreatedAt = time.Now()
	card.UpdatedAt = time.Now()

	_, err := r.ExecWithTimeout(ctx, "create", "card", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().Model(card).Exec(ctx)
	})
	return err
}

// BulkUpsert inserts the catalog, updating existing rows by id.
func (r *cardRepository) BulkUpsert(ctx context.Context, cards []*models.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	now := time.Now()
	for _, c := range cards {
		c.ID = strings.ToLower(strings.TrimSpace(c.ID))
		c.CreatedAt = now
		c.UpdatedAt = now
	}

	res, err := r.ExecWithTimeout(ctx, "bulk_upsert", "card", func(ctx context.Context) (sql.Result, error) {
		return r.db.NewInsert().
			Model(&cards).
			On("CONFLICT (id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("anime = EXCLUDED.anime").
			Set("image_url = EXCLUDED.image_url").
			Set("rarity = EXCLUDED.rarity").
			Set("type = EXCLUDED.type").
			Set("attack = EXCLUDED.attack").
			Set("defense = EXCLUDED.defense").
			Set("speed = EXCLUDED.speed").
			Set("ability = EXCLUDED.ability").
			Set("spawn_rate = EXCLUDED.spawn_rate").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
	})
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *cardRepository) GetByID(ctx context.Context, id string) (*models.Card, error) {
	card := new(models.Card)
	err := r.SelectOneWithTimeout(ctx, "get", "card", id, func(ctx context.Context) error {
		return r.db.NewSelect().Model(card).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (r *cardRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Card, error) {
	var cards []*models.Card
	if len(ids) == 0 {
		return cards, nil
	}
	err := r.SelectWithTimeout(ctx, "get_many", "card", func(ctx context.Context) error {
		return r.db.NewSelect().Model(&cards).Where("id IN (?)", bun.In(ids)).Scan(ctx)
	})
	return cards, err
}

func (r *cardRepository) GetAll(ctx context.Context) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.SelectWithTimeout(ctx, "get_all", "card", func(ctx context.Context) error {
		return r.db.NewSelect().Model(&cards).Order("id ASC").Scan(ctx)
	})
	return cards, err
}

func (r *cardRepository) GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.SelectWithTimeout(ctx, "get_by_rarity", "card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Where("rarity = ?", rarity).
			Order("id ASC").
			Scan(ctx)
	})
	return cards, err
}

func (r *cardRepository) GetByAnimeAndRarity(ctx context.Context, anime, rarity string) ([]*models.Card, error) {
	var cards []*models.Card
	err := r.SelectWithTimeout(ctx, "get_by_anime", "card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Where("LOWER(anime) = LOWER(?)", anime).
			Where("rarity = ?", rarity).
			Order("id ASC").
			Scan(ctx)
	})
	return cards, err
}

func (r *cardRepository) SearchByName(ctx context.Context, query string, limit int) ([]*models.Card, error) {
	var cards []*models.Card
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := r.SelectWithTimeout(ctx, "search", "card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&cards).
			Where("LOWER(name) LIKE ?", pattern).
			OrderExpr("LENGTH(name) ASC").
			Limit(limit).
			Scan(ctx)
	})
	return cards, err
}

func (r *cardRepository) Animes(ctx context.Context) ([]string, error) {
	var animes []string
	err := r.SelectWithTimeout(ctx, "animes", "card", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model((*models.Card)(nil)).
			ColumnExpr("DISTINCT anime").
			Where("anime <> ''").
			OrderExpr("anime ASC").
			Scan(ctx, &animes)
	})
	return animes, err
}

func (r *cardRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.SelectWithTimeout(ctx, "count", "card", func(ctx context.Context) error {
		var err error
		n, err = r.db.NewSelect().Model((*models.Card)(nil)).Count(ctx)
		return err
	})
	return n, err
}
