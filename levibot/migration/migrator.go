package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
)

const DefaultBatchSize = 500

// Migrator copies the legacy Mongo collections into Postgres. Every write is
// an upsert or an insert that ignores conflicts, so a run can be repeated.
type Migrator struct {
	source    Source
	cards     repositories.CardRepository
	users     repositories.UserRepository
	userCards repositories.UserCardRepository
	batchSize int
}

func NewMigrator(source Source, cards repositories.CardRepository, users repositories.UserRepository, userCards repositories.UserCardRepository) *Migrator {
	return &Migrator{
		source:    source,
		cards:     cards,
		users:     users,
		userCards: userCards,
		batchSize: DefaultBatchSize,
	}
}

func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// Run imports cards first so user cards can be checked against them.
func (m *Migrator) Run(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	start := time.Now()

	if err := m.importCards(ctx, stats); err != nil {
		return stats, err
	}
	if err := m.importUsers(ctx, stats); err != nil {
		return stats, err
	}

	known, err := m.knownCards(ctx)
	if err != nil {
		return stats, err
	}
	if err = m.importUserCards(ctx, stats, known); err != nil {
		return stats, err
	}

	for name, t := range stats.Tables {
		slog.Info("Table migrated",
			slog.String("type", "db"),
			slog.String("table", name),
			slog.Int("read", t.Read),
			slog.Int("written", t.Written),
			slog.Int("skipped", t.Skipped),
			slog.Duration("took", t.Duration))
	}
	slog.Info("Migration finished",
		slog.String("type", "db"),
		slog.Duration("took", time.Since(start)))
	return stats, nil
}

func (m *Migrator) importCards(ctx context.Context, stats *Stats) error {
	return migrate(ctx, m, stats.table("cards"), "cards", toCard, func(ctx context.Context, batch []*models.Card) error {
		_, err := m.cards.BulkUpsert(ctx, batch)
		return err
	})
}

func (m *Migrator) importUsers(ctx context.Context, stats *Stats) error {
	return migrate(ctx, m, stats.table("users"), "users", toUser, m.users.BulkInsert)
}

func (m *Migrator) importUserCards(ctx context.Context, stats *Stats, known map[string]bool) error {
	convert := func(luc *LegacyUserCard) (*models.UserCard, error) {
		return toUserCard(luc, known)
	}
	return migrate(ctx, m, stats.table("usercards"), "usercards", convert, m.userCards.BulkInsert)
}

func (m *Migrator) knownCards(ctx context.Context) (map[string]bool, error) {
	cards, err := m.cards.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}
	known := make(map[string]bool, len(cards))
	for _, c := range cards {
		known[c.ID] = true
	}
	return known, nil
}

// migrate decodes every document of a collection, converts it and flushes in
// batches. Documents that fail to decode or convert are logged and skipped.
func migrate[L any, T any](
	ctx context.Context,
	m *Migrator,
	ts *TableStats,
	collection string,
	convert func(*L) (*T, error),
	flush func(context.Context, []*T) error,
) error {
	start := time.Now()
	defer func() { ts.Duration = time.Since(start) }()

	batch := make([]*T, 0, m.batchSize)
	write := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := flush(ctx, batch); err != nil {
			return fmt.Errorf("failed to write %s: %w", collection, err)
		}
		ts.Written += len(batch)
		batch = batch[:0]
		return nil
	}

	err := m.source.Each(ctx, collection, func(raw bson.Raw) error {
		ts.Read++

		var legacy L
		if err := bson.Unmarshal(raw, &legacy); err != nil {
			ts.Skipped++
			slog.Warn("Skipping undecodable document",
				slog.String("type", "db"),
				slog.String("collection", collection),
				slog.Any("error", err))
			return nil
		}
		row, err := convert(&legacy)
		if err != nil {
			ts.Skipped++
			slog.Warn("Skipping document",
				slog.String("type", "db"),
				slog.String("collection", collection),
				slog.Any("error", err))
			return nil
		}

		batch = append(batch, row)
		if len(batch) >= m.batchSize {
			return write()
		}
		return nil
	})
	if err != nil {
		return err
	}
	return write()
}

// LoadCardsJSON reads a catalog file: a JSON array of cards.
func LoadCardsJSON(r io.Reader) ([]*models.Card, error) {
	var cards []*models.Card
	if err := json.NewDecoder(r).Decode(&cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}

	seen := make(map[string]bool, len(cards))
	for i, c := range cards {
		c.ID = strings.ToLower(strings.TrimSpace(c.ID))
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("card %d: id and name are required", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("card %s: duplicate id", c.ID)
		}
		seen[c.ID] = true

		normalized, err := toCard(&LegacyCard{
			CardID:    c.ID,
			Name:      c.Name,
			Anime:     c.Anime,
			ImageURL:  c.ImageURL,
			Rarity:    c.Rarity,
			Type:      c.Type,
			Stats:     legacyStats(c),
			Ability:   legacyAbility(c.Ability),
			SpawnRate: spawnRate(c.SpawnRate),
		})
		if err != nil {
			return nil, err
		}
		cards[i] = normalized
	}
	return cards, nil
}

// Seed upserts the catalog file at path.
func Seed(ctx context.Context, cards repositories.CardRepository, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()

	parsed, err := LoadCardsJSON(file)
	if err != nil {
		return 0, err
	}
	n, err := cards.BulkUpsert(ctx, parsed)
	if err != nil {
		return 0, err
	}
	slog.Info("Catalog seeded",
		slog.String("type", "db"),
		slog.String("path", path),
		slog.Int("cards", n))
	return n, nil
}

// legacyStats leaves cards without any stats on the defaults.
func legacyStats(c *models.Card) *LegacyStats {
	if c.Attack == 0 && c.Defense == 0 && c.Speed == 0 {
		return nil
	}
	return &LegacyStats{Attack: float64(c.Attack), Defense: float64(c.Defense), Speed: float64(c.Speed)}
}

func legacyAbility(a *models.CardAbility) *LegacyAbility {
	if a == nil {
		return nil
	}
	return &LegacyAbility{Name: a.Name, Description: a.Description, Effect: a.Effect}
}

func spawnRate(rate int) *float64 {
	if rate <= 0 {
		return nil
	}
	v := float64(rate)
	return &v
}
