package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/singleflight"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

var ErrCardNotFound = errors.New("card not found")

type tierEntry struct {
	cards  []*models.Card
	loaded time.Time
}

// Catalog is the read side of the card table. Cards never change at runtime,
// so single cards stay cached until evicted; tier lists are refreshed after
// config.CacheExpiration so newly seeded cards show up.
type Catalog struct {
	repo  repositories.CardRepository
	cards *lru.Cache
	group singleflight.Group
	ttl   time.Duration
	now   func() time.Time

	mu    sync.RWMutex
	tiers map[string]tierEntry
}

var _ spawn.Catalog = (*Catalog)(nil)

func NewCatalog(repo repositories.CardRepository, size int) *Catalog {
	if size <= 0 {
		size = config.CacheSize
	}
	cache, _ := lru.New(size)
	return &Catalog{
		repo:  repo,
		cards: cache,
		ttl:   config.CacheExpiration,
		now:   time.Now,
		tiers: make(map[string]tierEntry),
	}
}

func (c *Catalog) Get(ctx context.Context, id string) (*models.Card, error) {
	if v, ok := c.cards.Get(id); ok {
		return v.(*models.Card), nil
	}

	v, err, _ := c.group.Do("card:"+id, func() (interface{}, error) {
		card, err := c.repo.GetByID(ctx, id)
		if err != nil {
			if repositories.IsNotFound(err) {
				return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
			}
			return nil, err
		}
		c.cards.Add(id, card)
		return card, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Card), nil
}

// GetMany resolves ids in one query for the misses. Unknown ids are left out
// of the result.
func (c *Catalog) GetMany(ctx context.Context, ids []string) (map[string]*models.Card, error) {
	out := make(map[string]*models.Card, len(ids))
	var missing []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if v, ok := c.cards.Get(id); ok {
			out[id] = v.(*models.Card)
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	cards, err := c.repo.GetByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}
	for _, card := range cards {
		c.cards.Add(card.ID, card)
		out[card.ID] = card
	}
	return out, nil
}

func (c *Catalog) ByTier(ctx context.Context, tier rarity.Tier) ([]*models.Card, error) {
	return c.list(ctx, "tier:"+tier.String(), func(ctx context.Context) ([]*models.Card, error) {
		return c.repo.GetByRarity(ctx, tier.String())
	})
}

func (c *Catalog) ByAnimeTier(ctx context.Context, anime string, tier rarity.Tier) ([]*models.Card, error) {
	key := "anime:" + strings.ToLower(anime) + ":" + tier.String()
	return c.list(ctx, key, func(ctx context.Context) ([]*models.Card, error) {
		return c.repo.GetByAnimeAndRarity(ctx, anime, tier.String())
	})
}

func (c *Catalog) Animes(ctx context.Context) ([]string, error) {
	v, err, _ := c.group.Do("animes", func() (interface{}, error) {
		return c.repo.Animes(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (c *Catalog) list(ctx context.Context, key string, load func(context.Context) ([]*models.Card, error)) ([]*models.Card, error) {
	c.mu.RLock()
	entry, ok := c.tiers[key]
	c.mu.RUnlock()
	if ok && c.now().Sub(entry.loaded) < c.ttl {
		return entry.cards, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		cards, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.tiers[key] = tierEntry{cards: cards, loaded: c.now()}
		c.mu.Unlock()
		for _, card := range cards {
			c.cards.Add(card.ID, card)
		}
		return cards, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*models.Card), nil
}

// FindByName prefers an exact (case-insensitive) name, then the closest fuzzy
// match among the substring hits.
func (c *Catalog) FindByName(ctx context.Context, name string) (*models.Card, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCardNotFound
	}

	candidates, err := c.repo.SearchByName(ctx, name, 25)
	if err != nil {
		return nil, fmt.Errorf("failed to search cards: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, name)
	}

	for _, card := range candidates {
		if strings.EqualFold(card.Name, name) {
			return card, nil
		}
	}

	matches := fuzzy.FindFrom(strings.ToLower(name), cardNames(candidates))
	if len(matches) > 0 {
		return candidates[matches[0].Index], nil
	}
	return candidates[0], nil
}

// Purge drops everything cached, e.g. after a reseed.
func (c *Catalog) Purge() {
	c.cards.Purge()
	c.mu.Lock()
	c.tiers = make(map[string]tierEntry)
	c.mu.Unlock()
}

// cardNames implements fuzzy.Source over card names.
type cardNames []*models.Card

func (n cardNames) Len() int {
	return len(n)
}

func (n cardNames) String(i int) string {
	return strings.ToLower(n[i].Name)
}
