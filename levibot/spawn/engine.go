// Package spawn runs the per-room wild card state machine: idle rooms roll
// for a spawn on activity, active rooms wait for a catch or the window to
// elapse.
package spawn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
)

var ErrWrongGuess = errors.New("that is not the name of the spawned card")

type Catalog interface {
	Get(ctx context.Context, id string) (*models.Card, error)
	ByTier(ctx context.Context, tier rarity.Tier) ([]*models.Card, error)
}

// Collector hands a caught card to its new owner together with the reward.
type Collector interface {
	GrantCatch(ctx context.Context, userID, userName string, card *models.Card, reward int64) (*models.UserCard, error)
}

type Config struct {
	Chance      float64
	Cooldown    time.Duration
	CatchWindow time.Duration
}

type Engine struct {
	store     Store
	catalog   Catalog
	collector Collector
	rng       game.Rand
	cfg       Config
	now       func() time.Time
}

func NewEngine(store Store, catalog Catalog, collector Collector, rng game.Rand, cfg Config) *Engine {
	return &Engine{
		store:     store,
		catalog:   catalog,
		collector: collector,
		rng:       rng,
		cfg:       cfg,
		now:       time.Now,
	}
}

type Spawned struct {
	Spawn *models.Spawn
	Card  *models.Card
}

type Caught struct {
	Card     *models.Card
	UserCard *models.UserCard
	Reward   int64
}

// OnMessage is called for every group message. It returns nil when no card
// appeared.
func (e *Engine) OnMessage(ctx context.Context, roomID string) (*Spawned, error) {
	now := e.now()

	cur, err := e.store.Get(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load spawn state: %w", err)
	}
	if cur != nil {
		if cur.ActiveAt(now) || now.Sub(cur.SpawnedAt) < e.cfg.Cooldown {
			return nil, nil
		}
	}

	if e.rng.Float64() > e.cfg.Chance {
		return nil, nil
	}

	card, err := e.randomCard(ctx)
	if err != nil || card == nil {
		return nil, err
	}

	spawned, err := e.activate(ctx, roomID, card, false, now)
	if errors.Is(err, ErrSpawnActive) || errors.Is(err, ErrCooldown) {
		return nil, nil
	}
	return spawned, err
}

// Force spawns card, or a random one when card is nil, ignoring the cooldown
// and the roll. An active spawn still blocks it.
func (e *Engine) Force(ctx context.Context, roomID string, card *models.Card) (*Spawned, error) {
	if card == nil {
		var err error
		if card, err = e.randomCard(ctx); err != nil {
			return nil, err
		}
		if card == nil {
			return nil, errors.New("the card catalog is empty")
		}
	}
	return e.activate(ctx, roomID, card, true, e.now())
}

func (e *Engine) activate(ctx context.Context, roomID string, card *models.Card, forced bool, now time.Time) (*Spawned, error) {
	s := &models.Spawn{
		RoomID:    roomID,
		CardID:    card.ID,
		Forced:    forced,
		SpawnedAt: now,
		ExpiresAt: now.Add(e.cfg.CatchWindow),
	}
	if err := e.store.Activate(ctx, s, e.cfg.Cooldown); err != nil {
		return nil, err
	}

	slog.Info("Card spawned",
		slog.String("type", "sys"),
		slog.String("room_id", roomID),
		slog.String("card_id", card.ID),
		slog.String("rarity", card.Rarity),
		slog.Bool("forced", forced))

	return &Spawned{Spawn: s, Card: card}, nil
}

// randomCard rolls a tier and picks uniformly inside it. An empty tier means
// no spawn for this event.
func (e *Engine) randomCard(ctx context.Context) (*models.Card, error) {
	tier := rarity.Pick(e.rng, rarity.SpawnTable)
	cards, err := e.catalog.ByTier(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s cards: %w", tier, err)
	}
	if len(cards) == 0 {
		slog.Warn("No cards for rolled tier",
			slog.String("type", "sys"),
			slog.String("rarity", tier.String()))
		return nil, nil
	}
	return cards[e.rng.Intn(len(cards))], nil
}

// Catch claims the active spawn of the room for userID. Exactly one of any
// number of concurrent callers succeeds.
func (e *Engine) Catch(ctx context.Context, roomID, userID, userName, guess string) (*Caught, error) {
	now := e.now()

	cur, err := e.store.Get(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load spawn state: %w", err)
	}
	if cur == nil || !cur.ActiveAt(now) {
		return nil, ErrNoActiveSpawn
	}

	card, err := e.catalog.Get(ctx, cur.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load spawned card: %w", err)
	}
	if !MatchesName(card.Name, guess) {
		return nil, ErrWrongGuess
	}

	if _, err := e.store.Claim(ctx, roomID, card.ID, userID, now); err != nil {
		return nil, err
	}

	reward := rarity.Reward(card.Tier())
	uc, err := e.collector.GrantCatch(ctx, userID, userName, card, reward)
	if err != nil {
		if rerr := e.store.Reopen(ctx, roomID, userID); rerr != nil {
			slog.Error("Failed to reopen spawn after failed grant",
				slog.String("type", "sys"),
				slog.String("room_id", roomID),
				slog.Any("error", rerr))
		}
		return nil, fmt.Errorf("failed to grant caught card: %w", err)
	}

	return &Caught{Card: card, UserCard: uc, Reward: reward}, nil
}

// Sweep expires every spawn whose window elapsed. Cards missing from the
// catalog are still expired but reported without card data.
func (e *Engine) Sweep(ctx context.Context) ([]Spawned, error) {
	expired, err := e.store.ExpireDue(ctx, e.now())
	if err != nil {
		return nil, fmt.Errorf("failed to expire spawns: %w", err)
	}

	out := make([]Spawned, 0, len(expired))
	for _, s := range expired {
		card, err := e.catalog.Get(ctx, s.CardID)
		if err != nil {
			slog.Warn("Expired spawn references unknown card",
				slog.String("type", "sys"),
				slog.String("card_id", s.CardID),
				slog.Any("error", err))
		}
		out = append(out, Spawned{Spawn: s, Card: card})
	}
	return out, nil
}

// StartSweeper runs Sweep every interval and hands the results to notify.
func (e *Engine) StartSweeper(ctx context.Context, interval time.Duration, notify func([]Spawned)) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				expired, err := e.Sweep(ctx)
				if err != nil {
					slog.Error("Spawn sweep failed", slog.String("type", "sys"), slog.Any("error", err))
					continue
				}
				if len(expired) > 0 {
					notify(expired)
				}
			}
		}
	}()
}

// MatchesName accepts the full name or any part of at least three letters,
// case-insensitively.
func MatchesName(name, guess string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	g := strings.ToLower(strings.TrimSpace(guess))
	if g == "" {
		return false
	}
	if n == g {
		return true
	}
	return len([]rune(g)) >= 3 && strings.Contains(n, g)
}
