package migration

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
)

const (
	defaultStat      = 50
	defaultSpawnRate = 10
	defaultCardType  = "balance"
)

var (
	ErrMissingID  = errors.New("document has no id")
	ErrBadRarity  = errors.New("unknown rarity")
	ErrMissingRef = errors.New("reference to unknown card")
)

var cardTypes = map[string]bool{
	"attack":  true,
	"defense": true,
	"balance": true,
	"support": true,
}

func toUser(lu *LegacyUser) (*models.User, error) {
	if strings.TrimSpace(lu.UserID) == "" {
		return nil, ErrMissingID
	}
	u := &models.User{
		ID:                  lu.UserID,
		Name:                lu.Name,
		Balance:             int64(math.Max(lu.Coins, 0)),
		CommandsUsed:        int64(lu.CommandsUsed),
		FavoriteCommand:     lu.FavoriteCommand,
		DailyStreak:         int(lu.DailyStreak),
		LastDaily:           lu.LastDailyClaim,
		TrainingCount:       int64(lu.TrainingCount),
		SuccessfulTrainings: int64(lu.SuccessfulTrainings),
		CleaningSkill:       int64(lu.CleaningSkill),
		LastTraining:        lu.LastTraining,
		IsBlocked:           lu.IsBlocked,
		LastSeen:            lu.LastSeen,
		CreatedAt:           lu.CreatedAt,
		UpdatedAt:           lu.LastSeen,
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = lu.ID.Timestamp()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	if lu.FavoriteCommand != "" {
		// per-command counts were never stored; seed the favorite so it survives
		u.CommandCounts = map[string]int64{lu.FavoriteCommand: 1}
	}
	return u, nil
}

func toCard(lc *LegacyCard) (*models.Card, error) {
	id := strings.ToLower(strings.TrimSpace(lc.CardID))
	if id == "" {
		return nil, ErrMissingID
	}

	r := strings.ToLower(lc.Rarity)
	if r == "" {
		r = rarity.Common.String()
	}
	if _, ok := rarity.Parse(r); !ok {
		return nil, fmt.Errorf("card %s: %w %q", id, ErrBadRarity, lc.Rarity)
	}

	typ := strings.ToLower(lc.Type)
	if !cardTypes[typ] {
		typ = defaultCardType
	}

	c := &models.Card{
		ID:        id,
		Name:      lc.Name,
		Anime:     lc.Anime,
		ImageURL:  lc.ImageURL,
		Rarity:    r,
		Type:      typ,
		Attack:    defaultStat,
		Defense:   defaultStat,
		Speed:     defaultStat,
		SpawnRate: defaultSpawnRate,
	}
	if lc.Stats != nil {
		c.Attack = int(lc.Stats.Attack)
		c.Defense = int(lc.Stats.Defense)
		c.Speed = int(lc.Stats.Speed)
	}
	if lc.SpawnRate != nil {
		c.SpawnRate = int(*lc.SpawnRate)
	}
	if lc.Ability != nil && lc.Ability.Name != "" {
		c.Ability = &models.CardAbility{
			Name:        lc.Ability.Name,
			Description: lc.Ability.Description,
			Effect:      lc.Ability.Effect,
		}
	}
	return c, nil
}

// toUserCard keeps the Mongo ObjectID as the row id so reruns stay idempotent.
// known is the set of card ids already imported.
func toUserCard(luc *LegacyUserCard, known map[string]bool) (*models.UserCard, error) {
	if luc.ID.IsZero() || luc.UserID == "" {
		return nil, ErrMissingID
	}
	cardID := strings.ToLower(strings.TrimSpace(luc.CardID))
	if !known[cardID] {
		return nil, fmt.Errorf("user card %s: %w %q", luc.ID.Hex(), ErrMissingRef, luc.CardID)
	}

	uc := &models.UserCard{
		ID:         luc.ID.Hex(),
		UserID:     luc.UserID,
		CardID:     cardID,
		Level:      max(int(luc.Level), 1),
		Exp:        max(int(luc.Exp), 0),
		Nickname:   luc.Nickname,
		Favorite:   luc.Favorite,
		ObtainedAt: luc.ObtainedAt,
	}
	if uc.ObtainedAt.IsZero() {
		uc.ObtainedAt = luc.ID.Timestamp()
	}
	uc.UpdatedAt = uc.ObtainedAt
	if luc.InDeck && luc.DeckPosition != nil {
		pos := int(*luc.DeckPosition)
		uc.InDeck = true
		uc.DeckPosition = &pos
	}
	return uc, nil
}
