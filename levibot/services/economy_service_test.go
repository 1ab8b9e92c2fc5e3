package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/gametest"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePicker struct {
	tiers  map[rarity.Tier][]*models.Card
	series map[string]map[rarity.Tier][]*models.Card
	animes []string
}

func (p *fakePicker) ByTier(_ context.Context, tier rarity.Tier) ([]*models.Card, error) {
	return p.tiers[tier], nil
}

func (p *fakePicker) ByAnimeTier(_ context.Context, anime string, tier rarity.Tier) ([]*models.Card, error) {
	return p.series[anime][tier], nil
}

func (p *fakePicker) Animes(context.Context) ([]string, error) {
	return p.animes, nil
}

var (
	levi  = &models.Card{ID: "levi", Name: "Levi Ackerman", Anime: "Attack on Titan", Rarity: "legendary"}
	sasha = &models.Card{ID: "sasha", Name: "Sasha Blouse", Anime: "Attack on Titan", Rarity: "common"}
	goku  = &models.Card{ID: "goku", Name: "Goku", Anime: "Dragon Ball", Rarity: "common"}
)

func TestDrawPack_GuaranteedLegendary(t *testing.T) {
	pack, _ := rarity.PackByKey("legendary")
	picker := &fakePicker{tiers: map[rarity.Tier][]*models.Card{
		rarity.Legendary: {levi},
		rarity.Common:    {sasha},
	}}

	// 0.99 lands in the common band of every pack table
	cards, refund, err := DrawPack(context.Background(), picker, gametest.FixedRand{Float: 0.99}, pack, "")
	require.NoError(t, err)
	assert.Zero(t, refund)
	require.Len(t, cards, pack.Cards)
	assert.Equal(t, levi, cards[0])
	for _, c := range cards[1:] {
		assert.Equal(t, sasha, c)
	}
}

func TestDrawPack_RefundsEmptyTier(t *testing.T) {
	pack, _ := rarity.PackByKey("basic")
	picker := &fakePicker{}

	cards, refund, err := DrawPack(context.Background(), picker, gametest.FixedRand{Float: 0.99}, pack, "")
	require.NoError(t, err)
	assert.Empty(t, cards)
	assert.Equal(t, int64(pack.Cards)*rarity.Reward(rarity.Common), refund)
}

func TestDrawPack_FeaturedFallsBackToCatalog(t *testing.T) {
	pack, _ := rarity.PackByKey("special")
	picker := &fakePicker{
		tiers: map[rarity.Tier][]*models.Card{rarity.Common: {goku}},
		series: map[string]map[rarity.Tier][]*models.Card{
			"Attack on Titan": {rarity.Legendary: {levi}},
		},
	}

	cards, _, err := DrawPack(context.Background(), picker, gametest.FixedRand{Float: 0.99}, pack, "Attack on Titan")
	require.NoError(t, err)
	require.Len(t, cards, pack.Cards)
	assert.Equal(t, goku, cards[0])

	cards, _, err = DrawPack(context.Background(), picker, gametest.FixedRand{Float: 0}, pack, "Attack on Titan")
	require.NoError(t, err)
	assert.Equal(t, levi, cards[0])
}

func TestPlanDaily(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		last       time.Time
		streak     int
		wantStreak int
		wantCoins  int64
		wantChance float64
	}{
		{name: "first claim", wantStreak: 1, wantCoins: 100, wantChance: 0.10},
		{name: "streak continues", last: now.Add(-30 * time.Hour), streak: 1, wantStreak: 2, wantCoins: 100, wantChance: 0.10},
		{name: "third day", last: now.Add(-25 * time.Hour), streak: 2, wantStreak: 3, wantCoins: 150, wantChance: 0.25},
		{name: "seventh day", last: now.Add(-47 * time.Hour), streak: 6, wantStreak: 7, wantCoins: 200, wantChance: 0.50},
		{name: "missed a day", last: now.Add(-49 * time.Hour), streak: 9, wantStreak: 1, wantCoins: 100, wantChance: 0.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanDaily(tt.last, tt.streak, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStreak, plan.Streak)
			assert.Equal(t, tt.wantCoins, plan.Coins)
			assert.InDelta(t, tt.wantChance, plan.CardChance, 1e-9)
		})
	}
}

func TestPlanDaily_AlreadyClaimed(t *testing.T) {
	now := time.Now()
	_, err := PlanDaily(now.Add(-20*time.Hour), 4, now)
	require.ErrorIs(t, err, ErrDailyClaimed)

	var cooldown *CooldownError
	require.True(t, errors.As(err, &cooldown))
	assert.Equal(t, 4*time.Hour, cooldown.Remaining)
}

func TestPlanTraining(t *testing.T) {
	now := time.Now()

	t.Run("cooldown", func(t *testing.T) {
		_, err := PlanTraining(now.Add(-10*time.Minute), now, gametest.FixedRand{})
		assert.ErrorIs(t, err, ErrTrainingCooldown)
	})

	t.Run("success", func(t *testing.T) {
		plan, err := PlanTraining(now.Add(-2*time.Hour), now, gametest.NewScriptedRand([]int{1}, []float64{0.5}))
		require.NoError(t, err)
		assert.True(t, plan.Success)
		assert.Equal(t, "Titan Dummy Training", plan.Scenario.Name)
		assert.Equal(t, int64(3), plan.Gain)
	})

	t.Run("failure rounds up", func(t *testing.T) {
		plan, err := PlanTraining(time.Time{}, now, gametest.NewScriptedRand([]int{1}, []float64{0.9}))
		require.NoError(t, err)
		assert.False(t, plan.Success)
		assert.Equal(t, int64(2), plan.Gain)

		plan, err = PlanTraining(time.Time{}, now, gametest.NewScriptedRand([]int{2}, []float64{0.9}))
		require.NoError(t, err)
		assert.Equal(t, int64(1), plan.Gain)
	})
}
