package battle

import (
	"testing"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/game"
	"github.com/ellavondegurechaff/levibot/levibot/game/gametest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }

func TestScaleStat(t *testing.T) {
	assert.Equal(t, 50, ScaleStat(50, 1))
	assert.Equal(t, 52, ScaleStat(50, 2))
	assert.Equal(t, 115, ScaleStat(100, 4))
	assert.Equal(t, 50, ScaleStat(50, 0))

	for base := 1; base <= 200; base++ {
		for level := 1; level < 50; level++ {
			assert.GreaterOrEqual(t, ScaleStat(base, level+1), ScaleStat(base, level))
		}
	}
}

func TestSimulate_AttackerKnocksOutDefender(t *testing.T) {
	e := NewEngine(gametest.FixedRand{}, WithClock(fixedNow))
	challenger := []Fighter{{Name: "Levi", Archetype: ArchetypeAttack, Attack: 100, Defense: 50, Speed: 60}}
	opponent := []Fighter{{Name: "Wall", Archetype: ArchetypeDefense, Attack: 10, Defense: 40, Speed: 50}}

	res, err := e.Simulate(challenger, opponent)
	require.NoError(t, err)

	assert.Equal(t, Challenger, res.Winner)
	assert.Equal(t, 2, res.Rounds)
	require.Len(t, res.Turns, 3)
	assert.Equal(t, 80, res.Turns[0].Damage)
	assert.Equal(t, MoveDefend, res.Turns[1].Move)
	assert.Equal(t, 78, res.Turns[2].Damage)
	assert.Equal(t, 100, res.ChallengerHP)
	assert.Equal(t, -58, res.OpponentHP)
	assert.False(t, res.TimedOut)

	// the caller's decks are left untouched
	assert.Equal(t, 40, opponent[0].Defense)
}

func TestSimulate_TimeoutTieGoesToChallenger(t *testing.T) {
	e := NewEngine(gametest.FixedRand{}, WithClock(fixedNow))
	deck := []Fighter{{Name: "Shield", Archetype: ArchetypeDefense, Attack: 10, Defense: 10, Speed: 10}}

	res, err := e.Simulate(deck, deck)
	require.NoError(t, err)

	assert.True(t, res.TimedOut)
	assert.Equal(t, MaxRounds, res.Rounds)
	assert.Len(t, res.Turns, 2*MaxRounds)
	assert.Equal(t, res.ChallengerHP, res.OpponentHP)
	assert.Equal(t, Challenger, res.Winner)
}

func TestSimulate_TurnOrder(t *testing.T) {
	e := NewEngine(gametest.FixedRand{}, WithClock(fixedNow), WithMaxRounds(2))
	slow := []Fighter{{Name: "Slow", Archetype: ArchetypeDefense, Attack: 1, Defense: 10, Speed: 10}}
	fast := []Fighter{{Name: "Fast", Archetype: ArchetypeDefense, Attack: 1, Defense: 10, Speed: 90}}

	res, err := e.Simulate(slow, fast)
	require.NoError(t, err)
	require.Len(t, res.Turns, 4)

	// odd round: faster opponent acts first, even round: challenger first
	assert.Equal(t, Opponent, res.Turns[0].Side)
	assert.Equal(t, Challenger, res.Turns[1].Side)
	assert.Equal(t, Challenger, res.Turns[2].Side)
	assert.Equal(t, Opponent, res.Turns[3].Side)
}

func TestSimulate_SupportMoves(t *testing.T) {
	support := []Fighter{{Name: "Medic", Archetype: ArchetypeSupport, Attack: 50, Defense: 50, Speed: 90}}
	target := []Fighter{{Name: "Dummy", Archetype: ArchetypeDefense, Attack: 1, Defense: 100, Speed: 1}}

	t.Run("heal is capped at full HP", func(t *testing.T) {
		e := NewEngine(gametest.FixedRand{Float: 0.1}, WithClock(fixedNow), WithMaxRounds(1))
		res, err := e.Simulate(support, target)
		require.NoError(t, err)
		assert.Equal(t, MoveHeal, res.Turns[0].Move)
		assert.Equal(t, 0, res.Turns[0].Healed)
		assert.Equal(t, MaxHP, res.ChallengerHP)
	})

	t.Run("weaken damages and lowers defense", func(t *testing.T) {
		e := NewEngine(gametest.FixedRand{Float: 0.5}, WithClock(fixedNow), WithMaxRounds(1))
		res, err := e.Simulate(support, target)
		require.NoError(t, err)
		assert.Equal(t, MoveWeaken, res.Turns[0].Move)
		assert.Equal(t, 15, res.Turns[0].Damage)
		assert.Equal(t, 85, res.OpponentHP)
	})
}

func TestSimulate_BalanceMoves(t *testing.T) {
	balance := []Fighter{{Name: "Mikasa", Archetype: ArchetypeBalance, Attack: 60, Defense: 40, Speed: 90}}
	target := []Fighter{{Name: "Dummy", Archetype: ArchetypeDefense, Attack: 1, Defense: 50, Speed: 1}}

	e := NewEngine(gametest.NewScriptedRand(nil, []float64{0.2, 0.9}), WithClock(fixedNow), WithMaxRounds(2))
	res, err := e.Simulate(balance, target)
	require.NoError(t, err)

	require.Len(t, res.Turns, 4)
	assert.Equal(t, MoveAttack, res.Turns[0].Move)
	assert.Equal(t, 45, res.Turns[0].Damage)
	// round two: challenger again first, roll 0.9 defends
	assert.Equal(t, MoveDefend, res.Turns[2].Move)
}

func TestSimulate_Deterministic(t *testing.T) {
	decks := func() ([]Fighter, []Fighter) {
		return []Fighter{
				NewFighter("c1", "Eren", ArchetypeAttack, 3, 70, 40, 55),
				NewFighter("c2", "Armin", ArchetypeSupport, 1, 30, 60, 50),
				NewFighter("c3", "Mikasa", ArchetypeBalance, 2, 65, 55, 70),
			}, []Fighter{
				NewFighter("o1", "Reiner", ArchetypeDefense, 2, 50, 80, 30),
				NewFighter("o2", "Annie", ArchetypeBalance, 4, 60, 60, 65),
			}
	}

	run := func(seed int64) *Result {
		c, o := decks()
		res, err := NewEngine(game.NewRand(seed), WithClock(fixedNow)).Simulate(c, o)
		require.NoError(t, err)
		return res
	}

	assert.Equal(t, run(99), run(99))
}

func TestSimulate_Invariants(t *testing.T) {
	challenger := []Fighter{
		{Name: "A", Archetype: ArchetypeSupport, Attack: 40, Defense: 90, Speed: 50},
		{Name: "B", Archetype: ArchetypeBalance, Attack: 60, Defense: 40, Speed: 50},
	}
	opponent := []Fighter{
		{Name: "C", Archetype: ArchetypeSupport, Attack: 30, Defense: 100, Speed: 50},
		{Name: "D", Archetype: "mystery", Attack: 55, Defense: 45, Speed: 50},
	}

	for seed := int64(0); seed < 200; seed++ {
		res, err := NewEngine(game.NewRand(seed)).Simulate(challenger, opponent)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.ChallengerHP, MaxHP)
		assert.LessOrEqual(t, res.OpponentHP, MaxHP)
		assert.Contains(t, []Side{Challenger, Opponent}, res.Winner)
		assert.LessOrEqual(t, res.Rounds, MaxRounds)
	}
}

func TestSimulate_EmptyDeck(t *testing.T) {
	_, err := NewEngine(gametest.FixedRand{}).Simulate(nil, []Fighter{{Name: "x"}})
	assert.ErrorIs(t, err, ErrEmptyDeck)
}
