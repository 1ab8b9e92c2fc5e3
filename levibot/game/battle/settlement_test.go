package battle_test

import (
	"context"
	"testing"

	"github.com/ellavondegurechaff/levibot/levibot/cardleveling"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func settleInput(winner battle.Side, wager int64) battle.SettleInput {
	return battle.SettleInput{
		BattleID:       "b-1",
		ChallengerID:   "alice",
		OpponentID:     "bob",
		Wager:          wager,
		ChallengerDeck: []string{"a1", "a2"},
		OpponentDeck:   []string{"b1"},
		Result:         &battle.Result{Winner: winner},
	}
}

func TestSettle_ChallengerWinsWager(t *testing.T) {
	ctx := context.Background()
	ledger := mock.NewMockLedger(gomock.NewController(t))

	ledger.EXPECT().Balance(gomock.Any(), "alice").Return(int64(500), nil)
	ledger.EXPECT().Balance(gomock.Any(), "bob").Return(int64(100), nil)
	ledger.EXPECT().Progress(gomock.Any(), []string{"a1", "a2"}).Return([]cardleveling.CardProgress{
		{UserCardID: "a1", Level: 1, Exp: 80},
		{UserCardID: "a2", Level: 2, Exp: 0},
	}, nil)
	ledger.EXPECT().Progress(gomock.Any(), []string{"b1"}).Return([]cardleveling.CardProgress{
		{UserCardID: "b1", Level: 1, Exp: 95},
	}, nil)

	var applied *battle.Settlement
	ledger.EXPECT().ApplyBattle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *battle.Settlement) error {
		applied = s
		return nil
	})

	s, err := battle.Settle(ctx, ledger, cardleveling.NewService(nil), settleInput(battle.Challenger, 100))
	require.NoError(t, err)
	require.Same(t, s, applied)

	assert.Equal(t, "alice", s.WinnerID)
	assert.Equal(t, int64(100), s.BalanceDelta("alice"))
	assert.Equal(t, int64(-100), s.BalanceDelta("bob"))
	assert.Equal(t, int64(0), s.BalanceDelta("carol"))

	require.Len(t, s.Progress, 3)
	// winner cards +25, the first one crosses the level 1 threshold
	assert.Equal(t, 2, s.Progress[0].NewLevel)
	assert.Equal(t, 5, s.Progress[0].CurrentExp)
	assert.Equal(t, 25, s.Progress[1].CurrentExp)
	// loser card +10, also levels up
	assert.Equal(t, 10, s.Progress[2].ExpGained)
	assert.Equal(t, 2, s.Progress[2].NewLevel)
	assert.Equal(t, 5, s.Progress[2].CurrentExp)
}

func TestSettle_OpponentWinsWithoutWager(t *testing.T) {
	ledger := mock.NewMockLedger(gomock.NewController(t))

	ledger.EXPECT().Progress(gomock.Any(), []string{"b1"}).Return([]cardleveling.CardProgress{{UserCardID: "b1", Level: 1}}, nil)
	ledger.EXPECT().Progress(gomock.Any(), []string{"a1", "a2"}).Return(nil, nil)
	ledger.EXPECT().ApplyBattle(gomock.Any(), gomock.Any()).Return(nil)

	s, err := battle.Settle(context.Background(), ledger, cardleveling.NewService(nil), settleInput(battle.Opponent, 0))
	require.NoError(t, err)
	assert.Equal(t, "bob", s.WinnerID)
	assert.Equal(t, "alice", s.LoserID)
	assert.Equal(t, int64(0), s.BalanceDelta("bob"))
}

func TestSettle_ShortfallAppliesNothing(t *testing.T) {
	ledger := mock.NewMockLedger(gomock.NewController(t))

	ledger.EXPECT().Balance(gomock.Any(), "alice").Return(int64(500), nil)
	ledger.EXPECT().Balance(gomock.Any(), "bob").Return(int64(40), nil)
	// no Progress or ApplyBattle expectations: any call fails the test

	_, err := battle.Settle(context.Background(), ledger, cardleveling.NewService(nil), settleInput(battle.Challenger, 100))
	assert.ErrorIs(t, err, battle.ErrInsufficientWager)
}
