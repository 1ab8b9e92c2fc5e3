package trade_test

import (
	"context"
	"testing"

	"github.com/ellavondegurechaff/levibot/levibot/game/trade"
	"github.com/ellavondegurechaff/levibot/levibot/game/trade/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pending() trade.Session {
	return trade.Session{
		ID:            "t-1",
		InitiatorID:   "sender",
		CounterpartID: "receiver",
		Pending:       true,
	}
}

func TestCanOfferCard(t *testing.T) {
	offered := pending()
	offered.Counterpart.UserCardIDs = []string{"c9"}

	tests := []struct {
		name    string
		session trade.Session
		user    string
		card    trade.OwnedCard
		wantErr error
	}{
		{name: "ok", session: pending(), user: "sender", card: trade.OwnedCard{ID: "c1", OwnerID: "sender"}},
		{name: "deck card rejected", session: pending(), user: "sender", card: trade.OwnedCard{ID: "c1", OwnerID: "sender", InDeck: true}, wantErr: trade.ErrCardInDeck},
		{name: "not owned", session: pending(), user: "sender", card: trade.OwnedCard{ID: "c1", OwnerID: "receiver"}, wantErr: trade.ErrCardNotOwned},
		{name: "already offered by the other side", session: offered, user: "receiver", card: trade.OwnedCard{ID: "c9", OwnerID: "receiver"}, wantErr: trade.ErrAlreadyOffered},
		{name: "outsider", session: pending(), user: "mallory", card: trade.OwnedCard{ID: "c1", OwnerID: "mallory"}, wantErr: trade.ErrNotParticipant},
		{name: "closed trade", session: trade.Session{InitiatorID: "sender", CounterpartID: "receiver"}, user: "sender", card: trade.OwnedCard{ID: "c1", OwnerID: "sender"}, wantErr: trade.ErrNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := trade.CanOfferCard(tt.session, tt.user, tt.card)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCanOfferCoins(t *testing.T) {
	assert.NoError(t, trade.CanOfferCoins(pending(), "sender", 50, 50))
	assert.ErrorIs(t, trade.CanOfferCoins(pending(), "sender", 0, 50), trade.ErrInvalidAmount)
	assert.ErrorIs(t, trade.CanOfferCoins(pending(), "sender", -5, 50), trade.ErrInvalidAmount)
	assert.ErrorIs(t, trade.CanOfferCoins(pending(), "sender", 51, 50), trade.ErrInsufficientFunds)
}

func TestCanAccept(t *testing.T) {
	s := pending()
	assert.ErrorIs(t, trade.CanAccept(s, "receiver"), trade.ErrEmptyTrade)

	s.Initiator.Coins = 10
	assert.ErrorIs(t, trade.CanAccept(s, "sender"), trade.ErrSelfAccept)
	assert.ErrorIs(t, trade.CanAccept(s, "mallory"), trade.ErrNotParticipant)
	assert.NoError(t, trade.CanAccept(s, "receiver"))
}

func TestSettle_CardAndCoinsForNothing(t *testing.T) {
	s := pending()
	s.Initiator = trade.Offer{UserCardIDs: []string{"c1"}, Coins: 50}

	ledger := mock.NewMockLedger(gomock.NewController(t))
	ledger.EXPECT().Session(gomock.Any(), "t-1").Return(s, nil)
	ledger.EXPECT().Holdings(gomock.Any(), s).Return(trade.Holdings{
		Balances: map[string]int64{"sender": 120, "receiver": 0},
		Owners:   map[string]string{"c1": "sender"},
	}, nil)

	var applied *trade.Settlement
	ledger.EXPECT().ApplyTrade(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *trade.Settlement) error {
		applied = p
		return nil
	})

	plan, err := trade.Settle(context.Background(), ledger, s, "receiver")
	require.NoError(t, err)
	require.Same(t, plan, applied)

	assert.Equal(t, []trade.CardMove{{UserCardID: "c1", From: "sender", To: "receiver"}}, plan.Cards)
	assert.Equal(t, int64(-50), plan.Deltas["sender"])
	assert.Equal(t, int64(50), plan.Deltas["receiver"])
}

func TestSettle_ShortfallMovesNothing(t *testing.T) {
	s := pending()
	s.Initiator = trade.Offer{UserCardIDs: []string{"c1"}, Coins: 50}

	ledger := mock.NewMockLedger(gomock.NewController(t))
	ledger.EXPECT().Session(gomock.Any(), "t-1").Return(s, nil)
	// balance dropped between offer and accept
	ledger.EXPECT().Holdings(gomock.Any(), s).Return(trade.Holdings{
		Balances: map[string]int64{"sender": 20},
		Owners:   map[string]string{"c1": "sender"},
	}, nil)

	_, err := trade.Settle(context.Background(), ledger, s, "receiver")
	assert.ErrorIs(t, err, trade.ErrInsufficientFunds)
}

func TestSettle_CardDriftMovesNothing(t *testing.T) {
	s := pending()
	s.Counterpart = trade.Offer{UserCardIDs: []string{"c7"}}

	ledger := mock.NewMockLedger(gomock.NewController(t))
	ledger.EXPECT().Session(gomock.Any(), "t-1").Return(s, nil)
	ledger.EXPECT().Holdings(gomock.Any(), s).Return(trade.Holdings{
		Owners: map[string]string{"c7": "someone-else"},
	}, nil)

	_, err := trade.Settle(context.Background(), ledger, s, "receiver")
	assert.ErrorIs(t, err, trade.ErrCardNotOwned)
}

func TestSettle_RechecksLockedTerms(t *testing.T) {
	seen := pending()
	seen.Counterpart.Coins = 50

	t.Run("offer grew after it was shown", func(t *testing.T) {
		locked := seen
		locked.Initiator.UserCardIDs = []string{"c2"}

		ledger := mock.NewMockLedger(gomock.NewController(t))
		ledger.EXPECT().Session(gomock.Any(), "t-1").Return(locked, nil)

		_, err := trade.Settle(context.Background(), ledger, seen, "receiver")
		assert.ErrorIs(t, err, trade.ErrTermsChanged)
	})

	t.Run("coins changed", func(t *testing.T) {
		locked := seen
		locked.Counterpart.Coins = 10

		ledger := mock.NewMockLedger(gomock.NewController(t))
		ledger.EXPECT().Session(gomock.Any(), "t-1").Return(locked, nil)

		_, err := trade.Settle(context.Background(), ledger, seen, "receiver")
		assert.ErrorIs(t, err, trade.ErrTermsChanged)
	})

	t.Run("closed meanwhile", func(t *testing.T) {
		locked := seen
		locked.Pending = false

		ledger := mock.NewMockLedger(gomock.NewController(t))
		ledger.EXPECT().Session(gomock.Any(), "t-1").Return(locked, nil)

		_, err := trade.Settle(context.Background(), ledger, seen, "receiver")
		assert.ErrorIs(t, err, trade.ErrNotPending)
	})
}

func TestPlan_BothSidesPayNet(t *testing.T) {
	s := pending()
	s.Initiator.Coins = 100
	s.Counterpart.Coins = 30

	plan, err := trade.Plan(s, trade.Holdings{Balances: map[string]int64{"sender": 100, "receiver": 30}})
	require.NoError(t, err)
	assert.Equal(t, int64(-70), plan.Deltas["sender"])
	assert.Equal(t, int64(70), plan.Deltas["receiver"])
}
