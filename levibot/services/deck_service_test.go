package services

import (
	"context"
	"testing"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	repomock "github.com/ellavondegurechaff/levibot/levibot/database/repositories/mock"
	"github.com/ellavondegurechaff/levibot/levibot/economy/utils"
	"github.com/ellavondegurechaff/levibot/levibot/game/deck"
	deckmock "github.com/ellavondegurechaff/levibot/levibot/game/deck/mock"
	"github.com/ellavondegurechaff/levibot/levibot/services/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deckFixture struct {
	userCards *repomock.MockUserCardRepository
	settler   *mock.MockSettler
	ledger    *deckmock.MockLedger
	svc       *DeckService
}

func newDeckFixture(t *testing.T) *deckFixture {
	ctrl := gomock.NewController(t)
	f := &deckFixture{
		userCards: repomock.NewMockUserCardRepository(ctrl),
		settler:   mock.NewMockSettler(ctrl),
		ledger:    deckmock.NewMockLedger(ctrl),
	}
	f.svc = NewDeckService(f.settler, f.userCards)
	return f
}

func (f *deckFixture) editWithLedger() {
	f.settler.EXPECT().EditDeck(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, deck.Ledger) error) error {
			return fn(ctx, f.ledger)
		})
}

func deckCard(id string, pos int, card *models.Card) *models.UserCard {
	uc := ownedCard(id, "alice", true, card)
	uc.DeckPosition = &pos
	return uc
}

func fullDeck() []deck.Slot {
	slots := make([]deck.Slot, deck.MaxSize)
	for i := range slots {
		slots[i] = deck.Slot{UserCardID: "d" + string(rune('0'+i)), Position: i}
	}
	return slots
}

func TestDeckService_Add(t *testing.T) {
	f := newDeckFixture(t)
	f.userCards.EXPECT().GetAllByUserID(gomock.Any(), "alice").Return([]*models.UserCard{
		deckCard("a1", 0, mikasa),
		deckCard("a2", 1, armin),
		ownedCard("a3", "alice", false, eren),
	}, nil)
	f.editWithLedger()

	f.ledger.EXPECT().LockDeck(gomock.Any(), "alice").Return([]deck.Slot{
		{UserCardID: "a1", Position: 0},
		{UserCardID: "a2", Position: 1},
	}, nil)
	f.ledger.EXPECT().LockOwnedCard(gomock.Any(), "alice", "a3").Return(nil)
	f.ledger.EXPECT().WriteSlots(gomock.Any(), []deck.Slot{{UserCardID: "a3", Position: 2}}).Return(nil)

	uc, err := f.svc.Add(context.Background(), "alice", "eren")
	require.NoError(t, err)
	assert.True(t, uc.InDeck)
	require.NotNil(t, uc.DeckPosition)
	assert.Equal(t, 2, *uc.DeckPosition)
}

func TestDeckService_AddRejections(t *testing.T) {
	t.Run("not owned", func(t *testing.T) {
		f := newDeckFixture(t)
		f.userCards.EXPECT().GetAllByUserID(gomock.Any(), "alice").Return([]*models.UserCard{
			ownedCard("a3", "alice", false, eren),
		}, nil)

		_, err := f.svc.Add(context.Background(), "alice", "zzzz")
		assert.ErrorIs(t, err, ErrNoMatchingCard)
	})

	t.Run("already in deck", func(t *testing.T) {
		f := newDeckFixture(t)
		f.userCards.EXPECT().GetAllByUserID(gomock.Any(), "alice").Return([]*models.UserCard{
			deckCard("a1", 0, mikasa),
		}, nil)

		_, err := f.svc.Add(context.Background(), "alice", "Mikasa Ackerman")
		assert.ErrorIs(t, err, deck.ErrAlreadyInDeck)
	})

	t.Run("deck full under lock", func(t *testing.T) {
		f := newDeckFixture(t)
		f.userCards.EXPECT().GetAllByUserID(gomock.Any(), "alice").Return([]*models.UserCard{
			ownedCard("a3", "alice", false, eren),
		}, nil)
		f.editWithLedger()
		f.ledger.EXPECT().LockDeck(gomock.Any(), "alice").Return(fullDeck(), nil)
		f.ledger.EXPECT().LockOwnedCard(gomock.Any(), "alice", "a3").Return(nil)

		_, err := f.svc.Add(context.Background(), "alice", "eren")
		assert.ErrorIs(t, err, deck.ErrDeckFull)
	})

	t.Run("traded away before the lock", func(t *testing.T) {
		f := newDeckFixture(t)
		f.userCards.EXPECT().GetAllByUserID(gomock.Any(), "alice").Return([]*models.UserCard{
			ownedCard("a3", "alice", false, eren),
		}, nil)
		f.editWithLedger()
		f.ledger.EXPECT().LockDeck(gomock.Any(), "alice").Return(nil, nil)
		f.ledger.EXPECT().LockOwnedCard(gomock.Any(), "alice", "a3").Return(utils.ErrCardNotOwned)

		_, err := f.svc.Add(context.Background(), "alice", "eren")
		assert.ErrorIs(t, err, utils.ErrCardNotOwned)
	})
}

func TestDeckService_RemoveShiftsDown(t *testing.T) {
	f := newDeckFixture(t)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "alice").Return([]*models.UserCard{
		deckCard("a1", 0, armin),
		deckCard("a2", 1, eren),
		deckCard("a3", 2, mikasa),
	}, nil)
	f.editWithLedger()

	// the locked state has a fourth card the earlier read missed
	f.ledger.EXPECT().LockDeck(gomock.Any(), "alice").Return([]deck.Slot{
		{UserCardID: "a4", Position: 3},
		{UserCardID: "a1", Position: 0},
		{UserCardID: "a3", Position: 2},
		{UserCardID: "a2", Position: 1},
	}, nil)
	gomock.InOrder(
		f.ledger.EXPECT().ClearSlots(gomock.Any(), "alice", []string{"a2"}).Return(1, nil),
		f.ledger.EXPECT().WriteSlots(gomock.Any(), []deck.Slot{
			{UserCardID: "a3", Position: 1},
			{UserCardID: "a4", Position: 2},
		}).Return(nil),
	)

	uc, err := f.svc.Remove(context.Background(), "alice", "eren")
	require.NoError(t, err)
	assert.Equal(t, "a2", uc.ID)
	assert.False(t, uc.InDeck)
	assert.Nil(t, uc.DeckPosition)
}

func TestDeckService_RemoveNotInDeck(t *testing.T) {
	f := newDeckFixture(t)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "alice").Return(nil, nil)

	_, err := f.svc.Remove(context.Background(), "alice", "eren")
	assert.ErrorIs(t, err, deck.ErrNotInDeck)
}

func TestDeckService_Clear(t *testing.T) {
	f := newDeckFixture(t)
	f.editWithLedger()
	f.ledger.EXPECT().ClearSlots(gomock.Any(), "alice", []string(nil)).Return(3, nil)

	n, err := f.svc.Clear(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
