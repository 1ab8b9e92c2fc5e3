package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/cardleveling"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	repomock "github.com/ellavondegurechaff/levibot/levibot/database/repositories/mock"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	battlemock "github.com/ellavondegurechaff/levibot/levibot/game/battle/mock"
	"github.com/ellavondegurechaff/levibot/levibot/game/gametest"
	"github.com/ellavondegurechaff/levibot/levibot/services/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type battleFixture struct {
	battles   *repomock.MockBattleRepository
	userCards *repomock.MockUserCardRepository
	users     *repomock.MockUserRepository
	settler   *mock.MockSettler
	svc       *BattleService
}

func newBattleFixture(t *testing.T) *battleFixture {
	ctrl := gomock.NewController(t)
	f := &battleFixture{
		battles:   repomock.NewMockBattleRepository(ctrl),
		userCards: repomock.NewMockUserCardRepository(ctrl),
		users:     repomock.NewMockUserRepository(ctrl),
		settler:   mock.NewMockSettler(ctrl),
	}
	engine := battle.NewEngine(gametest.FixedRand{})
	f.svc = NewBattleService(f.battles, f.userCards, f.users, engine, cardleveling.NewService(nil), f.settler, time.Hour)
	return f
}

func ownedCard(id, owner string, inDeck bool, card *models.Card) *models.UserCard {
	uc := &models.UserCard{ID: id, UserID: owner, CardID: card.ID, Level: 1, InDeck: inDeck, Card: card}
	if inDeck {
		pos := 0
		uc.DeckPosition = &pos
	}
	return uc
}

var (
	eren   = &models.Card{ID: "eren", Name: "Eren Yeager", Rarity: "rare", Type: "attack", Attack: 90, Defense: 50, Speed: 80}
	armin  = &models.Card{ID: "armin", Name: "Armin Arlert", Rarity: "common", Type: "attack", Attack: 10, Defense: 50, Speed: 20}
	mikasa = &models.Card{ID: "mikasa", Name: "Mikasa Ackerman", Rarity: "epic", Type: "balance", Attack: 85, Defense: 60, Speed: 90}
)

func TestBattleService_ChallengeSelf(t *testing.T) {
	f := newBattleFixture(t)

	_, err := f.svc.Challenge(context.Background(), ChallengeRequest{ChallengerID: "alice", OpponentID: "alice"})
	assert.ErrorIs(t, err, ErrSelfChallenge)
}

func TestBattleService_ChallengeFreezesDeck(t *testing.T) {
	ctx := context.Background()
	f := newBattleFixture(t)

	f.users.EXPECT().GetOrCreate(gomock.Any(), "alice", "Alice").Return(&models.User{ID: "alice", Balance: 300}, nil)
	f.users.EXPECT().GetOrCreate(gomock.Any(), "bob", "Bob").Return(&models.User{ID: "bob"}, nil)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "alice").Return([]*models.UserCard{ownedCard("a1", "alice", true, eren)}, nil)

	var created *models.Battle
	f.battles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *models.Battle) error {
		b.ID = "b-1"
		created = b
		return nil
	})

	b, err := f.svc.Challenge(ctx, ChallengeRequest{
		RoomID:         "room",
		ChallengerID:   "alice",
		ChallengerName: "Alice",
		OpponentID:     "bob",
		OpponentName:   "Bob",
		Wager:          100,
	})
	require.NoError(t, err)
	assert.Same(t, created, b)
	assert.Equal(t, []string{"a1"}, b.ChallengerDeck)
	assert.Equal(t, int64(100), b.Wager)
	assert.WithinDuration(t, time.Now().Add(time.Hour), b.ExpiresAt, time.Minute)
}

func TestBattleService_ChallengeErrors(t *testing.T) {
	t.Run("empty deck", func(t *testing.T) {
		f := newBattleFixture(t)
		f.users.EXPECT().GetOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.User{}, nil).Times(2)
		f.userCards.EXPECT().GetDeck(gomock.Any(), "alice").Return(nil, nil)

		_, err := f.svc.Challenge(context.Background(), ChallengeRequest{ChallengerID: "alice", OpponentID: "bob"})
		assert.ErrorIs(t, err, ErrNoDeck)
	})

	t.Run("wager above balance", func(t *testing.T) {
		f := newBattleFixture(t)
		f.users.EXPECT().GetOrCreate(gomock.Any(), "alice", gomock.Any()).Return(&models.User{Balance: 50}, nil)
		f.users.EXPECT().GetOrCreate(gomock.Any(), "bob", gomock.Any()).Return(&models.User{}, nil)
		f.userCards.EXPECT().GetDeck(gomock.Any(), "alice").Return([]*models.UserCard{ownedCard("a1", "alice", true, eren)}, nil)

		_, err := f.svc.Challenge(context.Background(), ChallengeRequest{ChallengerID: "alice", OpponentID: "bob", Wager: 100})
		assert.ErrorIs(t, err, battle.ErrInsufficientWager)
	})

	t.Run("pair already busy", func(t *testing.T) {
		f := newBattleFixture(t)
		f.users.EXPECT().GetOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.User{}, nil).Times(2)
		f.userCards.EXPECT().GetDeck(gomock.Any(), "alice").Return([]*models.UserCard{ownedCard("a1", "alice", true, eren)}, nil)
		f.battles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&repositories.ConflictError{Entity: "battle", Field: "pair", Value: "alice:bob"})

		_, err := f.svc.Challenge(context.Background(), ChallengeRequest{ChallengerID: "alice", OpponentID: "bob"})
		assert.ErrorIs(t, err, repositories.ErrAlreadyPending)
	})
}

func pendingBattle(wager int64) *models.Battle {
	return &models.Battle{
		ID:             "b-1",
		ChallengerID:   "alice",
		OpponentID:     "bob",
		Status:         models.BattlePending,
		ChallengerDeck: []string{"a1"},
		Wager:          wager,
		ExpiresAt:      time.Now().Add(time.Hour),
	}
}

func TestBattleService_AcceptWithWager(t *testing.T) {
	ctx := context.Background()
	f := newBattleFixture(t)
	ledger := battlemock.NewMockLedger(gomock.NewController(t))

	f.battles.EXPECT().GetPendingFor(gomock.Any(), "bob").Return(pendingBattle(100), nil)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "bob").Return([]*models.UserCard{ownedCard("b1", "bob", true, armin)}, nil)
	f.users.EXPECT().GetBalance(gomock.Any(), "alice").Return(int64(500), nil)
	f.users.EXPECT().GetBalance(gomock.Any(), "bob").Return(int64(500), nil)
	f.battles.EXPECT().Start(gomock.Any(), "b-1", []string{"b1"}).Return(true, nil)
	f.userCards.EXPECT().GetByIDs(gomock.Any(), []string{"a1"}).Return([]*models.UserCard{ownedCard("a1", "alice", true, eren)}, nil)
	f.settler.EXPECT().SettleBattle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, battle.Ledger) error) error {
			return fn(ctx, ledger)
		})

	ledger.EXPECT().Balance(gomock.Any(), "alice").Return(int64(500), nil)
	ledger.EXPECT().Balance(gomock.Any(), "bob").Return(int64(500), nil)
	ledger.EXPECT().Progress(gomock.Any(), []string{"a1"}).Return([]cardleveling.CardProgress{{UserCardID: "a1", Level: 1}}, nil)
	ledger.EXPECT().Progress(gomock.Any(), []string{"b1"}).Return([]cardleveling.CardProgress{{UserCardID: "b1", Level: 1}}, nil)
	ledger.EXPECT().ApplyBattle(gomock.Any(), gomock.Any()).Return(nil)

	out, err := f.svc.Accept(ctx, "bob")
	require.NoError(t, err)
	require.False(t, out.Cancelled)
	require.NotNil(t, out.Settlement)

	assert.Equal(t, models.BattleCompleted, out.Battle.Status)
	assert.Equal(t, "alice", out.Battle.WinnerID)
	assert.Equal(t, int64(100), out.Settlement.BalanceDelta("alice"))
	assert.Equal(t, int64(-100), out.Settlement.BalanceDelta("bob"))
	assert.NotEmpty(t, out.Battle.Turns)

	require.Len(t, out.Settlement.Progress, 2)
	assert.Equal(t, 25, out.Settlement.Progress[0].ExpGained)
	assert.Equal(t, 10, out.Settlement.Progress[1].ExpGained)
}

func TestBattleService_AcceptCancelsOnShortWager(t *testing.T) {
	f := newBattleFixture(t)

	f.battles.EXPECT().GetPendingFor(gomock.Any(), "bob").Return(pendingBattle(100), nil)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "bob").Return([]*models.UserCard{ownedCard("b1", "bob", true, armin)}, nil)
	f.users.EXPECT().GetBalance(gomock.Any(), "alice").Return(int64(500), nil)
	f.users.EXPECT().GetBalance(gomock.Any(), "bob").Return(int64(20), nil)
	f.battles.EXPECT().Transition(gomock.Any(), "b-1", models.BattlePending, models.BattleCancelled).Return(true, nil)

	out, err := f.svc.Accept(context.Background(), "bob")
	require.NoError(t, err)
	assert.True(t, out.Cancelled)
	assert.ErrorIs(t, out.Reason, battle.ErrInsufficientWager)
	assert.Nil(t, out.Settlement)
}

func TestBattleService_AcceptCancelsWhenSettlementWagerFails(t *testing.T) {
	f := newBattleFixture(t)

	f.battles.EXPECT().GetPendingFor(gomock.Any(), "bob").Return(pendingBattle(100), nil)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "bob").Return([]*models.UserCard{ownedCard("b1", "bob", true, mikasa)}, nil)
	f.users.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Return(int64(500), nil).Times(2)
	f.battles.EXPECT().Start(gomock.Any(), "b-1", []string{"b1"}).Return(true, nil)
	f.userCards.EXPECT().GetByIDs(gomock.Any(), []string{"a1"}).Return([]*models.UserCard{ownedCard("a1", "alice", true, eren)}, nil)
	f.settler.EXPECT().SettleBattle(gomock.Any(), gomock.Any()).Return(battle.ErrInsufficientWager)
	f.battles.EXPECT().Transition(gomock.Any(), "b-1", models.BattleActive, models.BattleCancelled).Return(true, nil)

	out, err := f.svc.Accept(context.Background(), "bob")
	require.NoError(t, err)
	assert.True(t, out.Cancelled)
}

func TestBattleService_AcceptReleasesBattleAfterCommandDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newBattleFixture(t)

	f.battles.EXPECT().GetPendingFor(gomock.Any(), "bob").Return(pendingBattle(0), nil)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "bob").Return([]*models.UserCard{ownedCard("b1", "bob", true, armin)}, nil)
	f.battles.EXPECT().Start(gomock.Any(), "b-1", []string{"b1"}).Return(true, nil)
	f.userCards.EXPECT().GetByIDs(gomock.Any(), []string{"a1"}).Return([]*models.UserCard{ownedCard("a1", "alice", true, eren)}, nil)
	// the command deadline passes while the settlement is running
	f.settler.EXPECT().SettleBattle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, func(context.Context, battle.Ledger) error) error {
			cancel()
			return context.Canceled
		})
	f.battles.EXPECT().Transition(gomock.Any(), "b-1", models.BattleActive, models.BattleCancelled).DoAndReturn(
		func(ctx context.Context, _ string, _, _ models.BattleStatus) (bool, error) {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return true, nil
		})

	_, err := f.svc.Accept(ctx, "bob")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBattleService_AcceptReleasesBattleWhenDeckLoadFails(t *testing.T) {
	f := newBattleFixture(t)
	boom := errors.New("connection reset")

	f.battles.EXPECT().GetPendingFor(gomock.Any(), "bob").Return(pendingBattle(0), nil)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "bob").Return([]*models.UserCard{ownedCard("b1", "bob", true, armin)}, nil)
	f.battles.EXPECT().Start(gomock.Any(), "b-1", []string{"b1"}).Return(true, nil)
	f.userCards.EXPECT().GetByIDs(gomock.Any(), []string{"a1"}).Return(nil, boom)
	f.battles.EXPECT().Transition(gomock.Any(), "b-1", models.BattleActive, models.BattleCancelled).Return(true, nil)

	_, err := f.svc.Accept(context.Background(), "bob")
	assert.ErrorIs(t, err, boom)
}

func TestBattleService_AcceptRace(t *testing.T) {
	f := newBattleFixture(t)

	f.battles.EXPECT().GetPendingFor(gomock.Any(), "bob").Return(pendingBattle(0), nil)
	f.userCards.EXPECT().GetDeck(gomock.Any(), "bob").Return([]*models.UserCard{ownedCard("b1", "bob", true, armin)}, nil)
	f.battles.EXPECT().Start(gomock.Any(), "b-1", []string{"b1"}).Return(false, nil)

	_, err := f.svc.Accept(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrBattleTaken)
}

func TestBattleService_AcceptNothingPending(t *testing.T) {
	f := newBattleFixture(t)
	f.battles.EXPECT().GetPendingFor(gomock.Any(), "bob").Return(nil, &repositories.NotFoundError{Entity: "battle", ID: "bob"})

	_, err := f.svc.Accept(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrNoPendingBattle)
}

func TestFighters_SkipsTradedAndUnknownCards(t *testing.T) {
	cards := []*models.UserCard{
		ownedCard("a2", "alice", true, mikasa),
		ownedCard("a1", "alice", true, eren),
		ownedCard("a3", "carol", false, eren),
		{ID: "a4", UserID: "alice", CardID: "ghost", Level: 1},
	}

	fs := fighters(cards, []string{"a1", "a2", "a3", "a4", "a5"}, "alice")
	require.Len(t, fs, 2)
	assert.Equal(t, "a1", fs[0].OwnedCardID)
	assert.Equal(t, "a2", fs[1].OwnedCardID)
}

func TestBattleService_Decline(t *testing.T) {
	f := newBattleFixture(t)
	f.battles.EXPECT().GetPendingFor(gomock.Any(), "bob").Return(pendingBattle(0), nil)
	f.battles.EXPECT().Transition(gomock.Any(), "b-1", models.BattlePending, models.BattleCancelled).Return(true, nil)

	b, err := f.svc.Decline(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, models.BattleCancelled, b.Status)
}
