package services

import (
	"context"
	"testing"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	repomock "github.com/ellavondegurechaff/levibot/levibot/database/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountService_Leaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := repomock.NewMockUserRepository(ctrl)
	svc := NewAccountService(users, repomock.NewMockUserCardRepository(ctrl))

	users.EXPECT().Leaderboard(gomock.Any(), repositories.LeaderboardCards, config.LeaderboardSize).
		Return([]repositories.LeaderboardEntry{{UserID: "alice", Score: 3}}, nil)

	entries, err := svc.Leaderboard(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = svc.Leaderboard(context.Background(), "cleanest")
	assert.ErrorContains(t, err, "unknown leaderboard")
}

func TestAccountService_Blocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := repomock.NewMockUserRepository(ctrl)
	svc := NewAccountService(users, repomock.NewMockUserCardRepository(ctrl))

	users.EXPECT().GetByID(gomock.Any(), "new").Return(nil, &repositories.NotFoundError{Entity: "user", ID: "new"})
	users.EXPECT().GetByID(gomock.Any(), "jean").Return(&models.User{ID: "jean", IsBlocked: true}, nil)

	blocked, err := svc.Blocked(context.Background(), "new")
	require.NoError(t, err)
	assert.False(t, blocked)

	blocked, err = svc.Blocked(context.Background(), "jean")
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestAccountService_ProfileSkipsCatalogGaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := repomock.NewMockUserRepository(ctrl)
	userCards := repomock.NewMockUserCardRepository(ctrl)
	svc := NewAccountService(users, userCards)

	gap := &models.UserCard{ID: "x", UserID: "alice", CardID: "deleted", InDeck: true}
	users.EXPECT().GetOrCreate(gomock.Any(), "alice", "Alice").Return(&models.User{ID: "alice"}, nil)
	userCards.EXPECT().CountByUserID(gomock.Any(), "alice").Return(2, nil)
	userCards.EXPECT().GetDeck(gomock.Any(), "alice").Return([]*models.UserCard{ownedCard("a1", "alice", true, eren), gap}, nil)

	p, err := svc.Profile(context.Background(), "alice", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 2, p.CardCount)
	require.Len(t, p.Deck, 1)
	assert.Equal(t, "a1", p.Deck[0].ID)
}
