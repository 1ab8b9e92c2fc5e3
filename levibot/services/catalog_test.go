package services

import (
	"context"
	"testing"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	repomock "github.com/ellavondegurechaff/levibot/levibot/database/repositories/mock"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalog_GetCaches(t *testing.T) {
	repo := repomock.NewMockCardRepository(gomock.NewController(t))
	c := NewCatalog(repo, 16)

	repo.EXPECT().GetByID(gomock.Any(), "eren").Return(eren, nil).Times(1)

	for i := 0; i < 3; i++ {
		card, err := c.Get(context.Background(), "eren")
		require.NoError(t, err)
		assert.Equal(t, eren, card)
	}
}

func TestCatalog_GetUnknown(t *testing.T) {
	repo := repomock.NewMockCardRepository(gomock.NewController(t))
	c := NewCatalog(repo, 16)

	repo.EXPECT().GetByID(gomock.Any(), "nobody").Return(nil, &repositories.NotFoundError{Entity: "card", ID: "nobody"})

	_, err := c.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCatalog_GetManySkipsUnknown(t *testing.T) {
	repo := repomock.NewMockCardRepository(gomock.NewController(t))
	c := NewCatalog(repo, 16)

	repo.EXPECT().GetByID(gomock.Any(), "eren").Return(eren, nil)
	_, err := c.Get(context.Background(), "eren")
	require.NoError(t, err)

	repo.EXPECT().GetByIDs(gomock.Any(), []string{"armin", "gone"}).Return([]*models.Card{armin}, nil)

	got, err := c.GetMany(context.Background(), []string{"eren", "armin", "gone", "eren"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, eren, got["eren"])
	assert.Equal(t, armin, got["armin"])
}

func TestCatalog_ByTierExpires(t *testing.T) {
	repo := repomock.NewMockCardRepository(gomock.NewController(t))
	c := NewCatalog(repo, 16)
	now := time.Now()
	c.now = func() time.Time { return now }

	repo.EXPECT().GetByRarity(gomock.Any(), "common").Return([]*models.Card{armin}, nil).Times(2)

	for i := 0; i < 2; i++ {
		cards, err := c.ByTier(context.Background(), rarity.Common)
		require.NoError(t, err)
		assert.Equal(t, []*models.Card{armin}, cards)
	}

	now = now.Add(c.ttl + time.Second)
	_, err := c.ByTier(context.Background(), rarity.Common)
	require.NoError(t, err)

	// cached list entries also warm the single-card cache
	card, err := c.Get(context.Background(), "armin")
	require.NoError(t, err)
	assert.Equal(t, armin, card)
}

func TestCatalog_FindByName(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidates []*models.Card
		want       *models.Card
		wantErr    error
	}{
		{name: "exact wins over order", query: "mikasa ackerman", candidates: []*models.Card{eren, mikasa}, want: mikasa},
		{name: "fuzzy", query: "mkasa", candidates: []*models.Card{eren, mikasa}, want: mikasa},
		{name: "nothing", query: "reiner", wantErr: ErrCardNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomock.NewMockCardRepository(gomock.NewController(t))
			repo.EXPECT().SearchByName(gomock.Any(), tt.query, 25).Return(tt.candidates, nil)

			got, err := NewCatalog(repo, 16).FindByName(context.Background(), tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
