package services

import (
	"testing"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOwnedCard(t *testing.T) {
	nick := ownedCard("n1", "alice", false, armin)
	nick.Nickname = "Coconut"
	owned := []*models.UserCard{
		ownedCard("e1", "alice", true, eren),
		ownedCard("m1", "alice", false, mikasa),
		nick,
	}

	tests := []struct {
		name    string
		query   string
		keep    func(*models.UserCard) bool
		want    string
		wantErr error
	}{
		{name: "exact name", query: "Eren Yeager", want: "e1"},
		{name: "nickname", query: "coconut", want: "n1"},
		{name: "catalog name behind nickname", query: "armin arlert", want: "n1"},
		{name: "partial", query: "mikasa", want: "m1"},
		{name: "fuzzy", query: "mkas", want: "m1"},
		{name: "filtered out", query: "eren", keep: notInDeck, wantErr: ErrNoMatchingCard},
		{name: "deck only", query: "eren", keep: inDeck, want: "e1"},
		{name: "blank", query: "  ", wantErr: ErrNoMatchingCard},
		{name: "no match", query: "zzzz", wantErr: ErrNoMatchingCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchOwnedCard(owned, tt.query, tt.keep)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestPaginate(t *testing.T) {
	cards := make([]*models.UserCard, 23)
	for i := range cards {
		cards[i] = &models.UserCard{ID: string(rune('a' + i))}
	}

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantCount int
	}{
		{name: "first", page: 1, wantPage: 1, wantCount: 10},
		{name: "last partial", page: 3, wantPage: 3, wantCount: 3},
		{name: "below range", page: 0, wantPage: 1, wantCount: 10},
		{name: "above range", page: 9, wantPage: 3, wantCount: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(cards, tt.page, 10)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, 3, p.Pages)
			assert.Equal(t, 23, p.Total)
			assert.Len(t, p.Cards, tt.wantCount)
		})
	}

	empty := Paginate(nil, 2, 10)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 1, empty.Pages)
	assert.Empty(t, empty.Cards)
}
