package migration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories/mock"
)

type memorySource map[string][]bson.Raw

func (s memorySource) Each(_ context.Context, collection string, fn func(bson.Raw) error) error {
	for _, raw := range s[collection] {
		if err := fn(raw); err != nil {
			return err
		}
	}
	return nil
}

func docs(t *testing.T, vs ...any) []bson.Raw {
	t.Helper()
	out := make([]bson.Raw, 0, len(vs))
	for _, v := range vs {
		b, err := bson.Marshal(v)
		require.NoError(t, err)
		out = append(out, b)
	}
	return out
}

func TestMigratorRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	cards := mock.NewMockCardRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	userCards := mock.NewMockUserCardRepository(ctrl)
	ctx := context.Background()

	src := memorySource{
		"cards": docs(t,
			bson.M{"cardId": "levi", "name": "Levi", "rarity": "legendary"},
			bson.M{"cardId": "bad", "name": "Bad", "rarity": "mythic"},
			bson.M{"cardId": "eren", "name": "Eren"},
		),
		"users": docs(t,
			bson.M{"userId": "u1", "name": "Mikasa", "coins": 300},
			bson.M{"userId": "u2", "name": "Armin"},
			bson.M{"userId": "u3", "name": "Jean"},
		),
		"usercards": docs(t,
			bson.M{"_id": primitive.NewObjectID(), "userId": "u1", "cardId": "levi", "level": 3},
			bson.M{"_id": primitive.NewObjectID(), "userId": "u2", "cardId": "bad"},
		),
	}

	var written []*models.Card
	cards.EXPECT().BulkUpsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, batch []*models.Card) (int, error) {
		written = append(written, batch...)
		return len(batch), nil
	})
	users.EXPECT().BulkInsert(ctx, gomock.Len(2)).Return(nil)
	users.EXPECT().BulkInsert(ctx, gomock.Len(1)).Return(nil)
	cards.EXPECT().GetAll(ctx).Return([]*models.Card{{ID: "levi"}, {ID: "eren"}}, nil)
	userCards.EXPECT().BulkInsert(ctx, gomock.Len(1)).Return(nil)

	m := NewMigrator(src, cards, users, userCards)
	m.SetBatchSize(2)
	stats, err := m.Run(ctx)
	require.NoError(t, err)

	require.Len(t, written, 2)
	assert.Equal(t, "levi", written[0].ID)
	assert.Equal(t, 3, stats.Tables["cards"].Read)
	assert.Equal(t, 1, stats.Tables["cards"].Skipped)
	assert.Equal(t, 3, stats.Tables["users"].Written)
	assert.Equal(t, 1, stats.Tables["usercards"].Written)
	assert.Equal(t, 1, stats.Tables["usercards"].Skipped)
}

func TestReadDocuments(t *testing.T) {
	var buf bytes.Buffer
	for _, raw := range docs(t, bson.M{"n": 1}, bson.M{"n": 2}) {
		buf.Write(raw)
	}

	var got []int32
	err := readDocuments(context.Background(), &buf, func(raw bson.Raw) error {
		got = append(got, raw.Lookup("n").Int32())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, got)

	truncated := bytes.NewReader([]byte{0x20, 0, 0, 0, 1, 2})
	err = readDocuments(context.Background(), truncated, func(bson.Raw) error { return nil })
	assert.Error(t, err)

	bogus := bytes.NewReader([]byte{0x02, 0, 0, 0})
	err = readDocuments(context.Background(), bogus, func(bson.Raw) error { return nil })
	assert.ErrorContains(t, err, "invalid document length")
}

func TestLoadCardsJSON(t *testing.T) {
	cards, err := LoadCardsJSON(strings.NewReader(`[
		{"id": "Levi", "name": "Levi Ackerman", "anime": "Attack on Titan", "rarity": "legendary", "type": "attack", "attack": 95, "defense": 80, "speed": 99},
		{"id": "eren", "name": "Eren Yeager", "rarity": "rare"}
	]`))
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "levi", cards[0].ID)
	assert.Equal(t, 95, cards[0].Attack)
	assert.Equal(t, defaultStat, cards[1].Attack)
	assert.Equal(t, defaultCardType, cards[1].Type)

	_, err = LoadCardsJSON(strings.NewReader(`[{"id": "a", "name": "A"}, {"id": "A", "name": "B"}]`))
	assert.ErrorContains(t, err, "duplicate")

	_, err = LoadCardsJSON(strings.NewReader(`[{"id": "a", "name": "A", "rarity": "mythic"}]`))
	assert.ErrorIs(t, err, ErrBadRarity)
}
