package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// offlineDB renders queries without ever dialing postgres.
func offlineDB(t *testing.T) *bun.DB {
	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func render(t *testing.T, db *bun.DB, q *bun.UpdateQuery) string {
	b, err := q.AppendQuery(db.Formatter(), nil)
	require.NoError(t, err)
	return string(b)
}

var sweepTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBattleExpireQueryReleasesStaleActiveBattles(t *testing.T) {
	db := offlineDB(t)
	r := &battleRepository{BaseRepository: NewBaseRepository(db)}

	got := render(t, db, r.expireQuery(sweepTime))

	assert.Contains(t, got, `UPDATE "battles"`)
	assert.Contains(t, got, "status = 'cancelled'")
	assert.Contains(t, got, "status = 'pending'")
	assert.Contains(t, got, "expires_at <= "+db.Formatter().FormatQuery("?", sweepTime))
	assert.Contains(t, got, " OR ")
	assert.Contains(t, got, "status = 'active'")
	assert.Contains(t, got, "updated_at <= "+db.Formatter().FormatQuery("?", sweepTime.Add(-config.StaleBattleAfter)))
}

func TestBattleExpirePairQueryIsScopedToThePair(t *testing.T) {
	db := offlineDB(t)
	r := &battleRepository{BaseRepository: NewBaseRepository(db)}

	got := render(t, db, r.expirePairQuery(PairKey("bob", "alice"), sweepTime))

	assert.Contains(t, got, "status = 'pending'")
	assert.Contains(t, got, "pair_key = 'alice:bob'")
}

func TestTradeExpirePairQueryOnlyTouchesLapsedPending(t *testing.T) {
	db := offlineDB(t)
	r := &tradeRepository{BaseRepository: NewBaseRepository(db)}

	got := render(t, db, r.expirePairQuery(PairKey("alice", "bob"), sweepTime))

	assert.Contains(t, got, `UPDATE "trades"`)
	assert.Contains(t, got, "status = 'cancelled'")
	assert.Contains(t, got, "status = 'pending'")
	assert.Contains(t, got, "expires_at <= "+db.Formatter().FormatQuery("?", sweepTime))
	assert.Contains(t, got, "pair_key = 'alice:bob'")
	assert.NotContains(t, got, " OR ")
}
