package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleErrorWithID(t *testing.T) {
	br := &BaseRepository{}

	assert.NoError(t, br.HandleError("get", "card", nil))

	err := br.HandleErrorWithID("get", "card", "levi", sql.ErrNoRows)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "card levi not found")

	boom := errors.New("boom")
	err = br.HandleError("update", "user", boom)
	assert.False(t, IsNotFound(err))
	assert.ErrorIs(t, err, boom)
	var re *RepositoryError
	assert.ErrorAs(t, err, &re)
	assert.Equal(t, "update", re.Operation)
}

func TestConflictErrorUnwrapsToAlreadyPending(t *testing.T) {
	err := error(&ConflictError{Entity: "trade", Field: "pair", Value: "a:b"})
	assert.ErrorIs(t, err, ErrAlreadyPending)
	assert.False(t, IsUniqueViolation(err))
}

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("bob", "alice"), PairKey("alice", "bob"))
	assert.Equal(t, "alice:bob", PairKey("bob", "alice"))
}
