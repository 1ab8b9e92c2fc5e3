package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDeck() []Slot {
	return []Slot{
		{UserCardID: "a", Position: 0},
		{UserCardID: "b", Position: 1},
		{UserCardID: "c", Position: 2},
		{UserCardID: "d", Position: 3},
		{UserCardID: "e", Position: 4},
		{UserCardID: "f", Position: 5},
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		slots   []Slot
		card    string
		want    int
		wantErr error
	}{
		{name: "empty deck", slots: nil, card: "a", want: 0},
		{name: "appends", slots: fullDeck()[:3], card: "z", want: 3},
		{name: "full", slots: fullDeck(), card: "z", wantErr: ErrDeckFull},
		{name: "duplicate", slots: fullDeck()[:2], card: "b", wantErr: ErrAlreadyInDeck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.slots, tt.card)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Position)
			assert.Equal(t, tt.card, got.UserCardID)
		})
	}
}

func TestRemoveShiftsDown(t *testing.T) {
	for k := 0; k < MaxSize; k++ {
		slots := fullDeck()
		removed, shifted, err := Remove(slots, slots[k].UserCardID)
		require.NoError(t, err)
		assert.Equal(t, k, removed.Position)
		assert.Len(t, shifted, MaxSize-1-k)

		after := map[string]int{}
		for _, s := range slots {
			if s.UserCardID != removed.UserCardID {
				after[s.UserCardID] = s.Position
			}
		}
		for _, s := range shifted {
			assert.Equal(t, after[s.UserCardID]-1, s.Position)
			after[s.UserCardID] = s.Position
		}

		seen := map[int]bool{}
		for _, pos := range after {
			assert.False(t, seen[pos], "duplicate position %d", pos)
			seen[pos] = true
			assert.Less(t, pos, MaxSize-1)
		}
		assert.Len(t, seen, MaxSize-1)
	}
}

func TestRemoveMissing(t *testing.T) {
	_, _, err := Remove(fullDeck(), "zz")
	assert.ErrorIs(t, err, ErrNotInDeck)
}

func TestCompact(t *testing.T) {
	got := Compact([]Slot{{UserCardID: "x", Position: 4}, {UserCardID: "y", Position: 1}})
	assert.Equal(t, []Slot{{UserCardID: "y", Position: 0}, {UserCardID: "x", Position: 1}}, got)
}
