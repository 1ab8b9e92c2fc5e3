// Package deck keeps a user's battle deck dense: positions are always
// 0..n-1 with n at most MaxSize.
package deck

import (
	"context"
	"errors"
	"sort"
)

const MaxSize = 6

var (
	ErrDeckFull      = errors.New("deck is full")
	ErrAlreadyInDeck = errors.New("card is already in the deck")
	ErrNotInDeck     = errors.New("card is not in the deck")
)

type Slot struct {
	UserCardID string
	Position   int
}

func Sorted(slots []Slot) []Slot {
	out := append([]Slot(nil), slots...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func Contains(slots []Slot, userCardID string) bool {
	for _, s := range slots {
		if s.UserCardID == userCardID {
			return true
		}
	}
	return false
}

// Add returns the slot the card should take.
func Add(slots []Slot, userCardID string) (Slot, error) {
	if Contains(slots, userCardID) {
		return Slot{}, ErrAlreadyInDeck
	}
	if len(slots) >= MaxSize {
		return Slot{}, ErrDeckFull
	}

	taken := make(map[int]bool, len(slots))
	for _, s := range slots {
		taken[s.Position] = true
	}
	pos := 0
	for taken[pos] {
		pos++
	}
	return Slot{UserCardID: userCardID, Position: pos}, nil
}

// Remove drops the card and returns the slots whose position changed. Every
// card above the removed position moves down by exactly one.
func Remove(slots []Slot, userCardID string) (Slot, []Slot, error) {
	var removed *Slot
	for i := range slots {
		if slots[i].UserCardID == userCardID {
			removed = &slots[i]
			break
		}
	}
	if removed == nil {
		return Slot{}, nil, ErrNotInDeck
	}

	var shifted []Slot
	for _, s := range Sorted(slots) {
		if s.Position > removed.Position {
			shifted = append(shifted, Slot{UserCardID: s.UserCardID, Position: s.Position - 1})
		}
	}
	return *removed, shifted, nil
}

// Compact renumbers the remaining slots to 0..n-1 keeping their order. It is
// used after cards leave a deck outside of Remove, e.g. on trade transfer.
func Compact(slots []Slot) []Slot {
	out := Sorted(slots)
	for i := range out {
		out[i].Position = i
	}
	return out
}

// Ledger locks and rewrites one user's deck inside a storage transaction.
type Ledger interface {
	// LockDeck returns the user's slots with their rows locked.
	LockDeck(ctx context.Context, userID string) ([]Slot, error)
	// LockOwnedCard fails unless userID still owns the card.
	LockOwnedCard(ctx context.Context, userID, userCardID string) error
	// WriteSlots stores positions in the given order.
	WriteSlots(ctx context.Context, slots []Slot) error
	// ClearSlots takes the given cards out of the deck, or all of them when
	// ids is empty, and reports how many left.
	ClearSlots(ctx context.Context, userID string, ids []string) (int, error)
}
