// Package trade holds the negotiation rules and the all-or-nothing settlement
// plan for two-party trades.
package trade

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotParticipant    = errors.New("user is not part of this trade")
	ErrNotPending        = errors.New("trade is no longer pending")
	ErrSelfAccept        = errors.New("the initiator cannot accept their own trade")
	ErrEmptyTrade        = errors.New("trade is empty")
	ErrCardNotOwned      = errors.New("card is not owned by the offering user")
	ErrCardInDeck        = errors.New("card is in a battle deck")
	ErrAlreadyOffered    = errors.New("card is already offered")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrTermsChanged      = errors.New("trade offers changed")
)

type Offer struct {
	UserCardIDs []string
	Coins       int64
}

func (o Offer) Empty() bool {
	return len(o.UserCardIDs) == 0 && o.Coins == 0
}

func (o Offer) has(userCardID string) bool {
	for _, id := range o.UserCardIDs {
		if id == userCardID {
			return true
		}
	}
	return false
}

type Session struct {
	ID            string
	InitiatorID   string
	CounterpartID string
	Pending       bool
	Initiator     Offer
	Counterpart   Offer
}

// SameTerms reports whether both sessions offer exactly the same things.
func (s Session) SameTerms(o Session) bool {
	return s.ID == o.ID &&
		s.Initiator.Coins == o.Initiator.Coins &&
		s.Counterpart.Coins == o.Counterpart.Coins &&
		slices.Equal(s.Initiator.UserCardIDs, o.Initiator.UserCardIDs) &&
		slices.Equal(s.Counterpart.UserCardIDs, o.Counterpart.UserCardIDs)
}

func (s Session) Empty() bool {
	return s.Initiator.Empty() && s.Counterpart.Empty()
}

// OfferOf returns the offer belonging to userID.
func (s Session) OfferOf(userID string) (Offer, error) {
	switch userID {
	case s.InitiatorID:
		return s.Initiator, nil
	case s.CounterpartID:
		return s.Counterpart, nil
	}
	return Offer{}, ErrNotParticipant
}

// PartnerOf returns the other participant.
func (s Session) PartnerOf(userID string) string {
	if userID == s.InitiatorID {
		return s.CounterpartID
	}
	return s.InitiatorID
}

// OwnedCard is the live state of a card someone wants to offer.
type OwnedCard struct {
	ID      string
	OwnerID string
	InDeck  bool
}

func CanOfferCard(s Session, userID string, card OwnedCard) error {
	if !s.Pending {
		return ErrNotPending
	}
	if _, err := s.OfferOf(userID); err != nil {
		return err
	}
	if card.OwnerID != userID {
		return ErrCardNotOwned
	}
	if card.InDeck {
		return ErrCardInDeck
	}
	if s.Initiator.has(card.ID) || s.Counterpart.has(card.ID) {
		return ErrAlreadyOffered
	}
	return nil
}

// CanOfferCoins validates a coin pledge. The amount replaces any earlier
// pledge from the same user.
func CanOfferCoins(s Session, userID string, amount, balance int64) error {
	if !s.Pending {
		return ErrNotPending
	}
	if _, err := s.OfferOf(userID); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if balance < amount {
		return fmt.Errorf("%w: has %d, needs %d", ErrInsufficientFunds, balance, amount)
	}
	return nil
}

func CanAccept(s Session, userID string) error {
	if !s.Pending {
		return ErrNotPending
	}
	if userID == s.InitiatorID {
		return ErrSelfAccept
	}
	if userID != s.CounterpartID {
		return ErrNotParticipant
	}
	if s.Empty() {
		return ErrEmptyTrade
	}
	return nil
}

// Holdings is the locked state a settlement is validated against.
type Holdings struct {
	Balances map[string]int64
	// Owners maps owned card ids to their current owner.
	Owners map[string]string
}

type CardMove struct {
	UserCardID string
	From       string
	To         string
}

type Settlement struct {
	TradeID string
	Cards   []CardMove
	// Deltas are the net coin changes per user.
	Deltas map[string]int64
}

// Plan validates the session against fresh holdings and returns the full set
// of mutations. It returns an error, and no plan, if anything drifted.
func Plan(s Session, h Holdings) (*Settlement, error) {
	if s.Empty() {
		return nil, ErrEmptyTrade
	}

	sides := []struct {
		from  string
		to    string
		offer Offer
	}{
		{from: s.InitiatorID, to: s.CounterpartID, offer: s.Initiator},
		{from: s.CounterpartID, to: s.InitiatorID, offer: s.Counterpart},
	}

	plan := &Settlement{TradeID: s.ID, Deltas: map[string]int64{}}
	for _, side := range sides {
		if side.offer.Coins > 0 && h.Balances[side.from] < side.offer.Coins {
			return nil, fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientFunds, side.from, h.Balances[side.from], side.offer.Coins)
		}
		for _, id := range side.offer.UserCardIDs {
			if h.Owners[id] != side.from {
				return nil, fmt.Errorf("%w: %s", ErrCardNotOwned, id)
			}
			plan.Cards = append(plan.Cards, CardMove{UserCardID: id, From: side.from, To: side.to})
		}
		if side.offer.Coins > 0 {
			plan.Deltas[side.from] -= side.offer.Coins
			plan.Deltas[side.to] += side.offer.Coins
		}
	}

	return plan, nil
}

// Ledger locks and reads the state a trade touches and applies the plan, all
// inside one storage transaction.
type Ledger interface {
	// Session locks the trade and returns its current terms.
	Session(ctx context.Context, tradeID string) (Session, error)
	Holdings(ctx context.Context, s Session) (Holdings, error)
	ApplyTrade(ctx context.Context, plan *Settlement) error
}

// Settle validates and applies the trade userID accepted. seen is the
// session userID was shown; if the locked trade offers anything else, or can
// no longer be accepted, nothing is applied.
func Settle(ctx context.Context, ledger Ledger, seen Session, userID string) (*Settlement, error) {
	s, err := ledger.Session(ctx, seen.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock trade: %w", err)
	}
	if err := CanAccept(s, userID); err != nil {
		return nil, err
	}
	if !s.SameTerms(seen) {
		return nil, ErrTermsChanged
	}

	h, err := ledger.Holdings(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to load trade holdings: %w", err)
	}

	plan, err := Plan(s, h)
	if err != nil {
		return nil, err
	}

	if err := ledger.ApplyTrade(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
