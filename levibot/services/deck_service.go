package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/game/deck"
)

type DeckService struct {
	settler   Settler
	userCards repositories.UserCardRepository
}

func NewDeckService(settler Settler, userCards repositories.UserCardRepository) *DeckService {
	return &DeckService{settler: settler, userCards: userCards}
}

// View returns the deck ordered by slot. Cards missing from the catalog are
// left out.
func (s *DeckService) View(ctx context.Context, userID string) ([]*models.UserCard, error) {
	cards, err := s.userCards.GetDeck(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	return knownCards(cards), nil
}

func knownCards(cards []*models.UserCard) []*models.UserCard {
	out := cards[:0:0]
	for _, uc := range cards {
		if uc.Card != nil {
			out = append(out, uc)
		}
	}
	return out
}

// Add puts the named card into the first free slot.
func (s *DeckService) Add(ctx context.Context, userID, name string) (*models.UserCard, error) {
	owned, err := s.userCards.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	owned = knownCards(owned)

	uc, err := MatchOwnedCard(owned, name, notInDeck)
	if errors.Is(err, ErrNoMatchingCard) {
		if _, derr := MatchOwnedCard(owned, name, inDeck); derr == nil {
			return nil, deck.ErrAlreadyInDeck
		}
	}
	if err != nil {
		return nil, err
	}

	err = s.settler.EditDeck(ctx, func(ctx context.Context, l deck.Ledger) error {
		slots, err := l.LockDeck(ctx, userID)
		if err != nil {
			return err
		}
		if err := l.LockOwnedCard(ctx, userID, uc.ID); err != nil {
			return err
		}

		slot, err := deck.Add(slots, uc.ID)
		if err != nil {
			return err
		}
		if err := l.WriteSlots(ctx, []deck.Slot{slot}); err != nil {
			return err
		}

		pos := slot.Position
		uc.InDeck, uc.DeckPosition = true, &pos
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc, nil
}

// Remove takes the named card out of the deck; every card above it moves
// down one slot.
func (s *DeckService) Remove(ctx context.Context, userID, name string) (*models.UserCard, error) {
	cards, err := s.userCards.GetDeck(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}

	uc, err := MatchOwnedCard(knownCards(cards), name, nil)
	if err != nil {
		return nil, deck.ErrNotInDeck
	}

	err = s.settler.EditDeck(ctx, func(ctx context.Context, l deck.Ledger) error {
		slots, err := l.LockDeck(ctx, userID)
		if err != nil {
			return err
		}

		_, shifted, err := deck.Remove(slots, uc.ID)
		if err != nil {
			return err
		}
		if _, err := l.ClearSlots(ctx, userID, []string{uc.ID}); err != nil {
			return err
		}
		// shifted is ascending, so each target slot is already free
		return l.WriteSlots(ctx, shifted)
	})
	if err != nil {
		return nil, err
	}

	uc.InDeck, uc.DeckPosition = false, nil
	return uc, nil
}

func (s *DeckService) Clear(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.settler.EditDeck(ctx, func(ctx context.Context, l deck.Ledger) error {
		var err error
		n, err = l.ClearSlots(ctx, userID, nil)
		return err
	})
	return n, err
}
