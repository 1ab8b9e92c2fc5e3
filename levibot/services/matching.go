package services

import (
	"errors"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

var ErrNoMatchingCard = errors.New("you don't own a card with that name")

// ownedNames implements fuzzy.Source over display names.
type ownedNames []*models.UserCard

func (o ownedNames) Len() int {
	return len(o)
}

func (o ownedNames) String(i int) string {
	return strings.ToLower(o[i].DisplayName())
}

// MatchOwnedCard picks the owned card a user meant by query. Cards rejected by
// keep are ignored. An exact name or nickname wins, then a partial name, then
// the best fuzzy match.
func MatchOwnedCard(owned []*models.UserCard, query string, keep func(*models.UserCard) bool) (*models.UserCard, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNoMatchingCard
	}

	candidates := make(ownedNames, 0, len(owned))
	for _, uc := range owned {
		if keep == nil || keep(uc) {
			candidates = append(candidates, uc)
		}
	}

	for _, uc := range candidates {
		if strings.EqualFold(uc.DisplayName(), query) || (uc.Card != nil && strings.EqualFold(uc.Card.Name, query)) {
			return uc, nil
		}
	}
	for _, uc := range candidates {
		if uc.Card != nil && spawn.MatchesName(uc.Card.Name, query) {
			return uc, nil
		}
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), candidates)
	if len(matches) == 0 {
		return nil, ErrNoMatchingCard
	}
	return candidates[matches[0].Index], nil
}

func notInDeck(uc *models.UserCard) bool {
	return !uc.InDeck
}

func inDeck(uc *models.UserCard) bool {
	return uc.InDeck
}
