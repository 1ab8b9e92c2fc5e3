package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
)

var ErrUnknownLeaderboard = errors.New("unknown leaderboard")

type Profile struct {
	User      *models.User
	CardCount int
	Deck      []*models.UserCard
}

type CollectionPage struct {
	Cards []*models.UserCard
	Page  int
	Pages int
	Total int
}

// AccountService serves the read side of user accounts and the per-command
// bookkeeping.
type AccountService struct {
	users     repositories.UserRepository
	userCards repositories.UserCardRepository
}

func NewAccountService(users repositories.UserRepository, userCards repositories.UserCardRepository) *AccountService {
	return &AccountService{users: users, userCards: userCards}
}

// Touch records one command use and returns the updated account.
func (s *AccountService) Touch(ctx context.Context, userID, name, command string) (*models.User, error) {
	return s.users.RecordCommand(ctx, userID, name, command)
}

func (s *AccountService) Balance(ctx context.Context, userID, name string) (int64, error) {
	u, err := s.users.GetOrCreate(ctx, userID, name)
	if err != nil {
		return 0, err
	}
	return u.Balance, nil
}

func (s *AccountService) Profile(ctx context.Context, userID, name string) (*Profile, error) {
	u, err := s.users.GetOrCreate(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	count, err := s.userCards.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}
	deck, err := s.userCards.GetDeck(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	return &Profile{User: u, CardCount: count, Deck: knownCards(deck)}, nil
}

// Collection returns one page of the user's cards, deck cards first. Pages
// are 1-based and clamped to the valid range.
func (s *AccountService) Collection(ctx context.Context, userID string, page int) (*CollectionPage, error) {
	all, err := s.Cards(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Paginate(all, page, config.CardsPerPage), nil
}

// Cards returns the whole collection with catalog data attached. Cards whose
// catalog entry is gone are left out.
func (s *AccountService) Cards(ctx context.Context, userID string) ([]*models.UserCard, error) {
	all, err := s.userCards.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	return knownCards(all), nil
}

func Paginate(cards []*models.UserCard, page, perPage int) *CollectionPage {
	total := len(cards)
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	return &CollectionPage{Cards: cards[start:end], Page: page, Pages: pages, Total: total}
}

func (s *AccountService) Leaderboard(ctx context.Context, metric string) ([]repositories.LeaderboardEntry, error) {
	switch metric {
	case "", repositories.LeaderboardCards:
		metric = repositories.LeaderboardCards
	case repositories.LeaderboardBattle, repositories.LeaderboardCoins, repositories.LeaderboardLevel:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLeaderboard, metric)
	}
	return s.users.Leaderboard(ctx, metric, config.LeaderboardSize)
}

type Stats struct {
	User   *models.User
	Totals *repositories.Totals
}

func (s *AccountService) Stats(ctx context.Context, userID, name string) (*Stats, error) {
	u, err := s.users.GetOrCreate(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	totals, err := s.users.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load totals: %w", err)
	}
	return &Stats{User: u, Totals: totals}, nil
}

// Blocked reports whether userID is ignored by the bot. Unknown users are not.
func (s *AccountService) Blocked(ctx context.Context, userID string) (bool, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return u.IsBlocked, nil
}

// SetBlocked creates the account first so users can be blocked before they
// ever talk to the bot.
func (s *AccountService) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	if _, err := s.users.GetOrCreate(ctx, userID, ""); err != nil {
		return err
	}
	return s.users.SetBlocked(ctx, userID, blocked)
}

// OwnedCard finds the card userID meant by name anywhere in their collection.
func (s *AccountService) OwnedCard(ctx context.Context, userID, name string) (*models.UserCard, error) {
	all, err := s.Cards(ctx, userID)
	if err != nil {
		return nil, err
	}
	return MatchOwnedCard(all, name, nil)
}
