package prefix

import (
	"context"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/services"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

type Spawner interface {
	OnMessage(ctx context.Context, roomID string) (*spawn.Spawned, error)
	Force(ctx context.Context, roomID string, card *models.Card) (*spawn.Spawned, error)
	Catch(ctx context.Context, roomID, userID, userName, guess string) (*spawn.Caught, error)
}

type Battles interface {
	Challenge(ctx context.Context, req services.ChallengeRequest) (*models.Battle, error)
	Accept(ctx context.Context, userID string) (*services.BattleOutcome, error)
	Decline(ctx context.Context, userID string) (*models.Battle, error)
}

type Trades interface {
	Start(ctx context.Context, req services.TradeRequest) (*models.Trade, error)
	OfferCard(ctx context.Context, userID, name string) (*models.Trade, *models.UserCard, error)
	OfferCoins(ctx context.Context, userID string, amount int64) (*models.Trade, error)
	View(ctx context.Context, userID string) (*services.TradeView, error)
	Accept(ctx context.Context, userID string) (*services.TradeOutcome, error)
	Decline(ctx context.Context, userID string) (*models.Trade, error)
}

type Decks interface {
	View(ctx context.Context, userID string) ([]*models.UserCard, error)
	Add(ctx context.Context, userID, name string) (*models.UserCard, error)
	Remove(ctx context.Context, userID, name string) (*models.UserCard, error)
	Clear(ctx context.Context, userID string) (int, error)
}

type Economy interface {
	BuyPack(ctx context.Context, userID, userName, packKey, anime string) (*services.PackResult, error)
	ClaimDaily(ctx context.Context, userID, userName string) (*services.DailyResult, error)
	Train(ctx context.Context, userID, userName string) (*services.TrainingResult, error)
}

type Accounts interface {
	Touch(ctx context.Context, userID, name, command string) (*models.User, error)
	Blocked(ctx context.Context, userID string) (bool, error)
	SetBlocked(ctx context.Context, userID string, blocked bool) error
	Balance(ctx context.Context, userID, name string) (int64, error)
	Profile(ctx context.Context, userID, name string) (*services.Profile, error)
	Stats(ctx context.Context, userID, name string) (*services.Stats, error)
	Collection(ctx context.Context, userID string, page int) (*services.CollectionPage, error)
	OwnedCard(ctx context.Context, userID, name string) (*models.UserCard, error)
	Leaderboard(ctx context.Context, metric string) ([]repositories.LeaderboardEntry, error)
}

type Catalog interface {
	FindByName(ctx context.Context, name string) (*models.Card, error)
}

type Renderer interface {
	Render(ctx context.Context, card *models.Card, uc *models.UserCard) ([]byte, error)
}

var (
	_ Spawner  = (*spawn.Engine)(nil)
	_ Battles  = (*services.BattleService)(nil)
	_ Trades   = (*services.TradeService)(nil)
	_ Decks    = (*services.DeckService)(nil)
	_ Economy  = (*services.EconomyService)(nil)
	_ Accounts = (*services.AccountService)(nil)
	_ Catalog  = (*services.Catalog)(nil)
	_ Renderer = (*services.CardRenderer)(nil)
)
