package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/economy/utils"
	"github.com/ellavondegurechaff/levibot/levibot/game/trade"
)

var (
	ErrSelfTrade   = errors.New("you cannot trade with yourself")
	ErrNoOpenTrade = errors.New("no open trade")
)

type TradeRequest struct {
	RoomID          string
	InitiatorID     string
	InitiatorName   string
	CounterpartID   string
	CounterpartName string
}

// TradeView is a trade with its offered cards resolved. Offered ids that no
// longer resolve are left out.
type TradeView struct {
	Trade            *models.Trade
	InitiatorCards   []*models.UserCard
	CounterpartCards []*models.UserCard
}

type TradeOutcome struct {
	Trade      *models.Trade
	Settlement *trade.Settlement
	Cancelled  bool
	Reason     error
}

type TradeService struct {
	trades    repositories.TradeRepository
	userCards repositories.UserCardRepository
	users     repositories.UserRepository
	settler   Settler
	window    time.Duration
	now       func() time.Time
}

func NewTradeService(
	trades repositories.TradeRepository,
	userCards repositories.UserCardRepository,
	users repositories.UserRepository,
	settler Settler,
	window time.Duration,
) *TradeService {
	if window <= 0 {
		window = config.TradeWindow
	}
	return &TradeService{
		trades:    trades,
		userCards: userCards,
		users:     users,
		settler:   settler,
		window:    window,
		now:       time.Now,
	}
}

func (s *TradeService) Start(ctx context.Context, req TradeRequest) (*models.Trade, error) {
	if req.InitiatorID == req.CounterpartID {
		return nil, ErrSelfTrade
	}
	if _, err := s.users.GetOrCreate(ctx, req.InitiatorID, req.InitiatorName); err != nil {
		return nil, err
	}
	if _, err := s.users.GetOrCreate(ctx, req.CounterpartID, req.CounterpartName); err != nil {
		return nil, err
	}

	t := &models.Trade{
		InitiatorID:   req.InitiatorID,
		CounterpartID: req.CounterpartID,
		RoomID:        req.RoomID,
		ExpiresAt:     s.now().Add(s.window),
	}
	if err := s.trades.Create(ctx, t); err != nil {
		return nil, err
	}

	slog.Info("Trade opened",
		slog.String("type", "sys"),
		slog.String("trade_id", t.ID),
		slog.String("initiator", t.InitiatorID),
		slog.String("counterpart", t.CounterpartID))
	return t, nil
}

func (s *TradeService) open(ctx context.Context, userID string) (*models.Trade, error) {
	t, err := s.trades.GetOpenFor(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrNoOpenTrade
		}
		return nil, err
	}
	return t, nil
}

// incoming prefers a trade offered to userID over one they opened, so an
// initiator of another trade can still accept.
func (s *TradeService) incoming(ctx context.Context, userID string) (*models.Trade, error) {
	t, err := s.trades.GetIncomingFor(ctx, userID)
	if err == nil {
		return t, nil
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}
	return s.open(ctx, userID)
}

// OfferCard adds the named card to userID's side of their open trade.
func (s *TradeService) OfferCard(ctx context.Context, userID, name string) (*models.Trade, *models.UserCard, error) {
	t, err := s.open(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	owned, err := s.userCards.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load collection: %w", err)
	}
	owned = knownCards(owned)

	uc, err := MatchOwnedCard(owned, name, notInDeck)
	if errors.Is(err, ErrNoMatchingCard) {
		if _, derr := MatchOwnedCard(owned, name, inDeck); derr == nil {
			return nil, nil, trade.ErrCardInDeck
		}
	}
	if err != nil {
		return nil, nil, err
	}

	t, err = s.trades.Mutate(ctx, t.ID, func(ctx context.Context, tx bun.Tx, t *models.Trade) error {
		var live models.UserCard
		err := tx.NewSelect().
			Model(&live).
			Column("id", "user_id", "in_deck").
			Where("id = ?", uc.ID).
			For("SHARE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return trade.ErrCardNotOwned
			}
			return fmt.Errorf("failed to load offered card: %w", err)
		}

		card := trade.OwnedCard{ID: live.ID, OwnerID: live.UserID, InDeck: live.InDeck}
		if err := trade.CanOfferCard(t.Session(), userID, card); err != nil {
			return err
		}

		if userID == t.InitiatorID {
			t.InitiatorCards = append(t.InitiatorCards, uc.ID)
		} else {
			t.CounterpartCards = append(t.CounterpartCards, uc.ID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return t, uc, nil
}

// OfferCoins sets userID's coin pledge, replacing any earlier one.
func (s *TradeService) OfferCoins(ctx context.Context, userID string, amount int64) (*models.Trade, error) {
	if amount <= 0 {
		return nil, trade.ErrInvalidAmount
	}

	t, err := s.open(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.trades.Mutate(ctx, t.ID, func(ctx context.Context, tx bun.Tx, t *models.Trade) error {
		var balance int64
		err := tx.NewSelect().
			Model((*models.User)(nil)).
			Column("balance").
			Where("id = ?", userID).
			Scan(ctx, &balance)
		if err != nil {
			return fmt.Errorf("failed to read balance: %w", err)
		}

		if err := trade.CanOfferCoins(t.Session(), userID, amount, balance); err != nil {
			return err
		}

		if userID == t.InitiatorID {
			t.InitiatorCoins = amount
		} else {
			t.CounterpartCoins = amount
		}
		return nil
	})
}

func (s *TradeService) View(ctx context.Context, userID string) (*TradeView, error) {
	t, err := s.open(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := append(append([]string(nil), t.InitiatorCards...), t.CounterpartCards...)
	cards, err := s.userCards.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load offered cards: %w", err)
	}
	byID := make(map[string]*models.UserCard, len(cards))
	for _, uc := range knownCards(cards) {
		byID[uc.ID] = uc
	}

	view := &TradeView{Trade: t}
	for _, id := range t.InitiatorCards {
		if uc, ok := byID[id]; ok {
			view.InitiatorCards = append(view.InitiatorCards, uc)
		}
	}
	for _, id := range t.CounterpartCards {
		if uc, ok := byID[id]; ok {
			view.CounterpartCards = append(view.CounterpartCards, uc)
		}
	}
	return view, nil
}

// Accept settles the trade offered to userID, or their own open trade when
// nothing is incoming. Only the counterpart may accept. Offers edited since
// the read leave the trade open; holdings that no longer cover the offers
// cancel it. Either way nothing moves.
func (s *TradeService) Accept(ctx context.Context, userID string) (*TradeOutcome, error) {
	t, err := s.incoming(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := t.Session()
	if err := trade.CanAccept(session, userID); err != nil {
		return nil, err
	}

	out := &TradeOutcome{Trade: t}
	err = s.settler.SettleTrade(ctx, func(ctx context.Context, l trade.Ledger) error {
		var err error
		out.Settlement, err = trade.Settle(ctx, l, session, userID)
		return err
	})
	switch {
	case err == nil:
		t.Status = models.TradeCompleted
		slog.Info("Trade completed",
			slog.String("type", "sys"),
			slog.String("trade_id", t.ID),
			slog.Int("cards", len(out.Settlement.Cards)))
		return out, nil
	case errors.Is(err, trade.ErrNotPending), errors.Is(err, trade.ErrTermsChanged):
		return nil, err
	case isTradeDrift(err):
		return s.cancel(ctx, t, err)
	default:
		if _, cerr := s.cancel(ctx, t, err); cerr != nil {
			slog.Error("Failed to cancel trade after settlement error",
				slog.String("type", "sys"),
				slog.String("trade_id", t.ID),
				slog.Any("error", cerr))
		}
		return nil, fmt.Errorf("failed to settle trade: %w", err)
	}
}

// isTradeDrift reports validation failures against the locked state.
func isTradeDrift(err error) bool {
	return errors.Is(err, trade.ErrInsufficientFunds) ||
		errors.Is(err, trade.ErrCardNotOwned) ||
		errors.Is(err, utils.ErrInsufficientBalance) ||
		errors.Is(err, utils.ErrCardNotOwned)
}

func (s *TradeService) cancel(ctx context.Context, t *models.Trade, reason error) (*TradeOutcome, error) {
	ok, err := s.trades.Transition(ctx, t.ID, models.TradePending, models.TradeCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, trade.ErrNotPending
	}
	t.Status = models.TradeCancelled

	slog.Info("Trade cancelled",
		slog.String("type", "sys"),
		slog.String("trade_id", t.ID),
		slog.String("reason", reason.Error()))
	return &TradeOutcome{Trade: t, Cancelled: true, Reason: reason}, nil
}

// Decline cancels the open trade; either party may decline.
func (s *TradeService) Decline(ctx context.Context, userID string) (*models.Trade, error) {
	t, err := s.open(ctx, userID)
	if err != nil {
		return nil, err
	}

	ok, err := s.trades.Transition(ctx, t.ID, models.TradePending, models.TradeCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, trade.ErrNotPending
	}
	t.Status = models.TradeCancelled
	return t, nil
}

func (s *TradeService) Sweep(ctx context.Context) ([]*models.Trade, error) {
	return s.trades.ExpireDue(ctx, s.now())
}
