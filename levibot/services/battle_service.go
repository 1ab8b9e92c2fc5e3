package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/cardleveling"
	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
)

var (
	ErrSelfChallenge   = errors.New("you cannot battle yourself")
	ErrInvalidWager    = errors.New("wager must be zero or a positive number")
	ErrNoDeck          = errors.New("you need at least one card in your deck")
	ErrNoPendingBattle = errors.New("no pending battle challenge")
	ErrBattleTaken     = errors.New("battle was already handled")
)

type ChallengeRequest struct {
	RoomID         string
	ChallengerID   string
	ChallengerName string
	OpponentID     string
	OpponentName   string
	Wager          int64
}

// BattleOutcome describes an accepted challenge. A cancelled battle carries
// the reason and no settlement.
type BattleOutcome struct {
	Battle     *models.Battle
	Settlement *battle.Settlement
	Challenger []battle.Fighter
	Opponent   []battle.Fighter
	Cancelled  bool
	Reason     error
}

type BattleService struct {
	battles   repositories.BattleRepository
	userCards repositories.UserCardRepository
	users     repositories.UserRepository
	engine    *battle.Engine
	leveling  *cardleveling.Service
	settler   Settler
	window    time.Duration
	now       func() time.Time
}

func NewBattleService(
	battles repositories.BattleRepository,
	userCards repositories.UserCardRepository,
	users repositories.UserRepository,
	engine *battle.Engine,
	leveling *cardleveling.Service,
	settler Settler,
	window time.Duration,
) *BattleService {
	if window <= 0 {
		window = config.BattleWindow
	}
	return &BattleService{
		battles:   battles,
		userCards: userCards,
		users:     users,
		engine:    engine,
		leveling:  leveling,
		settler:   settler,
		window:    window,
		now:       time.Now,
	}
}

// Challenge opens a pending battle with the challenger's current deck frozen.
func (s *BattleService) Challenge(ctx context.Context, req ChallengeRequest) (*models.Battle, error) {
	if req.ChallengerID == req.OpponentID {
		return nil, ErrSelfChallenge
	}
	if req.Wager < 0 {
		return nil, ErrInvalidWager
	}

	challenger, err := s.users.GetOrCreate(ctx, req.ChallengerID, req.ChallengerName)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetOrCreate(ctx, req.OpponentID, req.OpponentName); err != nil {
		return nil, err
	}

	cards, err := s.userCards.GetDeck(ctx, req.ChallengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	if len(cards) == 0 {
		return nil, ErrNoDeck
	}
	if req.Wager > 0 && challenger.Balance < req.Wager {
		return nil, fmt.Errorf("%w: has %d, needs %d", battle.ErrInsufficientWager, challenger.Balance, req.Wager)
	}

	b := &models.Battle{
		ChallengerID:   req.ChallengerID,
		OpponentID:     req.OpponentID,
		RoomID:         req.RoomID,
		ChallengerDeck: cardIDs(cards),
		OpponentDeck:   []string{},
		Wager:          req.Wager,
		ExpiresAt:      s.now().Add(s.window),
	}
	if err := s.battles.Create(ctx, b); err != nil {
		return nil, err
	}

	slog.Info("Battle challenge created",
		slog.String("type", "sys"),
		slog.String("battle_id", b.ID),
		slog.String("challenger", b.ChallengerID),
		slog.String("opponent", b.OpponentID),
		slog.Int64("wager", b.Wager))
	return b, nil
}

func cardIDs(cards []*models.UserCard) []string {
	ids := make([]string, 0, len(cards))
	for _, uc := range cards {
		ids = append(ids, uc.ID)
	}
	return ids
}

// Accept runs the pending battle addressed to userID and settles it.
func (s *BattleService) Accept(ctx context.Context, userID string) (*BattleOutcome, error) {
	b, err := s.battles.GetPendingFor(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrNoPendingBattle
		}
		return nil, err
	}

	oppCards, err := s.userCards.GetDeck(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck: %w", err)
	}
	if len(oppCards) == 0 {
		return nil, ErrNoDeck
	}

	if b.Wager > 0 {
		for _, id := range []string{b.ChallengerID, b.OpponentID} {
			balance, err := s.users.GetBalance(ctx, id)
			if err != nil {
				return nil, err
			}
			if balance < b.Wager {
				reason := fmt.Errorf("%w: %s has %d, needs %d", battle.ErrInsufficientWager, id, balance, b.Wager)
				return s.cancel(ctx, b, models.BattlePending, reason)
			}
		}
	}

	started, err := s.battles.Start(ctx, b.ID, cardIDs(oppCards))
	if err != nil {
		return nil, err
	}
	if !started {
		return nil, ErrBattleTaken
	}
	b.Status = models.BattleActive
	b.OpponentDeck = cardIDs(oppCards)

	challengerCards, err := s.userCards.GetByIDs(ctx, b.ChallengerDeck)
	if err != nil {
		s.abort(ctx, b, err)
		return nil, fmt.Errorf("failed to load challenger deck: %w", err)
	}

	out := &BattleOutcome{
		Battle:     b,
		Challenger: fighters(challengerCards, b.ChallengerDeck, b.ChallengerID),
		Opponent:   fighters(oppCards, b.OpponentDeck, b.OpponentID),
	}

	result, err := s.engine.Simulate(out.Challenger, out.Opponent)
	if errors.Is(err, battle.ErrEmptyDeck) {
		return s.cancel(ctx, b, models.BattleActive, err)
	}
	if err != nil {
		s.abort(ctx, b, err)
		return nil, err
	}

	in := battle.SettleInput{
		BattleID:       b.ID,
		ChallengerID:   b.ChallengerID,
		OpponentID:     b.OpponentID,
		Wager:          b.Wager,
		ChallengerDeck: fighterIDs(out.Challenger),
		OpponentDeck:   fighterIDs(out.Opponent),
		Result:         result,
	}
	err = s.settler.SettleBattle(ctx, func(ctx context.Context, l battle.Ledger) error {
		var err error
		out.Settlement, err = battle.Settle(ctx, l, s.leveling, in)
		return err
	})
	if errors.Is(err, battle.ErrInsufficientWager) {
		return s.cancel(ctx, b, models.BattleActive, err)
	}
	if err != nil {
		s.abort(ctx, b, err)
		return nil, fmt.Errorf("failed to settle battle: %w", err)
	}

	b.Status = models.BattleCompleted
	b.WinnerID = out.Settlement.WinnerID
	b.Turns = result.Turns

	slog.Info("Battle completed",
		slog.String("type", "sys"),
		slog.String("battle_id", b.ID),
		slog.String("winner", b.WinnerID),
		slog.Int("rounds", result.Rounds),
		slog.Bool("timed_out", result.TimedOut))
	return out, nil
}

// fighters keeps the frozen deck order and drops cards that changed owner or
// are missing from the catalog.
func fighters(cards []*models.UserCard, order []string, ownerID string) []battle.Fighter {
	byID := make(map[string]*models.UserCard, len(cards))
	for _, uc := range cards {
		byID[uc.ID] = uc
	}

	out := make([]battle.Fighter, 0, len(order))
	for _, id := range order {
		uc, ok := byID[id]
		if !ok || uc.UserID != ownerID || uc.Card == nil {
			continue
		}
		c := uc.Card
		out = append(out, battle.NewFighter(uc.ID, uc.DisplayName(), c.Type, uc.Level, c.Attack, c.Defense, c.Speed))
		if len(out) == battle.MaxDeckSize {
			break
		}
	}
	return out
}

func fighterIDs(fs []battle.Fighter) []string {
	ids := make([]string, 0, len(fs))
	for _, f := range fs {
		ids = append(ids, f.OwnedCardID)
	}
	return ids
}

// releaseContext outlives the command deadline so a started battle is never
// left active because the caller gave up.
func releaseContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), config.BattleReleaseTimeout)
}

func (s *BattleService) cancel(ctx context.Context, b *models.Battle, from models.BattleStatus, reason error) (*BattleOutcome, error) {
	ctx, done := releaseContext(ctx)
	defer done()

	ok, err := s.battles.Transition(ctx, b.ID, from, models.BattleCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBattleTaken
	}
	b.Status = models.BattleCancelled

	slog.Info("Battle cancelled",
		slog.String("type", "sys"),
		slog.String("battle_id", b.ID),
		slog.String("reason", reason.Error()))
	return &BattleOutcome{Battle: b, Cancelled: true, Reason: reason}, nil
}

// abort releases an active battle after a collaborator failure so the pair
// can start over.
func (s *BattleService) abort(ctx context.Context, b *models.Battle, cause error) {
	ctx, done := releaseContext(ctx)
	defer done()

	if _, err := s.battles.Transition(ctx, b.ID, models.BattleActive, models.BattleCancelled); err != nil {
		slog.Error("Failed to release battle",
			slog.String("type", "sys"),
			slog.String("battle_id", b.ID),
			slog.Any("cause", cause),
			slog.Any("error", err))
	}
}

// Decline cancels the pending challenge addressed to userID.
func (s *BattleService) Decline(ctx context.Context, userID string) (*models.Battle, error) {
	b, err := s.battles.GetPendingFor(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, ErrNoPendingBattle
		}
		return nil, err
	}

	ok, err := s.battles.Transition(ctx, b.ID, models.BattlePending, models.BattleCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBattleTaken
	}
	b.Status = models.BattleCancelled
	return b, nil
}

func (s *BattleService) Sweep(ctx context.Context) ([]*models.Battle, error) {
	return s.battles.ExpireDue(ctx, s.now())
}
