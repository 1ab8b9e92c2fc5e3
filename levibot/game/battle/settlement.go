package battle

import (
	"context"
	"errors"
	"fmt"

	"github.com/ellavondegurechaff/levibot/levibot/cardleveling"
)

var ErrInsufficientWager = errors.New("insufficient balance for wager")

// Settlement is everything that changes when a battle completes. It is
// applied as one unit by a Ledger.
type Settlement struct {
	BattleID string
	WinnerID string
	LoserID  string
	Wager    int64
	Result   *Result
	Progress []cardleveling.LevelingResult
}

// BalanceDelta returns the coin change the settlement applies to userID.
func (s *Settlement) BalanceDelta(userID string) int64 {
	switch userID {
	case s.WinnerID:
		return s.Wager
	case s.LoserID:
		return -s.Wager
	}
	return 0
}

// Ledger reads locked state and applies a settlement inside one storage
// transaction.
type Ledger interface {
	Balance(ctx context.Context, userID string) (int64, error)
	Progress(ctx context.Context, userCardIDs []string) ([]cardleveling.CardProgress, error)
	ApplyBattle(ctx context.Context, s *Settlement) error
}

type SettleInput struct {
	BattleID       string
	ChallengerID   string
	OpponentID     string
	Wager          int64
	ChallengerDeck []string
	OpponentDeck   []string
	Result         *Result
}

// Settle re-checks the loser's balance right before debiting, computes exp
// awards from the locked card state and applies everything through the
// ledger. Nothing is applied when the wager check fails.
func Settle(ctx context.Context, ledger Ledger, leveling *cardleveling.Service, in SettleInput) (*Settlement, error) {
	if in.Result == nil {
		return nil, fmt.Errorf("battle %s has no result", in.BattleID)
	}

	winnerID, loserID := in.ChallengerID, in.OpponentID
	winnerDeck, loserDeck := in.ChallengerDeck, in.OpponentDeck
	if in.Result.Winner == Opponent {
		winnerID, loserID = loserID, winnerID
		winnerDeck, loserDeck = loserDeck, winnerDeck
	}

	if in.Wager > 0 {
		for _, id := range []string{winnerID, loserID} {
			balance, err := ledger.Balance(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("failed to read balance: %w", err)
			}
			if balance < in.Wager {
				return nil, fmt.Errorf("%w: user %s has %d, needs %d", ErrInsufficientWager, id, balance, in.Wager)
			}
		}
	}

	winners, err := ledger.Progress(ctx, winnerDeck)
	if err != nil {
		return nil, fmt.Errorf("failed to load winner deck: %w", err)
	}
	losers, err := ledger.Progress(ctx, loserDeck)
	if err != nil {
		return nil, fmt.Errorf("failed to load loser deck: %w", err)
	}

	s := &Settlement{
		BattleID: in.BattleID,
		WinnerID: winnerID,
		LoserID:  loserID,
		Wager:    in.Wager,
		Result:   in.Result,
	}
	s.Progress = append(s.Progress, leveling.AwardBattle(winners, true)...)
	s.Progress = append(s.Progress, leveling.AwardBattle(losers, false)...)

	if err := ledger.ApplyBattle(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
