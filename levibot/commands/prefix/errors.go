package prefix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/economy/utils"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/ellavondegurechaff/levibot/levibot/game/deck"
	"github.com/ellavondegurechaff/levibot/levibot/game/trade"
	"github.com/ellavondegurechaff/levibot/levibot/services"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

var replies = []struct {
	err  error
	text string
}{
	{spawn.ErrNoActiveSpawn, "There's no character to catch right now!"},
	{spawn.ErrWrongGuess, "That's not its name. Look closer."},
	{spawn.ErrSpawnActive, "Failed to spawn a card. There might be an active spawn already."},
	{spawn.ErrCooldown, "Cards just spawned here. Give it a moment."},
	{errGroupOnly, "This command can only be used in group chats where card spawning happens."},
	{errBotTarget, "Bots don't play cards. Pick a real opponent."},
	{errNotMember, "That user isn't in this group."},

	{repositories.ErrAlreadyPending, "You two already have an open battle or trade. Finish that first."},
	{battle.ErrInsufficientWager, "One of you can't cover that wager."},
	{utils.ErrInsufficientBalance, "You don't have enough coins for that."},
	{trade.ErrInsufficientFunds, "You don't have enough coins for that."},

	{deck.ErrDeckFull, "Your deck is full. Six cards, no more."},
	{deck.ErrAlreadyInDeck, "That card is already in your deck."},
	{deck.ErrNotInDeck, "That card isn't in your deck."},

	{trade.ErrCardInDeck, "That card is in your battle deck. Remove it from the deck first."},
	{trade.ErrAlreadyOffered, "That card is already on the table."},
	{trade.ErrInvalidAmount, "The amount has to be a positive number."},
	{trade.ErrSelfAccept, "You can't accept your own trade. Wait for the other side."},
	{trade.ErrEmptyTrade, "Nobody has offered anything yet."},
	{trade.ErrNotPending, "Too late. That trade is already closed."},
	{trade.ErrTermsChanged, "The offers just changed. Check the trade again before accepting."},
	{trade.ErrCardNotOwned, "That card isn't yours to offer."},
	{trade.ErrNotParticipant, "That trade has nothing to do with you."},

	{services.ErrBattleTaken, "Too late. That battle was already handled."},
	{services.ErrNoMatchingCard, "You don't own a card with that name."},
	{services.ErrCardNotFound, "No card goes by that name."},
	{services.ErrUnknownPack, "That pack doesn't exist. Check the shop."},
	{services.ErrUnknownLeaderboard, "Leaderboards: cards, battle, coins, level."},
}

var plainErrors = []error{
	services.ErrSelfChallenge,
	services.ErrInvalidWager,
	services.ErrNoDeck,
	services.ErrNoPendingBattle,
	services.ErrSelfTrade,
	services.ErrNoOpenTrade,
}

// denial turns an expected failure into the message shown to the user.
// Anything else is left for the caller to log.
func denial(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var usage usageError
	if errors.As(err, &usage) {
		return "Use " + string(usage), true
	}

	var cooldown *services.CooldownError
	if errors.As(err, &cooldown) {
		return fmt.Sprintf("%s. Come back in %s.", sentence(cooldown.Err.Error()), formatWait(cooldown.Remaining)), true
	}

	for _, r := range replies {
		if errors.Is(err, r.err) {
			return r.text, true
		}
	}
	for _, e := range plainErrors {
		if errors.Is(err, e) {
			return sentence(e.Error()) + ".", true
		}
	}
	return "", false
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
