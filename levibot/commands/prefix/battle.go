package prefix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/ellavondegurechaff/levibot/levibot/handlers"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	"github.com/ellavondegurechaff/levibot/levibot/services"
)

const shownTurns = 10

var (
	errBotTarget = errors.New("bots don't play cards")
	errNotMember = errors.New("that user isn't in this group")
)

// target resolves the mentioned user a command is aimed at and returns the
// remaining arguments.
func (r *Router) target(ctx context.Context, msg messenger.IncomingMessage, args []string, usage string) (messenger.Member, []string, error) {
	var (
		member messenger.Member
		found  bool
		rest   []string
	)
	for i, arg := range args {
		if id, ok := messenger.ParseMention(arg); ok && !found {
			member, found = messenger.Member{ID: id, Name: id}, true
			rest = append(append(rest, args[:i]...), args[i+1:]...)
			break
		}
	}
	if !found && len(msg.Mentions) > 0 {
		member, found, rest = msg.Mentions[0], true, args
	}
	if !found {
		return member, nil, r.usage(usage)
	}
	for _, m := range msg.Mentions {
		if m.ID == member.ID {
			member = m
		}
	}

	if msg.IsGroup && msg.GroupID != "" {
		members, err := r.Messenger.GetGroupMembers(ctx, msg.GroupID)
		if err != nil {
			slog.Warn("Failed to list group members",
				slog.String("type", "sys"),
				slog.String("group_id", msg.GroupID),
				slog.Any("error", err))
		} else {
			inGroup := false
			for _, m := range members {
				if m.ID == member.ID {
					member, inGroup = m, true
					break
				}
			}
			if !inGroup {
				return member, nil, errNotMember
			}
		}
	}
	if member.Bot {
		return member, nil, errBotTarget
	}
	return member, rest, nil
}

func (r *Router) battleCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	opponent, rest, err := r.target(ctx, msg, e.Args, "battle @user [wager]")
	if err != nil {
		return err
	}

	var wager int64
	if len(rest) > 0 {
		if wager, err = strconv.ParseInt(rest[0], 10, 64); err != nil || wager < 0 {
			return services.ErrInvalidWager
		}
	}

	b, err := r.Battles.Challenge(ctx, services.ChallengeRequest{
		RoomID:         msg.RoomID,
		ChallengerID:   msg.SenderID,
		ChallengerName: msg.SenderName,
		OpponentID:     opponent.ID,
		OpponentName:   opponent.Name,
		Wager:          wager,
	})
	if err != nil {
		return err
	}

	stake := ""
	if b.Wager > 0 {
		stake = fmt.Sprintf(" for %d coins", b.Wager)
	}
	return r.say(ctx, msg,
		fmt.Sprintf("⚔️ %s has challenged %s to a battle%s!\n%s, use %saccept to fight or %sdecline to refuse. The challenge expires in %s.",
			messenger.Mention(msg.SenderID), messenger.Mention(opponent.ID), stake,
			messenger.Mention(opponent.ID), r.Prefix, r.Prefix, formatWait(time.Until(b.ExpiresAt))),
		msg.SenderID, opponent.ID)
}

// acceptCmd settles a pending battle first, then an open trade.
func (r *Router) acceptCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	out, err := r.Battles.Accept(ctx, msg.SenderID)
	switch {
	case err == nil:
		return r.reportBattle(ctx, msg, out)
	case !errors.Is(err, services.ErrNoPendingBattle):
		return err
	}

	tout, err := r.Trades.Accept(ctx, msg.SenderID)
	if errors.Is(err, services.ErrNoOpenTrade) {
		return r.say(ctx, msg, "You have no pending battle or trade to accept.")
	}
	if err != nil {
		return err
	}
	return r.reportTrade(ctx, msg, tout)
}

func (r *Router) declineCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	b, err := r.Battles.Decline(ctx, msg.SenderID)
	switch {
	case err == nil:
		r.Metrics.IncBattle("declined")
		return r.say(ctx, msg,
			fmt.Sprintf("%s declined the battle with %s. Coward.", messenger.Mention(msg.SenderID), messenger.Mention(b.ChallengerID)),
			b.ChallengerID, msg.SenderID)
	case !errors.Is(err, services.ErrNoPendingBattle):
		return err
	}

	t, err := r.Trades.Decline(ctx, msg.SenderID)
	if errors.Is(err, services.ErrNoOpenTrade) {
		return r.say(ctx, msg, "You have nothing to decline.")
	}
	if err != nil {
		return err
	}
	r.Metrics.IncTrade("declined")
	return r.say(ctx, msg,
		fmt.Sprintf("The trade between %s and %s was called off.", messenger.Mention(t.InitiatorID), messenger.Mention(t.CounterpartID)),
		t.InitiatorID, t.CounterpartID)
}

func (r *Router) reportBattle(ctx context.Context, msg messenger.IncomingMessage, out *services.BattleOutcome) error {
	b := out.Battle
	if out.Cancelled {
		r.Metrics.IncBattle("cancelled")
		reason := "a collaborator failed"
		if text, ok := denial(out.Reason); ok {
			reason = text
		} else if out.Reason != nil {
			reason = out.Reason.Error()
		}
		return r.say(ctx, msg, fmt.Sprintf("The battle was cancelled. %s", reason), b.ChallengerID, b.OpponentID)
	}

	r.Metrics.IncBattle("completed")
	return r.say(ctx, msg, battleReport(out), b.ChallengerID, b.OpponentID)
}

func battleReport(out *services.BattleOutcome) string {
	b, s := out.Battle, out.Settlement
	res := s.Result

	var sb strings.Builder
	fmt.Fprintf(&sb, "⚔️ BATTLE: %s vs %s ⚔️\n\n", messenger.Mention(b.ChallengerID), messenger.Mention(b.OpponentID))

	turns := res.Turns
	if len(turns) > shownTurns {
		fmt.Fprintf(&sb, "... %d earlier actions ...\n", len(turns)-shownTurns)
		turns = turns[len(turns)-shownTurns:]
	}
	for _, t := range turns {
		sb.WriteString(turnLine(t))
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "\nHP: %d vs %d after %d rounds", res.ChallengerHP, res.OpponentHP, res.Rounds)
	if res.TimedOut {
		sb.WriteString(" (time ran out)")
	}
	fmt.Fprintf(&sb, "\n🏆 Winner: %s\n", messenger.Mention(s.WinnerID))
	if s.Wager > 0 {
		fmt.Fprintf(&sb, "💰 %d coins go to the winner.\n", s.Wager)
	}

	names := make(map[string]string)
	for _, f := range append(append([]battle.Fighter(nil), out.Challenger...), out.Opponent...) {
		names[f.OwnedCardID] = f.Name
	}
	for _, p := range s.Progress {
		if p.NewLevel > p.PreviousLevel {
			fmt.Fprintf(&sb, "⬆️ %s reached level %d\n", names[p.UserCardID], p.NewLevel)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func turnLine(t battle.Turn) string {
	switch t.Move {
	case battle.MoveDefend:
		return fmt.Sprintf("R%d %s braces for impact", t.Round, t.CardName)
	case battle.MoveHeal:
		return fmt.Sprintf("R%d %s patches up the squad (+%d HP)", t.Round, t.CardName, t.Healed)
	case battle.MoveWeaken:
		return fmt.Sprintf("R%d %s weakens %s for %d", t.Round, t.CardName, t.Target, t.Damage)
	default:
		return fmt.Sprintf("R%d %s hits %s for %d", t.Round, t.CardName, t.Target, t.Damage)
	}
}

// AnnounceExpiredBattles lets both sides know a challenge lapsed or a stuck
// battle was released.
func (r *Router) AnnounceExpiredBattles(ctx context.Context, expired []*models.Battle) {
	for _, b := range expired {
		r.Metrics.IncBattle("expired")
		if b.RoomID == "" {
			continue
		}
		text := fmt.Sprintf("The challenge from %s to %s expired.", messenger.Mention(b.ChallengerID), messenger.Mention(b.OpponentID))
		if len(b.OpponentDeck) > 0 {
			// accepted, but the settlement never finished
			text = fmt.Sprintf("The battle between %s and %s was called off. Nothing changed hands.", messenger.Mention(b.ChallengerID), messenger.Mention(b.OpponentID))
		}
		_ = r.send(ctx, messenger.Room(b.RoomID), messenger.Content{
			Text:     text,
			Mentions: []string{b.ChallengerID, b.OpponentID},
		})
	}
}
