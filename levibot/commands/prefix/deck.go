package prefix

import (
	"context"
	"fmt"
	"strings"

	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/ellavondegurechaff/levibot/levibot/handlers"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
)

const deckUsage = "deck [view|add <card>|remove <card>|clear]"

func (r *Router) deckCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	sub, rest := "view", []string(nil)
	if len(e.Args) > 0 {
		sub, rest = strings.ToLower(e.Args[0]), e.Args[1:]
	}

	switch sub {
	case "view", "show":
		return r.showDeck(ctx, msg)

	case "add":
		if len(rest) == 0 {
			return r.usage("deck add <card name>")
		}
		uc, err := r.Decks.Add(ctx, msg.SenderID, argText(rest))
		if err != nil {
			return err
		}
		return r.say(ctx, msg, fmt.Sprintf("%s joins your deck in slot %d.", ownedLabel(uc), uc.Position()+1))

	case "remove":
		if len(rest) == 0 {
			return r.usage("deck remove <card name>")
		}
		uc, err := r.Decks.Remove(ctx, msg.SenderID, argText(rest))
		if err != nil {
			return err
		}
		return r.say(ctx, msg, fmt.Sprintf("%s left your deck.", uc.DisplayName()))

	case "clear":
		n, err := r.Decks.Clear(ctx, msg.SenderID)
		if err != nil {
			return err
		}
		if n == 0 {
			return r.say(ctx, msg, "Your deck was already empty.")
		}
		return r.say(ctx, msg, fmt.Sprintf("Cleared %d card(s) from your deck.", n))
	}
	return r.usage(deckUsage)
}

func (r *Router) showDeck(ctx context.Context, msg messenger.IncomingMessage) error {
	cards, err := r.Decks.View(ctx, msg.SenderID)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		return r.say(ctx, msg, fmt.Sprintf("Your deck is empty. Use %sdeck add <card> to build one.", r.Prefix))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🃏 %s's deck (%d/%d)\n", msg.SenderName, len(cards), battle.MaxDeckSize)
	for _, uc := range cards {
		fmt.Fprintf(&sb, "%d. %s", uc.Position()+1, ownedLabel(uc))
		if uc.Card != nil {
			f := battle.NewFighter(uc.ID, uc.DisplayName(), uc.Card.Type, uc.Level, uc.Card.Attack, uc.Card.Defense, uc.Card.Speed)
			fmt.Fprintf(&sb, " ⚔️%d 🛡️%d ⚡%d", f.Attack, f.Defense, f.Speed)
		}
		sb.WriteByte('\n')
	}
	return r.send(ctx, messenger.Room(msg.RoomID), messenger.Content{Text: strings.TrimRight(sb.String(), "\n")})
}
