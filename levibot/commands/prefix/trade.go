package prefix

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/ellavondegurechaff/levibot/levibot/game/trade"
	"github.com/ellavondegurechaff/levibot/levibot/handlers"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	"github.com/ellavondegurechaff/levibot/levibot/services"
)

func (r *Router) tradeCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	partner, _, err := r.target(ctx, msg, e.Args, "trade @user")
	if err != nil {
		return err
	}

	t, err := r.Trades.Start(ctx, services.TradeRequest{
		RoomID:          msg.RoomID,
		InitiatorID:     msg.SenderID,
		InitiatorName:   msg.SenderName,
		CounterpartID:   partner.ID,
		CounterpartName: partner.Name,
	})
	if err != nil {
		return err
	}

	r.Metrics.IncTrade("started")
	return r.say(ctx, msg,
		fmt.Sprintf("🤝 %s wants to trade with %s.\nUse %soffer <card> or %soffercoin <amount> to put something on the table, %sviewtrade to check it and %saccept or %sdecline to finish. The trade expires in %s.",
			messenger.Mention(msg.SenderID), messenger.Mention(partner.ID),
			r.Prefix, r.Prefix, r.Prefix, r.Prefix, r.Prefix, formatWait(time.Until(t.ExpiresAt))),
		msg.SenderID, partner.ID)
}

func (r *Router) offerCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	if len(e.Args) == 0 {
		return r.usage("offer <card name>")
	}

	_, uc, err := r.Trades.OfferCard(ctx, msg.SenderID, argText(e.Args))
	if err != nil {
		return err
	}
	return r.say(ctx, msg, fmt.Sprintf("%s put %s on the table.", messenger.Mention(msg.SenderID), ownedLabel(uc)), msg.SenderID)
}

func (r *Router) offerCoinCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	if len(e.Args) == 0 {
		return r.usage("offercoin <amount>")
	}
	amount, err := strconv.ParseInt(e.Args[0], 10, 64)
	if err != nil || amount <= 0 {
		return trade.ErrInvalidAmount
	}

	if _, err := r.Trades.OfferCoins(ctx, msg.SenderID, amount); err != nil {
		return err
	}
	return r.say(ctx, msg, fmt.Sprintf("%s offers %d coins.", messenger.Mention(msg.SenderID), amount), msg.SenderID)
}

func (r *Router) viewTradeCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	view, err := r.Trades.View(ctx, msg.SenderID)
	if err != nil {
		return err
	}
	t := view.Trade

	var sb strings.Builder
	sb.WriteString("📦 Current trade\n\n")
	writeOffer(&sb, t.InitiatorID, view.InitiatorCards, t.InitiatorCoins)
	sb.WriteByte('\n')
	writeOffer(&sb, t.CounterpartID, view.CounterpartCards, t.CounterpartCoins)
	fmt.Fprintf(&sb, "\nExpires in %s. %s accepts with %saccept.", formatWait(time.Until(t.ExpiresAt)), messenger.Mention(t.CounterpartID), r.Prefix)

	return r.send(ctx, messenger.Room(msg.RoomID), messenger.Content{
		Text:     sb.String(),
		Mentions: []string{t.InitiatorID, t.CounterpartID},
	})
}

func writeOffer(sb *strings.Builder, userID string, cards []*models.UserCard, coins int64) {
	fmt.Fprintf(sb, "%s offers:\n", messenger.Mention(userID))
	if len(cards) == 0 && coins == 0 {
		sb.WriteString("  nothing yet\n")
		return
	}
	for _, uc := range cards {
		fmt.Fprintf(sb, "  • %s\n", ownedLabel(uc))
	}
	if coins > 0 {
		fmt.Fprintf(sb, "  • %d coins\n", coins)
	}
}

func ownedLabel(uc *models.UserCard) string {
	if uc.Card == nil {
		return uc.DisplayName()
	}
	return fmt.Sprintf("%s %s (Lv.%d)", rarity.Emoji(uc.Card.Tier()), uc.DisplayName(), uc.Level)
}

func (r *Router) reportTrade(ctx context.Context, msg messenger.IncomingMessage, out *services.TradeOutcome) error {
	t := out.Trade
	if out.Cancelled {
		r.Metrics.IncTrade("cancelled")
		reason, ok := denial(out.Reason)
		if !ok {
			reason = "The offers no longer hold."
		}
		return r.say(ctx, msg,
			fmt.Sprintf("The trade between %s and %s was cancelled. %s", messenger.Mention(t.InitiatorID), messenger.Mention(t.CounterpartID), reason),
			t.InitiatorID, t.CounterpartID)
	}

	r.Metrics.IncTrade("completed")
	moved := 0
	if out.Settlement != nil {
		moved = len(out.Settlement.Cards)
	}
	return r.say(ctx, msg,
		fmt.Sprintf("✅ Trade complete between %s and %s. %d card(s) changed hands.", messenger.Mention(t.InitiatorID), messenger.Mention(t.CounterpartID), moved),
		t.InitiatorID, t.CounterpartID)
}

// AnnounceExpiredTrades tells both parties a negotiation ran out of time.
func (r *Router) AnnounceExpiredTrades(ctx context.Context, expired []*models.Trade) {
	for _, t := range expired {
		r.Metrics.IncTrade("expired")
		if t.RoomID == "" {
			continue
		}
		_ = r.send(ctx, messenger.Room(t.RoomID), messenger.Content{
			Text:     fmt.Sprintf("The trade between %s and %s expired.", messenger.Mention(t.InitiatorID), messenger.Mention(t.CounterpartID)),
			Mentions: []string{t.InitiatorID, t.CounterpartID},
		})
	}
}
