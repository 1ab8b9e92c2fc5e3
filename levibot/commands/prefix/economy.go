package prefix

import (
	"context"
	"fmt"
	"strings"

	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/ellavondegurechaff/levibot/levibot/handlers"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	"github.com/ellavondegurechaff/levibot/levibot/services"
)

// trainingReviewEvery is how often Levi comments on overall progress.
const trainingReviewEvery = 5

func (r *Router) shopCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	if len(e.Args) == 0 || strings.EqualFold(e.Args[0], "list") {
		return r.send(ctx, messenger.Room(msg.RoomID), messenger.Content{Text: r.shopList()})
	}
	if !strings.EqualFold(e.Args[0], "buy") || len(e.Args) < 2 {
		return r.usage("shop [list|buy <pack> [anime]]")
	}

	anime := ""
	if len(e.Args) > 2 {
		anime = argText(e.Args[2:])
	}
	res, err := r.Economy.BuyPack(ctx, msg.SenderID, msg.SenderName, strings.ToLower(e.Args[1]), anime)
	if err != nil {
		return err
	}

	r.Metrics.AddCoins("refund", res.Refund)
	return r.say(ctx, msg, packText(msg, res), msg.SenderID)
}

func (r *Router) shopList() string {
	var sb strings.Builder
	sb.WriteString("🛒 Card Shop\n")
	for _, p := range rarity.Packs {
		fmt.Fprintf(&sb, "\n**%s** (%s) - %d coins\n%s\n", p.Name, p.Key, p.Price, p.Description)
	}
	fmt.Fprintf(&sb, "\nBuy with %sshop buy <pack> [anime].", r.Prefix)
	return sb.String()
}

func packText(msg messenger.IncomingMessage, res *services.PackResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📦 %s opened a %s", messenger.Mention(msg.SenderID), res.Pack.Name)
	if res.Anime != "" && res.Pack.Featured {
		fmt.Fprintf(&sb, " featuring %s", res.Anime)
	}
	sb.WriteString("!\n")
	for _, uc := range res.Cards {
		fmt.Fprintf(&sb, "• %s\n", ownedLabel(uc))
	}
	if res.Refund > 0 {
		fmt.Fprintf(&sb, "Some slots came up empty. %d coins refunded.\n", res.Refund)
	}
	fmt.Fprintf(&sb, "Balance: %d coins", res.Balance)
	return sb.String()
}

func (r *Router) dailyCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	res, err := r.Economy.ClaimDaily(ctx, msg.SenderID, msg.SenderName)
	if err != nil {
		return err
	}
	r.Metrics.AddCoins("daily", res.Coins)

	var sb strings.Builder
	fmt.Fprintf(&sb, "💰 %s claimed %d coins. Streak: %d day(s).", messenger.Mention(msg.SenderID), res.Coins, res.Streak)
	if res.Bonus != nil {
		fmt.Fprintf(&sb, "\n🎁 Bonus card: %s", ownedLabel(res.Bonus))
	}
	fmt.Fprintf(&sb, "\nBalance: %d coins", res.Balance)
	return r.say(ctx, msg, sb.String(), msg.SenderID)
}

func (r *Router) trainCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	res, err := r.Economy.Train(ctx, msg.SenderID, msg.SenderName)
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏋️ %s\n%s\n\n", res.Scenario.Name, res.Scenario.Description)
	if res.Success {
		fmt.Fprintf(&sb, "✅ %s\n", res.Scenario.Success)
	} else {
		fmt.Fprintf(&sb, "❌ %s\n", res.Scenario.Failure)
	}
	fmt.Fprintf(&sb, "Cleaning skill +%d (now %d).", res.Gain, res.Skill)
	if review := trainingReview(res); review != "" {
		fmt.Fprintf(&sb, "\n\n%s", review)
	}
	return r.say(ctx, msg, sb.String())
}

func trainingReview(res *services.TrainingResult) string {
	if res.Count == 0 || res.Count%trainingReviewEvery != 0 {
		return ""
	}
	if float64(res.Successful)/float64(res.Count) > 0.7 {
		return "Your dedication is... not terrible."
	}
	return "You need to take this more seriously if you want to survive."
}
