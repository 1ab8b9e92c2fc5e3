package prefix

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/ellavondegurechaff/levibot/levibot/handlers"
	"github.com/ellavondegurechaff/levibot/levibot/messenger"
	"github.com/ellavondegurechaff/levibot/levibot/services"
)

func (r *Router) cardsCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	page := 1
	if len(e.Args) > 0 {
		n, err := strconv.Atoi(e.Args[0])
		if err != nil {
			return r.usage("cards [page]")
		}
		page = n
	}

	p, err := r.Accounts.Collection(ctx, msg.SenderID, page)
	if err != nil {
		return err
	}
	if p.Total == 0 {
		return r.say(ctx, msg, fmt.Sprintf("You don't have any cards yet. Catch one when it spawns with %scatch <name>.", r.Prefix))
	}
	return r.send(ctx, messenger.Room(msg.RoomID), messenger.Content{Text: collectionText(msg.SenderName, p, r.Prefix)})
}

func collectionText(name string, p *services.CollectionPage, prefix string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎴 %s's collection (%d cards)\n\n", name, p.Total)
	for _, uc := range p.Cards {
		sb.WriteString(ownedLabel(uc))
		if uc.InDeck {
			sb.WriteString(" [deck]")
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "\nPage %d/%d", p.Page, p.Pages)
	if p.Page < p.Pages {
		fmt.Fprintf(&sb, " · next: %scards %d", prefix, p.Page+1)
	}
	return sb.String()
}

func (r *Router) cardCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	if len(e.Args) == 0 {
		return r.usage("card <name>")
	}

	uc, err := r.Accounts.OwnedCard(ctx, msg.SenderID, argText(e.Args))
	if err != nil {
		return err
	}
	caption := cardDetails(uc)

	content := messenger.Content{Caption: caption, Color: services.RarityColor(uc.Card.Tier())}
	if r.Renderer != nil {
		image, err := r.Renderer.Render(ctx, uc.Card, uc)
		if err == nil {
			content.Image, content.ImageName = image, uc.CardID+".png"
		} else {
			slog.Warn("Showing card without render",
				slog.String("type", "sys"),
				slog.String("card_id", uc.CardID),
				slog.Any("error", err))
		}
	}
	if content.Image == nil {
		content = messenger.Content{Text: caption}
	}
	return r.send(ctx, messenger.Room(msg.RoomID), content)
}

func cardDetails(uc *models.UserCard) string {
	card := uc.Card
	tier := card.Tier()

	var sb strings.Builder
	fmt.Fprintf(&sb, "🎴 CARD: %s 🎴\n\n", uc.DisplayName())
	if uc.Nickname != "" {
		fmt.Fprintf(&sb, "**Character:** %s\n", card.Name)
	}
	fmt.Fprintf(&sb, "**Anime:** %s\n", orUnknown(card.Anime))
	fmt.Fprintf(&sb, "**Rarity:** %s %s\n", rarity.Emoji(tier), tier.Title())
	fmt.Fprintf(&sb, "**Level:** %d (%d exp)", uc.Level, uc.Exp)
	if uc.InDeck {
		sb.WriteString("\n**Status:** In Battle Deck")
	}
	return sb.String()
}

func (r *Router) balanceCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	balance, err := r.Accounts.Balance(ctx, msg.SenderID, msg.SenderName)
	if err != nil {
		return err
	}
	return r.say(ctx, msg, fmt.Sprintf("💰 %s has %d coins.", messenger.Mention(msg.SenderID), balance), msg.SenderID)
}

func (r *Router) statsCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	st, err := r.Accounts.Stats(ctx, msg.SenderID, msg.SenderName)
	if err != nil {
		return err
	}
	u := st.User

	favorite := u.FavoriteCommand
	if favorite == "" {
		favorite = "None"
	}

	var sb strings.Builder
	sb.WriteString("⚔️ LEVI'S ASSESSMENT ⚔️\n\n")
	sb.WriteString("📊 YOUR STATS 📊\n")
	fmt.Fprintf(&sb, "▸ Name: %s\n", msg.SenderName)
	fmt.Fprintf(&sb, "▸ Commands used: %d\n", u.CommandsUsed)
	fmt.Fprintf(&sb, "▸ Favorite command: %s\n", favorite)
	fmt.Fprintf(&sb, "▸ Cards caught: %d\n", u.CardsCaught)
	fmt.Fprintf(&sb, "▸ Battles: %d won, %d lost\n", u.BattlesWon, u.BattlesLost)
	fmt.Fprintf(&sb, "▸ Cleaning skill: %s\n\n", cleaningRank(u.CleaningSkill))

	sb.WriteString("🤖 BOT STATS 🤖\n")
	fmt.Fprintf(&sb, "▸ Version: %s\n", r.Version)
	fmt.Fprintf(&sb, "▸ Uptime: %s\n", uptime(time.Since(r.started)))
	if st.Totals != nil {
		fmt.Fprintf(&sb, "▸ Total users: %d\n", st.Totals.Users)
		fmt.Fprintf(&sb, "▸ Total commands executed: %d\n", st.Totals.Commands)
	}
	sb.WriteByte('\n')
	sb.WriteString(leviAssessment(u.CleaningSkill))

	return r.send(ctx, messenger.Room(msg.RoomID), messenger.Content{Text: sb.String()})
}

var cleaningRanks = []struct {
	below      int64
	rank       string
	assessment string
}{
	{10, "🧹 Novice (Would disappoint Levi)", `"Pathetic. You call this clean? Get back to training."`},
	{30, "🧹🧹 Adequate (Levi might not yell at you)", `"Not bad, but still not good enough. Keep practicing."`},
	{60, "🧹🧹🧹 Proficient (Levi approves)", `"You're improving. I might consider putting you on the cleaning squad."`},
	{100, "🧹🧹🧹🧹 Expert (Almost like Levi)", `"Your cleaning skills are acceptable. I'm almost impressed."`},
}

const (
	masterRank       = "🧹🧹🧹🧹🧹 Master (Levi would be proud)"
	masterAssessment = `"You've done well. Perhaps you understand the importance of cleanliness after all."`
)

func cleaningRank(skill int64) string {
	for _, c := range cleaningRanks {
		if skill < c.below {
			return c.rank
		}
	}
	return masterRank
}

func leviAssessment(skill int64) string {
	for _, c := range cleaningRanks {
		if skill < c.below {
			return c.assessment
		}
	}
	return masterAssessment
}

func uptime(d time.Duration) string {
	mins := int(d / time.Minute)
	return fmt.Sprintf("%dd %dh %dm", mins/(24*60), (mins/60)%24, mins%60)
}

func (r *Router) leaderboardCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	msg := e.Message
	metric := ""
	if len(e.Args) > 0 {
		metric = strings.ToLower(e.Args[0])
	}

	entries, err := r.Accounts.Leaderboard(ctx, metric)
	if err != nil {
		return err
	}
	if metric == "" {
		metric = "cards"
	}
	if len(entries) == 0 {
		return r.say(ctx, msg, "Nobody is on the board yet.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 Leaderboard: %s\n\n", metric)
	for i, en := range entries {
		name := en.Name
		if name == "" {
			name = en.UserID
		}
		fmt.Fprintf(&sb, "%d. %s - %d\n", i+1, name, en.Score)
	}
	return r.send(ctx, messenger.Room(msg.RoomID), messenger.Content{Text: strings.TrimRight(sb.String(), "\n")})
}

var helpSections = []struct {
	title string
	lines []string
}{
	{"🎴 Cards", []string{
		"catch <name> - catch the character that just spawned",
		"spawn - spawn a random card in this group",
		"cards [page] - browse your collection",
		"card <name> - show one of your cards",
	}},
	{"⚔️ Battle", []string{
		"deck [view|add|remove|clear] - manage your battle deck",
		"battle @user [wager] - challenge someone",
		"accept / decline - answer a battle or trade",
	}},
	{"🤝 Trading", []string{
		"trade @user - open a trade",
		"offer <card> - put a card on the table",
		"offercoin <amount> - pledge coins",
		"viewtrade - see the current offers",
	}},
	{"💰 Economy", []string{
		"balance - check your coins",
		"daily - claim the daily reward",
		"shop [buy <pack> [anime]] - buy card packs",
		"train - train under Levi",
	}},
	{"📊 Info", []string{
		"stats - your stats and the bot's",
		"leaderboard [cards|battle|coins|level] - top players",
	}},
}

func (r *Router) helpCmd(ctx context.Context, e *handlers.PrefixEvent) error {
	var sb strings.Builder
	sb.WriteString("📜 COMMANDS 📜\n")
	for _, s := range helpSections {
		fmt.Fprintf(&sb, "\n%s\n", s.title)
		for _, l := range s.lines {
			fmt.Fprintf(&sb, "%s%s\n", r.Prefix, l)
		}
	}
	if r.isOwner(e.Message.SenderID) {
		fmt.Fprintf(&sb, "\n👑 Owner\n%sspawn <name>\n%sblock @user / %sunblock @user\n", r.Prefix, r.Prefix, r.Prefix)
	}
	return r.send(ctx, messenger.Room(e.Message.RoomID), messenger.Content{Text: strings.TrimRight(sb.String(), "\n")})
}

func (r *Router) blockCmd(block bool) handlers.PrefixHandler {
	verb := "unblock"
	if block {
		verb = "block"
	}
	return func(ctx context.Context, e *handlers.PrefixEvent) error {
		msg := e.Message
		if !r.isOwner(msg.SenderID) {
			return r.say(ctx, msg, "Only the bot owner can do that.")
		}

		userID := ""
		if len(e.Args) > 0 {
			if id, ok := messenger.ParseMention(e.Args[0]); ok {
				userID = id
			}
		}
		if userID == "" && len(msg.Mentions) > 0 {
			userID = msg.Mentions[0].ID
		}
		if userID == "" {
			return r.usage("%s @user", verb)
		}
		if userID == r.OwnerID {
			return r.say(ctx, msg, "You can't block yourself.")
		}

		if err := r.Accounts.SetBlocked(ctx, userID, block); err != nil {
			return err
		}
		slog.Info("User block changed",
			slog.String("type", "sys"),
			slog.String("user_id", userID),
			slog.Bool("blocked", block))
		return r.say(ctx, msg, fmt.Sprintf("%s has been %sed.", messenger.Mention(userID), verb), userID)
	}
}
