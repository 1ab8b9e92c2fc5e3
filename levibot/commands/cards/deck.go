package cards

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/ellavondegurechaff/levibot/levibot"
	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/game/battle"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/ellavondegurechaff/levibot/levibot/utils"
)

var Deck = discord.SlashCommandCreate{
	Name:        "deck",
	Description: "Show your battle deck",
}

func DeckHandler(b *levibot.Bot) handler.CommandHandler {
	return func(event *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		userID := event.User().ID.String()
		cards, err := b.Decks.View(ctx, userID)
		if err != nil {
			slog.Error("Failed to load deck",
				slog.String("type", "db"),
				slog.String("user_id", userID),
				slog.Any("error", err))
			return utils.EH.CreateErrorEmbed(event, "Failed to load your deck")
		}
		if len(cards) == 0 {
			return utils.EH.CreateInfoEmbed(event, fmt.Sprintf("Your deck is empty. Use `%sdeck add <card>` to build one.", b.Cfg.Bot.Prefix))
		}

		fields := make([]discord.EmbedField, 0, len(cards))
		for _, uc := range cards {
			f := battle.NewFighter(uc.ID, uc.DisplayName(), uc.Card.Type, uc.Level, uc.Card.Attack, uc.Card.Defense, uc.Card.Speed)
			fields = append(fields, discord.EmbedField{
				Name:   fmt.Sprintf("%d. %s %s", uc.Position()+1, rarity.Emoji(uc.Card.Tier()), uc.DisplayName()),
				Value:  fmt.Sprintf("Lv.%d %s\n⚔️ %d 🛡️ %d ⚡ %d", uc.Level, strings.ToLower(uc.Card.Type), f.Attack, f.Defense, f.Speed),
				Inline: utils.Ptr(true),
			})
		}

		return event.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:  fmt.Sprintf("%s's deck (%d/%d)", event.User().Username, len(cards), battle.MaxDeckSize),
				Color:  config.InfoColor,
				Fields: fields,
			}},
		})
	}
}
