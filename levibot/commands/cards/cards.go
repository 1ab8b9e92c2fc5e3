package cards

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/ellavondegurechaff/levibot/levibot"
	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/ellavondegurechaff/levibot/levibot/utils"
)

var Cards = discord.SlashCommandCreate{
	Name:        "cards",
	Description: "View your card collection",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "rarity",
			Description: "Only show cards of this rarity",
			Required:    false,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Legendary", Value: "legendary"},
				{Name: "Epic", Value: "epic"},
				{Name: "Rare", Value: "rare"},
				{Name: "Uncommon", Value: "uncommon"},
				{Name: "Common", Value: "common"},
			},
		},
		discord.ApplicationCommandOptionString{
			Name:        "anime",
			Description: "Only show cards from this series",
			Required:    false,
		},
	},
}

type cardFilter struct {
	Rarity string
	Anime  string
}

func (f cardFilter) active() bool {
	return f.Rarity != "" || f.Anime != ""
}

func (f cardFilter) keep(uc *models.UserCard) bool {
	if uc.Card == nil {
		return false
	}
	if f.Rarity != "" && !strings.EqualFold(uc.Card.Rarity, f.Rarity) {
		return false
	}
	if f.Anime != "" && !strings.Contains(strings.ToLower(uc.Card.Anime), strings.ToLower(f.Anime)) {
		return false
	}
	return true
}

func CardsHandler(b *levibot.Bot) handler.CommandHandler {
	return func(event *handler.CommandEvent) error {
		data := event.SlashCommandInteractionData()
		filter := cardFilter{
			Rarity: data.String("rarity"),
			Anime:  strings.TrimSpace(data.String("anime")),
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		all, err := b.Accounts.Cards(ctx, event.User().ID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(event, "Failed to fetch cards")
		}

		cards := make([]*models.UserCard, 0, len(all))
		for _, uc := range all {
			if filter.keep(uc) {
				cards = append(cards, uc)
			}
		}
		if len(cards) == 0 {
			return utils.EH.CreateErrorEmbed(event, "No cards found")
		}

		pages := (len(cards) + config.CardsPerPage - 1) / config.CardsPerPage
		return b.Paginator.Create(event.Respond, paginator.Pages{
			ID:      event.ID().String(),
			Creator: event.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.CardsPerPage
				end := min(start+config.CardsPerPage, len(cards))

				description := formatCards(cards[start:end])
				if filter.active() {
					description = filterDescription(filter) + "\n\n" + description
				}

				embed.
					SetTitle("My Collection").
					SetDescription(description).
					SetColor(config.InfoColor).
					SetFooter(fmt.Sprintf("Page %d/%d • Total: %d", page+1, pages, len(cards)), "")
			},
			Pages:      pages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func formatCards(cards []*models.UserCard) string {
	var sb strings.Builder
	sb.WriteString("```md\n")
	for _, uc := range cards {
		deck := ""
		if uc.InDeck {
			deck = " ⚔️"
		}
		fmt.Fprintf(&sb, "* %s %s Lv.%d%s [%s]\n",
			rarity.Emoji(uc.Card.Tier()),
			uc.DisplayName(),
			uc.Level,
			deck,
			uc.Card.Anime,
		)
	}
	sb.WriteString("```")
	return sb.String()
}

func filterDescription(f cardFilter) string {
	var parts []string
	if f.Rarity != "" {
		parts = append(parts, "rarity: "+f.Rarity)
	}
	if f.Anime != "" {
		parts = append(parts, "anime: "+f.Anime)
	}
	return "🔍 " + strings.Join(parts, " • ")
}
