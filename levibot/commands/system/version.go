package system

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/ellavondegurechaff/levibot/levibot"
	"github.com/ellavondegurechaff/levibot/levibot/utils"
)

var Version = discord.SlashCommandCreate{
	Name:        "version",
	Description: "Show the running version",
}

func VersionHandler(b *levibot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}
		_, err := e.UpdateInteractionResponse(discord.MessageUpdate{
			Content: utils.Ptr(fmt.Sprintf("Version: %s\nCommit: %s\nUp since: %s",
				b.Version, b.Commit, b.Started.Format(time.RFC1123))),
		})
		return err
	}
}
