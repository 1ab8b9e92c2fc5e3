package commands

import (
	"github.com/disgoorg/disgo/discord"

	"github.com/ellavondegurechaff/levibot/levibot/commands/cards"
	"github.com/ellavondegurechaff/levibot/levibot/commands/system"
)

var Commands = []discord.ApplicationCommandCreate{}

func init() {
	Commands = append(Commands, cards.Commands...)
	Commands = append(Commands, system.Commands...)
}
