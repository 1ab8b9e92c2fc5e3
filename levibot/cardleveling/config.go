package cardleveling

import "github.com/ellavondegurechaff/levibot/levibot/config"

type Config struct {
	// ExpPerLevel is multiplied by the current level to get the threshold
	// for the next one.
	ExpPerLevel int

	// Battle awards per deck card
	WinExp  int
	LossExp int

	// MaxLevel caps growth, zero means uncapped
	MaxLevel int
}

func NewDefaultConfig() *Config {
	return &Config{
		ExpPerLevel: config.ExpPerLevel,
		WinExp:      config.BattleWinExp,
		LossExp:     config.BattleLossExp,
	}
}
