package levibot

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/ellavondegurechaff/levibot/levibot/config"
)

// LoadConfig reads and validates the bot's config.
func LoadConfig(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadConfig decodes path over the defaults without validating, for tools
// that only need the database section.
func ReadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns a config with every game knob set to its default.
// Values present in the file override these.
func DefaultConfig() *Config {
	return &Config{
		Log:     LogConfig{Level: slog.LevelInfo},
		Bot:     BotConfig{Prefix: config.DefaultPrefix},
		DB:      DBConfig{Port: 5432, PoolSize: 10},
		Metrics: MetricsConfig{Namespace: "levibot"},
		Game: GameConfig{
			SpawnChance:      config.SpawnChance,
			SpawnCooldown:    Duration(config.SpawnCooldown),
			CatchWindow:      Duration(config.SpawnCatchWindow),
			SpawnSweep:       Duration(config.SpawnSweepInterval),
			ForceSpawnLimit:  config.ForceSpawnLimit,
			ForceSpawnPeriod: Duration(config.ForceSpawnPeriod),
			SpawnStore:       config.SpawnStoreDatabase,
			BattleWindow:     Duration(config.BattleWindow),
			TradeWindow:      Duration(config.TradeWindow),
			NegotiationSweep: Duration(config.NegotiationSweep),
			CatalogCacheSize: config.CacheSize,
		},
	}
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	Bot     BotConfig     `toml:"bot"`
	DB      DBConfig      `toml:"db"`
	Spaces  SpacesConfig  `toml:"spaces"`
	Game    GameConfig    `toml:"game"`
	Metrics MetricsConfig `toml:"metrics"`
}

func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("bot.token is required")
	}
	if c.Game.SpawnChance < 0 || c.Game.SpawnChance > 1 {
		return fmt.Errorf("game.spawn_chance must be between 0 and 1, got %v", c.Game.SpawnChance)
	}
	switch c.Game.SpawnStore {
	case config.SpawnStoreDatabase, config.SpawnStoreMemory:
	default:
		return fmt.Errorf("game.spawn_store must be %q or %q, got %q", config.SpawnStoreDatabase, config.SpawnStoreMemory, c.Game.SpawnStore)
	}
	return nil
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
	OwnerID   snowflake.ID   `toml:"owner_id"`
	Prefix    string         `toml:"prefix"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
	SSLMode  string `toml:"sslmode"`
}

// SpacesConfig is optional; without a bucket cards are shown without artwork.
type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	CardRoot string `toml:"cardroot"`
}

type GameConfig struct {
	SpawnChance      float64  `toml:"spawn_chance"`
	SpawnCooldown    Duration `toml:"spawn_cooldown"`
	CatchWindow      Duration `toml:"catch_window"`
	SpawnSweep       Duration `toml:"spawn_sweep"`
	ForceSpawnLimit  int      `toml:"force_spawn_limit"`
	ForceSpawnPeriod Duration `toml:"force_spawn_period"`
	// SpawnStore is "database" or "memory".
	SpawnStore       string   `toml:"spawn_store"`
	BattleWindow     Duration `toml:"battle_window"`
	TradeWindow      Duration `toml:"trade_window"`
	NegotiationSweep Duration `toml:"negotiation_sweep"`
	CatalogCacheSize int      `toml:"catalog_cache_size"`
}

type MetricsConfig struct {
	// Listen is the address of the Prometheus endpoint. Empty disables it.
	Listen    string `toml:"listen"`
	Namespace string `toml:"namespace"`
}

// Duration decodes TOML strings such as "30m" or "1h30m".
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
