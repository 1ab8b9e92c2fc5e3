package levibot

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavondegurechaff/levibot/levibot/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[bot]
token = "secret"
owner_id = 123456789012345678
prefix = "."

[game]
spawn_chance = 0.25
spawn_cooldown = "10m"
spawn_store = "memory"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, snowflake.ID(123456789012345678), cfg.Bot.OwnerID)
	assert.Equal(t, ".", cfg.Bot.Prefix)
	assert.Equal(t, 0.25, cfg.Game.SpawnChance)
	assert.Equal(t, 10*time.Minute, cfg.Game.SpawnCooldown.Std())
	assert.Equal(t, config.SpawnStoreMemory, cfg.Game.SpawnStore)

	// untouched knobs keep their defaults
	assert.Equal(t, config.SpawnCatchWindow, cfg.Game.CatchWindow.Std())
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing token", "[bot]\nprefix = \"!\"\n", "bot.token"},
		{"chance out of range", "[bot]\ntoken = \"t\"\n[game]\nspawn_chance = 1.5\n", "spawn_chance"},
		{"unknown store", "[bot]\ntoken = \"t\"\n[game]\nspawn_store = \"redis\"\n", "spawn_store"},
		{"bad duration", "[bot]\ntoken = \"t\"\n[game]\ncatch_window = \"soon\"\n", "invalid duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestReadConfigSkipsValidation(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, "[db]\nhost = \"pg\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "pg", cfg.DB.Host)
	assert.Empty(t, cfg.Bot.Token)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1h30m")))
	assert.Equal(t, 90*time.Minute, d.Std())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1h30m0s", string(text))
}
