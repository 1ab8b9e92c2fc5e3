package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ellavondegurechaff/levibot/levibot"
	"github.com/ellavondegurechaff/levibot/levibot/database"
	"github.com/ellavondegurechaff/levibot/levibot/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "levictl",
	Short:         "LeviBot maintenance tool",
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(slog.New(logger.NewHandler(cmd.ErrOrStderr(), slog.LevelInfo)))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config")
}

// openDB connects with the [db] section of the config and makes sure the
// schema exists.
func openDB(ctx context.Context) (*database.DB, error) {
	cfg, err := levibot.ReadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = db.InitializeSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}
