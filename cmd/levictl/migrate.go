package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/migration"
)

var (
	mongoURI  string
	mongoDB   string
	dumpDir   string
	batchSize int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import cards, users and collections from the old MongoDB",
	Long: `Reads the legacy cards, users and usercards collections either from a
running MongoDB (--mongo-uri) or from a mongodump directory (--dump) and writes
them into Postgres. Rows that already exist are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var source migration.Source
		switch {
		case mongoURI != "" && dumpDir != "":
			return errors.New("use either --mongo-uri or --dump, not both")
		case mongoURI != "":
			client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
			if err != nil {
				return fmt.Errorf("failed to connect to mongo: %w", err)
			}
			defer client.Disconnect(ctx)
			if err = client.Ping(ctx, nil); err != nil {
				return fmt.Errorf("failed to reach mongo: %w", err)
			}
			source = migration.NewMongoSource(client.Database(mongoDB))
		case dumpDir != "":
			source = migration.NewDumpSource(dumpDir)
		default:
			return errors.New("one of --mongo-uri or --dump is required")
		}

		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		bunDB := db.BunDB()
		m := migration.NewMigrator(source,
			repositories.NewCardRepository(bunDB),
			repositories.NewUserRepository(bunDB),
			repositories.NewUserCardRepository(bunDB),
		)
		m.SetBatchSize(batchSize)

		stats, err := m.Run(ctx)
		if err != nil {
			slog.Error("Migration failed", slog.String("type", "db"), slog.Any("error", err))
			return err
		}

		for _, table := range []string{"cards", "users", "usercards"} {
			if t, ok := stats.Tables[table]; ok {
				cmd.Printf("%-10s read %6d  written %6d  skipped %6d\n", table, t.Read, t.Written, t.Skipped)
			}
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	migrateCmd.Flags().StringVar(&mongoDB, "mongo-db", "levibot", "MongoDB database name")
	migrateCmd.Flags().StringVar(&dumpDir, "dump", "", "directory with mongodump .bson files")
	migrateCmd.Flags().IntVar(&batchSize, "batch-size", migration.DefaultBatchSize, "rows per insert")
	rootCmd.AddCommand(migrateCmd)
}
