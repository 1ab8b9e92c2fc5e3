package main

import (
	"github.com/spf13/cobra"

	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/migration"
)

var seedCmd = &cobra.Command{
	Use:   "seed <cards.json>",
	Short: "Upsert the card catalog from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := migration.Seed(ctx, repositories.NewCardRepository(db.BunDB()), args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%d cards seeded\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
