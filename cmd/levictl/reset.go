package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var confirmReset bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every card, user, spawn, battle and trade",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmReset {
			return errors.New("refusing to wipe the database without --yes")
		}

		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err = db.ResetAppTables(ctx); err != nil {
			return err
		}
		cmd.Println("All tables emptied.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&confirmReset, "yes", false, "confirm the wipe")
	rootCmd.AddCommand(resetCmd)
}
