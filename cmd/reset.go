package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the viewing history",
	Long:  "Deletes every viewed mark. Applied marks and notes are kept. Requires --yes as confirmation.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		tr, kv := initTracker(ctx)
		defer kv.Close() //nolint:errcheck

		n := tr.ViewedCount()
		if n == 0 {
			fmt.Println("Verlauf ist bereits leer.")
			return nil
		}

		if !resetYes {
			return eris.Errorf("reset: would delete %d entries; re-run with --yes to confirm", n)
		}

		if err := tr.ResetViewed(ctx); err != nil {
			return eris.Wrap(err, "reset viewed")
		}
		fmt.Printf("Verlauf gelöscht (%d Einträge).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm deletion")
	rootCmd.AddCommand(resetCmd)
}
