package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Track application status",
}

var markAppliedCmd = &cobra.Command{
	Use:   "applied <id>",
	Short: "Mark a company as applied-to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		tr, kv := initTracker(ctx)
		defer kv.Close() //nolint:errcheck

		if err := tr.SetApplied(ctx, args[0], true); err != nil {
			return eris.Wrap(err, "mark applied")
		}
		fmt.Printf("%s: beworben\n", args[0])
		return nil
	},
}

var markUnappliedCmd = &cobra.Command{
	Use:   "unapplied <id>",
	Short: "Clear the applied mark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		tr, kv := initTracker(ctx)
		defer kv.Close() //nolint:errcheck

		if err := tr.SetApplied(ctx, args[0], false); err != nil {
			return eris.Wrap(err, "mark unapplied")
		}
		fmt.Printf("%s: Bewerbungsstatus entfernt\n", args[0])
		return nil
	},
}

func init() {
	markCmd.AddCommand(markAppliedCmd)
	markCmd.AddCommand(markUnappliedCmd)
	rootCmd.AddCommand(markCmd)
}
