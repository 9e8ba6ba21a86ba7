package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage per-company notes",
}

var noteSetCmd = &cobra.Command{
	Use:   "set <id> <text...>",
	Short: "Store a note for a company",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		tr, kv := initTracker(ctx)
		defer kv.Close() //nolint:errcheck

		text := strings.Join(args[1:], " ")
		if err := tr.SetNote(ctx, args[0], text); err != nil {
			return eris.Wrap(err, "note set")
		}
		fmt.Printf("Notiz gespeichert für %s\n", args[0])
		return nil
	},
}

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the stored note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		tr, kv := initTracker(ctx)
		defer kv.Close() //nolint:errcheck

		note := tr.Note(args[0])
		if note == "" {
			fmt.Fprintln(os.Stderr, "Keine Notiz vorhanden.")
			return nil
		}
		fmt.Println(note)
		return nil
	},
}

var noteRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove the stored note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		tr, kv := initTracker(ctx)
		defer kv.Close() //nolint:errcheck

		if err := tr.SetNote(ctx, args[0], ""); err != nil {
			return eris.Wrap(err, "note rm")
		}
		fmt.Printf("Notiz entfernt für %s\n", args[0])
		return nil
	},
}

func init() {
	noteCmd.AddCommand(noteSetCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteRmCmd)
	rootCmd.AddCommand(noteCmd)
}
