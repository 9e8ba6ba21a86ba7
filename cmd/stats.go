package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hda-infdl/partner-scout/internal/catalog"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show category counts and progress",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		s, err := initSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		counts := s.Catalog.CategoryCounts()

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KATEGORIE\tANZAHL")

		// fixed quick filters first, everything else alphabetically
		seen := make(map[string]bool)
		for _, cat := range catalog.FixedFilters {
			fmt.Fprintf(tw, "%s\t%d\n", cat, counts[cat])
			seen[cat] = true
		}
		var rest []string
		for cat := range counts {
			if !seen[cat] {
				rest = append(rest, cat)
			}
		}
		sort.Strings(rest)
		for _, cat := range rest {
			fmt.Fprintf(tw, "%s\t%d\n", cat, counts[cat])
		}
		_ = tw.Flush()

		fmt.Printf("\n%d Unternehmen, %d gesehen\n", s.Catalog.Len(), s.Tracker.ViewedCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
