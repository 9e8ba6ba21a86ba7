package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listSearch   string
	listCategory string
	listSort     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List partner companies",
	Long:  "Fetches the partner list and prints it filtered, searched, and sorted. Viewed and applied companies are marked.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		q, err := buildQuery(listSearch, listCategory, listSort)
		if err != nil {
			return err
		}

		s, err := initSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		companies := s.Catalog.Find(q)
		if len(companies) == 0 {
			fmt.Fprintln(os.Stderr, "Keine Treffer.")
			return nil
		}

		formatCompanyList(os.Stdout, companies, s.Tracker)
		fmt.Printf("\n%d von %d Unternehmen\n", len(companies), s.Catalog.Len())
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "search term (name, city, or category)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "all", "category filter")
	listCmd.Flags().StringVar(&listSort, "sort", "name", "sort key: name, distance, or founded")
	rootCmd.AddCommand(listCmd)
}
