package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hda-infdl/partner-scout/internal/export"
)

var (
	exportOut      string
	exportSearch   string
	exportCategory string
	exportSort     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the company list to a spreadsheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		q, err := buildQuery(exportSearch, exportCategory, exportSort)
		if err != nil {
			return err
		}

		s, err := initSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		companies := s.Catalog.Find(q)
		if err := export.WriteXLSX(companies, exportOut); err != nil {
			return err
		}

		fmt.Printf("%d Unternehmen nach %s geschrieben\n", len(companies), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "partnerunternehmen.xlsx", "output file")
	exportCmd.Flags().StringVarP(&exportSearch, "search", "s", "", "search term (name, city, or category)")
	exportCmd.Flags().StringVarP(&exportCategory, "category", "c", "all", "category filter")
	exportCmd.Flags().StringVar(&exportSort, "sort", "name", "sort key: name, distance, or founded")
	rootCmd.AddCommand(exportCmd)
}
