package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/hda-infdl/partner-scout/internal/catalog"
	"github.com/hda-infdl/partner-scout/internal/derive"
	"github.com/hda-infdl/partner-scout/internal/model"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show full details of a company",
	Long:  "Prints all resolved fields of a company, its logo candidates, and what information is missing. Marks the company as viewed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := initSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		co, ok := s.Catalog.ByID(args[0])
		if !ok {
			co, ok = s.Catalog.ByID(derive.Slug(args[0]))
		}
		if !ok {
			// last resort: unique name substring match
			matches := s.Catalog.Find(catalog.Query{Search: args[0]})
			if len(matches) == 1 {
				co, ok = matches[0], true
			} else if len(matches) > 1 {
				return eris.Errorf("show: %q is ambiguous (%d matches), use the id", args[0], len(matches))
			}
		}
		if !ok {
			return eris.Errorf("show: no company matching %q", args[0])
		}

		if err := s.Tracker.MarkViewed(ctx, co.ID); err != nil {
			return eris.Wrap(err, "show: mark viewed")
		}

		printCompany(co, s.Tracker.Applied(co.ID), s.Tracker.Note(co.ID))
		return nil
	},
}

func printCompany(co model.Company, applied bool, note string) {
	r := co.Raw

	fmt.Printf("%s\n%s\n\n", co.Name(), strings.Repeat("=", len(co.Name())))
	fmt.Printf("ID:          %s\n", co.ID)
	fmt.Printf("Kategorien:  %s\n", strings.Join(co.Categories, ", "))
	fmt.Printf("Entfernung:  %s km\n", placeholder(optInt(co.DistanceKm)))
	fmt.Printf("Gegründet:   %s\n", placeholder(optInt(co.FoundedYear)))

	fmt.Printf("\nAdresse:     %s, %s %s %s\n",
		placeholder(derive.Street(r)), placeholder(derive.Zip(r)),
		placeholder(derive.City(r)), derive.Country(r))
	if loc := derive.TrainingLocation(r); loc != "" {
		fmt.Printf("Ausbildung:  %s\n", loc)
	}

	fmt.Printf("\nWebseite:    %s\n", placeholder(derive.Website(r)))
	fmt.Printf("Kontakt:     %s %s\n", derive.ContactTitle(r), placeholder(derive.ContactPerson(r)))
	fmt.Printf("E-Mail:      %s\n", placeholder(derive.Email(r)))
	fmt.Printf("Telefon:     %s\n", placeholder(derive.Phone(r)))

	if desc := r.Str("shorttext"); desc != "" {
		fmt.Printf("\n%s\n", desc)
	} else if desc := r.Str("description"); desc != "" {
		fmt.Printf("\n%s\n", desc)
	}

	domain := derive.GuessDomain(r)
	if urls := derive.LogoFallbacks(domain); len(urls) > 0 {
		fmt.Printf("\nLogo-Kandidaten (%s):\n", domain)
		for _, u := range urls {
			fmt.Printf("  %s\n", u)
		}
	}

	if missing := derive.MissingInfo(r); len(missing) > 0 {
		fmt.Printf("\nFehlende Infos: %s\n", strings.Join(missing, ", "))
	}

	if applied {
		fmt.Fprintln(os.Stdout, "\nStatus: beworben")
	}
	if note != "" {
		fmt.Printf("\nNotiz: %s\n", note)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
