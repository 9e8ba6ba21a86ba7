package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hda-infdl/partner-scout/internal/catalog"
	"github.com/hda-infdl/partner-scout/internal/derive"
	"github.com/hda-infdl/partner-scout/internal/fetcher"
	"github.com/hda-infdl/partner-scout/internal/model"
	"github.com/hda-infdl/partner-scout/internal/store"
)

// session bundles the per-invocation catalog and progress tracker.
type session struct {
	Catalog *catalog.Catalog
	Tracker *store.Tracker
	kv      store.KV
}

func (s *session) Close() {
	if s.kv != nil {
		_ = s.kv.Close()
	}
}

// initSession fetches the partner list and opens the progress store,
// concurrently. A fetch failure is terminal; a store failure degrades
// to in-memory progress for this invocation.
func initSession(ctx context.Context) (*session, error) {
	s := &session{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		f := fetcher.New(fetcher.Options{
			URL:       cfg.API.URL,
			UserAgent: cfg.API.UserAgent,
			Timeout:   time.Duration(cfg.API.TimeoutSecs) * time.Second,
			Limiter:   rate.NewLimiter(rate.Limit(cfg.API.RatePerSec), cfg.API.RatePerSec),
		})
		records, err := f.FetchAll(gctx)
		if err != nil {
			return err
		}
		s.Catalog = catalog.New(records)
		return nil
	})

	g.Go(func() error {
		s.kv = openKV(gctx)
		s.Tracker = store.NewTracker(gctx, s.kv)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// initTracker opens only the progress store, for commands that do not
// need the company list.
func initTracker(ctx context.Context) (*store.Tracker, store.KV) {
	kv := openKV(ctx)
	return store.NewTracker(ctx, kv), kv
}

func openKV(ctx context.Context) store.KV {
	kv, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return store.NewMemory()
	}
	if err := kv.Migrate(ctx); err != nil {
		_ = kv.Close()
		return store.NewMemory()
	}
	return kv
}

// buildQuery assembles a catalog query from the shared filter flags.
func buildQuery(search, category, sortKey string) (catalog.Query, error) {
	sk, err := catalog.ParseSort(sortKey)
	if err != nil {
		return catalog.Query{}, err
	}
	return catalog.Query{Search: search, Category: category, Sort: sk}, nil
}

func formatCompanyList(w io.Writer, companies []model.Company, tr *store.Tracker) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTADT\tKATEGORIEN\tKM\tGEGR.\tSTATUS")
	for _, co := range companies {
		status := ""
		if tr.Viewed(co.ID) {
			status = "gesehen"
		}
		if tr.Applied(co.ID) {
			if status != "" {
				status += ", "
			}
			status += "beworben"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			co.ID,
			co.Name(),
			placeholder(derive.City(co.Raw)),
			strings.Join(co.Categories, ","),
			placeholder(optInt(co.DistanceKm)),
			placeholder(optInt(co.FoundedYear)),
			status,
		)
	}
	_ = tw.Flush()
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func placeholder(s string) string {
	if s == "" {
		return "–"
	}
	return s
}
