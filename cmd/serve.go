package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hda-infdl/partner-scout/internal/catalog"
	"github.com/hda-infdl/partner-scout/internal/derive"
	"github.com/hda-infdl/partner-scout/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the company list as a local JSON API",
	Long:  "Fetches the partner list once and serves it, plus the progress endpoints, for a local browser front-end.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s, err := initSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		// The tracker is single-writer by design; serialize handler
		// mutations.
		var mu sync.Mutex

		r := chi.NewRouter()
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/api/companies", func(w http.ResponseWriter, req *http.Request) {
			sortKey, err := catalog.ParseSort(req.URL.Query().Get("sort"))
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			q := catalog.Query{
				Search:   req.URL.Query().Get("search"),
				Category: req.URL.Query().Get("category"),
				Sort:     sortKey,
			}

			mu.Lock()
			defer mu.Unlock()
			out := make([]companyResponse, 0)
			for _, co := range s.Catalog.Find(q) {
				out = append(out, newCompanyResponse(co, s))
			}
			writeJSON(w, http.StatusOK, out)
		})

		r.Get("/api/companies/{id}", func(w http.ResponseWriter, req *http.Request) {
			co, ok := s.Catalog.ByID(chi.URLParam(req, "id"))
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "company not found"})
				return
			}
			mu.Lock()
			defer mu.Unlock()
			writeJSON(w, http.StatusOK, newCompanyResponse(co, s))
		})

		r.Post("/api/companies/{id}/viewed", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			if _, ok := s.Catalog.ByID(id); !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "company not found"})
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if err := s.Tracker.MarkViewed(req.Context(), id); err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, map[string]bool{"viewed": true})
		})

		r.Post("/api/companies/{id}/applied", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			if _, ok := s.Catalog.ByID(id); !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "company not found"})
				return
			}
			mu.Lock()
			defer mu.Unlock()
			applied, err := s.Tracker.ToggleApplied(req.Context(), id)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, map[string]bool{"applied": applied})
		})

		r.Put("/api/companies/{id}/note", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			if _, ok := s.Catalog.ByID(id); !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "company not found"})
				return
			}
			var body struct {
				Text string `json:"text"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if err := s.Tracker.SetNote(req.Context(), id, body.Text); err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"note": body.Text})
		})

		r.Delete("/api/history", func(w http.ResponseWriter, req *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			if err := s.Tracker.ResetViewed(req.Context()); err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server",
			zap.Int("port", port),
			zap.Int("companies", s.Catalog.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// companyResponse is the API shape: the augmented company plus the
// lazily derived display attributes and the user's progress.
type companyResponse struct {
	model.Company
	City        string   `json:"city"`
	Domain      string   `json:"domain,omitempty"`
	LogoURLs    []string `json:"logo_urls,omitempty"`
	MissingInfo []string `json:"missing_info,omitempty"`
	Viewed      bool     `json:"viewed"`
	Applied     bool     `json:"applied"`
	Note        string   `json:"note,omitempty"`
}

func newCompanyResponse(co model.Company, s *session) companyResponse {
	domain := derive.GuessDomain(co.Raw)
	return companyResponse{
		Company:     co,
		City:        derive.City(co.Raw),
		Domain:      domain,
		LogoURLs:    derive.LogoFallbacks(domain),
		MissingInfo: derive.MissingInfo(co.Raw),
		Viewed:      s.Tracker.Viewed(co.ID),
		Applied:     s.Tracker.Applied(co.ID),
		Note:        s.Tracker.Note(co.ID),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
