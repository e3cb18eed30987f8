// Package api is the thin HTTP boundary over the pipeline: query parsing,
// JSON envelopes, nothing else. The pipeline's own contracts live in the
// packages it delegates to.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/vincentkyalomusembi/PathFinder/internal/analytics"
	"github.com/vincentkyalomusembi/PathFinder/internal/cache"
	"github.com/vincentkyalomusembi/PathFinder/internal/config"
	"github.com/vincentkyalomusembi/PathFinder/internal/models"
	"github.com/vincentkyalomusembi/PathFinder/internal/orchestrator"
)

type Server struct {
	orch   *orchestrator.Orchestrator
	engine *analytics.Engine
	store  *cache.Store
	logger *zap.Logger
	srv    *http.Server
}

func NewServer(orch *orchestrator.Orchestrator, engine *analytics.Engine, store *cache.Store, logger *zap.Logger, cfg *config.Config) *Server {
	s := &Server{
		orch:   orch,
		engine: engine,
		store:  store,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/scraper/scrape-jobs", s.handleScrapeJobs)
	mux.HandleFunc("/api/scraper/scraped-jobs", s.handleScrapedJobs)
	mux.HandleFunc("/api/scraper/scraping-status", s.handleScrapingStatus)
	mux.HandleFunc("/api/analytics/demand", s.handleAnalytics(analytics.ViewDemandTrend))
	mux.HandleFunc("/api/analytics/salary", s.handleAnalytics(analytics.ViewSalaryByCategory))
	mux.HandleFunc("/api/analytics/skills", s.handleAnalytics(analytics.ViewSkillFrequency))
	mux.HandleFunc("/api/analytics/categories", s.handleAnalytics(analytics.ViewCategoryDistribution))
	mux.HandleFunc("/api/sessions", s.handleSessions)
	mux.HandleFunc("/api/sessions/", s.handleSession)

	s.srv = &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
	return s
}

func (s *Server) Start() {
	go func() {
		s.logger.Info("api listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("api server failed", zap.Error(err))
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	redis := "disconnected"
	if s.store.Connected() {
		redis = "connected"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"redis":  redis,
	})
}

func (s *Server) handleScrapeJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	maxJobs := 0
	if raw := r.URL.Query().Get("max_jobs"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid max_jobs", http.StatusBadRequest)
			return
		}
		maxJobs = parsed
	}

	snapshot, fromCache := s.orch.FetchSnapshot(r.Context(), maxJobs)

	message := "Successfully scraped/generated jobs"
	if fromCache {
		message = "Using cached jobs (scraped within last hour)"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    message,
		"jobs_count": len(snapshot),
		"jobs":       snapshot,
		"sources":    sortedSources(snapshot),
	})
}

func (s *Server) handleScrapedJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snapshot, ok := s.orch.CachedSnapshot(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":    "No cached jobs found. Run /scrape-jobs first.",
			"jobs_count": 0,
			"jobs":       []models.JobPosting{},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Cached scraped jobs",
		"jobs_count": len(snapshot),
		"jobs":       snapshot,
	})
}

func (s *Server) handleScrapingStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snapshot, ok := s.orch.CachedSnapshot(r.Context())
	count := 0
	if ok {
		count = len(snapshot)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"has_cached_jobs":   ok && count > 0,
		"cached_jobs_count": count,
		"supported_sites":   []string{"BrighterMonday", "MyJobMag", "Fuzu"},
		"cache_duration":    "1 hour",
	})
}

// handleAnalytics serves one view. Query parameters become part of the
// cache key even though filtering is not applied yet; distinct queries get
// distinct cache entries.
func (s *Server) handleAnalytics(view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		query := r.URL.Query()
		params := map[string]any{
			"category":  valueOr(query.Get("category"), "all"),
			"location":  query.Get("location"),
			"salaryMin": query.Get("salaryMin"),
			"dateRange": valueOr(query.Get("dateRange"), "last-year"),
		}

		snapshot, _ := s.orch.CachedSnapshot(r.Context())

		result, err := s.engine.ComputeView(r.Context(), view, snapshot, params)
		if err != nil {
			s.logger.Error("analytics view failed", zap.String("view", view), zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(result)
	}
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": s.store.NewSessionID(),
	})
}

// handleSession routes /api/sessions/{id} and /api/sessions/{id}/{field}.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	parts := strings.SplitN(strings.Trim(rest, "/"), "/", 2)
	if parts[0] == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}
	sessionID := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodDelete:
		deleted := s.store.DeleteSession(r.Context(), sessionID)
		writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})

	case len(parts) == 2 && r.Method == http.MethodGet:
		value, ok := s.store.GetSessionValue(r.Context(), sessionID, parts[1])
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"value": value})

	case len(parts) == 2 && r.Method == http.MethodPut:
		var value any
		if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		stored := s.store.SetSessionValue(r.Context(), sessionID, parts[1], value, 0)
		writeJSON(w, http.StatusOK, map[string]any{"stored": stored})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func sortedSources(postings []models.JobPosting) []string {
	sources := models.Sources(postings)
	sort.Strings(sources)
	if sources == nil {
		sources = []string{}
	}
	return sources
}
