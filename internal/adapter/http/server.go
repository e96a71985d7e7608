package adapthttp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bodyprogress/internal/app"
	"bodyprogress/internal/domain"
	"bodyprogress/internal/telemetry/metrics"
)

// UISettings are served to the web client from /api/config.
type UISettings struct {
	Theme string
	Unit  string
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	store  *app.Store
	charts *app.ChartsService
	quotes *app.QuoteService
	photos *app.PhotoDecoder
	ui     UISettings
	webDir string

	metrics  *metrics.Manager
	gatherer prometheus.Gatherer
}

// New creates a Server wired to the given application services.
func New(st *app.Store, cs *app.ChartsService, qs *app.QuoteService, pd *app.PhotoDecoder, ui UISettings, webDir string) *Server {
	return &Server{store: st, charts: cs, quotes: qs, photos: pd, ui: ui, webDir: webDir}
}

// WithMetrics enables request metrics and serves gatherer on /metrics.
func (s *Server) WithMetrics(m *metrics.Manager, gatherer prometheus.Gatherer) *Server {
	s.metrics = m
	s.gatherer = gatherer
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	api := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc("/api"+pattern, h)
	}

	api("/health", s.handleHealth)
	api("/config", s.handleConfig)

	api("/entries", s.handleEntries)
	api("/entries/{index}", s.handleEntry)

	api("/targets", s.handleTargets)

	api("/photos", s.handlePhotos)
	api("/photos/{index}", s.handlePhoto)
	api("/photos/id/{id}", s.handlePhotoByID)

	api("/metrics/current", s.handleMetricsCurrent)
	api("/metrics/weekly", s.handleMetricsWeekly)
	api("/analytics", s.handleAnalytics)

	api("/charts/entries", s.handleChartsEntries)
	api("/charts/daily", s.handleChartsDaily)

	api("/quote", s.handleQuote)
	api("/quote/initial", s.handleQuoteInitial)

	api("/export", s.handleExport)
	api("/import", s.handleImport)

	api("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "no such endpoint"})
	})

	if s.gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	mux.Handle("/", spaFromDisk(s.webDir))

	return withNoCache(s.recoveryMiddleware(s.loggingMiddleware(s.metricsMiddleware(mux))))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	warnings := []string{}
	for _, err := range s.store.LoadWarnings() {
		warnings = append(warnings, err.Error())
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "warnings": warnings})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"theme":              s.ui.Theme,
		"themes":             domain.Themes,
		"unit":               s.ui.Unit,
		"entryDeleteEnabled": s.store.EntryDeleteEnabled(),
		"maxPhotoBytes":      s.photos.MaxBytes(),
	})
}
