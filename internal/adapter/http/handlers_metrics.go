package adapthttp

import (
	"fmt"
	"net/http"
	"time"

	"bodyprogress/internal/domain"
)

func (s *Server) handleMetricsCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": s.ui.Unit, "metrics": s.store.CurrentMetrics()})
}

func (s *Server) handleMetricsWeekly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	ref := s.store.Today()
	if v := r.URL.Query().Get("date"); v != "" {
		d, err := time.ParseInLocation(domain.DayLayout, v, time.Local)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput))
			return
		}
		ref = d
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": s.ui.Unit, "week": s.store.WeeklyWindow(ref)})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	a, err := s.store.Analytics()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": s.ui.Unit, "analytics": a})
}
