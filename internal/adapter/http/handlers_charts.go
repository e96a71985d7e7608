package adapthttp

import (
	"net/http"
)

func (s *Server) chartUnit(r *http.Request) string {
	if unit := r.URL.Query().Get("unit"); unit != "" {
		return unit
	}
	return s.ui.Unit
}

func (s *Server) handleChartsEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	unit := s.chartUnit(r)
	points, err := s.charts.Series(unit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": unit, "items": points})
}

func (s *Server) handleChartsDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	days := intQuery(r, "days", 90)
	unit := s.chartUnit(r)
	points, err := s.charts.Daily(days, unit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"days":  len(points),
		"unit":  unit,
		"items": points,
	})
}
