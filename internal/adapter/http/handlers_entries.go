package adapthttp

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"unit": s.ui.Unit, "items": s.store.Entries()})

	case http.MethodPost:
		// numbers or decimal strings as typed by the user
		var body struct {
			Weight  json.Number `json:"weight"`
			BodyFat json.Number `json:"bodyFat"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, err := s.store.AddEntryRaw(r.Context(), body.Weight.String(), body.BodyFat.String())
		writeMutation(w, http.StatusCreated, map[string]any{"entry": entry}, err)

	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	removed, err := s.store.DeleteEntry(r.Context(), index)
	writeMutation(w, http.StatusOK, map[string]any{"deleted": removed}, err)
}
