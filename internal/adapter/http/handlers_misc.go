package adapthttp

import (
	"fmt"
	"net/http"

	"bodyprogress/internal/app"
)

// largest accepted import document
const maxImportBytes = 256 << 20

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.quotes.Random())
}

func (s *Server) handleQuoteInitial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, s.quotes.Initial())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	snap := s.store.Export()
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="bodyprogress-%s.json"`, snap.ExportedAt.Format("20060102-150405")))
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	var snap app.Snapshot
	if err := parseJSON(r, &snap); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	err := s.store.Import(r.Context(), snap)
	writeMutation(w, http.StatusOK, map[string]any{
		"entries": len(snap.Entries),
		"photos":  len(snap.Photos),
	}, err)
}
