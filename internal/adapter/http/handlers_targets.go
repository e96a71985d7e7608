package adapthttp

import (
	"net/http"

	"bodyprogress/internal/domain"
)

func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"targets": s.store.Targets()})

	case http.MethodPut, http.MethodPatch:
		var body domain.TargetConfig
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		var (
			targets domain.TargetConfig
			err     error
		)
		if r.Method == http.MethodPut {
			targets, err = s.store.SetTargets(ctx, body)
		} else {
			targets, err = s.store.UpdateTargets(ctx, body)
		}
		writeMutation(w, http.StatusOK, map[string]any{"targets": targets}, err)

	default:
		methodNotAllowed(w)
	}
}
