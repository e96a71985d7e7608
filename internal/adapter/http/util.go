package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"strconv"

	"bodyprogress/internal/app"
	"bodyprogress/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeStoreError maps store errors to HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrPhotoDecode):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEntryDeleteDisabled):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrIndexOutOfRange), errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoData):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeMutation reports the outcome of a store mutation. A failed write still
// returns the applied change, flagged as not persisted.
func writeMutation(w http.ResponseWriter, status int, body map[string]any, err error) {
	switch {
	case err == nil:
		body["persisted"] = true
	case app.IsWriteFailure(err):
		body["persisted"] = false
		body["warning"] = "change applied but could not be saved; it will be lost on restart: " + err.Error()
		status = http.StatusOK
	default:
		writeStoreError(w, err)
		return
	}
	writeJSON(w, status, body)
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func intQuery(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func pathIndex(r *http.Request) (int, error) {
	n, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, fmt.Errorf("%w: index must be an integer", domain.ErrInvalidInput)
	}
	return n, nil
}

func methodNotAllowed(w http.ResponseWriter) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func spaFromDisk(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}

		staticPath := path.Join(dir, reqPath)
		if st, err := os.Stat(staticPath); err == nil && !st.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}
