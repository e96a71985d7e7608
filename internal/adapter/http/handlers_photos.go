package adapthttp

import (
	"fmt"
	"mime"
	"net/http"

	"bodyprogress/internal/domain"
)

func (s *Server) handlePhotos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"items": s.store.Photos()})

	case http.MethodPost:
		dataURL, err := s.readPhoto(w, r)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		photo, err := s.store.AddPhoto(r.Context(), dataURL)
		writeMutation(w, http.StatusCreated, map[string]any{"photo": photo}, err)

	default:
		methodNotAllowed(w)
	}
}

// readPhoto accepts a multipart upload in field "photo" or a JSON body with a
// data URL.
func (s *Server) readPhoto(w http.ResponseWriter, r *http.Request) (string, error) {
	maxBytes := s.photos.MaxBytes()
	// base64 plus form overhead
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes*2)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrPhotoDecode, err)
		}
		f, _, err := r.FormFile("photo")
		if err != nil {
			return "", fmt.Errorf("%w: missing file field \"photo\": %w", domain.ErrInvalidInput, err)
		}
		defer f.Close()
		return s.photos.Decode(f)
	}

	var body struct {
		DataURL string `json:"dataUrl"`
	}
	if err := parseJSON(r, &body); err != nil {
		return "", err
	}
	return s.photos.DecodeDataURL(body.DataURL)
}

func (s *Server) handlePhoto(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	removed, err := s.store.DeletePhoto(r.Context(), index)
	writeMutation(w, http.StatusOK, map[string]any{"deleted": removed}, err)
}

func (s *Server) handlePhotoByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	removed, err := s.store.DeletePhotoByID(r.Context(), r.PathValue("id"))
	writeMutation(w, http.StatusOK, map[string]any{"deleted": removed}, err)
}
