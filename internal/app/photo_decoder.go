package app

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"bodyprogress/internal/domain"
)

// DefaultMaxPhotoBytes caps a single uploaded photo.
const DefaultMaxPhotoBytes = 8 << 20

// formats the image package can verify beyond sniffing
var decodable = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// PhotoDecoder turns uploaded files into storable data URLs.
type PhotoDecoder struct {
	maxBytes int64
}

// NewPhotoDecoder creates a PhotoDecoder. A non-positive maxBytes selects
// DefaultMaxPhotoBytes.
func NewPhotoDecoder(maxBytes int64) *PhotoDecoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxPhotoBytes
	}
	return &PhotoDecoder{maxBytes: maxBytes}
}

// Decode reads an uploaded file and returns it as a base64 data URL.
func (d *PhotoDecoder) Decode(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, d.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read upload: %w", domain.ErrPhotoDecode, err)
	}
	return d.encode(raw)
}

// DecodeDataURL checks a client-encoded "data:<mime>;base64,<payload>" URL and
// returns it re-encoded with the sniffed content type.
func (d *PhotoDecoder) DecodeDataURL(dataURL string) (string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", fmt.Errorf("%w: not a data URL", domain.ErrPhotoDecode)
	}
	_, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", fmt.Errorf("%w: data URL is not base64 encoded", domain.ErrPhotoDecode)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrPhotoDecode, err)
	}
	return d.encode(raw)
}

func (d *PhotoDecoder) encode(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrPhotoDecode)
	}
	if int64(len(raw)) > d.maxBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", domain.ErrPhotoDecode, d.maxBytes)
	}

	mediaType, _, _ := strings.Cut(mimetype.Detect(raw).String(), ";")
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("%w: detected %s", domain.ErrPhotoDecode, mediaType)
	}
	if decodable[mediaType] {
		if _, _, err := image.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrPhotoDecode, err)
		}
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// MaxBytes returns the largest accepted file size.
func (d *PhotoDecoder) MaxBytes() int64 {
	return d.maxBytes
}
