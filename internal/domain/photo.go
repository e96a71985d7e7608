package domain

import "time"

// ProgressPhoto is a stored progress photograph encoded as a data URL.
type ProgressPhoto struct {
	ID         string    `json:"id,omitempty"`
	DataURL    string    `json:"dataUrl"`
	CapturedAt time.Time `json:"date"`
}
