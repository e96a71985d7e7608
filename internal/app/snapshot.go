package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"bodyprogress/internal/domain"
)

// Snapshot is a single-document backup of all three collections.
type Snapshot struct {
	Entries    []domain.MeasurementEntry `json:"dataEntries"`
	Targets    domain.TargetConfig       `json:"targets"`
	Photos     []domain.ProgressPhoto    `json:"photos"`
	ExportedAt time.Time                 `json:"exportedAt"`
}

// Export returns a copy of the whole store.
func (s *Store) Export() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Entries:    append([]domain.MeasurementEntry{}, s.entries...),
		Targets:    s.targets,
		Photos:     append([]domain.ProgressPhoto{}, s.photos...),
		ExportedAt: s.now().UTC(),
	}
}

// Import validates snap and replaces all three collections with it. Nothing
// changes when validation fails. Write failures for the individual keys are
// combined into the returned error.
func (s *Store) Import(ctx context.Context, snap Snapshot) error {
	entries := append([]domain.MeasurementEntry{}, snap.Entries...)
	for i, e := range entries {
		if _, err := domain.ParseDay(e.Date); err != nil {
			return fmt.Errorf("%w: entry %d: bad date %q", domain.ErrInvalidInput, i, e.Date)
		}
		if err := validateMeasurement(e.Weight, e.BodyFatPercent); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if e.Unit != "" && !domain.ValidUnit(e.Unit) {
			return fmt.Errorf("%w: entry %d: unknown unit %q", domain.ErrInvalidInput, i, e.Unit)
		}
	}
	now := s.now().UTC()
	photos := append([]domain.ProgressPhoto{}, snap.Photos...)
	for i, p := range photos {
		if p.DataURL == "" {
			return fmt.Errorf("%w: photo %d has no image", domain.ErrInvalidInput, i)
		}
		dataURL, err := s.photoDecoder.DecodeDataURL(p.DataURL)
		if err != nil {
			return fmt.Errorf("photo %d: %w", i, err)
		}
		photos[i].DataURL = dataURL
		if p.CapturedAt.IsZero() {
			photos[i].CapturedAt = now
		}
	}
	targets := snap.Targets.Normalize()
	if err := validateStruct(targets); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = s.newID()
		}
	}
	for i := range photos {
		if photos[i].ID == "" {
			photos[i].ID = s.newID()
		}
	}
	domain.SortEntries(entries)

	s.entries = entries
	s.targets = targets
	s.photos = photos

	return multierr.Combine(
		s.persist(ctx, domain.KeyEntries, s.entries),
		s.persist(ctx, domain.KeyTargets, s.targets),
		s.persist(ctx, domain.KeyPhotos, s.photos),
	)
}
