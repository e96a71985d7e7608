package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bodyprogress/internal/domain"
	"bodyprogress/internal/telemetry/metrics"
)

// StoreOptions configures a Store.
type StoreOptions struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// NewID defaults to random UUIDs.
	NewID func() string
	// Unit is recorded on new entries and is the unit targets are set in.
	// Defaults to kg.
	Unit string
	// Photos checks imported photos. Defaults to NewPhotoDecoder(0).
	Photos *PhotoDecoder
	// AllowEntryDelete enables DeleteEntry. Entries are append-only otherwise.
	AllowEntryDelete bool
	// Metrics is optional.
	Metrics *metrics.Manager
}

// Store owns the measurement entries, the targets and the progress photos.
// Every mutation is written through to the key-value store before it returns.
type Store struct {
	mu sync.Mutex
	kv domain.KeyValueStore

	entries []domain.MeasurementEntry
	targets domain.TargetConfig
	photos  []domain.ProgressPhoto

	loadWarnings []error

	now              func() time.Time
	newID            func() string
	unit             string
	photoDecoder     *PhotoDecoder
	allowEntryDelete bool
	metrics          *metrics.Manager
}

// NewStore creates a Store and loads its three collections from kv. Values
// that cannot be read fall back to their defaults; the failures are available
// from LoadWarnings.
func NewStore(ctx context.Context, kv domain.KeyValueStore, opts StoreOptions) *Store {
	s := &Store{
		kv:               kv,
		now:              opts.Now,
		newID:            opts.NewID,
		unit:             opts.Unit,
		photoDecoder:     opts.Photos,
		allowEntryDelete: opts.AllowEntryDelete,
		metrics:          opts.Metrics,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.unit == "" {
		s.unit = domain.UnitKg
	}
	if s.photoDecoder == nil {
		s.photoDecoder = NewPhotoDecoder(0)
	}

	entries, err := LoadJSON(ctx, kv, domain.KeyEntries, []domain.MeasurementEntry{})
	s.loadFailed(domain.KeyEntries, err)
	targets, err := LoadJSON(ctx, kv, domain.KeyTargets, domain.TargetConfig{})
	s.loadFailed(domain.KeyTargets, err)
	photos, err := LoadJSON(ctx, kv, domain.KeyPhotos, []domain.ProgressPhoto{})
	s.loadFailed(domain.KeyPhotos, err)

	if entries == nil {
		entries = []domain.MeasurementEntry{}
	}
	if photos == nil {
		photos = []domain.ProgressPhoto{}
	}
	domain.SortEntries(entries)

	s.entries = entries
	s.targets = targets.Normalize()
	s.photos = photos
	return s
}

func (s *Store) loadFailed(key string, err error) {
	if err == nil {
		return
	}
	log.Warnf("store: %s: falling back to default: %s", key, err)
	s.loadWarnings = append(s.loadWarnings, err)
	if s.metrics != nil {
		s.metrics.CounterPersistenceErrors.WithLabelValues("read", key).Inc()
	}
}

// LoadWarnings returns the read failures recovered from at startup.
func (s *Store) LoadWarnings() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.loadWarnings...)
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	if err := SaveJSON(ctx, s.kv, key, v); err != nil {
		log.Errorf("store: %s", err)
		if s.metrics != nil {
			s.metrics.CounterPersistenceErrors.WithLabelValues("write", key).Inc()
		}
		return err
	}
	return nil
}

// --- entries ---

// Entries returns a copy of the entries, sorted ascending by date.
func (s *Store) Entries() []domain.MeasurementEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.MeasurementEntry{}, s.entries...)
}

// AddEntryRaw parses user-entered decimal strings and adds an entry.
func (s *Store) AddEntryRaw(ctx context.Context, weight, bodyFat string) (domain.MeasurementEntry, error) {
	w, err := parseDecimal("weight", weight)
	if err != nil {
		return domain.MeasurementEntry{}, err
	}
	bf, err := parseDecimal("bodyFat", bodyFat)
	if err != nil {
		return domain.MeasurementEntry{}, err
	}
	return s.AddEntry(ctx, w, bf)
}

// AddEntry records a measurement for today's local calendar day. Values
// outside weight > 0 and 0 <= bodyFat <= 100 are rejected.
//
// If the write fails the entry is kept in memory and returned together with
// an error wrapping domain.ErrPersistenceWrite.
func (s *Store) AddEntry(ctx context.Context, weight, bodyFat float64) (domain.MeasurementEntry, error) {
	if err := validateMeasurement(weight, bodyFat); err != nil {
		return domain.MeasurementEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := domain.MeasurementEntry{
		ID:             s.newID(),
		Date:           domain.LocalDay(now),
		Weight:         weight,
		Unit:           s.unit,
		BodyFatPercent: bodyFat,
		CreatedAt:      now.UTC(),
	}
	s.entries = append(s.entries, entry)
	domain.SortEntries(s.entries)

	if s.metrics != nil {
		s.metrics.CounterEntriesAdded.Inc()
	}
	return entry, s.persist(ctx, domain.KeyEntries, s.entries)
}

// DeleteEntry removes the entry at index, when entry deletion is enabled.
func (s *Store) DeleteEntry(ctx context.Context, index int) (domain.MeasurementEntry, error) {
	if !s.allowEntryDelete {
		return domain.MeasurementEntry{}, domain.ErrEntryDeleteDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return domain.MeasurementEntry{}, fmt.Errorf("%w: entry %d of %d", domain.ErrIndexOutOfRange, index, len(s.entries))
	}
	removed := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)

	if s.metrics != nil {
		s.metrics.CounterEntriesDeleted.Inc()
	}
	return removed, s.persist(ctx, domain.KeyEntries, s.entries)
}

// EntryDeleteEnabled reports whether DeleteEntry is available.
func (s *Store) EntryDeleteEnabled() bool {
	return s.allowEntryDelete
}

// --- targets ---

// Targets returns the current target configuration.
func (s *Store) Targets() domain.TargetConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targets
}

// SetTargets replaces the whole target configuration. Fields left nil in cfg
// become unset.
func (s *Store) SetTargets(ctx context.Context, cfg domain.TargetConfig) (domain.TargetConfig, error) {
	if err := validateStruct(cfg); err != nil {
		return domain.TargetConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceTargets(ctx, cfg)
}

// UpdateTargets overwrites only the fields set in cfg.
func (s *Store) UpdateTargets(ctx context.Context, cfg domain.TargetConfig) (domain.TargetConfig, error) {
	if err := validateStruct(cfg); err != nil {
		return domain.TargetConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceTargets(ctx, s.targets.Merge(cfg))
}

func (s *Store) replaceTargets(ctx context.Context, cfg domain.TargetConfig) (domain.TargetConfig, error) {
	s.targets = cfg.Normalize()
	if s.metrics != nil {
		s.metrics.CounterTargetUpdates.Inc()
	}
	return s.targets, s.persist(ctx, domain.KeyTargets, s.targets)
}

// --- photos ---

// Photos returns a copy of the photos, newest first.
func (s *Store) Photos() []domain.ProgressPhoto {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ProgressPhoto{}, s.photos...)
}

// AddPhoto stamps an already decoded image and puts it first.
func (s *Store) AddPhoto(ctx context.Context, dataURL string) (domain.ProgressPhoto, error) {
	if dataURL == "" {
		return domain.ProgressPhoto{}, fmt.Errorf("%w: empty image payload", domain.ErrPhotoDecode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	photo := domain.ProgressPhoto{
		ID:         s.newID(),
		DataURL:    dataURL,
		CapturedAt: s.now().UTC(),
	}
	s.photos = append([]domain.ProgressPhoto{photo}, s.photos...)

	if s.metrics != nil {
		s.metrics.CounterPhotosAdded.Inc()
	}
	return photo, s.persist(ctx, domain.KeyPhotos, s.photos)
}

// DeletePhoto removes the photo at index. An index that no longer refers to a
// photo is reported as domain.ErrIndexOutOfRange.
func (s *Store) DeletePhoto(ctx context.Context, index int) (domain.ProgressPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.photos) {
		return domain.ProgressPhoto{}, fmt.Errorf("%w: photo %d of %d", domain.ErrIndexOutOfRange, index, len(s.photos))
	}
	return s.removePhoto(ctx, index)
}

// DeletePhotoByID removes the photo with the given id.
func (s *Store) DeletePhotoByID(ctx context.Context, id string) (domain.ProgressPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.photos {
		if p.ID == id {
			return s.removePhoto(ctx, i)
		}
	}
	return domain.ProgressPhoto{}, fmt.Errorf("%w: photo %q", domain.ErrNotFound, id)
}

func (s *Store) removePhoto(ctx context.Context, index int) (domain.ProgressPhoto, error) {
	removed := s.photos[index]
	s.photos = append(s.photos[:index], s.photos[index+1:]...)

	if s.metrics != nil {
		s.metrics.CounterPhotosDeleted.Inc()
	}
	return removed, s.persist(ctx, domain.KeyPhotos, s.photos)
}

// --- derived reads ---

// CurrentMetrics derives the dashboard metrics from the latest entry.
func (s *Store) CurrentMetrics() domain.CurrentMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeCurrentMetrics(domain.LatestEntry(s.entriesInUnit()), s.targets)
}

// WeeklyWindow returns the Monday-to-Sunday window containing ref.
func (s *Store) WeeklyWindow(ref time.Time) domain.WeeklyWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeWeeklyWindow(s.entriesInUnit(), s.targets, ref)
}

// entriesInUnit returns the entries with weights in the store unit, the unit
// targets are set in. Callers hold s.mu.
func (s *Store) entriesInUnit() []domain.MeasurementEntry {
	out := make([]domain.MeasurementEntry, len(s.entries))
	for i, e := range s.entries {
		if e.Unit != "" && e.Unit != s.unit {
			e = domain.ConvertMeasurement(e, e.Unit, s.unit)
		}
		out[i] = e
	}
	return out
}

// Today returns the current time from the store clock.
func (s *Store) Today() time.Time {
	return s.now()
}

// IsWriteFailure reports whether err only signals that a mutation, already
// applied in memory, could not be persisted.
func IsWriteFailure(err error) bool {
	return errors.Is(err, domain.ErrPersistenceWrite)
}
