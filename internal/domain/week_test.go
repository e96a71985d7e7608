package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodyprogress/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day, want string
	}{
		{"2026-03-02", "2026-03-02"}, // Monday
		{"2026-03-04", "2026-03-02"},
		{"2026-03-08", "2026-03-02"}, // Sunday
		{"2026-03-09", "2026-03-09"},
		{"2026-01-01", "2025-12-29"},
	}
	for _, tc := range tests {
		t.Run(tc.day, func(t *testing.T) {
			got := domain.WeekStart(day(t, tc.day))
			assert.Equal(t, tc.want, got.Format(domain.DayLayout))
		})
	}
}

func TestISOWeek(t *testing.T) {
	year, week := domain.ISOWeek(day(t, "2026-01-01"))
	assert.Equal(t, 2026, year)
	assert.Equal(t, 1, week)

	year, week = domain.ISOWeek(day(t, "2026-03-04"))
	assert.Equal(t, 2026, year)
	assert.Equal(t, 10, week)
}

func TestComputeWeeklyWindow_FiltersOtherWeeks(t *testing.T) {
	entries := []domain.MeasurementEntry{
		{Date: "2026-03-02", Weight: 81, BodyFatPercent: 20},
		{Date: "2026-03-09", Weight: 79, BodyFatPercent: 19},
	}
	ref := time.Date(2026, 3, 4, 12, 0, 0, 0, time.Local)

	w := domain.ComputeWeeklyWindow(entries, domain.TargetConfig{}, ref)

	assert.Equal(t, "2026-03-02", w.WeekStart)
	assert.Equal(t, "2026-03-08", w.WeekEnd)
	assert.Equal(t, 10, w.Week)
	require.Len(t, w.Entries, 1)
	assert.Equal(t, "2026-03-02", w.Entries[0].Date)
	require.Len(t, w.Points, 7)
	assert.Equal(t, "Mon", w.Points[0].Day)
	assert.Equal(t, "Sun", w.Points[6].Day)
	require.NotNil(t, w.Points[0].Actual)
	assert.Equal(t, 81.0, *w.Points[0].Actual)
	for _, p := range w.Points[1:] {
		assert.Nil(t, p.Actual, p.Date)
	}
}

func TestComputeWeeklyWindow_TargetLine(t *testing.T) {
	entries := []domain.MeasurementEntry{
		{Date: "2026-03-02", Weight: 80.5},
		{Date: "2026-03-03", Weight: 81},
		{Date: "2026-03-03", Weight: 81.5},
	}
	targets := domain.TargetConfig{WeekStartWeight: domain.Float(80), WeekEndWeight: domain.Float(85)}

	w := domain.ComputeWeeklyWindow(entries, targets, time.Date(2026, 3, 5, 9, 0, 0, 0, time.Local))

	require.True(t, w.TargetsSet)
	want := []float64{80, 81, 82, 83, 84, 85, 85}
	for i, p := range w.Points {
		require.NotNil(t, p.Target, p.Day)
		assert.InDelta(t, want[i], *p.Target, 1e-9, p.Day)
	}
	require.NotNil(t, w.Points[1].Actual)
	assert.Equal(t, 81.5, *w.Points[1].Actual, "last entry of the day wins")
	require.NotNil(t, w.Progress)
	assert.InDelta(t, 30.0, *w.Progress, 1e-9)
}

func TestComputeWeeklyWindow_TargetsNotSet(t *testing.T) {
	entries := []domain.MeasurementEntry{{Date: "2026-03-02", Weight: 84}}
	tests := []struct {
		name    string
		targets domain.TargetConfig
	}{
		{"unset", domain.TargetConfig{}},
		{"only start", domain.TargetConfig{WeekStartWeight: domain.Float(85)}},
		{"end below start", domain.TargetConfig{WeekStartWeight: domain.Float(85), WeekEndWeight: domain.Float(83)}},
		{"equal", domain.TargetConfig{WeekStartWeight: domain.Float(85), WeekEndWeight: domain.Float(85)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := domain.ComputeWeeklyWindow(entries, tc.targets, time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local))
			assert.False(t, w.TargetsSet)
			assert.Nil(t, w.Progress)
			for _, p := range w.Points {
				assert.Nil(t, p.Target)
			}
			require.NotNil(t, w.LatestWeight)
			assert.Equal(t, 84.0, *w.LatestWeight)
		})
	}
}
