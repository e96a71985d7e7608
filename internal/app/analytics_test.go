package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodyprogress/internal/app"
	"bodyprogress/internal/domain"
)

func TestComputeAnalytics_NoData(t *testing.T) {
	_, err := app.ComputeAnalytics(nil)
	assert.ErrorIs(t, err, domain.ErrNoData)
}

func TestComputeAnalytics(t *testing.T) {
	entries := []domain.MeasurementEntry{
		{Date: "2026-03-01", Weight: 82, BodyFatPercent: 20},
		{Date: "2026-03-02", Weight: 80, BodyFatPercent: 20},
		{Date: "2026-03-03", Weight: 81, BodyFatPercent: 20},
	}
	a, err := app.ComputeAnalytics(entries)
	require.NoError(t, err)

	assert.Equal(t, 3, a.TotalEntries)
	assert.Equal(t, 81.0, a.Weight.Current)
	assert.InDelta(t, 81.0, a.Weight.Average, 1e-9)
	assert.Equal(t, 80.0, a.Weight.Min)
	assert.Equal(t, 82.0, a.Weight.Max)
	assert.Equal(t, app.TrendIncreasing, a.Weight.Trend)
	assert.Equal(t, app.TrendStable, a.BodyFat.Trend)
}

func TestComputeAnalytics_SingleEntryIsStable(t *testing.T) {
	a, err := app.ComputeAnalytics([]domain.MeasurementEntry{{Date: "2026-03-01", Weight: 82, BodyFatPercent: 20}})
	require.NoError(t, err)
	assert.Equal(t, app.TrendStable, a.Weight.Trend)
}

func TestStoreAnalytics(t *testing.T) {
	s := newTestStore(t, newMockKV(), app.StoreOptions{})
	_, err := s.Analytics()
	assert.ErrorIs(t, err, domain.ErrNoData)

	_, err = s.AddEntry(context.Background(), 80, 20)
	require.NoError(t, err)
	a, err := s.Analytics()
	require.NoError(t, err)
	assert.Equal(t, 1, a.TotalEntries)
}
