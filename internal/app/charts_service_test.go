package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodyprogress/internal/app"
	"bodyprogress/internal/domain"
)

func newChartsStore(t *testing.T, entriesJSON string) *app.Store {
	t.Helper()
	kv := newMockKV()
	require.NoError(t, kv.Set(context.Background(), domain.KeyEntries, []byte(entriesJSON)))
	return newTestStore(t, kv, app.StoreOptions{Now: fixedClock("2026-03-04")})
}

func TestSeries_BadUnit(t *testing.T) {
	svc := app.NewChartsService(newChartsStore(t, `[]`), domain.UnitKg)
	_, err := svc.Series("stones")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSeries_DerivedMasses(t *testing.T) {
	svc := app.NewChartsService(newChartsStore(t, `[
		{"date":"2026-03-01","weight":100,"bodyFat":25},
		{"date":"2026-03-02","weight":90,"bodyFat":20}
	]`), domain.UnitKg)

	points, err := svc.Series(domain.UnitKg)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2026-03-01", points[0].Date)
	assert.InDelta(t, 75.0, points[0].LeanMass, 1e-9)
	assert.InDelta(t, 25.0, points[0].FatMass, 1e-9)
	assert.InDelta(t, 72.0, points[1].LeanMass, 1e-9)
	assert.Equal(t, domain.UnitKg, points[1].Unit)
}

func TestSeries_ConvertUnit(t *testing.T) {
	svc := app.NewChartsService(newChartsStore(t, `[{"date":"2026-03-01","weight":100,"bodyFat":20}]`), domain.UnitKg)

	points, err := svc.Series(domain.UnitLb)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, 220.462, points[0].Weight, 0.01)
	assert.Equal(t, 20.0, points[0].BodyFat)
	assert.Equal(t, domain.UnitLb, points[0].Unit)
}

func TestSeries_MixedUnits(t *testing.T) {
	// the storage unit switched from kg to lb after the first two entries
	svc := app.NewChartsService(newChartsStore(t, `[
		{"date":"2026-03-01","weight":100,"bodyFat":20},
		{"date":"2026-03-02","weight":99,"unit":"kg","bodyFat":20},
		{"date":"2026-03-03","weight":216.05,"unit":"lb","bodyFat":20}
	]`), domain.UnitLb)

	points, err := svc.Series(domain.UnitKg)
	require.NoError(t, err)
	require.Len(t, points, 3)
	// legacy entry without a unit reads as the configured unit
	assert.InDelta(t, 45.36, points[0].Weight, 0.01)
	assert.InDelta(t, 99.0, points[1].Weight, 1e-9)
	assert.InDelta(t, 98.0, points[2].Weight, 0.01)
	assert.InDelta(t, 78.4, points[2].LeanMass, 0.01)

	points, err = svc.Series(domain.UnitLb)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, points[0].Weight, 1e-9)
	assert.InDelta(t, 218.26, points[1].Weight, 0.01)
	assert.InDelta(t, 216.05, points[2].Weight, 1e-9)
}

func TestDaily_FillsGaps(t *testing.T) {
	svc := app.NewChartsService(newChartsStore(t, `[
		{"date":"2026-03-02","weight":81,"bodyFat":20},
		{"date":"2026-03-04","weight":80,"bodyFat":20},
		{"date":"2026-03-04","weight":79.5,"bodyFat":20}
	]`), domain.UnitKg)

	points, err := svc.Daily(3, domain.UnitKg)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, "2026-03-02", points[0].Day)
	require.NotNil(t, points[0].Point)
	assert.Nil(t, points[1].Point)
	require.NotNil(t, points[2].Point)
	assert.Equal(t, 79.5, points[2].Point.Weight)
}

func TestDaily_Clamps(t *testing.T) {
	svc := app.NewChartsService(newChartsStore(t, `[]`), domain.UnitKg)

	points, err := svc.Daily(1000, domain.UnitKg)
	require.NoError(t, err)
	assert.Len(t, points, 366)

	points, err = svc.Daily(0, domain.UnitKg)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "2026-03-04", points[0].Day)
}
