package app

import (
	"fmt"
	"time"

	"bodyprogress/internal/domain"
)

type entrySource interface {
	Entries() []domain.MeasurementEntry
	Today() time.Time
}

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	entries     entrySource
	storageUnit string
}

// NewChartsService creates a ChartsService. storageUnit is the unit weights
// are recorded in.
func NewChartsService(src entrySource, storageUnit string) *ChartsService {
	return &ChartsService{entries: src, storageUnit: storageUnit}
}

// ChartPoint is one plotted measurement.
type ChartPoint struct {
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	BodyFat  float64 `json:"bodyFat"`
	LeanMass float64 `json:"leanMass"`
	FatMass  float64 `json:"fatMass"`
	Unit     string  `json:"unit"`
}

// DayPoint is a single data point returned by Daily.
type DayPoint struct {
	Day   string      `json:"day"`
	Point *ChartPoint `json:"point"`
}

// Series returns every entry as a chart point in the requested unit.
func (s *ChartsService) Series(unit string) ([]ChartPoint, error) {
	if !domain.ValidUnit(unit) {
		return nil, fmt.Errorf("%w: unit must be \"kg\" or \"lb\"", domain.ErrInvalidInput)
	}
	entries := s.entries.Entries()
	points := make([]ChartPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, s.point(e, unit))
	}
	return points, nil
}

// Daily returns one point per calendar day for the last days days, ending
// today. Days without an entry have a nil Point; days with several entries use
// the last one.
func (s *ChartsService) Daily(days int, unit string) ([]DayPoint, error) {
	if !domain.ValidUnit(unit) {
		return nil, fmt.Errorf("%w: unit must be \"kg\" or \"lb\"", domain.ErrInvalidInput)
	}
	if days > 366 {
		days = 366
	}
	if days < 1 {
		days = 1
	}

	byDay := make(map[string]domain.MeasurementEntry)
	for _, e := range s.entries.Entries() {
		byDay[e.Date] = e
	}

	today := domain.CalendarDay(s.entries.Today())
	points := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStr := today.AddDate(0, 0, -i).Format(domain.DayLayout)
		dp := DayPoint{Day: dayStr}
		if e, ok := byDay[dayStr]; ok {
			p := s.point(e, unit)
			dp.Point = &p
		}
		points = append(points, dp)
	}
	return points, nil
}

func (s *ChartsService) point(e domain.MeasurementEntry, unit string) ChartPoint {
	from := e.Unit
	if from == "" {
		from = s.storageUnit
	}
	e = domain.ConvertMeasurement(e, from, unit)
	return ChartPoint{
		Date:     e.Date,
		Weight:   e.Weight,
		BodyFat:  e.BodyFatPercent,
		LeanMass: domain.LeanMass(e.Weight, e.BodyFatPercent),
		FatMass:  domain.FatMass(e.Weight, e.BodyFatPercent),
		Unit:     unit,
	}
}
