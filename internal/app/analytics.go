package app

import "bodyprogress/internal/domain"

// Trend values.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// SeriesStats summarises one measured series.
type SeriesStats struct {
	Current float64 `json:"current"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Trend   string  `json:"trend"`
}

// Analytics summarises every recorded entry.
type Analytics struct {
	TotalEntries int         `json:"totalEntries"`
	Weight       SeriesStats `json:"weight"`
	BodyFat      SeriesStats `json:"bodyFat"`
}

// Analytics returns summary statistics over all entries, or domain.ErrNoData.
func (s *Store) Analytics() (Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeAnalytics(s.entriesInUnit())
}

// ComputeAnalytics summarises entries sorted ascending by date.
func ComputeAnalytics(entries []domain.MeasurementEntry) (Analytics, error) {
	if len(entries) == 0 {
		return Analytics{}, domain.ErrNoData
	}

	weights := make([]float64, len(entries))
	bodyFats := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
		bodyFats[i] = e.BodyFatPercent
	}

	return Analytics{
		TotalEntries: len(entries),
		Weight:       seriesStats(weights),
		BodyFat:      seriesStats(bodyFats),
	}, nil
}

func seriesStats(values []float64) SeriesStats {
	st := SeriesStats{
		Current: values[len(values)-1],
		Min:     values[0],
		Max:     values[0],
		Trend:   TrendStable,
	}
	var sum float64
	for _, v := range values {
		sum += v
		st.Min = min(st.Min, v)
		st.Max = max(st.Max, v)
	}
	st.Average = sum / float64(len(values))

	if n := len(values); n > 1 {
		switch prev := values[n-2]; {
		case st.Current > prev:
			st.Trend = TrendIncreasing
		case st.Current < prev:
			st.Trend = TrendDecreasing
		}
	}
	return st
}
