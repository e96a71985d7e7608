package domain

import "time"

// weekFractions places the weekly target line across Monday..Sunday. Saturday
// and Sunday share the end point.
var weekFractions = [7]float64{0, 0.2, 0.4, 0.6, 0.8, 1.0, 1.0}

// WeekPoint is one day-of-week slot of a weekly window.
type WeekPoint struct {
	Day    string   `json:"day"`
	Date   string   `json:"date"`
	Target *float64 `json:"target"`
	Actual *float64 `json:"actual"`
}

// WeeklyWindow is the Monday-to-Sunday bucket containing a reference date.
type WeeklyWindow struct {
	Year         int                `json:"year"`
	Week         int                `json:"week"`
	WeekStart    string             `json:"weekStart"`
	WeekEnd      string             `json:"weekEnd"`
	TargetsSet   bool               `json:"targetsSet"`
	Points       []WeekPoint        `json:"points"`
	Entries      []MeasurementEntry `json:"entries"`
	LatestWeight *float64           `json:"latestWeight"`
	Progress     *float64           `json:"progress"`
}

// CalendarDay drops the clock and zone of t, keeping its local calendar day
// as midnight UTC.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing day.
func WeekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ISOWeek returns the ISO-8601 year and week number of day.
func ISOWeek(day time.Time) (year, week int) {
	return day.ISOWeek()
}

// ComputeWeeklyWindow buckets entries into the week containing ref and lays the
// weekly target line over it. Entries must be sorted ascending by date.
func ComputeWeeklyWindow(entries []MeasurementEntry, targets TargetConfig, ref time.Time) WeeklyWindow {
	day := CalendarDay(ref)
	start := WeekStart(day)
	year, week := ISOWeek(day)

	w := WeeklyWindow{
		Year:      year,
		Week:      week,
		WeekStart: start.Format(DayLayout),
		WeekEnd:   start.AddDate(0, 0, 6).Format(DayLayout),
		Points:    make([]WeekPoint, 7),
		Entries:   []MeasurementEntry{},
	}

	from, to := targets.WeekStartWeight, targets.WeekEndWeight
	w.TargetsSet = from != nil && to != nil && *to > *from

	for i := range w.Points {
		d := start.AddDate(0, 0, i)
		w.Points[i] = WeekPoint{Day: d.Weekday().String()[:3], Date: d.Format(DayLayout)}
		if w.TargetsSet {
			t := *from + (*to-*from)*weekFractions[i]
			w.Points[i].Target = &t
		}
	}

	for _, e := range entries {
		d, err := ParseDay(e.Date)
		if err != nil || !WeekStart(d).Equal(start) {
			continue
		}
		w.Entries = append(w.Entries, e)
		slot := int(d.Sub(start).Hours() / 24)
		v := e.Weight
		w.Points[slot].Actual = &v
	}

	if n := len(w.Entries); n > 0 {
		v := w.Entries[n-1].Weight
		w.LatestWeight = &v
	}
	if w.TargetsSet && w.LatestWeight != nil {
		p := (*w.LatestWeight - *from) / (*to - *from) * 100
		w.Progress = &p
	}
	return w
}
