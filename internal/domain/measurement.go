// Package domain contains the core business entities, the pure derived-metric
// functions and the persistence port.
package domain

import (
	"sort"
	"time"
)

// DayLayout is the calendar-day format used for entry dates.
const DayLayout = "2006-01-02"

// MeasurementEntry is one dated weight / body-fat measurement.
type MeasurementEntry struct {
	ID             string    `json:"id,omitempty"`
	Date           string    `json:"date"`
	Weight         float64   `json:"weight"`
	// Unit is empty on entries recorded before units were stored; those read
	// as the configured unit.
	Unit           string    `json:"unit,omitempty"`
	BodyFatPercent float64   `json:"bodyFat"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
}

// LocalDay formats t as a calendar day in the local time zone.
func LocalDay(t time.Time) string {
	return t.In(time.Local).Format(DayLayout)
}

// ParseDay parses a calendar day into midnight UTC so that day arithmetic is
// not affected by DST transitions.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(DayLayout, day)
}

// SortEntries orders entries ascending by date. Entries sharing a date keep
// their insertion order.
func SortEntries(entries []MeasurementEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}

// LatestEntry returns the last element of a sorted collection, or nil.
func LatestEntry(entries []MeasurementEntry) *MeasurementEntry {
	if len(entries) == 0 {
		return nil
	}
	e := entries[len(entries)-1]
	return &e
}
