// Package models defines the core data types shared across the application.
package models

import "time"

// ShipmentRecord is one row of the source shipment report. The export has
// one row per SKU per shipment, so the same ShipmentID can appear on
// multiple rows.
type ShipmentRecord struct {
	ShipmentID  string
	Status      string
	CreatedDate time.Time
	ShippedQty  int64
	ReceivedQty int64
}

// Month identifies a calendar month bucket.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf truncates a date to its calendar month.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Before reports whether m is chronologically before other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Prev returns the month immediately before m.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Start returns midnight UTC on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Label returns the human-readable month name, e.g. "February 2024".
func (m Month) Label() string {
	return m.Start().Format("January 2006")
}

// String returns the month in "2006-01" form.
func (m Month) String() string {
	return m.Start().Format("2006-01")
}

// Report is a loaded shipment report table. It is created fresh per loaded
// file and treated as immutable by everything downstream.
type Report struct {
	// Source is the path the report was loaded from.
	Source string
	// Rows are the valid records, in file order.
	Rows []ShipmentRecord
	// SkippedRows counts malformed rows dropped during parsing.
	SkippedRows int
	// LoadedAt is when parsing finished.
	LoadedAt time.Time
}

// Len returns the number of valid rows.
func (r *Report) Len() int {
	return len(r.Rows)
}

// Months returns the distinct months present in the report, in
// chronological order.
func (r *Report) Months() []Month {
	seen := make(map[Month]bool)
	var months []Month
	for i := range r.Rows {
		m := MonthOf(r.Rows[i].CreatedDate)
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	for i := 1; i < len(months); i++ {
		for j := i; j > 0 && months[j].Before(months[j-1]); j-- {
			months[j], months[j-1] = months[j-1], months[j]
		}
	}
	return months
}

// LatestMonth returns the latest month present in the report and false if
// the report has no rows.
func (r *Report) LatestMonth() (Month, bool) {
	months := r.Months()
	if len(months) == 0 {
		return Month{}, false
	}
	return months[len(months)-1], true
}
