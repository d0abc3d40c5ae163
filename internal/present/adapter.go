// Package present maps aggregator output into chart-ready payloads. It
// does no rendering itself; the UI layer consumes these structures.
package present

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"awdash/internal/models"
)

// GaugePayload feeds the reception-progress gauge.
type GaugePayload struct {
	// Value is a percentage in [0,100].
	Value float64
	// Label names the month the gauge describes, e.g. "February 2024".
	Label string
}

// DistributionEntry is one category of the status breakdown.
type DistributionEntry struct {
	Category string
	Count    int
}

// Gauge formats the current-month summary for the gauge.
func Gauge(current models.MonthReception) GaugePayload {
	return GaugePayload{
		Value: current.Percent(),
		Label: current.Month.Label(),
	}
}

// Distribution orders status counts by descending count, ties broken by
// category name so repeated calls render identically.
func Distribution(counts map[string]int) []DistributionEntry {
	out := make([]DistributionEntry, 0, len(counts))
	for status, count := range counts {
		out = append(out, DistributionEntry{Category: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// FormatPercent renders a ratio as the original report does: one decimal
// place with a percent sign, empty when the denominator is zero.
func FormatPercent(value, total int64) string {
	if total <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f%%", float64(value)/float64(total)*100)
}

// FormatCount renders a count with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
