// Package analysis computes the derived summaries for a loaded shipment
// report. Everything here is a pure function of the report table.
package analysis

import (
	"sort"
	"strings"
	"time"

	"awdash/internal/models"
)

// ReceivedRule decides whether a shipment counts as fully received.
type ReceivedRule struct {
	statuses map[string]bool
}

// NewReceivedRule builds a rule from the configured terminal statuses.
// Status matching is case-insensitive.
func NewReceivedRule(statuses []string) ReceivedRule {
	set := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return ReceivedRule{statuses: set}
}

// DefaultReceivedRule matches the statuses Amazon uses for fully received
// shipments.
func DefaultReceivedRule() ReceivedRule {
	return NewReceivedRule([]string{"RECEIVED", "CLOSED"})
}

// MatchesStatus reports whether a single status is in the received set.
func (r ReceivedRule) MatchesStatus(status string) bool {
	return r.statuses[strings.ToUpper(status)]
}

// shipmentAgg accumulates the rows of one shipment within one month.
type shipmentAgg struct {
	shipped     int64
	received    int64
	allReceived bool
}

// IsReceived reports whether an aggregated shipment counts as received:
// either every row carries a received status, or the received units have
// caught up with the shipped units. The quantity clause classifies
// shipments as closed even when Amazon has not flipped the status yet.
func (r ReceivedRule) isReceived(agg shipmentAgg) bool {
	if agg.allReceived {
		return true
	}
	return agg.shipped > 0 && agg.received >= agg.shipped
}

// MonthlyReception buckets shipments into calendar months by creation date
// and counts how many are fully received, ordered chronologically.
func MonthlyReception(rep *models.Report, rule ReceivedRule) []models.MonthReception {
	type key struct {
		month models.Month
		id    string
	}
	aggs := make(map[key]*shipmentAgg)

	for i := range rep.Rows {
		rec := &rep.Rows[i]
		k := key{models.MonthOf(rec.CreatedDate), rec.ShipmentID}
		agg, ok := aggs[k]
		if !ok {
			agg = &shipmentAgg{allReceived: true}
			aggs[k] = agg
		}
		agg.shipped += rec.ShippedQty
		agg.received += rec.ReceivedQty
		if !rule.MatchesStatus(rec.Status) {
			agg.allReceived = false
		}
	}

	byMonth := make(map[models.Month]*models.MonthReception)
	for k, agg := range aggs {
		mr, ok := byMonth[k.month]
		if !ok {
			mr = &models.MonthReception{Month: k.month}
			byMonth[k.month] = mr
		}
		mr.Total++
		if rule.isReceived(*agg) {
			mr.Received++
		}
	}

	out := make([]models.MonthReception, 0, len(byMonth))
	for _, mr := range byMonth {
		out = append(out, *mr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}

// CurrentMonthMode selects which month feeds the gauge.
type CurrentMonthMode int

const (
	// ModeLatest uses the latest month present in the data.
	ModeLatest CurrentMonthMode = iota
	// ModeClock uses the system-clock month, whether or not the report
	// has rows in it.
	ModeClock
)

// ParseCurrentMonthMode maps a configuration value to a mode. Unknown
// values fall back to ModeLatest.
func ParseCurrentMonthMode(s string) CurrentMonthMode {
	if strings.EqualFold(strings.TrimSpace(s), "clock") {
		return ModeClock
	}
	return ModeLatest
}

func (m CurrentMonthMode) String() string {
	if m == ModeClock {
		return "clock"
	}
	return "latest"
}

// CurrentMonth picks the gauge month from an ordered reception series.
// With ModeClock and no rows in the clock month, the summary is empty but
// still labeled with that month.
func CurrentMonth(reception []models.MonthReception, mode CurrentMonthMode, now time.Time) models.MonthReception {
	if mode == ModeClock {
		want := models.MonthOf(now)
		for _, mr := range reception {
			if mr.Month == want {
				return mr
			}
		}
		return models.MonthReception{Month: want}
	}

	if len(reception) == 0 {
		return models.MonthReception{}
	}
	return reception[len(reception)-1]
}
