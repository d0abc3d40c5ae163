package models

import "time"

// MonthReception is the reception progress for a single calendar month:
// how many shipments were created in that month and how many of them have
// been fully received.
type MonthReception struct {
	Month    Month
	Total    int
	Received int
}

// Percent returns the received ratio as a percentage in [0,100].
func (m MonthReception) Percent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Received) / float64(m.Total) * 100
}

// MonthMetrics are the unit-level metrics for one calendar month, grouped
// by shipment. A shipment is "open" while its received units are below its
// shipped units.
type MonthMetrics struct {
	Month Month

	TotalUnitsSent     int64
	TotalUnitsReceived int64

	OpenShipments       int
	UnitsInOpen         int64
	UnitsReceivedOpen   int64
	UnitsNotReceivedOpen int64
}

// Analysis is the full derived output for one loaded report. It is a pure
// function of the report: recomputing over the same table yields an equal
// Analysis.
type Analysis struct {
	Source      string
	RowCount    int
	SkippedRows int
	ComputedAt  time.Time

	Reception    []MonthReception
	CurrentMonth MonthReception
	StatusCounts map[string]int
	Metrics      []MonthMetrics
}

// HistoryEntry is a persisted one-line summary of a past analysis.
type HistoryEntry struct {
	ID           int64
	Source       string
	RowCount     int
	SkippedRows  int
	GaugePercent float64
	GaugeLabel   string
	LoadedAt     time.Time
}
