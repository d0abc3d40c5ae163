package analysis

import (
	"time"

	"awdash/internal/models"
)

// StatusCounts counts rows per distinct status value. Every row lands in
// exactly one bucket, so the counts sum to the row count. Absent statuses
// are not zero-filled.
func StatusCounts(rep *models.Report) map[string]int {
	counts := make(map[string]int)
	for i := range rep.Rows {
		counts[rep.Rows[i].Status]++
	}
	return counts
}

// Analyze runs all aggregators over a loaded report.
func Analyze(rep *models.Report, rule ReceivedRule, mode CurrentMonthMode, now time.Time) *models.Analysis {
	reception := MonthlyReception(rep, rule)
	return &models.Analysis{
		Source:       rep.Source,
		RowCount:     rep.Len(),
		SkippedRows:  rep.SkippedRows,
		ComputedAt:   now,
		Reception:    reception,
		CurrentMonth: CurrentMonth(reception, mode, now),
		StatusCounts: StatusCounts(rep),
		Metrics:      MonthlyMetrics(rep),
	}
}
