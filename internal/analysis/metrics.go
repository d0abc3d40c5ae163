package analysis

import (
	"sort"

	"awdash/internal/models"
)

// MonthlyMetrics computes the unit-level stats per calendar month: total
// units moved, plus the open-shipment breakdown. Rows are grouped by
// shipment id within each month; a shipment stays open while its received
// units are below its shipped units.
func MonthlyMetrics(rep *models.Report) []models.MonthMetrics {
	type key struct {
		month models.Month
		id    string
	}
	type qty struct {
		shipped  int64
		received int64
	}

	byShipment := make(map[key]*qty)
	for i := range rep.Rows {
		rec := &rep.Rows[i]
		k := key{models.MonthOf(rec.CreatedDate), rec.ShipmentID}
		q, ok := byShipment[k]
		if !ok {
			q = &qty{}
			byShipment[k] = q
		}
		q.shipped += rec.ShippedQty
		q.received += rec.ReceivedQty
	}

	byMonth := make(map[models.Month]*models.MonthMetrics)
	for k, q := range byShipment {
		mm, ok := byMonth[k.month]
		if !ok {
			mm = &models.MonthMetrics{Month: k.month}
			byMonth[k.month] = mm
		}
		mm.TotalUnitsSent += q.shipped
		mm.TotalUnitsReceived += q.received
		if q.received < q.shipped {
			mm.OpenShipments++
			mm.UnitsInOpen += q.shipped
			mm.UnitsReceivedOpen += q.received
		}
	}

	out := make([]models.MonthMetrics, 0, len(byMonth))
	for _, mm := range byMonth {
		mm.UnitsNotReceivedOpen = mm.UnitsInOpen - mm.UnitsReceivedOpen
		out = append(out, *mm)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}

// MetricsFor returns the metrics for a single month, or an empty entry
// labeled with that month when the report has no rows in it.
func MetricsFor(metrics []models.MonthMetrics, month models.Month) models.MonthMetrics {
	for _, mm := range metrics {
		if mm.Month == month {
			return mm
		}
	}
	return models.MonthMetrics{Month: month}
}
