package analysis

import (
	"testing"
	"time"

	"awdash/internal/models"
)

func metricsReport() *models.Report {
	return &models.Report{
		Rows: []models.ShipmentRecord{
			// Shipment A, two SKU rows, fully received.
			{ShipmentID: "A", Status: "RECEIVED", CreatedDate: date(2024, time.January, 3), ShippedQty: 60, ReceivedQty: 60},
			{ShipmentID: "A", Status: "RECEIVED", CreatedDate: date(2024, time.January, 3), ShippedQty: 40, ReceivedQty: 40},
			// Shipment B, partially received, open.
			{ShipmentID: "B", Status: "SHIPPED", CreatedDate: date(2024, time.January, 12), ShippedQty: 50, ReceivedQty: 20},
			// Shipment C in February, nothing received yet.
			{ShipmentID: "C", Status: "WORKING", CreatedDate: date(2024, time.February, 2), ShippedQty: 30, ReceivedQty: 0},
		},
	}
}

func TestMonthlyMetrics(t *testing.T) {
	got := MonthlyMetrics(metricsReport())
	if len(got) != 2 {
		t.Fatalf("got %d months, want 2", len(got))
	}

	jan := got[0]
	if jan.Month != (models.Month{Year: 2024, Month: time.January}) {
		t.Fatalf("first month = %v, want 2024-01", jan.Month)
	}
	if jan.TotalUnitsSent != 150 || jan.TotalUnitsReceived != 120 {
		t.Errorf("january units = %d sent / %d received, want 150/120", jan.TotalUnitsSent, jan.TotalUnitsReceived)
	}
	if jan.OpenShipments != 1 {
		t.Errorf("january open shipments = %d, want 1", jan.OpenShipments)
	}
	if jan.UnitsInOpen != 50 || jan.UnitsReceivedOpen != 20 || jan.UnitsNotReceivedOpen != 30 {
		t.Errorf("january open units = %d/%d/%d, want 50/20/30",
			jan.UnitsInOpen, jan.UnitsReceivedOpen, jan.UnitsNotReceivedOpen)
	}

	feb := got[1]
	if feb.OpenShipments != 1 || feb.UnitsNotReceivedOpen != 30 {
		t.Errorf("february = %+v", feb)
	}
}

func TestMonthlyMetricsEmpty(t *testing.T) {
	if got := MonthlyMetrics(&models.Report{}); len(got) != 0 {
		t.Errorf("expected no metrics, got %+v", got)
	}
}

func TestMetricsFor(t *testing.T) {
	metrics := MonthlyMetrics(metricsReport())

	jan := MetricsFor(metrics, models.Month{Year: 2024, Month: time.January})
	if jan.TotalUnitsSent != 150 {
		t.Errorf("TotalUnitsSent = %d, want 150", jan.TotalUnitsSent)
	}

	missing := MetricsFor(metrics, models.Month{Year: 2023, Month: time.July})
	if missing.TotalUnitsSent != 0 || missing.OpenShipments != 0 {
		t.Errorf("missing month should be empty, got %+v", missing)
	}
	if missing.Month != (models.Month{Year: 2023, Month: time.July}) {
		t.Errorf("missing month should carry the requested month, got %v", missing.Month)
	}
}
