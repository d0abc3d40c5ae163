package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"awdash/internal/analysis"
	"awdash/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func exportFixture() (*models.Report, *models.Analysis) {
	rep := &models.Report{
		Source: "shipments.csv",
		Rows: []models.ShipmentRecord{
			{ShipmentID: "A", Status: "RECEIVED", CreatedDate: date(2024, time.January, 3), ShippedQty: 100, ReceivedQty: 100},
			{ShipmentID: "B", Status: "SHIPPED", CreatedDate: date(2024, time.February, 12), ShippedQty: 50, ReceivedQty: 20},
			{ShipmentID: "C", Status: "WORKING", CreatedDate: date(2024, time.March, 2), ShippedQty: 30, ReceivedQty: 0},
		},
	}
	a := analysis.Analyze(rep, analysis.DefaultReceivedRule(), analysis.ModeLatest, date(2024, time.March, 20))
	return rep, a
}

func TestFilename(t *testing.T) {
	got := Filename(date(2024, time.March, 20))
	want := "AWD_FBA_Shipment_Stats_2024_03_20.xlsx"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestWriteSummary(t *testing.T) {
	rep, a := exportFixture()
	dir := t.TempDir()

	path, err := WriteSummary(dir, rep, a, date(2024, time.March, 20))
	if err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("export written to %q, want dir %q", path, dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen export: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Raw Data" || sheets[1] != "Summary" {
		t.Errorf("sheets = %v, want [Raw Data Summary]", sheets)
	}

	// Raw data: header plus one row per record.
	raw, err := f.GetRows("Raw Data")
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 4 {
		t.Errorf("raw sheet has %d rows, want 4", len(raw))
	}
	if raw[1][0] != "A" || raw[1][1] != "RECEIVED" {
		t.Errorf("unexpected first data row: %v", raw[1])
	}

	// Summary: header plus one row per metric, current month in column F.
	sum, err := f.GetRows("Summary")
	if err != nil {
		t.Fatal(err)
	}
	if len(sum) != len(summaryMetrics)+1 {
		t.Fatalf("summary sheet has %d rows, want %d", len(sum), len(summaryMetrics)+1)
	}
	if sum[0][0] != "Metric" || sum[0][5] != "March 2024" {
		t.Errorf("unexpected summary header: %v", sum[0])
	}
	if sum[1][0] != "Total Units Sent" {
		t.Errorf("first metric = %q", sum[1][0])
	}
}

func TestMetricRatio(t *testing.T) {
	mm := models.MonthMetrics{
		TotalUnitsSent:       100,
		TotalUnitsReceived:   40,
		OpenShipments:        1,
		UnitsInOpen:          50,
		UnitsReceivedOpen:    20,
		UnitsNotReceivedOpen: 30,
	}

	tests := []struct {
		name   string
		metric int
		want   float64
		ok     bool
	}{
		{"SentBaseline", 0, 1, true},
		{"Received", 1, 0.4, true},
		{"OpenCount", 2, 0, false},
		{"UnitsInOpen", 3, 0.5, true},
		{"ReceivedFromOpen", 4, 0.4, true},
		{"NotReceivedFromOpen", 5, 0.6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := metricRatio(mm, tt.metric)
			if ok != tt.ok {
				t.Fatalf("metricRatio() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("metricRatio() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("ZeroDenominator", func(t *testing.T) {
		if _, ok := metricRatio(models.MonthMetrics{}, 1); ok {
			t.Error("expected no ratio for zero units sent")
		}
	})
}
