// Package export writes the loaded report and its summary back out as an
// Excel workbook, matching the report the original spreadsheet workflow
// produced.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"awdash/internal/analysis"
	"awdash/internal/models"
)

const (
	rawSheet     = "Raw Data"
	summarySheet = "Summary"
)

// Filename returns the workbook name for an export generated now.
func Filename(now time.Time) string {
	return fmt.Sprintf("AWD_FBA_Shipment_Stats_%s.xlsx", now.Format("2006_01_02"))
}

// WriteSummary writes a workbook with the raw rows and a three-month
// summary table into dir and returns the full path.
func WriteSummary(dir string, rep *models.Report, a *models.Analysis, now time.Time) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)

	if err := writeRawData(f, rep); err != nil {
		return "", err
	}
	if err := writeSummarySheet(f, a); err != nil {
		return "", err
	}

	// Drop the default sheet created by NewFile.
	_ = f.DeleteSheet(defaultSheet)
	if idx, err := f.GetSheetIndex(rawSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	path := filepath.Join(dir, Filename(now))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return path, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F2F6"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

func writeRawData(f *excelize.File, rep *models.Report) error {
	if _, err := f.NewSheet(rawSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	header := []interface{}{"Shipment ID", "Status", "Created date", "Shipped quantity", "Received quantity"}
	if err := f.SetSheetRow(rawSheet, "A1", &header); err != nil {
		return err
	}

	for i := range rep.Rows {
		rec := &rep.Rows[i]
		row := []interface{}{
			rec.ShipmentID,
			rec.Status,
			rec.CreatedDate.Format("2006-01-02"),
			rec.ShippedQty,
			rec.ReceivedQty,
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(rawSheet, cellRef, &row); err != nil {
			return err
		}
	}

	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(rawSheet, "A1", "E1", style); err != nil {
		return err
	}
	if err := f.SetColWidth(rawSheet, "A", "E", 18); err != nil {
		return err
	}
	return f.SetPanes(rawSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})
}

// summaryMetrics are the row labels of the summary table, in order.
var summaryMetrics = []string{
	"Total Units Sent",
	"Total Units Received",
	"Open Shipments (OS)",
	"Total Units in OS",
	"Units Received from OS",
	"Units Not Received from OS",
}

func metricValues(mm models.MonthMetrics) []int64 {
	return []int64{
		mm.TotalUnitsSent,
		mm.TotalUnitsReceived,
		int64(mm.OpenShipments),
		mm.UnitsInOpen,
		mm.UnitsReceivedOpen,
		mm.UnitsNotReceivedOpen,
	}
}

// metricRatio returns the fraction shown next to a metric value, or false
// for metrics without a meaningful percentage (counts, zero denominators).
func metricRatio(mm models.MonthMetrics, metric int) (float64, bool) {
	switch metric {
	case 0: // total units sent is the 100% baseline
		if mm.TotalUnitsSent > 0 {
			return 1, true
		}
	case 1:
		if mm.TotalUnitsSent > 0 {
			return float64(mm.TotalUnitsReceived) / float64(mm.TotalUnitsSent), true
		}
	case 3:
		if mm.TotalUnitsSent > 0 {
			return float64(mm.UnitsInOpen) / float64(mm.TotalUnitsSent), true
		}
	case 4:
		if mm.UnitsInOpen > 0 {
			return float64(mm.UnitsReceivedOpen) / float64(mm.UnitsInOpen), true
		}
	case 5:
		if mm.UnitsInOpen > 0 {
			return float64(mm.UnitsNotReceivedOpen) / float64(mm.UnitsInOpen), true
		}
	}
	return 0, false
}

func writeSummarySheet(f *excelize.File, a *models.Analysis) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	current := a.CurrentMonth.Month
	months := []models.Month{current.Prev().Prev(), current.Prev(), current}

	header := []interface{}{"Metric"}
	for _, m := range months {
		header = append(header, m.Label(), "%")
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}

	for i, name := range summaryMetrics {
		row := []interface{}{name}
		for _, m := range months {
			mm := analysis.MetricsFor(a.Metrics, m)
			row = append(row, metricValues(mm)[i])
			if ratio, ok := metricRatio(mm, i); ok {
				row = append(row, ratio)
			} else {
				row = append(row, "")
			}
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cellRef, &row); err != nil {
			return err
		}
	}

	if err := styleSummary(f, len(summaryMetrics)); err != nil {
		return err
	}
	return f.SetPanes(summarySheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})
}

func styleSummary(f *excelize.File, metricRows int) error {
	hstyle, err := headerStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "G1", hstyle); err != nil {
		return err
	}

	numFmt := "#,##0"
	numStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}
	pctFmt := "0.0%"
	pctStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt})
	if err != nil {
		return err
	}

	last := fmt.Sprintf("%d", metricRows+1)
	for _, col := range []string{"B", "D", "F"} {
		if err := f.SetCellStyle(summarySheet, col+"2", col+last, numStyle); err != nil {
			return err
		}
		if err := f.SetColWidth(summarySheet, col, col, 20); err != nil {
			return err
		}
	}
	for _, col := range []string{"C", "E", "G"} {
		if err := f.SetCellStyle(summarySheet, col+"2", col+last, pctStyle); err != nil {
			return err
		}
		if err := f.SetColWidth(summarySheet, col, col, 8); err != nil {
			return err
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 30)
}
