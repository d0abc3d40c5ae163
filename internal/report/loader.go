package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"awdash/internal/models"
)

// Options control how a report file is parsed.
type Options struct {
	Schema Schema
	// SkipRows is the number of preamble rows before the header. The AWD
	// export carries one.
	SkipRows int
	// Strict aborts on the first cell that fails coercion instead of
	// skipping the row.
	Strict bool
}

// DefaultOptions returns the options matching the current AWD export.
func DefaultOptions() Options {
	return Options{
		Schema:   DefaultSchema(),
		SkipRows: 1,
	}
}

// Load parses the file at path, choosing the parser by extension.
// ".xlsx" and ".xls" are read as spreadsheets, everything else as CSV.
func Load(path string, opts Options) (*models.Report, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return LoadXLSX(path, opts)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open report: %w", err)
		}
		defer f.Close()
		return LoadCSV(f, path, opts)
	}
}

// LoadCSV parses a CSV byte stream into a report table.
func LoadCSV(r io.Reader, source string, opts Options) (*models.Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rows = append(rows, record)
	}

	return buildReport(rows, source, opts)
}

// LoadXLSX parses the first sheet of a spreadsheet into a report table.
func LoadXLSX(path string, opts Options) (*models.Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &EmptyReportError{Source: path}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return buildReport(rows, path, opts)
}

// buildReport turns raw rows into a validated table. Malformed rows are
// skipped and counted unless opts.Strict is set.
func buildReport(raw [][]string, source string, opts Options) (*models.Report, error) {
	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(raw) {
			return nil, &EmptyReportError{Source: source}
		}
		raw = raw[opts.SkipRows:]
	}
	if len(raw) == 0 {
		return nil, &EmptyReportError{Source: source}
	}

	idx, schemaErr := opts.Schema.columnIndexes(raw[0])
	if schemaErr != nil {
		return nil, schemaErr
	}

	rep := &models.Report{Source: source}
	for i, record := range raw[1:] {
		rowNum := i + 1 // 1-based, relative to the header row
		if isBlankRow(record) {
			continue
		}

		rec, perr := parseRow(record, rowNum, idx)
		if perr != nil {
			if opts.Strict {
				return nil, perr
			}
			rep.SkippedRows++
			continue
		}
		rep.Rows = append(rep.Rows, *rec)
	}

	if len(rep.Rows) == 0 {
		return nil, &EmptyReportError{Source: source, SkippedRows: rep.SkippedRows}
	}

	rep.LoadedAt = time.Now()
	return rep, nil
}

func parseRow(record []string, rowNum int, idx map[string]int) (*models.ShipmentRecord, *ParseError) {
	id := strings.TrimSpace(cell(record, idx, ColShipmentID))
	status := strings.TrimSpace(cell(record, idx, ColStatus))
	dateStr := strings.TrimSpace(cell(record, idx, ColCreatedDate))

	if id == "" {
		return nil, &ParseError{Row: rowNum, Column: ColShipmentID, Value: "", Err: errMissingValue}
	}
	if status == "" {
		return nil, &ParseError{Row: rowNum, Column: ColStatus, Value: "", Err: errMissingValue}
	}

	created, err := parseDate(dateStr)
	if err != nil {
		return nil, &ParseError{Row: rowNum, Column: ColCreatedDate, Value: dateStr, Err: err}
	}

	shipped, err := parseQty(cell(record, idx, ColShippedQty))
	if err != nil {
		return nil, &ParseError{Row: rowNum, Column: ColShippedQty, Value: cell(record, idx, ColShippedQty), Err: err}
	}
	received, err := parseQty(cell(record, idx, ColReceivedQty))
	if err != nil {
		return nil, &ParseError{Row: rowNum, Column: ColReceivedQty, Value: cell(record, idx, ColReceivedQty), Err: err}
	}

	return &models.ShipmentRecord{
		ShipmentID:  id,
		Status:      strings.ToUpper(status),
		CreatedDate: created,
		ShippedQty:  shipped,
		ReceivedQty: received,
	}, nil
}

var errMissingValue = fmt.Errorf("value is required")

// cell returns the value of a logical column in a record, or "" when the
// column is absent from the schema or the record is short.
func cell(record []string, idx map[string]int, logical string) string {
	i, ok := idx[logical]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func isBlankRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// dateLayouts covers the formats seen in AWD exports: the CSV export uses
// ISO dates with an optional time component, while excelize renders dated
// cells in US short form.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06 15:04",
	"1/2/06",
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errMissingValue
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}

// parseQty parses a quantity cell. Empty cells count as zero; exports
// sometimes include thousands separators.
func parseQty(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Excel renders integer cells as floats now and then.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, err
		}
		return int64(f), nil
	}
	return n, nil
}
