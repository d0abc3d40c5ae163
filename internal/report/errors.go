package report

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the report header.
// Loading is aborted; no partial table is returned.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("report is missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a cell that failed type coercion. Row is 1-based and
// counts from the header row of the source file.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %s value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyReportError reports a file with zero valid data rows after parsing.
type EmptyReportError struct {
	Source      string
	SkippedRows int
}

func (e *EmptyReportError) Error() string {
	if e.SkippedRows > 0 {
		return fmt.Sprintf("report %s has no valid rows (%d malformed rows skipped)", e.Source, e.SkippedRows)
	}
	return fmt.Sprintf("report %s has no data rows", e.Source)
}
