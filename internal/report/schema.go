// Package report loads AWD shipment report exports (CSV or XLSX) into a
// structured table.
package report

import "strings"

// Logical column names used throughout the loader.
const (
	ColShipmentID  = "shipment id"
	ColStatus      = "status"
	ColCreatedDate = "created date"
	ColShippedQty  = "shipped quantity"
	ColReceivedQty = "received quantity"
)

// Schema maps logical columns to the header names expected in the export.
// Amazon's export format drifts (extra spaces, renamed headers), so the
// names are configurable and matched after normalization.
type Schema struct {
	ShipmentID  string
	Status      string
	CreatedDate string
	ShippedQty  string
	ReceivedQty string
}

// DefaultSchema returns the column names of the current AWD export format.
func DefaultSchema() Schema {
	return Schema{
		ShipmentID:  "Shipment ID",
		Status:      "Status",
		CreatedDate: "Created date",
		ShippedQty:  "Shipped quantity",
		ReceivedQty: "Received quantity",
	}
}

// columnIndexes resolves the schema against a header row. The returned map
// is keyed by logical column name. Quantity columns are optional: older
// exports omit them, and only count-based aggregation is possible then.
func (s Schema) columnIndexes(header []string) (map[string]int, *SchemaError) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[normalizeHeader(h)] = i
	}

	idx := make(map[string]int)
	var missing []string

	required := []struct {
		logical string
		name    string
	}{
		{ColShipmentID, s.ShipmentID},
		{ColStatus, s.Status},
		{ColCreatedDate, s.CreatedDate},
	}
	for _, col := range required {
		i, ok := byName[normalizeHeader(col.name)]
		if !ok {
			missing = append(missing, col.logical)
			continue
		}
		idx[col.logical] = i
	}

	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	optional := []struct {
		logical string
		name    string
	}{
		{ColShippedQty, s.ShippedQty},
		{ColReceivedQty, s.ReceivedQty},
	}
	for _, col := range optional {
		if i, ok := byName[normalizeHeader(col.name)]; ok {
			idx[col.logical] = i
		}
	}

	return idx, nil
}

// normalizeHeader folds case and collapses runs of whitespace so that
// headers like "Created  date" and "Shipped quantity " match their
// configured names.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}
