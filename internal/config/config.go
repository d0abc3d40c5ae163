// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"awdash/internal/report"
)

// Config holds the application configuration.
type Config struct {
	// ReportsDir is watched for new report files.
	ReportsDir string
	// DatabasePath is the SQLite analysis-history database.
	DatabasePath string
	// ExportDir receives generated Excel summaries.
	ExportDir string

	// ReceivedStatuses are the status values that mark a shipment as
	// fully received.
	ReceivedStatuses []string
	// CurrentMonthMode selects the gauge month: "latest" or "clock".
	CurrentMonthMode string
	// SkipRows is the number of preamble rows before the report header.
	SkipRows int
	// HistoryDisabled turns off the persisted analysis history.
	HistoryDisabled bool

	// Column name overrides for the report schema.
	ColShipmentID  string
	ColStatus      string
	ColCreatedDate string
	ColShippedQty  string
	ColReceivedQty string
}

// Default values
var defaultReceivedStatuses = []string{"RECEIVED", "CLOSED"}

const defaultSkipRows = 1

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	schema := report.DefaultSchema()
	cfg := &Config{
		ReportsDir:   getEnvString("REPORTS_DIR", getDefaultReportsDir()),
		DatabasePath: getEnvString("DATABASE_PATH", getDefaultDatabasePath()),
		ExportDir:    getEnvString("EXPORT_DIR", getDefaultExportDir()),

		ReceivedStatuses: getEnvList("RECEIVED_STATUSES", defaultReceivedStatuses),
		CurrentMonthMode: getEnvString("CURRENT_MONTH_MODE", "latest"),
		SkipRows:         getEnvInt("SKIP_ROWS", defaultSkipRows),
		HistoryDisabled:  getEnvBool("HISTORY_DISABLED", false),

		ColShipmentID:  getEnvString("COL_SHIPMENT_ID", schema.ShipmentID),
		ColStatus:      getEnvString("COL_STATUS", schema.Status),
		ColCreatedDate: getEnvString("COL_CREATED_DATE", schema.CreatedDate),
		ColShippedQty:  getEnvString("COL_SHIPPED_QTY", schema.ShippedQty),
		ColReceivedQty: getEnvString("COL_RECEIVED_QTY", schema.ReceivedQty),
	}

	// Ensure working directories exist
	if err := ensureDir(cfg.ReportsDir); err != nil {
		return nil, err
	}
	if err := ensureDir(filepath.Dir(cfg.DatabasePath)); err != nil {
		return nil, err
	}
	if err := ensureDir(cfg.ExportDir); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoaderOptions builds the report parser options from the configuration.
func (c *Config) LoaderOptions() report.Options {
	return report.Options{
		Schema: report.Schema{
			ShipmentID:  c.ColShipmentID,
			Status:      c.ColStatus,
			CreatedDate: c.ColCreatedDate,
			ShippedQty:  c.ColShippedQty,
			ReceivedQty: c.ColReceivedQty,
		},
		SkipRows: c.SkipRows,
	}
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "awdash", ".env"),
			filepath.Join(home, ".awdash", ".env"),
		)
	}

	return paths
}

// getDefaultReportsDir returns the default watched reports directory.
func getDefaultReportsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "reports"
	}
	return filepath.Join(home, ".config", "awdash", "reports")
}

// getDefaultDatabasePath returns the default path for the SQLite database.
func getDefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".config", "awdash", "history.db")
}

// getDefaultExportDir returns the default directory for Excel exports.
func getDefaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "awdash", "exports")
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList retrieves a comma-separated environment variable or returns
// the default when unset or empty.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// getEnvInt retrieves a non-negative integer environment variable or
// returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns the default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// ensureDir creates a directory and all parent directories if they don't exist.
func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o750)
}
