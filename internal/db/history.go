package db

import (
	"context"
	"fmt"
	"time"

	"awdash/internal/models"
)

// timeLayout stores timestamps in a form SQLite's date functions accept.
const timeLayout = "2006-01-02 15:04:05"

// RecordAnalysis persists a one-line summary of a completed analysis and
// returns its id.
func (db *DB) RecordAnalysis(ctx context.Context, entry models.HistoryEntry) (int64, error) {
	res, err := db.ExecContext(ctx, `
		INSERT INTO analysis_history (source, row_count, skipped_rows, gauge_percent, gauge_label, loaded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Source,
		entry.RowCount,
		entry.SkippedRows,
		entry.GaugePercent,
		entry.GaugeLabel,
		entry.LoadedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record analysis: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// RecentAnalyses returns the most recent history entries, newest first.
func (db *DB) RecentAnalyses(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, source, row_count, skipped_rows, gauge_percent, gauge_label, loaded_at
		FROM analysis_history
		ORDER BY loaded_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		var loadedAt string
		if err := rows.Scan(&e.ID, &e.Source, &e.RowCount, &e.SkippedRows, &e.GaugePercent, &e.GaugeLabel, &loadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if t, perr := time.Parse(timeLayout, loadedAt); perr == nil {
			e.LoadedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}
	return entries, nil
}

// PruneAnalyses deletes history entries older than the cutoff and returns
// the number removed.
func (db *DB) PruneAnalyses(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := db.ExecContext(ctx,
		`DELETE FROM analysis_history WHERE loaded_at < ?`,
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune analysis history: %w", err)
	}
	return res.RowsAffected()
}
