package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
	"github.com/studio-click-house/schl-web-sub004/internal/tracking"
)

// WorkLogRepo reads per-day work-log batches and their nested file entries.
// The store is append-only and written by the work-tracking client.
type WorkLogRepo struct{}

// NewWorkLogRepo creates a new work-log repository
func NewWorkLogRepo() *WorkLogRepo {
	return &WorkLogRepo{}
}

// QueryWorkLogs returns the batches matching the filter, most recently
// updated first, with file entries attached in their stored order.
func (r *WorkLogRepo) QueryWorkLogs(ctx context.Context, f tracking.Filter) ([]models.WorkLogBatch, error) {
	query := `
		SELECT id, employee_name, client_code, client_name, work_type, categories,
		       shift, folder_path, report, date_today, pause_time, updated_at
		FROM work_logs WHERE 1=1`
	args := []interface{}{}

	if f.Username != "" {
		query += " AND LOWER(employee_name) = LOWER(?)"
		args = append(args, f.Username)
	}
	if f.HasRange() {
		query += " AND date_today BETWEEN ? AND ?"
		args = append(args, f.DateFrom, f.DateTo)
	} else if f.Date != "" {
		query += " AND date_today = ?"
		args = append(args, f.Date)
	}
	if f.ClientCode != "" {
		query += " AND client_code LIKE '%' || ? || '%'"
		args = append(args, f.ClientCode)
	}
	if !f.UpdatedSince.IsZero() {
		query += " AND updated_at >= ?"
		args = append(args, f.UpdatedSince)
	}
	query += " ORDER BY updated_at DESC"

	rows, err := DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying work logs: %w", err)
	}
	defer rows.Close()

	var batches []models.WorkLogBatch
	for rows.Next() {
		var b models.WorkLogBatch
		err := rows.Scan(
			&b.ID, &b.EmployeeName, &b.ClientCode, &b.ClientName, &b.WorkType,
			&b.Categories, &b.Shift, &b.FolderPath, &b.Report, &b.DateToday,
			&b.PauseTime, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning work log: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachFiles(ctx, batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// attachFiles loads the file entries for every batch in one query.
func (r *WorkLogRepo) attachFiles(ctx context.Context, batches []models.WorkLogBatch) error {
	if len(batches) == 0 {
		return nil
	}

	index := make(map[string]int, len(batches))
	placeholders := make([]string, len(batches))
	args := make([]interface{}, len(batches))
	for i, b := range batches {
		index[b.ID] = i
		placeholders[i] = "?"
		args[i] = b.ID
	}

	query := fmt.Sprintf(`
		SELECT work_log_id, file_name, time_spent, file_status
		FROM work_log_files
		WHERE work_log_id IN (%s)
		ORDER BY work_log_id, seq`, strings.Join(placeholders, ","))

	rows, err := DB.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("querying work log files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var logID string
		var entry models.FileEntry
		if err := rows.Scan(&logID, &entry.FileName, &entry.TimeSpent, &entry.FileStatus); err != nil {
			return fmt.Errorf("scanning work log file: %w", err)
		}
		if i, ok := index[logID]; ok {
			batches[i].Files = append(batches[i].Files, entry)
		}
	}
	return rows.Err()
}

// LatestWorkDate returns the maximum date bucket holding work logs for the
// given username filter, or "" when there are none.
func (r *WorkLogRepo) LatestWorkDate(ctx context.Context, username string) (string, error) {
	query := "SELECT COALESCE(MAX(date_today), '') FROM work_logs"
	args := []interface{}{}
	if username != "" {
		query += " WHERE LOWER(employee_name) = LOWER(?)"
		args = append(args, username)
	}

	var latest string
	if err := DB.QueryRowContext(ctx, query, args...).Scan(&latest); err != nil {
		return "", fmt.Errorf("querying latest work date: %w", err)
	}
	return latest, nil
}
