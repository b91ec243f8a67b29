package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SeedIfEmpty inserts a small demo data set when both stores are empty.
// In production the stores are populated by the auth component and the
// work-tracking client; this exists for local development only.
func SeedIfEmpty() error {
	var count int
	err := DB.QueryRow(`
		SELECT (SELECT COUNT(*) FROM session_events) + (SELECT COUNT(*) FROM work_logs)
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("counting existing rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	loginAt := now.Add(-3 * time.Hour)
	logoutAt := loginAt.Add(2 * time.Hour)

	// One closed and one open session for the same user.
	_, err = DB.Exec(`
		INSERT INTO session_events (id, username, user_type, session_date, login_at, logout_at, duration_session)
		VALUES (?, ?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, NULL, 0)
	`,
		uuid.NewString(), "demo.employee", "employee", today, loginAt, logoutAt, 7200,
		uuid.NewString(), "demo.employee", "employee", today, logoutAt.Add(30*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("seeding session events: %w", err)
	}

	logID := uuid.NewString()
	_, err = DB.Exec(`
		INSERT INTO work_logs (id, employee_name, client_code, client_name, work_type, categories, shift, folder_path, date_today, pause_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, logID, "demo.employee", "0001_DM", "Demo Client", "qc", "retouch", "morning", "/orders/0001_DM/set01", today, 300)
	if err != nil {
		return fmt.Errorf("seeding work log: %w", err)
	}

	files := []struct {
		name    string
		seconds int64
		status  string
	}{
		{"IMG_0001.jpg", 130, "done"},
		{"IMG_0002.jpg", 95, "done"},
		{"IMG_0003.jpg", 0, "skip"},
	}
	for i, f := range files {
		_, err = DB.Exec(`
			INSERT INTO work_log_files (work_log_id, seq, file_name, time_spent, file_status)
			VALUES (?, ?, ?, ?, ?)
		`, logID, i, f.name, f.seconds, f.status)
		if err != nil {
			return fmt.Errorf("seeding work log files: %w", err)
		}
	}

	_, err = DB.Exec(`
		INSERT INTO orders (id, client_code, folder, folder_path, task, et, nof, status, type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), "0001_DM", "set01", "/orders/0001_DM/set01", "clipping path", 120, 48, "active", "regular")
	if err != nil {
		return fmt.Errorf("seeding orders: %w", err)
	}

	return nil
}
