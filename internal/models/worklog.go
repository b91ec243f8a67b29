package models

import "time"

// FileEntry is a single file-level task entry inside a work-log batch.
type FileEntry struct {
	FileName   string `json:"file_name"`
	TimeSpent  int64  `json:"time_spent"`
	FileStatus string `json:"file_status"`
}

// WorkLogBatch is a per-employee, per-day work record bundling multiple
// file entries. Batches are appended by the work-tracking client; entries
// with a "skip" status stay in storage but are excluded from productivity
// totals.
type WorkLogBatch struct {
	ID           string      `json:"id"`
	EmployeeName string      `json:"employee_name"`
	ClientCode   string      `json:"client_code"`
	ClientName   string      `json:"client_name"`
	WorkType     string      `json:"work_type"`
	Categories   string      `json:"categories"`
	Shift        string      `json:"shift"`
	FolderPath   string      `json:"folder_path"`
	Report       string      `json:"report"`
	DateToday    string      `json:"date_today"`
	PauseTime    int64       `json:"pause_time"`
	Files        []FileEntry `json:"files"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
