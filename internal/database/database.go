package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB is the global database connection
var DB *sql.DB

// Config holds database configuration
type Config struct {
	Path string
}

// Open initializes the database connection and runs migrations
func Open(cfg Config) error {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	var err error
	DB, err = sql.Open("sqlite", cfg.Path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Run migrations
	if err := migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// migrate runs all database migrations
func migrate() error {
	// Create migrations table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Run each migration
	for _, m := range migrations {
		if err := runMigration(m); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
	}

	return nil
}

type migration struct {
	name string
	up   string
}

func runMigration(m migration) error {
	// Check if already applied
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", m.name).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already applied
	}

	// Run migration
	if _, err := DB.Exec(m.up); err != nil {
		return err
	}

	// Record migration
	_, err = DB.Exec("INSERT INTO migrations (name) VALUES (?)", m.name)
	return err
}

var migrations = []migration{
	{
		name: "001_create_session_events",
		up: `
			CREATE TABLE session_events (
				id TEXT PRIMARY KEY,
				username TEXT NOT NULL,
				user_type TEXT NOT NULL DEFAULT '',
				session_date TEXT NOT NULL,
				login_at DATETIME NOT NULL,
				logout_at DATETIME,
				duration_session INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_session_events_username ON session_events(username);
			CREATE INDEX idx_session_events_date ON session_events(session_date);
		`,
	},
	{
		name: "002_create_work_logs",
		up: `
			CREATE TABLE work_logs (
				id TEXT PRIMARY KEY,
				employee_name TEXT NOT NULL,
				client_code TEXT NOT NULL DEFAULT '',
				client_name TEXT NOT NULL DEFAULT '',
				work_type TEXT NOT NULL DEFAULT '',
				categories TEXT NOT NULL DEFAULT '',
				shift TEXT NOT NULL DEFAULT '',
				folder_path TEXT NOT NULL DEFAULT '',
				report TEXT NOT NULL DEFAULT '',
				date_today TEXT NOT NULL,
				pause_time INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_work_logs_employee ON work_logs(employee_name);
			CREATE INDEX idx_work_logs_date ON work_logs(date_today);
		`,
	},
	{
		name: "003_create_work_log_files",
		up: `
			CREATE TABLE work_log_files (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				work_log_id TEXT NOT NULL,
				seq INTEGER NOT NULL DEFAULT 0,
				file_name TEXT NOT NULL DEFAULT '',
				time_spent INTEGER NOT NULL DEFAULT 0,
				file_status TEXT NOT NULL DEFAULT '',
				FOREIGN KEY (work_log_id) REFERENCES work_logs(id) ON DELETE CASCADE
			);
			CREATE INDEX idx_work_log_files_log ON work_log_files(work_log_id);
		`,
	},
	{
		name: "004_create_orders",
		up: `
			CREATE TABLE orders (
				id TEXT PRIMARY KEY,
				client_code TEXT NOT NULL DEFAULT '',
				folder TEXT NOT NULL DEFAULT '',
				folder_path TEXT NOT NULL DEFAULT '',
				task TEXT NOT NULL DEFAULT '',
				et INTEGER NOT NULL DEFAULT 0,
				nof INTEGER NOT NULL DEFAULT 0,
				status TEXT NOT NULL DEFAULT 'active',
				type TEXT NOT NULL DEFAULT '',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_orders_status ON orders(status);
		`,
	},
}
