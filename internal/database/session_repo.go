package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
	"github.com/studio-click-house/schl-web-sub004/internal/tracking"
)

// SessionRepo reads login/logout events. The session store is append-only
// and written by the auth component; this service never mutates it.
type SessionRepo struct{}

// NewSessionRepo creates a new session event repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{}
}

// QuerySessions returns the session events matching the filter, oldest
// login first.
func (r *SessionRepo) QuerySessions(ctx context.Context, f tracking.Filter) ([]models.SessionEvent, error) {
	query := `
		SELECT id, username, user_type, session_date, login_at, logout_at, duration_session, updated_at
		FROM session_events WHERE 1=1`
	args := []interface{}{}

	if f.Username != "" {
		query += " AND LOWER(username) = LOWER(?)"
		args = append(args, f.Username)
	}
	if f.HasRange() {
		query += " AND session_date BETWEEN ? AND ?"
		args = append(args, f.DateFrom, f.DateTo)
	} else if f.Date != "" {
		query += " AND session_date = ?"
		args = append(args, f.Date)
	}
	if !f.UpdatedSince.IsZero() {
		query += " AND updated_at >= ?"
		args = append(args, f.UpdatedSince)
	}
	query += " ORDER BY login_at"

	rows, err := DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying session events: %w", err)
	}
	defer rows.Close()

	var events []models.SessionEvent
	for rows.Next() {
		var ev models.SessionEvent
		var logoutAt sql.NullTime
		err := rows.Scan(
			&ev.ID, &ev.Username, &ev.UserType, &ev.SessionDate,
			&ev.LoginAt, &logoutAt, &ev.DurationSession, &ev.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session event: %w", err)
		}
		if logoutAt.Valid {
			t := logoutAt.Time
			ev.LogoutAt = &t
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
