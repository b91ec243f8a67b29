package models

import "time"

// SessionEvent is one login/logout record for a user on a date bucket.
// A null LogoutAt marks the session as currently open; DurationSession is
// only set once the session closes. Rows are written by the auth component,
// this service only reads them.
type SessionEvent struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	UserType        string     `json:"user_type"`
	SessionDate     string     `json:"session_date"`
	LoginAt         time.Time  `json:"login_at"`
	LogoutAt        *time.Time `json:"logout_at"`
	DurationSession int64      `json:"duration_session"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Open reports whether the session has no logout yet.
func (s *SessionEvent) Open() bool {
	return s.LogoutAt == nil
}
