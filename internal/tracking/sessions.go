package tracking

import (
	"sort"
	"time"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
)

// SessionAggregate is the derived per-user session state as of a single
// evaluation instant. It is never persisted.
type SessionAggregate struct {
	Username              string     `json:"username"`
	UserType              string     `json:"user_type"`
	FirstLoginAt          time.Time  `json:"first_login_at"`
	LastLoginAt           time.Time  `json:"last_login_at"`
	LastLogoutAt          *time.Time `json:"last_logout_at"`
	ClosedDurationSeconds int64      `json:"closed_duration_seconds"`
	ActiveLoginAt         *time.Time `json:"active_login_at"`
	IsActive              bool       `json:"is_active"`
	ActiveElapsedSeconds  int64      `json:"active_elapsed_seconds"`
	TotalDurationSeconds  int64      `json:"total_duration_seconds"`
}

// ReconstructSessions groups login/logout events by username and derives
// each user's active/closed state. The evaluation instant is passed in so
// every figure in one response is computed against the same clock reading;
// callers capture it once per request.
//
// If a user somehow has more than one open row, the most recently logged-in
// one anchors the elapsed-time computation and the rest are ignored.
func ReconstructSessions(events []models.SessionEvent, now time.Time) []SessionAggregate {
	byUser := make(map[string]*SessionAggregate)
	var order []string

	for _, ev := range events {
		agg, ok := byUser[ev.Username]
		if !ok {
			agg = &SessionAggregate{
				Username:     ev.Username,
				UserType:     ev.UserType,
				FirstLoginAt: ev.LoginAt,
				LastLoginAt:  ev.LoginAt,
			}
			byUser[ev.Username] = agg
			order = append(order, ev.Username)
		} else {
			if ev.LoginAt.Before(agg.FirstLoginAt) {
				agg.FirstLoginAt = ev.LoginAt
			}
			if ev.LoginAt.After(agg.LastLoginAt) {
				agg.LastLoginAt = ev.LoginAt
			}
			if ev.UserType != "" {
				agg.UserType = ev.UserType
			}
		}

		if ev.LogoutAt != nil {
			agg.ClosedDurationSeconds += ev.DurationSession
			if agg.LastLogoutAt == nil || ev.LogoutAt.After(*agg.LastLogoutAt) {
				t := *ev.LogoutAt
				agg.LastLogoutAt = &t
			}
		} else {
			agg.IsActive = true
			if agg.ActiveLoginAt == nil || ev.LoginAt.After(*agg.ActiveLoginAt) {
				t := ev.LoginAt
				agg.ActiveLoginAt = &t
			}
		}
	}

	result := make([]SessionAggregate, 0, len(order))
	for _, username := range order {
		agg := byUser[username]
		if agg.IsActive && agg.ActiveLoginAt != nil {
			elapsed := int64(now.Sub(*agg.ActiveLoginAt) / time.Second)
			if elapsed < 0 {
				elapsed = 0
			}
			agg.ActiveElapsedSeconds = elapsed
		}
		agg.TotalDurationSeconds = agg.ClosedDurationSeconds + agg.ActiveElapsedSeconds
		result = append(result, *agg)
	}

	// Active users first, then most recent login, then most recent logout.
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.IsActive != b.IsActive {
			return a.IsActive
		}
		if !a.LastLoginAt.Equal(b.LastLoginAt) {
			return a.LastLoginAt.After(b.LastLoginAt)
		}
		switch {
		case a.LastLogoutAt == nil && b.LastLogoutAt == nil:
			return false
		case a.LastLogoutAt == nil:
			return false
		case b.LastLogoutAt == nil:
			return true
		default:
			return a.LastLogoutAt.After(*b.LastLogoutAt)
		}
	})

	return result
}
