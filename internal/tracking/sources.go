package tracking

import (
	"context"
	"errors"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
)

// ErrInvalidInput marks a request that cannot be served because a required
// input is missing or blank.
var ErrInvalidInput = errors.New("invalid input")

// SessionSource reads login/logout events from the session store.
type SessionSource interface {
	QuerySessions(ctx context.Context, f Filter) ([]models.SessionEvent, error)
}

// WorkLogSource reads per-day work-log batches from the work-log store.
type WorkLogSource interface {
	QueryWorkLogs(ctx context.Context, f Filter) ([]models.WorkLogBatch, error)

	// LatestWorkDate returns the maximum date bucket holding any work log
	// for the given username filter, or "" when the store is empty.
	LatestWorkDate(ctx context.Context, username string) (string, error)
}
