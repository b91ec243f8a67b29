package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/studio-click-house/schl-web-sub004/internal/models"
)

// Composer builds the dashboard and live-tracking views from the two
// stores. It is purely read-side: every call re-scans the stores and
// computes against a single clock reading captured at the start of the
// request, so nothing is cached and nothing can go stale.
//
// The two store reads are not one transaction; a composed view is a
// best-effort joint snapshot, which is fine for a monitoring surface.
type Composer struct {
	Sessions SessionSource
	WorkLogs WorkLogSource

	// Now is the clock; tests inject a fixed one.
	Now func() time.Time

	// Location is the canonical timezone used to derive "today".
	Location *time.Location
}

// NewComposer wires a composer over the given stores.
func NewComposer(sessions SessionSource, workLogs WorkLogSource, loc *time.Location) *Composer {
	return &Composer{
		Sessions: sessions,
		WorkLogs: workLogs,
		Now:      time.Now,
		Location: loc,
	}
}

// TodayDashboard is the composed "today" view.
type TodayDashboard struct {
	UsedDate string                     `json:"usedDate"`
	Totals   ProductivityTotals         `json:"totals"`
	ByClient map[string]ClientAggregate `json:"byClient"`
	WorkLogs []models.WorkLogBatch      `json:"workLogs"`
	Sessions []SessionAggregate         `json:"sessions"`
}

// LiveView is the composed live-tracking view.
type LiveView struct {
	UsedDate string                `json:"usedDate"`
	WorkLogs []models.WorkLogBatch `json:"workLogs"`
	Sessions []SessionAggregate    `json:"sessions"`
}

// LiveQuery carries the live-view parameters. A from/to range takes
// precedence over the single date and disables the hour window; Hours only
// applies when the resolved date is today.
type LiveQuery struct {
	Username string
	Date     string
	DateFrom string
	DateTo   string
	Hours    int
}

func (c *Composer) clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Composer) today(now time.Time) string {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(DateLayout)
}

// Today builds the dashboard for one date and optional username filter.
//
// An explicit date is used verbatim even when it holds no data. With no
// explicit date the view defaults to today and, when today is empty for the
// filter in both stores, falls back to the latest date holding work logs.
func (c *Composer) Today(ctx context.Context, username, explicitDate string) (*TodayDashboard, error) {
	now := c.clock()

	if date := NormalizeDate(explicitDate); date != "" {
		return c.composeDay(ctx, username, date, now)
	}

	used := c.today(now)
	view, err := c.composeDay(ctx, username, used, now)
	if err != nil {
		return nil, err
	}
	if len(view.WorkLogs) > 0 || len(view.Sessions) > 0 {
		return view, nil
	}

	latest, err := c.WorkLogs.LatestWorkDate(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("resolving latest work date: %w", err)
	}
	if latest == "" || latest == used {
		return view, nil
	}
	return c.composeDay(ctx, username, latest, now)
}

func (c *Composer) composeDay(ctx context.Context, username, date string, now time.Time) (*TodayDashboard, error) {
	f := Filter{Username: username, Date: date}

	batches, err := c.WorkLogs.QueryWorkLogs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("querying work logs: %w", err)
	}
	events, err := c.Sessions.QuerySessions(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	if batches == nil {
		batches = []models.WorkLogBatch{}
	}

	byClient, totals := SummarizeBatches(batches)
	return &TodayDashboard{
		UsedDate: date,
		Totals:   totals,
		ByClient: byClient,
		WorkLogs: batches,
		Sessions: ReconstructSessions(events, now),
	}, nil
}

// Live builds the live-tracking view.
func (c *Composer) Live(ctx context.Context, q LiveQuery) (*LiveView, error) {
	now := c.clock()

	from, to := NormalizeDate(q.DateFrom), NormalizeDate(q.DateTo)
	if from != "" && to != "" {
		// Explicit range: no hour cutoff, no fallback.
		f := Filter{Username: q.Username, DateFrom: from, DateTo: to}
		return c.composeLive(ctx, f, to, now)
	}

	date := NormalizeDate(q.Date)
	explicit := date != ""
	if !explicit {
		date = c.today(now)
	}

	f := Filter{Username: q.Username, Date: date}
	if q.Hours > 0 && date == c.today(now) {
		f.UpdatedSince = now.Add(-time.Duration(q.Hours) * time.Hour)
	}

	view, err := c.composeLive(ctx, f, date, now)
	if err != nil {
		return nil, err
	}
	if explicit || len(view.WorkLogs) > 0 || len(view.Sessions) > 0 {
		return view, nil
	}

	latest, err := c.WorkLogs.LatestWorkDate(ctx, q.Username)
	if err != nil {
		return nil, fmt.Errorf("resolving latest work date: %w", err)
	}
	if latest == "" || latest == date {
		return view, nil
	}
	// The fallback date is in the past, so the rolling window no longer
	// applies.
	return c.composeLive(ctx, Filter{Username: q.Username, Date: latest}, latest, now)
}

func (c *Composer) composeLive(ctx context.Context, f Filter, usedDate string, now time.Time) (*LiveView, error) {
	batches, err := c.WorkLogs.QueryWorkLogs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("querying work logs: %w", err)
	}
	events, err := c.Sessions.QuerySessions(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	if batches == nil {
		batches = []models.WorkLogBatch{}
	}
	return &LiveView{
		UsedDate: usedDate,
		WorkLogs: batches,
		Sessions: ReconstructSessions(events, now),
	}, nil
}
