package dashboard

import "context"

// Service computes the per-section daily dashboard.
type Service interface {
	// Daily re-reads roster and event log from the store and derives
	// today's counters for every configured section.
	Daily(ctx context.Context) (DailyStats, error)
}
