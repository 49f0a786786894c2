package offenderstore

import (
	"context"
	"time"
)

// Per-user aggregate of past moderation outcomes. Counters are lifetime
// totals and only ever increase.
type OffenderRecord struct {
	UserID        string    `json:"userId"`
	WarningCount  int       `json:"warningCount"`
	BlockCount    int       `json:"blockCount"`
	LastOffenseAt time.Time `json:"lastOffenseAt"`
}

// Store of per-user offense counters. Get is on the hot path (one read per
// evaluation) and must be cheap; RecordOffense must be an atomic
// read-modify-write so concurrent offenses by the same user never lose an
// increment.
type OffenderStore interface {
	// Returns a zeroed record if the user has no prior offenses. Never
	// returns nil with a nil error.
	Get(ctx context.Context, userID string) (*OffenderRecord, error)
	// Increments the warning counter (blocked=false) or the block counter
	// (blocked=true), and bumps the last-offense timestamp.
	RecordOffense(ctx context.Context, userID string, blocked bool) error
}
