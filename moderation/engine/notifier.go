package engine

import (
	"context"

	"github.com/plumesocial/vigile/moderation/modstore"
)

// Interface for a type that can deliver admin notifications about a newly
// persisted moderation record. Implementations must be idempotent on the
// record id: retried delivery never double-notifies.
type Notifier interface {
	NotifyRecord(ctx context.Context, rec *modstore.ModerationRecord) error
}
