package engine

import (
	"context"
	"time"

	"github.com/plumesocial/vigile/moderation/modstore"
)

// how long the detached notification delivery may take
var notifyTimeout = 30 * time.Second

// Persists the outcome of a non-clean evaluation: writes the audit record,
// bumps the author's offender counters, and (for blocks and CRITICAL
// verdicts) hands the record to the notifier. Never called for clean
// verdicts.
//
// Failures here are deliberately not propagated: the block/flag decision was
// already made and must not change because an audit write failed. Errors are
// logged and counted for operational alerting.
func (eng *Engine) persistVerdict(ctx context.Context, sub SubmissionContext, verdict *Verdict) {
	var rec *modstore.ModerationRecord

	if eng.Records != nil {
		snapshot, err := verdict.MarshalSnapshot()
		if err != nil {
			eng.Logger.Error("marshaling verdict snapshot", "err", err, "authorId", sub.AuthorID)
			recordPersistErrorCount.Inc()
		} else {
			rec = &modstore.ModerationRecord{
				CreatedAt:      time.Now().UTC(),
				AuthorID:       sub.AuthorID,
				ContentType:    string(sub.ContentType),
				ContentExcerpt: modstore.Excerpt(sub.TrimmedContent()),
				ContentHash:    modstore.HashOfContent(sub.Content),
				Score:          verdict.Score,
				Severity:       string(verdict.Severity),
				Blocked:        verdict.ShouldBlock,
				VerdictJSON:    snapshot,
			}
			if err := eng.Records.Create(ctx, rec); err != nil {
				eng.Logger.Error("persisting moderation record", "err", err, "authorId", sub.AuthorID)
				recordPersistErrorCount.Inc()
				rec = nil
			}
		}
	}

	if err := eng.Offenders.RecordOffense(ctx, sub.AuthorID, verdict.ShouldBlock); err != nil {
		eng.Logger.Error("incrementing offender record", "err", err, "authorId", sub.AuthorID)
		offenseIncrementErrorCount.Inc()
	}

	if rec == nil || eng.Notifier == nil {
		return
	}
	if !verdict.ShouldBlock && verdict.Severity != SeverityCritical {
		return
	}

	// fire-and-forget: a slow notification channel must never add latency to
	// content submission. Delivery is idempotent on the record id, so retries
	// never double-notify.
	eng.notifyWG.Add(1)
	go func(rec modstore.ModerationRecord) {
		defer eng.notifyWG.Done()
		nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := eng.Notifier.NotifyRecord(nctx, &rec); err != nil {
			eng.Logger.Error("admin notification failed", "err", err, "recordId", rec.ID)
			notifyErrorCount.Inc()
			return
		}
		notifySentCount.Inc()
	}(*rec)
}

// Blocks until all in-flight notification deliveries have finished. Called
// during shutdown, and by tests that assert on delivery.
func (eng *Engine) DrainNotifications() {
	eng.notifyWG.Wait()
}
