package engine

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/plumesocial/vigile/moderation/modstore"
	"github.com/plumesocial/vigile/moderation/offenderstore"
)

// Trivial detector for fixtures: flags the literal token "flaggedword".
func simpleDetector(text string) []Issue {
	count := strings.Count(strings.ToLower(text), "flaggedword")
	if count == 0 {
		return nil
	}
	return []Issue{ForbiddenWordsIssue{Words: []string{"flaggedword"}, Hits: count}}
}

// Notifier that records deliveries in memory. Intentionally exported, for use
// in other packages' tests.
type CaptureNotifier struct {
	mu      sync.Mutex
	Records []modstore.ModerationRecord
}

var _ Notifier = (*CaptureNotifier)(nil)

func (n *CaptureNotifier) NotifyRecord(ctx context.Context, rec *modstore.ModerationRecord) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Records = append(n.Records, *rec)
	return nil
}

func (n *CaptureNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Records)
}

// Engine wired entirely with in-memory stores and a single trivial detector.
// Tests that need the real detector set swap in their own.
func EngineTestFixture() *Engine {
	return &Engine{
		Logger: slog.Default(),
		Detectors: []Detector{
			{Name: "simple", Run: simpleDetector},
		},
		Offenders: offenderstore.NewMemOffenderStore(),
		Records:   modstore.NewMemStore(),
		Notifier:  &CaptureNotifier{},
	}
}
