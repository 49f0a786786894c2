package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/plumesocial/vigile/moderation/modstore"
	"github.com/plumesocial/vigile/moderation/offenderstore"
)

// A single text detector. Run must be a pure function of the text: no shared
// mutable state, safe to execute in any order or in parallel with the others.
type Detector struct {
	Name string
	Run  func(text string) []Issue
}

// Runtime for evaluating submissions: runs detectors, folds in offender
// history, scores, decides, and records the outcome.
//
// Stateless per call except for the offender store read/increment. Safe for
// concurrent use by many request-handling workers.
type Engine struct {
	Logger    *slog.Logger
	Detectors []Detector
	Offenders offenderstore.OffenderStore
	// audit record store; optional (nil skips persistence, eg in dry-run
	// deployments and some tests)
	Records modstore.Store
	// admin notification channel; optional
	Notifier Notifier

	// tracks in-flight fire-and-forget notification deliveries
	notifyWG sync.WaitGroup
}

// Runs the full pipeline for one submission and returns the verdict
// synchronously. Persistence and notification side effects never change or
// delay the returned verdict: an audit-write failure is logged and surfaced
// via metrics, not propagated.
func (eng *Engine) Evaluate(ctx context.Context, sub SubmissionContext) (verdict *Verdict, outErr error) {
	// similar to an HTTP server, recover any panics from detector execution
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("moderation evaluation exception", "err", r, "authorId", sub.AuthorID, "contentType", sub.ContentType)
			verdict = nil
			outErr = fmt.Errorf("evaluation panic: %v", r)
		}
	}()

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		evalDuration.WithLabelValues(string(sub.ContentType)).Observe(time.Since(start).Seconds())
	}()

	text := sub.TrimmedContent()
	if text == "" {
		// no detectors, no record: empty submissions leave no audit noise
		verdictCount.WithLabelValues("clean").Inc()
		return &Verdict{IsClean: true, Issues: []Issue{}, Suggestions: []string{}}, nil
	}

	issues := eng.runDetectors(ctx, text)

	// the repeat-offender signal escalates real findings; it never turns a
	// clean submission into an offense on its own
	degraded := false
	if len(issues) > 0 {
		rec, err := eng.Offenders.Get(ctx, sub.AuthorID)
		if err != nil {
			// fail-open: still produce a verdict, but mark the degraded read
			// so the caller's observability layer can alert
			eng.Logger.Error("offender history unavailable, scoring without repeat-offender signal", "err", err, "authorId", sub.AuthorID)
			historyDegradedCount.Inc()
			degraded = true
		} else if rec.WarningCount >= RepeatOffenderThreshold {
			issues = append(issues, RepeatOffenderIssue{PriorWarnings: rec.WarningCount})
		}
	}

	verdict = Decide(issues)
	verdict.HistoryDegraded = degraded

	for _, iss := range verdict.Issues {
		detectorHitCount.WithLabelValues(string(iss.Kind())).Inc()
	}
	verdictCount.WithLabelValues(verdictOutcome(verdict)).Inc()
	eng.canonicalLogLine(sub, verdict)

	if !verdict.IsClean {
		eng.persistVerdict(ctx, sub, verdict)
	}
	return verdict, nil
}

// Runs every detector unconditionally (no short-circuiting; the scorer needs
// the full issue set). Detectors execute concurrently but results keep
// registration order, so sequential execution would produce an identical
// verdict.
func (eng *Engine) runDetectors(ctx context.Context, text string) []Issue {
	results := make([][]Issue, len(eng.Detectors))
	g, _ := errgroup.WithContext(ctx)
	for i, det := range eng.Detectors {
		i, det := i, det
		g.Go(func() error {
			results[i] = det.Run(text)
			return nil
		})
	}
	g.Wait() // detectors don't error

	var issues []Issue
	for _, found := range results {
		issues = append(issues, found...)
	}
	return issues
}

func verdictOutcome(v *Verdict) string {
	switch {
	case v.IsClean:
		return "clean"
	case v.ShouldBlock:
		return "blocked"
	default:
		return "flagged"
	}
}

func (eng *Engine) canonicalLogLine(sub SubmissionContext, v *Verdict) {
	kinds := make([]string, 0, len(v.Issues))
	for _, iss := range v.Issues {
		kinds = append(kinds, string(iss.Kind()))
	}
	eng.Logger.Info("evaluation complete",
		"authorId", sub.AuthorID,
		"contentType", sub.ContentType,
		"outcome", verdictOutcome(v),
		"score", v.Score,
		"severity", v.Severity,
		"issues", kinds,
		"historyDegraded", v.HistoryDegraded,
	)
}
