package engine

// Severity tier for a scored submission. The empty value means the score fell
// below every tier (possible for low-weight issues like a lone phone number).
type Severity string

const (
	SeverityNone     Severity = ""
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// The engine's final decision for one submission, plus everything a caller or
// reviewer needs to understand it. Returned synchronously; an embedded
// snapshot is persisted with the moderation record for non-clean content.
type Verdict struct {
	// no issues at all (including the empty-content short-circuit)
	IsClean bool
	// if true, the caller must not persist the underlying content
	ShouldBlock bool
	Severity    Severity
	// aggregate score, clamped to [0,100]
	Score int
	// detector execution order, then the synthetic repeat-offender issue
	Issues []Issue
	// one remediation string per qualifying issue kind, deduplicated,
	// ordered by first qualifying issue
	Suggestions []string
	// set when the offender-history store was unreachable and the verdict
	// was computed without the repeat-offender signal (fail-open marker for
	// the caller's observability, not shown to end users)
	HistoryDegraded bool
}

// Convenience for looking up whether a kind is present in the issue set.
func (v *Verdict) HasIssue(kind IssueKind) bool {
	for _, iss := range v.Issues {
		if iss.Kind() == kind {
			return true
		}
	}
	return false
}
