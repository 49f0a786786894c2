package engine

// Severity thresholds: inclusive lower bounds on the aggregate score, highest
// matching tier wins.
var (
	ScoreLow      = 20
	ScoreMedium   = 40
	ScoreHigh     = 70
	ScoreCritical = 90
)

// Sums issue weights and clamps to [0,100]. Identical issue sets always
// produce identical scores.
func ScoreIssues(issues []Issue) int {
	score := 0
	for _, iss := range issues {
		score += iss.Weight()
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func severityForScore(score int) Severity {
	switch {
	case score >= ScoreCritical:
		return SeverityCritical
	case score >= ScoreHigh:
		return SeverityHigh
	case score >= ScoreMedium:
		return SeverityMedium
	case score >= ScoreLow:
		return SeverityLow
	default:
		return SeverityNone
	}
}

// Maps score to a severity tier, then applies the ceiling override: a
// forbidden-word count at or above the hard cap forces CRITICAL regardless of
// the aggregate score.
func SeverityFor(score int, issues []Issue) Severity {
	for _, iss := range issues {
		if fw, ok := iss.(ForbiddenWordsIssue); ok && fw.Hits >= ForbiddenCriticalHits {
			return SeverityCritical
		}
	}
	return severityForScore(score)
}
