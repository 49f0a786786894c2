package engine

import "encoding/json"

// JSON shape of one issue as returned to callers and embedded in persisted
// records.
type IssueView struct {
	Type     IssueKind `json:"type"`
	Weight   int       `json:"weight"`
	Evidence []string  `json:"evidence,omitempty"`
}

// JSON shape of a verdict. Severity is omitted when the score fell below
// every tier.
type VerdictView struct {
	IsClean         bool        `json:"isClean"`
	ShouldBlock     bool        `json:"shouldBlock"`
	Severity        Severity    `json:"severity,omitempty"`
	Score           int         `json:"score"`
	Issues          []IssueView `json:"issues"`
	Suggestions     []string    `json:"suggestions"`
	HistoryDegraded bool        `json:"historyDegraded,omitempty"`
}

func NewVerdictView(v *Verdict) VerdictView {
	issues := make([]IssueView, 0, len(v.Issues))
	for _, iss := range v.Issues {
		issues = append(issues, IssueView{
			Type:     iss.Kind(),
			Weight:   iss.Weight(),
			Evidence: iss.Evidence(),
		})
	}
	suggestions := v.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return VerdictView{
		IsClean:         v.IsClean,
		ShouldBlock:     v.ShouldBlock,
		Severity:        v.Severity,
		Score:           v.Score,
		Issues:          issues,
		Suggestions:     suggestions,
		HistoryDegraded: v.HistoryDegraded,
	}
}

// Serialized verdict snapshot stored with a moderation record.
func (v *Verdict) MarshalSnapshot() (string, error) {
	raw, err := json.Marshal(NewVerdictView(v))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
