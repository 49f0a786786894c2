package engine

import "fmt"

// Detector finding category. Every issue attached to a verdict carries
// exactly one kind.
type IssueKind string

const (
	KindForbiddenWords    IssueKind = "FORBIDDEN_WORDS"
	KindSuspiciousPhrases IssueKind = "SUSPICIOUS_PHRASES"
	KindEmailDetected     IssueKind = "EMAIL_DETECTED"
	KindPhoneDetected     IssueKind = "PHONE_DETECTED"
	KindSuspiciousURL     IssueKind = "SUSPICIOUS_URL"
	KindCapsLock          IssueKind = "CAPS_LOCK"
	KindSpamPattern       IssueKind = "SPAM_PATTERN"
	KindRepeatOffender    IssueKind = "REPEAT_OFFENDER"
)

// Default scoring weights. These are operational tuning knobs, not
// invariants; the daemon may override them at startup.
var (
	// per-occurrence weight for forbidden vocabulary hits, and the cap on the
	// total contribution
	WeightForbiddenWordHit = 35
	WeightForbiddenWordCap = 80
	// number of forbidden-word occurrences which forces CRITICAL severity
	// regardless of aggregate score
	ForbiddenCriticalHits = 3

	WeightSuspiciousPhrase = 30
	WeightEmailDetected    = 15
	WeightPhoneDetected    = 15
	WeightSuspiciousURL    = 20
	WeightCapsLock         = 10
	WeightSpamPattern      = 20

	// prior warnings at which the repeat-offender signal kicks in
	RepeatOffenderThreshold = 3
	// repeat-offender weight grows with history: Base + Step*priorWarnings,
	// capped
	WeightRepeatOffenderBase = 10
	WeightRepeatOffenderStep = 5
	WeightRepeatOffenderCap  = 30
)

// One detector finding. Issues are a closed set of variants, each carrying
// only the evidence fields relevant to its kind; they are produced fresh per
// evaluation and only ever persisted embedded in a moderation record.
type Issue interface {
	Kind() IssueKind
	// Contribution to the aggregate score. Deterministic in the variant's
	// fields.
	Weight() int
	// Human-readable evidence strings (matched words, offending URLs, ...).
	// May be empty.
	Evidence() []string
}

// Forbidden vocabulary matched in the text.
type ForbiddenWordsIssue struct {
	// distinct vocabulary entries that matched
	Words []string
	// total occurrences across all entries
	Hits int
}

func (i ForbiddenWordsIssue) Kind() IssueKind { return KindForbiddenWords }

func (i ForbiddenWordsIssue) Weight() int {
	w := WeightForbiddenWordHit * i.Hits
	if w > WeightForbiddenWordCap {
		w = WeightForbiddenWordCap
	}
	return w
}

func (i ForbiddenWordsIssue) Evidence() []string { return i.Words }

// One matched scam/solicitation phrase family.
type SuspiciousPhraseIssue struct {
	// template family name, eg "off-platform-payment"
	Family string
	// the template that matched
	Phrase string
}

func (i SuspiciousPhraseIssue) Kind() IssueKind    { return KindSuspiciousPhrases }
func (i SuspiciousPhraseIssue) Weight() int        { return WeightSuspiciousPhrase }
func (i SuspiciousPhraseIssue) Evidence() []string { return []string{i.Family} }

// An email address appears in the text. Emitted once regardless of how many
// addresses matched.
type EmailDetectedIssue struct{}

func (i EmailDetectedIssue) Kind() IssueKind    { return KindEmailDetected }
func (i EmailDetectedIssue) Weight() int        { return WeightEmailDetected }
func (i EmailDetectedIssue) Evidence() []string { return nil }

// A phone number appears in the text. Emitted once regardless of count.
type PhoneDetectedIssue struct{}

func (i PhoneDetectedIssue) Kind() IssueKind    { return KindPhoneDetected }
func (i PhoneDetectedIssue) Weight() int        { return WeightPhoneDetected }
func (i PhoneDetectedIssue) Evidence() []string { return nil }

// URLs whose domain is not on the allow-list.
type SuspiciousURLIssue struct {
	URLs []string
}

func (i SuspiciousURLIssue) Kind() IssueKind    { return KindSuspiciousURL }
func (i SuspiciousURLIssue) Weight() int        { return WeightSuspiciousURL }
func (i SuspiciousURLIssue) Evidence() []string { return i.URLs }

// Excessive upper-case ratio across the letters of longer tokens.
type CapsLockIssue struct {
	Ratio   float64
	Letters int
}

func (i CapsLockIssue) Kind() IssueKind { return KindCapsLock }
func (i CapsLockIssue) Weight() int     { return WeightCapsLock }
func (i CapsLockIssue) Evidence() []string {
	return []string{fmt.Sprintf("uppercase ratio %.2f over %d letters", i.Ratio, i.Letters)}
}

// One spam signal: repeated character runs, duplicated message content, or
// excessive punctuation density.
type SpamPatternIssue struct {
	Signal string
}

func (i SpamPatternIssue) Kind() IssueKind    { return KindSpamPattern }
func (i SpamPatternIssue) Weight() int        { return WeightSpamPattern }
func (i SpamPatternIssue) Evidence() []string { return []string{i.Signal} }

// Synthetic issue added by the engine (not text-derived) when the author's
// warning history crosses the threshold.
type RepeatOffenderIssue struct {
	PriorWarnings int
}

func (i RepeatOffenderIssue) Kind() IssueKind { return KindRepeatOffender }

func (i RepeatOffenderIssue) Weight() int {
	w := WeightRepeatOffenderBase + WeightRepeatOffenderStep*i.PriorWarnings
	if w > WeightRepeatOffenderCap {
		w = WeightRepeatOffenderCap
	}
	return w
}

func (i RepeatOffenderIssue) Evidence() []string {
	return []string{fmt.Sprintf("%d prior warnings", i.PriorWarnings)}
}
