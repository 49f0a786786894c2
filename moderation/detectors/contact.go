package detectors

import (
	"regexp"

	"github.com/plumesocial/vigile/moderation/engine"
)

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// 8-15 digits, tolerant of space/dot/dash separators, with an optional
// international prefix ("+33", "0033"). Matches "77 123 45 67" and
// "+33 6 12 34 56 78".
var phoneRegex = regexp.MustCompile(`(?:\+|00)?\d(?:[ .\-]?\d){7,14}`)

// Emits EMAIL_DETECTED if any email address appears, regardless of count.
func Email(text string) []engine.Issue {
	if !emailRegex.MatchString(text) {
		return nil
	}
	return []engine.Issue{engine.EmailDetectedIssue{}}
}

// Emits PHONE_DETECTED if any phone-number-shaped digit run appears,
// regardless of count.
func Phone(text string) []engine.Issue {
	if !phoneRegex.MatchString(text) {
		return nil
	}
	return []engine.Issue{engine.PhoneDetectedIssue{}}
}
