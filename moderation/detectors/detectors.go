// Text detectors for the moderation engine.
//
// Each detector is a pure function from raw text to zero or more issues, with
// no shared mutable state: the engine may run them in any order or in
// parallel. All detectors run on every submission; the scorer needs the full
// issue set.
package detectors

import (
	"github.com/plumesocial/vigile/moderation/engine"
)

// The production detector set, in canonical execution order. Issue order in
// verdicts follows this order.
func Defaults() []engine.Detector {
	return []engine.Detector{
		{Name: "forbidden-words", Run: ForbiddenWords},
		{Name: "suspicious-phrases", Run: SuspiciousPhrases},
		{Name: "email", Run: Email},
		{Name: "phone", Run: Phone},
		{Name: "suspicious-urls", Run: SuspiciousURLs},
		{Name: "excessive-caps", Run: ExcessiveCaps},
		{Name: "spam-patterns", Run: SpamPatterns},
	}
}
