package detectors

import (
	"strings"
	"unicode"

	"github.com/plumesocial/vigile/moderation/engine"
)

var (
	// uppercase ratio above which longer text counts as shouting
	CapsRatioThreshold = 0.6
	// minimum letters (across qualifying tokens) before the ratio is
	// meaningful; short text and acronyms ("ASAP") stay below this
	CapsMinLetters = 12
	// tokens shorter than this are ignored entirely
	capsMinTokenLen = 4
)

// Computes the uppercase ratio over the letters of tokens of length >= 4.
func ExcessiveCaps(text string) []engine.Issue {
	letters := 0
	upper := 0
	for _, tok := range strings.Fields(text) {
		if len([]rune(tok)) < capsMinTokenLen {
			continue
		}
		for _, r := range tok {
			if !unicode.IsLetter(r) {
				continue
			}
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters < CapsMinLetters {
		return nil
	}
	ratio := float64(upper) / float64(letters)
	if ratio <= CapsRatioThreshold {
		return nil
	}
	return []engine.Issue{engine.CapsLockIssue{Ratio: ratio, Letters: letters}}
}
