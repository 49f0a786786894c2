package detectors

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spaolacci/murmur3"

	"github.com/plumesocial/vigile/moderation/engine"
)

// Spam signal names, kept stable so review tooling can group on them.
const (
	SignalRepeatedChars      = "repeated-chars"
	SignalDuplicateContent   = "duplicate-content"
	SignalPunctuationDensity = "punctuation-density"
)

var (
	// share of punctuation/symbol runes above which text counts as noise
	PunctuationDensityThreshold = 0.5
	// density is only meaningful past this many runes
	punctuationMinLen = 8
	// minimum length before the duplicated-halves check applies
	duplicateMinLen = 40
)

// Detects low-effort spam shapes: repeated-character runs, a message that is
// just the same content twice, and excessive punctuation/symbol density.
// Emits one issue per signal found.
func SpamPatterns(text string) []engine.Issue {
	var out []engine.Issue
	if hasRepeatedCharRun(text) {
		out = append(out, engine.SpamPatternIssue{Signal: SignalRepeatedChars})
	}
	if hasDuplicatedHalves(text) {
		out = append(out, engine.SpamPatternIssue{Signal: SignalDuplicateContent})
	}
	if punctuationDensity(text) > PunctuationDensityThreshold {
		out = append(out, engine.SpamPatternIssue{Signal: SignalPunctuationDensity})
	}
	return out
}

// True when six or more of the same character appear in a row ("!!!!!!",
// "aaaaaaa"). Equivalent to the backreference pattern `(.)\1{5,}`, which Go's
// RE2 regexp engine cannot express.
func hasRepeatedCharRun(text string) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= 6 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// True when the message is the same text pasted twice back to back
// (whitespace-insensitive). Compact hashes avoid holding both halves for the
// comparison.
func hasDuplicatedHalves(text string) bool {
	collapsed := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(collapsed) < duplicateMinLen {
		return false
	}
	runes := []rune(collapsed)
	mid := len(runes) / 2
	first := strings.TrimSpace(string(runes[:mid]))
	second := strings.TrimSpace(string(runes[mid:]))
	if len(first) == 0 {
		return false
	}
	return murmur3.Sum64([]byte(first)) == murmur3.Sum64([]byte(second))
}

func punctuationDensity(text string) float64 {
	total := 0
	punct := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			punct++
		}
	}
	if total < punctuationMinLen {
		return 0
	}
	return float64(punct) / float64(total)
}
