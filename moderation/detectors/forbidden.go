package detectors

import (
	"strings"

	"github.com/plumesocial/vigile/moderation/engine"
	"github.com/plumesocial/vigile/moderation/keyword"
)

// Fixed vocabulary of profanity, slurs and scam keywords, as folded tokens
// (lower-case, accents stripped). Matching is per whole token, so "class"
// never matches "ass".
var forbiddenVocab = []string{
	// French profanity and insults
	"connard",
	"connasse",
	"salope",
	"pute",
	"encule",
	"batard",
	"pede",
	"nique",
	"ntm",
	"fdp",
	// English
	"asshole",
	"bitch",
	"cunt",
	"whore",
	"slut",
	// scam vocabulary
	"bitcoin2x",
	"cashapp",
	"onlyfanspromo",
}

// Matches text tokens against the forbidden vocabulary. Emits a single issue
// carrying the distinct matched words and the total hit count; the weight
// scales with the count, capped in the scorer.
func ForbiddenWords(text string) []engine.Issue {
	var words []string
	hits := 0
	seen := make(map[string]bool)
	for _, tok := range keyword.TokenizeText(text) {
		// de-pluralize
		tok = strings.TrimSuffix(tok, "s")
		if !keyword.TokenInSet(tok, forbiddenVocab) {
			continue
		}
		hits++
		if !seen[tok] {
			seen[tok] = true
			words = append(words, tok)
		}
	}
	if hits == 0 {
		return nil
	}
	return []engine.Issue{engine.ForbiddenWordsIssue{Words: words, Hits: hits}}
}
