package keyword

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonTokenChars = regexp.MustCompile(`[^\pL\pN\s]+`)
	nonSlugChars  = regexp.MustCompile(`[^\pL\pN]+`)
)

// Splits free-form text in to tokens: lower-case, punctuation stripped,
// unicode-normalized with combining marks (accents) removed. Matching a token
// against a fixed vocabulary is then a plain string comparison, with no
// partial-word false positives.
func TokenizeText(text string) []string {
	return strings.Fields(FoldText(text))
}

// Lower-cases the text, removes diacritics, and replaces punctuation with
// spaces, preserving word boundaries. "Numéro!" folds to "numero ".
func FoldText(text string) string {
	// the transform chain must be constructed per-call; norm.NFD transformers
	// carry state and are not safe for concurrent reuse
	normFunc := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped := strings.ToLower(nonTokenChars.ReplaceAllString(text, " "))
	folded, _, err := transform.String(normFunc, stripped)
	if err != nil {
		slog.Warn("unicode normalization error", "err", err)
		return stripped
	}
	return folded
}

// Takes an arbitrary string and returns a version with all non-letter,
// non-digit characters removed, and all lower-case.
func Slugify(orig string) string {
	return strings.ToLower(nonSlugChars.ReplaceAllString(orig, ""))
}

// Helper to check a single token against a list of tokens
func TokenInSet(tok string, set []string) bool {
	return slices.Contains(set, tok)
}
