package detectors

import (
	"regexp"
	"slices"
	"strings"

	"github.com/plumesocial/vigile/moderation/engine"
)

// based on: https://stackoverflow.com/a/48769624, with no trailing period allowed
var urlRegex = regexp.MustCompile(`(?:(?:https?|ftp):\/\/)?[\w/\-?=%.]+\.[\w/\-&?=%.]*[\w/\-&?=%]+`)

// Domains that never count as suspicious: the platform itself and the major
// social platforms. Subdomains are covered ("www.instagram.com" is fine).
var allowedDomains = []string{
	"plumesocial.com",
	"instagram.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"youtube.com",
	"tiktok.com",
	"bsky.app",
}

// Flags URLs whose domain is not on the allow-list. Emits a single issue
// carrying every offending URL as evidence.
func SuspiciousURLs(text string) []engine.Issue {
	var offending []string
	for _, raw := range urlRegex.FindAllString(text, -1) {
		domain := domainOf(raw)
		if domain == "" || domainAllowed(domain) {
			continue
		}
		offending = append(offending, raw)
	}
	if len(offending) == 0 {
		return nil
	}
	return []engine.Issue{engine.SuspiciousURLIssue{URLs: offending}}
}

// TLDs we treat as "this is really a URL" for schemeless candidates. A
// sentence with a missing space after the period ("super.Merci") matches the
// URL regex but should not be flagged.
var knownTLDs = []string{
	"com", "net", "org", "info", "biz", "io", "app", "me", "co", "xyz",
	"fr", "be", "ch", "ca", "uk", "de", "es", "it", "pt", "nl",
}

func domainOf(raw string) string {
	s := raw
	hadScheme := false
	if idx := strings.Index(s, "://"); idx >= 0 {
		s = s[idx+3:]
		hadScheme = true
	}
	if idx := strings.IndexAny(s, "/?"); idx >= 0 {
		s = s[:idx]
	}
	s = strings.ToLower(s)
	if !strings.Contains(s, ".") {
		return ""
	}
	if !hadScheme {
		labels := strings.Split(s, ".")
		tld := labels[len(labels)-1]
		if !slices.Contains(knownTLDs, tld) {
			return ""
		}
	}
	return s
}

func domainAllowed(domain string) bool {
	for _, allowed := range allowedDomains {
		if domain == allowed || strings.HasSuffix(domain, "."+allowed) {
			return true
		}
	}
	return false
}
