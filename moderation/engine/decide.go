package engine

// Fixed remediation strings, one per issue kind. Email and phone share the
// same string; suggestion lists are deduplicated.
var suggestionText = map[IssueKind]string{
	KindForbiddenWords:    "Reformulez votre message sans termes injurieux ou interdits",
	KindSuspiciousPhrases: "Les sollicitations et paiements hors plateforme ne sont pas autorisés",
	KindEmailDetected:     "Évitez de partager vos coordonnées dans le contenu public",
	KindPhoneDetected:     "Évitez de partager vos coordonnées dans le contenu public",
	KindSuspiciousURL:     "Retirez les liens vers des sites externes non vérifiés",
	KindCapsLock:          "Évitez d'écrire votre message entièrement en majuscules",
	KindSpamPattern:       "Réduisez les répétitions et la ponctuation excessive",
	KindRepeatOffender:    "Votre compte a fait l'objet d'avertissements répétés ; les prochains manquements pourront entraîner une suspension",
}

// Pure function from an issue set to a verdict: scoring, severity, the
// block/flag decision, and remediation suggestions. Writes nothing.
func Decide(issues []Issue) *Verdict {
	score := ScoreIssues(issues)
	severity := SeverityFor(score, issues)
	return &Verdict{
		IsClean:     len(issues) == 0,
		ShouldBlock: shouldBlock(severity, issues),
		Severity:    severity,
		Score:       score,
		Issues:      issues,
		Suggestions: buildSuggestions(issues),
	}
}

// HIGH and CRITICAL always block. MEDIUM blocks only when explicit-language
// signals are present: medium-severity generic noise (eg caps plus one URL)
// is flagged but allowed.
func shouldBlock(severity Severity, issues []Issue) bool {
	switch severity {
	case SeverityHigh, SeverityCritical:
		return true
	case SeverityMedium:
		for _, iss := range issues {
			switch iss.Kind() {
			case KindForbiddenWords, KindSuspiciousPhrases:
				return true
			}
		}
	}
	return false
}

// One suggestion per distinct issue kind, in issue order, with duplicate
// strings removed (email and phone collapse to a single entry).
func buildSuggestions(issues []Issue) []string {
	var out []string
	seen := make(map[string]bool)
	for _, iss := range issues {
		text, ok := suggestionText[iss.Kind()]
		if !ok || seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, text)
	}
	return out
}
