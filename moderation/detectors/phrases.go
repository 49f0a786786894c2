package detectors

import (
	"strings"

	"github.com/plumesocial/vigile/moderation/engine"
	"github.com/plumesocial/vigile/moderation/keyword"
)

// Known scam and solicitation phrase templates, grouped by family. Matching
// is on folded text (lower-case, accents stripped), so "Paiement HORS
// plateforme" matches the off-platform-payment family.
var phraseFamilies = []struct {
	family    string
	templates []string
}{
	{
		family: "off-platform-payment",
		templates: []string{
			"paiement hors plateforme",
			"payer hors plateforme",
			"paiement en dehors de la plateforme",
			"paye en dehors du site",
			"virement direct",
			"paypal en direct",
		},
	},
	{
		family: "contact-solicitation",
		templates: []string{
			"envoie moi ton numero",
			"passe moi ton numero",
			"donne moi ton whatsapp",
			"retrouve moi sur telegram",
			"ajoute moi sur snap",
		},
	},
	{
		family: "money-scheme",
		templates: []string{
			"argent facile",
			"gagner de l argent rapidement",
			"revenu garanti",
			"double tes gains",
		},
	},
}

// Matches phrase templates against the folded text. Emits one issue per
// family matched, regardless of how many of its templates appear.
func SuspiciousPhrases(text string) []engine.Issue {
	folded := keyword.FoldText(text)
	// template spacing is single-space; collapse runs so "envoie  moi" matches
	folded = strings.Join(strings.Fields(folded), " ")

	var out []engine.Issue
	for _, fam := range phraseFamilies {
		for _, tpl := range fam.templates {
			if strings.Contains(folded, tpl) {
				out = append(out, engine.SuspiciousPhraseIssue{Family: fam.family, Phrase: tpl})
				break
			}
		}
	}
	return out
}
