package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeText(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		text string
		out  []string
	}{
		{text: "", out: []string{}},
		{text: "Hello, World!", out: []string{"hello", "world"}},
		{text: "Envoie-moi ton NUMÉRO", out: []string{"envoie", "moi", "ton", "numero"}},
		{text: "l'argent   facile", out: []string{"l", "argent", "facile"}},
		{text: "café côté élève", out: []string{"cafe", "cote", "eleve"}},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, TokenizeText(fix.text))
	}
}

func TestFoldText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("paiement hors plateforme", FoldText("Paiement HORS plateforme"))
	assert.Equal("numero ", FoldText("Numéro!"))
}

func TestSlugify(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("abc123", Slugify("a b-c 1!2?3"))
	assert.Equal("grosarnaqueur", Slugify("Gros... Arnaqueur?!"))
}

func TestTokenInSet(t *testing.T) {
	assert := assert.New(t)

	set := []string{"one", "two"}
	assert.True(TokenInSet("one", set))
	assert.False(TokenInSet("three", set))
}
