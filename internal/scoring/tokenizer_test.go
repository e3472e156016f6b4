package scoring

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeKeepsLanguageSymbols(t *testing.T) {
	got := Tokenize("C++ and C# developers, Node.js!")
	assert.Equal(t, []string{"c++", "and", "developers", "node"}, got)
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  \t\n a, bc! "))
}

func TestTokenizeOutputShape(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9+#]{3,}$`)
	inputs := []string{
		"Senior GOLANG Engineer (Remote) — 5+ years",
		"Kubernetes/Docker; CI/CD\tpipelines\nAWS",
		"Ünïcödé résumé naïve café",
		`{"summary":"Built APIs","skills":["Go","SQL"]}`,
	}
	for _, in := range inputs {
		first := Tokenize(in)
		assert.Equal(t, first, Tokenize(in), "tokenize must be deterministic for %q", in)
		for _, tok := range first {
			assert.Regexp(t, valid, tok, "input %q", in)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		0:       0,
		0.5:     1,
		2.5:     3,
		49.4999: 49,
		66.6667: 67,
		100:     100,
	}
	for in, want := range cases {
		assert.Equal(t, want, roundHalfUp(in), "roundHalfUp(%v)", in)
	}
}
