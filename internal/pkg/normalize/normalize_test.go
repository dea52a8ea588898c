//go:build unit

package normalize_test

import (
	"testing"

	"ferias-api/internal/pkg/normalize"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "all caps with preposition", in: "JOÃO DA SILVA", expected: "João da Silva"},
		{name: "all lowercase", in: "maria de souza", expected: "Maria de Souza"},
		{name: "mixed case", in: "pEdRo DoS sAnToS", expected: "Pedro dos Santos"},
		{name: "first word is a preposition", in: "da Silva", expected: "Da Silva"},
		{name: "single word", in: "carlos", expected: "Carlos"},
		{name: "empty returns unchanged", in: "", expected: ""},
		{name: "accented first letters", in: "ângela árvore", expected: "Ângela Árvore"},
		{name: "all prepositions after first word", in: "de da do das dos", expected: "De da do das dos"},
		{name: "preposition-like substrings keep capitalization", in: "daniela dores", expected: "Daniela Dores"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalize.Name(tc.in))
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{
		"JOÃO DA SILVA",
		"da Silva",
		"ana maria das neves",
		"ÂNGELA DE MELO",
		"x",
	}

	for _, in := range inputs {
		once := normalize.Name(in)
		assert.Equal(t, once, normalize.Name(once), "Name must be idempotent for %q", in)
	}
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", normalize.Email("USER@Example.COM"))
	assert.Equal(t, "", normalize.Email(""))
	// no trimming
	assert.Equal(t, "  user@x.com ", normalize.Email("  USER@X.COM "))
}
