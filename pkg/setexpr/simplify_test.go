package setexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify(t *testing.T) {
	u := DefaultUniverse()
	tests := []struct {
		input    string
		expected string
	}{
		{"A", "A"},
		{"A''", "A"},
		{"A''''", "A"},
		{"A'''", "A'"},
		{"∅'", "𝕌"},
		{"𝕌'", "∅"},
		{"A∪∅", "A"},
		{"∅∪A", "A"},
		{"A∩𝕌", "A"},
		{"A∪𝕌", "𝕌"},
		{"A∩∅", "∅"},
		{"A∪A", "A"},
		{"A∩B∩(A∩B)", "A∩B"},
		{"A∪A'", "𝕌"},
		{"(B∩C)'∩B∩C", "(B∩C)'∩B∩C"},
		{"(B∩C)'∩(B∩C)", "∅"},
		{"(A∩∅)'∩B", "B"},
		{"((A∪∅)''∩𝕌)∪(C∩C')", "A"},
		{"A∪B", "A∪B"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := ParseString(tt.input, u)
			require.NoError(t, err)

			s := Simplify(e)
			assert.Equal(t, tt.expected, s.String())
			assert.True(t, Evaluate(e, u).Equal(Evaluate(s, u)))
		})
	}
}
