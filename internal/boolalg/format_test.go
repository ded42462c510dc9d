package boolalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  FormatOptions
		want  string
	}{
		{"minimal drops redundant parens", "(a & b) | c", FormatOptions{}, "a & b | c"},
		{"minimal keeps needed parens", "(a | b) & c", FormatOptions{}, "(a | b) & c"},
		{"xor binds between or and and", "a | b ^ c & d", FormatOptions{}, "a | b ^ c & d"},
		{"xor under and", "(a ^ b) & c", FormatOptions{}, "(a ^ b) & c"},
		{"not of binary", "!(a | b)", FormatOptions{}, "!(a | b)"},
		{"constants", "0 | 1", FormatOptions{}, "0 | 1"},
		{
			"word operators",
			"!a & b | c ^ d",
			FormatOptions{Operators: OperatorsWord},
			"NOT a AND b OR c XOR d",
		},
		{
			"full parens",
			"!a & b | c",
			FormatOptions{Parentheses: ParensFull},
			"((!a & b) | c)",
		},
		{
			"full parens word",
			"a ^ (b | c)",
			FormatOptions{Operators: OperatorsWord, Parentheses: ParensFull},
			"(a XOR (b OR c))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(expr, tt.opts))
		})
	}
}

func TestFormatAssociativeChains(t *testing.T) {
	// Right-leaning And chains (the cover converter's shape) render
	// without parentheses.
	expr := ExprAnd{A: ExprVar{Name: "x"}, B: ExprAnd{A: ExprVar{Name: "y"}, B: ExprVar{Name: "z"}}}
	assert.Equal(t, "x & y & z", Format(expr, FormatOptions{}))

	// Same for left-leaning Or chains.
	or := ExprOr{A: ExprOr{A: ExprVar{Name: "a"}, B: ExprVar{Name: "b"}}, B: ExprVar{Name: "c"}}
	assert.Equal(t, "a | b | c", Format(or, FormatOptions{}))
}

func TestFormatRoundTripSemantics(t *testing.T) {
	// Minimal formatting must reparse to an equivalent formula.
	inputs := []string{
		"a & b | c",
		"(a | b) & c",
		"!(a & b) ^ c",
		"a ^ b ^ c",
		"!a & !b | a & b",
	}
	for _, src := range inputs {
		expr, err := Parse(src)
		require.NoError(t, err)
		back, err := Parse(Format(expr, FormatOptions{}))
		require.NoError(t, err)
		assert.True(t, equivalent(t, expr, back), "round trip of %q", src)
	}
}

// equivalent compares two formulas over every assignment of their
// combined variables.
func equivalent(t *testing.T, a, b Expr) bool {
	t.Helper()
	vars := Variables(a)
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		seen[v] = true
	}
	for _, v := range Variables(b) {
		if !seen[v] {
			vars = append(vars, v)
			seen[v] = true
		}
	}
	n := len(vars)
	asn := make(Assignment, n)
	for i := uint64(0); i < uint64(1)<<n; i++ {
		for k := 0; k < n; k++ {
			asn[vars[k]] = (i>>(n-1-k))&1 == 1
		}
		va, err := Eval(a, asn)
		require.NoError(t, err)
		vb, err := Eval(b, asn)
		require.NoError(t, err)
		if va != vb {
			return false
		}
	}
	return true
}
