package arith_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

func TestGroup(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"bracketed-num", "( 1 )", "1"},
		{"prec", "2 + 3 * 4", "( 2 + ( 3 * 4 ) )"},
		{"sub-left", "8 - 3 - 2", "( ( 8 - 3 ) - 2 )"},
		{"pow-left", "2 ^ 3 ^ 2", "( ( 2 ^ 3 ) ^ 2 )"},
		{"pow-mul", "2 * 3 ^ 2", "( ( 2 * 3 ) ^ 2 )"},
		{"parens", "( 2 + 3 ) * 4", "( ( 2 + 3 ) * 4 )"},
		{"complex", "( 2 + 3 * 4 - 6 / 2 ) ^ 2 / 11", "( ( ( ( 2 + ( 3 * 4 ) ) - ( 6 / 2 ) ) ^ 2 ) / 11 )"},
		{"keeps-text", "1e3 + -0.50", "( 1e3 + -0.50 )"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := arith.Group(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)

			want, err := arith.Eval(c.src)
			require.NoError(t, err)
			r, err := arith.Eval(got)
			require.NoError(t, err, "grouped expression %q doesn't evaluate", got)
			assert.Equal(t, want, r)
		})
	}
}

func TestGroupErrors(t *testing.T) {
	_, err := arith.Group("2 + + 3")
	assert.ErrorIs(t, err, arith.UnexpectedOperator)
	_, err = arith.Group("2 + x")
	assert.ErrorIs(t, err, arith.InvalidNumber)
	// Grouping doesn't compute, so there's nothing to divide.
	got, err := arith.Group("2 / 0")
	require.NoError(t, err)
	assert.Equal(t, "( 2 / 0 )", got)
	got, err = arith.Group(" 2 +  3", arith.Lenient())
	require.NoError(t, err)
	assert.Equal(t, "( 2 + 3 )", got)
}
