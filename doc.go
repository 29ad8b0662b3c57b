// Package arith evaluates arithmetic expressions written as space-separated
// tokens.
//
// Every token is separated from its neighbors by exactly one space, including
// brackets: "( 2 + 3 ) * 4" is 20. Numbers may carry their own sign, so
// "2 ^ -3" is 0.125, but there are no unary operators otherwise.
//
// There are two precedence tiers. + and - bind loosest; *, / and ^ share the
// tighter tier. Within a tier, operators apply strictly left to right, so
// "2 ^ 3 ^ 2" is 64 and "2 * 3 ^ 2" is 36. This is not the usual convention for
// exponentiation, and it is intentional.
//
// An expression must use all of its input. Anything left over after a complete
// expression, as in "1 2", is an error of kind TrailingInput. Empty tokens from
// doubled, leading, or trailing spaces are invalid numbers unless the Lenient
// option is given.
//
// Eval computes with float64. A Context computes the same expressions with
// big.Float at any precision. Group shows how an expression is grouped without
// computing it.
package arith
