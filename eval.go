package arith

import (
	"errors"
	"math"
	"strconv"
)

// Eval evaluates an expression using float64 arithmetic. Any error is an
// *Error. Results may be infinite, or NaN where exponentiation is undefined,
// e.g. "-8 ^ 0.5".
//
// Eval does not keep any state between calls, so it is safe to use
// concurrently.
func Eval(src string, opts ...ParseOption) (float64, error) {
	m := floats{stack: make([]float64, 0, 4)}
	if err := parse(src, &m, opts); err != nil {
		return 0, err
	}
	if len(m.stack) != 1 {
		panic("arith: inconsistent stack: " + strconv.Itoa(len(m.stack)) + " items")
	}
	return m.stack[0], nil
}

// floats is a machine computing with float64.
type floats struct {
	stack []float64
}

func (m *floats) literal(tok lexToken) error {
	v, err := parsenum(tok)
	if err != nil {
		return err
	}
	m.stack = append(m.stack, v)
	return nil
}

// parsenum parses a number token as a float64.
func parsenum(tok lexToken) (float64, error) {
	v, err := strconv.ParseFloat(tok.text, 64)
	// Literals too large for float64 are still numbers. ParseFloat gives ±Inf
	// for them.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &Error{Kind: InvalidNumber, Col: tok.pos, Token: tok.text}
	}
	return v, nil
}

func (m *floats) apply(op lexToken) error {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	l := &m.stack[len(m.stack)-1]
	switch op.text {
	case "+":
		*l += r
	case "-":
		*l -= r
	case "*":
		*l *= r
	case "/":
		if r == 0 {
			return &Error{Kind: DivisionByZero, Col: op.pos, Token: op.text}
		}
		*l /= r
	case "^":
		*l = math.Pow(*l, r)
	default:
		panic("arith: unknown operator " + op.String())
	}
	return nil
}
