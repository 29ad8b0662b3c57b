package arith

import "strconv"

// Kind classifies an evaluation failure. Kind is itself an error so that
// callers can test for a kind with errors.Is, e.g.
//
//	if errors.Is(err, arith.DivisionByZero) { ... }
type Kind int8

const (
	kindNone Kind = iota
	// UnbalancedParentheses is a close bracket with no open bracket, or an
	// open bracket that is never closed.
	UnbalancedParentheses
	// UnexpectedEndOfInput is a missing operand at the end of the input.
	UnexpectedEndOfInput
	// UnexpectedOperator is an operator where an operand was expected.
	UnexpectedOperator
	// InvalidNumber is a token that does not parse as a number.
	InvalidNumber
	// DivisionByZero is a division whose right operand is zero.
	DivisionByZero
	// TrailingInput is a token left over after a complete expression.
	TrailingInput
)

func (k Kind) String() string {
	switch k {
	case UnbalancedParentheses:
		return "UnbalancedParentheses"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case UnexpectedOperator:
		return "UnexpectedOperator"
	case InvalidNumber:
		return "InvalidNumber"
	case DivisionByZero:
		return "DivisionByZero"
	case TrailingInput:
		return "TrailingInput"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) Error() string {
	switch k {
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case UnexpectedEndOfInput:
		return "unexpected end of expression"
	case UnexpectedOperator:
		return "unexpected operator"
	case InvalidNumber:
		return "invalid number"
	case DivisionByZero:
		return "division by zero"
	case TrailingInput:
		return "unexpected token after expression"
	default:
		return "arith: " + k.String()
	}
}

// Error is the error returned for any invalid expression. It implements
// InputError and unwraps to its Kind.
type Error struct {
	// Kind is the reason the expression is invalid.
	Kind Kind
	// Col is the 1-based rune column of the token that caused the error.
	Col int
	// Token is the offending token. It is empty for UnexpectedEndOfInput and
	// may be empty for InvalidNumber when the input contains doubled spaces.
	Token string
}

func (err *Error) Error() string {
	msg := err.Kind.Error()
	switch err.Kind {
	case UnexpectedEndOfInput, DivisionByZero:
	case UnexpectedOperator:
		msg += " " + strconv.Quote(err.Token)
	default:
		msg += ": " + strconv.Quote(err.Token)
	}
	return errpos(err.Col, msg)
}

func (err *Error) Pos() int {
	return err.Col
}

func (err *Error) Unwrap() error {
	return err.Kind
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)
