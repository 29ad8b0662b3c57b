package arith

// Expr   = Term { ('+' | '-') Term }
// Term   = Factor { ('*' | '/' | '^') Factor }
// Factor = num | '(' Expr ')'
//
// There is no tree. Each level hands values straight to a machine, which
// computes as the parser goes.

// machine does the arithmetic for the parser. The parser pushes the value of
// each literal and then applies each operator to the two values on top, so a
// machine is a stack of values in whatever representation it computes with.
type machine interface {
	// literal pushes the value of a number token.
	literal(tok lexToken) error
	// apply replaces the top two values with the result of the operator.
	apply(op lexToken) error
}

// tier is a precedence level. Operators in the same tier apply left to right.
type tier int8

const (
	tierNone tier = iota
	// tierSum is + and -.
	tierSum
	// tierProduct is *, /, and ^. Exponentiation deliberately does not bind
	// more tightly than multiplication.
	tierProduct
)

// binop gets the tier of an operator token. Tokens that aren't operators have
// tierNone.
func binop(tok lexToken) tier {
	if tok.kind != tokenOp {
		return tierNone
	}
	switch tok.text {
	case "+", "-":
		return tierSum
	case "*", "/", "^":
		return tierProduct
	default:
		panic("arith: unknown operator " + tok.String())
	}
}

// parse checks, tokenizes, and evaluates src on m. On success, m holds exactly
// one value.
func parse(src string, m machine, opts []ParseOption) error {
	if bad, ok := balanced(src); !ok {
		return &Error{Kind: UnbalancedParentheses, Col: bad.pos, Token: bad.text}
	}
	p := parseopts(opts)
	s := lex(src, p.lenient)
	if err := parseexpr(s, m); err != nil {
		return err
	}
	if tok, ok := s.peek(); ok {
		return misplaced(tok, TrailingInput)
	}
	return nil
}

// misplaced creates the error for a token where no token of its kind can go.
// An empty token is never valid anywhere, so it is always an invalid number
// rather than whatever kind its position would suggest.
func misplaced(tok lexToken, kind Kind) error {
	if tok.text == "" {
		kind = InvalidNumber
	}
	return &Error{Kind: kind, Col: tok.pos, Token: tok.text}
}

// parseexpr parses a sum of terms. It stops at the first token that is not +
// or -, leaving that token for the caller.
func parseexpr(s *stream, m machine) error {
	return parsetier(s, m, tierSum, parseterm)
}

// parseterm parses a product of factors. It stops at the first token that is
// not *, /, or ^, leaving that token for the caller.
func parseterm(s *stream, m machine) error {
	return parsetier(s, m, tierProduct, parsefactor)
}

// parsetier parses operands joined by operators of one tier, applying each
// operator as soon as its right operand is parsed.
func parsetier(s *stream, m machine, t tier, operand func(*stream, machine) error) error {
	if err := operand(s, m); err != nil {
		return err
	}
	for {
		tok, ok := s.peek()
		if !ok || binop(tok) != t {
			return nil
		}
		s.next()
		if err := operand(s, m); err != nil {
			return err
		}
		if err := m.apply(tok); err != nil {
			return err
		}
	}
}

// parsefactor parses a number or a bracketed expression.
func parsefactor(s *stream, m machine) error {
	tok, ok := s.next()
	if !ok {
		return &Error{Kind: UnexpectedEndOfInput, Col: tok.pos}
	}
	switch tok.kind {
	case tokenOpen:
		if err := parseexpr(s, m); err != nil {
			return err
		}
		end, ok := s.next()
		if !ok {
			// The balance check normally catches this first.
			return &Error{Kind: UnbalancedParentheses, Col: tok.pos, Token: tok.text}
		}
		if end.kind != tokenClose {
			return misplaced(end, UnbalancedParentheses)
		}
		return nil
	case tokenOp:
		return &Error{Kind: UnexpectedOperator, Col: tok.pos, Token: tok.text}
	default:
		// Includes a stray close bracket, as in "( )", which is no more a
		// number than any other garbage.
		return m.literal(tok)
	}
}
