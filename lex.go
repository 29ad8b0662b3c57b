package arith

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is anything that isn't an operator or bracket. Whether it is
	// actually a number is decided when it is evaluated.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the binary operators.
const Operators = "+-*/^"

// classify decides the kind of a token by its text alone.
func classify(text string) tokenKind {
	switch text {
	case "+", "-", "*", "/", "^":
		return tokenOp
	case "(":
		return tokenOpen
	case ")":
		return tokenClose
	default:
		return tokenNum
	}
}

// stream is a cursor over the tokens of one expression. Tokens are consumed
// strictly in order with at most one token of lookahead.
type stream struct {
	toks []lexToken
	k    int
	// end is the column just past the end of the input.
	end int
}

// lex splits src on single spaces. Doubled, leading, and trailing spaces
// produce empty tokens unless skipEmpty is set.
func lex(src string, skipEmpty bool) *stream {
	s := stream{toks: make([]lexToken, 0, strings.Count(src, " ")+1)}
	col := 1
	for {
		text := src
		k := strings.IndexByte(src, ' ')
		if k >= 0 {
			text = src[:k]
		}
		if text != "" || !skipEmpty {
			s.toks = append(s.toks, lexToken{text: text, kind: classify(text), pos: col})
		}
		col += utf8.RuneCountInString(text)
		if k < 0 {
			break
		}
		// Skip the space.
		col++
		src = src[k+1:]
	}
	s.end = col
	return &s
}

// peek returns the next token without consuming it. ok is false at the end of
// the stream.
func (s *stream) peek() (tok lexToken, ok bool) {
	if s.k >= len(s.toks) {
		return lexToken{pos: s.end}, false
	}
	return s.toks[s.k], true
}

// next consumes and returns the next token. ok is false at the end of the
// stream, in which case the token holds only the end position.
func (s *stream) next() (tok lexToken, ok bool) {
	tok, ok = s.peek()
	if ok {
		s.k++
	}
	return tok, ok
}

// Tokens returns the tokens of src as the evaluator sees them.
func Tokens(src string, opts ...ParseOption) []string {
	p := parseopts(opts)
	s := lex(src, p.lenient)
	r := make([]string, len(s.toks))
	for i, tok := range s.toks {
		r[i] = tok.text
	}
	return r
}
