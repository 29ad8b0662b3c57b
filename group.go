package arith

import "strings"

// Group returns src with a pair of brackets around every operation, showing
// the order in which Eval applies operators. The result is itself a valid
// expression with the same value. E.g., Group("2 * 3 ^ 2") is
// "( ( 2 * 3 ) ^ 2 )".
func Group(src string, opts ...ParseOption) (string, error) {
	m := grouper{stack: make([]string, 0, 4)}
	if err := parse(src, &m, opts); err != nil {
		return "", err
	}
	return m.stack[0], nil
}

// grouper is a machine that computes text instead of numbers.
type grouper struct {
	stack []string
}

func (m *grouper) literal(tok lexToken) error {
	if _, err := parsenum(tok); err != nil {
		return err
	}
	m.stack = append(m.stack, tok.text)
	return nil
}

func (m *grouper) apply(op lexToken) error {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	l := &m.stack[len(m.stack)-1]
	var b strings.Builder
	b.Grow(len(*l) + len(op.text) + len(r) + 6)
	b.WriteString("( ")
	b.WriteString(*l)
	b.WriteByte(' ')
	b.WriteString(op.text)
	b.WriteByte(' ')
	b.WriteString(r)
	b.WriteString(" )")
	*l = b.String()
	return nil
}
