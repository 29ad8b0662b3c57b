package arith

// balanced checks that the round brackets in src nest properly. Nothing else
// in src is examined. If the brackets are unbalanced, the result is the close
// bracket with no open bracket or the innermost open bracket that is never
// closed.
func balanced(src string) (bad lexToken, ok bool) {
	var open []int
	col := 0
	for _, r := range src {
		col++
		switch r {
		case '(':
			open = append(open, col)
		case ')':
			if len(open) == 0 {
				return lexToken{text: ")", kind: tokenClose, pos: col}, false
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return lexToken{text: "(", kind: tokenOpen, pos: open[len(open)-1]}, false
	}
	return lexToken{}, true
}
