package arith

// ParseOption is an option for tokenizing and parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings for parsing one expression.
type parsectx struct {
	// lenient causes empty tokens to be dropped instead of rejected.
	lenient bool
}

// parseopts applies options in order to the default settings.
func parseopts(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}

type lenientopt bool

// Lenient tells the tokenizer to ignore the empty tokens that doubled, leading,
// or trailing spaces would create. By default, an empty token is an invalid
// number, so "1  + 2" is an error.
func Lenient() ParseOption {
	return lenientopt(true)
}

func (o lenientopt) parseOption(p parsectx) parsectx {
	p.lenient = bool(o)
	return p
}
