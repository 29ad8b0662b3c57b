package arith

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions with arbitrary precision. It
// is not safe to use a Context concurrently; use Clone to get one for each
// goroutine.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits. Zero means the default.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. Invalid expressions
// give an *Error, and results that a big.Float cannot represent, like the
// square root of a negative number, give a *DomainError.
//
// Number literals are the same as for the package-level Eval, including
// hexadecimal forms like 0x1p4, except that NaN is an invalid number.
func (ctx *Context) Eval(src string, opts ...ParseOption) (*big.Float, error) {
	ctx.stack = ctx.stack[:0]
	if err := parse(src, ctx, opts); err != nil {
		ctx.stack = ctx.stack[:0]
		return nil, err
	}
	if len(ctx.stack) != 1 {
		panic("arith: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items")
	}
	// The stack's values are reused, so the caller gets a copy.
	return new(big.Float).Copy(ctx.pop()), nil
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case precopt:
			if opt != 0 {
				n.prec = uint(opt)
			}
		default:
			panic("arith: unknown option type")
		}
	}
	// Cached numbers are only good at the precision they were parsed with.
	if n.prec == ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = v
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value may be
// modified by future pushes.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from a literal. Literals are the ones
// Eval accepts, except NaN.
func (ctx *Context) num(tok lexToken) (*big.Float, error) {
	if r := ctx.nums[tok.text]; r != nil {
		return r, nil
	}
	f, err := parsenum(tok)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) {
		return nil, &Error{Kind: InvalidNumber, Col: tok.pos, Token: tok.text}
	}
	r, _, err := big.ParseFloat(tok.text, 0, ctx.prec, big.ToNearestEven)
	if err != nil {
		// Either the literal is outside even big.Float's exponent range, in
		// which case f is the right infinity or signed zero, or it is a
		// spelling like "infinity" that only strconv reads.
		r = new(big.Float).SetPrec(ctx.prec).SetFloat64(f)
	}
	ctx.nums[tok.text] = r
	return r, nil
}

func (ctx *Context) literal(tok lexToken) error {
	v, err := ctx.num(tok)
	if err != nil {
		return err
	}
	ctx.push().Set(v)
	return nil
}

func (ctx *Context) apply(op lexToken) (err error) {
	r := ctx.pop()
	l := ctx.top()
	defer func() {
		// big.Float panics on inf-inf, 0*inf, and inf/inf.
		p := recover()
		if p == nil {
			return
		}
		nan, ok := p.(big.ErrNaN)
		if !ok {
			panic(p)
		}
		err = &DomainError{X: new(big.Float).Copy(r), Col: op.pos, Func: op.text, nan: nan}
	}()
	switch op.text {
	case "+":
		l.Add(l, r)
	case "-":
		l.Sub(l, r)
	case "*":
		l.Mul(l, r)
	case "/":
		if r.Sign() == 0 {
			return &Error{Kind: DivisionByZero, Col: op.pos, Token: op.text}
		}
		l.Quo(l, r)
	case "^":
		if !pow(l, r) {
			return &DomainError{X: new(big.Float).Copy(l), Col: op.pos, Func: op.text}
		}
	default:
		panic("arith: unknown operator " + op.String())
	}
	return nil
}

// pow sets z to z^y. It follows math.Pow except that it reports false instead
// of producing NaN, which a big.Float can't hold.
func pow(z, y *big.Float) bool {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
		return true
	case y.IsInf(), y.MantExp(nil) > int(max(z.Prec(), y.Prec()))+64:
		// Past that exponent, y is an even integer, and z^y is outside the
		// exponent range of any big.Float unless |z| is 1.
		var a big.Float
		switch c := a.Abs(z).Cmp(bigOne); {
		case c == 0:
			z.SetInt64(1)
		case (c > 0) == (y.Sign() > 0):
			z.SetInf(false)
		default:
			z.SetInt64(0)
		}
		return true
	}
	n, acc := y.Int(nil)
	if acc == big.Exact {
		powi(z, n)
		return true
	}
	switch {
	case z.Sign() == 0:
		if y.Sign() > 0 {
			z.SetInt64(0)
		} else {
			z.SetInf(false)
		}
		return true
	case z.IsInf():
		if y.Sign() > 0 {
			z.SetInf(false)
		} else {
			z.SetInt64(0)
		}
		return true
	case z.Sign() < 0:
		return false
	}
	// z^y = z^n * z^f where n is y truncated and |f| < 1. Only the last
	// factor needs logarithms, and it is always well inside the exponent
	// range.
	var f big.Float
	f.SetPrec(y.Prec()).Sub(y, new(big.Float).SetInt(n))
	// bigfloat.Pow doesn't always leave its result in its first argument.
	r := bigfloat.Pow(new(big.Float).SetPrec(z.Prec()), z, &f)
	powi(z, n)
	z.Mul(z, r)
	return true
}

// powi sets z to z^n by repeated squaring. The result is exact whenever it
// fits in z's precision.
func powi(z *big.Float, n *big.Int) {
	u := new(big.Int).Abs(n)
	x := new(big.Float).Copy(z)
	z.SetInt64(1)
	for i, bits := 0, u.BitLen(); i < bits; i++ {
		if u.Bit(i) != 0 {
			z.Mul(z, x)
		}
		if i+1 == bits {
			break
		}
		x.Mul(x, x)
		if x.IsInf() || x.Sign() == 0 {
			// Squaring can't change x anymore, and the top bit of u is
			// still to come.
			z.Mul(z, x)
			break
		}
	}
	if n.Sign() < 0 {
		z.Quo(bigOne, z)
	}
}

var bigOne = big.NewFloat(1)

// EvalBig is a shortcut to evaluate an expression with a new context at the
// given precision.
func EvalBig(src string, prec uint, opts ...ParseOption) (*big.Float, error) {
	return NewContext(Prec(prec)).Eval(src, opts...)
}

// DomainError is an error returned when the result of an operation is not a
// real number, e.g. a negative number raised to a fractional power, or the
// difference of two infinities. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Col is the column of the operator.
	Col int
	// Func is the operator.
	Func string

	nan big.ErrNaN
}

func (err *DomainError) Error() string {
	return errpos(err.Col, err.X.String()+" outside domain of "+err.Func)
}

func (err *DomainError) Pos() int {
	return err.Col
}

func (err *DomainError) Unwrap() error {
	return err.nan
}

var _ InputError = (*DomainError)(nil)
