// Package calc implements the calculator's arithmetic: decimal operations
// that never fail and the accumulation of digits into the display string.
//
// Every function takes and returns display strings. Invalid or non-finite
// input, and results that are not finite, come back as NotANumber.
package calc

import (
	"github.com/rpgo/calculator/pkg/decimal"
)

// NotANumber is returned in place of a result whenever an operand cannot be
// parsed or a value is not finite. Feeding it back in yields NotANumber.
const NotANumber = "Not a number"

// Engine performs calculations under a fixed numeric context.
type Engine struct {
	ctx    decimal.Context
	logger Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine for the given context.
func New(ctx decimal.Context, opts ...Option) (*Engine, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{ctx: ctx, logger: NopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

var defaultEngine = &Engine{ctx: decimal.DefaultContext(), logger: NopLogger{}}

// Default returns the engine used by the package-level functions: 15
// decimal places, exponential notation from 1e17.
func Default() *Engine {
	return defaultEngine
}

// Context returns the engine's numeric context.
func (e *Engine) Context() decimal.Context {
	return e.ctx
}

// parse reads a finite operand.
func (e *Engine) parse(s string) (decimal.Number, bool) {
	n, err := decimal.Parse(s)
	if err != nil {
		e.logger.Debugf("operand %q: %v", s, err)
		return n, false
	}
	if !n.IsFinite() {
		e.logger.Debugf("operand %q is not finite", s)
		return n, false
	}
	return n, true
}

// Apply performs op on a and b. The result is normalized to the context's
// decimal places and rendered in canonical form.
func (e *Engine) Apply(a string, op Operation, b string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warnf("%s %q %q: %v", op, a, b, r)
			result = NotANumber
		}
	}()

	x, ok := e.parse(a)
	if !ok {
		return NotANumber
	}
	y, ok := e.parse(b)
	if !ok {
		return NotANumber
	}

	var r decimal.Number
	switch op {
	case OpAdd:
		r = x.Add(y)
	case OpSubtract:
		r = x.Sub(y)
	case OpMultiply:
		r = x.Mul(y)
	case OpDivide:
		r = e.ctx.Quo(x, y)
	default:
		e.logger.Errorf("unknown operation %d", int(op))
		return NotANumber
	}

	r = e.ctx.Normalize(r)
	if !r.IsFinite() {
		e.logger.Debugf("%s %q %q is not finite", op, a, b)
		return NotANumber
	}
	return e.ctx.Format(r)
}

// ApplyUnary performs a unary operation on a.
func (e *Engine) ApplyUnary(a string, op UnaryOperation) string {
	switch op {
	case OpNegate:
		return e.Negate(a)
	case OpPercent:
		return e.Percent(a)
	}
	e.logger.Errorf("unknown unary operation %d", int(op))
	return NotANumber
}

func (e *Engine) Add(a, b string) string      { return e.Apply(a, OpAdd, b) }
func (e *Engine) Subtract(a, b string) string { return e.Apply(a, OpSubtract, b) }
func (e *Engine) Multiply(a, b string) string { return e.Apply(a, OpMultiply, b) }
func (e *Engine) Divide(a, b string) string   { return e.Apply(a, OpDivide, b) }

// Negate returns -a.
func (e *Engine) Negate(a string) string { return e.Multiply(a, "-1") }

// Percent returns a / 100.
func (e *Engine) Percent(a string) string { return e.Multiply(a, "0.01") }

// Add returns a + b.
func Add(a, b string) string { return defaultEngine.Add(a, b) }

// Subtract returns a - b.
func Subtract(a, b string) string { return defaultEngine.Subtract(a, b) }

// Multiply returns a * b.
func Multiply(a, b string) string { return defaultEngine.Multiply(a, b) }

// Divide returns a / b, rounded to 15 decimal places.
func Divide(a, b string) string { return defaultEngine.Divide(a, b) }

// Negate returns -a.
func Negate(a string) string { return defaultEngine.Negate(a) }

// Percent returns a / 100.
func Percent(a string) string { return defaultEngine.Percent(a) }
