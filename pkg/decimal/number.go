// Package decimal provides the arbitrary precision number used by the
// calculator, along with the parsing and rendering rules of its display.
package decimal

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

// Error is the class of all parse errors returned by this package.
var Error = errs.Class("decimal")

// maxExp bounds the scientific exponent of a finite number. Larger values
// overflow to Infinity and smaller ones underflow to zero.
const maxExp = 1_000_000_000

var (
	numericRE    = regexp.MustCompile(`^(-?(?:\d+(?:\.\d*)?|\.\d+))(?:[eE]([+-]?\d+))?$`)
	basePrefixRE = regexp.MustCompile(`^(-?)0([xXoObB])([0-9a-fA-F]+)$`)
	nonFiniteRE  = regexp.MustCompile(`^(-?)(Infinity|NaN)$`)
)

type state uint8

const (
	finite state = iota
	posInf
	negInf
	nan
)

// Number is a base 10 number of arbitrary precision, or one of the
// non-finite states (±Infinity, NaN).
type Number struct {
	decimal.Decimal
	state state
}

// NewFromDecimal creates a finite Number from a decimal.Decimal.
func NewFromDecimal(d decimal.Decimal) Number {
	return bounded(d)
}

// Zero returns a zero Number.
func Zero() Number {
	return Number{Decimal: decimal.Zero}
}

// Inf returns +Infinity for sign >= 0 and -Infinity otherwise.
func Inf(sign int) Number {
	if sign < 0 {
		return Number{Decimal: decimal.Zero, state: negInf}
	}
	return Number{Decimal: decimal.Zero, state: posInf}
}

// NaN returns the not-a-number state.
func NaN() Number {
	return Number{Decimal: decimal.Zero, state: nan}
}

// Parse reads a number in any of the textual forms the calculator accepts:
// plain or exponential decimals, 0x/0o/0b integers, Infinity and NaN. The
// empty string is the initial display state and parses as zero.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if len(s) > 1 && s[0] == '+' && s[1] != '+' && s[1] != '-' {
		s = s[1:]
	}
	if s == "" {
		return Zero(), nil
	}

	if m := nonFiniteRE.FindStringSubmatch(s); m != nil {
		switch {
		case m[2] == "NaN":
			return NaN(), nil
		case m[1] == "-":
			return Inf(-1), nil
		default:
			return Inf(1), nil
		}
	}

	if m := basePrefixRE.FindStringSubmatch(s); m != nil {
		return parseBase(s, m[1], m[2], m[3])
	}

	m := numericRE.FindStringSubmatch(s)
	if m == nil {
		return Number{}, Error.New("invalid number %q", s)
	}

	mantissa, err := decimal.NewFromString(m[1])
	if err != nil {
		return Number{}, Error.Wrap(err)
	}
	if m[2] == "" {
		return bounded(mantissa), nil
	}
	if mantissa.IsZero() {
		return Zero(), nil
	}

	shift, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil || shift > maxExp*2 || shift < -maxExp*2 {
		// the exponent alone is out of range
		if strings.HasPrefix(m[2], "-") {
			return Zero(), nil
		}
		return Inf(mantissa.Sign()), nil
	}
	switch e := sciExp(mantissa) + shift; {
	case e > maxExp:
		return Inf(mantissa.Sign()), nil
	case e < -maxExp:
		return Zero(), nil
	}
	return bounded(mantissa.Shift(int32(shift))), nil
}

func parseBase(s, sign, prefix, digits string) (Number, error) {
	base := 16
	switch prefix {
	case "o", "O":
		base = 8
	case "b", "B":
		base = 2
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Number{}, Error.New("invalid number %q", s)
	}
	if sign == "-" {
		v.Neg(v)
	}
	return bounded(decimal.NewFromBigInt(v, 0)), nil
}

// bounded applies the exponent limits to a finite decimal.
func bounded(d decimal.Decimal) Number {
	if d.IsZero() {
		return Zero()
	}
	e := sciExp(d)
	switch {
	case e > maxExp:
		return Inf(d.Sign())
	case e < -maxExp:
		return Zero()
	}
	return Number{Decimal: d}
}

// sciExp returns the exponent of d in scientific notation (d = m * 10^e,
// 1 <= |m| < 10).
func sciExp(d decimal.Decimal) int64 {
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	return int64(digits-1) + int64(d.Exponent())
}

// IsFinite reports whether n is neither infinite nor NaN.
func (n Number) IsFinite() bool {
	return n.state == finite
}

// IsNaN reports whether n is NaN.
func (n Number) IsNaN() bool {
	return n.state == nan
}

// IsInf reports whether n is an infinity.
func (n Number) IsInf() bool {
	return n.state == posInf || n.state == negInf
}

// IsZero reports whether n is a finite zero.
func (n Number) IsZero() bool {
	return n.IsFinite() && n.Decimal.IsZero()
}

// Sign returns -1, 0 or +1. NaN has sign 0.
func (n Number) Sign() int {
	switch n.state {
	case posInf:
		return 1
	case negInf:
		return -1
	case nan:
		return 0
	}
	return n.Decimal.Sign()
}

// Add adds another Number
func (n Number) Add(other Number) Number {
	if n.IsFinite() && other.IsFinite() {
		return bounded(n.Decimal.Add(other.Decimal))
	}
	if n.IsNaN() || other.IsNaN() {
		return NaN()
	}
	if n.IsInf() && other.IsInf() && n.Sign() != other.Sign() {
		return NaN()
	}
	if n.IsInf() {
		return n
	}
	return other
}

// Sub subtracts another Number
func (n Number) Sub(other Number) Number {
	return n.Add(other.Neg())
}

// Mul multiplies by another Number
func (n Number) Mul(other Number) Number {
	if n.IsFinite() && other.IsFinite() {
		return bounded(n.Decimal.Mul(other.Decimal))
	}
	if n.IsNaN() || other.IsNaN() || n.Sign() == 0 || other.Sign() == 0 {
		return NaN()
	}
	return Inf(n.Sign() * other.Sign())
}

// Neg returns -n.
func (n Number) Neg() Number {
	switch n.state {
	case posInf:
		return Inf(-1)
	case negInf:
		return Inf(1)
	case nan:
		return n
	}
	return Number{Decimal: n.Decimal.Neg()}
}

// Equal checks if two numbers are equal. NaN equals nothing.
func (n Number) Equal(other Number) bool {
	if n.IsNaN() || other.IsNaN() {
		return false
	}
	if n.state != other.state {
		return false
	}
	return n.Decimal.Equal(other.Decimal)
}

// Context is the numeric configuration shared by every calculation: the
// number of fractional digits kept after a division or normalization, and
// the scientific exponent at which rendering switches to exponential form.
type Context struct {
	DecimalPlaces int32 `yaml:"decimal_places" json:"decimal_places"`
	ExponentialAt int32 `yaml:"exponential_at" json:"exponential_at"`
}

const (
	DefaultDecimalPlaces = 15
	DefaultExponentialAt = 17
)

// DefaultContext returns the calculator's standard context.
func DefaultContext() Context {
	return Context{
		DecimalPlaces: DefaultDecimalPlaces,
		ExponentialAt: DefaultExponentialAt,
	}
}

// Validate checks that the context describes a usable precision.
func (c Context) Validate() error {
	if c.DecimalPlaces < 0 {
		return Error.New("decimal places cannot be negative")
	}
	if c.ExponentialAt <= 0 {
		return Error.New("exponential threshold must be positive")
	}
	return nil
}

// Normalize rounds n to the context's decimal places, half away from zero.
func (c Context) Normalize(n Number) Number {
	if !n.IsFinite() || n.Exponent() >= -c.DecimalPlaces {
		return n
	}
	return bounded(n.Decimal.Round(c.DecimalPlaces))
}

// Quo divides a by b, rounding to the context's decimal places half away
// from zero. A zero divisor yields ±Infinity, or NaN for 0/0.
func (c Context) Quo(a, b Number) Number {
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaN()
	case a.IsInf() && b.IsInf():
		return NaN()
	case a.IsInf():
		return Inf(a.Sign() * signOrOne(b.Sign()))
	case b.IsInf():
		return Zero()
	case b.IsZero():
		if a.IsZero() {
			return NaN()
		}
		return Inf(a.Sign())
	}
	return bounded(a.Decimal.DivRound(b.Decimal, c.DecimalPlaces))
}

func signOrOne(s int) int {
	if s == 0 {
		return 1
	}
	return s
}

// Format renders n in canonical form: no trailing zeros, plain notation
// unless the scientific exponent reaches ±ExponentialAt. Zero is always "0".
func (c Context) Format(n Number) string {
	switch n.state {
	case posInf:
		return "Infinity"
	case negInf:
		return "-Infinity"
	case nan:
		return "NaN"
	}
	if n.IsZero() {
		return "0"
	}

	digits := new(big.Int).Abs(n.Coefficient()).String()
	trimmed := strings.TrimRight(digits, "0")
	exp := int64(n.Exponent()) + int64(len(digits)-len(trimmed))
	digits = trimmed

	sign := ""
	if n.IsNegative() {
		sign = "-"
	}

	e := int64(len(digits)-1) + exp
	if e >= int64(c.ExponentialAt) || e <= -int64(c.ExponentialAt) {
		return sign + exponential(digits, e)
	}
	return sign + fixedPoint(digits, exp)
}

func exponential(digits string, e int64) string {
	var b strings.Builder
	b.WriteString(digits[:1])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	if e >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatInt(e, 10))
	return b.String()
}

func fixedPoint(digits string, exp int64) string {
	if exp >= 0 {
		return digits + strings.Repeat("0", int(exp))
	}
	point := int64(len(digits)) + exp
	if point > 0 {
		return digits[:point] + "." + digits[point:]
	}
	return "0." + strings.Repeat("0", int(-point)) + digits
}

// String renders n with the default context.
func (n Number) String() string {
	return DefaultContext().Format(n)
}
