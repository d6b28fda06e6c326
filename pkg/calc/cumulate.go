package calc

import (
	"fmt"
	"strings"
)

// Mode selects how Cumulate appends a fragment to the display.
type Mode int

const (
	// Cumul appends a digit to the whole number part.
	Cumul Mode = iota
	// Start begins a new entry, discarding the display.
	Start
	// StartDecimal begins the fraction after the decimal point is pressed.
	StartDecimal
	// CumulDecimal appends a digit to the fraction.
	CumulDecimal
)

var modeNames = [...]string{
	Cumul:        "CUMUL",
	Start:        "START",
	StartDecimal: "START_DECIMAL",
	CumulDecimal: "CUMUL_DECIMAL",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode resolves a mode by its name, e.g. "START_DECIMAL".
func ParseMode(name string) (Mode, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for m, s := range modeNames {
		if s == n {
			return Mode(m), nil
		}
	}
	return Cumul, fmt.Errorf("unknown mode %q", name)
}

// Cumulate returns the display after entering source into destination.
// Both must be finite numbers; the empty destination is the fresh display.
//
// Both values are rendered in canonical form before concatenation, so
// leading zeros and trailing fraction zeros of the destination are lost,
// except where the destination is kept verbatim: after the decimal point is
// pressed, and when its fraction is exactly the placeholder "0".
func (e *Engine) Cumulate(destination, source string, mode Mode) string {
	dst, ok := e.parse(destination)
	if !ok {
		return NotANumber
	}
	src, ok := e.parse(source)
	if !ok {
		return NotANumber
	}
	s := e.ctx.Format(src)

	switch {
	case mode == Start:
		return s
	case mode == StartDecimal:
		return destination + "." + s
	case mode == CumulDecimal && placeholderFraction(destination):
		return destination + s
	}
	if strings.TrimSpace(destination) == "" {
		return s
	}
	return e.ctx.Format(dst) + s
}

// placeholderFraction reports whether the text after the first decimal
// point of s is exactly "0".
func placeholderFraction(s string) bool {
	parts := strings.Split(s, ".")
	return len(parts) > 1 && parts[1] == "0"
}

// Cumulate enters source into destination with the default engine.
func Cumulate(destination, source string, mode Mode) string {
	return defaultEngine.Cumulate(destination, source, mode)
}
