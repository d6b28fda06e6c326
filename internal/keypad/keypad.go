// Package keypad drives the calculator from button presses. It holds the
// display string between presses and evaluates pending binary operators by
// priority when an operator or equal is pressed.
package keypad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/calculator/internal/domain"
	"github.com/rpgo/calculator/pkg/calc"
)

// ErrUnknownKey is returned when a key does not resolve to a button.
var ErrUnknownKey = errors.New("unknown key")

// Step records the display after a single press.
type Step struct {
	Key     string `json:"key" yaml:"key"`
	Display string `json:"display" yaml:"display"`
}

type pending struct {
	operand string
	button  domain.Button
}

// Keypad is the state of one calculator. It is not safe for concurrent use.
type Keypad struct {
	engine *calc.Engine
	logger calc.Logger

	display  string
	entering bool // a number is being typed
	dot      bool // dot pressed, no fraction digit yet
	fraction bool // fraction digits are being typed
	operator bool // the last press was a binary operator
	stack    []pending
	steps    []Step
}

// New creates a keypad showing "0".
func New(engine *calc.Engine, logger calc.Logger) *Keypad {
	if engine == nil {
		engine = calc.Default()
	}
	if logger == nil {
		logger = calc.NopLogger{}
	}
	return &Keypad{engine: engine, logger: logger, display: "0"}
}

// Display returns the text shown on the calculator.
func (k *Keypad) Display() string {
	if k.dot {
		return k.display + "."
	}
	return k.display
}

// Steps returns the presses recorded since the keypad was created.
func (k *Keypad) Steps() []Step {
	return append([]Step(nil), k.steps...)
}

// ResetLabel returns the label of the reset key for the current state.
func (k *Keypad) ResetLabel() string {
	reset, _ := domain.ByValue("reset")
	if k.display != "0" || k.entering || len(k.stack) > 0 {
		return reset.NonInitialLabel
	}
	return reset.Label
}

// Press applies a single button.
func (k *Keypad) Press(b domain.Button) {
	switch b.Category {
	case domain.CategoryDigit:
		k.digit(b.Value)
	case domain.CategoryDot:
		k.pressDot()
	case domain.CategoryBinary:
		k.binary(b)
	case domain.CategoryUnary:
		k.commit()
		if r, ok := b.Apply(k.engine, k.display, ""); ok {
			k.display = r
		}
	case domain.CategoryEqual:
		k.commit()
		k.fold(0)
	case domain.CategoryReset:
		k.reset()
	default:
		k.logger.Warnf("button %q has no behavior", b.Value)
	}
	k.operator = b.Category == domain.CategoryBinary
	k.steps = append(k.steps, Step{Key: b.Value, Display: k.Display()})
	k.logger.Debugf("pressed %s, display %q", b.Value, k.Display())
}

func (k *Keypad) digit(d string) {
	switch {
	case k.dot:
		k.display = k.engine.Cumulate(k.display, d, calc.StartDecimal)
		k.fraction = true
	case !k.entering || (k.display == "0" && !k.fraction):
		k.display = k.engine.Cumulate(k.display, d, calc.Start)
	case k.fraction:
		k.display = k.engine.Cumulate(k.display, d, calc.CumulDecimal)
	default:
		k.display = k.engine.Cumulate(k.display, d, calc.Cumul)
	}
	k.entering = true
	k.dot = false
}

func (k *Keypad) pressDot() {
	if !k.entering {
		k.display = "0"
		k.entering = true
	}
	if k.fraction || k.dot {
		return
	}
	k.dot = true
}

func (k *Keypad) binary(b domain.Button) {
	if k.operator && len(k.stack) > 0 {
		// a second operator in a row replaces the first
		k.stack = k.stack[:len(k.stack)-1]
	}
	k.commit()
	k.fold(b.Priority.Rank())
	k.stack = append(k.stack, pending{operand: k.display, button: b})
}

// commit ends the current entry. A dangling decimal point is dropped.
func (k *Keypad) commit() {
	k.entering = false
	k.dot = false
	k.fraction = false
}

// fold evaluates pending operators whose priority is at least rank, using
// the display as the right operand.
func (k *Keypad) fold(rank int) {
	for len(k.stack) > 0 {
		top := k.stack[len(k.stack)-1]
		if top.button.Priority.Rank() < rank {
			return
		}
		k.stack = k.stack[:len(k.stack)-1]
		r, _ := top.button.Apply(k.engine, top.operand, k.display)
		k.display = r
	}
}

func (k *Keypad) reset() {
	k.display = "0"
	k.stack = nil
	k.commit()
}

// PressShortcut presses the button bound to a keyboard shortcut.
func (k *Keypad) PressShortcut(shortcut string) error {
	b, ok := domain.ByShortcut(shortcut)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, shortcut)
	}
	k.Press(b)
	return nil
}

// PressKeys presses a sequence of keys. Each token is either a whole
// shortcut or button value (e.g. "Enter", "negate"), or a run of single
// character keys such as "12.5*2=". "." and "," press the decimal point and
// "=" presses equal.
func (k *Keypad) PressKeys(tokens ...string) error {
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if b, ok := resolve(tok); ok {
			k.Press(b)
			continue
		}
		for _, r := range tok {
			b, ok := resolve(string(r))
			if !ok {
				return fmt.Errorf("%w: %q in %q", ErrUnknownKey, r, tok)
			}
			k.Press(b)
		}
	}
	return nil
}

func resolve(key string) (domain.Button, bool) {
	switch key {
	case ".", ",":
		return domain.ByValue("dot")
	case "=":
		return domain.ByValue("equal")
	}
	if b, ok := domain.ByShortcut(key); ok {
		return b, true
	}
	return domain.ByValue(key)
}
