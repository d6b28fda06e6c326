package domain

import (
	"strconv"

	"github.com/rpgo/calculator/pkg/calc"
)

// Category classifies what a button does when pressed.
type Category string

const (
	CategoryDigit  Category = "Digit"
	CategoryBinary Category = "Binary"
	CategoryUnary  Category = "Unary"
	CategoryEqual  Category = "Equal"
	CategoryDot    Category = "Dot"
	CategoryReset  Category = "Reset"
)

// Priority orders binary operators when an expression is evaluated.
type Priority string

const (
	PriorityNone Priority = ""
	PriorityLow  Priority = "LOW"
	PriorityHigh Priority = "HIGH"
)

// Rank returns a comparable weight for the priority.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Button describes a calculator key
type Button struct {
	Value           string              `json:"value" yaml:"value"`
	Label           string              `json:"label" yaml:"label"`
	NonInitialLabel string              `json:"non_initial_label,omitempty" yaml:"non_initial_label,omitempty"`
	Shortcut        string              `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
	Category        Category            `json:"type" yaml:"type"`
	Span            int                 `json:"span,omitempty" yaml:"span,omitempty"`
	Binary          calc.Operation      `json:"binary,omitempty" yaml:"binary,omitempty"`
	Unary           calc.UnaryOperation `json:"unary,omitempty" yaml:"unary,omitempty"`
	Priority        Priority            `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Apply runs the button's bound operation. Unary buttons ignore b. The
// second result is false when the button has no operation.
func (b Button) Apply(e *calc.Engine, x, y string) (string, bool) {
	switch {
	case b.Category == CategoryBinary && b.Binary != 0:
		return e.Apply(x, b.Binary, y), true
	case b.Category == CategoryUnary && b.Unary != 0:
		return e.ApplyUnary(x, b.Unary), true
	}
	return "", false
}

// digitOrder is the keypad layout, top row first.
var digitOrder = []int{7, 8, 9, 4, 5, 6, 1, 2, 3, 0}

func digits() []Button {
	out := make([]Button, 0, len(digitOrder))
	for _, d := range digitOrder {
		s := strconv.Itoa(d)
		span := 1
		if d == 0 {
			span = 2
		}
		out = append(out, Button{Value: s, Label: s, Shortcut: s, Category: CategoryDigit, Span: span})
	}
	return out
}

var buttons = append([]Button{
	{Value: "divide", Label: "÷", Shortcut: "/", Category: CategoryBinary, Binary: calc.OpDivide, Priority: PriorityHigh},
	{Value: "multiply", Label: "×", Shortcut: "*", Category: CategoryBinary, Binary: calc.OpMultiply, Priority: PriorityHigh},
	{Value: "subtract", Label: "−", Shortcut: "-", Category: CategoryBinary, Binary: calc.OpSubtract, Priority: PriorityLow},
	{Value: "add", Label: "+", Shortcut: "+", Category: CategoryBinary, Binary: calc.OpAdd, Priority: PriorityLow},
	{Value: "negate", Label: "+/-", Category: CategoryUnary, Unary: calc.OpNegate},
	{Value: "percent", Label: "%", Shortcut: "%", Category: CategoryUnary, Unary: calc.OpPercent},
	{Value: "equal", Label: "=", Shortcut: "Enter", Category: CategoryEqual},
	{Value: "dot", Label: ",", Category: CategoryDot},
	{Value: "reset", Label: "AC", NonInitialLabel: "C", Shortcut: "Escape", Category: CategoryReset},
}, digits()...)

// Buttons returns a copy of the button table in keypad order.
func Buttons() []Button {
	return append([]Button(nil), buttons...)
}

// AvailableShortcuts lists the keyboard shortcuts of all buttons that have one.
func AvailableShortcuts() []string {
	out := make([]string, 0, len(buttons))
	for _, b := range buttons {
		if b.Shortcut != "" {
			out = append(out, b.Shortcut)
		}
	}
	return out
}

// ByValue returns the first button with the given value.
func ByValue(value string) (Button, bool) {
	for _, b := range buttons {
		if b.Value == value {
			return b, true
		}
	}
	return Button{}, false
}

// ByShortcut returns the first button bound to the given shortcut.
func ByShortcut(shortcut string) (Button, bool) {
	if shortcut == "" {
		return Button{}, false
	}
	for _, b := range buttons {
		if b.Shortcut == shortcut {
			return b, true
		}
	}
	return Button{}, false
}
