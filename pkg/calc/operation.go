package calc

import (
	"fmt"
	"strings"
)

// Operation is a binary arithmetic operation. The zero value is no
// operation.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = map[Operation]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

// operationAliases accepts the short names as well.
var operationAliases = map[string]Operation{
	"add":      OpAdd,
	"subtract": OpSubtract,
	"sub":      OpSubtract,
	"multiply": OpMultiply,
	"mul":      OpMultiply,
	"divide":   OpDivide,
	"div":      OpDivide,
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return ""
}

// MarshalText encodes the operation by name.
func (op Operation) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText decodes an operation name. Empty text is no operation.
func (op *Operation) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*op = 0
		return nil
	}
	parsed, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// ParseOperation resolves an operation by name or alias.
func ParseOperation(name string) (Operation, error) {
	if op, ok := operationAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// UnaryOperation is an operation on the display value alone.
type UnaryOperation int

const (
	OpNegate UnaryOperation = iota + 1
	OpPercent
)

func (op UnaryOperation) String() string {
	switch op {
	case OpNegate:
		return "negate"
	case OpPercent:
		return "percent"
	}
	return ""
}

// MarshalText encodes the operation by name.
func (op UnaryOperation) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// UnmarshalText decodes an operation name. Empty text is no operation.
func (op *UnaryOperation) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*op = 0
		return nil
	}
	parsed, err := ParseUnaryOperation(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}

// ParseUnaryOperation resolves a unary operation by name.
func ParseUnaryOperation(name string) (UnaryOperation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "negate", "neg":
		return OpNegate, nil
	case "percent", "pct":
		return OpPercent, nil
	}
	return 0, fmt.Errorf("unknown unary operation %q", name)
}
