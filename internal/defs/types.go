// internal/defs/types.go
package defs

import "strings"

// OperationKind defines the arithmetic operation a question exercises.
type OperationKind string

const (
	OpAdd     OperationKind = "add"
	OpSub     OperationKind = "sub"
	OpMul     OperationKind = "mul"
	OpDiv     OperationKind = "div"
	OpCompare OperationKind = "compare"
)

// AllOperations lists every operation kind in a stable order.
var AllOperations = []OperationKind{OpAdd, OpSub, OpMul, OpDiv, OpCompare}

// ParseOperationKind accepts the kind names used by question bank files,
// including the symbolic and long forms ("+", "addition").
func ParseOperationKind(s string) (OperationKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "addition", "+":
		return OpAdd, true
	case "sub", "subtraction", "-":
		return OpSub, true
	case "mul", "multiplication", "*", "x", "×":
		return OpMul, true
	case "div", "division", "/", "÷":
		return OpDiv, true
	case "compare", "comparison", "<>":
		return OpCompare, true
	}
	return "", false
}

// IsAdditive reports whether the kind belongs to the add/sub family.
func (k OperationKind) IsAdditive() bool { return k == OpAdd || k == OpSub }

// IsMultiplicative reports whether the kind belongs to the mul/div family.
func (k OperationKind) IsMultiplicative() bool { return k == OpMul || k == OpDiv }
