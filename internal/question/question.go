// internal/question/question.go
package question

import (
	"strconv"

	"math-battle/internal/defs"
)

// Ordinal answers of a comparison question. Начинаются с 1, как и все
// остальные варианты ответа.
const (
	CompareLess    = 1
	CompareEqual   = 2
	CompareGreater = 3
)

// Question is an immutable arithmetic question with its wrong choices.
// Operand3 is only set for mixed questions (a + b − c, a × b ÷ c).
type Question struct {
	ID          string             `msgpack:"id"`
	Kind        defs.OperationKind `msgpack:"kind"`
	Tier        int                `msgpack:"tier"`
	Prompt      string             `msgpack:"prompt"`
	Operand1    int                `msgpack:"operand1"`
	Operand2    int                `msgpack:"operand2"`
	Operand3    int                `msgpack:"operand3,omitempty"`
	Answer      int                `msgpack:"answer"`
	Distractors []int              `msgpack:"distractors"`
	Mixed       bool               `msgpack:"mixed"`
}

// IsCorrect reports whether answer matches the expected result.
func (q Question) IsCorrect(answer int) bool {
	return answer == q.Answer
}

// Choices returns the correct answer followed by the distractors, in a new slice.
func (q Question) Choices() []int {
	out := make([]int, 0, len(q.Distractors)+1)
	out = append(out, q.Answer)
	return append(out, q.Distractors...)
}

// RelationSymbol renders a comparison answer.
func RelationSymbol(relation int) string {
	switch relation {
	case CompareLess:
		return "<"
	case CompareEqual:
		return "="
	case CompareGreater:
		return ">"
	}
	return "?"
}

// ChoiceLabel renders an answer choice for display.
func (q Question) ChoiceLabel(choice int) string {
	if q.Kind == defs.OpCompare {
		return RelationSymbol(choice)
	}
	return strconv.Itoa(choice)
}

func compareRelation(a, b int) int {
	switch {
	case a < b:
		return CompareLess
	case a > b:
		return CompareGreater
	default:
		return CompareEqual
	}
}

func otherRelations(relation int) []int {
	out := make([]int, 0, 2)
	for _, r := range []int{CompareLess, CompareEqual, CompareGreater} {
		if r != relation {
			out = append(out, r)
		}
	}
	return out
}
