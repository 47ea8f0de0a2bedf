package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/utils"
)

func testBank(records ...defs.QuestionRecord) *Bank {
	rng := utils.NewPRNGService(7)
	return NewBank(defs.QuestionBankFile{Questions: records}, NewGenerator(rng), rng)
}

func TestBank_IndexesRecords(t *testing.T) {
	b := testBank(
		defs.QuestionRecord{ID: "a", Type: "add", Difficulty: 1, Num1: 3, Num2: 4, CorrectAnswer: 7, WrongAnswers: []int{6, 8, 9}},
		defs.QuestionRecord{ID: "b", Type: "addition", Difficulty: 1, Num1: 1, Num2: 1, CorrectAnswer: 2, WrongAnswers: []int{3}},
		defs.QuestionRecord{ID: "c", Type: "mul", Difficulty: 2, Num1: 6, Num2: 7, CorrectAnswer: 42, WrongAnswers: []int{36, 48}},
	)
	assert.Equal(t, 2, b.Count(defs.OpAdd, 1))
	assert.Equal(t, 1, b.Count(defs.OpMul, 2))
	assert.Zero(t, b.Count(defs.OpDiv, 2))
}

func TestBank_SkipsBrokenRecords(t *testing.T) {
	b := testBank(
		defs.QuestionRecord{ID: "wrong-math", Type: "add", Difficulty: 1, Num1: 3, Num2: 4, CorrectAnswer: 8},
		defs.QuestionRecord{ID: "bad-type", Type: "pow", Difficulty: 1, Num1: 2, Num2: 3, CorrectAnswer: 8},
		defs.QuestionRecord{ID: "negative", Type: "sub", Difficulty: 1, Num1: 3, Num2: 4, CorrectAnswer: -1},
		defs.QuestionRecord{ID: "inexact", Type: "div", Difficulty: 2, Num1: 7, Num2: 2, CorrectAnswer: 3},
	)
	for _, kind := range defs.AllOperations {
		assert.Zero(t, b.Count(kind, 1))
		assert.Zero(t, b.Count(kind, 2))
	}
}

func TestBank_SanitizesWrongAnswers(t *testing.T) {
	b := testBank(defs.QuestionRecord{
		ID: "dup", Type: "add", Difficulty: 1, Num1: 5, Num2: 5, CorrectAnswer: 10,
		WrongAnswers: []int{9, 10, 9, -2, 0, 8, 7, 6},
	})
	qs := b.Questions(defs.OpAdd, 1)
	require.Len(t, qs, 1)
	assert.Equal(t, []int{9, 8, 7}, qs[0].Distractors)
}

func TestBank_TopsUpMissingWrongAnswers(t *testing.T) {
	b := testBank(defs.QuestionRecord{ID: "sparse", Type: "add", Difficulty: 2, Num1: 6, Num2: 6, CorrectAnswer: 12})
	qs := b.Questions(defs.OpAdd, 2)
	require.Len(t, qs, 1)
	assert.Len(t, qs[0].Distractors, config.DistractorCount)
	assert.NotContains(t, qs[0].Distractors, 12)
}

func TestBank_CompareRecords(t *testing.T) {
	b := testBank(
		defs.QuestionRecord{ID: "lt", Type: "compare", Difficulty: 1, Num1: 12, Num2: 21, CorrectAnswer: CompareLess},
		defs.QuestionRecord{ID: "old-less", Type: "compare", Difficulty: 1, Num1: 12, Num2: 21, CorrectAnswer: 0},
	)
	qs := b.Questions(defs.OpCompare, 1)
	require.Len(t, qs, 1, "0 is not a relation")
	assert.Equal(t, "lt", qs[0].ID)
	assert.ElementsMatch(t, []int{CompareEqual, CompareGreater}, qs[0].Distractors)

	b.Ensure(defs.OpCompare, 2)
	for _, q := range b.Questions(defs.OpCompare, 2) {
		requireValidDistractors(t, q, CompareGreater)
	}
}

func TestBank_EnsureBackfills(t *testing.T) {
	b := testBank(defs.QuestionRecord{ID: "one", Type: "div", Difficulty: 2, Num1: 56, Num2: 8, CorrectAnswer: 7, WrongAnswers: []int{6, 8, 9}})
	require.Equal(t, config.MinBankQuestions, b.Ensure(defs.OpDiv, 2))

	qs := b.Questions(defs.OpDiv, 2)
	assert.Equal(t, "one", qs[0].ID, "authored questions are kept first")
	for _, q := range qs {
		assert.Equal(t, defs.OpDiv, q.Kind)
		assert.Equal(t, q.Operand1/q.Operand2, q.Answer)
	}

	assert.Equal(t, config.MinBankQuestions, b.Ensure(defs.OpCompare, 3), "empty group is fully generated")
}

func TestBank_NextCyclesWithoutImmediateRepeat(t *testing.T) {
	b := testBank()
	seen := map[string]int{}
	prev := ""
	for i := 0; i < config.MinBankQuestions*5; i++ {
		q := b.Next(defs.OpMul, 2)
		require.NotEqual(t, prev, q.ID, "question repeated back to back")
		prev = q.ID
		seen[q.ID]++
	}
	assert.Len(t, seen, config.MinBankQuestions)
	for id, n := range seen {
		assert.Equal(t, 5, n, id)
	}
}

func TestService_Next(t *testing.T) {
	rng := utils.NewPRNGService(99)
	s := NewService(defs.QuestionBankFile{}, rng, 2, []defs.OperationKind{defs.OpAdd, defs.OpSub}, 0.5)
	mixed := 0
	for i := 0; i < 300; i++ {
		q := s.Next()
		require.True(t, q.Kind.IsAdditive())
		require.Equal(t, 2, q.Tier)
		if q.Mixed {
			mixed++
		}
		opts := s.Options(q)
		require.ElementsMatch(t, q.Choices(), opts)
	}
	assert.Greater(t, mixed, 50)
	assert.Less(t, mixed, 250)
}

func TestService_NoMixedWhenDisabled(t *testing.T) {
	s := NewService(defs.QuestionBankFile{}, utils.NewPRNGService(3), 5, nil, 0)
	assert.Equal(t, config.MaxDifficultyTier, s.Tier())
	for i := 0; i < 100; i++ {
		assert.False(t, s.Next().Mixed)
	}
}
