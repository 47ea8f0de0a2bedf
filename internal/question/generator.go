// internal/question/generator.go
package question

import (
	"fmt"

	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/utils"
	pkgutils "math-battle/pkg/utils"
)

// Generator builds arithmetic questions procedurally.
// Generation is total: any kind and tier produce a valid question.
type Generator struct {
	rng *utils.PRNGService
	seq int
}

func NewGenerator(rng *utils.PRNGService) *Generator {
	return &Generator{rng: rng}
}

// Generate creates a single-operation question of the given kind.
// Unknown kinds fall back to addition; the tier is clamped to 1..3.
func (g *Generator) Generate(kind defs.OperationKind, tier int) Question {
	tier = clampTier(tier)
	switch kind {
	case defs.OpSub:
		return g.subtraction(tier)
	case defs.OpMul:
		return g.multiplication(tier)
	case defs.OpDiv:
		return g.division(tier)
	case defs.OpCompare:
		return g.comparison(tier)
	default:
		return g.addition(tier)
	}
}

// GenerateMixed creates a two-step question: a + b − c for the additive
// family and a × b ÷ c for the multiplicative one. Comparison has no mixed
// form and is generated as a plain comparison.
func (g *Generator) GenerateMixed(kind defs.OperationKind, tier int) Question {
	tier = clampTier(tier)
	switch {
	case kind.IsMultiplicative():
		return g.mixedMultiplicative(kind, tier)
	case kind == defs.OpCompare:
		return g.comparison(tier)
	default:
		if !kind.IsAdditive() {
			kind = defs.OpAdd
		}
		return g.mixedAdditive(kind, tier)
	}
}

// DistractorsFor picks up to count wrong answers near correct. Each candidate
// is correct ± 1..5, must be positive, at most maxRange and unused. After
// DistractorAttempts failed tries for one candidate it stops, so a tight range
// yields fewer distractors rather than wrong ones.
func (g *Generator) DistractorsFor(correct, count, maxRange int) []int {
	if count <= 0 {
		return []int{}
	}
	out := make([]int, 0, count)
	used := map[int]bool{correct: true}
	for len(out) < count {
		found := false
		for attempt := 0; attempt < config.DistractorAttempts; attempt++ {
			candidate := correct + g.rng.Sign()*g.rng.IntRange(1, config.DistractorMaxOffset)
			if candidate <= 0 || candidate > maxRange || used[candidate] {
				continue
			}
			used[candidate] = true
			out = append(out, candidate)
			found = true
			break
		}
		if !found {
			break
		}
	}
	return out
}

func (g *Generator) addition(tier int) Question {
	maxNumber := config.MaxAdditiveNumber(tier)
	a := g.rng.IntRange(1, maxNumber-1)
	b := g.rng.IntRange(1, maxNumber-a)
	return g.build(defs.OpAdd, tier, fmt.Sprintf("%d + %d = ?", a, b), a, b, 0, a+b, maxNumber, false)
}

func (g *Generator) subtraction(tier int) Question {
	maxNumber := config.MaxAdditiveNumber(tier)
	a := g.rng.IntRange(1, maxNumber)
	b := g.rng.IntRange(1, a)
	return g.build(defs.OpSub, tier, fmt.Sprintf("%d - %d = ?", a, b), a, b, 0, a-b, maxNumber, false)
}

func (g *Generator) multiplication(tier int) Question {
	maxFactor := config.MaxFactor(tier)
	a := g.rng.IntRange(config.MultiplicationMinFactor, maxFactor)
	b := g.rng.IntRange(config.MultiplicationMinFactor, maxFactor)
	return g.build(defs.OpMul, tier, fmt.Sprintf("%d × %d = ?", a, b), a, b, 0, a*b, maxFactor*maxFactor, false)
}

func (g *Generator) division(tier int) Question {
	divisor := g.rng.IntRange(config.DivisionMinFactor, config.DivisionMaxFactor)
	quotient := g.rng.IntRange(config.DivisionMinFactor, config.DivisionMaxFactor)
	dividend := divisor * quotient
	return g.build(defs.OpDiv, tier, fmt.Sprintf("%d ÷ %d = ?", dividend, divisor), dividend, divisor, 0, quotient, config.DivisionMaxFactor, false)
}

func (g *Generator) comparison(tier int) Question {
	a := g.rng.IntRange(config.CompareMin, config.CompareMax)
	b := g.rng.IntRange(config.CompareMin, config.CompareMax)
	relation := compareRelation(a, b)
	g.seq++
	return Question{
		ID:          fmt.Sprintf("gen-%s-%d-%04d", defs.OpCompare, tier, g.seq),
		Kind:        defs.OpCompare,
		Tier:        tier,
		Prompt:      fmt.Sprintf("%d ? %d", a, b),
		Operand1:    a,
		Operand2:    b,
		Answer:      relation,
		Distractors: otherRelations(relation),
	}
}

// a + b − c: a + b stays within maxNumber and c never exceeds a + b.
func (g *Generator) mixedAdditive(kind defs.OperationKind, tier int) Question {
	maxNumber := config.MaxAdditiveNumber(tier)
	a := g.rng.IntRange(1, maxNumber-1)
	b := g.rng.IntRange(1, maxNumber-a)
	c := g.rng.IntRange(1, a+b)
	prompt := fmt.Sprintf("%d + %d - %d = ?", a, b, c)
	return g.build(kind, tier, prompt, a, b, c, a+b-c, maxNumber, true)
}

// a × b ÷ c: c is drawn from the divisors of a × b so the result is exact.
func (g *Generator) mixedMultiplicative(kind defs.OperationKind, tier int) Question {
	maxFactor := config.MaxFactor(tier)
	a := g.rng.IntRange(config.MultiplicationMinFactor, maxFactor)
	b := g.rng.IntRange(config.MultiplicationMinFactor, maxFactor)
	product := a * b
	divisors := pkgutils.Divisors(product, config.DivisionMinFactor, config.DivisionMaxFactor)
	c := a // a always divides the product and is within 2..9
	if len(divisors) > 0 {
		c = divisors[g.rng.Intn(len(divisors))]
	}
	prompt := fmt.Sprintf("%d × %d ÷ %d = ?", a, b, c)
	return g.build(kind, tier, prompt, a, b, c, product/c, maxFactor*maxFactor, true)
}

func (g *Generator) build(kind defs.OperationKind, tier int, prompt string, a, b, c, answer, maxRange int, mixed bool) Question {
	g.seq++
	prefix := "gen"
	if mixed {
		prefix = "mix"
	}
	return Question{
		ID:          fmt.Sprintf("%s-%s-%d-%04d", prefix, kind, tier, g.seq),
		Kind:        kind,
		Tier:        tier,
		Prompt:      prompt,
		Operand1:    a,
		Operand2:    b,
		Operand3:    c,
		Answer:      answer,
		Distractors: g.DistractorsFor(answer, config.DistractorCount, maxRange),
		Mixed:       mixed,
	}
}

// DistractorRange returns the numeric range distractors are drawn from for
// a kind and tier.
func DistractorRange(kind defs.OperationKind, tier int) int {
	tier = clampTier(tier)
	switch kind {
	case defs.OpMul:
		f := config.MaxFactor(tier)
		return f * f
	case defs.OpDiv:
		return config.DivisionMaxFactor
	case defs.OpCompare:
		return CompareGreater
	default:
		return config.MaxAdditiveNumber(tier)
	}
}

func clampTier(tier int) int {
	if tier < 1 {
		return 1
	}
	if tier > config.MaxDifficultyTier {
		return config.MaxDifficultyTier
	}
	return tier
}
