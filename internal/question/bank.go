// internal/question/bank.go
package question

import (
	"fmt"
	"log"

	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/utils"
)

type bankKey struct {
	kind defs.OperationKind
	tier int
}

// deck раздаёт вопросы в перемешанном порядке, не повторяя последний
// вопрос на стыке колод.
type deck struct {
	questions []Question
	order     []int
	pos       int
	last      int
}

// Bank holds authored questions grouped by (kind, tier) and backfills
// procedurally when a group is too sparse.
type Bank struct {
	gen   *Generator
	rng   *utils.PRNGService
	decks map[bankKey]*deck
}

// NewBank indexes the records of a question bank file. Records with an
// unknown type or inconsistent arithmetic are skipped.
func NewBank(file defs.QuestionBankFile, gen *Generator, rng *utils.PRNGService) *Bank {
	b := &Bank{gen: gen, rng: rng, decks: make(map[bankKey]*deck)}
	skipped := 0
	for _, rec := range file.Questions {
		q, err := b.fromRecord(rec)
		if err != nil {
			skipped++
			log.Printf("question bank: skipping %q: %v", rec.ID, err)
			continue
		}
		b.deckFor(q.Kind, q.Tier).add(q)
	}
	if skipped > 0 {
		log.Printf("question bank: %d of %d records skipped", skipped, len(file.Questions))
	}
	return b
}

// Count returns how many questions are available for a kind and tier.
func (b *Bank) Count(kind defs.OperationKind, tier int) int {
	d, ok := b.decks[bankKey{kind, clampTier(tier)}]
	if !ok {
		return 0
	}
	return len(d.questions)
}

// Questions returns a copy of the questions available for a kind and tier.
func (b *Bank) Questions(kind defs.OperationKind, tier int) []Question {
	d, ok := b.decks[bankKey{kind, clampTier(tier)}]
	if !ok {
		return nil
	}
	return append([]Question(nil), d.questions...)
}

// Ensure backfills the group with generated questions until it holds at
// least MinBankQuestions entries, and returns the resulting count.
func (b *Bank) Ensure(kind defs.OperationKind, tier int) int {
	tier = clampTier(tier)
	d := b.deckFor(kind, tier)
	for len(d.questions) < config.MinBankQuestions {
		d.add(b.gen.Generate(kind, tier))
	}
	return len(d.questions)
}

// Next deals the next question of a group, backfilling it first if needed.
func (b *Bank) Next(kind defs.OperationKind, tier int) Question {
	b.Ensure(kind, tier)
	d := b.deckFor(kind, clampTier(tier))
	if d.pos >= len(d.order) {
		d.reshuffle(b.rng)
	}
	idx := d.order[d.pos]
	d.pos++
	d.last = idx
	return d.questions[idx]
}

func (b *Bank) deckFor(kind defs.OperationKind, tier int) *deck {
	key := bankKey{kind, tier}
	d, ok := b.decks[key]
	if !ok {
		d = &deck{last: -1}
		b.decks[key] = d
	}
	return d
}

func (b *Bank) fromRecord(rec defs.QuestionRecord) (Question, error) {
	kind, ok := defs.ParseOperationKind(rec.Type)
	if !ok {
		return Question{}, fmt.Errorf("unknown type %q", rec.Type)
	}
	if !recordConsistent(kind, rec) {
		return Question{}, fmt.Errorf("answer %d does not match %d %s %d", rec.CorrectAnswer, rec.Num1, kind, rec.Num2)
	}
	tier := clampTier(rec.Difficulty)

	prompt := rec.QuestionText
	if prompt == "" {
		prompt = fmt.Sprintf("%d %s %d = ?", rec.Num1, operatorSymbol(kind), rec.Num2)
	}

	var distractors []int
	if kind == defs.OpCompare {
		distractors = otherRelations(rec.CorrectAnswer)
	} else {
		maxRange := DistractorRange(kind, tier)
		seen := map[int]bool{rec.CorrectAnswer: true}
		for _, w := range rec.WrongAnswers {
			if w <= 0 || seen[w] || len(distractors) == config.DistractorCount {
				continue
			}
			seen[w] = true
			distractors = append(distractors, w)
			if w > maxRange {
				maxRange = w
			}
		}
		if missing := config.DistractorCount - len(distractors); missing > 0 {
			for _, extra := range b.gen.DistractorsFor(rec.CorrectAnswer, config.DistractorCount, maxRange) {
				if len(distractors) == config.DistractorCount {
					break
				}
				if !seen[extra] {
					seen[extra] = true
					distractors = append(distractors, extra)
				}
			}
		}
	}

	id := rec.ID
	if id == "" {
		id = fmt.Sprintf("bank-%s-%d-%d-%d", kind, tier, rec.Num1, rec.Num2)
	}
	return Question{
		ID:          id,
		Kind:        kind,
		Tier:        tier,
		Prompt:      prompt,
		Operand1:    rec.Num1,
		Operand2:    rec.Num2,
		Answer:      rec.CorrectAnswer,
		Distractors: distractors,
	}, nil
}

func recordConsistent(kind defs.OperationKind, rec defs.QuestionRecord) bool {
	a, b, want := rec.Num1, rec.Num2, rec.CorrectAnswer
	switch kind {
	case defs.OpAdd:
		return a+b == want
	case defs.OpSub:
		return a >= b && a-b == want
	case defs.OpMul:
		return a*b == want
	case defs.OpDiv:
		return b != 0 && a%b == 0 && a/b == want
	case defs.OpCompare:
		return compareRelation(a, b) == want
	}
	return false
}

func operatorSymbol(kind defs.OperationKind) string {
	switch kind {
	case defs.OpSub:
		return "-"
	case defs.OpMul:
		return "×"
	case defs.OpDiv:
		return "÷"
	case defs.OpCompare:
		return "?"
	default:
		return "+"
	}
}

func (d *deck) add(q Question) {
	// В раздачу вопрос попадёт при следующем перемешивании.
	d.questions = append(d.questions, q)
}

func (d *deck) reshuffle(rng *utils.PRNGService) {
	d.order = d.order[:0]
	for i := range d.questions {
		d.order = append(d.order, i)
	}
	rng.ShuffleInts(d.order)
	if len(d.order) > 1 && d.order[0] == d.last {
		swap := 1 + rng.Intn(len(d.order)-1)
		d.order[0], d.order[swap] = d.order[swap], d.order[0]
	}
	d.pos = 0
}
