// internal/question/service.go
package question

import (
	"math-battle/internal/defs"
	"math-battle/internal/utils"
)

// Service is the per-session question source: it chooses the operation,
// decides between authored and mixed questions and shuffles the choices.
type Service struct {
	gen         *Generator
	bank        *Bank
	rng         *utils.PRNGService
	tier        int
	kinds       []defs.OperationKind
	mixedChance float64
}

// NewService creates a question source. An empty kinds list means all kinds.
func NewService(file defs.QuestionBankFile, rng *utils.PRNGService, tier int, kinds []defs.OperationKind, mixedChance float64) *Service {
	gen := NewGenerator(rng)
	if len(kinds) == 0 {
		kinds = defs.AllOperations
	}
	return &Service{
		gen:         gen,
		bank:        NewBank(file, gen, rng),
		rng:         rng,
		tier:        clampTier(tier),
		kinds:       append([]defs.OperationKind(nil), kinds...),
		mixedChance: mixedChance,
	}
}

func (s *Service) Tier() int { return s.tier }

func (s *Service) Generator() *Generator { return s.gen }

func (s *Service) Bank() *Bank { return s.bank }

// Next returns the next question for the session.
func (s *Service) Next() Question {
	kind := s.kinds[s.rng.Intn(len(s.kinds))]
	if kind != defs.OpCompare && s.rng.Chance(s.mixedChance) {
		return s.gen.GenerateMixed(kind, s.tier)
	}
	return s.bank.Next(kind, s.tier)
}

// Options returns the answer set of q in display order.
func (s *Service) Options(q Question) []int {
	choices := q.Choices()
	s.rng.ShuffleInts(choices)
	return choices
}
