// internal/app/options.go
package app

import (
	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/question"
)

// QuestionSource — откуда директор берёт вопросы. По умолчанию это
// question.Service, созданный на сессию.
type QuestionSource interface {
	Next() question.Question
	Options(q question.Question) []int
}

// Options — параметры одной боевой сессии.
type Options struct {
	CharacterID string
	Tier        int
	Kinds       []defs.OperationKind
	MixedChance float64
	Seed        int64 // 0 — сид от текущего времени
	TimeLimitMs int64 // 0 — без ограничения
	KillGoal    int   // 0 — без цели по убийствам
	Questions   QuestionSource
}

type Option func(*Options)

// DefaultOptions returns the archer on tier 1 with every operation kind.
func DefaultOptions() Options {
	return Options{
		CharacterID: "archer",
		Tier:        1,
		MixedChance: config.DefaultMixedChance,
		TimeLimitMs: config.DefaultSessionLimitMs,
	}
}

func WithCharacter(id string) Option { return func(o *Options) { o.CharacterID = id } }

// WithTier sets the difficulty tier, clamped to 1..MaxDifficultyTier.
func WithTier(tier int) Option {
	return func(o *Options) {
		switch {
		case tier < 1:
			tier = 1
		case tier > config.MaxDifficultyTier:
			tier = config.MaxDifficultyTier
		}
		o.Tier = tier
	}
}

func WithKinds(kinds ...defs.OperationKind) Option {
	return func(o *Options) { o.Kinds = append([]defs.OperationKind(nil), kinds...) }
}

func WithMixedChance(p float64) Option { return func(o *Options) { o.MixedChance = p } }

func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

func WithTimeLimit(ms int64) Option { return func(o *Options) { o.TimeLimitMs = ms } }

func WithKillGoal(kills int) Option { return func(o *Options) { o.KillGoal = kills } }

// WithQuestionSource replaces the generated question source. The same source
// is reused across restarts.
func WithQuestionSource(src QuestionSource) Option {
	return func(o *Options) { o.Questions = src }
}
