package component

import "math-battle/internal/config"

// SessionPhase — состояние боевой сессии
type SessionPhase int

const (
	SessionIdle SessionPhase = iota
	SessionRunning
	SessionEnded
)

// Outcome — итог сессии
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// SessionStats — счётчики, которые получает слой интерфейса.
type SessionStats struct {
	Correct   int   `msgpack:"correct"`
	Wrong     int   `msgpack:"wrong"`
	Kills     int   `msgpack:"kills"`
	Score     int   `msgpack:"score"`
	Combo     int   `msgpack:"combo"`
	BestCombo int   `msgpack:"best_combo"`
	Waves     int   `msgpack:"waves"`
	ElapsedMs int64 `msgpack:"elapsed_ms"`
}

// RecordCorrect counts a correct answer and returns the score it earned.
func (s *SessionStats) RecordCorrect() int {
	s.Correct++
	s.Combo++
	if s.Combo > s.BestCombo {
		s.BestCombo = s.Combo
	}
	bonus := s.Combo - 1
	if bonus > config.ComboBonusCap {
		bonus = config.ComboBonusCap
	}
	delta := config.ScorePerCorrect + bonus*config.ComboBonusStep
	s.Score += delta
	return delta
}

// RecordWrong counts a wrong answer; it only resets the combo.
func (s *SessionStats) RecordWrong() {
	s.Wrong++
	s.Combo = 0
}
