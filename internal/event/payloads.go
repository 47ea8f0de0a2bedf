// internal/event/payloads.go
package event

import (
	"math-battle/internal/component"
	"math-battle/internal/question"
	"math-battle/internal/types"
)

type SessionStartedData struct {
	Generation  uint64 `msgpack:"generation"`
	CharacterID string `msgpack:"character_id"`
	Tier        int    `msgpack:"tier"`
}

// SessionEndedData is the summary the result screen shows.
type SessionEndedData struct {
	Generation uint64                 `msgpack:"generation"`
	Outcome    component.Outcome      `msgpack:"outcome"`
	Stats      component.SessionStats `msgpack:"stats"`
}

type QuestionPresentedData struct {
	Question question.Question `msgpack:"question"`
	Options  []int             `msgpack:"options"`
}

type AnswerJudgedData struct {
	QuestionID string `msgpack:"question_id"`
	Answer     int    `msgpack:"answer"`
	Correct    bool   `msgpack:"correct"`
	ScoreDelta int    `msgpack:"score_delta"`
	Score      int    `msgpack:"score"`
	Combo      int    `msgpack:"combo"`
}

type WaveData struct {
	Wave    int   `msgpack:"wave"`
	FireAt  int64 `msgpack:"fire_at,omitempty"`
	Spawned int   `msgpack:"spawned,omitempty"`
}

type PoolGrownData struct {
	OldLen int `msgpack:"old_len"`
	NewLen int `msgpack:"new_len"`
}

// EnemyData describes one enemy for spawn/move/death notifications.
type EnemyData struct {
	ID        types.EntityID          `msgpack:"id"`
	MonsterID string                  `msgpack:"monster_id"`
	Position  component.Position      `msgpack:"position"`
	Phase     string                  `msgpack:"phase"`
	Animation component.AnimationHint `msgpack:"animation"`
	Health    int                     `msgpack:"health"`
	MaxHealth int                     `msgpack:"max_health"`
}

type EnemyDamagedData struct {
	Enemy  EnemyData `msgpack:"enemy"`
	Amount int       `msgpack:"amount"`
}

type EnemyAttackData struct {
	Enemy   EnemyData `msgpack:"enemy"`
	Damage  int       `msgpack:"damage"`
	HitAtMs int64     `msgpack:"hit_at_ms"`
}

type ProjectileData struct {
	Projectile component.Projectile `msgpack:"projectile"`
}

type PlayerDamagedData struct {
	Source    types.EntityID `msgpack:"source"`
	Amount    int            `msgpack:"amount"`
	Health    int            `msgpack:"health"`
	MaxHealth int            `msgpack:"max_health"`
}

// NewEnemyData snapshots an enemy slot.
func NewEnemyData(e *component.Enemy) EnemyData {
	d := EnemyData{
		ID:        e.ID(),
		MonsterID: e.MonsterID,
		Phase:     e.Phase.String(),
		Animation: e.Animation(),
	}
	if e.Combatant != nil {
		d.Position = e.Combatant.Position
		d.Health = e.Combatant.Health
		d.MaxHealth = e.Combatant.MaxHealth
	}
	return d
}
