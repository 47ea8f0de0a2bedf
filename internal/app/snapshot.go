// internal/app/snapshot.go
package app

import (
	"math-battle/internal/component"
	"math-battle/internal/event"
	"math-battle/internal/question"
	"math-battle/internal/types"
)

// Snapshot — копия состояния сессии для отрисовки. Рендереры читают только её.
type Snapshot struct {
	NowMs       int64
	Phase       component.SessionPhase
	Outcome     component.Outcome
	Stats       component.SessionStats
	Tier        int
	Question    question.Question
	Options     []int
	Player      PlayerView
	Enemies     []event.EnemyData // Включая умирающих
	Projectiles []ProjectileView
	PoolLen     int
	ActiveCount int
}

type PlayerView struct {
	CharacterID string
	Position    component.Position
	Health      int
	MaxHealth   int
}

type ProjectileView struct {
	Target   types.EntityID
	Position component.Position
	Launched bool
}

// Snapshot copies the state a renderer needs at the current logical time.
func (d *Director) Snapshot() Snapshot {
	s := Snapshot{
		NowMs:    d.nowMs,
		Phase:    d.phase,
		Outcome:  d.outcome,
		Stats:    d.stats,
		Tier:     d.opts.Tier,
		Question: d.current,
		Options:  d.Options(),
	}
	if d.player != nil {
		s.Player = PlayerView{
			CharacterID: d.player.CharacterID,
			Position:    d.player.Combatant.Position,
			Health:      d.player.Combatant.Health,
			MaxHealth:   d.player.Combatant.MaxHealth,
		}
	}
	if d.pool != nil {
		s.PoolLen = d.pool.Len()
		s.ActiveCount = d.pool.ActiveCount()
		d.pool.Each(func(e *component.Enemy) {
			data := event.NewEnemyData(e)
			data.Animation = e.AnimationAt(d.nowMs)
			s.Enemies = append(s.Enemies, data)
		})
	}
	for _, p := range d.projectiles {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			Target:   p.Target,
			Position: p.PositionAt(d.nowMs),
			Launched: d.nowMs > p.LaunchAtMs,
		})
	}
	return s
}
