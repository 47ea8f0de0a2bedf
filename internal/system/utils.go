// internal/system/utils.go
package system

import (
	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/event"
	"math-battle/internal/timer"
)

// DamageResult описывает, чем закончилось срабатывание события урона.
type DamageResult struct {
	Applied      bool
	Killed       bool
	Enemy        *component.Enemy // Цель-враг, если урон пришёлся по врагу
	PlayerKilled bool
}

// ApplyDamage resolves a due damage event. The caller has already checked the
// generation; here the target must still be on the field and alive, and an
// enemy attack is dropped when its attacker died during the windup.
func (s *CombatSystem) ApplyDamage(ev timer.Event, nowMs int64, player *component.Player) DamageResult {
	switch {
	case ev.Target.IsEnemy():
		return s.damageEnemy(ev, nowMs)
	case ev.Target.IsPlayer():
		return s.damagePlayer(ev, player)
	}
	return DamageResult{}
}

func (s *CombatSystem) damageEnemy(ev timer.Event, nowMs int64) DamageResult {
	e := s.pool.Slot(ev.Target.Index)
	if e == nil || !s.pool.IsActive(e.Slot) || !e.Targetable() {
		return DamageResult{}
	}

	killed := e.Combatant.ApplyDamage(ev.Amount)
	e.Flash = component.DamageFlash{StartMs: nowMs, UntilMs: nowMs + config.DamageFlashMs}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.EnemyDamagedData{
		Enemy:  event.NewEnemyData(e),
		Amount: ev.Amount,
	}})
	if !killed {
		return DamageResult{Applied: true, Enemy: e}
	}

	e.Phase = component.PhaseDying
	e.PhaseUntilMs = nowMs + config.DeathExitMs
	e.Velocity = component.Velocity{}
	s.pool.Release(e.Slot)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.NewEnemyData(e)})
	return DamageResult{Applied: true, Killed: true, Enemy: e}
}

func (s *CombatSystem) damagePlayer(ev timer.Event, player *component.Player) DamageResult {
	if player == nil || !player.Combatant.Alive() {
		return DamageResult{}
	}
	if ev.Source.IsEnemy() {
		src := s.pool.Slot(ev.Source.Index)
		if src == nil || !src.Targetable() {
			return DamageResult{}
		}
	}

	killed := player.Combatant.ApplyDamage(ev.Amount)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{
		Source:    ev.Source,
		Amount:    ev.Amount,
		Health:    player.Combatant.Health,
		MaxHealth: player.Combatant.MaxHealth,
	}})
	return DamageResult{Applied: true, PlayerKilled: killed}
}

// RecycleEnemy returns a dying slot to the pool once its exit is over.
func (s *CombatSystem) RecycleEnemy(ev timer.Event) bool {
	e := s.pool.Slot(ev.Target.Index)
	if e == nil || e.Phase != component.PhaseDying {
		return false
	}
	data := event.NewEnemyData(e)
	e.Reset()
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyRecycled, Data: data})
	return true
}
