// internal/system/combat.go
package system

import (
	"math"

	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/entity"
	"math-battle/internal/event"
	"math-battle/internal/timer"
	"math-battle/internal/types"
)

// CombatSystem управляет атаками врагов и атаками игрока по правильному ответу.
// Урон никогда не наносится сразу: он планируется в очередь логических часов.
type CombatSystem struct {
	pool            *entity.EnemyPool
	queue           *timer.Queue
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(pool *entity.EnemyPool, queue *timer.Queue, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{pool: pool, queue: queue, eventDispatcher: eventDispatcher}
}

// Update probes every in-range enemy. A successful TryAttack puts the enemy in
// its attack pose and schedules the player damage after the windup.
func (s *CombatSystem) Update(nowMs int64, player *component.Player, generation uint64) {
	for _, e := range s.pool.Active() {
		if e.Phase == component.PhaseAttacking && nowMs >= e.PhaseUntilMs {
			e.Phase = component.PhaseInRange
		}
		if e.Phase != component.PhaseInRange || !e.Targetable() {
			continue
		}
		if !player.Combatant.Alive() {
			continue
		}
		if !e.Combatant.TryAttack(nowMs) {
			continue
		}

		hitAt := nowMs + config.EnemyWindupMs
		e.Phase = component.PhaseAttacking
		e.PhaseUntilMs = hitAt
		s.queue.Schedule(timer.Event{
			Kind:       timer.KindDamage,
			Target:     types.PlayerID(),
			Source:     e.ID(),
			Amount:     e.Combatant.Damage,
			FireAt:     hitAt,
			Generation: generation,
		})
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyAttacked, Data: event.EnemyAttackData{
			Enemy:   event.NewEnemyData(e),
			Damage:  e.Combatant.Damage,
			HitAtMs: hitAt,
		}})
	}
}

// NearestTarget returns the living enemy closest to from, or nil.
func (s *CombatSystem) NearestTarget(from component.Position) *component.Enemy {
	var nearest *component.Enemy
	minDistance := math.MaxFloat64
	for _, e := range s.pool.Active() {
		if !e.Targetable() {
			continue
		}
		if d := from.DistanceTo(e.Combatant.Position); d < minDistance {
			minDistance = d
			nearest = e
		}
	}
	return nearest
}

// AnswerAttackDamage — урон атаки игрока: floor(базовый урон уровня × сила / 100).
func AnswerAttackDamage(tier, powerPercent int) int {
	return config.AnswerDamage(tier) * powerPercent / 100
}

// LaunchAttack plans the player's projectile at the nearest enemy and
// schedules its damage. It reports false when there is nothing to shoot at.
func (s *CombatSystem) LaunchAttack(nowMs int64, player *component.Player, tier int, generation uint64) (component.Projectile, bool) {
	from := player.Combatant.Position
	target := s.NearestTarget(from)
	if target == nil {
		return component.Projectile{}, false
	}

	d := PlanDelivery(from, target.Combatant.Position, target.Velocity, player.ProjectileSpeed, player.AttackDelayMs)
	proj := component.Projectile{
		Target:     target.ID(),
		From:       from,
		AimPoint:   d.AimPoint,
		Damage:     AnswerAttackDamage(tier, player.AttackPowerPercent),
		LaunchAtMs: nowMs + int64(math.Round(player.AttackDelayMs)),
		ArriveAtMs: nowMs + int64(math.Ceil(d.TotalDeliveryMs)),
	}
	s.queue.Schedule(timer.Event{
		Kind:       timer.KindDamage,
		Target:     proj.Target,
		Source:     types.PlayerID(),
		Amount:     proj.Damage,
		FireAt:     proj.ArriveAtMs,
		Generation: generation,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileLaunched, Data: event.ProjectileData{Projectile: proj}})
	return proj, true
}
