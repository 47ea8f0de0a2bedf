// internal/system/movement.go
package system

import (
	"math"

	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/entity"
	"math-battle/internal/event"
)

// MovementSystem ведёт врагов по горизонтали к персонажу игрока.
type MovementSystem struct {
	pool            *entity.EnemyPool
	eventDispatcher *event.Dispatcher
	sinceNotifyMs   map[int]float64 // Слот → время с последнего EnemyMoved
}

func NewMovementSystem(pool *entity.EnemyPool, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		pool:            pool,
		eventDispatcher: eventDispatcher,
		sinceNotifyMs:   make(map[int]float64),
	}
}

// Update moves every approaching enemy toward target.X at its MoveSpeed and
// stops it once the horizontal distance is within AttackRange. While walking an
// enemy reports EnemyMoved at most once per config.MoveNotifyMs of logical
// time; reaching range switches it to InRange and always reports.
func (s *MovementSystem) Update(deltaMs float64, target component.Position) {
	seconds := deltaMs / 1000
	for _, e := range s.pool.Active() {
		switch e.Phase {
		case component.PhaseSpawned:
			e.Phase = component.PhaseApproaching
			s.sinceNotifyMs[e.Slot] = 0
		case component.PhaseApproaching:
		default:
			continue
		}
		c := e.Combatant
		if c == nil || !c.Alive() {
			continue
		}

		dx := target.X - c.Position.X
		gap := math.Abs(dx) - c.AttackRange
		if gap <= 0 {
			s.stop(e)
			continue
		}

		dir := 1.0
		if dx < 0 {
			dir = -1
		}
		e.Velocity = component.Velocity{X: dir * c.MoveSpeed}
		step := c.MoveSpeed * seconds
		if step >= gap {
			c.Position.X += dir * gap
			s.stop(e)
			continue
		}
		c.Position.X += dir * step

		s.sinceNotifyMs[e.Slot] += deltaMs
		if s.sinceNotifyMs[e.Slot] >= config.MoveNotifyMs {
			s.sinceNotifyMs[e.Slot] = math.Mod(s.sinceNotifyMs[e.Slot], config.MoveNotifyMs)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyMoved, Data: event.NewEnemyData(e)})
		}
	}
}

func (s *MovementSystem) stop(e *component.Enemy) {
	delete(s.sinceNotifyMs, e.Slot)
	e.Velocity = component.Velocity{}
	e.Phase = component.PhaseInRange
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyMoved, Data: event.NewEnemyData(e)})
}
