package component

import "math-battle/internal/types"

// EnemyPhase — этап жизненного цикла слота врага.
// Pooled → Spawned → Approaching → InRange ⇄ Attacking → Dying → Pooled.
type EnemyPhase int

const (
	PhasePooled EnemyPhase = iota
	PhaseSpawned
	PhaseApproaching
	PhaseInRange
	PhaseAttacking
	PhaseDying
)

func (p EnemyPhase) String() string {
	switch p {
	case PhasePooled:
		return "pooled"
	case PhaseSpawned:
		return "spawned"
	case PhaseApproaching:
		return "approaching"
	case PhaseInRange:
		return "in_range"
	case PhaseAttacking:
		return "attacking"
	case PhaseDying:
		return "dying"
	}
	return "unknown"
}

// AnimationHint tells a renderer which clip fits the current phase.
type AnimationHint string

const (
	AnimIdle   AnimationHint = "idle"
	AnimWalk   AnimationHint = "walk"
	AnimAttack AnimationHint = "attack"
	AnimHurt   AnimationHint = "hurt"
	AnimDie    AnimationHint = "die"
)

// Enemy представляет слот пула врагов. Слоты переиспользуются и никогда
// не освобождаются; Combatant заменяется при каждом появлении.
type Enemy struct {
	Slot         int
	Phase        EnemyPhase
	MonsterID    string
	Wave         int
	Combatant    *Combatant
	Velocity     Velocity
	PhaseUntilMs int64 // Конец позы атаки или анимации смерти
	Flash        DamageFlash
}

func (e *Enemy) ID() types.EntityID { return types.EnemyID(e.Slot) }

// Targetable reports whether the enemy is on the field and alive.
func (e *Enemy) Targetable() bool {
	switch e.Phase {
	case PhaseSpawned, PhaseApproaching, PhaseInRange, PhaseAttacking:
		return e.Combatant != nil && e.Combatant.Alive()
	}
	return false
}

// Animation returns the renderer hint for the current phase.
func (e *Enemy) Animation() AnimationHint {
	switch e.Phase {
	case PhaseApproaching:
		return AnimWalk
	case PhaseAttacking:
		return AnimAttack
	case PhaseDying:
		return AnimDie
	default:
		return AnimIdle
	}
}

// AnimationAt is Animation with the hurt flash applied at nowMs.
func (e *Enemy) AnimationAt(nowMs int64) AnimationHint {
	if e.Phase != PhaseDying && e.Flash.Active(nowMs) {
		return AnimHurt
	}
	return e.Animation()
}

// Reset returns the slot to the pooled state.
func (e *Enemy) Reset() {
	*e = Enemy{Slot: e.Slot, Phase: PhasePooled}
}
