package component

import (
	"math"

	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/types"
)

// Combatant — общее состояние здоровья, перезарядки и жизни
// для персонажа игрока и врагов.
// Инварианты: 0 <= Health <= MaxHealth; alive == Health > 0; умерший не оживает.
type Combatant struct {
	ID               types.EntityID
	MaxHealth        int
	Health           int
	Damage           int
	MoveSpeed        float64 // px/sec
	AttackRange      float64 // px
	AttackCooldownMs int64
	LastAttackMs     int64
	Position         Position

	alive    bool
	attacked bool
}

// NewCombatant создаёт живого бойца с полным здоровьем.
func NewCombatant(id types.EntityID, maxHealth, damage int, moveSpeed, attackRange float64, cooldownMs int64) *Combatant {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return &Combatant{
		ID:               id,
		MaxHealth:        maxHealth,
		Health:           maxHealth,
		Damage:           damage,
		MoveSpeed:        moveSpeed,
		AttackRange:      attackRange,
		AttackCooldownMs: cooldownMs,
		alive:            true,
	}
}

// ScaleStat applies the difficulty multiplier shared by enemy health and
// damage: floor(base × (1 + (tier − 1) × 0.5)).
func ScaleStat(base, tier int) int {
	if tier < 1 {
		tier = 1
	}
	return int(math.Floor(float64(base) * (1 + float64(tier-1)*config.StatScalePerTier)))
}

// NewEnemyCombatant создаёт врага, масштабируя здоровье и урон по сложности.
func NewEnemyCombatant(id types.EntityID, def defs.MonsterDefinition, tier int) *Combatant {
	return NewCombatant(id,
		ScaleStat(def.BaseHealth, tier),
		ScaleStat(def.BaseDamage, tier),
		def.MoveSpeed,
		def.AttackRange,
		def.AttackIntervalMs,
	)
}

// NewPlayerCombatant создаёт персонажа игрока. Он не двигается и не
// атакует через перезарядку: его атаки запускаются ответами.
func NewPlayerCombatant(id types.EntityID, def defs.CharacterDefinition) *Combatant {
	return NewCombatant(id, def.MaxHealth, 0, 0, 0, 0)
}

func (c *Combatant) Alive() bool { return c.alive }

// ApplyDamage снимает здоровье. Возвращает true ровно один раз:
// в момент перехода из живого состояния в мёртвое.
func (c *Combatant) ApplyDamage(amount int) (killed bool) {
	if !c.alive || amount <= 0 {
		return false
	}
	c.Health -= amount
	if c.Health > 0 {
		return false
	}
	c.Health = 0
	c.alive = false
	return true
}

// Heal восстанавливает здоровье, не выше максимума. Мёртвых не лечит.
func (c *Combatant) Heal(amount int) {
	if !c.alive || amount <= 0 {
		return
	}
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// TryAttack is the only gate on attack frequency. It returns false without
// touching the cooldown while nowMs − LastAttackMs < AttackCooldownMs,
// otherwise it records nowMs and returns true. A combatant that has never
// attacked may attack immediately.
func (c *Combatant) TryAttack(nowMs int64) bool {
	if c.attacked && nowMs-c.LastAttackMs < c.AttackCooldownMs {
		return false
	}
	c.attacked = true
	c.LastAttackMs = nowMs
	return true
}

// HealthRatio returns Health/MaxHealth in [0, 1].
func (c *Combatant) HealthRatio() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return float64(c.Health) / float64(c.MaxHealth)
}
