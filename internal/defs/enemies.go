// internal/defs/enemies.go
package defs

import "image/color"

// MonsterDefinition holds all the static data for a specific type of enemy.
// Health and damage are base values; they are scaled by difficulty tier at spawn.
type MonsterDefinition struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	BaseHealth       int     `json:"base_health"`
	BaseDamage       int     `json:"base_damage"`
	MoveSpeed        float64 `json:"move_speed"`   // px/sec
	AttackRange      float64 `json:"attack_range"` // px, horizontal distance to the player
	AttackIntervalMs int64   `json:"attack_interval_ms"`
	Visuals          Visuals `json:"visuals"`
}

// Visuals contains parameters a renderer may use for an enemy.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

func (d MonsterDefinition) validate() error {
	switch {
	case d.ID == "":
		return invalidf("monster without id")
	case d.BaseHealth <= 0:
		return invalidf("monster %s: base_health must be positive", d.ID)
	case d.BaseDamage < 0:
		return invalidf("monster %s: base_damage must not be negative", d.ID)
	case d.MoveSpeed < 0:
		return invalidf("monster %s: move_speed must not be negative", d.ID)
	case d.AttackRange <= 0:
		return invalidf("monster %s: attack_range must be positive", d.ID)
	case d.AttackIntervalMs <= 0:
		return invalidf("monster %s: attack_interval_ms must be positive", d.ID)
	}
	return nil
}
