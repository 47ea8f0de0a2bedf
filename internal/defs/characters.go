// internal/defs/characters.go
package defs

// CharacterDefinition describes a playable character protected by the player.
type CharacterDefinition struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	MaxHealth          int     `json:"max_health"`
	AttackPowerPercent int     `json:"attack_power_percent"`
	AttackDelayMs      float64 `json:"attack_delay_ms"`  // windup before the projectile leaves
	ProjectileSpeed    float64 `json:"projectile_speed"` // px/sec
}

func (d CharacterDefinition) validate() error {
	switch {
	case d.ID == "":
		return invalidf("character without id")
	case d.MaxHealth <= 0:
		return invalidf("character %s: max_health must be positive", d.ID)
	case d.AttackPowerPercent <= 0:
		return invalidf("character %s: attack_power_percent must be positive", d.ID)
	case d.AttackDelayMs < 0:
		return invalidf("character %s: attack_delay_ms must not be negative", d.ID)
	case d.ProjectileSpeed <= 0:
		return invalidf("character %s: projectile_speed must be positive", d.ID)
	}
	return nil
}
