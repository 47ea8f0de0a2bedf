// internal/component/player.go
package component

import (
	"math-battle/internal/defs"
	"math-battle/internal/types"
)

// Player хранит информацию, специфичную для персонажа игрока:
// его боевое состояние и параметры атаки по правильному ответу.
type Player struct {
	CharacterID        string
	Combatant          *Combatant
	AttackPowerPercent int
	AttackDelayMs      float64
	ProjectileSpeed    float64
}

func NewPlayer(def defs.CharacterDefinition, pos Position) *Player {
	c := NewPlayerCombatant(types.PlayerID(), def)
	c.Position = pos
	return &Player{
		CharacterID:        def.ID,
		Combatant:          c,
		AttackPowerPercent: def.AttackPowerPercent,
		AttackDelayMs:      def.AttackDelayMs,
		ProjectileSpeed:    def.ProjectileSpeed,
	}
}
