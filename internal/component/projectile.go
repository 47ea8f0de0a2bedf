// internal/component/projectile.go
package component

import (
	"math-battle/internal/types"
	"math-battle/internal/utils"
)

// Projectile представляет летящий снаряд игрока. Урон привязан к цели,
// а AimPoint — только точка, куда рисовать полёт.
type Projectile struct {
	Target     types.EntityID `msgpack:"target"`
	From       Position       `msgpack:"from"`
	AimPoint   Position       `msgpack:"aim_point"`
	Damage     int            `msgpack:"damage"`
	LaunchAtMs int64          `msgpack:"launch_at_ms"` // Снаряд вылетает после замаха
	ArriveAtMs int64          `msgpack:"arrive_at_ms"`
}

// PositionAt interpolates the visual position of the projectile at nowMs.
// Before launch it sits at From, after arrival at AimPoint.
func (p Projectile) PositionAt(nowMs int64) Position {
	if nowMs <= p.LaunchAtMs || p.ArriveAtMs <= p.LaunchAtMs {
		if nowMs >= p.ArriveAtMs {
			return p.AimPoint
		}
		return p.From
	}
	if nowMs >= p.ArriveAtMs {
		return p.AimPoint
	}
	t := float64(nowMs-p.LaunchAtMs) / float64(p.ArriveAtMs-p.LaunchAtMs)
	return Position{
		X: utils.Lerp(p.From.X, p.AimPoint.X, t),
		Y: utils.Lerp(p.From.Y, p.AimPoint.Y, t),
	}
}
