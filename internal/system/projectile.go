// internal/system/projectile.go
package system

import (
	"math-battle/internal/component"
	"math-battle/internal/config"
)

// Delivery — расчёт полёта снаряда игрока.
type Delivery struct {
	AimPoint        component.Position
	FlightMs        float64
	TotalDeliveryMs float64 // Замах + полёт: через сколько после ответа приходит урон
}

// PlanDelivery predicts where the target will be and how long the projectile
// takes to reach that point. The aim point is a fixed-lead estimate
// (target + velocity × lead), not an exact intercept. A non-positive
// projectile speed yields zero flight time.
func PlanDelivery(attacker, target component.Position, targetVel component.Velocity, projectileSpeed, preDelayMs float64) Delivery {
	aim := predictTargetPosition(target, targetVel)
	flightMs := 0.0
	if projectileSpeed > 0 {
		flightMs = attacker.DistanceTo(aim) / projectileSpeed * 1000
	}
	if preDelayMs < 0 {
		preDelayMs = 0
	}
	return Delivery{
		AimPoint:        aim,
		FlightMs:        flightMs,
		TotalDeliveryMs: preDelayMs + flightMs,
	}
}

// predictTargetPosition сдвигает цель вдоль её скорости на время упреждения.
func predictTargetPosition(target component.Position, vel component.Velocity) component.Position {
	return target.Advance(vel, config.ProjectileLeadSeconds)
}
