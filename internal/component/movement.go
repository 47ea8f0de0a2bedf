// component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, px/sec по каждой оси
type Velocity struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Advance returns the position after moving with v for seconds.
func (p Position) Advance(v Velocity, seconds float64) Position {
	return Position{X: p.X + v.X*seconds, Y: p.Y + v.Y*seconds}
}
