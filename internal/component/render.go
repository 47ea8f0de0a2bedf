// component/render.go
package component

import (
	"image/color"

	"math-battle/internal/config"
	"math-battle/internal/defs"
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Color  color.RGBA
	Radius float32
}

// MonsterRenderable builds the circle a monster is drawn as. A zero radius
// factor falls back to the default enemy size.
func MonsterRenderable(def defs.MonsterDefinition) Renderable {
	r := Renderable{Color: def.Visuals.Color, Radius: float32(config.EnemyRadius)}
	if def.Visuals.RadiusFactor > 0 {
		r.Radius *= float32(def.Visuals.RadiusFactor)
	}
	if r.Color == (color.RGBA{}) {
		r.Color = config.EnemyColor
	}
	return r
}
