// internal/ui/health_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"math-battle/pkg/render"
)

const healthBarBorder = 1

var (
	healthFull  = color.RGBA{50, 205, 50, 255}
	healthEmpty = color.RGBA{220, 40, 40, 255}
)

// HealthBar — полоска здоровья с обводкой.
type HealthBar struct {
	Width, Height float32
}

func NewHealthBar(width, height float32) *HealthBar {
	return &HealthBar{Width: width, Height: height}
}

// Draw рисует полоску с левым верхним углом в (x, y).
func (b *HealthBar) Draw(screen *ebiten.Image, x, y float32, health, maxHealth int) {
	ratio := 0.0
	if maxHealth > 0 {
		ratio = float64(health) / float64(maxHealth)
	}
	if ratio < 0 {
		ratio = 0
	}

	vector.DrawFilledRect(screen, x, y, b.Width, b.Height, render.DarkenColor(healthEmpty), false)
	fill := float32(float64(b.Width-healthBarBorder*2) * ratio)
	if fill > 0 {
		vector.DrawFilledRect(screen, x+healthBarBorder, y+healthBarBorder, fill, b.Height-healthBarBorder*2,
			render.LerpColor(healthEmpty, healthFull, ratio), false)
	}
	vector.StrokeRect(screen, x, y, b.Width, b.Height, healthBarBorder, color.White, false)
}
