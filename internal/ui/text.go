// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"math-battle/internal/config"
)

// DefaultFace — растровый шрифт отладочного просмотрщика.
var DefaultFace font.Face = basicfont.Face7x13

// drawCentered рисует строку, центрированную по x; y — базовая линия.
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, x-w/2, y, clr)
}

// DrawCentered рисует строку шрифтом по умолчанию светлым цветом.
func DrawCentered(screen *ebiten.Image, s string, x, y int) {
	drawCentered(screen, s, DefaultFace, x, y, config.TextLightColor)
}
