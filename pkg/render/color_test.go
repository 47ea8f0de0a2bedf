package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpColor(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, a, LerpColor(a, b, -1))
	assert.Equal(t, b, LerpColor(a, b, 2))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, LerpColor(a, b, 0.5))
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 25, 10, 200}, DarkenColor(color.RGBA{100, 50, 20, 200}))
	assert.Equal(t, uint8(7), WithAlpha(color.RGBA{1, 2, 3, 4}, 7).A)
}
