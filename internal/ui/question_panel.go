// internal/ui/question_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"math-battle/internal/config"
	"math-battle/internal/question"
	"math-battle/pkg/render"
)

// QuestionPanel показывает текущий вопрос и четыре варианта ответа,
// пронумерованных клавишами 1–4.
type QuestionPanel struct {
	X, Y, Width, Height float32
	fontFace            font.Face
}

func NewQuestionPanel(x, y, width, height float32, fontFace font.Face) *QuestionPanel {
	return &QuestionPanel{X: x, Y: y, Width: width, Height: height, fontFace: fontFace}
}

// Draw рисует панель. highlight — индекс варианта, подсвеченного после
// неверного ответа, или -1.
func (p *QuestionPanel) Draw(screen *ebiten.Image, q question.Question, options []int, highlight int) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, p.Height, config.PanelColor, false)
	vector.StrokeRect(screen, p.X, p.Y, p.Width, p.Height, 2, config.PanelBorderColor, false)

	cx := int(p.X + p.Width/2)
	drawCentered(screen, q.Prompt, p.fontFace, cx, int(p.Y)+24, config.TextLightColor)

	if len(options) == 0 {
		return
	}
	slotW := p.Width / float32(len(options))
	for i, opt := range options {
		sx := p.X + slotW*float32(i)
		bg := color.Color(config.LaneColor)
		if i == highlight {
			bg = render.DarkenColor(config.EnemyColor)
		}
		vector.DrawFilledRect(screen, sx+8, p.Y+38, slotW-16, p.Height-48, bg, false)
		label := fmt.Sprintf("[%d] %s", i+1, q.ChoiceLabel(opt))
		text.Draw(screen, label, p.fontFace, int(sx)+16, int(p.Y+p.Height)-18, config.TextLightColor)
	}
}

// OptionForKey maps a 0-based key index to the option value.
func OptionForKey(options []int, key int) (int, bool) {
	if key < 0 || key >= len(options) {
		return 0, false
	}
	return options[key], true
}
