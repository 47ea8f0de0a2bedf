// pkg/render/battle_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/event"
)

// BattleRenderer рисует поле боя: полосы, врагов, персонажа и снаряды.
type BattleRenderer struct {
	library     *defs.Library
	renderables map[string]component.Renderable
	fieldImage  *ebiten.Image // Предрендеренный фон с полосами
}

func NewBattleRenderer(library *defs.Library) *BattleRenderer {
	return &BattleRenderer{library: library, renderables: make(map[string]component.Renderable)}
}

// Renderable returns how a monster type is drawn. Unknown types get the
// default enemy look.
func (r *BattleRenderer) Renderable(monsterID string) component.Renderable {
	if rd, ok := r.renderables[monsterID]; ok {
		return rd
	}
	rd := component.Renderable{Color: config.EnemyColor, Radius: float32(config.EnemyRadius)}
	if r.library != nil {
		if def, err := r.library.Monster(monsterID); err == nil {
			rd = component.MonsterRenderable(def)
		}
	}
	r.renderables[monsterID] = rd
	return rd
}

// DrawBattlefield рисует фон. Картинка фона строится один раз.
func (r *BattleRenderer) DrawBattlefield(screen *ebiten.Image) {
	if r.fieldImage == nil {
		r.fieldImage = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
		r.fieldImage.Fill(config.BackgroundColor)
		for _, y := range config.SpawnBandsY {
			vector.DrawFilledRect(r.fieldImage, 0, float32(y)-2, config.ScreenWidth, 4, config.LaneColor, false)
		}
	}
	screen.DrawImage(r.fieldImage, nil)
}

// DrawEnemy рисует врага и возвращает его радиус для полоски здоровья.
func (r *BattleRenderer) DrawEnemy(screen *ebiten.Image, e event.EnemyData) float32 {
	rd := r.Renderable(e.MonsterID)
	clr := rd.Color
	switch e.Animation {
	case component.AnimAttack:
		clr = config.AttackingColor
	case component.AnimHurt:
		clr = color.RGBA{255, 255, 255, 255}
	case component.AnimDie:
		clr = WithAlpha(DarkenColor(clr), 120)
	}

	x, y := float32(e.Position.X), float32(e.Position.Y)
	vector.DrawFilledCircle(screen, x, y, rd.Radius+2, config.PanelBorderColor, true)
	vector.DrawFilledCircle(screen, x, y, rd.Radius, clr, true)
	return rd.Radius
}

func (r *BattleRenderer) DrawPlayer(screen *ebiten.Image, pos component.Position) {
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.PlayerRadius, config.PlayerColor, true)
}

func (r *BattleRenderer) DrawProjectile(screen *ebiten.Image, pos component.Position) {
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), config.ProjectileRadius, config.ProjectileColor, true)
}
