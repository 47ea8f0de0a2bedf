// internal/state/result_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"math-battle/internal/config"
	"math-battle/internal/ui"
	"math-battle/pkg/render"
)

// Убеждаемся, что ResultState соответствует интерфейсу State
var _ State = (*ResultState)(nil)

// ResultState показывает итог сессии; Space запускает новую.
type ResultState struct {
	sm     *StateMachine
	battle *BattleState
	lines  []string
}

func NewResultState(sm *StateMachine, battle *BattleState) *ResultState {
	d := battle.Director()
	return &ResultState{
		sm:     sm,
		battle: battle,
		lines:  append(ui.SummaryLines(d.Outcome(), d.Stats()), "", "Space to play again"),
	}
}

func (r *ResultState) Enter() {}

func (r *ResultState) Update(deltaTime float64) error {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return nil
	}
	if err := r.battle.Director().Restart(); err != nil {
		return err
	}
	log.Printf("Session restarted, generation %d", r.battle.Director().Generation())
	r.sm.SetState(r.battle)
	return nil
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	r.battle.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, render.WithAlpha(config.BackgroundColor, 200), false)
	drawLines(screen, r.lines)
}

func (r *ResultState) Exit() {}
