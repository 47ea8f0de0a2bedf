// internal/state/battle_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"math-battle/internal/app"
	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/event"
	"math-battle/internal/ui"
	"math-battle/pkg/render"
)

// Убеждаемся, что BattleState соответствует интерфейсу State
var _ State = (*BattleState)(nil)

var answerKeys = [config.AnswerKeyCount]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// BattleState — основной экран боя: поле, вопрос и панели.
type BattleState struct {
	sm            *StateMachine
	director      *app.Director
	renderer      *render.BattleRenderer
	questionPanel *ui.QuestionPanel
	statsPanel    *ui.StatsPanel
	waveIndicator *ui.WaveIndicator
	playerBar     *ui.HealthBar
	enemyBar      *ui.HealthBar

	wrongKey   int // Подсветка неверного варианта до следующего вопроса
	subscribed bool
}

func NewBattleState(sm *StateMachine, director *app.Director) *BattleState {
	panelW := float32(640)
	return &BattleState{
		sm:            sm,
		director:      director,
		renderer:      render.NewBattleRenderer(director.Library()),
		questionPanel: ui.NewQuestionPanel((config.ScreenWidth-panelW)/2, config.ScreenHeight-130, panelW, 110, ui.DefaultFace),
		statsPanel:    ui.NewStatsPanel(20, 30, ui.DefaultFace),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth-120, 30, ui.DefaultFace),
		playerBar:     ui.NewHealthBar(80, 10),
		enemyBar:      ui.NewHealthBar(40, 5),
		wrongKey:      -1,
	}
}

func (b *BattleState) Enter() {
	if !b.subscribed {
		b.director.Dispatcher().Subscribe(event.QuestionPresented, b)
		b.subscribed = true
	}
}

func (b *BattleState) Exit() {}

// OnEvent сбрасывает подсветку, когда появляется новый вопрос.
func (b *BattleState) OnEvent(e event.Event) {
	if e.Type == event.QuestionPresented {
		b.wrongKey = -1
	}
}

func (b *BattleState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		b.sm.SetState(NewPauseState(b.sm, b))
		return nil
	}

	options := b.director.Options()
	for i, key := range answerKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if answer, ok := ui.OptionForKey(options, i); ok {
			if res := b.director.SubmitAnswer(answer); !res.Correct {
				b.wrongKey = i
			}
		}
		break
	}

	if err := b.director.Update(deltaTime * 1000); err != nil {
		return err
	}
	if b.director.Phase() == component.SessionEnded {
		b.sm.SetState(NewResultState(b.sm, b))
	}
	return nil
}

func (b *BattleState) Draw(screen *ebiten.Image) {
	snap := b.director.Snapshot()
	b.renderer.DrawBattlefield(screen)

	for _, e := range snap.Enemies {
		radius := b.renderer.DrawEnemy(screen, e)
		if e.Animation != component.AnimDie {
			x, y := float32(e.Position.X), float32(e.Position.Y)
			b.enemyBar.Draw(screen, x-20, y-radius-10, e.Health, e.MaxHealth)
		}
	}

	b.renderer.DrawPlayer(screen, snap.Player.Position)
	px, py := float32(snap.Player.Position.X), float32(snap.Player.Position.Y)
	b.playerBar.Draw(screen, px-40, py-config.PlayerRadius-18, snap.Player.Health, snap.Player.MaxHealth)

	for _, p := range snap.Projectiles {
		if p.Launched {
			b.renderer.DrawProjectile(screen, p.Position)
		}
	}

	b.statsPanel.Draw(screen, snap.Stats, b.director.TimeLimitMs())
	b.waveIndicator.Draw(screen, snap.Stats.Waves)
	b.questionPanel.Draw(screen, snap.Question, snap.Options, b.wrongKey)
}

// Director отдаёт директор сессии другим состояниям.
func (b *BattleState) Director() *app.Director { return b.director }
