// internal/ui/stats_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"math-battle/internal/component"
	"math-battle/internal/config"
)

// StatsPanel выводит счёт, комбо и оставшееся время.
type StatsPanel struct {
	X, Y     int
	fontFace font.Face
}

func NewStatsPanel(x, y int, fontFace font.Face) *StatsPanel {
	return &StatsPanel{X: x, Y: y, fontFace: fontFace}
}

func (p *StatsPanel) Draw(screen *ebiten.Image, stats component.SessionStats, timeLimitMs int64) {
	lines := []string{
		fmt.Sprintf("Score %d", stats.Score),
		fmt.Sprintf("Combo x%d (best %d)", stats.Combo, stats.BestCombo),
		fmt.Sprintf("Kills %d", stats.Kills),
	}
	if timeLimitMs > 0 {
		left := (timeLimitMs - stats.ElapsedMs) / 1000
		if left < 0 {
			left = 0
		}
		lines = append(lines, fmt.Sprintf("Time %d:%02d", left/60, left%60))
	}
	for i, line := range lines {
		text.Draw(screen, line, p.fontFace, p.X, p.Y+i*16, config.TextLightColor)
	}
}

// SummaryLines formats the end-of-session counters.
func SummaryLines(outcome component.Outcome, stats component.SessionStats) []string {
	title := "Victory!"
	if outcome == component.OutcomeDefeat {
		title = "Defeat"
	}
	return []string{
		title,
		fmt.Sprintf("Correct %d  Wrong %d", stats.Correct, stats.Wrong),
		fmt.Sprintf("Kills %d  Waves %d", stats.Kills, stats.Waves),
		fmt.Sprintf("Score %d  Best combo %d", stats.Score, stats.BestCombo),
		fmt.Sprintf("Time %.1fs", float64(stats.ElapsedMs)/1000),
	}
}
