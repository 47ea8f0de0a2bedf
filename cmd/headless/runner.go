package main

import (
	"fmt"

	"math-battle/internal/app"
	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/event"
	"math-battle/internal/replay"
	"math-battle/internal/utils"
)

type runConfig struct {
	character        string
	tier             int
	kinds            []defs.OperationKind
	accuracy         float64
	answerIntervalMs int64
	maxMs            int64
	killGoal         int
}

type runStats struct {
	runIndex int
	seed     int64

	outcome       component.Outcome
	summary       component.SessionStats
	playerHealth  int
	poolLen       int
	poolGrowths   int
	projectiles   int
	enemyAttacks  int
	droppedEvents int
}

// runSession plays one session at a fixed tick, answering every
// answerIntervalMs with the configured accuracy.
func runSession(lib *defs.Library, cfg runConfig, runIndex int, seed int64) (runStats, *replay.Recorder, error) {
	dispatcher := event.NewDispatcher()
	d := app.NewDirector(lib, dispatcher,
		app.WithCharacter(cfg.character),
		app.WithTier(cfg.tier),
		app.WithKinds(cfg.kinds...),
		app.WithSeed(seed),
		app.WithTimeLimit(cfg.maxMs),
		app.WithKillGoal(cfg.killGoal),
	)

	stats := runStats{runIndex: runIndex, seed: seed}
	dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		switch e.Type {
		case event.PoolGrown:
			stats.poolGrowths++
		case event.ProjectileLaunched:
			stats.projectiles++
		case event.EnemyAttacked:
			stats.enemyAttacks++
		}
	}))
	rec := replay.NewRecorder(seed, d.Now)
	rec.Attach(dispatcher)

	if err := d.Start(); err != nil {
		return stats, nil, fmt.Errorf("run %d: %w", runIndex, err)
	}

	answerer := utils.NewPRNGService(seed ^ 0x5eed)
	nextAnswer := cfg.answerIntervalMs
	for d.Phase() == component.SessionRunning {
		if err := d.Update(config.TickMs); err != nil {
			return stats, nil, fmt.Errorf("run %d: %w", runIndex, err)
		}
		if d.Phase() != component.SessionRunning || d.Now() < nextAnswer {
			continue
		}
		nextAnswer += cfg.answerIntervalMs
		d.SubmitAnswer(pickAnswer(d, answerer, cfg.accuracy))
	}

	stats.outcome = d.Outcome()
	stats.summary = d.Stats()
	stats.playerHealth = d.Player().Combatant.Health
	stats.poolLen = d.Pool().Len()
	stats.droppedEvents = d.DroppedEvents()
	return stats, rec, nil
}

// pickAnswer returns the correct answer with probability accuracy and one of
// the wrong options otherwise.
func pickAnswer(d *app.Director, rng *utils.PRNGService, accuracy float64) int {
	q := d.CurrentQuestion()
	if rng.Chance(accuracy) || len(q.Distractors) == 0 {
		return q.Answer
	}
	return q.Distractors[rng.Intn(len(q.Distractors))]
}

func printRun(s runStats) {
	fmt.Printf("run %d seed=%d outcome=%s time=%.1fs hp=%d\n",
		s.runIndex, s.seed, s.outcome, float64(s.summary.ElapsedMs)/1000, s.playerHealth)
	fmt.Printf("  answers: correct=%d wrong=%d score=%d best_combo=%d\n",
		s.summary.Correct, s.summary.Wrong, s.summary.Score, s.summary.BestCombo)
	fmt.Printf("  combat: kills=%d waves=%d projectiles=%d enemy_attacks=%d pool=%d growths=%d dropped=%d\n",
		s.summary.Kills, s.summary.Waves, s.projectiles, s.enemyAttacks, s.poolLen, s.poolGrowths, s.droppedEvents)
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	victories, kills, score := 0, 0, 0
	for _, s := range all {
		if s.outcome == component.OutcomeVictory {
			victories++
		}
		kills += s.summary.Kills
		score += s.summary.Score
	}
	n := float64(len(all))
	fmt.Printf("\n=== Aggregate ===\n")
	fmt.Printf("victories=%d/%d avg_kills=%.1f avg_score=%.1f\n", victories, len(all), float64(kills)/n, float64(score)/n)
}
