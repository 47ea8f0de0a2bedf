// internal/app/director.go
package app

import (
	"fmt"
	"log"

	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/entity"
	"math-battle/internal/event"
	"math-battle/internal/question"
	"math-battle/internal/system"
	"math-battle/internal/timer"
	"math-battle/internal/types"
	"math-battle/internal/utils"
)

// Director владеет одной боевой сессией: пулом врагов, очередью событий,
// персонажем игрока и счётчиками. Всё состояние продвигается только из
// Update и SubmitAnswer, поэтому блокировки не нужны.
type Director struct {
	library         *defs.Library
	eventDispatcher *event.Dispatcher
	opts            Options

	rng            *utils.PRNGService
	questions      QuestionSource
	pool           *entity.EnemyPool
	queue          *timer.Queue
	player         *component.Player
	waveSystem     *system.WaveSystem
	movementSystem *system.MovementSystem
	combatSystem   *system.CombatSystem

	generation  uint64
	clockMs     float64
	nowMs       int64
	phase       component.SessionPhase
	outcome     component.Outcome
	stats       component.SessionStats
	current     question.Question
	options     []int
	projectiles []component.Projectile
	dropped     int
}

// AnswerResult — итог проверки ответа.
type AnswerResult struct {
	Correct    bool
	ScoreDelta int
	Launched   bool
	Projectile component.Projectile
}

// NewDirector creates an idle director. Start begins the first session.
func NewDirector(library *defs.Library, eventDispatcher *event.Dispatcher, opts ...Option) *Director {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}
	return &Director{
		library:         library,
		eventDispatcher: eventDispatcher,
		opts:            o,
		queue:           timer.NewQueue(),
	}
}

// Start begins a new session and replaces any previous one. The generation
// token is bumped first, so events still queued from an earlier session are
// never applied. Unknown characters or a tier without a spawn table are
// configuration errors.
func (d *Director) Start() error {
	def, err := d.library.Character(d.opts.CharacterID)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if _, err := d.library.SpawnTable(d.opts.Tier); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	d.generation++
	d.queue.Purge(d.generation)
	d.rng = utils.NewPRNGService(d.opts.Seed)
	d.questions = d.opts.Questions
	if d.questions == nil {
		d.questions = question.NewService(d.library.Questions, d.rng, d.opts.Tier, d.opts.Kinds, d.opts.MixedChance)
	}
	d.pool = entity.NewEnemyPool(config.InitialPoolSize, config.PoolGrowBatch)
	d.player = component.NewPlayer(def, component.Position{X: config.PlayerX, Y: config.PlayerY})
	d.waveSystem = system.NewWaveSystem(d.library, d.pool, d.rng, d.eventDispatcher, d.opts.Tier)
	d.movementSystem = system.NewMovementSystem(d.pool, d.eventDispatcher)
	d.combatSystem = system.NewCombatSystem(d.pool, d.queue, d.eventDispatcher)

	d.clockMs = 0
	d.nowMs = 0
	d.phase = component.SessionRunning
	d.outcome = component.OutcomeNone
	d.stats = component.SessionStats{}
	d.projectiles = nil
	d.dropped = 0

	d.eventDispatcher.Dispatch(event.Event{Type: event.SessionStarted, Data: event.SessionStartedData{
		Generation:  d.generation,
		CharacterID: def.ID,
		Tier:        d.opts.Tier,
	}})

	if _, err := d.waveSystem.SpawnWave(); err != nil {
		d.phase = component.SessionIdle
		return err
	}
	d.stats.Waves = d.waveSystem.Wave()
	d.presentNextQuestion()
	return nil
}

// Restart is Start under another name, for the result screen.
func (d *Director) Restart() error { return d.Start() }

// Update advances the logical clock by deltaMs (capped at MaxDeltaMs), fires
// every due event, then moves enemies and lets them attack.
func (d *Director) Update(deltaMs float64) error {
	if d.phase != component.SessionRunning {
		return nil
	}
	if deltaMs < 0 {
		deltaMs = 0
	}
	if deltaMs > config.MaxDeltaMs {
		deltaMs = config.MaxDeltaMs
	}
	d.clockMs += deltaMs
	d.nowMs = int64(d.clockMs)
	d.stats.ElapsedMs = d.nowMs

	for {
		ev, ok := d.queue.PopDue(d.nowMs)
		if !ok {
			break
		}
		if ev.Generation != d.generation {
			d.dropped++
			continue
		}
		if err := d.handleEvent(ev); err != nil {
			return err
		}
		if d.phase != component.SessionRunning {
			return nil
		}
	}

	d.movementSystem.Update(deltaMs, d.player.Combatant.Position)
	d.combatSystem.Update(d.nowMs, d.player, d.generation)
	d.pruneProjectiles()

	if d.opts.TimeLimitMs > 0 && d.nowMs >= d.opts.TimeLimitMs {
		d.endSession(component.OutcomeVictory)
	}
	return nil
}

func (d *Director) handleEvent(ev timer.Event) error {
	switch ev.Kind {
	case timer.KindDamage:
		res := d.combatSystem.ApplyDamage(ev, d.nowMs, d.player)
		if res.PlayerKilled {
			d.endSession(component.OutcomeDefeat)
			return nil
		}
		if res.Killed {
			d.stats.Kills++
			d.queue.Schedule(timer.Event{
				Kind:       timer.KindRecycle,
				Target:     res.Enemy.ID(),
				FireAt:     res.Enemy.PhaseUntilMs,
				Generation: d.generation,
			})
			if d.opts.KillGoal > 0 && d.stats.Kills >= d.opts.KillGoal {
				d.endSession(component.OutcomeVictory)
				return nil
			}
			d.checkWaveTrigger()
		}
	case timer.KindRecycle:
		d.combatSystem.RecycleEnemy(ev)
	case timer.KindSpawnWave:
		if _, err := d.waveSystem.SpawnWave(); err != nil {
			return err
		}
		d.stats.Waves = d.waveSystem.Wave()
		d.checkWaveTrigger()
	}
	return nil
}

// checkWaveTrigger schedules the next wave when fewer than
// WaveRecycleThreshold enemies are left. At most one wave is pending.
func (d *Director) checkWaveTrigger() {
	if d.phase != component.SessionRunning {
		return
	}
	if d.pool.ActiveCount() >= config.WaveRecycleThreshold {
		return
	}
	if d.queue.CountKind(timer.KindSpawnWave, d.generation) > 0 {
		return
	}
	if d.pool.Exhausted() {
		oldLen := d.pool.Len()
		d.pool.Grow(d.pool.GrowBatch())
		log.Printf("Enemy pool grown from %d to %d slots", oldLen, d.pool.Len())
		d.eventDispatcher.Dispatch(event.Event{Type: event.PoolGrown, Data: event.PoolGrownData{OldLen: oldLen, NewLen: d.pool.Len()}})
	}

	fireAt := d.nowMs + config.NextWaveDelayMs
	d.queue.Schedule(timer.Event{
		Kind:       timer.KindSpawnWave,
		FireAt:     fireAt,
		Generation: d.generation,
	})
	d.eventDispatcher.Dispatch(event.Event{Type: event.WaveScheduled, Data: event.WaveData{Wave: d.waveSystem.Wave() + 1, FireAt: fireAt}})
}

// SubmitAnswer judges an answer to the current question. A correct answer
// launches an attack at the nearest enemy and presents the next question; a
// wrong one only resets the combo and keeps the question on screen.
func (d *Director) SubmitAnswer(answer int) AnswerResult {
	if d.phase != component.SessionRunning {
		return AnswerResult{}
	}

	res := AnswerResult{Correct: d.current.IsCorrect(answer)}
	if res.Correct {
		res.ScoreDelta = d.stats.RecordCorrect()
	} else {
		d.stats.RecordWrong()
	}
	d.eventDispatcher.Dispatch(event.Event{Type: event.AnswerJudged, Data: event.AnswerJudgedData{
		QuestionID: d.current.ID,
		Answer:     answer,
		Correct:    res.Correct,
		ScoreDelta: res.ScoreDelta,
		Score:      d.stats.Score,
		Combo:      d.stats.Combo,
	}})
	if !res.Correct {
		return res
	}

	if proj, ok := d.combatSystem.LaunchAttack(d.nowMs, d.player, d.current.Tier, d.generation); ok {
		res.Launched = true
		res.Projectile = proj
		d.projectiles = append(d.projectiles, proj)
	}
	d.presentNextQuestion()
	return res
}

func (d *Director) presentNextQuestion() {
	d.current = d.questions.Next()
	d.options = d.questions.Options(d.current)
	d.eventDispatcher.Dispatch(event.Event{Type: event.QuestionPresented, Data: event.QuestionPresentedData{
		Question: d.current,
		Options:  d.options,
	}})
}

// endSession reports the outcome exactly once and invalidates every
// pending event by bumping the generation.
func (d *Director) endSession(outcome component.Outcome) {
	if d.phase != component.SessionRunning {
		return
	}
	ended := d.generation
	d.phase = component.SessionEnded
	d.outcome = outcome
	d.generation++
	d.stats.ElapsedMs = d.nowMs
	d.stats.Waves = d.waveSystem.Wave()

	log.Printf("Session %d ended: %s after %d ms (correct %d, wrong %d, kills %d, score %d)",
		ended, outcome, d.nowMs, d.stats.Correct, d.stats.Wrong, d.stats.Kills, d.stats.Score)
	d.eventDispatcher.Dispatch(event.Event{Type: event.SessionEnded, Data: event.SessionEndedData{
		Generation: ended,
		Outcome:    outcome,
		Stats:      d.stats,
	}})
}

func (d *Director) pruneProjectiles() {
	kept := d.projectiles[:0]
	for _, p := range d.projectiles {
		if p.ArriveAtMs > d.nowMs {
			kept = append(kept, p)
		}
	}
	d.projectiles = kept
}

func (d *Director) Now() int64 { return d.nowMs }

func (d *Director) Generation() uint64 { return d.generation }

func (d *Director) Phase() component.SessionPhase { return d.phase }

func (d *Director) Outcome() component.Outcome { return d.outcome }

func (d *Director) Stats() component.SessionStats { return d.stats }

func (d *Director) Tier() int { return d.opts.Tier }

func (d *Director) TimeLimitMs() int64 { return d.opts.TimeLimitMs }

func (d *Director) Library() *defs.Library { return d.library }

func (d *Director) Player() *component.Player { return d.player }

func (d *Director) Pool() *entity.EnemyPool { return d.pool }

func (d *Director) Queue() *timer.Queue { return d.queue }

func (d *Director) Dispatcher() *event.Dispatcher { return d.eventDispatcher }

// DroppedEvents returns how many stale events were discarded this session.
func (d *Director) DroppedEvents() int { return d.dropped }

func (d *Director) CurrentQuestion() question.Question { return d.current }

// Options returns the answer choices of the current question in display order.
func (d *Director) Options() []int { return append([]int(nil), d.options...) }

// Projectiles returns the projectiles still in flight.
func (d *Director) Projectiles() []component.Projectile {
	return append([]component.Projectile(nil), d.projectiles...)
}

// EnemyAt returns the enemy addressed by id, or nil.
func (d *Director) EnemyAt(id types.EntityID) *component.Enemy {
	if !id.IsEnemy() || d.pool == nil {
		return nil
	}
	return d.pool.Slot(id.Index)
}
