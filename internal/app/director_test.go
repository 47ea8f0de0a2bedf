package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-battle/internal/component"
	"math-battle/internal/config"
	"math-battle/internal/defs"
	"math-battle/internal/event"
	"math-battle/internal/question"
	"math-battle/internal/timer"
	"math-battle/internal/types"
)

// fixedQuestions always asks 2 + 2.
type fixedQuestions struct{ n int }

func (f *fixedQuestions) Next() question.Question {
	f.n++
	return question.Question{
		ID: fmt.Sprintf("q-%d", f.n), Kind: defs.OpAdd, Tier: 1, Prompt: "2 + 2",
		Operand1: 2, Operand2: 2, Answer: 4, Distractors: []int{3, 5, 6},
	}
}

func (f *fixedQuestions) Options(q question.Question) []int { return q.Choices() }

type recorder struct{ counts map[event.EventType]int }

func newDirector(t *testing.T, opts ...Option) (*Director, *recorder) {
	t.Helper()
	lib, err := defs.LoadDefaults()
	require.NoError(t, err)
	dispatcher := event.NewDispatcher()
	rec := &recorder{counts: map[event.EventType]int{}}
	dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) { rec.counts[e.Type]++ }))

	opts = append([]Option{WithSeed(42), WithQuestionSource(&fixedQuestions{})}, opts...)
	d := NewDirector(lib, dispatcher, opts...)
	require.NoError(t, d.Start())
	return d, rec
}

func advance(t *testing.T, d *Director, ms int) {
	t.Helper()
	for elapsed := 0; elapsed < ms; elapsed += 20 {
		require.NoError(t, d.Update(20))
	}
}

func TestDirector_StartSpawnsFirstWave(t *testing.T) {
	d, rec := newDirector(t)

	assert.Equal(t, component.SessionRunning, d.Phase())
	assert.Equal(t, config.MonstersPerWave, d.Pool().ActiveCount())
	assert.Equal(t, config.InitialPoolSize, d.Pool().Len())
	assert.Equal(t, 1, rec.counts[event.SessionStarted])
	assert.Equal(t, 1, rec.counts[event.WaveSpawned])
	assert.Equal(t, 1, rec.counts[event.QuestionPresented])
	assert.Equal(t, 4, d.CurrentQuestion().Answer)
	assert.Len(t, d.Options(), 4)
}

func TestDirector_StartRejectsUnknownCharacter(t *testing.T) {
	lib, err := defs.LoadDefaults()
	require.NoError(t, err)
	d := NewDirector(lib, nil, WithCharacter("necromancer"))
	assert.ErrorIs(t, d.Start(), defs.ErrUnknownCharacter)
	assert.Equal(t, component.SessionIdle, d.Phase())
}

func TestDirector_CorrectAnswerDamagesAfterDelivery(t *testing.T) {
	d, rec := newDirector(t)

	res := d.SubmitAnswer(4)
	require.True(t, res.Correct)
	require.True(t, res.Launched)
	assert.Equal(t, config.ScorePerCorrect, res.ScoreDelta)
	assert.Equal(t, "q-2", d.CurrentQuestion().ID)

	target := d.EnemyAt(res.Projectile.Target)
	require.NotNil(t, target)
	before := target.Combatant.Health
	assert.Equal(t, 30, res.Projectile.Damage)

	// Nothing lands before the delivery time.
	for d.Now()+20 < res.Projectile.ArriveAtMs {
		require.NoError(t, d.Update(20))
	}
	assert.Equal(t, before, target.Combatant.Health)

	advance(t, d, 40)
	assert.Equal(t, before-30, target.Combatant.Health)
	assert.Equal(t, 1, rec.counts[event.EnemyDamaged])
	assert.Empty(t, d.Projectiles())
}

func TestDirector_WrongAnswerKeepsQuestion(t *testing.T) {
	d, _ := newDirector(t)
	d.SubmitAnswer(4)
	d.SubmitAnswer(4)
	require.Equal(t, 2, d.Stats().Combo)

	q := d.CurrentQuestion()
	res := d.SubmitAnswer(5)
	assert.False(t, res.Correct)
	assert.False(t, res.Launched)
	assert.Equal(t, q.ID, d.CurrentQuestion().ID)
	assert.Zero(t, d.Stats().Combo)
	assert.Equal(t, 2, d.Stats().BestCombo)
	assert.Equal(t, 1, d.Stats().Wrong)
	assert.Equal(t, 2, d.Queue().CountKind(timer.KindDamage, d.Generation()))
}

func TestDirector_StaleGenerationIsDropped(t *testing.T) {
	d, rec := newDirector(t)
	res := d.SubmitAnswer(4)
	require.True(t, res.Launched)
	old := d.Generation()

	require.NoError(t, d.Restart())
	assert.Greater(t, d.Generation(), old)

	// An event from the old session reaching the queue is discarded.
	d.Queue().Schedule(timer.Event{Kind: timer.KindDamage, Target: types.EnemyID(0), Amount: 9999, FireAt: 0, Generation: old})
	advance(t, d, 1500)

	assert.Equal(t, 1, d.DroppedEvents())
	for _, e := range d.Pool().Active() {
		assert.Equal(t, e.Combatant.MaxHealth, e.Combatant.Health)
	}
	assert.Zero(t, rec.counts[event.EnemyDamaged])
	assert.Zero(t, d.Stats().Kills)
}

func TestDirector_PoolGrowsWhenCursorReachesEnd(t *testing.T) {
	d, rec := newDirector(t)
	pool := d.Pool()

	// Fill the pool up to cursor == len with a single enemy still active.
	for !pool.Exhausted() {
		e, _ := pool.Acquire()
		pool.Release(e.Slot)
	}
	active := pool.Active()
	for _, e := range active[1:] {
		pool.Release(e.Slot)
	}
	require.Equal(t, 50, pool.SpawnCursor())
	require.Equal(t, 1, pool.ActiveCount())

	d.checkWaveTrigger()
	assert.Equal(t, 50+config.PoolGrowBatch, pool.Len())
	assert.Equal(t, 1, rec.counts[event.PoolGrown])
	assert.Equal(t, 1, d.Queue().CountKind(timer.KindSpawnWave, d.Generation()))

	d.checkWaveTrigger()
	assert.Equal(t, 1, d.Queue().CountKind(timer.KindSpawnWave, d.Generation()), "one pending wave at most")

	advance(t, d, config.NextWaveDelayMs+40)
	assert.Equal(t, 50+config.MonstersPerWave, pool.SpawnCursor())
	assert.Equal(t, 2, d.Stats().Waves)
}

func TestDirector_DefeatReportedOnce(t *testing.T) {
	d, rec := newDirector(t)
	d.Queue().Schedule(timer.Event{
		Kind: timer.KindDamage, Target: types.PlayerID(), Source: types.PlayerID(),
		Amount: 1000, FireAt: d.Now(), Generation: d.Generation(),
	})
	require.NoError(t, d.Update(16))

	assert.Equal(t, component.SessionEnded, d.Phase())
	assert.Equal(t, component.OutcomeDefeat, d.Outcome())
	assert.Equal(t, 1, rec.counts[event.SessionEnded])

	d.endSession(component.OutcomeVictory)
	require.NoError(t, d.Update(16))
	assert.Equal(t, component.OutcomeDefeat, d.Outcome())
	assert.Equal(t, 1, rec.counts[event.SessionEnded])
	assert.False(t, d.SubmitAnswer(4).Correct)
}

func TestDirector_TimeLimitVictory(t *testing.T) {
	d, rec := newDirector(t, WithTimeLimit(1000))
	advance(t, d, 1200)

	assert.Equal(t, component.OutcomeVictory, d.Outcome())
	assert.Equal(t, int64(1000), d.Stats().ElapsedMs)
	assert.Equal(t, 1, rec.counts[event.SessionEnded])
}

func TestDirector_KillGoalVictory(t *testing.T) {
	d, rec := newDirector(t, WithKillGoal(1), WithTimeLimit(0))
	for i := 0; i < 500 && d.Phase() == component.SessionRunning; i++ {
		d.SubmitAnswer(4)
		require.NoError(t, d.Update(50))
	}

	assert.Equal(t, component.OutcomeVictory, d.Outcome())
	assert.Equal(t, 1, d.Stats().Kills)
	assert.Equal(t, 1, rec.counts[event.EnemyKilled])
}

func TestDirector_KillsTriggerNextWaveAndRecycle(t *testing.T) {
	d, rec := newDirector(t, WithTimeLimit(0))
	for i := 0; i < 2000 && d.Stats().Waves < 2; i++ {
		d.SubmitAnswer(4)
		require.NoError(t, d.Update(50))
	}
	require.Equal(t, component.SessionRunning, d.Phase())
	assert.GreaterOrEqual(t, d.Stats().Kills, 2)
	assert.GreaterOrEqual(t, rec.counts[event.WaveScheduled], 1)

	advance(t, d, config.DeathExitMs+100)
	assert.GreaterOrEqual(t, rec.counts[event.EnemyRecycled], 2)
}

func TestDirector_Snapshot(t *testing.T) {
	d, _ := newDirector(t)
	d.SubmitAnswer(4)
	advance(t, d, 100)

	s := d.Snapshot()
	assert.Equal(t, d.Now(), s.NowMs)
	assert.Equal(t, "archer", s.Player.CharacterID)
	assert.Len(t, s.Enemies, config.MonstersPerWave)
	assert.Len(t, s.Projectiles, 1)
	assert.Equal(t, config.InitialPoolSize, s.PoolLen)
	assert.Equal(t, 1, s.Stats.Correct)
}
