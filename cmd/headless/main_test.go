package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-battle/internal/component"
	"math-battle/internal/defs"
	"math-battle/internal/event"
	"math-battle/internal/replay"
)

func testConfig() runConfig {
	return runConfig{
		character:        "archer",
		tier:             1,
		accuracy:         1,
		answerIntervalMs: 500,
		maxMs:            20000,
	}
}

func TestRunSession_IsDeterministic(t *testing.T) {
	lib, err := defs.LoadDefaults()
	require.NoError(t, err)

	a, _, err := runSession(lib, testConfig(), 1, 99)
	require.NoError(t, err)
	b, _, err := runSession(lib, testConfig(), 1, 99)
	require.NoError(t, err)

	assert.Equal(t, a.summary, b.summary)
	assert.Equal(t, a.outcome, b.outcome)
	assert.Equal(t, a.projectiles, b.projectiles)
}

func TestRunSession_PerfectPlayerKills(t *testing.T) {
	lib, err := defs.LoadDefaults()
	require.NoError(t, err)

	s, rec, err := runSession(lib, testConfig(), 1, 5)
	require.NoError(t, err)

	assert.Equal(t, component.OutcomeVictory, s.outcome)
	assert.Zero(t, s.summary.Wrong)
	assert.Positive(t, s.summary.Kills)
	assert.GreaterOrEqual(t, s.summary.Waves, 2)

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	trace, err := replay.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.summary.Kills, trace.Count(event.EnemyKilled))
}

func TestRunSession_KillGoal(t *testing.T) {
	lib, err := defs.LoadDefaults()
	require.NoError(t, err)
	cfg := testConfig()
	cfg.killGoal = 2

	s, _, err := runSession(lib, cfg, 1, 11)
	require.NoError(t, err)
	assert.Equal(t, component.OutcomeVictory, s.outcome)
	assert.Equal(t, 2, s.summary.Kills)
	assert.Less(t, s.summary.ElapsedMs, cfg.maxMs)
}

func TestTraceFile(t *testing.T) {
	assert.Equal(t, "out.msgpack", traceFile("out.msgpack", 1, 1))
	assert.Equal(t, "out.msgpack.3", traceFile("out.msgpack", 3, 5))
}
