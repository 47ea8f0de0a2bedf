package replay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-battle/internal/app"
	"math-battle/internal/component"
	"math-battle/internal/defs"
	"math-battle/internal/event"
)

func TestRecorder_RecordsSessionAndRoundTrips(t *testing.T) {
	lib, err := defs.LoadDefaults()
	require.NoError(t, err)
	dispatcher := event.NewDispatcher()
	d := app.NewDirector(lib, dispatcher, app.WithSeed(7), app.WithTimeLimit(500))
	rec := NewRecorder(7, d.Now)
	rec.Attach(dispatcher)

	require.NoError(t, d.Start())
	d.SubmitAnswer(d.CurrentQuestion().Answer)
	for d.Phase() == component.SessionRunning {
		require.NoError(t, d.Update(20))
	}
	require.NoError(t, rec.Err())

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	trace, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, int64(7), trace.Seed)
	assert.Len(t, trace.Entries, len(rec.Entries()))
	assert.Equal(t, 1, trace.Count(event.SessionStarted))
	assert.Equal(t, 1, trace.Count(event.SessionEnded))
	assert.Equal(t, 1, trace.Count(event.ProjectileLaunched))
	assert.Equal(t, 3, trace.Count(event.EnemySpawned))

	last := trace.Entries[len(trace.Entries)-1]
	require.Equal(t, event.SessionEnded, last.Type)
	assert.Equal(t, int64(500), last.AtMs)

	var ended event.SessionEndedData
	require.NoError(t, last.DecodePayload(&ended))
	assert.Equal(t, component.OutcomeVictory, ended.Outcome)
	assert.Equal(t, 1, ended.Stats.Correct)
}
