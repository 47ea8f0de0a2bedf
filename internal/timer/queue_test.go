package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-battle/internal/types"
)

func drain(q *Queue, now int64) []Event {
	var out []Event
	for {
		e, ok := q.PopDue(now)
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestQueue_FiresInTimeOrderNotScheduleOrder(t *testing.T) {
	q := NewQueue()
	q.Schedule(Event{Kind: KindDamage, Target: types.EnemyID(1), FireAt: 900, Generation: 1})
	q.Schedule(Event{Kind: KindDamage, Target: types.EnemyID(2), FireAt: 300, Generation: 1})
	q.Schedule(Event{Kind: KindDamage, Target: types.EnemyID(3), FireAt: 600, Generation: 1})

	assert.Empty(t, drain(q, 299))

	got := drain(q, 1000)
	require.Len(t, got, 3)
	assert.Equal(t, types.EnemyID(2), got[0].Target)
	assert.Equal(t, types.EnemyID(3), got[1].Target)
	assert.Equal(t, types.EnemyID(1), got[2].Target)
	assert.Zero(t, q.Len())
}

func TestQueue_TiesKeepScheduleOrder(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 20; i++ {
		q.Schedule(Event{Kind: KindDamage, Amount: i, FireAt: 100})
	}
	got := drain(q, 100)
	require.Len(t, got, 20)
	for i, e := range got {
		assert.Equal(t, i, e.Amount)
	}
}

func TestQueue_PopDueRespectsNow(t *testing.T) {
	q := NewQueue()
	q.Schedule(Event{Kind: KindSpawnWave, FireAt: 1500})
	_, ok := q.PopDue(1499)
	assert.False(t, ok)

	e, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, KindSpawnWave, e.Kind)

	e, ok = q.PopDue(1500)
	require.True(t, ok)
	assert.Equal(t, int64(1500), e.FireAt)
}

func TestQueue_Purge(t *testing.T) {
	q := NewQueue()
	q.Schedule(Event{Kind: KindDamage, FireAt: 10, Generation: 1})
	q.Schedule(Event{Kind: KindRecycle, FireAt: 20, Generation: 2})
	q.Schedule(Event{Kind: KindDamage, FireAt: 5, Generation: 1})
	q.Schedule(Event{Kind: KindSpawnWave, FireAt: 15, Generation: 2})

	assert.Equal(t, 1, q.CountKind(KindSpawnWave, 2))
	assert.Equal(t, 2, q.Purge(2))
	assert.Equal(t, 2, q.Len())

	got := drain(q, 100)
	require.Len(t, got, 2)
	assert.Equal(t, KindSpawnWave, got[0].Kind)
	assert.Equal(t, KindRecycle, got[1].Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "damage", KindDamage.String())
	assert.Equal(t, "spawn_wave", KindSpawnWave.String())
	assert.Equal(t, "recycle", KindRecycle.String())
}
