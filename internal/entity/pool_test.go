package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-battle/internal/component"
)

func TestEnemyPool_AcquireAdvancesCursor(t *testing.T) {
	p := NewEnemyPool(3, 2)
	require.Equal(t, 3, p.Len())

	for i := 0; i < 3; i++ {
		e, grown := p.Acquire()
		assert.False(t, grown)
		assert.Equal(t, i, e.Slot)
	}
	assert.Equal(t, 3, p.SpawnCursor())
	assert.True(t, p.Exhausted())
	assert.Equal(t, 3, p.ActiveCount())
}

func TestEnemyPool_GrowsWhenExhausted(t *testing.T) {
	p := NewEnemyPool(50, 10)
	for i := 0; i < 50; i++ {
		e, _ := p.Acquire()
		if i > 0 {
			e.Phase = component.PhaseDying
			p.Release(e.Slot)
		}
	}
	require.Equal(t, 50, p.SpawnCursor())
	require.Equal(t, 1, p.ActiveCount())

	e, grown := p.Acquire()
	assert.True(t, grown)
	assert.Equal(t, 60, p.Len())
	assert.Equal(t, 50, e.Slot)
	assert.Equal(t, 51, p.SpawnCursor())
	assert.LessOrEqual(t, p.SpawnCursor(), p.Len())
	assert.Equal(t, 2, p.ActiveCount())
}

func TestEnemyPool_RecycledSlotsKeepUniqueIDs(t *testing.T) {
	p := NewEnemyPool(2, 2)
	first, _ := p.Acquire()
	first.Phase = component.PhaseDying
	p.Release(first.Slot)
	first.Reset()
	require.Equal(t, component.PhasePooled, first.Phase)

	seen := map[int]bool{first.Slot: true}
	for i := 0; i < 5; i++ {
		e, _ := p.Acquire()
		assert.False(t, seen[e.Slot], "slot %d handed out twice", e.Slot)
		seen[e.Slot] = true
	}
	assert.Equal(t, 6, p.SpawnCursor())
	assert.Equal(t, 6, p.Len())
}

func TestEnemyPool_ReleaseKeepsOrder(t *testing.T) {
	p := NewEnemyPool(4, 1)
	for i := 0; i < 4; i++ {
		p.Acquire()
	}
	assert.True(t, p.Release(1))
	assert.False(t, p.Release(1))
	assert.False(t, p.IsActive(1))
	assert.True(t, p.IsActive(2))

	var slots []int
	for _, e := range p.Active() {
		slots = append(slots, e.Slot)
	}
	assert.Equal(t, []int{0, 2, 3}, slots)
}

func TestEnemyPool_SlotBounds(t *testing.T) {
	p := NewEnemyPool(2, 0)
	assert.Nil(t, p.Slot(-1))
	assert.Nil(t, p.Slot(2))
	assert.NotNil(t, p.Slot(1))
	assert.Equal(t, 1, p.GrowBatch())
}

func TestEnemyPool_EachSkipsPooled(t *testing.T) {
	p := NewEnemyPool(5, 1)
	a, _ := p.Acquire()
	b, _ := p.Acquire()
	a.Phase = component.PhaseApproaching
	b.Phase = component.PhaseDying
	c, _ := p.Acquire()
	c.Reset()

	var seen []int
	p.Each(func(e *component.Enemy) { seen = append(seen, e.Slot) })
	assert.Equal(t, []int{0, 1}, seen)
}
