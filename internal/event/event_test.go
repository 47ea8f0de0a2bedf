package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"math-battle/internal/component"
	"math-battle/internal/defs"
	"math-battle/internal/types"
)

type countingListener struct {
	seen []EventType
}

func (l *countingListener) OnEvent(e Event) { l.seen = append(l.seen, e.Type) }

func TestDispatcher_SubscribeDispatch(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.Subscribe(WaveSpawned, a)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: WaveSpawned})
	d.Dispatch(Event{Type: PlayerDamaged})

	assert.Equal(t, []EventType{EnemyKilled, WaveSpawned}, a.seen)
	assert.Equal(t, []EventType{EnemyKilled}, b.seen)

	d.Unsubscribe(EnemyKilled, a)
	d.Dispatch(Event{Type: EnemyKilled})
	assert.Len(t, a.seen, 2)
	assert.Len(t, b.seen, 2)
}

func TestDispatcher_SubscribeAllWithFunc(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.SubscribeAll(ListenerFunc(func(e Event) { got = append(got, e.Type) }))
	for _, typ := range AllTypes {
		d.Dispatch(Event{Type: typ})
	}
	assert.Equal(t, AllTypes, got)
}

func TestNewEnemyData(t *testing.T) {
	e := &component.Enemy{Slot: 3, Phase: component.PhaseAttacking, MonsterID: "bat"}
	e.Combatant = component.NewEnemyCombatant(e.ID(), defs.MonsterDefinition{BaseHealth: 50, AttackRange: 70, AttackIntervalMs: 1200}, 1)
	e.Combatant.Position = component.Position{X: 300, Y: 400}

	d := NewEnemyData(e)
	assert.Equal(t, types.EnemyID(3), d.ID)
	assert.Equal(t, "attacking", d.Phase)
	assert.Equal(t, component.AnimAttack, d.Animation)
	assert.Equal(t, 50, d.MaxHealth)
	assert.Equal(t, 300.0, d.Position.X)

	pooled := NewEnemyData(&component.Enemy{Slot: 1})
	assert.Zero(t, pooled.MaxHealth)
	assert.Equal(t, "pooled", pooled.Phase)
}
