// internal/entity/pool.go
package entity

import "math-battle/internal/component"

// EnemyPool — арена слотов врагов с монотонным курсором появления.
// Слоты адресуются стабильными индексами и никогда не освобождаются:
// когда курсор доходит до конца, пул растёт пачкой новых слотов.
type EnemyPool struct {
	slots       []*component.Enemy
	spawnCursor int
	active      []int // Индексы слотов на поле, в порядке появления
	growBatch   int
}

// NewEnemyPool создаёт пул заданного размера.
func NewEnemyPool(size, growBatch int) *EnemyPool {
	if growBatch < 1 {
		growBatch = 1
	}
	p := &EnemyPool{growBatch: growBatch}
	p.Grow(size)
	return p
}

// Len returns the number of slots in the pool.
func (p *EnemyPool) Len() int { return len(p.slots) }

// SpawnCursor returns the index of the next slot to spawn into.
func (p *EnemyPool) SpawnCursor() int { return p.spawnCursor }

// Remaining returns how many slots can be spawned before the pool must grow.
func (p *EnemyPool) Remaining() int { return len(p.slots) - p.spawnCursor }

// Exhausted reports whether the cursor has reached the end of the pool.
func (p *EnemyPool) Exhausted() bool { return p.spawnCursor >= len(p.slots) }

// ActiveCount returns the size of the active set.
func (p *EnemyPool) ActiveCount() int { return len(p.active) }

// GrowBatch returns the number of slots added when the pool runs out.
func (p *EnemyPool) GrowBatch() int { return p.growBatch }

// Grow appends n pooled slots.
func (p *EnemyPool) Grow(n int) {
	for i := 0; i < n; i++ {
		p.slots = append(p.slots, &component.Enemy{Slot: len(p.slots), Phase: component.PhasePooled})
	}
}

// Slot returns the enemy in slot i, or nil when i is out of range.
func (p *EnemyPool) Slot(i int) *component.Enemy {
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	return p.slots[i]
}

// Acquire takes the slot under the cursor, advances the cursor and adds the
// slot to the active set. An exhausted pool grows by one batch first; grown
// reports whether that happened.
func (p *EnemyPool) Acquire() (e *component.Enemy, grown bool) {
	if p.Exhausted() {
		p.Grow(p.growBatch)
		grown = true
	}
	e = p.slots[p.spawnCursor]
	p.spawnCursor++
	p.active = append(p.active, e.Slot)
	return e, grown
}

// Release removes a slot from the active set. The slot keeps its state so a
// dying enemy can finish its exit before Reset.
func (p *EnemyPool) Release(slot int) bool {
	for i, s := range p.active {
		if s == slot {
			p.active = append(p.active[:i], p.active[i+1:]...)
			return true
		}
	}
	return false
}

// IsActive reports whether the slot is in the active set.
func (p *EnemyPool) IsActive(slot int) bool {
	for _, s := range p.active {
		if s == slot {
			return true
		}
	}
	return false
}

// Active returns the enemies of the active set in spawn order.
func (p *EnemyPool) Active() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(p.active))
	for _, s := range p.active {
		out = append(out, p.slots[s])
	}
	return out
}

// Each calls fn for every slot that is not pooled, including dying ones.
func (p *EnemyPool) Each(fn func(e *component.Enemy)) {
	for _, e := range p.slots[:p.spawnCursor] {
		if e.Phase != component.PhasePooled {
			fn(e)
		}
	}
}
