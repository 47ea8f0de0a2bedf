// internal/timer/queue.go
package timer

import (
	"container/heap"

	"math-battle/internal/types"
)

// Kind — что делает отложенное событие при срабатывании.
type Kind int

const (
	// KindDamage is the scheduled damage event: Amount is applied to Target.
	KindDamage Kind = iota
	// KindSpawnWave spawns the next wave.
	KindSpawnWave
	// KindRecycle returns a dying enemy slot (Target) to the pool.
	KindRecycle
)

func (k Kind) String() string {
	switch k {
	case KindDamage:
		return "damage"
	case KindSpawnWave:
		return "spawn_wave"
	case KindRecycle:
		return "recycle"
	}
	return "unknown"
}

// Event is a delayed action on the logical clock. Generation is the session
// token captured at scheduling time; handlers drop events whose token no
// longer matches the current session.
type Event struct {
	Kind       Kind
	Target     types.EntityID
	Source     types.EntityID
	Amount     int
	FireAt     int64 // Логическое время срабатывания, мс
	Generation uint64

	seq uint64
}

// Queue — очередь событий на логических часах, упорядоченная по FireAt.
// События с одинаковым FireAt срабатывают в порядке планирования.
// Не потокобезопасна: опрашивается один раз за тик из игрового цикла.
type Queue struct {
	items eventHeap
	seq   uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Schedule adds an event to the queue.
func (q *Queue) Schedule(e Event) {
	q.seq++
	e.seq = q.seq
	heap.Push(&q.items, e)
}

// PopDue removes and returns the earliest event with FireAt <= now.
func (q *Queue) PopDue(now int64) (Event, bool) {
	if len(q.items) == 0 || q.items[0].FireAt > now {
		return Event{}, false
	}
	return heap.Pop(&q.items).(Event), true
}

// Peek returns the earliest event without removing it.
func (q *Queue) Peek() (Event, bool) {
	if len(q.items) == 0 {
		return Event{}, false
	}
	return q.items[0], true
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.items) }

// CountKind returns the number of pending events of a kind for a generation.
func (q *Queue) CountKind(kind Kind, generation uint64) int {
	n := 0
	for _, e := range q.items {
		if e.Kind == kind && e.Generation == generation {
			n++
		}
	}
	return n
}

// Purge drops every event not belonging to generation and returns how many
// were removed. Stale events are harmless because handlers check the token;
// purging only keeps the queue small.
func (q *Queue) Purge(generation uint64) int {
	kept := q.items[:0]
	for _, e := range q.items {
		if e.Generation == generation {
			kept = append(kept, e)
		}
	}
	removed := len(q.items) - len(kept)
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = Event{}
	}
	q.items = kept
	heap.Init(&q.items)
	return removed
}

type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].FireAt != h[j].FireAt {
		return h[i].FireAt < h[j].FireAt
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(Event)) }

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
