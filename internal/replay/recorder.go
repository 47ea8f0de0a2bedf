// internal/replay/recorder.go
package replay

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"math-battle/internal/event"
)

// Entry — одно событие трассы с отметкой логического времени.
type Entry struct {
	AtMs    int64              `msgpack:"at_ms"`
	Type    event.EventType    `msgpack:"type"`
	Payload msgpack.RawMessage `msgpack:"payload,omitempty"`
}

// DecodePayload unpacks the payload into v, which should be a pointer to the
// payload type matching Type.
func (e Entry) DecodePayload(v interface{}) error {
	if len(e.Payload) == 0 {
		return nil
	}
	if err := msgpack.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Type, err)
	}
	return nil
}

// Trace is the file format written by Recorder.Encode.
type Trace struct {
	Seed    int64   `msgpack:"seed"`
	Entries []Entry `msgpack:"entries"`
}

// Recorder слушает все события сессии и складывает их в трассу.
type Recorder struct {
	clock   func() int64
	seed    int64
	entries []Entry
	err     error
}

// NewRecorder creates a recorder stamping entries with clock().
func NewRecorder(seed int64, clock func() int64) *Recorder {
	return &Recorder{clock: clock, seed: seed}
}

// Attach subscribes the recorder to every event type.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.SubscribeAll(r)
}

func (r *Recorder) OnEvent(e event.Event) {
	entry := Entry{Type: e.Type}
	if r.clock != nil {
		entry.AtMs = r.clock()
	}
	if e.Data != nil {
		payload, err := msgpack.Marshal(e.Data)
		if err != nil {
			if r.err == nil {
				r.err = fmt.Errorf("failed to encode %s payload: %w", e.Type, err)
			}
			return
		}
		entry.Payload = payload
	}
	r.entries = append(r.entries, entry)
}

// Entries returns the recorded entries.
func (r *Recorder) Entries() []Entry { return r.entries }

// Err returns the first payload encoding error, if any.
func (r *Recorder) Err() error { return r.err }

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.entries = nil
	r.err = nil
}

// Encode writes the trace to w.
func (r *Recorder) Encode(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	if err := msgpack.NewEncoder(w).Encode(&Trace{Seed: r.seed, Entries: r.entries}); err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	return nil
}

// Decode reads a trace written by Encode.
func Decode(rd io.Reader) (*Trace, error) {
	var t Trace
	if err := msgpack.NewDecoder(rd).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode trace: %w", err)
	}
	return &t, nil
}

// Count returns how many entries of a type the trace holds.
func (t *Trace) Count(typ event.EventType) int {
	n := 0
	for _, e := range t.Entries {
		if e.Type == typ {
			n++
		}
	}
	return n
}
