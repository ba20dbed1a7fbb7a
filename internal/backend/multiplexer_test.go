package backend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/pet-dashboard/internal/terminal"
)

// scriptedReader hands out keys pushed by the test and records the deadlines
// it was asked to honour.
type scriptedReader struct {
	keys chan terminal.Key
	fail chan error

	mu        sync.Mutex
	deadlines []time.Duration
}

func newScriptedReader() *scriptedReader {
	return &scriptedReader{keys: make(chan terminal.Key, 8), fail: make(chan error, 1)}
}

func (r *scriptedReader) ReadKey(ctx context.Context) (terminal.Key, error) {
	if d, ok := ctx.Deadline(); ok {
		r.mu.Lock()
		r.deadlines = append(r.deadlines, time.Until(d))
		r.mu.Unlock()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case k := <-r.keys:
		return k, nil
	case err := <-r.fail:
		return "", err
	}
}

func (r *scriptedReader) maxDeadline() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var max time.Duration
	for _, d := range r.deadlines {
		if d > max {
			max = d
		}
	}
	return max
}

func nextEvent(t *testing.T, m *Multiplexer, within time.Duration) Event {
	t.Helper()
	select {
	case evt, ok := <-m.Events():
		if !ok {
			t.Fatalf("event stream closed")
		}
		return evt
	case <-time.After(within):
		t.Fatalf("no event within %v", within)
	}
	return Event{}
}

func TestMultiplexerEmitsTicks(t *testing.T) {
	m := NewMultiplexer(newScriptedReader(), 20*time.Millisecond)
	defer m.Stop()

	var last time.Time
	for i := 0; i < 3; i++ {
		evt := nextEvent(t, m, time.Second)
		if evt.Kind != KindTick {
			t.Fatalf("expected tick, got %v", evt.Kind)
		}
		if gap := evt.At.Sub(last); !last.IsZero() && (gap <= 0 || gap%(20*time.Millisecond) != 0) {
			t.Fatalf("expected ticks on a 20ms grid, got gap %v", gap)
		}
		last = evt.At
	}
}

func TestMultiplexerDeliversInputBeforeNextTick(t *testing.T) {
	reader := newScriptedReader()
	m := NewMultiplexer(reader, time.Hour)
	defer m.Stop()

	reader.keys <- "a"
	reader.keys <- terminal.KeyDown
	for _, want := range []terminal.Key{"a", terminal.KeyDown} {
		evt := nextEvent(t, m, time.Second)
		if evt.Kind != KindInput || evt.Key != want || evt.Err != nil {
			t.Fatalf("expected input %q, got %#v", want, evt)
		}
	}
	if d := reader.maxDeadline(); d > time.Hour {
		t.Fatalf("input wait exceeded the tick interval: %v", d)
	}
}

func TestMultiplexerBoundsInputWaitByTick(t *testing.T) {
	reader := newScriptedReader()
	m := NewMultiplexer(reader, 30*time.Millisecond)
	defer m.Stop()

	nextEvent(t, m, time.Second)
	nextEvent(t, m, time.Second)
	if d := reader.maxDeadline(); d <= 0 || d > 30*time.Millisecond {
		t.Fatalf("expected input waits bounded by 30ms, got max %v", d)
	}
}

func TestMultiplexerEscalatesReadFailure(t *testing.T) {
	reader := newScriptedReader()
	m := NewMultiplexer(reader, time.Hour)
	defer m.Stop()

	boom := errors.New("tty gone")
	reader.fail <- boom
	evt := nextEvent(t, m, time.Second)
	if evt.Kind != KindInput || !errors.Is(evt.Err, boom) {
		t.Fatalf("expected escalated input failure, got %#v", evt)
	}
}

func TestMultiplexerStopClosesStream(t *testing.T) {
	m := NewMultiplexer(newScriptedReader(), 10*time.Millisecond)
	m.Stop()
	done := make(chan struct{})
	go func() {
		m.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("producers did not exit after Stop")
	}
	for range m.Events() {
	}
}

func TestKindString(t *testing.T) {
	if KindTick.String() != "tick" || KindInput.String() != "input" {
		t.Fatalf("unexpected kind names %q %q", KindTick, KindInput)
	}
}
