package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/pet-dashboard/internal/logging/events"
	"github.com/atomicstack/pet-dashboard/internal/terminal"
)

// DefaultTickRate is the redraw cadence when none is configured.
const DefaultTickRate = 200 * time.Millisecond

// Kind distinguishes the events delivered by the multiplexer.
type Kind int

const (
	KindInput Kind = iota
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindTick:
		return "tick"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is either a key press or a tick. An input event with a non-nil Err
// reports that the input producer stopped and no further keys will arrive.
type Event struct {
	Kind Kind
	Key  terminal.Key
	At   time.Time
	Err  error
}

// KeyReader blocks for the next key press until ctx is done.
type KeyReader interface {
	ReadKey(ctx context.Context) (terminal.Key, error)
}

// Multiplexer merges periodic ticks and key presses into one ordered stream.
type Multiplexer struct {
	reader KeyReader
	sched  *schedule

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewMultiplexer starts the ticker and input producers.
func NewMultiplexer(reader KeyReader, interval time.Duration) *Multiplexer {
	if interval <= 0 {
		interval = DefaultTickRate
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Multiplexer{
		reader: reader,
		sched:  newSchedule(time.Now(), interval),
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	m.wg.Add(2)
	go m.tick()
	go m.poll()

	go func() {
		m.wg.Wait()
		close(m.events)
	}()

	return m
}

// Events returns the merged event stream. It is closed once both producers
// have exited after Stop.
func (m *Multiplexer) Events() <-chan Event {
	return m.events
}

// Stop cancels both producers. A producer blocked inside the key reader is
// released by its context; the reader's own pump stays parked on the terminal.
func (m *Multiplexer) Stop() {
	m.cancel()
}

// Wait blocks until both producers have exited and the stream is closed.
func (m *Multiplexer) Wait() {
	m.wg.Wait()
}

func (m *Multiplexer) emit(evt Event) bool {
	select {
	case <-m.ctx.Done():
		return false
	case m.events <- evt:
		return true
	}
}

func (m *Multiplexer) tick() {
	defer m.wg.Done()

	timer := time.NewTimer(time.Until(m.sched.deadline()))
	defer timer.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case now := <-timer.C:
			fired := m.sched.advance(now)
			if !m.emit(Event{Kind: KindTick, At: fired}) {
				return
			}
			timer.Reset(time.Until(m.sched.deadline()))
		}
	}
}

func (m *Multiplexer) poll() {
	defer m.wg.Done()

	for {
		deadline := m.sched.boundedDeadline(time.Now())
		ctx, cancel := context.WithDeadline(m.ctx, deadline)
		key, err := m.reader.ReadKey(ctx)
		cancel()

		switch {
		case err == nil:
			events.Input.Key(key.String())
			if !m.emit(Event{Kind: KindInput, Key: key, At: time.Now()}) {
				return
			}
		case m.ctx.Err() != nil:
			return
		case errors.Is(err, context.DeadlineExceeded):
			continue
		default:
			err = fmt.Errorf("read terminal input: %w", err)
			events.Input.Failure(err)
			m.emit(Event{Kind: KindInput, At: time.Now(), Err: err})
			return
		}
	}
}
