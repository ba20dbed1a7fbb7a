package backend

import (
	"sync"
	"time"
)

// schedule tracks fire times on a fixed grid start+k*interval. Both producers
// read it: the ticker to sleep until the next slot, the input poller to bound
// its wait by the same slot.
type schedule struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newSchedule(start time.Time, interval time.Duration) *schedule {
	return &schedule{interval: interval, next: start.Add(interval)}
}

// deadline returns the next scheduled fire time.
func (s *schedule) deadline() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// boundedDeadline returns the next fire time. When that slot is already due
// and the ticker has not advanced it yet, it returns the first grid slot
// after now, never a point past the tick that follows.
func (s *schedule) boundedDeadline(now time.Time) time.Time {
	d := s.deadline()
	if !d.After(now) {
		return d.Add((now.Sub(d)/s.interval + 1) * s.interval)
	}
	return d
}

// advance consumes the slot that is due at now and returns its fire time.
// Slots that were missed entirely are skipped rather than replayed.
func (s *schedule) advance(now time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	fired := s.next
	s.next = s.next.Add(s.interval)
	if !s.next.After(now) {
		behind := now.Sub(s.next)/s.interval + 1
		s.next = s.next.Add(behind * s.interval)
	}
	return fired
}
