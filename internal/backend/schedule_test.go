package backend

import (
	"testing"
	"time"
)

func TestScheduleAdvancesOnFixedGrid(t *testing.T) {
	start := time.Unix(1000, 0)
	s := newSchedule(start, 200*time.Millisecond)
	if got := s.deadline(); !got.Equal(start.Add(200 * time.Millisecond)) {
		t.Fatalf("expected first deadline at +200ms, got %v", got.Sub(start))
	}
	// Late wake-ups must not push the grid later.
	fired := s.advance(start.Add(250 * time.Millisecond))
	if !fired.Equal(start.Add(200 * time.Millisecond)) {
		t.Fatalf("expected fired slot +200ms, got %v", fired.Sub(start))
	}
	if got := s.deadline(); !got.Equal(start.Add(400 * time.Millisecond)) {
		t.Fatalf("expected next deadline +400ms, got %v", got.Sub(start))
	}
	s.advance(start.Add(430 * time.Millisecond))
	if got := s.deadline(); !got.Equal(start.Add(600 * time.Millisecond)) {
		t.Fatalf("expected next deadline +600ms, got %v", got.Sub(start))
	}
}

func TestScheduleSkipsMissedSlots(t *testing.T) {
	start := time.Unix(1000, 0)
	s := newSchedule(start, 100*time.Millisecond)
	fired := s.advance(start.Add(550 * time.Millisecond))
	if !fired.Equal(start.Add(100 * time.Millisecond)) {
		t.Fatalf("expected first slot to fire, got %v", fired.Sub(start))
	}
	if got := s.deadline(); !got.Equal(start.Add(600 * time.Millisecond)) {
		t.Fatalf("expected next deadline +600ms after skipping, got %v", got.Sub(start))
	}
}

func TestScheduleExactBoundaryMovesToNextSlot(t *testing.T) {
	start := time.Unix(1000, 0)
	s := newSchedule(start, 100*time.Millisecond)
	s.advance(start.Add(200 * time.Millisecond))
	if got := s.deadline(); !got.Equal(start.Add(300 * time.Millisecond)) {
		t.Fatalf("expected +300ms, got %v", got.Sub(start))
	}
}

func TestBoundedDeadline(t *testing.T) {
	start := time.Unix(1000, 0)
	s := newSchedule(start, 100*time.Millisecond)
	now := start.Add(30 * time.Millisecond)
	if got := s.boundedDeadline(now); !got.Equal(start.Add(100 * time.Millisecond)) {
		t.Fatalf("expected pending slot, got %v", got.Sub(start))
	}
	late := start.Add(120 * time.Millisecond)
	if got := s.boundedDeadline(late); !got.Equal(start.Add(200 * time.Millisecond)) {
		t.Fatalf("expected the slot after the due one, got %v", got.Sub(start))
	}
}

func TestBoundedDeadlineStaysOnGrid(t *testing.T) {
	start := time.Unix(1000, 0)
	interval := 100 * time.Millisecond
	s := newSchedule(start, interval)
	for _, offset := range []time.Duration{100, 150, 199, 200, 350, 999} {
		now := start.Add(offset * time.Millisecond)
		got := s.boundedDeadline(now)
		if !got.After(now) {
			t.Fatalf("offset %dms: deadline %v not after now", offset, got.Sub(start))
		}
		if got.Sub(now) > interval {
			t.Fatalf("offset %dms: wait %v exceeds one interval", offset, got.Sub(now))
		}
		if got.Sub(start)%interval != 0 {
			t.Fatalf("offset %dms: deadline %v is off the grid", offset, got.Sub(start))
		}
	}
}
