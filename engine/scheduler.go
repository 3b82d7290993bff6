package engine

import (
	"sync"
	"time"
)

// Scheduler runs one-shot timers, intervals and per-frame callbacks on the
// goroutine that calls Advance. Entries are owned by that goroutine; only Post
// is safe from elsewhere
type Scheduler struct {
	clock TimeProvider

	entries []*entry
	nextID  uint64
	last    time.Time

	mu     sync.Mutex
	posted []func()
}

type entryKind uint8

const (
	kindTimer entryKind = iota
	kindInterval
	kindFrame
)

type entry struct {
	id        uint64
	kind      entryKind
	due       time.Time
	interval  time.Duration
	fire      func()
	frame     func(dt time.Duration)
	cancelled bool
}

// Handle identifies a scheduled entry. The zero Handle is inert
type Handle struct {
	e *entry
	s *Scheduler
}

// Cancel removes the entry before its next invocation. Safe to call repeatedly
func (h Handle) Cancel() {
	if h.e == nil || h.e.cancelled {
		return
	}
	h.e.cancelled = true
	h.s.remove(h.e)
}

// Active reports whether the entry will still run
func (h Handle) Active() bool {
	return h.e != nil && !h.e.cancelled
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock:   clock,
		entries: make([]*entry, 0, 32),
		last:    clock.Now(),
	}
}

// Now returns the scheduler clock reading
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After runs fn once, d after now
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.add(&entry{kind: kindTimer, due: s.clock.Now().Add(d), fire: fn})
}

// Every runs fn each d, first call d after now. Non-positive periods clamp to 1ms
func (s *Scheduler) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(&entry{kind: kindInterval, due: s.clock.Now().Add(d), interval: d, fire: fn})
}

// OnFrame runs fn once per Advance with the time since the previous Advance
func (s *Scheduler) OnFrame(fn func(dt time.Duration)) Handle {
	return s.add(&entry{kind: kindFrame, frame: fn})
}

// Post queues fn to run at the start of the next Advance. Goroutine-safe
func (s *Scheduler) Post(fn func()) {
	s.mu.Lock()
	s.posted = append(s.posted, fn)
	s.mu.Unlock()
}

// Pending returns the number of live entries
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// Advance drains posted work, runs frame callbacks, then fires due timers in
// due order. An interval fires at most once per call and keeps its phase.
// Entries created during this call wait for the next one
func (s *Scheduler) Advance() {
	s.mu.Lock()
	posted := s.posted
	s.posted = nil
	s.mu.Unlock()
	for _, fn := range posted {
		fn()
	}

	now := s.clock.Now()
	dt := now.Sub(s.last)
	if dt < 0 {
		dt = 0
	}
	s.last = now
	horizon := s.nextID

	// Snapshot: callbacks may cancel or add entries
	frames := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.kind == kindFrame && e.id < horizon {
			frames = append(frames, e)
		}
	}
	for _, e := range frames {
		if !e.cancelled {
			e.frame(dt)
		}
	}

	for {
		e := s.earliestDue(now, horizon)
		if e == nil {
			return
		}
		if e.kind == kindInterval {
			e.due = e.due.Add(e.interval)
			if !e.due.After(now) {
				// Missed periods after a stall collapse into this call
				skipped := now.Sub(e.due)/e.interval + 1
				e.due = e.due.Add(skipped * e.interval)
			}
		} else {
			e.cancelled = true
			s.remove(e)
		}
		e.fire()
	}
}

func (s *Scheduler) earliestDue(now time.Time, horizon uint64) *entry {
	var best *entry
	for _, e := range s.entries {
		if e.kind == kindFrame || e.id >= horizon || e.due.After(now) {
			continue
		}
		if best == nil || e.due.Before(best.due) || (e.due.Equal(best.due) && e.id < best.id) {
			best = e
		}
	}
	return best
}

func (s *Scheduler) add(e *entry) Handle {
	e.id = s.nextID
	s.nextID++
	s.entries = append(s.entries, e)
	return Handle{e: e, s: s}
}

func (s *Scheduler) remove(target *entry) {
	for i, e := range s.entries {
		if e == target {
			copy(s.entries[i:], s.entries[i+1:])
			s.entries[len(s.entries)-1] = nil
			s.entries = s.entries[:len(s.entries)-1]
			return
		}
	}
}
