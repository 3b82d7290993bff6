package engine

import "time"

// Loop is a repeating frame driver. Stop is final: once stopped, step is
// never invoked again even if the scheduler already snapshotted the frame
type Loop struct {
	handle Handle
	live   bool
	frames uint64
}

// StartLoop registers step to run every scheduler frame
func StartLoop(s *Scheduler, step func(dt time.Duration)) *Loop {
	l := &Loop{live: true}
	l.handle = s.OnFrame(func(dt time.Duration) {
		if !l.live {
			return
		}
		l.frames++
		step(dt)
	})
	return l
}

// Stop halts the loop. Idempotent
func (l *Loop) Stop() {
	if l == nil || !l.live {
		return
	}
	l.live = false
	l.handle.Cancel()
}

// Running reports whether the loop will step again
func (l *Loop) Running() bool {
	return l != nil && l.live
}

// Frames returns how many steps have run
func (l *Loop) Frames() uint64 {
	return l.frames
}
