package engine

import "time"

// Scope collects the disposers of everything a mounted overlay acquires.
// Release runs them once, newest first; acquisitions after release are
// refused so a late callback cannot resurrect work
type Scope struct {
	sched     *Scheduler
	disposers []func()
	released  bool
}

// NewScope creates a scope whose timers run on sched
func NewScope(sched *Scheduler) *Scope {
	return &Scope{sched: sched}
}

// Scheduler exposes the backing scheduler
func (sc *Scope) Scheduler() *Scheduler {
	return sc.sched
}

// Now returns the scheduler clock reading
func (sc *Scope) Now() time.Time {
	return sc.sched.Now()
}

// Defer registers fn to run on release. After release fn runs immediately
func (sc *Scope) Defer(fn func()) {
	if sc.released {
		fn()
		return
	}
	sc.disposers = append(sc.disposers, fn)
}

// After schedules fn once, cancelled on release
func (sc *Scope) After(d time.Duration, fn func()) Handle {
	if sc.released {
		return Handle{}
	}
	h := sc.sched.After(d, fn)
	sc.disposers = append(sc.disposers, h.Cancel)
	return h
}

// Every schedules fn periodically, cancelled on release
func (sc *Scope) Every(d time.Duration, fn func()) Handle {
	if sc.released {
		return Handle{}
	}
	h := sc.sched.Every(d, fn)
	sc.disposers = append(sc.disposers, h.Cancel)
	return h
}

// Loop starts a frame loop stopped on release. Returns nil once released
func (sc *Scope) Loop(step func(dt time.Duration)) *Loop {
	if sc.released {
		return nil
	}
	l := StartLoop(sc.sched, step)
	sc.disposers = append(sc.disposers, l.Stop)
	return l
}

// Post runs fn on the loop goroutine unless the scope is released by then.
// Goroutine-safe
func (sc *Scope) Post(fn func()) {
	sc.sched.Post(func() {
		if !sc.released {
			fn()
		}
	})
}

// Release disposes everything acquired. Idempotent
func (sc *Scope) Release() {
	if sc.released {
		return
	}
	sc.released = true
	for i := len(sc.disposers) - 1; i >= 0; i-- {
		sc.disposers[i]()
	}
	sc.disposers = nil
}

// Released reports whether Release has run
func (sc *Scope) Released() bool {
	return sc.released
}
