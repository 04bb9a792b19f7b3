// Package stopwatch provides a cancellable fixed-interval counter.
//
// A Stopwatch does not read a clock: every tick adds exactly one interval to
// the elapsed value, so the displayed time advances in fixed steps. The
// ticking goroutine exists only while the stopwatch runs and is joined by
// Stop.
package stopwatch

import (
	"sync"
	"time"
)

// DefaultInterval is the tick period used by the LiveTest screen.
const DefaultInterval = 10 * time.Millisecond

// Stopwatch is a start/stop counter driven by a time.Ticker.
type Stopwatch struct {
	interval time.Duration

	mu      sync.Mutex
	elapsed time.Duration
	running bool
	stop    chan struct{}
	done    chan struct{}
	ticks   chan time.Duration
}

// New creates a stopped stopwatch. A non-positive interval selects
// DefaultInterval.
func New(interval time.Duration) *Stopwatch {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Stopwatch{interval: interval}
}

// Interval returns the tick period.
func (s *Stopwatch) Interval() time.Duration { return s.interval }

// Start begins ticking. It is a no-op when already running.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.ticks = make(chan time.Duration, 1)

	go s.run(s.stop, s.done, s.ticks)
}

func (s *Stopwatch) run(stop <-chan struct{}, done chan<- struct{}, ticks chan time.Duration) {
	defer close(done)
	defer close(ticks)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.elapsed += s.interval
			e := s.elapsed
			s.mu.Unlock()
			publish(ticks, e)
		}
	}
}

// publish keeps only the most recent value in the single-slot channel.
func publish(ch chan time.Duration, e time.Duration) {
	select {
	case ch <- e:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- e:
	default:
	}
}

// Stop halts ticking and waits for the ticking goroutine to exit. The
// elapsed value is frozen. Stop is idempotent.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done
}

// Reset stops the stopwatch and zeroes the elapsed value.
func (s *Stopwatch) Reset() {
	s.Stop()
	s.mu.Lock()
	s.elapsed = 0
	s.mu.Unlock()
}

// Elapsed returns the accumulated time.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Running reports whether the stopwatch is ticking.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Ticks returns the channel carrying the latest elapsed value of the current
// run. It is closed when the run stops. Nil when the stopwatch has never been
// started.
func (s *Stopwatch) Ticks() <-chan time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}
