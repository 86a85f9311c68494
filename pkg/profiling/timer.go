// Package profiling records wall-clock spans for the --timing flag.
package profiling

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Stopper is an interface for stopping a timed span.
type Stopper interface {
	Stop()
}

type span struct {
	name     string
	start    time.Time
	duration time.Duration
	timer    *Timer
}

// Stop completes the timing for this span.
func (s *span) Stop() {
	s.timer.mu.Lock()
	defer s.timer.mu.Unlock()
	s.duration = s.timer.now().Sub(s.start)
}

// Timer collects spans in start order. A nil *Timer is valid and records
// nothing, so callers never need to branch on whether timing is enabled.
type Timer struct {
	mu      sync.Mutex
	started time.Time
	spans   []*span
	now     func() time.Time
}

// New creates an enabled Timer.
func New() *Timer {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Timer {
	return &Timer{started: now(), now: now}
}

// Start begins a new timed span with the given name.
// It returns a Stopper which must be used to end the span, typically via defer.
func (t *Timer) Start(name string) Stopper {
	if t == nil {
		return noopStopper{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	s := &span{name: name, start: t.now(), timer: t}
	t.spans = append(t.spans, s)
	return s
}

// Summarize prints every span with its share of the total run time.
func (t *Timer) Summarize(w io.Writer) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	total := t.now().Sub(t.started)

	fmt.Fprintln(w, "--- Timing Profile ---")
	for _, s := range t.spans {
		percentage := 0.0
		if total > 0 {
			percentage = (float64(s.duration) / float64(total)) * 100
		}
		fmt.Fprintf(w, "- %s (%v, %.1f%%)\n", s.name, s.duration.Round(100*time.Microsecond), percentage)
	}
	fmt.Fprintf(w, "total %v\n", total.Round(100*time.Microsecond))
}

// noopStopper is used when timing is disabled.
type noopStopper struct{}

func (s noopStopper) Stop() {}
