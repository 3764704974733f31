// Package observ measures the phases of a single command.
package observ

import (
	"fmt"
	"io"
	"time"
)

// Phase is one timed step of a command.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer collects phases in the order they were started. It is not
// goroutine-safe.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

// NewTimer returns an empty Timer.
func NewTimer() *Timer { return &Timer{now: time.Now} }

// Start opens a phase. The returned func closes it with an optional note; a
// nil Timer hands out no-op closers.
func (t *Timer) Start(name string) func(note string) {
	if t == nil {
		return func(string) {}
	}
	idx := len(t.phases)
	t.phases = append(t.phases, Phase{Name: name})
	started := t.now()
	return func(note string) {
		p := &t.phases[idx]
		p.Dur = t.now().Sub(started)
		p.Note = note
	}
}

// Phases returns the recorded phases.
func (t *Timer) Phases() []Phase {
	if t == nil {
		return nil
	}
	return t.phases
}

// Total sums every phase.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, p := range t.Phases() {
		total += p.Dur
	}
	return total
}

// WriteSummary prints one line per phase and a total.
func (t *Timer) WriteSummary(w io.Writer) error {
	if _, err := io.WriteString(w, "timings:\n"); err != nil {
		return err
	}
	for _, p := range t.Phases() {
		line := fmt.Sprintf("  %-12s %9.3f ms", p.Name, toMillis(p.Dur))
		if p.Note != "" {
			line += "  (" + p.Note + ")"
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-12s %9.3f ms\n", "total", toMillis(t.Total()))
	return err
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
