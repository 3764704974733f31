package trace

import "github.com/cockroachdb/errors"

// MultiTracer fans events out to several tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

// NewMultiTracer returns a tracer emitting to every one of tracers.
func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

// Emit forwards a copy of ev to each tracer so sinks can stamp their own Seq.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		cp := *ev
		tr.Emit(&cp)
	}
}

// Flush flushes every tracer and returns the combined error.
func (t *MultiTracer) Flush() error {
	var err error
	for _, tr := range t.tracers {
		err = errors.CombineErrors(err, tr.Flush())
	}
	return err
}

// Close closes every tracer and returns the combined error.
func (t *MultiTracer) Close() error {
	var err error
	for _, tr := range t.tracers {
		err = errors.CombineErrors(err, tr.Close())
	}
	return err
}

// Level returns the configured level.
func (t *MultiTracer) Level() Level { return t.level }
