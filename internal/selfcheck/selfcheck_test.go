package selfcheck

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"

	"bigint/internal/check"
	"bigint/internal/trace"
)

func TestRunAllSuitesPass(t *testing.T) {
	res, err := Run(context.Background(), Options{Jobs: 2, Iterations: 50, Seed: 7, MaxLimbs: 4})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Passed() {
		t.Fatalf("selfcheck failed: %d of %d checks", res.Failures(), res.Count())
	}
	if got, want := len(res.Children()), len(Suites()); got != want {
		t.Fatalf("children = %d, want %d", got, want)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Jobs: 1, Iterations: 20, Seed: 99, MaxLimbs: 3, Only: []string{"roundtrip"}}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	opts.Jobs = 4
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Count() != b.Count() {
		t.Fatalf("check counts differ between runs: %d vs %d", a.Count(), b.Count())
	}
}

func TestRunUnknownSuite(t *testing.T) {
	_, err := Run(context.Background(), Options{Only: []string{"nope"}})
	if !errors.Is(err, ErrUnknownSuite) {
		t.Fatalf("err = %v, want ErrUnknownSuite", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, Options{Iterations: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res == nil {
		t.Fatalf("expected a partial result")
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestRunReportsProgress(t *testing.T) {
	sink := &recordingSink{}
	_, err := Run(context.Background(), Options{Iterations: 5, Only: []string{"scalar", "pow2"}, Progress: sink})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	final := map[string]Status{}
	for _, ev := range sink.events {
		final[ev.Suite] = ev.Status
	}
	for _, name := range []string{"scalar", "pow2"} {
		if final[name] != StatusDone {
			t.Fatalf("suite %s ended as %q, want done", name, final[name])
		}
	}
	if len(sink.events) != 6 {
		t.Fatalf("events = %d, want 6 (queued, working, done per suite)", len(sink.events))
	}
}

func TestRunEmitsSuiteSpans(t *testing.T) {
	ring := trace.NewRingTracer(256, trace.LevelSuite)
	ctx := trace.WithTracer(context.Background(), ring)
	if _, err := Run(ctx, Options{Iterations: 3, Only: []string{"multiply"}}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	names := map[string]int{}
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanEnd {
			names[ev.Name]++
		}
		if ev.Scope == trace.ScopeOp {
			t.Fatalf("op span %q emitted at suite level", ev.Name)
		}
	}
	if names["selfcheck"] != 1 || names["multiply"] != 1 {
		t.Fatalf("span ends = %v", names)
	}
}

func TestSuiteCatchesFailures(t *testing.T) {
	res := check.NewResult("broken")
	broken := Suite{Name: "broken", Run: func(e *Env, r *check.Result) {
		e.Loop(func(i int) { check.Equal(r, i%2, 0, "even") })
	}}
	env := &Env{ctx: context.Background(), iterations: 4, maxLimbs: 1}
	broken.Run(env, res)
	if res.Passed() || res.Failures() != 2 || res.Count() != 4 {
		t.Fatalf("count=%d failed=%d", res.Count(), res.Failures())
	}
}
