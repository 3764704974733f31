// Package selfcheck runs the arithmetic laws of package bignum as suites of
// randomized checks, in parallel, against an independent oracle.
package selfcheck

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"bigint/internal/check"
	"bigint/internal/trace"
)

// ErrUnknownSuite is returned when Options.Only names a suite that does not exist.
var ErrUnknownSuite = errors.New("unknown suite")

// Options configures Run.
type Options struct {
	Jobs       int    // <= 0 means GOMAXPROCS
	Iterations int    // random cases per suite; <= 0 means 200
	Seed       uint64 // same seed, same cases
	MaxLimbs   int    // largest random operand; <= 0 means 8
	Only       []string
	Progress   Sink
}

// Run executes the selected suites and returns their aggregated result. The
// error is non-nil only when the run itself could not complete; failed checks
// are reported through the result.
func Run(ctx context.Context, opts Options) (*check.Result, error) {
	suites, err := selectSuites(opts.Only)
	if err != nil {
		return nil, err
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	if opts.Iterations <= 0 {
		opts.Iterations = 200
	}
	if opts.MaxLimbs <= 0 {
		opts.MaxLimbs = 8
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeSuite, "selfcheck", trace.ParentSpan(ctx)).
		WithExtra("suites", strconv.Itoa(len(suites))).
		WithExtra("seed", strconv.FormatUint(opts.Seed, 10))

	for _, s := range suites {
		emit(opts.Progress, Event{Suite: s.Name, Status: StatusQueued})
	}

	results := make([]*check.Result, len(suites))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, s := range suites {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = runSuite(gctx, s, opts, tracer, span.ID())
			return gctx.Err()
		})
	}
	err = g.Wait()

	root := check.NewResult("selfcheck")
	for _, res := range results {
		root.Aggregate(res)
	}
	span.WithExtra("checks", strconv.Itoa(root.Count())).
		WithExtra("failed", strconv.Itoa(root.Failures())).
		End(verdict(root))
	if err != nil {
		return root, errors.Wrap(err, "selfcheck interrupted")
	}
	return root, nil
}

func runSuite(ctx context.Context, s Suite, opts Options, tracer trace.Tracer, parent uint64) *check.Result {
	started := time.Now()
	emit(opts.Progress, Event{Suite: s.Name, Status: StatusWorking})
	span := trace.Begin(tracer, trace.ScopeSuite, s.Name, parent)

	env := &Env{
		ctx:        ctx,
		rng:        rand.New(rand.NewPCG(opts.Seed, suiteStream(s.Name))),
		iterations: opts.Iterations,
		maxLimbs:   opts.MaxLimbs,
		tracer:     tracer,
		span:       span.ID(),
	}
	res := check.NewResult(s.Name)
	s.Run(env, res)

	status := StatusDone
	if !res.Passed() {
		status = StatusFailed
		for _, o := range res.Outcomes() {
			if !o.Passed {
				trace.Point(tracer, trace.ScopeSuite, "failure", o.Location+": "+o.Message, span.ID())
			}
		}
	}
	span.WithExtra("checks", strconv.Itoa(res.Count())).End(verdict(res))
	emit(opts.Progress, Event{
		Suite:   s.Name,
		Status:  status,
		Checks:  res.Count(),
		Failed:  res.Failures(),
		Elapsed: time.Since(started),
	})
	return res
}

// suiteStream keeps a suite's cases stable when other suites are added or
// filtered out.
func suiteStream(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name)) //nolint:errcheck // hash writes never fail
	return h.Sum64()
}

func selectSuites(only []string) ([]Suite, error) {
	all := Suites()
	if len(only) == 0 {
		return all, nil
	}
	selected := make([]Suite, 0, len(only))
	for _, name := range only {
		idx := slices.IndexFunc(all, func(s Suite) bool { return s.Name == name })
		if idx < 0 {
			return nil, errors.Wrapf(ErrUnknownSuite, "%q", name)
		}
		selected = append(selected, all[idx])
	}
	return selected, nil
}

// Names lists the suite names in run order.
func Names() []string {
	all := Suites()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

func verdict(r *check.Result) string {
	if r.Passed() {
		return "ok"
	}
	return "failed"
}
