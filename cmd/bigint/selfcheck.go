package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"bigint/internal/check"
	"bigint/internal/selfcheck"
	"bigint/internal/trace"
)

// errChecksFailed makes the process exit non-zero after the report is printed.
var errChecksFailed = errors.New("self-check failed")

func newSelfcheckCmd(a *app) *cobra.Command {
	var (
		jobs       int
		iterations int
		maxLimbs   int
		seed       uint64
		uiValue    string
		only       []string
	)
	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify the arithmetic against an independent implementation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			sc := a.cfg.SelfCheck
			if flags.Changed("jobs") {
				sc.Jobs = jobs
			}
			if flags.Changed("iterations") {
				sc.Iterations = iterations
			}
			if flags.Changed("max-limbs") {
				sc.MaxLimbs = maxLimbs
			}
			if flags.Changed("seed") {
				sc.Seed = seed
			}
			if flags.Changed("ui") {
				sc.UI = uiValue
			}
			mode, err := readUIMode(sc.UI)
			if err != nil {
				return err
			}
			if sc.Jobs < 0 || sc.Iterations < 0 || sc.MaxLimbs < 0 {
				return errors.New("--jobs, --iterations and --max-limbs must not be negative")
			}

			opts := selfcheck.Options{
				Jobs:       sc.Jobs,
				Iterations: sc.Iterations,
				Seed:       sc.Seed,
				MaxLimbs:   sc.MaxLimbs,
				Only:       only,
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			done := a.timer.Start("run")
			var res *check.Result
			if shouldUseTUI(mode) {
				res, err = runSelfcheckWithUI(ctx, out, "selfcheck", opts)
			} else {
				res, err = selfcheck.Run(ctx, opts)
			}
			if res != nil {
				done(fmt.Sprintf("%d checks", res.Count()))
				if rerr := res.Report(out); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return err
			}
			if !res.Passed() {
				dumpRing(cmd.ErrOrStderr(), trace.FromContext(ctx))
				return errors.Wrapf(errChecksFailed, "%d of %d checks", res.Failures(), res.Count())
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&jobs, "jobs", 0, "parallel suites (0 = GOMAXPROCS)")
	flags.IntVar(&iterations, "iterations", 200, "random cases per suite")
	flags.IntVar(&maxLimbs, "max-limbs", 8, "largest random operand, in limbs")
	flags.Uint64Var(&seed, "seed", 1, "random seed")
	flags.StringVar(&uiValue, "ui", "auto", "progress UI (auto|on|off)")
	flags.StringSliceVar(&only, "suite", nil, fmt.Sprintf("run only these suites %v", selfcheck.Names()))
	return cmd
}

// dumpRing writes the in-memory trace, if the tracer keeps one.
func dumpRing(w io.Writer, t trace.Tracer) {
	ring, ok := trace.FindRing(t)
	if !ok || len(ring.Snapshot()) == 0 {
		return
	}
	fmt.Fprintln(w, "recent trace events:")
	if err := ring.Dump(w, trace.FormatText); err != nil {
		fmt.Fprintf(w, "trace: dump error: %v\n", err)
	}
}
