package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigint/internal/config"
	"bigint/internal/observ"
	"bigint/internal/prof"
	"bigint/internal/trace"
)

type appKey struct{}

// appOf digs the app out of a command's context, if prepare ran.
func appOf(cmd *cobra.Command) *app {
	if cmd == nil || cmd.Context() == nil {
		return nil
	}
	a, _ := cmd.Context().Value(appKey{}).(*app)
	return a
}

func contextWithApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// prepare loads the config, lets explicitly set flags override it, and sets up
// colors and tracing.
func (a *app) prepare(cmd *cobra.Command) error {
	cmd.SetContext(contextWithApp(cmd.Context(), a))
	flags := cmd.Root().PersistentFlags()
	explicit, err := flags.GetString("config")
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "working directory")
	}
	cfg, path, err := config.Resolve(explicit, wd)
	if err != nil {
		return err
	}
	a.cfg, a.cfgPath = cfg, path

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"color", &a.cfg.Output.Color},
		{"trace", &a.cfg.Trace.Output},
		{"trace-level", &a.cfg.Trace.Level},
		{"trace-mode", &a.cfg.Trace.Mode},
	}
	for _, o := range overrides {
		if !flags.Changed(o.flag) {
			continue
		}
		if *o.dst, err = flags.GetString(o.flag); err != nil {
			return err
		}
	}
	// --trace alone means "trace commands".
	if flags.Changed("trace") && !flags.Changed("trace-level") && strings.EqualFold(a.cfg.Trace.Level, "off") {
		a.cfg.Trace.Level = "command"
	}

	mode, err := readColorMode(a.cfg.Output.Color)
	if err != nil {
		return err
	}
	color.NoColor = !useColor(mode, os.Stdout)

	timings, err := flags.GetBool("timings")
	if err != nil {
		return err
	}
	if timings {
		a.timer = observ.NewTimer()
	}
	if err := a.setupProfiling(cmd); err != nil {
		return err
	}
	return a.setupTracing(cmd)
}

// finish runs cleanups in reverse order and prints timings.
func (a *app) finish(cmd *cobra.Command) {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
	if a.timer != nil && len(a.timer.Phases()) > 0 {
		if err := a.timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "timings: %v\n", err)
		}
	}
}

func (a *app) setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	cpu, err := flags.GetString("cpuprofile")
	if err != nil {
		return err
	}
	mem, err := flags.GetString("memprofile")
	if err != nil {
		return err
	}
	if cpu == "" && mem == "" {
		return nil
	}
	session, err := prof.Start(prof.Options{CPUPath: cpu, MemPath: mem})
	if err != nil {
		return err
	}
	errOut := cmd.ErrOrStderr()
	a.cleanups = append(a.cleanups, func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(errOut, "profile: %v\n", err)
		}
	})
	return nil
}

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", errors.Newf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func useColor(mode colorMode, f *os.File) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return isTerminal(f) && os.Getenv("NO_COLOR") == ""
	}
}

// setupTracing builds the tracer described by the merged config, opens the
// command span and stores both in the command context.
func (a *app) setupTracing(cmd *cobra.Command) error {
	ctx := cmd.Context()
	level, err := trace.ParseLevel(a.cfg.Trace.Level)
	if err != nil {
		return errors.Wrap(err, "invalid trace level")
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return nil
	}
	mode, err := trace.ParseMode(a.cfg.Trace.Mode)
	if err != nil {
		return errors.Wrap(err, "invalid trace mode")
	}
	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: a.cfg.Trace.Output,
		RingSize:   a.cfg.Trace.RingSize,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create tracer")
	}

	span := trace.Begin(tracer, trace.ScopeCommand, cmd.CommandPath(), 0)
	if a.cfgPath != "" {
		span.WithExtra("config", a.cfgPath)
	}
	ctx = trace.WithSpan(trace.WithTracer(ctx, tracer), span)
	cmd.SetContext(ctx)

	errOut := cmd.ErrOrStderr()
	a.cleanups = append(a.cleanups, func() {
		span.End("")
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(errOut, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(errOut, "trace: close error: %v\n", err)
		}
	})
	return nil
}
