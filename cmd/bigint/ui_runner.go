package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"bigint/internal/check"
	"bigint/internal/selfcheck"
	"bigint/internal/ui"
)

type selfcheckOutcome struct {
	result *check.Result
	err    error
}

func runSelfcheckWithUI(ctx context.Context, out io.Writer, title string, opts selfcheck.Options) (*check.Result, error) {
	names := opts.Only
	if len(names) == 0 {
		names = selfcheck.Names()
	}
	events := make(chan selfcheck.Event, 256)
	outcomeCh := make(chan selfcheckOutcome, 1)

	go func() {
		opts.Progress = selfcheck.ChannelSink{Ch: events}
		res, err := selfcheck.Run(ctx, opts)
		outcomeCh <- selfcheckOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
