package selfcheck

import "time"

// Status captures the state of one suite.
type Status string

const (
	// StatusQueued indicates the suite is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the suite is running.
	StatusWorking Status = "working"
	// StatusDone indicates every check in the suite passed.
	StatusDone Status = "done"
	// StatusFailed indicates at least one check failed.
	StatusFailed Status = "failed"
)

// Event reports progress for a suite.
type Event struct {
	Suite   string
	Status  Status
	Checks  int
	Failed  int
	Elapsed time.Duration
}

// Sink consumes progress events. Implementations must be goroutine-safe.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink Sink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
