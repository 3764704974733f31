package check

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Outcome is the record of a single assertion.
type Outcome struct {
	Passed   bool
	Message  string
	Location string // file:line of the assertion
}

// Result accumulates outcomes and child results.
type Result struct {
	Name     string
	outcomes []Outcome
	children []*Result
	passed   int
	failed   int
}

// NewResult returns an empty, passing Result.
func NewResult(name string) *Result {
	return &Result{Name: name}
}

// Record stores an outcome and returns passed.
func (r *Result) Record(passed bool, msg string) bool {
	r.record(passed, msg, 2)
	return passed
}

// Recordf is Record with a formatted message.
func (r *Result) Recordf(passed bool, format string, args ...any) bool {
	r.record(passed, fmt.Sprintf(format, args...), 2)
	return passed
}

func (r *Result) record(passed bool, msg string, skip int) {
	r.outcomes = append(r.outcomes, Outcome{
		Passed:   passed,
		Message:  msg,
		Location: callerLocation(skip),
	})
	if passed {
		r.passed++
	} else {
		r.failed++
	}
}

// Aggregate rolls child into r and reports whether the child passed.
func (r *Result) Aggregate(child *Result) bool {
	if child == nil {
		return true
	}
	r.children = append(r.children, child)
	r.passed += child.passed
	r.failed += child.failed
	return child.failed == 0
}

// Passed reports whether every outcome in the tree passed.
func (r *Result) Passed() bool { return r.failed == 0 }

// Count returns the number of recorded outcomes, children included.
func (r *Result) Count() int { return r.passed + r.failed }

// Failures returns the number of failed outcomes, children included.
func (r *Result) Failures() int { return r.failed }

// Outcomes returns this Result's own outcomes.
// The slice aliases internal storage and must not be modified.
func (r *Result) Outcomes() []Outcome { return r.outcomes }

// Children returns the aggregated child results.
func (r *Result) Children() []*Result { return r.children }

// Equal records whether got == want.
func Equal[T comparable](r *Result, got, want T, what string) bool {
	ok := got == want
	if ok {
		r.record(true, what, 2)
	} else {
		r.record(false, fmt.Sprintf("%s: got %v, want %v", what, got, want), 2)
	}
	return ok
}

// True records cond under what.
func True(r *Result, cond bool, what string) bool {
	r.record(cond, what, 2)
	return cond
}

// NoError records a passing outcome when err is nil.
func NoError(r *Result, err error, what string) bool {
	if err == nil {
		r.record(true, what, 2)
		return true
	}
	r.record(false, fmt.Sprintf("%s: unexpected error: %v", what, err), 2)
	return false
}

// ErrorIs records a passing outcome when err matches target.
func ErrorIs(r *Result, err, target error, what string) bool {
	ok := errors.Is(err, target)
	if ok {
		r.record(true, what, 2)
	} else {
		r.record(false, fmt.Sprintf("%s: got error %v", what, err), 2)
	}
	return ok
}

// callerLocation returns the position skip frames above its caller.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "?"
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
