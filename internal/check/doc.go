// Package check is a small assertion harness.
//
// A Result records one Outcome per assertion together with the call site that
// made it. Results nest: a parent rolls a finished child in with Aggregate,
// and Report prints the failures of the whole tree.
//
// A Result is not safe for concurrent use. Concurrent suites each fill their
// own Result and the caller aggregates them once the suites have finished.
package check
