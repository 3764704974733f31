// Package trace records structured events for the bigint CLI.
//
// Tracing is off unless requested:
//
//	bigint mul --trace=- --trace-level=op 12 34
//
// # Levels and scopes
//
// Every event carries a Scope. A tracer configured at some Level emits the
// scopes up to and including that level:
//
//   - LevelCommand: one span per CLI command
//   - LevelSuite:   plus one span per selfcheck suite
//   - LevelOp:      plus individual multiplications and divisions
//
// # Sinks
//
// A stream tracer writes each event as it happens (text or NDJSON). A ring
// tracer keeps the last N events in memory so a failing selfcheck can dump
// them. A multi tracer fans out to several.
//
// # Context
//
//	ctx = trace.WithTracer(ctx, t)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeOp, "mul", 0)
//	defer span.End("")
package trace
