package trace

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff     Level = iota // no tracing
	LevelCommand              // CLI commands
	LevelSuite                // selfcheck suites
	LevelOp                   // individual arithmetic operations
)

// String returns the flag spelling of l.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelCommand:
		return "command"
	case LevelSuite:
		return "suite"
	case LevelOp:
		return "op"
	default:
		return "unknown"
	}
}

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off":
		return LevelOff, nil
	case "command":
		return LevelCommand, nil
	case "suite":
		return LevelSuite, nil
	case "op":
		return LevelOp, nil
	default:
		return LevelOff, errors.Newf("invalid trace level: %q (expected: off|command|suite|op)", s)
	}
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	return l != LevelOff && uint8(scope) <= uint8(l)
}

// Scope is the granularity of an event; lower is coarser.
type Scope uint8

const (
	ScopeCommand Scope = iota + 1
	ScopeSuite
	ScopeOp
)

// String returns the name of s.
func (s Scope) String() string {
	switch s {
	case ScopeCommand:
		return "command"
	case ScopeSuite:
		return "suite"
	case ScopeOp:
		return "op"
	default:
		return "unknown"
	}
}
