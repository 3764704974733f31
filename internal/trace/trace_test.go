package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestLevelGatesScopes(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeCommand, false},
		{LevelCommand, ScopeCommand, true},
		{LevelCommand, ScopeSuite, false},
		{LevelSuite, ScopeSuite, true},
		{LevelSuite, ScopeOp, false},
		{LevelOp, ScopeOp, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Fatalf("%s.ShouldEmit(%s) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "command", "suite", "op", "OP"} {
		if _, err := ParseLevel(s); err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("ParseLevel(verbose) should fail")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelSuite, FormatText)
	cmd := Begin(tr, ScopeCommand, "mul", 0)
	op := Begin(tr, ScopeOp, "parse", cmd.ID())
	op.End("")
	cmd.WithExtra("limbs", "3").End("ok")

	out := buf.String()
	if strings.Contains(out, "parse") {
		t.Fatalf("op-scope event leaked at suite level:\n%s", out)
	}
	if !strings.Contains(out, "\u2192 mul") || !strings.Contains(out, "\u2190 mul (ok)") {
		t.Fatalf("missing span events:\n%s", out)
	}
	if !strings.Contains(out, "{limbs=3}") {
		t.Fatalf("missing extra:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelOp, FormatNDJSON)
	Begin(tr, ScopeOp, "format", 7).End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ev.Kind != "end" || ev.Name != "format" || ev.ParentID != 7 || ev.Detail != "done" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestRingTracerKeepsNewest(t *testing.T) {
	r := NewRingTracer(3, LevelOp)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeOp, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d, want 3", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Fatalf("snap[%d] = %s, want %s", i, snap[i].Name, want)
		}
	}
}

func TestNewAndContext(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("LevelOff should give Nop, got %v %v", tr, err)
	}

	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelOp, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ring, ok := FindRing(tr)
	if !ok {
		t.Fatalf("ModeBoth should contain a ring")
	}

	ctx := WithTracer(context.Background(), tr)
	span := Begin(FromContext(ctx), ScopeSuite, "suite:scalar", ParentSpan(ctx))
	ctx = WithSpan(ctx, span)
	if ParentSpan(ctx) != span.ID() {
		t.Fatalf("ParentSpan = %d, want %d", ParentSpan(ctx), span.ID())
	}
	span.End("")
	if len(ring.Snapshot()) != 2 || buf.Len() == 0 {
		t.Fatalf("events not fanned out: ring=%d stream=%d bytes", len(ring.Snapshot()), buf.Len())
	}
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context should give Nop")
	}
}
