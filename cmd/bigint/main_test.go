package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"

	"bigint/internal/bignum"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := execute(root, append([]string{"--color", "off"}, args...))
	return stdout.String(), stderr.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("bigint %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestParseText(t *testing.T) {
	out := mustRun(t, "parse", "-000123", "64424509677")
	want := "-123\n  sign -1, 3 digits, 1 limbs: 0000007b\n" +
		"64424509677\n  sign 1, 11 digits, 2 limbs: 0000000f 000000ed\n"
	if out != want {
		t.Fatalf("parse output:\n%s\nwant:\n%s", out, want)
	}
}

func TestParseJSON(t *testing.T) {
	out := mustRun(t, "parse", "--format", "json", "4294967296")
	var reports []parseReport
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(reports) != 1 || reports[0].Value != "4294967296" || len(reports[0].Limbs) != 2 || reports[0].Digits != 10 {
		t.Fatalf("reports = %+v", reports)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, _, err := runCLI(t, "parse", "12x")
	if !errors.Is(err, bignum.ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestMulAndOperandFiles(t *testing.T) {
	dir := t.TempDir()
	stored := filepath.Join(dir, "p.msgpack")
	out := mustRun(t, "mul", "--out", stored, "-123456789", "2")
	if out != "-246913578\n" {
		t.Fatalf("mul = %q", out)
	}
	out = mustRun(t, "mul", "@"+stored, "-1", "10")
	if out != "2469135780\n" {
		t.Fatalf("mul from file = %q", out)
	}
	if _, _, err := runCLI(t, "mul", "@"+filepath.Join(dir, "missing"), "1"); err == nil {
		t.Fatalf("expected an error for a missing operand file")
	}
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want string
	}{
		{"1", "2", "<\n"},
		{"-0", "0", "=\n"},
		{"4294967296", "4294967295", ">\n"},
		{"-5", "-7", ">\n"},
	}
	for _, c := range cases {
		if got := mustRun(t, "cmp", c.a, c.b); got != c.want {
			t.Fatalf("cmp %s %s = %q, want %q", c.a, c.b, got, c.want)
		}
	}
}

func TestScalar(t *testing.T) {
	if got := mustRun(t, "scalar", "4294967295", "add", "1"); got != "4294967296\n" {
		t.Fatalf("add = %q", got)
	}
	if got := mustRun(t, "scalar", "21", "mul", "-2"); got != "-42\n" {
		t.Fatalf("mul = %q", got)
	}
	if got := mustRun(t, "scalar", "100", "div", "7"); got != "14 remainder 2\n" {
		t.Fatalf("div = %q", got)
	}
	if _, _, err := runCLI(t, "scalar", "100", "div", "0"); !errors.Is(err, bignum.ErrDivisionByZero) {
		t.Fatalf("div by zero err = %v", err)
	}
	if _, _, err := runCLI(t, "scalar", "1", "add", "-1"); !errors.Is(err, bignum.ErrScalarRange) {
		t.Fatalf("negative add err = %v", err)
	}
}

func TestPow2(t *testing.T) {
	if got := mustRun(t, "pow2", "128"); got != "340282366920938463463374607431768211456\n" {
		t.Fatalf("pow2 128 = %q", got)
	}
	if _, _, err := runCLI(t, "pow2", "100000000"); !errors.Is(err, errExponentTooLarge) {
		t.Fatalf("pow2 100000000 err = %v, want errExponentTooLarge", err)
	}
	if got := mustRun(t, "pow2", "65536"); len(got) != 19730 {
		t.Fatalf("pow2 65536 printed %d bytes", len(got))
	}
	if _, _, err := runCLI(t, "pow2", "--", "-1"); err == nil {
		t.Fatalf("expected an error for a negative exponent")
	}
}

func TestDemo(t *testing.T) {
	out := mustRun(t, "demo")
	for _, want := range []string{"-123456789", "-246913578", "15241578750190521", "18446744073709551616"} {
		if !strings.Contains(out, want) {
			t.Fatalf("demo output missing %s:\n%s", want, out)
		}
	}
}

func TestSelfcheck(t *testing.T) {
	out := mustRun(t, "selfcheck", "--ui", "off", "--iterations", "10", "--seed", "3")
	if !strings.Contains(out, "ok:") || !strings.Contains(out, "PASS multiply") {
		t.Fatalf("selfcheck output:\n%s", out)
	}
	if _, _, err := runCLI(t, "selfcheck", "--ui", "off", "--suite", "nope"); err == nil {
		t.Fatalf("expected an error for an unknown suite")
	}
}

func TestVersionJSON(t *testing.T) {
	out := mustRun(t, "version", "--format", "json")
	var info struct {
		Version  string `json:"version"`
		LimbBits int    `json:"limb_bits"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if info.Version == "" || info.LimbBits != bignum.LimbBits {
		t.Fatalf("info = %+v", info)
	}
}

func TestConfigFileSetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigint.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"json\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out := mustRun(t, "--config", path, "parse", "7")
	if !strings.HasPrefix(strings.TrimSpace(out), "[") {
		t.Fatalf("config format ignored: %q", out)
	}
	out = mustRun(t, "--config", path, "parse", "--format", "text", "7")
	if !strings.HasPrefix(out, "7\n") {
		t.Fatalf("flag did not override config: %q", out)
	}
}

func TestTraceToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ndjson")
	mustRun(t, "--trace", path, "--trace-level", "op", "mul", "3", "4", "5")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	mulEnds := 0
	for _, line := range lines {
		var ev map[string]any
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("trace line %q: %v", line, err)
		}
		if ev["name"] == "mul" && ev["kind"] == "end" {
			mulEnds++
		}
	}
	if mulEnds != 2 {
		t.Fatalf("mul span ends = %d, want 2:\n%s", mulEnds, data)
	}
}

func TestTimingsAndProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	_, stderr, err := runCLI(t, "--timings", "--cpuprofile", cpu, "mul", "12345678901234567890", "98765432109876543210")
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	for _, want := range []string{"timings:", "read", "multiply", "total"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("timings missing %q:\n%s", want, stderr)
		}
	}
	if _, err := os.Stat(cpu); err != nil {
		t.Fatalf("cpu profile: %v", err)
	}
}
