package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
)

func writeConfig(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", FileName, err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `# test config
[output]
color = "off"

[trace]
level = "op"

[selfcheck]
jobs = 3
seed = 42
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Color != "off" || cfg.Output.Format != "text" {
		t.Fatalf("output = %+v", cfg.Output)
	}
	if cfg.Trace.Level != "op" || cfg.Trace.Mode != "stream" || cfg.Trace.RingSize != 4096 {
		t.Fatalf("trace = %+v", cfg.Trace)
	}
	if cfg.SelfCheck.Jobs != 3 || cfg.SelfCheck.Seed != 42 || cfg.SelfCheck.Iterations != 200 {
		t.Fatalf("selfcheck = %+v", cfg.SelfCheck)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\ncolour = \"on\"\n")
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Load err = %v, want ErrUnknownKey", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\nformat = \"yaml\"\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for format = yaml")
	}
}

func TestResolveWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "[selfcheck]\niterations = 5\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, path, err := Resolve("", nested)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if path != want || cfg.SelfCheck.Iterations != 5 {
		t.Fatalf("Resolve = %q iterations=%d, want %q and 5", path, cfg.SelfCheck.Iterations, want)
	}
}
