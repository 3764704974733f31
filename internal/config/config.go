// Package config loads bigint.toml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// FileName is the name searched for by Find.
const FileName = "bigint.toml"

// ErrUnknownKey marks a config file containing keys this version does not know.
var ErrUnknownKey = errors.New("unknown config key")

// Config is the decoded bigint.toml. Zero fields mean "use the default".
type Config struct {
	Output    Output    `toml:"output"`
	Trace     Trace     `toml:"trace"`
	SelfCheck SelfCheck `toml:"selfcheck"`
}

// Output controls rendering.
type Output struct {
	Color  string `toml:"color"`  // auto|on|off
	Format string `toml:"format"` // text|json
}

// Trace mirrors the --trace* flags.
type Trace struct {
	Level    string `toml:"level"`
	Mode     string `toml:"mode"`
	Output   string `toml:"output"`
	RingSize int    `toml:"ring_size"`
}

// SelfCheck tunes the selfcheck command.
type SelfCheck struct {
	Jobs       int    `toml:"jobs"`
	Iterations int    `toml:"iterations"`
	Seed       uint64 `toml:"seed"`
	MaxLimbs   int    `toml:"max_limbs"`
	UI         string `toml:"ui"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: Output{Color: "auto", Format: "text"},
		Trace:  Trace{Level: "off", Mode: "stream", RingSize: 4096},
		SelfCheck: SelfCheck{
			Iterations: 200,
			Seed:       1,
			MaxLimbs:   8,
			UI:         "auto",
		},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, errors.Wrapf(err, "stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Wrapf(ErrUnknownKey, "%s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest bigint.toml above
// startDir, otherwise Default. The returned path is empty when no file was used.
func Resolve(explicit, startDir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func (c Config) validate() error {
	if !oneOf(c.Output.Color, "auto", "on", "off") {
		return errors.Newf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	if !oneOf(c.Output.Format, "text", "json") {
		return errors.Newf("[output].format must be text or json, got %q", c.Output.Format)
	}
	if !oneOf(c.SelfCheck.UI, "auto", "on", "off") {
		return errors.Newf("[selfcheck].ui must be auto, on or off, got %q", c.SelfCheck.UI)
	}
	if c.SelfCheck.Jobs < 0 || c.SelfCheck.Iterations < 0 || c.SelfCheck.MaxLimbs < 0 {
		return errors.New("[selfcheck] counts must not be negative")
	}
	if c.Trace.RingSize < 0 {
		return errors.New("[trace].ring_size must not be negative")
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
