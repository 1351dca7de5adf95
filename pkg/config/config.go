// Package config loads run configuration for synchrogen.
//
// Configuration is read once per run from a JSON or TOML document, selected
// by file extension. Parse failures are reported via [ErrParse] with the
// decoder's diagnostic attached; treating them as fatal (and with which exit
// status) is the entry point's policy, not this package's.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrParse is returned by [Load] when the configuration document cannot
	// be decoded. The underlying decoder diagnostic is attached.
	ErrParse = errors.New("config parse error")

	// ErrUnsupportedFormat is returned by [Load] for file extensions other
	// than .json and .toml.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalid is returned by [Config.Validate] for out-of-range values.
	ErrInvalid = errors.New("invalid config")
)

// Config holds the parameters of one enumeration-and-analysis run.
type Config struct {
	// States is the number of automaton states N.
	States int `json:"states" toml:"states"`

	// Symbols is the alphabet size K.
	Symbols int `json:"symbols" toml:"symbols"`

	// Output is the path for detailed per-automaton output. Empty means
	// summary-only.
	Output string `json:"output" toml:"output"`

	// SaveWord retains witness synchronizing words in the detailed output.
	SaveWord bool `json:"save_word" toml:"save_word"`

	// NoCache disables the analysis result cache.
	NoCache bool `json:"no_cache" toml:"no_cache"`

	// Verbose enables debug-level logging.
	Verbose bool `json:"verbose" toml:"verbose"`
}

// Load reads and decodes the configuration document at path. The document
// format is chosen by extension: .json or .toml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return cfg, nil
}

// Validate checks the loaded values. Called after flag overrides are
// merged, so a config file may legitimately omit fields that flags supply.
func (c Config) Validate() error {
	if c.States <= 0 {
		return fmt.Errorf("%w: states must be > 0, got %d", ErrInvalid, c.States)
	}
	if c.Symbols <= 0 {
		return fmt.Errorf("%w: symbols must be > 0, got %d", ErrInvalid, c.Symbols)
	}
	return nil
}
