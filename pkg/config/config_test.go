package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "run.json", `{
		"states": 5,
		"symbols": 2,
		"output": "results.txt",
		"save_word": true
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.States != 5 || cfg.Symbols != 2 {
		t.Errorf("dimensions = (%d, %d), want (5, 2)", cfg.States, cfg.Symbols)
	}
	if cfg.Output != "results.txt" {
		t.Errorf("Output = %q, want results.txt", cfg.Output)
	}
	if !cfg.SaveWord {
		t.Error("SaveWord not set")
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
states = 4
symbols = 3
no_cache = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.States != 4 || cfg.Symbols != 3 {
		t.Errorf("dimensions = (%d, %d), want (4, 3)", cfg.States, cfg.Symbols)
	}
	if !cfg.NoCache {
		t.Error("NoCache not set")
	}
}

func TestLoadParseError(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "BadJSON", file: "run.json", body: `{"states": }`},
		{name: "BadTOML", file: "run.toml", body: `states = = 4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.body)
			if _, err := Load(path); !errors.Is(err, ErrParse) {
				t.Errorf("Load error = %v, want ErrParse", err)
			}
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "run.yaml", "states: 3")
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "Valid", cfg: Config{States: 3, Symbols: 2}},
		{name: "ZeroStates", cfg: Config{States: 0, Symbols: 2}, wantErr: true},
		{name: "ZeroSymbols", cfg: Config{States: 3, Symbols: 0}, wantErr: true},
		{name: "Negative", cfg: Config{States: -1, Symbols: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate = %v, want ErrInvalid", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate = %v, want nil", err)
			}
		})
	}
}
