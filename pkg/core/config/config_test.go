package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	aocerror "github.com/msto63/aoc2023/foundation/core/error"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.General.Timeout.Duration != time.Minute {
		t.Errorf("General.Timeout = %v, want 1m", cfg.General.Timeout)
	}
	if cfg.Puzzles.InputDir != "./input" {
		t.Errorf("Puzzles.InputDir = %v, want ./input", cfg.Puzzles.InputDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	t.Setenv("AOC_TEST_INPUTS", "/data/aoc")

	path := writeConfig(t, "config.toml", `
[general]
log_level = "debug"
timeout = "10s"

[puzzles]
input_dir = "$AOC_TEST_INPUTS"

[puzzles.inputs]
"5" = "samples/day5.txt"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want default text", cfg.General.LogFormat)
	}
	if cfg.General.Timeout.Duration != 10*time.Second {
		t.Errorf("General.Timeout = %v, want 10s", cfg.General.Timeout)
	}
	if cfg.Puzzles.InputDir != "/data/aoc" {
		t.Errorf("Puzzles.InputDir = %v, want expanded /data/aoc", cfg.Puzzles.InputDir)
	}
	if got := cfg.InputPath(5); got != "samples/day5.txt" {
		t.Errorf("InputPath(5) = %v", got)
	}
	if got := cfg.InputPath(6); got != filepath.Join("/data/aoc", "day6.txt") {
		t.Errorf("InputPath(6) = %v", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
general:
  log_format: json
  timeout: 2s
puzzles:
  input_dir: ./inputs
  inputs:
    "7": ./inputs/camel.txt
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v, want json", cfg.General.LogFormat)
	}
	if cfg.General.Timeout.Duration != 2*time.Second {
		t.Errorf("General.Timeout = %v, want 2s", cfg.General.Timeout)
	}
	if got := cfg.InputPath(7); got != "./inputs/camel.txt" {
		t.Errorf("InputPath(7) = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown level", "a.toml", "[general]\nlog_level = \"loud\"\n"},
		{"unknown format", "b.yaml", "general:\n  log_format: xml\n"},
		{"bad day key", "c.toml", "[puzzles.inputs]\n\"x\" = \"a.txt\"\n"},
		{"day out of range", "d.toml", "[puzzles.inputs]\n\"26\" = \"a.txt\"\n"},
		{"malformed toml", "e.toml", "[general\n"},
		{"unsupported extension", "f.ini", "log_level=info\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if !aocerror.HasCode(err, aocerror.CodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg.Puzzles.InputDir != "./input" {
		t.Errorf("LoadOrDefault(\"\") = %+v, %v", cfg, err)
	}
}
