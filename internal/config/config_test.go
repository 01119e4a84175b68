package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

var envVars = []string{
	"HDXWAVE_WIDTH", "HDXWAVE_HEIGHT", "HDXWAVE_BACKGROUND", "HDXWAVE_FOREGROUND",
	"HDXWAVE_OUTPUT", "HDXWAVE_WORKERS", "HDXWAVE_VERBOSE", "HDXWAVE_SPECTROGRAM",
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range envVars {
		t.Setenv(k, "")
	}
	cfg := Load()

	if cfg.Width != 512 {
		t.Errorf("Width = %d, want 512", cfg.Width)
	}
	if cfg.Height != 120 {
		t.Errorf("Height = %d, want 120", cfg.Height)
	}
	if cfg.Background != "#000000" {
		t.Errorf("Background = %q, want #000000", cfg.Background)
	}
	if cfg.Foreground != "#ffffff" {
		t.Errorf("Foreground = %q, want #ffffff", cfg.Foreground)
	}
	if cfg.Output != "" {
		t.Errorf("Output = %q, want empty", cfg.Output)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.Verbose || cfg.Spectrogram {
		t.Errorf("Verbose/Spectrogram = %v/%v, want false", cfg.Verbose, cfg.Spectrogram)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HDXWAVE_WIDTH", "1024")
	t.Setenv("HDXWAVE_HEIGHT", "64")
	t.Setenv("HDXWAVE_BACKGROUND", "#101010")
	t.Setenv("HDXWAVE_FOREGROUND", "ff8000")
	t.Setenv("HDXWAVE_OUTPUT", "/tmp/waves")
	t.Setenv("HDXWAVE_WORKERS", "2")
	t.Setenv("HDXWAVE_VERBOSE", "true")
	t.Setenv("HDXWAVE_SPECTROGRAM", "1")

	cfg := Load()
	if cfg.Width != 1024 || cfg.Height != 64 {
		t.Errorf("size = %dx%d, want 1024x64", cfg.Width, cfg.Height)
	}
	if cfg.Background != "#101010" || cfg.Foreground != "ff8000" {
		t.Errorf("colors = %q/%q", cfg.Background, cfg.Foreground)
	}
	if cfg.Output != "/tmp/waves" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if !cfg.Verbose || !cfg.Spectrogram {
		t.Errorf("Verbose/Spectrogram = %v/%v, want true", cfg.Verbose, cfg.Spectrogram)
	}
}

func TestEnvInvalidFallsBack(t *testing.T) {
	t.Setenv("HDXWAVE_WIDTH", "wide")
	t.Setenv("HDXWAVE_VERBOSE", "maybe")
	cfg := Load()
	if cfg.Width != 512 {
		t.Errorf("Width = %d, want fallback 512", cfg.Width)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want fallback false")
	}
}

func TestExpandOutput(t *testing.T) {
	t.Setenv("HOME", "/home/hdx")
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()

	tests := []struct{ in, want string }{
		{"", ""},
		{"out", "out"},
		{"~/waves", "/home/hdx/waves"},
	}
	for _, tt := range tests {
		cfg := Config{Output: tt.in}
		if err := cfg.ExpandOutput(); err != nil {
			t.Errorf("ExpandOutput(%q): %v", tt.in, err)
			continue
		}
		if cfg.Output != tt.want {
			t.Errorf("ExpandOutput(%q) = %q, want %q", tt.in, cfg.Output, tt.want)
		}
	}

	cfg := Config{Output: "~other/waves"}
	if err := cfg.ExpandOutput(); err == nil {
		t.Error("~user paths should be rejected")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Width: 10, Height: 10, Background: "#000000", Foreground: "#ffffff", Workers: 1}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"zero height", func(c *Config) { c.Height = 0 }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"bad background", func(c *Config) { c.Background = "#zz0000" }, true},
		{"bad foreground", func(c *Config) { c.Foreground = "white" }, true},
	}
	for _, tt := range tests {
		cfg := base
		tt.mutate(&cfg)
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"ff8000", color.RGBA{255, 128, 0, 255}},
		{"#FF0080", color.RGBA{255, 0, 128, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
		{" #00ff00 ", color.RGBA{0, 255, 0, 255}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "zzzzzz", "#gg0000", "red"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) accepted", in)
		}
	}
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	cfg := Config{Width: 512, Height: 120, Background: "#000000", Foreground: "#ffffff", Workers: 1}

	s := LoadSession(path, cfg)
	if s.Width != 512 || s.Workers != 1 {
		t.Errorf("missing session = %+v, want config defaults", s)
	}

	s.Width = 800
	s.Foreground = "#ff0000"
	s.Output = "out"
	if err := SaveSession(path, s); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got := LoadSession(path, cfg).Apply(cfg)
	if got.Width != 800 || got.Height != 120 || got.Foreground != "#ff0000" || got.Output != "out" {
		t.Errorf("applied session = %+v", got)
	}
}

func TestSessionCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	os.WriteFile(path, []byte("{not json"), 0644)
	cfg := Config{Width: 300, Height: 50, Workers: 3}
	if s := LoadSession(path, cfg); s.Width != 300 || s.Workers != 3 {
		t.Errorf("corrupt session = %+v, want config values", s)
	}
}
