package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"runtime"
	"strconv"

	"hdxwave/pkg/spec"

	"github.com/mitchellh/go-homedir"
)

// Config berisi pengaturan render untuk satu kali jalan CLI.
type Config struct {
	Width      int
	Height     int
	Background string // warna hex
	Foreground string // warna hex
	Output     string // direktori output, kosong = di samping input
	Workers    int
	Verbose    bool
	// Spectrogram: tulis juga <target>.spec.png di samping waveform.
	Spectrogram bool
}

// Load: nilai default, ditimpa environment variable HDXWAVE_*.
func Load() Config {
	return Config{
		Width:       envInt("HDXWAVE_WIDTH", spec.DefaultWidth),
		Height:      envInt("HDXWAVE_HEIGHT", spec.DefaultHeight),
		Background:  envStr("HDXWAVE_BACKGROUND", spec.DefaultBackground),
		Foreground:  envStr("HDXWAVE_FOREGROUND", spec.DefaultForeground),
		Output:      envStr("HDXWAVE_OUTPUT", ""),
		Workers:     envInt("HDXWAVE_WORKERS", 1),
		Verbose:     envBool("HDXWAVE_VERBOSE", false),
		Spectrogram: envBool("HDXWAVE_SPECTROGRAM", false),
	}
}

// Colors mem-parse Background dan Foreground.
func (c Config) Colors() (bg, fg color.RGBA, err error) {
	if bg, err = ParseHexColor(c.Background); err != nil {
		return bg, fg, fmt.Errorf("background: %w", err)
	}
	if fg, err = ParseHexColor(c.Foreground); err != nil {
		return bg, fg, fmt.Errorf("foreground: %w", err)
	}
	return bg, fg, nil
}

// Validate mengecek ukuran, warna dan jumlah worker.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.Workers > runtime.NumCPU()*4 {
		return fmt.Errorf("workers %d exceeds limit %d", c.Workers, runtime.NumCPU()*4)
	}
	_, _, err := c.Colors()
	return err
}

// ExpandOutput mengganti ~ di awal Output dengan home dir.
func (c *Config) ExpandOutput() error {
	out, err := homedir.Expand(c.Output)
	if err != nil {
		return fmt.Errorf("output %q: %w", c.Output, err)
	}
	c.Output = out
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
