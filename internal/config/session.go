package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const sessionFile = ".hdx_waveform_session"

// Session menyimpan jawaban terakhir dari mode interaktif.
type Session struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Output     string `json:"output"`
	Workers    int    `json:"worker_count"`
}

// SessionPath: file session di home dir user.
func SessionPath() string {
	home, _ := homedir.Dir()
	return filepath.Join(home, sessionFile)
}

// LoadSession membaca path; jika tidak ada atau rusak, pakai nilai dari cfg.
func LoadSession(path string, cfg Config) Session {
	s := Session{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
		Output:     cfg.Output,
		Workers:    cfg.Workers,
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var saved Session
	if json.Unmarshal(b, &saved) != nil {
		return s
	}
	if saved.Width > 0 {
		s.Width = saved.Width
	}
	if saved.Height > 0 {
		s.Height = saved.Height
	}
	if saved.Background != "" {
		s.Background = saved.Background
	}
	if saved.Foreground != "" {
		s.Foreground = saved.Foreground
	}
	if saved.Output != "" {
		s.Output = saved.Output
	}
	if saved.Workers > 0 {
		s.Workers = saved.Workers
	}
	return s
}

func SaveSession(path string, s Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Apply menyalin jawaban session ke cfg.
func (s Session) Apply(cfg Config) Config {
	cfg.Width = s.Width
	cfg.Height = s.Height
	cfg.Background = s.Background
	cfg.Foreground = s.Foreground
	cfg.Output = s.Output
	cfg.Workers = s.Workers
	return cfg
}
