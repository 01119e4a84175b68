package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTargetPath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "", ".png"},
		{"", "/a/b.mp3", "/a/b.mp3.png"},
		{"", "a/b.mp3", "a/b.mp3.png"},
		{"output.png", "/a/b.mp3", "output.png/b.mp3.png"},
		{"/output", "/a/b.mp3", "/output/b.mp3.png"},
		{"/output/", "/a/b.mp3", "/output/b.mp3.png"},
		{"/output", "", ""},
		{"/output", "/", ""},
		{"/output", "a/..", ""},
	}
	for _, tt := range tests {
		if got := TargetPath(tt.output, tt.input); got != tt.want {
			t.Errorf("TargetPath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestTrackTargetPath(t *testing.T) {
	if got := TrackTargetPath("", "/v/album.hdxv", 3); got != "/v/album.hdxv.03.png" {
		t.Errorf("got %q", got)
	}
	if got := TrackTargetPath("/out", "/v/album.hdxv", 12); got != "/out/album.hdxv.12.png" {
		t.Errorf("got %q", got)
	}
	if got := TrackTargetPath("/out", "", 1); got != "" {
		t.Errorf("empty input gave %q", got)
	}
}

func TestSpectrogramPath(t *testing.T) {
	if got := SpectrogramPath("/a/b.mp3.png"); got != "/a/b.mp3.spec.png" {
		t.Errorf("got %q", got)
	}
}

func TestBuildOutputDir(t *testing.T) {
	if err := buildOutputDir(""); err != nil {
		t.Errorf("empty output: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "x", "y")
	if err := buildOutputDir(dir); err != nil {
		t.Fatalf("buildOutputDir: %v", err)
	}
	if s, err := os.Stat(dir); err != nil || !s.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}
	if err := buildOutputDir(dir); err != nil {
		t.Errorf("existing dir: %v", err)
	}

	file := filepath.Join(t.TempDir(), "file")
	os.WriteFile(file, []byte("x"), 0644)
	if err := buildOutputDir(file); err == nil {
		t.Error("regular file accepted as output dir")
	}
}
