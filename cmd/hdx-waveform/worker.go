/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"hdxwave/internal/codec"
	"hdxwave/internal/config"
	"hdxwave/internal/container"
	"hdxwave/internal/security"
	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"
	"hdxwave/pkg/waveform"
)

type Job struct {
	Path  string
	Index int
}

type renderer struct {
	cfg    config.Config
	bg, fg color.RGBA
	total  int
	failed atomic.Int32
}

func newRenderer(cfg config.Config, total int) (*renderer, error) {
	bg, fg, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	return &renderer{cfg: cfg, bg: bg, fg: fg, total: total}, nil
}

// run memproses semua input dengan cfg.Workers goroutine. Setiap worker
// memegang Track dan kanvasnya sendiri.
func (r *renderer) run(paths []string) int {
	jobs := make(chan Job, len(paths))
	var wg sync.WaitGroup

	for w := 0; w < r.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				r.process(j)
			}
		}()
	}

	for i, p := range paths {
		jobs <- Job{Path: p, Index: i + 1}
	}
	close(jobs)
	wg.Wait()

	return int(r.failed.Load())
}

func (r *renderer) process(j Job) {
	target := TargetPath(r.cfg.Output, j.Path)
	if target == "" {
		fmt.Printf("[SKIP] Target is empty %d/%d %q\n", j.Index, r.total, j.Path)
		r.failed.Add(1)
		return
	}

	var err error
	if strings.ToLower(filepath.Ext(j.Path)) == spec.VolumeExt {
		err = r.renderVolume(j.Path)
	} else {
		err = r.renderFile(j.Path, target)
	}
	if err != nil {
		fmt.Printf("[FAIL] %d/%d %q: %v\n", j.Index, r.total, j.Path, err)
		r.failed.Add(1)
		return
	}
	fmt.Printf("[OK] Done %d/%d %q\n", j.Index, r.total, j.Path)
}

// renderFile merender satu file audio (WAV/MP3/FLAC/Vorbis) ke target.
func (r *renderer) renderFile(path, target string) error {
	src, err := codec.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	return r.renderSource(src, target)
}

// renderVolume merender setiap track volume .hdxv ke <target>.NN.png.
// Track yang gagal dilaporkan, track lain tetap diproses.
func (r *renderer) renderVolume(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	vol, err := container.UnpackVolume(f)
	if err != nil {
		return err
	}
	key, err := security.AudioKey(path)
	if err != nil {
		return err
	}
	if r.cfg.Verbose {
		fmt.Printf("   [VOLUME] %s - %s, %d tracks\n", vol.Album, vol.Artist, len(vol.Tracks))
	}

	var failed int
	for i, t := range vol.Tracks {
		n := t.TrackNumber
		if n <= 0 {
			n = i + 1
		}
		target := TrackTargetPath(r.cfg.Output, path, n)

		src, err := vol.TrackSource(i, key)
		if err == nil {
			err = r.renderSource(src, target)
		}
		if err != nil {
			fmt.Printf("   [FAIL] Track %02d %q: %v\n", n, t.Title, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tracks failed", failed, len(vol.Tracks))
	}
	return nil
}

func (r *renderer) renderSource(src waveform.FrameSource, target string) error {
	var rec *codec.Recorder
	if r.cfg.Spectrogram {
		rec = &codec.Recorder{Source: src, Columns: r.cfg.Width}
		src = rec
	}

	track, err := waveform.Collect(src)
	if err != nil {
		return err
	}
	img, err := waveform.RenderTrack(track, r.cfg.Width, r.cfg.Height, r.bg, r.fg)
	if err != nil {
		return err
	}
	if err := codec.SavePNG(target, img); err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}

	if r.cfg.Verbose {
		fmt.Printf("   [INFO] %s: %d frames, %d skipped, track %s, canvas %s\n",
			filepath.Base(target), track.Len(), track.Skipped,
			audioengine.MagnitudeDigest(track.Magnitudes)[:12], audioengine.CanvasDigest(img)[:12])
	}

	if rec != nil {
		// Spektrogram hanya pelengkap, gagal di sini tidak menggagalkan waveform.
		if err := r.saveSpectrogram(rec, SpectrogramPath(target)); err != nil {
			fmt.Printf("   [WARN] spectrogram %s: %v\n", filepath.Base(target), err)
		}
	}
	return nil
}

func (r *renderer) saveSpectrogram(rec *codec.Recorder, path string) error {
	img, err := rec.Spectrogram(r.cfg.Width, r.cfg.Height)
	if err != nil {
		return err
	}
	return codec.SavePNG(path, img)
}

// exitCode: 0 jika semua input berhasil.
func exitCode(failed int) int {
	if failed > 0 {
		return 1
	}
	return 0
}
