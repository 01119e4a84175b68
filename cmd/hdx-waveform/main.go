/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"hdxwave/internal/config"
	"hdxwave/pkg/spec"
)

const (
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 -Ebiet Version"
	usage_text         = "Usage: hdx-waveform [-w 512] [-h 120] [-b #000000] [-f #ffffff] [-o DIR] [-v] [-workers N] [-spectrogram] INPUT..."
)

func main() {
	cfg := config.Load()

	flag.IntVar(&cfg.Width, "w", cfg.Width, "Lebar gambar (pixel)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Lebar gambar (pixel)")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "Tinggi gambar (pixel)")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Tinggi gambar (pixel)")
	flag.StringVar(&cfg.Background, "b", cfg.Background, "Warna latar (hex)")
	flag.StringVar(&cfg.Background, "background", cfg.Background, "Warna latar (hex)")
	flag.StringVar(&cfg.Foreground, "f", cfg.Foreground, "Warna waveform (hex)")
	flag.StringVar(&cfg.Foreground, "foreground", cfg.Foreground, "Warna waveform (hex)")
	flag.StringVar(&cfg.Output, "o", cfg.Output, "Direktori output")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "Direktori output")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Tampilkan detail per track")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Tampilkan detail per track")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Jumlah proses simultan")
	flag.BoolVar(&cfg.Spectrogram, "spectrogram", cfg.Spectrogram, "Tulis juga <target>.spec.png")
	flag.Usage = func() {
		fmt.Printf("%s version %d.%d\n", spec.AppName, spec.VersionMajor, spec.VersionMinor)
		fmt.Printf("%s - %s\n", developer_title, developer_subtitle)
		fmt.Printf("%s\n", usage_text)
		flag.PrintDefaults()
	}
	flag.Parse()

	var paths []string
	if flag.NArg() == 0 {
		var err error
		cfg, paths, err = runInterview(cfg)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
	} else {
		paths = expandInputs(flag.Args())
	}

	if err := cfg.ExpandOutput(); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(2)
	}
	if len(paths) == 0 {
		fmt.Println("[ERROR] No input files!")
		os.Exit(1)
	}

	// 1. Buat direktori output jika belum ada
	if err := buildOutputDir(cfg.Output); err != nil {
		fmt.Printf("[ERROR] Cannot create the output directory %q: %v\n", cfg.Output, err)
		os.Exit(1)
	}

	r, err := newRenderer(cfg, len(paths))
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(2)
	}

	// 2. Render
	start := time.Now()
	fmt.Printf("[START] %d input, %dx%d, %d workers\n", len(paths), cfg.Width, cfg.Height, cfg.Workers)
	failed := r.run(paths)

	if failed > 0 {
		fmt.Printf("\n[DONE] %d/%d failed (%s)\n", failed, len(paths), time.Since(start).Round(time.Millisecond))
	} else {
		fmt.Printf("\n[SUCCESS] Semua waveform selesai (%s)\n", time.Since(start).Round(time.Millisecond))
	}
	os.Exit(exitCode(failed))
}

// expandInputs: argumen direktori diganti isinya, file dibiarkan apa adanya
// (termasuk yang tidak ada, supaya dilaporkan sebagai gagal).
func expandInputs(args []string) []string {
	var paths []string
	for _, a := range args {
		if s, err := os.Stat(a); err == nil && s.IsDir() {
			paths = append(paths, findAudio(a)...)
			continue
		}
		paths = append(paths, a)
	}
	return paths
}
