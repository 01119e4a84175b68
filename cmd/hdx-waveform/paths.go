/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hdxwave/pkg/spec"
)

// TargetPath: tanpa output dir gambar ditaruh di samping input (<input>.png),
// selain itu <output>/<nama file>.png. Input tanpa nama file menghasilkan "".
func TargetPath(output, input string) string {
	if output == "" {
		return input + spec.ImageExt
	}
	name := fileName(input)
	if name == "" {
		return ""
	}
	return filepath.Join(output, name) + spec.ImageExt
}

// TrackTargetPath dipakai untuk volume .hdxv: satu gambar per track.
func TrackTargetPath(output, input string, track int) string {
	target := TargetPath(output, input)
	if target == "" {
		return ""
	}
	return fmt.Sprintf("%s.%02d%s", strings.TrimSuffix(target, spec.ImageExt), track, spec.ImageExt)
}

func SpectrogramPath(target string) string {
	return strings.TrimSuffix(target, spec.ImageExt) + spec.SpectrogramExt
}

func fileName(p string) string {
	if p == "" {
		return ""
	}
	name := filepath.Base(p)
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return name
}

// buildOutputDir membuat output dir jika belum ada.
func buildOutputDir(output string) error {
	if output == "" {
		return nil
	}
	if s, err := os.Stat(output); err == nil {
		if !s.IsDir() {
			return fmt.Errorf("%s is not a directory", output)
		}
		return nil
	}
	return os.MkdirAll(output, os.ModePerm)
}
