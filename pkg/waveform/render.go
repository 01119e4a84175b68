package waveform

import (
	"fmt"
	"image"
	"image/color"
)

// Render mendekode src sampai habis lalu menggambar waveform di kanvas
// width x height. Dimensi dicek sebelum src dibaca.
func Render(src FrameSource, width, height int, bg, fg color.Color) (*image.RGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	track, err := Collect(src)
	if err != nil {
		return nil, err
	}
	return RenderTrack(track, width, height, bg, fg)
}

// RenderTrack menggambar track yang sudah dikumpulkan.
func RenderTrack(track *Track, width, height int, bg, fg color.Color) (*image.RGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	columns, err := Reduce(track.Magnitudes, width)
	if err != nil {
		return nil, err
	}
	return Rasterize(columns, width, height, bg, fg)
}
