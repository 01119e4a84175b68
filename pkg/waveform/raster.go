package waveform

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Bar: rentang vertikal yang digambar untuk satu kolom.
type Bar struct {
	X      int
	Top    int
	Height int
}

// Bars menskalakan setiap kolom terhadap kolom paling keras. Setiap bar minimal
// setinggi 1 pixel dan berada di dalam [0, height).
func Bars(columns []float64, height int) ([]Bar, error) {
	if height < 1 || len(columns) == 0 {
		return nil, ErrInvalidDimensions
	}
	pk := peak(columns)
	if pk == 0 {
		return nil, ErrSilentTrack
	}

	h := float64(height)
	bars := make([]Bar, len(columns))
	for x, m := range columns {
		half := m * h / pk / 2
		barHeight := int(math.Round(half * 2))
		if barHeight < 1 {
			barHeight = 1
		}
		top := int(math.Floor(h/2 - half))

		// potong ke kanvas
		if top < 0 {
			barHeight += top
			top = 0
		}
		if top+barHeight > height {
			barHeight = height - top
		}
		if barHeight < 1 {
			barHeight = 1
		}
		bars[x] = Bar{X: x, Top: top, Height: barHeight}
	}
	return bars, nil
}

// Rasterize mengisi kanvas width x height dengan background, lalu satu bar
// foreground per kolom dari kiri ke kanan.
func Rasterize(columns []float64, width, height int, bg, fg color.Color) (*image.RGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(columns) != width {
		return nil, fmt.Errorf("%w: %d columns for width %d", ErrInvalidDimensions, len(columns), width)
	}

	bars, err := Bars(columns, height)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	ink := image.NewUniform(fg)
	for _, b := range bars {
		draw.Draw(img, image.Rect(b.X, b.Top, b.X+1, b.Top+b.Height), ink, image.Point{}, draw.Src)
	}
	return img, nil
}
