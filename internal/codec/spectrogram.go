package codec

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

const fftSize = 1024

var (
	errSpectrogramSize    = errors.New("spectrogram: invalid dimensions")
	errSpectrogramSamples = errors.New("spectrogram: not enough samples")
)

// drawSpectrogram: satu window fftSize per kolom, kolom nil dibiarkan gelap.
// Sumbu X waktu, sumbu Y frekuensi (bawah = rendah). Intensitas dalam skala dB
// relatif terhadap bin terkuat, rentang 80 dB.
func drawSpectrogram(cols [][]float64, width, height int) *image.RGBA {
	// Pass 1: magnitudo semua kolom, cari puncak global
	mags := make([][]float64, width)
	var peak float64
	frame := make([]float64, fftSize)
	for x, samples := range cols {
		if samples == nil {
			continue
		}
		copy(frame, samples)
		window.Apply(frame, window.Hann)
		coeffs := fft.FFTReal(frame)

		m := make([]float64, fftSize/2)
		for i := range m {
			m[i] = math.Hypot(real(coeffs[i]), imag(coeffs[i]))
			if m[i] > peak {
				peak = m[i]
			}
		}
		mags[x] = m
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	if peak == 0 {
		return img
	}

	// Pass 2: gambar intensitas frekuensi ke pixel (Y axis)
	for x, m := range mags {
		if m == nil {
			continue
		}
		for y := 0; y < height; y++ {
			idx := (height - 1 - y) * (fftSize / 2) / height
			db := 20 * math.Log10(m[idx]/peak+1e-12)
			intensity := uint8(math.Max(0, math.Min(255, 255*(1+db/80))))
			img.SetRGBA(x, y, color.RGBA{R: intensity / 2, G: intensity, B: intensity / 2, A: 255})
		}
	}
	return img
}
