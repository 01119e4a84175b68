package waveform

import (
	"errors"
	"fmt"
	"io"
)

// Track berisi loudness mono per frame dari satu stream, berurutan.
type Track struct {
	Magnitudes []float64
	// Skipped: jumlah frame yang dilaporkan rusak oleh source.
	Skipped int
}

// Len: jumlah frame yang berhasil didekode.
func (t *Track) Len() int { return len(t.Magnitudes) }

// Peak: magnitudo terbesar, 0 untuk track kosong.
func (t *Track) Peak() float64 { return peak(t.Magnitudes) }

// Mix menggabungkan loudness kiri dan kanan menjadi mono.
func Mix(left, right float64) float64 {
	return (left + right) / 2
}

// FrameMagnitude menghitung loudness mono dari frame stereo.
func FrameMagnitude(f Frame) (float64, error) {
	if len(f.Channels) != 2 {
		return 0, fmt.Errorf("%w: frame has %d channel(s)", ErrUnsupportedFormat, len(f.Channels))
	}
	left, err := RMS(f.Channels[0])
	if err != nil {
		return 0, fmt.Errorf("left channel: %w", err)
	}
	right, err := RMS(f.Channels[1])
	if err != nil {
		return 0, fmt.Errorf("right channel: %w", err)
	}
	return Mix(left, right), nil
}

// Collect membaca src sampai habis ke dalam Track. Frame rusak dilewati dan
// dihitung, tidak diisi nol. Track kosong bukan error di sini, Reduce yang menolak.
func Collect(src FrameSource) (*Track, error) {
	t := &Track{}
	for {
		f, err := src.NextFrame()
		if err == io.EOF {
			return t, nil
		}
		if errors.Is(err, ErrBadFrame) {
			t.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("decode frame %d: %w", t.Len()+t.Skipped, err)
		}

		m, err := FrameMagnitude(f)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", t.Len()+t.Skipped, err)
		}
		t.Magnitudes = append(t.Magnitudes, m)
	}
}
