package codec

import (
	"image"

	"hdxwave/pkg/waveform"
)

// Recorder meneruskan frame dari Source sambil merekam mixdown mono untuk
// spektrogram. Frame yang gagal tidak direkam.
//
// Sampel disimpan per blok fftSize. Jika jumlah blok melewati 2*Columns,
// setiap blok kedua dibuang dan stride digandakan, jadi memori tetap
// sekitar 2*Columns*fftSize sampel berapa pun panjang track-nya dan blok
// yang tersisa tersebar rata sepanjang track.
type Recorder struct {
	Source  waveform.FrameSource
	Columns int

	blocks [][]float64
	cur    []float64
	stride int
	seen   int // blok penuh yang sudah lewat, disimpan atau tidak
}

func (r *Recorder) NextFrame() (waveform.Frame, error) {
	f, err := r.Source.NextFrame()
	if err != nil || len(f.Channels) != 2 {
		return f, err
	}
	left, right := f.Channels[0], f.Channels[1]
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		r.add((left[i] + right[i]) / 2)
	}
	return f, nil
}

func (r *Recorder) add(s float64) {
	if r.stride == 0 {
		r.stride = 1
	}
	if r.cur == nil {
		r.cur = make([]float64, 0, fftSize)
	}
	r.cur = append(r.cur, s)
	if len(r.cur) < fftSize {
		return
	}

	if r.seen%r.stride == 0 {
		r.blocks = append(r.blocks, r.cur)
		r.cur = nil
	} else {
		r.cur = r.cur[:0]
	}
	r.seen++

	if len(r.blocks) > 2*max(r.Columns, 1) {
		kept := r.blocks[:0]
		for i := 0; i < len(r.blocks); i += 2 {
			kept = append(kept, r.blocks[i])
		}
		r.blocks = kept
		r.stride *= 2
	}
}

// Blocks: jumlah blok yang sedang disimpan.
func (r *Recorder) Blocks() int { return len(r.blocks) }

// Spectrogram menggambar blok yang terekam. Kolom x memakai blok
// floor(B*x/width), sama seperti pemilihan kolom waveform.
func (r *Recorder) Spectrogram(width, height int) (*image.RGBA, error) {
	if width < 1 || height < 1 {
		return nil, errSpectrogramSize
	}
	if len(r.blocks) == 0 {
		return nil, errSpectrogramSamples
	}
	cols := make([][]float64, width)
	for x := range cols {
		cols[x] = r.blocks[len(r.blocks)*x/width]
	}
	return drawSpectrogram(cols, width, height), nil
}
