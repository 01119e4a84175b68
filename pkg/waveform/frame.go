package waveform

import "io"

// Frame adalah satu unit audio hasil dekode: blok sampel real per channel.
type Frame struct {
	Channels [][]float64
}

// FrameSource menghasilkan frame sesuai urutan dekode.
//
// NextFrame mengembalikan io.EOF jika stream habis. Error yang cocok dengan
// ErrBadFrame berarti hanya frame itu yang hilang, pemanggil boleh lanjut.
// Error lain mengakhiri stream.
type FrameSource interface {
	NextFrame() (Frame, error)
}

// SliceSource memutar ulang frame dari memori. Errs (opsional) dicek per index
// untuk menyisipkan frame gagal di test.
type SliceSource struct {
	Frames []Frame
	Errs   map[int]error
	pos    int
}

func (s *SliceSource) NextFrame() (Frame, error) {
	if s.pos >= len(s.Frames) {
		return Frame{}, io.EOF
	}
	i := s.pos
	s.pos++
	if err := s.Errs[i]; err != nil {
		return Frame{}, err
	}
	return s.Frames[i], nil
}
