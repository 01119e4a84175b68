package codec

import (
	"fmt"
	"io"

	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"
	"hdxwave/pkg/waveform"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
)

// BeepSource mengubah streamer beep (mp3/flac/vorbis) menjadi frame.
// Beep selalu mengeluarkan stereo, jadi jumlah channel asli dicek dari Format.
//
// Decoder beep menyimpan error pertama dan setelah itu hanya mengembalikan 0
// sampel, jadi error dilaporkan sekali sebagai ErrBadFrame lalu stream selesai.
// Frame yang sudah didekode tetap dipakai.
type BeepSource struct {
	s    beep.StreamSeekCloser
	buf  [][2]float64
	done bool
}

func NewBeepSource(s beep.StreamSeekCloser, format beep.Format) (*BeepSource, error) {
	if format.NumChannels != spec.Channels {
		s.Close()
		return nil, fmt.Errorf("%w: stream has %d channel(s)", waveform.ErrUnsupportedFormat, format.NumChannels)
	}
	return &BeepSource{s: s, buf: make([][2]float64, spec.FrameSize)}, nil
}

func (b *BeepSource) NextFrame() (waveform.Frame, error) {
	if b.done {
		return waveform.Frame{}, io.EOF
	}
	n, _ := b.s.Stream(b.buf)
	if n == 0 {
		b.done = true
		if err := b.s.Err(); err != nil {
			return waveform.Frame{}, fmt.Errorf("%w: %v", waveform.ErrBadFrame, err)
		}
		return waveform.Frame{}, io.EOF
	}
	return waveform.Frame{Channels: audioengine.StereoToReal(b.buf[:n])}, nil
}

func (b *BeepSource) Close() error {
	return b.s.Close()
}

func decodeMP3(rc io.ReadCloser) (*BeepSource, error) {
	s, format, err := mp3.Decode(rc)
	if err != nil {
		return nil, err
	}
	return NewBeepSource(s, format)
}

func decodeFLAC(rc io.ReadCloser) (*BeepSource, error) {
	s, format, err := flac.Decode(rc)
	if err != nil {
		return nil, err
	}
	return NewBeepSource(s, format)
}

func decodeVorbis(rc io.ReadCloser) (*BeepSource, error) {
	s, format, err := vorbis.Decode(rc)
	if err != nil {
		return nil, err
	}
	return NewBeepSource(s, format)
}
