package codec

import (
	"errors"
	"fmt"
	"io"

	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"
	"hdxwave/pkg/waveform"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAVSource membaca PCM WAV per blok spec.FrameSize sampel per channel.
// Error baca di tengah file dilaporkan sekali sebagai ErrBadFrame, lalu EOF.
type WAVSource struct {
	dec      pcmReader
	buf      *audio.IntBuffer
	channels int
	offset   int // 8-bit WAV unsigned, tengahnya 128
	done     bool
}

// pcmReader: bagian dari *wav.Decoder yang dipakai setelah header dibaca.
type pcmReader interface {
	PCMBuffer(buf *audio.IntBuffer) (int, error)
}

func NewWAVSource(r io.ReadSeeker) (*WAVSource, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("invalid WAV file")
	}

	channels := int(dec.NumChans)
	if channels != spec.Channels {
		return nil, fmt.Errorf("%w: WAV has %d channel(s)", waveform.ErrUnsupportedFormat, channels)
	}

	s := &WAVSource{
		dec:      dec,
		channels: channels,
		buf: &audio.IntBuffer{
			Data:           make([]int, spec.FrameSize*channels),
			Format:         &audio.Format{NumChannels: channels, SampleRate: int(dec.SampleRate)},
			SourceBitDepth: int(dec.BitDepth),
		},
	}
	if dec.BitDepth == 8 {
		s.offset = 128
	}
	return s, nil
}

func (s *WAVSource) NextFrame() (waveform.Frame, error) {
	if s.done {
		return waveform.Frame{}, io.EOF
	}
	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && err != io.EOF {
		s.done = true
		return waveform.Frame{}, fmt.Errorf("%w: read PCM: %v", waveform.ErrBadFrame, err)
	}
	if n < s.channels {
		s.done = true
		return waveform.Frame{}, io.EOF
	}

	data := s.buf.Data[:n]
	if s.offset != 0 {
		for i := range data {
			data[i] -= s.offset
		}
	}
	return waveform.Frame{Channels: audioengine.IntToReal(data, s.channels)}, nil
}
