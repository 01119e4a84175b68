package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"hdxwave/internal/security"
	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"
	"hdxwave/pkg/waveform"
)

// TrackSource membaca frame satu track: [uint16 size][paket opus terenkripsi]...
// Paket yang gagal didekripsi atau didekode dilaporkan sebagai ErrBadFrame.
type TrackSource struct {
	r    *io.SectionReader
	aead *security.FrameCipher
	dec  *audioengine.StreamDecoder
	done bool
}

func (v *Volume) TrackSource(index int, key []byte) (*TrackSource, error) {
	if index < 0 || index >= len(v.Tracks) {
		return nil, fmt.Errorf("track %d out of range (%d tracks)", index, len(v.Tracks))
	}
	t := v.Tracks[index]

	aead, err := security.NewFrameCipher(key)
	if err != nil {
		return nil, err
	}
	dec, err := audioengine.NewStreamDecoder(spec.OpusSampleRate, spec.Channels)
	if err != nil {
		return nil, err
	}
	return &TrackSource{
		r:    io.NewSectionReader(v.Reader, int64(t.Offset), int64(t.Size)),
		aead: aead,
		dec:  dec,
	}, nil
}

func (s *TrackSource) NextFrame() (waveform.Frame, error) {
	if s.done {
		return waveform.Frame{}, io.EOF
	}

	var sz uint16
	if err := binary.Read(s.r, binary.BigEndian, &sz); err != nil {
		s.done = true
		if err == io.EOF {
			return waveform.Frame{}, io.EOF
		}
		return waveform.Frame{}, fmt.Errorf("%w: truncated size: %v", waveform.ErrBadFrame, err)
	}

	enc := make([]byte, sz)
	if _, err := io.ReadFull(s.r, enc); err != nil {
		s.done = true
		return waveform.Frame{}, fmt.Errorf("%w: truncated packet: %v", waveform.ErrBadFrame, err)
	}

	packet, err := s.aead.Open(enc)
	if err != nil {
		return waveform.Frame{}, fmt.Errorf("%w: decrypt: %v", waveform.ErrBadFrame, err)
	}

	chs, err := s.dec.DecodeFrame(packet)
	if err != nil {
		return waveform.Frame{}, fmt.Errorf("%w: %v", waveform.ErrBadFrame, err)
	}
	return waveform.Frame{Channels: chs}, nil
}
