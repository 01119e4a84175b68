package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hdxwave/pkg/waveform"
)

// Source adalah FrameSource yang memegang file terbuka.
type Source interface {
	waveform.FrameSource
	Close() error
}

type fileSource struct {
	waveform.FrameSource
	f *os.File
}

func (s *fileSource) Close() error { return s.f.Close() }

var decoders = map[string]func(f *os.File) (Source, error){
	".wav": func(f *os.File) (Source, error) {
		s, err := NewWAVSource(f)
		if err != nil {
			return nil, err
		}
		return &fileSource{FrameSource: s, f: f}, nil
	},
	".mp3":  func(f *os.File) (Source, error) { return decodeMP3(f) },
	".flac": func(f *os.File) (Source, error) { return decodeFLAC(f) },
	".ogg":  func(f *os.File) (Source, error) { return decodeVorbis(f) },
}

// Supported melaporkan apakah ekstensi file punya decoder.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Open membuka file audio dan memilih decoder dari ekstensinya.
func Open(path string) (Source, error) {
	open, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown extension %q", waveform.ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s, err := open(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return s, nil
}
