package container

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"hdxwave/pkg/spec"
)

// TrackEntry mengikuti isi "content" di trailer JSFD
type TrackEntry struct {
	TrackNumber int     `json:"track_number"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Offset      uint64  `json:"offset"`
	Size        uint64  `json:"size"`
	Duration    float64 `json:"duration"`
}

type ReadSeekerAt interface {
	io.ReadSeeker
	io.ReaderAt
}

type Volume struct {
	Reader    io.ReaderAt
	Album     string
	Artist    string
	Publisher string
	Genre     string
	Tracks    []TrackEntry
}

type volumeTrailer struct {
	Album     string       `json:"album"`
	Artist    string       `json:"artist"`
	Publisher string       `json:"publisher"`
	Genre     string       `json:"genre"`
	Content   []TrackEntry `json:"content"`
}

// UnpackVolume membaca header dan tag TLV volume .hdxv. Blok audio tidak
// dibaca di sini, hanya dilewati; frame dibaca per track lewat TrackSource.
func UnpackVolume(r ReadSeekerAt) (*Volume, error) {
	// 1. Validasi Magic Number
	magic := make([]byte, len(spec.VolumeMagicV2))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if string(magic) != spec.VolumeMagicV2 {
		return nil, fmt.Errorf("invalid volume magic: %q", string(magic))
	}

	vol := &Volume{Reader: r}

	// 2. Loop pembacaan Tag
	for {
		tagBuf := make([]byte, 4)
		if _, err := io.ReadFull(r, tagBuf); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read tag: %w", err)
		}
		tag := string(tagBuf)

		var size uint32
		if err := binary.Read(r, binary.BigEndian, &size); err != nil {
			return nil, fmt.Errorf("read %s size: %w", tag, err)
		}

		switch tag {
		case spec.Album, spec.Publisher, spec.Genre, spec.JsonFileData, spec.TableOfCont:
			buf := make([]byte, size)
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("read %s: %w", tag, err)
			}
			if err := vol.apply(tag, buf); err != nil {
				return nil, err
			}

		default:
			// AUDI, ARTW, dll: loncat ke tag berikutnya
			if _, err := r.Seek(int64(size), io.SeekCurrent); err != nil {
				return nil, err
			}
		}
	}

	if len(vol.Tracks) == 0 {
		return nil, errors.New("no tracks found in volume (JSFD/TTOC missing or empty)")
	}
	return vol, nil
}

func (v *Volume) apply(tag string, data []byte) error {
	switch tag {
	case spec.Album:
		v.Album = string(data)
	case spec.Publisher:
		v.Publisher = string(data)
	case spec.Genre:
		v.Genre = string(data)

	case spec.JsonFileData:
		var t volumeTrailer
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse JSFD: %w", err)
		}
		v.Tracks = t.Content
		if t.Album != "" {
			v.Album = t.Album
		}
		if t.Artist != "" {
			v.Artist = t.Artist
		}
		if t.Publisher != "" {
			v.Publisher = t.Publisher
		}
		if t.Genre != "" {
			v.Genre = t.Genre
		}

	case spec.TableOfCont:
		var tracks []TrackEntry
		if err := json.Unmarshal(data, &tracks); err != nil {
			return fmt.Errorf("failed to parse TTOC: %w", err)
		}
		v.Tracks = tracks
	}
	return nil
}
