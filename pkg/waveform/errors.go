package waveform

import "errors"

var (
	// ErrInvalidInput: blok sampel kosong masuk ke RMS.
	ErrInvalidInput = errors.New("waveform: empty sample block")

	// ErrUnsupportedFormat: frame yang tidak tepat dua channel.
	ErrUnsupportedFormat = errors.New("waveform: unsupported channel layout, need stereo")

	// ErrEmptyTrack: tidak ada satu frame pun yang berhasil didekode.
	ErrEmptyTrack = errors.New("waveform: no frames decoded")

	// ErrSilentTrack: kolom paling keras bernilai nol.
	ErrSilentTrack = errors.New("waveform: track is silent")

	// ErrInvalidDimensions: lebar atau tinggi nol (atau negatif).
	ErrInvalidDimensions = errors.New("waveform: invalid image dimensions")

	// ErrBadFrame menandai satu frame yang gagal didekode. Source membungkusnya,
	// Collect melewati frame itu dan lanjut membaca.
	ErrBadFrame = errors.New("waveform: bad frame")
)
