package spec

var (
	// Masing-masing 64 karakter random
	r1 = "x8A2bN9mQpL5vWcE1zY7uI0oK4jH3gD6fS9dS8aA7qP6wO5eI4rU3tY2yT1xR0bV9"
	r2 = "M1nB2vC3xC4zZ5lK6jJ7hH8gG9fF0dD1sS2aA3pP4oO5iI6uU7yY8tT9rR0eE1wW2"
	r3 = "Q9qW8eE7rR6tT5yY4uU3iI2oO1pP0aA1sS2dD3fF4gG5hH6jJ7kK8lL9zZ0xX1cC2"

	// MasterBfKey gabungan rand1+rand2+rand3, kunci untuk membuka key locker .dat
	MasterBfKey = r1 + r2 + r3
)

const (
	// === IDENTITY & VERSIONING ===
	AppName      = "HDX-Waveform"
	VersionMajor = 1
	VersionMinor = 0

	// === WAVEFORM DEFAULTS ===
	DefaultWidth      = 512
	DefaultHeight     = 120
	DefaultBackground = "#000000"
	DefaultForeground = "#ffffff"
	ImageExt          = ".png"
	SpectrogramExt    = ".spec.png"

	// === ENGINE SPECS ===
	Channels = 2
	// FrameSize: sampel per channel dalam satu frame untuk decoder PCM
	// (WAV/MP3/FLAC/Vorbis). Sama dengan satu frame MPEG-1 Layer III.
	FrameSize = 1152
	// Paket opus di volume HDX: 48kHz stereo
	OpusSampleRate = 48000

	// === MAGIC NUMBERS (HDXV VOLUME) ===
	VolumeMagicV2 = "HDXV02"
	BfKeyMagicV2  = "HRDXBF02"
	KeyLockerExt  = "_keys.dat"
	VolumeExt     = ".hdxv"

	// === TLV TAGS ===
	Salt         = "SALT"
	Album        = "ALBM"
	Genre        = "GENR"
	Publisher    = "PUBL"
	Artwork      = "ARTW"
	JsonFileData = "JSFD" // isi JSON volume utuh (trailer)
	AudioData    = "AUDI"
	TableOfCont  = "TTOC" // format lama, daftar track saja
)
