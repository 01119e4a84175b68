package waveform

// Reduce memilih satu magnitudo per kolom gambar. Kolom x mengambil index
// floor(N*x/W): track pendek diulang, track panjang didesimasi.
func Reduce(magnitudes []float64, width int) ([]float64, error) {
	if width < 1 {
		return nil, ErrInvalidDimensions
	}
	n := len(magnitudes)
	if n == 0 {
		return nil, ErrEmptyTrack
	}

	columns := make([]float64, width)
	for x := range columns {
		columns[x] = magnitudes[int(int64(n)*int64(x)/int64(width))]
	}
	return columns, nil
}

func peak(values []float64) float64 {
	var m float64
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
