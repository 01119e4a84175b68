package audioengine

// Konversi sampel decoder ke bilangan real. Estimator RMS hanya bekerja di
// float64, jadi semua tipe integer dilebarkan di sini sebelum dikuadratkan.

// Int16ToReal memecah PCM int16 interleaved menjadi blok float64 per channel.
// Sampel sisa yang tidak membentuk frame lengkap dibuang.
func Int16ToReal(pcm []int16, channels int) [][]float64 {
	out := split(len(pcm), channels)
	for i := 0; i < len(out)*frameLen(out); i++ {
		out[i%channels][i/channels] = float64(pcm[i])
	}
	return out
}

// IntToReal sama seperti Int16ToReal untuk buffer int (go-audio IntBuffer).
func IntToReal(pcm []int, channels int) [][]float64 {
	out := split(len(pcm), channels)
	for i := 0; i < len(out)*frameLen(out); i++ {
		out[i%channels][i/channels] = float64(pcm[i])
	}
	return out
}

// StereoToReal memecah frame stereo float (format beep) menjadi dua channel.
func StereoToReal(samples [][2]float64) [][]float64 {
	left := make([]float64, len(samples))
	right := make([]float64, len(samples))
	for i, s := range samples {
		left[i] = s[0]
		right[i] = s[1]
	}
	return [][]float64{left, right}
}

func split(n, channels int) [][]float64 {
	if channels < 1 {
		return nil
	}
	frames := n / channels
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, frames)
	}
	return out
}

func frameLen(chs [][]float64) int {
	if len(chs) == 0 {
		return 0
	}
	return len(chs[0])
}
