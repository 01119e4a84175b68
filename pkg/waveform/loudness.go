package waveform

import "math"

// RMS satu blok channel: sqrt(sum(s^2) / n).
func RMS(samples []float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrInvalidInput
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples))), nil
}
