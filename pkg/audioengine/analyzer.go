package audioengine

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math"
)

// CanvasDigest membuat hash dari piksel kanvas. Dua render identik selalu
// menghasilkan digest yang sama.
func CanvasDigest(img *image.RGBA) string {
	h := sha256.New()
	b := img.Bounds()
	binary.Write(h, binary.LittleEndian, [2]int32{int32(b.Dx()), int32(b.Dy())})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		h.Write(img.Pix[off : off+b.Dx()*4])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// MagnitudeDigest membuat hash dari deret magnitudo track (urutan ikut dihitung).
func MagnitudeDigest(magnitudes []float64) string {
	h := sha256.New()
	for _, m := range magnitudes {
		binary.Write(h, binary.LittleEndian, math.Float64bits(m))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
