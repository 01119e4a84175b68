package codec

import (
	"image"
	"image/png"
	"io"
	"os"
)

// EncodePNG menulis kanvas sebagai PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG menulis kanvas ke path. File setengah jadi dihapus jika encode gagal.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
