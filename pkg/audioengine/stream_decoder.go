package audioengine

import (
	"fmt"

	"github.com/hraban/opus"
)

// maxFrameSamples: paket opus terpanjang (120ms @ 48kHz) per channel.
const maxFrameSamples = 5760

type StreamDecoder struct {
	dec      *opus.Decoder
	channels int
	pcm      []int16
}

func NewStreamDecoder(rate, channels int) (*StreamDecoder, error) {
	d, err := opus.NewDecoder(rate, channels)
	if err != nil {
		return nil, err
	}
	return &StreamDecoder{
		dec:      d,
		channels: channels,
		pcm:      make([]int16, maxFrameSamples*channels),
	}, nil
}

// DecodeFrame mendekode satu paket opus dan mengembalikan sampel real per channel.
func (sd *StreamDecoder) DecodeFrame(packet []byte) ([][]float64, error) {
	n, err := sd.dec.Decode(packet, sd.pcm)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("opus: paket kosong")
	}
	return Int16ToReal(sd.pcm[:n*sd.channels], sd.channels), nil
}
