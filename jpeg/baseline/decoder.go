package baseline

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/pkg/errors"
)

// Decode decodes a baseline JPEG into interleaved 8-bit RGB. It exists for
// round-trip checks and the codec adapters; encoding is this package's job.
func Decode(data []byte) (pixelData []byte, width, height, components int, err error) {
	m, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, 0, errors.Wrap(err, "decode JPEG")
	}

	b := m.Bounds()
	width, height = b.Dx(), b.Dy()
	pixelData = make([]byte, width*height*3)

	i := 0
	switch src := m.(type) {
	case *image.Gray:
		for y := 0; y < height; y++ {
			for _, v := range src.Pix[y*src.Stride : y*src.Stride+width] {
				pixelData[i], pixelData[i+1], pixelData[i+2] = v, v, v
				i += 3
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := m.At(x, y).RGBA()
				pixelData[i] = byte(r >> 8)
				pixelData[i+1] = byte(g >> 8)
				pixelData[i+2] = byte(bl >> 8)
				i += 3
			}
		}
	}

	return pixelData, width, height, 3, nil
}
