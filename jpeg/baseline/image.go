package baseline

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"

	"github.com/cocosip/go-jfif-codec/jpeg/common"
)

// EncodeImage writes m to w as a baseline JPEG. Alpha is dropped, never
// blended. A nil o uses DefaultQuality.
func EncodeImage(w io.Writer, m image.Image, o *Options) error {
	img, err := FromImage(m)
	if err != nil {
		return err
	}
	data, err := EncodeWithOptions(img, o)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// FromImage flattens m into an interleaved Image. *image.NRGBA and opaque
// *image.RGBA with tight strides are used without copying; everything else,
// translucent *image.RGBA included, goes through color.NRGBAModel.
func FromImage(m image.Image) (*Image, error) {
	if m == nil {
		return nil, errors.Wrap(common.ErrInvalidInput, "nil image")
	}
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(common.ErrInvalidDimensions, "%dx%d", w, h)
	}

	switch src := m.(type) {
	case *image.NRGBA:
		return &Image{Pix: tightPix(src.Pix, src.Stride, w, h), Width: w, Height: h, Channels: 4}, nil
	case *image.RGBA:
		// Premultiplied; only a fully opaque raster equals its NRGBA form
		if src.Opaque() {
			return &Image{Pix: tightPix(src.Pix, src.Stride, w, h), Width: w, Height: h, Channels: 4}, nil
		}
	}

	pix := make([]byte, w*h*3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			i += 3
		}
	}
	return &Image{Pix: pix, Width: w, Height: h, Channels: 3}, nil
}

// tightPix returns pix with rows packed to w*4 bytes
func tightPix(pix []byte, stride, w, h int) []byte {
	rowLen := w * 4
	if stride == rowLen {
		return pix[:rowLen*h]
	}
	out := make([]byte, rowLen*h)
	for y := 0; y < h; y++ {
		copy(out[y*rowLen:(y+1)*rowLen], pix[y*stride:y*stride+rowLen])
	}
	return out
}
