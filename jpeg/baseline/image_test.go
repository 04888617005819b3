package baseline

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/cocosip/go-jfif-codec/jpeg/common"
)

func TestFromImage(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			rgba.Set(x, y, color.RGBA{uint8(x * 50), uint8(y * 80), 10, 255})
		}
	}

	img, err := FromImage(rgba)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if img.Width != 5 || img.Height != 3 || img.Channels != 4 {
		t.Fatalf("got %dx%dx%d", img.Width, img.Height, img.Channels)
	}

	// A sub-image has a wider stride and is repacked
	sub := rgba.SubImage(image.Rect(1, 1, 4, 3)).(*image.RGBA)
	img, err = FromImage(sub)
	if err != nil {
		t.Fatalf("FromImage(sub) failed: %v", err)
	}
	if len(img.Pix) != 3*2*4 {
		t.Fatalf("sub-image has %d bytes, want %d", len(img.Pix), 3*2*4)
	}
	if img.Pix[0] != 50 || img.Pix[1] != 80 {
		t.Errorf("first sub-image pixel = %v", img.Pix[:4])
	}

	// Other models go through NRGBA to RGB
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Pix = []byte{0, 64, 128, 255}
	img, err = FromImage(gray)
	if err != nil {
		t.Fatalf("FromImage(gray) failed: %v", err)
	}
	if img.Channels != 3 || !bytes.Equal(img.Pix[9:12], []byte{255, 255, 255}) {
		t.Errorf("gray conversion = %v", img.Pix)
	}

	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 4))); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("empty image: got %v, want ErrInvalidInput", err)
	}
}

func TestFromImageTranslucentRGBA(t *testing.T) {
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 128}

	m := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, want)
		}
	}
	// Stored premultiplied, roughly half of each channel
	if m.Pix[0] > 110 {
		t.Fatalf("expected premultiplied storage, got R=%d", m.Pix[0])
	}

	img, err := FromImage(m)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if img.Channels != 3 {
		t.Fatalf("Channels = %d, want 3", img.Channels)
	}
	for i := 0; i < 16; i++ {
		got := img.Pix[i*3 : i*3+3]
		for c, w := range []byte{want.R, want.G, want.B} {
			d := int(got[c]) - int(w)
			if d < -1 || d > 1 {
				t.Fatalf("pixel %d channel %d = %d, want %d (alpha must not darken)", i, c, got[c], w)
			}
		}
	}
}

func TestEncodeImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 12, 10))
	for i := range m.Pix {
		m.Pix[i] = byte(i * 7)
	}

	var buf bytes.Buffer
	if err := EncodeImage(&buf, m, &Options{Quality: 95}); err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	_, w, h, _, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if w != 12 || h != 10 {
		t.Errorf("got %dx%d, want 12x10", w, h)
	}
}

func TestEncodeDataURI(t *testing.T) {
	img := &Image{Pix: gradientRGB(8, 8), Width: 8, Height: 8, Channels: 3}

	uri, err := EncodeDataURI(img, nil)
	if err != nil {
		t.Fatalf("EncodeDataURI failed: %v", err)
	}
	if !strings.HasPrefix(uri, DataURIPrefix) {
		t.Fatalf("missing prefix: %q", uri[:min(len(uri), 32)])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	direct, _ := EncodeWithOptions(img, nil)
	if !bytes.Equal(raw, direct) {
		t.Error("data URI payload differs from raw encoding")
	}

	if _, err := EncodeDataURI(&Image{Width: 8, Height: 8, Channels: 3}, nil); err == nil {
		t.Error("expected error for empty image")
	}
}
