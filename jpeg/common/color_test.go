package common

import "testing"

func TestRGBToYCbCr(t *testing.T) {
	tests := []struct {
		name      string
		r, g, b   byte
		y, cb, cr int32
	}{
		{"mid gray", 128, 128, 128, 0, 0, 0},
		{"black", 0, 0, 0, -128, 0, 0},
		{"white", 255, 255, 255, 127, 0, 0},
		{"red", 255, 0, 0, -52, -43, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, cb, cr := RGBToYCbCr(tt.r, tt.g, tt.b)
			if y != tt.y || cb != tt.cb || cr != tt.cr {
				t.Errorf("RGBToYCbCr(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					tt.r, tt.g, tt.b, y, cb, cr, tt.y, tt.cb, tt.cr)
			}
		})
	}
}

func TestRGBToYCbCrRange(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				y, cb, cr := RGBToYCbCr(byte(r), byte(g), byte(b))
				for _, v := range []int32{y, cb, cr} {
					if v < -128 || v > 127 {
						t.Fatalf("RGBToYCbCr(%d,%d,%d) = (%d,%d,%d) out of range", r, g, b, y, cb, cr)
					}
				}
			}
		}
	}
}
