package common

import "testing"

func TestZigZagInverse(t *testing.T) {
	for i := 0; i < 64; i++ {
		if UnZigZag[ZigZag[i]] != i {
			t.Errorf("UnZigZag[ZigZag[%d]] = %d", i, UnZigZag[ZigZag[i]])
		}
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		quality int
		want    int
	}{
		{-5, 5000},
		{0, 5000},
		{1, 5000},
		{10, 500},
		{49, 102},
		{50, 100},
		{80, 40},
		{100, 0},
		{150, 0},
	}

	for _, tt := range tests {
		if got := ScaleFactor(tt.quality); got != tt.want {
			t.Errorf("ScaleFactor(%d) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}

func TestScaleQuantTable(t *testing.T) {
	t.Run("quality 50 is the base table", func(t *testing.T) {
		q := ScaleQuantTable(DefaultLuminanceQuantTable, 50)
		for i := 0; i < 64; i++ {
			if q[ZigZag[i]] != DefaultLuminanceQuantTable[i] {
				t.Fatalf("entry %d = %d, want %d", i, q[ZigZag[i]], DefaultLuminanceQuantTable[i])
			}
		}
		// Zigzag order on the wire: position 2 is natural (1,0)
		if q[2] != 12 {
			t.Errorf("zigzag position 2 = %d, want 12", q[2])
		}
	})

	t.Run("quality 100 is all ones", func(t *testing.T) {
		q := ScaleQuantTable(DefaultChrominanceQuantTable, 100)
		for i, v := range q {
			if v != 1 {
				t.Fatalf("entry %d = %d, want 1", i, v)
			}
		}
	})

	t.Run("quality 1 saturates", func(t *testing.T) {
		q := ScaleQuantTable(DefaultLuminanceQuantTable, 1)
		for i, v := range q {
			if v != 255 {
				t.Fatalf("entry %d = %d, want 255", i, v)
			}
		}
	})

	t.Run("monotonic in quality", func(t *testing.T) {
		prev := ScaleQuantTable(DefaultLuminanceQuantTable, 1)
		for quality := 2; quality <= 100; quality++ {
			cur := ScaleQuantTable(DefaultLuminanceQuantTable, quality)
			for i := range cur {
				if cur[i] > prev[i] || cur[i] < 1 || cur[i] > 255 {
					t.Fatalf("quality %d entry %d = %d (previous %d)", quality, i, cur[i], prev[i])
				}
			}
			prev = cur
		}
	})
}

func TestBuildDCTScale(t *testing.T) {
	var ones [64]int32
	for i := range ones {
		ones[i] = 1
	}
	scale := BuildDCTScale(ones)

	if scale[0] != 0.125 {
		t.Errorf("scale[0] = %v, want 0.125", scale[0])
	}
	// Row 0, column 2: 1 / (aasf[2] * 8)
	want := 1.0 / (AANScale[2] * 8)
	if scale[2] != want {
		t.Errorf("scale[2] = %v, want %v", scale[2], want)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11) = %d", got)
	}
	if got := DivCeil(17, 8); got != 3 {
		t.Errorf("DivCeil(17, 8) = %d", got)
	}
}
