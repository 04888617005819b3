package codec

import "testing"

func TestTestPixelData(t *testing.T) {
	info := FrameInfo8Bit(4, 2, 3)
	if info.PhotometricInterpretation != "RGB" || info.SamplesPerPixel != 3 {
		t.Errorf("FrameInfo8Bit(4, 2, 3) = %+v", info)
	}
	if mono := FrameInfo8Bit(4, 2, 1); mono.PhotometricInterpretation != "MONOCHROME2" {
		t.Errorf("monochrome photometric = %q", mono.PhotometricInterpretation)
	}

	p := NewTestPixelData(info)
	if p.IsEncapsulated() {
		t.Error("test pixel data is native")
	}
	p.AddFrame([]byte{1, 2, 3})
	if p.FrameCount() != 1 {
		t.Fatalf("FrameCount() = %d", p.FrameCount())
	}
	if _, err := p.GetFrame(1); err == nil {
		t.Error("expected out-of-range error")
	}
	if p.GetFrameInfo() != info {
		t.Error("GetFrameInfo returned a different pointer")
	}
}
