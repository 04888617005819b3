package common

import (
	"bytes"
	"testing"
)

func TestWriterSegment(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteMarker(MarkerSOI); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteSegment(MarkerCOM, []byte("hi")); err != nil {
		t.Fatal(err)
	}
	// Header bytes are never stuffed
	if err := w.WriteBytes([]byte{0xFF}); err != nil {
		t.Fatal(err)
	}

	want := []byte{0xFF, 0xD8, 0xFF, 0xFE, 0x00, 0x04, 'h', 'i', 0xFF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}

	if err := w.WriteSegment(MarkerCOM, make([]byte, 0xFFFE)); err == nil {
		t.Error("expected error for oversized segment")
	}
}

func TestScanMarkers(t *testing.T) {
	stream := []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xFE, 0x00, 0x03, 'x', // COM
		0xFF, 0xDA, 0x00, 0x02, // SOS (truncated header is fine for the walker)
		0x12, 0xFF, 0x00, 0x34, 0xFF, 0xD0, 0x56, // scan data with stuffing and RST0
		0xFF, 0xD9, // EOI
	}

	segments, err := ScanMarkers(stream)
	if err != nil {
		t.Fatalf("ScanMarkers: %v", err)
	}

	want := []Segment{
		{Marker: MarkerSOI, Offset: 0},
		{Marker: MarkerCOM, Offset: 2, Length: 3},
		{Marker: MarkerSOS, Offset: 7, Length: 2},
		{Marker: MarkerEOI, Offset: 18},
	}
	if len(segments) != len(want) {
		t.Fatalf("got %d segments (%+v), want %d", len(segments), segments, len(want))
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, segments[i], want[i])
		}
	}
}

func TestScanMarkersErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"no SOI", []byte{0x00, 0x01}},
		{"no EOI", []byte{0xFF, 0xD8, 0xFF, 0xFE, 0x00, 0x02}},
		{"bad length", []byte{0xFF, 0xD8, 0xFF, 0xFE, 0x00, 0x09, 0xFF, 0xD9}},
		{"trailing bytes", []byte{0xFF, 0xD8, 0xFF, 0xD9, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ScanMarkers(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}
