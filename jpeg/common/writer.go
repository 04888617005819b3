package common

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Writer provides utilities for writing JPEG marker segments. Bytes written
// through Writer are never stuffed; only entropy-coded data is.
type Writer struct {
	w   io.Writer
	buf [2]byte
}

// NewWriter creates a new JPEG writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteByte writes a single byte
func (w *Writer) WriteByte(b byte) error {
	w.buf[0] = b
	_, err := w.w.Write(w.buf[:1])
	return err
}

// WriteUint16 writes a 16-bit big-endian value
func (w *Writer) WriteUint16(v uint16) error {
	binary.BigEndian.PutUint16(w.buf[:2], v)
	_, err := w.w.Write(w.buf[:2])
	return err
}

// WriteMarker writes a JPEG marker
func (w *Writer) WriteMarker(marker uint16) error {
	return w.WriteUint16(marker)
}

// WriteSegment writes a segment with length
// The length field is automatically calculated and includes itself (2 bytes)
func (w *Writer) WriteSegment(marker uint16, data []byte) error {
	if len(data)+2 > 0xFFFF {
		return errors.Errorf("segment %04X too long: %d bytes", marker, len(data))
	}
	if err := w.WriteMarker(marker); err != nil {
		return err
	}

	// Length includes the 2 bytes for the length field itself
	if err := w.WriteUint16(uint16(len(data) + 2)); err != nil {
		return err
	}

	_, err := w.w.Write(data)
	return err
}

// WriteBytes writes raw bytes
func (w *Writer) WriteBytes(data []byte) error {
	_, err := w.w.Write(data)
	return err
}

// Segment is one marker found by ScanMarkers
type Segment struct {
	Marker uint16
	Offset int // offset of the 0xFF byte
	Length int // payload length including the length field, 0 for standalone markers
}

// ScanMarkers walks the marker segments of a JPEG stream. Entropy-coded data
// after SOS is skipped up to the next non-stuffed, non-RST marker.
func ScanMarkers(data []byte) ([]Segment, error) {
	if len(data) < 2 || binary.BigEndian.Uint16(data) != MarkerSOI {
		return nil, errors.New("missing SOI marker")
	}

	segments := []Segment{{Marker: MarkerSOI}}
	pos := 2
	for pos < len(data) {
		if data[pos] != 0xFF || pos+1 >= len(data) {
			return segments, errors.Errorf("expected marker at offset %d", pos)
		}
		marker := binary.BigEndian.Uint16(data[pos:])
		seg := Segment{Marker: marker, Offset: pos}
		pos += 2

		if marker == MarkerEOI {
			segments = append(segments, seg)
			if pos != len(data) {
				return segments, errors.Errorf("%d trailing bytes after EOI", len(data)-pos)
			}
			return segments, nil
		}

		if HasLength(marker) {
			if pos+2 > len(data) {
				return segments, errors.Errorf("truncated segment %04X", marker)
			}
			seg.Length = int(binary.BigEndian.Uint16(data[pos:]))
			if seg.Length < 2 || pos+seg.Length > len(data) {
				return segments, errors.Errorf("bad length %d for segment %04X", seg.Length, marker)
			}
			pos += seg.Length
		}
		segments = append(segments, seg)

		if marker == MarkerSOS {
			pos = skipEntropyData(data, pos)
		}
	}

	return segments, errors.New("missing EOI marker")
}

// skipEntropyData returns the offset of the first marker after scan data
func skipEntropyData(data []byte, pos int) int {
	for pos+1 < len(data) {
		if data[pos] == 0xFF {
			next := data[pos+1]
			if next != 0x00 && !IsRST(0xFF00|uint16(next)) {
				return pos
			}
			pos += 2
			continue
		}
		pos++
	}
	return len(data)
}
