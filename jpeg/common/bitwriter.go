package common

import "io"

// BitWriter packs variable-length codes MSB first into an entropy-coded
// segment, inserting a 0x00 after every 0xFF byte it emits.
type BitWriter struct {
	w     io.ByteWriter
	bits  uint32 // Bit buffer
	nBits int    // Number of bits in buffer
	err   error
}

// NewBitWriter creates a new bit writer
func NewBitWriter(w io.ByteWriter) *BitWriter {
	return &BitWriter{w: w}
}

// WriteBits writes the low n bits of bits (n <= 16)
func (e *BitWriter) WriteBits(bits uint32, n int) error {
	if e.err != nil {
		return e.err
	}
	if n == 0 {
		return nil
	}

	e.bits = (e.bits << uint(n)) | (bits & ((1 << uint(n)) - 1))
	e.nBits += n

	for e.nBits >= 8 {
		b := byte(e.bits >> uint(e.nBits-8))
		if err := e.writeByte(b); err != nil {
			return err
		}
		e.nBits -= 8
	}

	return nil
}

// WriteCode writes a Huffman code
func (e *BitWriter) WriteCode(c HuffmanCode) error {
	return e.WriteBits(uint32(c.Code), c.Len)
}

// writeByte writes a byte with byte stuffing
func (e *BitWriter) writeByte(b byte) error {
	if err := e.w.WriteByte(b); err != nil {
		e.err = err
		return err
	}

	// Byte stuffing: if we write 0xFF, follow with 0x00
	if b == 0xFF {
		if err := e.w.WriteByte(0x00); err != nil {
			e.err = err
			return err
		}
	}

	return nil
}

// Pending returns the number of bits waiting for a full byte
func (e *BitWriter) Pending() int {
	return e.nBits
}

// Flush pads the last partial byte with 1-bits. A byte-aligned writer emits
// nothing.
func (e *BitWriter) Flush() error {
	if e.err != nil {
		return e.err
	}
	if e.nBits > 0 {
		pad := 8 - e.nBits
		b := byte((e.bits << uint(pad)) | ((1 << uint(pad)) - 1))
		if err := e.writeByte(b); err != nil {
			return err
		}
	}
	e.nBits = 0
	e.bits = 0
	return nil
}
