package baseline

import (
	"github.com/cocosip/go-jfif-codec/jpeg/common"
)

// jfifHeader is the APP0 payload: "JFIF\0", version 1.1, no density units,
// 1x1 aspect, no thumbnail.
var jfifHeader = []byte{
	'J', 'F', 'I', 'F', 0x00,
	0x01, 0x01, // version
	0x00,       // units
	0x00, 0x01, // x density
	0x00, 0x01, // y density
	0x00, 0x00, // thumbnail
}

// headerSize is the byte count of SOI through SOS for three components
const headerSize = 2 + (2 + 16) + (2 + 2 + 2*65) + (2 + 2 + 6 + 3*3) + (2 + 2 + 4*17 + 2*12 + 2*162) + (2 + 2 + 1 + 3*2 + 3)

// writeHeader writes SOI, APP0, DQT, SOF0, DHT and SOS
func (enc *Encoder) writeHeader(writer *common.Writer, width, height int) error {
	// Write SOI
	if err := writer.WriteMarker(common.MarkerSOI); err != nil {
		return err
	}
	if err := writer.WriteSegment(common.MarkerAPP0, jfifHeader); err != nil {
		return err
	}
	if err := enc.writeDQT(writer); err != nil {
		return err
	}
	if err := enc.writeSOF0(writer, width, height); err != nil {
		return err
	}
	if err := enc.writeDHT(writer); err != nil {
		return err
	}
	return enc.writeSOS(writer)
}

// writeDQT writes one Define Quantization Table segment carrying both tables
func (enc *Encoder) writeDQT(writer *common.Writer) error {
	data := make([]byte, 0, 2*65)

	for i := 0; i < 2; i++ {
		data = append(data, byte(i)) // Precision=0 (8-bit), Table ID=i

		// Tables are already in zigzag order
		for j := 0; j < 64; j++ {
			data = append(data, byte(enc.tables.Quant[i][j]))
		}
	}

	return writer.WriteSegment(common.MarkerDQT, data)
}

// writeSOF0 writes Start of Frame (Baseline DCT)
func (enc *Encoder) writeSOF0(writer *common.Writer, width, height int) error {
	data := []byte{
		8,                 // Precision: 8 bits
		byte(height >> 8), // Height high byte
		byte(height),      // Height low byte
		byte(width >> 8),  // Width high byte
		byte(width),       // Width low byte
		numComponents,     // Number of components

		// Component ID, sampling factors 1x1, quant table class
		1, 0x11, classLuma,
		2, 0x11, classChroma,
		3, 0x11, classChroma,
	}

	return writer.WriteSegment(common.MarkerSOF0, data)
}

// writeDHT writes one Define Huffman Table segment carrying all four tables
func (enc *Encoder) writeDHT(writer *common.Writer) error {
	tables := []struct {
		class byte
		id    byte
		table *common.HuffmanTable
	}{
		{0, classLuma, enc.tables.DC[classLuma]},     // DC table 0 (luminance)
		{1, classLuma, enc.tables.AC[classLuma]},     // AC table 0 (luminance)
		{0, classChroma, enc.tables.DC[classChroma]}, // DC table 1 (chrominance)
		{1, classChroma, enc.tables.AC[classChroma]}, // AC table 1 (chrominance)
	}

	var data []byte
	for _, t := range tables {
		data = append(data, (t.class<<4)|t.id)
		for i := 0; i < 16; i++ {
			data = append(data, byte(t.table.Bits[i]))
		}
		data = append(data, t.table.Values...)
	}

	return writer.WriteSegment(common.MarkerDHT, data)
}

// writeSOS writes the Start of Scan header
func (enc *Encoder) writeSOS(writer *common.Writer) error {
	data := []byte{
		numComponents,
		1, 0x00, // Y: DC table 0, AC table 0
		2, 0x11, // Cb: DC table 1, AC table 1
		3, 0x11, // Cr: DC table 1, AC table 1
		0,  // Start of spectral selection
		63, // End of spectral selection
		0,  // Successive approximation
	}

	return writer.WriteSegment(common.MarkerSOS, data)
}
