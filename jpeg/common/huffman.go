package common

import (
	"math/bits"

	"github.com/pkg/errors"
)

// HuffmanCode represents a Huffman code
type HuffmanCode struct {
	Code uint16 // The Huffman code, right aligned
	Len  int    // Code length in bits, 0 if the symbol has no code
}

// HuffmanTable represents a Huffman coding table
type HuffmanTable struct {
	// Number of codes of each length (1-16 bits)
	Bits [16]int
	// Values for each code, in order of code length
	Values []byte
	// Codes indexed by symbol, filled in by Build
	Codes [256]HuffmanCode
}

// Build assigns canonical codes: symbols of length L receive consecutive
// codewords in listed order, and the running code doubles after each length.
func (h *HuffmanTable) Build() error {
	total := 0
	for _, n := range h.Bits {
		if n < 0 {
			return errors.Wrapf(ErrConfiguration, "negative code count %d", n)
		}
		total += n
	}
	if total != len(h.Values) {
		return errors.Wrapf(ErrConfiguration, "bit counts describe %d codes, got %d values", total, len(h.Values))
	}

	h.Codes = [256]HuffmanCode{}
	code := uint32(0)
	p := 0
	for l := 0; l < 16; l++ {
		for i := 0; i < h.Bits[l]; i++ {
			if code >= 1<<uint(l+1) {
				return errors.Wrapf(ErrConfiguration, "code space exhausted at length %d", l+1)
			}
			h.Codes[h.Values[p]] = HuffmanCode{Code: uint16(code), Len: l + 1}
			code++
			p++
		}
		code <<= 1
	}

	return nil
}

// Count returns the number of symbols in the table
func (h *HuffmanTable) Count() int {
	return len(h.Values)
}

// BuildStandardHuffmanTable builds a Huffman table from a bits/values pair
func BuildStandardHuffmanTable(bits [16]int, values []byte) (*HuffmanTable, error) {
	table := &HuffmanTable{
		Bits:   bits,
		Values: values,
	}
	if err := table.Build(); err != nil {
		return nil, err
	}
	return table, nil
}

// Category returns the number of bits needed for |val| and the sign-magnitude
// bits JPEG transmits after the Huffman symbol: val itself when positive,
// val + 2^cat - 1 when negative.
func Category(val int32) (cat int, mag uint32) {
	if val == 0 {
		return 0, 0
	}

	absVal := val
	if absVal < 0 {
		absVal = -absVal
	}
	cat = bits.Len32(uint32(absVal))

	if val > 0 {
		mag = uint32(val)
	} else {
		mag = uint32(int64(val) + (int64(1) << uint(cat)) - 1)
	}

	return cat, mag
}
