package baseline

import (
	"sync"

	"github.com/cocosip/go-jfif-codec/jpeg/common"
)

// Table classes. Y uses class 0; Cb and Cr share class 1.
const (
	classLuma   = 0
	classChroma = 1
)

// EncoderTables holds everything derived from a quality level. It is
// immutable once built and may be shared by concurrent encodes.
type EncoderTables struct {
	// Quality is the clamped quality the tables were built for
	Quality int
	// ScaleFactor is the IJG percentage derived from Quality
	ScaleFactor int

	// Quant holds the luma and chroma quantization tables in zigzag order
	Quant [2][64]int32
	// Scale holds the per-coefficient FDCT multipliers in natural order
	Scale [2][64]float64

	DC [2]*common.HuffmanTable
	AC [2]*common.HuffmanTable
}

// BuildTables derives quantization tables, DCT scale factors and the four
// standard Huffman tables for a quality level. Quality is clamped to [1,100].
func BuildTables(quality int) (*EncoderTables, error) {
	quality = common.ClampQuality(quality)

	t := &EncoderTables{
		Quality:     quality,
		ScaleFactor: common.ScaleFactor(quality),
	}

	// Initialize quantization tables
	t.Quant[classLuma] = common.ScaleQuantTable(common.DefaultLuminanceQuantTable, quality)
	t.Quant[classChroma] = common.ScaleQuantTable(common.DefaultChrominanceQuantTable, quality)
	t.Scale[classLuma] = common.BuildDCTScale(t.Quant[classLuma])
	t.Scale[classChroma] = common.BuildDCTScale(t.Quant[classChroma])

	// Initialize Huffman tables
	var err error
	if t.DC[classLuma], err = common.BuildStandardHuffmanTable(
		common.StandardDCLuminanceBits,
		common.StandardDCLuminanceValues,
	); err != nil {
		return nil, err
	}
	if t.AC[classLuma], err = common.BuildStandardHuffmanTable(
		common.StandardACLuminanceBits,
		common.StandardACLuminanceValues,
	); err != nil {
		return nil, err
	}
	if t.DC[classChroma], err = common.BuildStandardHuffmanTable(
		common.StandardDCChrominanceBits,
		common.StandardDCChrominanceValues,
	); err != nil {
		return nil, err
	}
	if t.AC[classChroma], err = common.BuildStandardHuffmanTable(
		common.StandardACChrominanceBits,
		common.StandardACChrominanceValues,
	); err != nil {
		return nil, err
	}

	return t, nil
}

// TableCache memoizes EncoderTables by clamped quality. Entries never change
// after they are built, so the cache needs no invalidation. The zero value
// is ready to use and safe for concurrent use.
type TableCache struct {
	mu     sync.RWMutex
	tables map[int]*EncoderTables
}

// NewTableCache creates an empty cache
func NewTableCache() *TableCache {
	return &TableCache{tables: make(map[int]*EncoderTables)}
}

// Get returns the tables for quality, building them on first use
func (c *TableCache) Get(quality int) (*EncoderTables, error) {
	quality = common.ClampQuality(quality)

	c.mu.RLock()
	t, ok := c.tables[quality]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tables[quality]; ok {
		return t, nil
	}
	t, err := BuildTables(quality)
	if err != nil {
		return nil, err
	}
	if c.tables == nil {
		c.tables = make(map[int]*EncoderTables)
	}
	c.tables[quality] = t
	return t, nil
}

// Len returns the number of cached quality levels
func (c *TableCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}
