package baseline

import (
	"io"

	"github.com/pkg/errors"

	"github.com/cocosip/go-jfif-codec/jpeg/common"
)

// Component indices within an MCU
const (
	compY = iota
	compCb
	compCr
	numComponents
)

// componentClass maps a component to its quantization/Huffman table class
var componentClass = [numComponents]int{classLuma, classChroma, classChroma}

// mcuBlocks holds the quantized Y, Cb and Cr data units of one MCU in
// natural order.
type mcuBlocks [numComponents][64]int32

// EncoderState is the per-image entropy coding state: the running DC
// predictors and the stuffing bit writer. It is never shared between images.
type EncoderState struct {
	predictors [numComponents]int32
	bw         *common.BitWriter
	tables     *EncoderTables
}

func newEncoderState(w io.ByteWriter, tables *EncoderTables) *EncoderState {
	return &EncoderState{
		bw:     common.NewBitWriter(w),
		tables: tables,
	}
}

// encodeMCU entropy codes the three data units of one MCU in Y, Cb, Cr order
func (s *EncoderState) encodeMCU(mcu *mcuBlocks) error {
	for comp := 0; comp < numComponents; comp++ {
		class := componentClass[comp]
		if err := s.encodeBlock(&mcu[comp], &s.predictors[comp], s.tables.DC[class], s.tables.AC[class]); err != nil {
			return errors.Wrapf(err, "component %d", comp)
		}
	}
	return nil
}

// encodeBlock zigzags one quantized block, codes the DC difference against
// *dcPred and run-length codes the AC coefficients.
func (s *EncoderState) encodeBlock(coef *[64]int32, dcPred *int32, dc, ac *common.HuffmanTable) error {
	var zz [64]int32
	for i := 0; i < 64; i++ {
		zz[common.ZigZag[i]] = coef[i]
	}

	// Encode DC coefficient
	diff := zz[0] - *dcPred
	*dcPred = zz[0]

	cat, bits := common.Category(diff)
	if cat > 15 || dc.Codes[cat].Len == 0 {
		return errors.Wrapf(common.ErrFatalInvariant, "DC difference %d (category %d)", diff, cat)
	}
	if err := s.bw.WriteCode(dc.Codes[cat]); err != nil {
		return err
	}
	if err := s.bw.WriteBits(bits, cat); err != nil {
		return err
	}

	// Encode AC coefficients
	eob := ac.Codes[0x00]
	zrl := ac.Codes[0xF0]

	end := 63
	for end > 0 && zz[end] == 0 {
		end--
	}
	if end == 0 {
		return s.bw.WriteCode(eob)
	}

	for i := 1; i <= end; i++ {
		start := i
		for zz[i] == 0 {
			i++
		}
		run := i - start

		// Emit any pending zero runs
		for ; run >= 16; run -= 16 {
			if err := s.bw.WriteCode(zrl); err != nil {
				return err
			}
		}

		cat, bits := common.Category(zz[i])
		symbol := run<<4 | cat
		if cat > 15 || ac.Codes[symbol].Len == 0 {
			return errors.Wrapf(common.ErrFatalInvariant, "AC coefficient %d at %d (category %d)", zz[i], i, cat)
		}
		if err := s.bw.WriteCode(ac.Codes[symbol]); err != nil {
			return err
		}
		if err := s.bw.WriteBits(bits, cat); err != nil {
			return err
		}
	}

	// EOB unless the last coefficient was coded
	if end != 63 {
		return s.bw.WriteCode(eob)
	}
	return nil
}

// finish pads the final partial byte with 1-bits
func (s *EncoderState) finish() error {
	return s.bw.Flush()
}
