package common

// Butterfly constants of the AAN (Arai, Agui, Nakajima) scaled DCT
const (
	aanC4   = 0.707106781 // cos(4*pi/16)
	aanR6   = 0.382683433 // cos(6*pi/16)
	aanC2C6 = 0.541196100 // cos(2*pi/16) - cos(6*pi/16)
	aanC2P6 = 1.306562965 // cos(2*pi/16) + cos(6*pi/16)
)

// ForwardDCT performs the separable AAN forward DCT in place on an 8x8
// block of level-shifted samples in natural order. The output is scaled by
// AANScale[row]*AANScale[col]*8, which BuildDCTScale folds back out.
func ForwardDCT(data *[64]float64) {
	// 1D DCT on rows
	for off := 0; off < 64; off += 8 {
		aanPass(data, off, 1)
	}

	// 1D DCT on columns
	for off := 0; off < 8; off++ {
		aanPass(data, off, 8)
	}
}

// aanPass runs one 8-point butterfly over data[off], data[off+step], ...
func aanPass(data *[64]float64, off, step int) {
	d0 := data[off]
	d1 := data[off+step]
	d2 := data[off+2*step]
	d3 := data[off+3*step]
	d4 := data[off+4*step]
	d5 := data[off+5*step]
	d6 := data[off+6*step]
	d7 := data[off+7*step]

	tmp0 := d0 + d7
	tmp7 := d0 - d7
	tmp1 := d1 + d6
	tmp6 := d1 - d6
	tmp2 := d2 + d5
	tmp5 := d2 - d5
	tmp3 := d3 + d4
	tmp4 := d3 - d4

	// Even part
	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	data[off] = tmp10 + tmp11
	data[off+4*step] = tmp10 - tmp11

	z1 := (tmp12 + tmp13) * aanC4
	data[off+2*step] = tmp13 + z1
	data[off+6*step] = tmp13 - z1

	// Odd part
	tmp10 = tmp4 + tmp5
	tmp11 = tmp5 + tmp6
	tmp12 = tmp6 + tmp7

	z5 := (tmp10 - tmp12) * aanR6
	z2 := aanC2C6*tmp10 + z5
	z4 := aanC2P6*tmp12 + z5
	z3 := tmp11 * aanC4

	z11 := tmp7 + z3
	z13 := tmp7 - z3

	data[off+5*step] = z13 + z2
	data[off+3*step] = z13 - z2
	data[off+step] = z11 + z4
	data[off+7*step] = z11 - z4
}

// Quantize multiplies each coefficient by its scale entry and rounds half
// away from zero. Both arrays are in natural order.
func Quantize(data *[64]float64, scale *[64]float64, out *[64]int32) {
	for i := 0; i < 64; i++ {
		v := data[i] * scale[i]
		if v > 0 {
			out[i] = int32(v + 0.5)
		} else {
			out[i] = int32(v - 0.5)
		}
	}
}

// ForwardDCTQuantize transforms one data unit and quantizes it into out.
// data is overwritten.
func ForwardDCTQuantize(data *[64]float64, scale *[64]float64, out *[64]int32) {
	ForwardDCT(data)
	Quantize(data, scale, out)
}
