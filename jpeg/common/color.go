package common

// RGBToYCbCr converts one 8-bit RGB sample to level-shifted YCbCr using
// 16.16 fixed-point coefficients. The 0x807FFF bias on the chroma rows is
// 128<<16 plus rounding minus one, matching the integer JFIF transform.
func RGBToYCbCr(r, g, b byte) (y, cb, cr int32) {
	ri, gi, bi := int32(r), int32(g), int32(b)

	y = ((19595*ri + 38470*gi + 7471*bi + 32768) >> 16) - 128
	cb = ((-11059*ri - 21709*gi + 32768*bi + 0x807FFF) >> 16) - 128
	cr = ((32768*ri - 27439*gi - 5329*bi + 0x807FFF) >> 16) - 128

	return y, cb, cr
}
