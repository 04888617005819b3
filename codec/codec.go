package codec

// Codec is the universal interface for the image codecs in this module
type Codec interface {
	// Encode encodes pixel data
	Encode(params EncodeParams) ([]byte, error)

	// Decode decodes compressed data
	Decode(data []byte) (*DecodeResult, error)

	// UID returns the unique identifier (typically DICOM Transfer Syntax UID)
	UID() string

	// Name returns a human-readable name
	Name() string
}

// EncodeParams contains parameters for encoding
type EncodeParams struct {
	PixelData  []byte  // Raw interleaved pixel data
	Width      int     // Image width
	Height     int     // Image height
	Components int     // Samples per pixel (3=RGB, 4=RGBA)
	BitDepth   int     // Bits per sample, 0 or 8 for JPEG baseline
	Options    Options // Codec-specific options
}

// Options is an interface for codec-specific encoding options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	PixelData  []byte // Decoded pixel data
	Width      int    // Image width
	Height     int    // Image height
	Components int    // Number of color components
	BitDepth   int    // Bits per sample
}

// BaseOptions provides common options for all codecs
type BaseOptions struct {
	// Quality factor for lossy codecs (1-100, higher is better).
	// 0 selects the codec default; other values outside the range are clamped.
	Quality int

	// Workers bounds the goroutines a codec may use for one image.
	// 0 or 1 means sequential.
	Workers int
}

// Validate validates base options
func (o *BaseOptions) Validate() error {
	if o.Workers < 0 {
		return ErrInvalidParameter
	}
	return nil
}
