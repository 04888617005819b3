package baseline

import (
	"github.com/pkg/errors"

	"github.com/cocosip/go-jfif-codec/codec"
)

// Codec implements the codec.Codec interface for JPEG Baseline
type Codec struct {
	cache *TableCache
}

// NewCodec creates a new JPEG Baseline codec. Tables are cached per quality
// for the codec's lifetime.
func NewCodec() *Codec {
	return &Codec{cache: NewTableCache()}
}

// Encode encodes pixel data using JPEG Baseline
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	if params.BitDepth != 0 && params.BitDepth != 8 {
		return nil, errors.Wrapf(codec.ErrUnsupportedFormat, "bit depth %d", params.BitDepth)
	}

	// Extract quality from options
	opts := &Options{Cache: c.cache}
	if params.Options != nil {
		if err := params.Options.Validate(); err != nil {
			return nil, err
		}
		switch o := params.Options.(type) {
		case *CodecOptions:
			opts.Quality = o.Quality
			opts.Workers = o.Workers
		case *codec.BaseOptions:
			opts.Quality = o.Quality
			opts.Workers = o.Workers
		}
	}

	return EncodeWithOptions(&Image{
		Pix:      params.PixelData,
		Width:    params.Width,
		Height:   params.Height,
		Channels: params.Components,
	}, opts)
}

// Decode decodes JPEG Baseline data to interleaved RGB
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	pixelData, width, height, components, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return &codec.DecodeResult{
		PixelData:  pixelData,
		Width:      width,
		Height:     height,
		Components: components,
		BitDepth:   8, // Baseline is always 8-bit
	}, nil
}

// UID returns the DICOM Transfer Syntax UID for JPEG Baseline
func (c *Codec) UID() string {
	return "1.2.840.10008.1.2.4.50"
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "jpeg-baseline"
}

// CodecOptions contains encoding options for JPEG Baseline
type CodecOptions struct {
	codec.BaseOptions
}

// Validate validates the options
func (o *CodecOptions) Validate() error {
	return o.BaseOptions.Validate()
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
