package baseline

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/dicom/transfer"
	"github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

var _ codec.Codec = (*BaselineCodec)(nil)

// BaselineCodec implements the go-dicom codec.Codec interface for JPEG
// Baseline (Process 1), 8-bit RGB or monochrome frames, 4:4:4 sampling.
type BaselineCodec struct {
	transferSyntax *transfer.Syntax
	quality        int
	cache          *TableCache
}

// NewBaselineCodec creates a new JPEG Baseline codec with a default quality
func NewBaselineCodec(quality int) *BaselineCodec {
	return &BaselineCodec{
		transferSyntax: transfer.JPEGBaseline8Bit,
		quality:        resolveQuality(quality),
		cache:          NewTableCache(),
	}
}

// Name returns the codec name
func (c *BaselineCodec) Name() string {
	return fmt.Sprintf("JPEG Baseline (Quality %d)", c.quality)
}

// TransferSyntax returns the transfer syntax this codec handles
func (c *BaselineCodec) TransferSyntax() *transfer.Syntax {
	return c.transferSyntax
}

// GetDefaultParameters returns the default codec parameters
func (c *BaselineCodec) GetDefaultParameters() codec.Parameters {
	return NewBaselineParameters().WithQuality(c.quality)
}

// Encode encodes every frame of oldPixelData into newPixelData
func (c *BaselineCodec) Encode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return fmt.Errorf("source and destination PixelData cannot be nil")
	}

	// Get frame info
	frameInfo := oldPixelData.GetFrameInfo()
	if frameInfo == nil {
		return fmt.Errorf("failed to get frame info from source pixel data")
	}
	if frameInfo.BitsAllocated != 8 {
		return fmt.Errorf("JPEG Baseline requires 8-bit samples, got BitsAllocated=%d", frameInfo.BitsAllocated)
	}
	samples := int(frameInfo.SamplesPerPixel)
	if samples != 1 && samples != 3 {
		return fmt.Errorf("unsupported SamplesPerPixel=%d", samples)
	}

	// Get encoding parameters
	var baselineParams *JPEGBaselineParameters
	if parameters != nil {
		// Try to use typed parameters if provided
		if bp, ok := parameters.(*JPEGBaselineParameters); ok {
			baselineParams = bp
		} else {
			// Fallback: create from generic parameters
			baselineParams = NewBaselineParameters()
			if q := parameters.GetParameter("quality"); q != nil {
				if qInt, ok := q.(int); ok {
					baselineParams.Quality = qInt
				}
			}
			if w := parameters.GetParameter("workers"); w != nil {
				if wInt, ok := w.(int); ok {
					baselineParams.Workers = wInt
				}
			}
		}
	} else {
		// Use codec defaults
		baselineParams = NewBaselineParameters().WithQuality(c.quality)
	}

	// Validate parameters
	if err := baselineParams.Validate(); err != nil {
		return err
	}
	opts := &Options{
		Quality: baselineParams.Quality,
		Workers: baselineParams.Workers,
		Cache:   c.cache,
	}

	width, height := int(frameInfo.Width), int(frameInfo.Height)

	// Process all frames
	frameCount := oldPixelData.FrameCount()
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}

		if len(frameData) == 0 {
			return fmt.Errorf("frame %d pixel data is empty", frameIndex)
		}

		rgb, err := frameToRGB(frameData, width, height, samples, int(frameInfo.PlanarConfiguration))
		if err != nil {
			return fmt.Errorf("frame %d: %w", frameIndex, err)
		}

		jpegData, err := EncodeWithOptions(&Image{Pix: rgb, Width: width, Height: height, Channels: 3}, opts)
		if err != nil {
			return fmt.Errorf("JPEG Baseline encode failed for frame %d: %w", frameIndex, err)
		}

		// Add encoded frame to destination
		if err := newPixelData.AddFrame(jpegData); err != nil {
			return fmt.Errorf("failed to add encoded frame %d: %w", frameIndex, err)
		}
	}

	return nil
}

// Decode decodes JPEG Baseline frames back to native pixel data
func (c *BaselineCodec) Decode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return fmt.Errorf("source and destination PixelData cannot be nil")
	}

	// Get frame info
	frameInfo := oldPixelData.GetFrameInfo()
	if frameInfo == nil {
		return fmt.Errorf("failed to get frame info from source pixel data")
	}

	// Process all frames
	frameCount := oldPixelData.FrameCount()
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}

		if len(frameData) == 0 {
			return fmt.Errorf("frame %d pixel data is empty", frameIndex)
		}

		rgb, width, height, _, err := Decode(frameData)
		if err != nil {
			return fmt.Errorf("JPEG Baseline decode failed for frame %d: %w", frameIndex, err)
		}

		// Verify dimensions match
		if width != int(frameInfo.Width) || height != int(frameInfo.Height) {
			return fmt.Errorf("decoded dimensions (%dx%d) don't match expected (%dx%d)",
				width, height, frameInfo.Width, frameInfo.Height)
		}

		out := rgb
		if frameInfo.SamplesPerPixel == 1 {
			out = rgbToGray(rgb)
		}

		if err := newPixelData.AddFrame(out); err != nil {
			return fmt.Errorf("failed to add decoded frame %d: %w", frameIndex, err)
		}
	}

	return nil
}

// frameToRGB converts a native DICOM frame to interleaved RGB. Monochrome
// samples are replicated; planar (color-by-plane) RGB is interleaved.
func frameToRGB(frame []byte, width, height, samples, planar int) ([]byte, error) {
	n := width * height
	if len(frame) < n*samples {
		return nil, fmt.Errorf("frame has %d bytes, need %d", len(frame), n*samples)
	}

	switch {
	case samples == 1:
		rgb := make([]byte, n*3)
		for i := 0; i < n; i++ {
			v := frame[i]
			rgb[i*3], rgb[i*3+1], rgb[i*3+2] = v, v, v
		}
		return rgb, nil
	case planar == 1:
		rgb := make([]byte, n*3)
		for i := 0; i < n; i++ {
			rgb[i*3] = frame[i]
			rgb[i*3+1] = frame[n+i]
			rgb[i*3+2] = frame[2*n+i]
		}
		return rgb, nil
	default:
		return frame[:n*3], nil
	}
}

// rgbToGray keeps the first channel of a decoded gray-replicated frame
func rgbToGray(rgb []byte) []byte {
	gray := make([]byte, len(rgb)/3)
	for i := range gray {
		gray[i] = rgb[i*3]
	}
	return gray
}

// RegisterBaselineCodec registers the JPEG Baseline codec with the go-dicom global registry
func RegisterBaselineCodec(quality int) {
	registry := codec.GetGlobalRegistry()
	baselineCodec := NewBaselineCodec(quality)
	registry.RegisterCodec(transfer.JPEGBaseline8Bit, baselineCodec)
}

func init() {
	RegisterBaselineCodec(DefaultQuality)
}
