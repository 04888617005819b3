package baseline

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/cocosip/go-jfif-codec/jpeg/common"
)

// DefaultQuality is used when the caller leaves quality unset (0)
const DefaultQuality = 80

// compressionEstimate sizes the output buffer as raw bytes / estimate
const compressionEstimate = 10

// ErrEncoderFinalized is returned when an Encoder is used for a second image
var ErrEncoderFinalized = errors.New("encoder already finalized")

// Image is an interleaved 8-bit RGB or RGBA raster, row-major, top to bottom
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA, alpha ignored)
}

// Validate checks the raster before any byte is written
func (m *Image) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return errors.Wrapf(common.ErrInvalidDimensions, "%dx%d", m.Width, m.Height)
	}
	// SOF0 carries 16-bit dimensions
	if m.Width > 0xFFFF || m.Height > 0xFFFF {
		return errors.Wrapf(common.ErrInvalidDimensions, "%dx%d exceeds 65535", m.Width, m.Height)
	}
	if m.Channels != 3 && m.Channels != 4 {
		return errors.Wrapf(common.ErrInvalidComponents, "%d", m.Channels)
	}
	if len(m.Pix) == 0 {
		return common.ErrEmptyBuffer
	}
	if need := m.Width * m.Height * m.Channels; len(m.Pix) < need {
		return errors.Wrapf(common.ErrBufferTooSmall, "have %d bytes, need %d", len(m.Pix), need)
	}
	return nil
}

// Options are the encoding parameters
type Options struct {
	// Quality ranges from 1 to 100 inclusive, higher is better. 0 selects
	// DefaultQuality; other out-of-range values are clamped.
	Quality int

	// Workers > 1 computes color transform and DCT for MCU rows concurrently.
	// Entropy coding is always sequential.
	Workers int

	// Cache, when set, supplies the EncoderTables for Quality
	Cache *TableCache

	// Logger receives debug records; nil discards them
	Logger *slog.Logger
}

// resolveQuality maps the unset value to DefaultQuality and clamps the rest
func resolveQuality(quality int) int {
	if quality == 0 {
		return DefaultQuality
	}
	return common.ClampQuality(quality)
}

type encoderPhase int

const (
	phaseInitialized encoderPhase = iota
	phaseHeaderWritten
	phaseScanning
	phaseFinalized
)

func (p encoderPhase) String() string {
	switch p {
	case phaseInitialized:
		return "initialized"
	case phaseHeaderWritten:
		return "header-written"
	case phaseScanning:
		return "scanning"
	case phaseFinalized:
		return "finalized"
	}
	return "unknown"
}

// Encoder produces one baseline JPEG. It is single use: after Encode
// returns, successfully or not, further calls fail with ErrEncoderFinalized.
type Encoder struct {
	tables  *EncoderTables
	workers int
	logger  *slog.Logger
	phase   encoderPhase
}

// NewEncoder resolves quality and builds (or fetches) the encoder tables
func NewEncoder(o *Options) (*Encoder, error) {
	if o == nil {
		o = &Options{}
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	quality := resolveQuality(o.Quality)

	var (
		tables *EncoderTables
		err    error
	)
	if o.Cache != nil {
		tables, err = o.Cache.Get(quality)
	} else {
		tables, err = BuildTables(quality)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "build tables for quality %d", quality)
	}
	logger.Debug("quality set", "quality", tables.Quality, "scale_factor", tables.ScaleFactor)

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}

	return &Encoder{
		tables:  tables,
		workers: workers,
		logger:  logger,
		phase:   phaseInitialized,
	}, nil
}

// Tables returns the tables this encoder codes with
func (enc *Encoder) Tables() *EncoderTables {
	return enc.tables
}

// Encode encodes one image and returns the complete JPEG byte stream
func (enc *Encoder) Encode(img *Image) ([]byte, error) {
	if enc.phase != phaseInitialized {
		return nil, errors.Wrapf(ErrEncoderFinalized, "encoder is %s", enc.phase)
	}
	// Terminal regardless of outcome
	defer func() { enc.phase = phaseFinalized }()

	if img == nil {
		return nil, errors.Wrap(common.ErrInvalidInput, "nil image")
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	var buf bytes.Buffer
	buf.Grow(headerSize + img.Width*img.Height*img.Channels/compressionEstimate + 2)
	writer := common.NewWriter(&buf)

	if err := enc.writeHeader(writer, img.Width, img.Height); err != nil {
		return nil, errors.Wrap(err, "write header")
	}
	enc.phase = phaseHeaderWritten

	state := newEncoderState(&buf, enc.tables)
	enc.phase = phaseScanning

	var err error
	if enc.workers > 1 && common.DivCeil(img.Height, 8) > 1 {
		err = enc.scanParallel(state, img)
	} else {
		err = enc.scan(state, img)
	}
	if err != nil {
		return nil, errors.Wrap(err, "encode scan")
	}

	// Pad the final byte and close the image
	if err := state.finish(); err != nil {
		return nil, err
	}
	if err := writer.WriteMarker(common.MarkerEOI); err != nil {
		return nil, err
	}

	enc.logger.Debug("encoded image",
		"width", img.Width,
		"height", img.Height,
		"quality", enc.tables.Quality,
		"bytes", buf.Len(),
		"workers", enc.workers,
		"duration", time.Since(start),
	)

	return buf.Bytes(), nil
}

// scan walks the image in 8x8 MCU raster order, coding each MCU as soon as
// it is transformed.
func (enc *Encoder) scan(state *EncoderState, img *Image) error {
	blocksWide := common.DivCeil(img.Width, 8)
	blocksHigh := common.DivCeil(img.Height, 8)

	var mcu mcuBlocks
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			enc.transformMCU(img, bx, by, &mcu)
			if err := state.encodeMCU(&mcu); err != nil {
				return errors.Wrapf(err, "MCU (%d,%d)", bx, by)
			}
		}
	}
	return nil
}

// transformMCU reads the 8x8 pixel footprint of MCU (bx, by), converts it
// to YCbCr and forward-DCT-quantizes each component into mcu. Reads past the
// right or bottom edge repeat the last column or row.
func (enc *Encoder) transformMCU(img *Image, bx, by int, mcu *mcuBlocks) {
	var du [numComponents][64]float64

	stride := img.Width * img.Channels
	lastX, lastY := img.Width-1, img.Height-1
	x0, y0 := bx*8, by*8

	for row := 0; row < 8; row++ {
		y := y0 + row
		if y > lastY {
			y = lastY
		}
		line := img.Pix[y*stride:]
		for col := 0; col < 8; col++ {
			x := x0 + col
			if x > lastX {
				x = lastX
			}
			p := x * img.Channels
			yy, cb, cr := common.RGBToYCbCr(line[p], line[p+1], line[p+2])

			pos := row*8 + col
			du[compY][pos] = float64(yy)
			du[compCb][pos] = float64(cb)
			du[compCr][pos] = float64(cr)
		}
	}

	for comp := 0; comp < numComponents; comp++ {
		common.ForwardDCTQuantize(&du[comp], &enc.tables.Scale[componentClass[comp]], &mcu[comp])
	}
}

// Encode encodes interleaved RGB (channels=3) or RGBA (channels=4) pixel
// data to baseline JPEG. quality: 1-100, 0 for DefaultQuality.
func Encode(pixelData []byte, width, height, channels, quality int) ([]byte, error) {
	return EncodeWithOptions(&Image{
		Pix:      pixelData,
		Width:    width,
		Height:   height,
		Channels: channels,
	}, &Options{Quality: quality})
}

// EncodeWithOptions encodes img with a fresh single-use Encoder
func EncodeWithOptions(img *Image, o *Options) ([]byte, error) {
	enc, err := NewEncoder(o)
	if err != nil {
		return nil, err
	}
	return enc.Encode(img)
}
