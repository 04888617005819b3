package common

import "github.com/pkg/errors"

// Error taxonomy. Only ErrInvalidInput (and its wraps) reaches callers in
// normal operation; the other two mean the encoder itself is broken.
var (
	// ErrConfiguration reports malformed Huffman bit-count/value tables
	ErrConfiguration = errors.New("malformed coding table")

	// ErrInvalidInput reports a raster the encoder cannot accept
	ErrInvalidInput = errors.New("invalid input image")

	// ErrFatalInvariant reports a coefficient outside the codable range
	ErrFatalInvariant = errors.New("coefficient magnitude exceeds codable range")
)

// Specific input errors, all matching ErrInvalidInput with errors.Is
var (
	ErrInvalidDimensions = wrapInput("invalid image dimensions")
	ErrInvalidComponents = wrapInput("invalid number of components")
	ErrBufferTooSmall    = wrapInput("buffer too small")
	ErrEmptyBuffer       = wrapInput("empty pixel buffer")
)

func wrapInput(msg string) error {
	return errors.WithMessage(ErrInvalidInput, msg)
}
