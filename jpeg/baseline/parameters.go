package baseline

import (
	"github.com/cocosip/go-dicom/pkg/imaging/codec"
)

// Ensure JPEGBaselineParameters implements codec.Parameters
var _ codec.Parameters = (*JPEGBaselineParameters)(nil)

// JPEGBaselineParameters contains parameters for JPEG Baseline compression
type JPEGBaselineParameters struct {
	// Quality controls the JPEG compression quality (1-100)
	// - 100: Best quality, minimal compression
	// - 80:  Default
	// - 50:  Standard tables unscaled
	// - 1:   Lowest quality, maximum compression
	// Values outside the range are clamped, never rejected.
	Quality int

	// Workers > 1 parallelizes the per-MCU transform of each frame
	Workers int

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewBaselineParameters creates a new JPEGBaselineParameters with default values
func NewBaselineParameters() *JPEGBaselineParameters {
	return &JPEGBaselineParameters{
		Quality: DefaultQuality,
		params:  make(map[string]interface{}),
	}
}

// GetParameter retrieves a parameter by name (implements codec.Parameters)
func (p *JPEGBaselineParameters) GetParameter(name string) interface{} {
	switch name {
	case "quality":
		return p.Quality
	case "workers":
		return p.Workers
	default:
		// Check custom parameters
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters)
func (p *JPEGBaselineParameters) SetParameter(name string, value interface{}) {
	switch name {
	case "quality":
		if v, ok := value.(int); ok {
			p.Quality = v
		}
	case "workers":
		if v, ok := value.(int); ok {
			p.Workers = v
		}
	default:
		// Store as custom parameter
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate normalizes the parameters: quality is clamped, negative worker
// counts fall back to sequential encoding.
func (p *JPEGBaselineParameters) Validate() error {
	p.Quality = resolveQuality(p.Quality)
	if p.Workers < 0 {
		p.Workers = 0
	}
	return nil
}

// WithQuality sets the quality and returns the parameters for chaining
func (p *JPEGBaselineParameters) WithQuality(quality int) *JPEGBaselineParameters {
	p.Quality = quality
	return p
}

// WithWorkers sets the worker count and returns the parameters for chaining
func (p *JPEGBaselineParameters) WithWorkers(workers int) *JPEGBaselineParameters {
	p.Workers = workers
	return p
}
