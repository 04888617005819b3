package codec

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ErrDuplicateCodec is returned when a name or UID is already taken
var ErrDuplicateCodec = errors.New("codec already registered")

// Registry manages the available codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec // key can be either name or UID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

var defaultRegistry = NewRegistry()

// Register registers a codec in the default registry, panicking on a
// duplicate name or UID. Meant for package init functions.
func Register(codec Codec) {
	if err := defaultRegistry.Register(codec); err != nil {
		panic(err)
	}
}

// Get retrieves a codec by name or UID
func Get(nameOrUID string) (Codec, error) {
	return defaultRegistry.Get(nameOrUID)
}

// List returns all registered codecs
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec using both its name and UID
func (r *Registry) Register(codec Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range []string{codec.Name(), codec.UID()} {
		if existing, ok := r.codecs[key]; ok && existing != codec {
			return errors.Wrapf(ErrDuplicateCodec, "%q", key)
		}
	}

	// Register by both name and UID
	r.codecs[codec.Name()] = codec
	r.codecs[codec.UID()] = codec
	return nil
}

// Get retrieves a codec by name or UID
func (r *Registry) Get(nameOrUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[nameOrUID]
	if !ok {
		return nil, errors.Wrapf(ErrCodecNotFound, "%q", nameOrUID)
	}
	return codec, nil
}

// List returns all registered codecs (deduplicated), sorted by name
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Codec]bool)
	codecs := make([]Codec, 0)

	for _, codec := range r.codecs {
		if !seen[codec] {
			seen[codec] = true
			codecs = append(codecs, codec)
		}
	}

	sort.Slice(codecs, func(i, j int) bool { return codecs[i].Name() < codecs[j].Name() })
	return codecs
}
