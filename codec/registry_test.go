package codec_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/cocosip/go-jfif-codec/codec"
	_ "github.com/cocosip/go-jfif-codec/jpeg/baseline"
)

type fakeCodec struct {
	name string
	uid  string
}

func (f *fakeCodec) Encode(codec.EncodeParams) ([]byte, error)  { return nil, nil }
func (f *fakeCodec) Decode([]byte) (*codec.DecodeResult, error) { return nil, nil }
func (f *fakeCodec) UID() string                                { return f.uid }
func (f *fakeCodec) Name() string                               { return f.name }

func TestCodecRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantUID   string
		wantName  string
	}{
		{
			name:      "Get baseline by UID",
			key:       "1.2.840.10008.1.2.4.50",
			wantFound: true,
			wantUID:   "1.2.840.10008.1.2.4.50",
			wantName:  "jpeg-baseline",
		},
		{
			name:      "Get baseline by name",
			key:       "jpeg-baseline",
			wantFound: true,
			wantUID:   "1.2.840.10008.1.2.4.50",
			wantName:  "jpeg-baseline",
		},
		{
			name:      "Get non-existent codec",
			key:       "non-existent",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if !tt.wantFound {
				if !errors.Is(err, codec.ErrCodecNotFound) {
					t.Errorf("Get(%q) error = %v, want ErrCodecNotFound", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q) unexpected error: %v", tt.key, err)
			}
			if c.UID() != tt.wantUID {
				t.Errorf("UID() = %q, want %q", c.UID(), tt.wantUID)
			}
			if c.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", c.Name(), tt.wantName)
			}
		})
	}
}

func TestCodecList(t *testing.T) {
	codecs := codec.List()
	if len(codecs) == 0 {
		t.Fatal("List() returned no codecs")
	}

	found := false
	for _, c := range codecs {
		t.Logf("Codec: %s (UID: %s)", c.Name(), c.UID())
		if c.Name() == "jpeg-baseline" {
			found = true
		}
	}
	if !found {
		t.Error("jpeg-baseline not listed")
	}
}

func TestRegistryDuplicates(t *testing.T) {
	r := codec.NewRegistry()

	a := &fakeCodec{name: "b-codec", uid: "1.2.3"}
	if err := r.Register(a); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	// Re-registering the same codec is a no-op
	if err := r.Register(a); err != nil {
		t.Errorf("re-Register failed: %v", err)
	}

	if err := r.Register(&fakeCodec{name: "b-codec", uid: "9.9"}); !errors.Is(err, codec.ErrDuplicateCodec) {
		t.Errorf("duplicate name: got %v, want ErrDuplicateCodec", err)
	}
	if err := r.Register(&fakeCodec{name: "other", uid: "1.2.3"}); !errors.Is(err, codec.ErrDuplicateCodec) {
		t.Errorf("duplicate UID: got %v, want ErrDuplicateCodec", err)
	}

	if err := r.Register(&fakeCodec{name: "a-codec", uid: "4.5.6"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d codecs, want 2", len(list))
	}
	if list[0].Name() != "a-codec" || list[1].Name() != "b-codec" {
		t.Errorf("List() order = %s, %s", list[0].Name(), list[1].Name())
	}
}

func TestBaseOptionsValidate(t *testing.T) {
	if err := (&codec.BaseOptions{Quality: 500, Workers: 4}).Validate(); err != nil {
		t.Errorf("out-of-range quality should be clamped by the codec, got %v", err)
	}
	if err := (&codec.BaseOptions{Workers: -1}).Validate(); !errors.Is(err, codec.ErrInvalidParameter) {
		t.Errorf("negative workers: got %v, want ErrInvalidParameter", err)
	}
}
