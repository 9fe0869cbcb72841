package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR carries typed numeric payloads (mixed-width floats, spectrum
// headers) where float widths must survive the trip. Build it with
// NewCBOR or MustCBOR; the zero value has no modes.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

// CBOROptions select the encoding mode.
type CBOROptions struct {
	// Deterministic uses CoreDetEncOptions (RFC 8949) for byte-stable output.
	// Otherwise PreferredUnsortedEncOptions are used.
	Deterministic bool
	// ShortestFloat stores each float in the smallest width that holds it
	// exactly (float16/32/64). Deterministic mode implies it.
	ShortestFloat bool
}

// NewCBOR constructs a CBOR codec. Time values are encoded as RFC3339Nano.
func NewCBOR[V any](o CBOROptions) (CBOR[V], error) {
	var eo cbor.EncOptions
	if o.Deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano
	if o.ShortestFloat {
		eo.ShortestFloat = cbor.ShortestFloat16
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Meant for package-level variables in tests/examples.
func MustCBOR[V any](o CBOROptions) CBOR[V] {
	c, err := NewCBOR[V](o)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}
