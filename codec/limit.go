package codec

import "fmt"

// LimitCodec wraps another codec and refuses to decode buffers larger than
// MaxDecode bytes. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Decoded arrays come from files of unknown origin; a limit keeps one
// oversized element from exhausting memory.
type LimitCodec[V any] struct {
	// Inner is the wrapped codec. It must be set.
	Inner Codec[V]
	// MaxDecode is the largest buffer, in bytes, handed to Inner.Decode.
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("codec: buffer too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
