package b64frame

import (
	"fmt"

	"github.com/unkn0wn-root/b64frame/codec"
)

// EncodeValue serializes v with vc and encodes the bytes as text.
// A nil c uses the default Codec.
func EncodeValue[V any](c *Codec, vc codec.Codec[V], v V, compress bool) (string, error) {
	if c == nil {
		c = std
	}
	b, err := vc.Encode(v)
	if err != nil {
		return "", fmt.Errorf("b64frame: value encode: %w", err)
	}
	return c.Encode(b, compress)
}

// DecodeValue decodes text and deserializes the bytes with vc.
// A nil c uses the default Codec.
func DecodeValue[V any](c *Codec, vc codec.Codec[V], text string, compress bool) (V, error) {
	var zero V
	if c == nil {
		c = std
	}
	b, err := c.Decode(text, compress)
	if err != nil {
		return zero, err
	}
	v, err := vc.Decode(b)
	if err != nil {
		return zero, fmt.Errorf("b64frame: value decode: %w", err)
	}
	return v, nil
}
