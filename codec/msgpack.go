package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack packs per-array metadata (accession, unit, precision flags) that
// travels beside the encoded arrays. Compact enough to sit in an XML
// attribute once encoded; field names follow `msgpack:"name"` tags.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}
func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
