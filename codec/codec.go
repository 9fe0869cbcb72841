// Package codec turns typed values into the raw byte buffers that b64frame
// encodes as text. Float64s and Float32s produce the little-endian IEEE 754
// layout of binary data arrays; the rest wrap general serializers.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
