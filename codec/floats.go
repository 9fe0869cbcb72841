package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Float64s packs a []float64 as consecutive little-endian 64-bit IEEE 754
// values. The zero value is ready to use.
type Float64s struct{}

var _ Codec[[]float64] = Float64s{}

func (Float64s) Encode(v []float64) ([]byte, error) {
	b := make([]byte, 8*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint64(b[8*i:], math.Float64bits(f))
	}
	return b, nil
}

func (Float64s) Decode(b []byte) ([]float64, error) {
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("codec: %d bytes is not a whole number of float64 values", len(b))
	}
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return v, nil
}

// Float32s packs a []float32 as consecutive little-endian 32-bit IEEE 754
// values. The zero value is ready to use.
type Float32s struct{}

var _ Codec[[]float32] = Float32s{}

func (Float32s) Encode(v []float32) ([]byte, error) {
	b := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b, nil
}

func (Float32s) Decode(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("codec: %d bytes is not a whole number of float32 values", len(b))
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v, nil
}
