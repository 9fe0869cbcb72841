package codec

import "google.golang.org/protobuf/proto"

// Protobuf embeds a proto message (a chromatogram or scan record from
// another pipeline) as array text. Output is deterministic so equal
// messages yield equal text. Build with NewProtobuf.
type Protobuf[T proto.Message] struct {
	new func() T // e.g. func() *wrapperspb.BytesValue { return &wrapperspb.BytesValue{} }
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
