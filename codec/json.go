package codec

import "encoding/json"

// JSON holds free-form run or instrument parameters. Fine for blobs of a
// few hundred bytes; use Float64s or Float32s for the arrays themselves.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
