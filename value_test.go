package b64frame

import (
	"encoding/base64"
	"math"
	"reflect"
	"testing"

	"github.com/unkn0wn-root/b64frame/codec"
)

func TestFloat64ArrayRoundTrip(t *testing.T) {
	in := []float64{100.5, 200.25, math.Pi, -0, math.Inf(1), 1e-300}
	for _, compress := range []bool{false, true} {
		text, err := EncodeValue(nil, codec.Float64s{}, in, compress)
		if err != nil {
			t.Fatal(err)
		}
		got, err := DecodeValue(nil, codec.Float64s{}, text, compress)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, in) {
			t.Fatalf("compress=%v: got %v", compress, got)
		}
	}
}

func TestFloat32ArrayWireLayout(t *testing.T) {
	// 1.0f little-endian is 00 00 80 3f.
	text, err := EncodeValue(nil, codec.Float32s{}, []float32{1}, false)
	if err != nil {
		t.Fatal(err)
	}
	if want := base64.StdEncoding.EncodeToString([]byte{0, 0, 0x80, 0x3f}); text != want {
		t.Fatalf("got %q want %q", text, want)
	}
}

func TestDecodeValueRaggedArray(t *testing.T) {
	text := EncodeToString(make([]byte, 12))
	if _, err := DecodeValue(nil, codec.Float64s{}, text, false); err == nil {
		t.Fatalf("expected error for 12 bytes of float64")
	}
	v, err := DecodeValue(New(Options{}), codec.Float32s{}, text, false)
	if err != nil || len(v) != 3 {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestValueJSON(t *testing.T) {
	type param struct {
		Accession string  `json:"accession"`
		Value     float64 `json:"value"`
	}
	in := param{Accession: "MS:1000504", Value: 445.34}
	text, err := EncodeValue(nil, codec.JSON[param]{}, in, true)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeValue(nil, codec.JSON[param]{}, text, true)
	if err != nil || got != in {
		t.Fatalf("got %+v, %v", got, err)
	}
}
