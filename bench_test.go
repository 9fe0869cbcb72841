//go:build bench
// +build bench

package b64frame

import (
	"bytes"
	"encoding/base64"
	"math/rand"
	"testing"
)

var benchSizes = []struct {
	name string
	n    int
}{
	{"small", 96},
	{"medium", 16 << 10},
	{"large", 1 << 20},
}

func benchInput(n int) []byte {
	b := make([]byte, n)
	rand.New(rand.NewSource(int64(n))).Read(b)
	return b
}

func BenchmarkEncode(b *testing.B) {
	for _, bm := range benchSizes {
		in := benchInput(bm.n)
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(in)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = EncodeToString(in)
			}
		})
		b.Run(bm.name+"/stdlib", func(b *testing.B) {
			b.SetBytes(int64(len(in)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = base64.StdEncoding.EncodeToString(in)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, bm := range benchSizes {
		text := EncodeToString(benchInput(bm.n))
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Decode(text, false); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompressedRoundTrip(b *testing.B) {
	in := bytes.Repeat([]byte("intensity:0001"), 4096)
	b.SetBytes(int64(len(in)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		text, err := Encode(in, true)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := Decode(text, true); err != nil {
			b.Fatal(err)
		}
	}
}
