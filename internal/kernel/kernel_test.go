package kernel

import (
	"encoding/base64"
	"math/rand"
	"testing"
)

var orders = []Order{LittleEndian, BigEndian}

func randomBlock(r *rand.Rand) (b [RawBlock]byte) {
	for i := range b {
		b[i] = byte(r.Intn(256))
	}
	return b
}

func TestEncodeCharCoversAlphabet(t *testing.T) {
	for v := 0; v < 64; v++ {
		if got, want := encodeChar(byte(v)), Alphabet[v]; got != want {
			t.Fatalf("encodeChar(%d)=%q want %q", v, got, want)
		}
	}
}

func TestDecodeCharInvertsEncodeChar(t *testing.T) {
	for v := 0; v < 64; v++ {
		if got := decodeChar(Alphabet[v]); got != byte(v) {
			t.Fatalf("decodeChar(%q)=%d want %d", Alphabet[v], got, v)
		}
	}
}

func TestValidMatchesAlphabet(t *testing.T) {
	n := 0
	for c := 0; c < 256; c++ {
		if Valid(byte(c)) {
			n++
		}
	}
	if n != 64 {
		t.Fatalf("valid characters: got %d want 64", n)
	}
	if Valid(Pad) {
		t.Fatalf("pad must not be an alphabet character")
	}
	if !Valid(Sentinel) {
		t.Fatalf("sentinel must be an alphabet character")
	}
}

func TestEncodeBlockMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		src := randomBlock(r)
		want := base64.StdEncoding.EncodeToString(src[:])
		for _, o := range orders {
			var dst [TextBlock]byte
			encodeBlock(&dst, &src, o)
			if string(dst[:]) != want {
				t.Fatalf("%s: encode %x: got %s want %s", o, src, dst, want)
			}
		}
	}
}

func TestDecodeBlockMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		want := randomBlock(r)
		var text [TextBlock]byte
		base64.StdEncoding.Encode(text[:], want[:])
		for _, o := range orders {
			var got [RawBlock]byte
			decodeBlock(&got, &text, o)
			if got != want {
				t.Fatalf("%s: decode %s: got %x want %x", o, text, got, want)
			}
		}
	}
}

func TestByteOrdersAgree(t *testing.T) {
	src := [RawBlock]byte{0x00, 0xFF, 0x10, 0x83, 0x10, 0x51, 0x87, 0x20, 0x92, 0x8B, 0x30, 0xD3}
	var le, be [TextBlock]byte
	encodeBlock(&le, &src, LittleEndian)
	encodeBlock(&be, &src, BigEndian)
	if le != be {
		t.Fatalf("encode differs: le=%s be=%s", le, be)
	}
	var dle, dbe [RawBlock]byte
	decodeBlock(&dle, &le, LittleEndian)
	decodeBlock(&dbe, &be, BigEndian)
	if dle != src || dbe != src {
		t.Fatalf("decode differs: le=%x be=%x want %x", dle, dbe, src)
	}
}

func TestHostEntryPoints(t *testing.T) {
	src := [RawBlock]byte{'M', 'a', 'n', 'M', 'a', 'n', 'M', 'a', 'n', 'M', 'a', 'n'}
	var text [TextBlock]byte
	EncodeBlock(&text, &src)
	if string(text[:]) != "TWFuTWFuTWFuTWFu" {
		t.Fatalf("EncodeBlock: got %s", text)
	}
	var back [RawBlock]byte
	DecodeBlock(&back, &text)
	if back != src {
		t.Fatalf("DecodeBlock: got %q", back)
	}
}

func TestScan(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", -1},
		{"TWFu", -1},
		{"TW=u", 2},
		{"TWF\n", 3},
		{"-_ab", 0},
	}
	for _, tc := range cases {
		if got := Scan(tc.in); got != tc.want {
			t.Fatalf("Scan(%q)=%d want %d", tc.in, got, tc.want)
		}
	}
}

func TestByteOrdersAgreeOverManyBlocks(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	src := make([]byte, 50*RawBlock)
	r.Read(src)

	text := map[Order][]byte{}
	for _, o := range orders {
		out := make([]byte, 0, 50*TextBlock)
		for i := 0; i < len(src); i += RawBlock {
			var dst [TextBlock]byte
			encodeBlock(&dst, (*[RawBlock]byte)(src[i:]), o)
			out = append(out, dst[:]...)
		}
		text[o] = out

		back := make([]byte, 0, len(src))
		for i := 0; i < len(out); i += TextBlock {
			var dst [RawBlock]byte
			decodeBlock(&dst, (*[TextBlock]byte)(out[i:]), o)
			back = append(back, dst[:]...)
		}
		if string(back) != string(src) {
			t.Fatalf("%s: round trip mismatch", o)
		}
	}
	if string(text[LittleEndian]) != string(text[BigEndian]) {
		t.Fatalf("text differs between byte orders")
	}
	if want := base64.StdEncoding.EncodeToString(src); string(text[Host]) != want {
		t.Fatalf("host text differs from reference")
	}
}
