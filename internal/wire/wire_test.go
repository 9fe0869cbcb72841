package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/unkn0wn-root/b64frame/deflate"
)

func mustDecodeEntry(t *testing.T, b []byte) []byte {
	t.Helper()
	p, err := DecodeEntry(b)
	if err != nil {
		t.Fatalf("DecodeEntry error: %v", err)
	}
	return p
}

func TestEntryRTEmptyAndNonEmpty(t *testing.T) {
	for _, payload := range [][]byte{nil, []byte("hello"), {0, 1, 2, 3, 4}} {
		p := mustDecodeEntry(t, EncodeEntry(payload))
		if !bytes.Equal(p, payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, payload)
		}
	}
}

func TestEntryRejectsTrailingBytes(t *testing.T) {
	enc := EncodeEntry([]byte("x"))
	enc = append(enc, 0xDE, 0xAD)
	if _, err := DecodeEntry(enc); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestEntryCorruptHeadersAndPayload(t *testing.T) {
	enc := EncodeEntry([]byte("abc"))

	mutate := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), enc...))
	}

	cases := map[string][]byte{
		"bad magic":   mutate(func(b []byte) []byte { b[0] = 'X'; return b }),
		"bad version": mutate(func(b []byte) []byte { b[4] = version + 1; return b }),
		"bad kind":    mutate(func(b []byte) []byte { b[5] = kindBytes + 1; return b }),
		"bad sum":     mutate(func(b []byte) []byte { b[6] ^= 0xFF; return b }),
		"flipped bit": mutate(func(b []byte) []byte { b[len(b)-1] ^= 0x01; return b }),
		"short len": mutate(func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[14:18], 2)
			return b
		}),
		"truncated":   enc[:len(enc)-1],
		"header only": enc[:entryHeader-1],
	}
	for name, b := range cases {
		if _, err := DecodeEntry(b); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("%s: expected ErrCorrupt, got %v", name, err)
		}
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	for _, d := range []deflate.Codec{deflate.Zlib{}, deflate.Raw{}} {
		for _, in := range [][]byte{{}, []byte("x"), bytes.Repeat([]byte("peak"), 4096)} {
			frame, err := EncodeCompressed(d, in)
			if err != nil {
				t.Fatalf("%s: EncodeCompressed: %v", d.Name(), err)
			}
			if got := binary.BigEndian.Uint32(frame[:4]); int(got) != len(in) {
				t.Fatalf("%s: header=%d want %d", d.Name(), got, len(in))
			}
			out, err := DecodeCompressed(d, frame, -1)
			if err != nil {
				t.Fatalf("%s: DecodeCompressed: %v", d.Name(), err)
			}
			if !bytes.Equal(out, in) {
				t.Fatalf("%s: mismatch", d.Name())
			}
		}
	}
}

func TestCompressedCorruptLength(t *testing.T) {
	d := deflate.Zlib{}
	frame, err := EncodeCompressed(d, []byte("intensity values"))
	if err != nil {
		t.Fatal(err)
	}
	bad := append([]byte(nil), frame...)
	bad[3]++
	if _, err := DecodeCompressed(d, bad, -1); !errors.Is(err, deflate.ErrSize) {
		t.Fatalf("expected ErrSize, got %v", err)
	}
}

func TestCompressedTruncatedAndEmpty(t *testing.T) {
	d := deflate.Zlib{}
	if _, err := DecodeCompressed(d, []byte{0, 0, 1}, -1); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if _, err := DecodeCompressed(d, []byte{0, 0, 0, 5}, -1); !errors.Is(err, deflate.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestCompressedLimit(t *testing.T) {
	d := deflate.Zlib{}
	frame, err := EncodeCompressed(d, bytes.Repeat([]byte{7}, 1000))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeCompressed(d, frame, 999); !errors.Is(err, ErrOverLimit) {
		t.Fatalf("expected ErrOverLimit, got %v", err)
	}
	if _, err := DecodeCompressed(d, frame, 1000); err != nil {
		t.Fatalf("limit equal to size must pass: %v", err)
	}
}

func TestCompressedOversizedPrefix(t *testing.T) {
	d := deflate.Zlib{}
	stream := []byte{0x78, 0x9c, 0x03, 0x00, 0x00, 0x00, 0x00, 0x01} // zlib of ""
	for _, ulen := range []uint32{0x80000001, math.MaxUint32} {
		frame := binary.BigEndian.AppendUint32(nil, ulen)
		frame = append(frame, stream...)

		if _, err := DecodeCompressed(d, frame, 1<<30); !errors.Is(err, ErrOverLimit) {
			t.Fatalf("%#x: expected ErrOverLimit, got %v", ulen, err)
		}

		// Unlimited: only hosts where the length fits in an int try to inflate.
		_, err := DecodeCompressed(d, frame, -1)
		want := deflate.ErrSize
		if strconv.IntSize == 32 {
			want = ErrOverLimit
		}
		if !errors.Is(err, want) {
			t.Fatalf("%#x unlimited: expected %v, got %v", ulen, want, err)
		}
	}
}

func TestFrameSize(t *testing.T) {
	n, err := FrameSize([]byte{0x01, 0x02, 0x03, 0x04, 0xFF})
	if err != nil || n != 0x01020304 {
		t.Fatalf("FrameSize: got %d, %v", n, err)
	}
	n, err = FrameSize([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	if err != nil || n != math.MaxUint32 {
		t.Fatalf("FrameSize high bit: got %d, %v", n, err)
	}
}

func TestJoinStrings(t *testing.T) {
	cases := []struct {
		in       []string
		trailing bool
		want     string
	}{
		{nil, false, ""},
		{nil, true, ""},
		{[]string{"a"}, false, "a"},
		{[]string{"a"}, true, "a\x00"},
		{[]string{"scan=1", "scan=2"}, false, "scan=1\x00scan=2"},
		{[]string{"scan=1", "scan=2"}, true, "scan=1\x00scan=2\x00"},
		{[]string{"", "b"}, true, "\x00b\x00"},
	}
	for _, tc := range cases {
		if got := string(JoinStrings(tc.in, tc.trailing)); got != tc.want {
			t.Fatalf("JoinStrings(%q,%v)=%q want %q", tc.in, tc.trailing, got, tc.want)
		}
	}
}

func TestSplitStrings(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"\x00\x00", []string{}},
		{"a", []string{"a"}},
		{"a\x00", []string{"a"}},
		{"a\x00\x00b", []string{"a", "b"}},
		{"\x00a\x00bc\x00", []string{"a", "bc"}},
	}
	for _, tc := range cases {
		if got := SplitStrings([]byte(tc.in)); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitStrings(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestStringsRoundTripDropsEmpty(t *testing.T) {
	in := []string{"alpha", "", "gamma", strings.Repeat("z", 300)}
	for _, trailing := range []bool{false, true} {
		got := SplitStrings(JoinStrings(in, trailing))
		want := []string{"alpha", "gamma", strings.Repeat("z", 300)}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("trailing=%v: got %q want %q", trailing, got, want)
		}
	}
}
