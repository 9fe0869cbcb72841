// Package kernel holds the fixed-size block transforms behind b64frame:
// 12 raw bytes <-> 16 Base64 characters (RFC 4648 standard alphabet).
//
// The transforms emulate four 32-bit lanes over plain uint32 arithmetic so the
// same code runs on every GOARCH. Host byte order only affects the two
// byte shuffles at the lane boundaries; the text produced is identical.
package kernel

import "golang.org/x/sys/cpu"

const (
	// RawBlock is the number of input bytes consumed by EncodeBlock.
	RawBlock = 12
	// TextBlock is the number of characters produced by EncodeBlock.
	TextBlock = 16

	// Pad is the RFC 4648 padding character.
	Pad = '='
	// Sentinel is an in-alphabet stand-in for Pad inside a decode block.
	Sentinel = 'A'

	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	invalid = 0xFF
)

// decodeMap maps ASCII to its 6-bit value, or invalid.
var decodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = byte(i)
	}
	return m
}()

// Valid reports whether c is one of the 64 alphabet characters (Pad excluded).
func Valid(c byte) bool { return decodeMap[c] != invalid }

// Order is the simulated host byte order used by the lane shuffles.
type Order uint8

const (
	LittleEndian Order = iota
	BigEndian
)

func (o Order) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// Host is the byte order of the running GOARCH.
var Host = func() Order {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}()

// lanes describes the order-specific shuffles.
type lanes struct {
	// spread moves each 3-byte group into a 4-byte lane (middle byte doubled)
	// so that a host-order load yields b1 | b0<<8 | b2<<16 | b1<<24.
	spread [16]uint8
	// compact picks the 12 meaningful bytes out of four host-order stored
	// lanes holding b0<<16 | b1<<8 | b2.
	compact [12]uint8
}

var shuffles = [2]lanes{
	LittleEndian: {
		spread:  [16]uint8{1, 0, 2, 1, 4, 3, 5, 4, 7, 6, 8, 7, 10, 9, 11, 10},
		compact: [12]uint8{2, 1, 0, 6, 5, 4, 10, 9, 8, 14, 13, 12},
	},
	BigEndian: {
		spread:  [16]uint8{1, 2, 0, 1, 4, 5, 3, 4, 7, 8, 6, 7, 10, 11, 9, 10},
		compact: [12]uint8{1, 2, 3, 5, 6, 7, 9, 10, 11, 13, 14, 15},
	},
}

// load reads a 32-bit lane the way a host of order o would.
func (o Order) load(b []byte) uint32 {
	_ = b[3]
	if o == BigEndian {
		return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// store writes a 32-bit lane the way a host of order o would.
func (o Order) store(b []byte, v uint32) {
	_ = b[3]
	if o == BigEndian {
		b[0], b[1], b[2], b[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
		return
	}
	b[0], b[1], b[2], b[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
}

// lt returns 0xFF when a < b, else 0. Inputs are bytes so the
// borrow lands in bit 8.
func lt(a, b byte) byte { return byte((uint16(a) - uint16(b)) >> 8) }

// eq returns 0xFF when a == b, else 0.
func eq(a, b byte) byte { return lt(a^b, 1) }
