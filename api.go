package b64frame

import (
	"github.com/unkn0wn-root/b64frame/deflate"
)

// Options tune a Codec. The zero value is ready to use.
type Options struct {
	Deflate         deflate.Codec // nil => deflate.Zlib{} at DefaultCompression
	MaxDecompressed int           // declared frame length cap; 0 => 1 GiB, <0 => unlimited
	Lenient         bool          // skip alphabet validation on decode (legacy behavior)
	Logger          Logger        // if nil, NopLogger is used
	Hooks           Hooks         // if nil, NopHooks is used
}

var std = New(Options{})

// Default returns the Codec behind the package-level functions.
func Default() *Codec { return std }

// Encode encodes b with the default Codec.
func Encode(b []byte, compress bool) (string, error) { return std.Encode(b, compress) }

// EncodeToString encodes b without compression. It never fails.
func EncodeToString(b []byte) string { return std.EncodeToString(b) }

// Decode decodes text with the default Codec.
func Decode(text string, compress bool) ([]byte, error) { return std.Decode(text, compress) }

// EncodeStrings encodes a string set with the default Codec.
func EncodeStrings(list []string, compress, appendTrailingNull bool) (string, error) {
	return std.EncodeStrings(list, compress, appendTrailingNull)
}

// DecodeStrings decodes a string set with the default Codec.
func DecodeStrings(text string, compress bool) ([]string, error) {
	return std.DecodeStrings(text, compress)
}
