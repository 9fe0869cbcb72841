// Package b64frame converts byte buffers to RFC 4648 Base64 text and back,
// for the binary data arrays embedded in XML instrument-data files.
//
// Layers (each optional except the Base64 core):
//   - StringSetFrame: strings joined with NUL terminators (EncodeStrings).
//   - CompressionFrame: u32 big-endian uncompressed length + deflate stream.
//   - Base64 core: 12-byte -> 16-character block kernels plus a driver that
//     handles the tail block and '=' padding.
//
// Frames:
//
//	compressed: ulen(u32 be) | deflate stream (zlib container by default)
//	strings:    s0 NUL s1 NUL ... sN [NUL]
//
// Decoding validates the alphabet before any kernel runs; Options.Lenient
// restores the permissive behavior of older readers.
//
// Typical use:
//
//	text, _ := b64frame.EncodeValue(nil, codec.Float64s{}, mz, true)
//	mz, err := b64frame.DecodeValue(nil, codec.Float64s{}, text, true)
//
// For readers that revisit the same arrays, Memo caches decoded buffers in
// a provider (Ristretto, BigCache, Redis).
package b64frame
