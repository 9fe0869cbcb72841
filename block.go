package b64frame

import (
	"github.com/unkn0wn-root/b64frame/internal/kernel"
)

// EncodedLen returns the text length for n raw bytes: 4*ceil(n/3).
func EncodedLen(n int) int { return (n + 2) / 3 * 4 }

// encodeBlocks runs the encode kernel over whole 12-byte blocks and one
// zero-filled scratch block for the tail, then writes the padding.
func encodeBlocks(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := make([]byte, EncodedLen(len(src)))

	si, di := 0, 0
	for ; len(src)-si >= kernel.RawBlock; si, di = si+kernel.RawBlock, di+kernel.TextBlock {
		kernel.EncodeBlock((*[kernel.TextBlock]byte)(dst[di:]), (*[kernel.RawBlock]byte)(src[si:]))
	}

	tail := len(src) - si
	if tail == 0 {
		return dst
	}
	var in [kernel.RawBlock]byte
	var out [kernel.TextBlock]byte
	copy(in[:], src[si:])
	kernel.EncodeBlock(&out, &in)

	n := copy(dst[di:], out[:EncodedLen(tail)])
	switch tail % 3 {
	case 1:
		dst[di+n-2] = kernel.Pad
		dst[di+n-1] = kernel.Pad
	case 2:
		dst[di+n-1] = kernel.Pad
	}
	return dst
}

// padding counts trailing Pad characters.
func padding(text string) int {
	n := 0
	for n < len(text) && text[len(text)-1-n] == kernel.Pad {
		n++
	}
	return n
}

// decodeBlocks validates text and runs the decode kernel over it. Chunks
// free of padding go straight to the kernel; the last chunk is decoded
// from a scratch block with Pad replaced by the sentinel.
func decodeBlocks(text string, lenient bool) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}
	if len(text)%4 != 0 {
		return nil, &LengthError{Len: len(text)}
	}

	pad := padding(text)
	if pad > 2 {
		return nil, &AlphabetError{Offset: len(text) - pad, Char: kernel.Pad}
	}
	body := text[:len(text)-pad]
	if !lenient {
		if i := kernel.Scan(body); i >= 0 {
			return nil, &AlphabetError{Offset: i, Char: body[i]}
		}
	}

	dst := make([]byte, len(text)/4*3-pad)

	var blk [kernel.TextBlock]byte
	si, di := 0, 0
	for ; len(body)-si >= kernel.TextBlock; si, di = si+kernel.TextBlock, di+kernel.RawBlock {
		copy(blk[:], text[si:])
		kernel.DecodeBlock((*[kernel.RawBlock]byte)(dst[di:]), &blk)
	}

	if si == len(text) {
		return dst, nil
	}
	rest := text[si:]
	for i := range blk {
		if i < len(rest) && rest[i] != kernel.Pad {
			blk[i] = rest[i]
		} else {
			blk[i] = kernel.Sentinel
		}
	}
	var out [kernel.RawBlock]byte
	kernel.DecodeBlock(&out, &blk)
	copy(dst[di:], out[:])
	return dst, nil
}
