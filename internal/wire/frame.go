package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/unkn0wn-root/b64frame/deflate"
)

// FrameHeader is the size of the uncompressed-length prefix.
const FrameHeader = 4

var (
	ErrTruncated = errors.New("b64frame: compression frame shorter than header")
	ErrTooLarge  = errors.New("b64frame: buffer exceeds 32-bit frame length")
	ErrOverLimit = errors.New("b64frame: declared length over limit")
)

// Compressed: ulen(u32 be) | deflate stream
func EncodeCompressed(d deflate.Codec, payload []byte) ([]byte, error) {
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}
	// deflate rarely beats 2:1 on float arrays; start from half.
	buf := make([]byte, FrameHeader, FrameHeader+len(payload)/2+64)
	binary.BigEndian.PutUint32(buf, uint32(len(payload)))

	out, err := d.Compress(buf, payload)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FrameSize returns the declared uncompressed length of a compression frame.
func FrameSize(b []byte) (uint32, error) {
	if len(b) < FrameHeader {
		return 0, ErrTruncated
	}
	return binary.BigEndian.Uint32(b[:FrameHeader]), nil
}

// DecodeCompressed validates the frame header and inflates the stream.
// limit < 0 disables the declared-length check; lengths that do not fit
// in an int are always over the limit.
func DecodeCompressed(d deflate.Codec, b []byte, limit int) ([]byte, error) {
	ulen, err := FrameSize(b)
	if err != nil {
		return nil, err
	}
	if uint64(ulen) > math.MaxInt || (limit >= 0 && uint64(ulen) > uint64(limit)) {
		return nil, fmt.Errorf("%w: %d > %d", ErrOverLimit, ulen, limit)
	}
	return d.Decompress(b[FrameHeader:], int(ulen))
}
