// Package deflate adapts github.com/klauspost/compress to the compression
// frame used by b64frame. The frame stores the uncompressed size in front of
// the stream, so Decompress is told exactly how many bytes to expect.
package deflate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Levels follow compress/flate. Level 0 selects DefaultCompression in the
// codecs below; a stored (level 0) stream has no use inside the frame.
const (
	BestSpeed          = flate.BestSpeed
	BestCompression    = flate.BestCompression
	DefaultCompression = flate.DefaultCompression
	HuffmanOnly        = flate.HuffmanOnly
)

var (
	// ErrEmpty is returned when there is no stream to inflate.
	ErrEmpty = errors.New("deflate: empty stream")
	// ErrSize is returned when the inflated size differs from the declared one.
	ErrSize = errors.New("deflate: size mismatch")
)

// Codec is a whole-buffer deflate collaborator.
//
// Implementations must be safe for concurrent use.
type Codec interface {
	// Name identifies the stream container ("zlib", "deflate").
	Name() string
	// Compress appends the compressed form of src to dst.
	Compress(dst, src []byte) ([]byte, error)
	// Decompress inflates src, which must expand to exactly size bytes.
	Decompress(src []byte, size int) ([]byte, error)
}

// SizeError reports an inflated size that does not match the frame header.
type SizeError struct {
	Want int
	Got  int // Want+1 means "more than Want"
}

func (e *SizeError) Error() string {
	if e.Got > e.Want {
		return fmt.Sprintf("deflate: stream inflates past declared %d bytes", e.Want)
	}
	return fmt.Sprintf("deflate: stream inflates to %d bytes, declared %d", e.Got, e.Want)
}

func (e *SizeError) Unwrap() error { return ErrSize }

// maxPrealloc caps the up-front allocation trusted from a size header.
const maxPrealloc = 64 << 20

// readExact drains r, which must produce exactly size bytes before EOF.
// Reading to EOF lets container checksums be verified.
func readExact(r io.Reader, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrSize, size)
	}
	buf := bytes.NewBuffer(make([]byte, 0, min(size, maxPrealloc)))
	if _, err := buf.ReadFrom(io.LimitReader(r, int64(size)+1)); err != nil {
		return nil, err
	}
	if buf.Len() != size {
		return nil, &SizeError{Want: size, Got: buf.Len()}
	}
	return buf.Bytes(), nil
}

// appendWriter is a minimal io.Writer over a growing slice.
type appendWriter struct{ b []byte }

func (w *appendWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}
