package deflate

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// Zlib is a deflate stream inside an RFC 1950 container (2-byte header,
// Adler-32 trailer). It is the default and matches what existing readers of
// the frame expect. The zero value uses DefaultCompression.
type Zlib struct {
	Level int
}

var _ Codec = Zlib{}

var zlibWriters sync.Map // level -> *sync.Pool

func zlibPool(level int) *sync.Pool {
	if p, ok := zlibWriters.Load(level); ok {
		return p.(*sync.Pool)
	}
	p, _ := zlibWriters.LoadOrStore(level, &sync.Pool{})
	return p.(*sync.Pool)
}

func (Zlib) Name() string { return "zlib" }

func (z Zlib) level() int {
	if z.Level == 0 {
		return DefaultCompression
	}
	return z.Level
}

func (z Zlib) Compress(dst, src []byte) ([]byte, error) {
	level := z.level()
	pool := zlibPool(level)
	out := &appendWriter{b: dst}

	w, _ := pool.Get().(*zlib.Writer)
	if w == nil {
		var err error
		if w, err = zlib.NewWriterLevel(out, level); err != nil {
			return nil, fmt.Errorf("zlib level %d: %w", level, err)
		}
	} else {
		w.Reset(out)
	}

	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("zlib write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib close failed: %w", err)
	}
	w.Reset(nil)
	pool.Put(w)
	return out.b, nil
}

func (Zlib) Decompress(src []byte, size int) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmpty
	}
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("zlib reader init failed: %w", err)
	}
	defer r.Close()

	out, err := readExact(r, size)
	if err != nil {
		return nil, fmt.Errorf("zlib read failed: %w", err)
	}
	return out, nil
}
