package deflate

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/flate"
)

// Raw is a bare RFC 1951 deflate stream with no container. Use it only when
// the reading side expects headerless streams. The zero value uses
// DefaultCompression.
type Raw struct {
	Level int
}

var _ Codec = Raw{}

var rawWriters sync.Map // level -> *sync.Pool

func rawPool(level int) *sync.Pool {
	if p, ok := rawWriters.Load(level); ok {
		return p.(*sync.Pool)
	}
	p, _ := rawWriters.LoadOrStore(level, &sync.Pool{})
	return p.(*sync.Pool)
}

func (Raw) Name() string { return "deflate" }

func (d Raw) level() int {
	if d.Level == 0 {
		return DefaultCompression
	}
	return d.Level
}

func (d Raw) Compress(dst, src []byte) ([]byte, error) {
	level := d.level()
	pool := rawPool(level)
	out := &appendWriter{b: dst}

	w, _ := pool.Get().(*flate.Writer)
	if w == nil {
		var err error
		if w, err = flate.NewWriter(out, level); err != nil {
			return nil, fmt.Errorf("deflate level %d: %w", level, err)
		}
	} else {
		w.Reset(out)
	}

	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("deflate write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate close failed: %w", err)
	}
	w.Reset(nil)
	pool.Put(w)
	return out.b, nil
}

func (Raw) Decompress(src []byte, size int) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmpty
	}
	r := flate.NewReader(bytes.NewReader(src))
	defer r.Close()

	out, err := readExact(r, size)
	if err != nil {
		return nil, fmt.Errorf("deflate read failed: %w", err)
	}
	return out, nil
}
