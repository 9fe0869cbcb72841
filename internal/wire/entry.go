package wire

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

const (
	version     byte = 1
	kindBytes   byte = 1
	entryHeader      = 4 + 1 + 1 + 8 + 4
)

var (
	ErrCorrupt = errors.New("b64frame: corrupt memo entry")
	magic4     = [...]byte{'B', '6', '4', 'F'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | kind(1=bytes) | sum(u64 be, xxhash of payload) | vlen(u32 be) | payload(vlen)
func EncodeEntry(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(entryHeader + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindBytes)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], xxhash.Sum64(payload))
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeEntry returns the payload of an entry. The returned slice aliases b.
func DecodeEntry(b []byte) ([]byte, error) {
	if len(b) < entryHeader || !hasMagic(b) || b[4] != version || b[5] != kindBytes {
		return nil, ErrCorrupt
	}

	off := 6

	sum := binary.BigEndian.Uint64(b[off : off+8])
	off += 8

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // exact: no trailing bytes
		return nil, ErrCorrupt
	}

	payload := b[off : off+vlen]
	if xxhash.Sum64(payload) != sum {
		return nil, ErrCorrupt
	}
	return payload, nil
}
