package util

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// MemoKey returns the storage key for a decoded text:
//
//	memo:<ns>:<mode>:<xxhash64 hex>:<text length>
//
// mode names the decode settings the result depends on, so codecs that
// would decode the same text differently never share an entry.
func MemoKey(ns, mode, text string) string {
	b := make([]byte, 0, len(ns)+len(mode)+48)
	b = append(b, "memo:"...)
	b = append(b, ns...)
	b = append(b, ':')
	b = append(b, mode...)
	b = append(b, ':')
	b = appendHex64(b, xxhash.Sum64String(text))
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(len(text)), 10)
	return string(b)
}

func appendHex64(b []byte, v uint64) []byte {
	const digits = "0123456789abcdef"
	for shift := 60; shift >= 0; shift -= 4 {
		b = append(b, digits[(v>>uint(shift))&0xF])
	}
	return b
}
