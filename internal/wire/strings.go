package wire

import "bytes"

const stringTerminator = 0

// JoinStrings writes each string followed by a NUL. The NUL after the last
// string is written only when trailing is set.
func JoinStrings(list []string, trailing bool) []byte {
	n := len(list)
	for _, s := range list {
		n += len(s)
	}
	buf := make([]byte, 0, n)
	for i, s := range list {
		buf = append(buf, s...)
		if trailing || i < len(list)-1 {
			buf = append(buf, stringTerminator)
		}
	}
	return buf
}

// SplitStrings splits b on NUL and drops empty fragments. Empty strings that
// were joined in are lost.
func SplitStrings(b []byte) []string {
	out := make([]string, 0, bytes.Count(b, []byte{stringTerminator})+1)
	for len(b) > 0 {
		i := bytes.IndexByte(b, stringTerminator)
		if i < 0 {
			i = len(b)
		}
		if i > 0 {
			out = append(out, string(b[:i]))
		}
		if i == len(b) {
			break
		}
		b = b[i+1:]
	}
	return out
}
