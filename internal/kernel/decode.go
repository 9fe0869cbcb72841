package kernel

// DecodeBlock decodes 16 alphabet characters into 12 raw bytes.
// Characters outside the alphabet (Pad included) produce unspecified
// output; callers validate first.
func DecodeBlock(dst *[RawBlock]byte, src *[TextBlock]byte) {
	decodeBlock(dst, src, Host)
}

func decodeBlock(dst *[RawBlock]byte, src *[TextBlock]byte, o Order) {
	var vals [TextBlock]byte
	for i, c := range src {
		vals[i] = decodeChar(c)
	}

	var packed [TextBlock]byte
	for l := 0; l < TextBlock; l += 4 {
		w := uint32(vals[l])<<24 | uint32(vals[l+1])<<16 | uint32(vals[l+2])<<8 | uint32(vals[l+3])

		b0 := byte(w>>24)<<2 | byte(w>>16)>>4
		b1 := byte(w>>16)<<4 | byte(w>>8)>>2
		b2 := byte(w>>8)<<6 | byte(w)
		o.store(packed[l:l+4], uint32(b0)<<16|uint32(b1)<<8|uint32(b2))
	}

	sh := &shuffles[o]
	for i, j := range sh.compact {
		dst[i] = packed[j]
	}
}

// decodeChar maps a character to its 6-bit value. Priority is '+', '/',
// digits, upper, lower; each mask excludes the ones before it.
func decodeChar(c byte) byte {
	plus := eq(c, '+')
	slash := eq(c, '/')
	digit := lt(c, '9'+1) &^ (plus | slash)
	upper := lt(c, 'Z'+1) &^ (plus | slash | digit)
	lower := lt(c, 'z'+1) &^ (plus | slash | digit | upper)

	return plus&62 |
		slash&63 |
		digit&(c+52-'0') |
		upper&(c-'A') |
		lower&(c-'a'+26)
}

// Scan returns the index of the first byte of s that is not an alphabet
// character, or -1.
func Scan(s string) int {
	for i := 0; i < len(s); i++ {
		if decodeMap[s[i]] == invalid {
			return i
		}
	}
	return -1
}
