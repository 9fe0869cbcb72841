package kernel

// EncodeBlock encodes 12 raw bytes into 16 Base64 characters.
func EncodeBlock(dst *[TextBlock]byte, src *[RawBlock]byte) {
	encodeBlock(dst, src, Host)
}

func encodeBlock(dst *[TextBlock]byte, src *[RawBlock]byte, o Order) {
	sh := &shuffles[o]

	var spread [TextBlock]byte
	for i, j := range sh.spread {
		spread[i] = src[j]
	}

	var fields [TextBlock]byte
	for l := 0; l < TextBlock; l += 4 {
		w := o.load(spread[l : l+4])
		lo := w & 0xFFFF // b0<<8 | b1
		hi := w >> 16    // b1<<8 | b2

		fields[l+0] = byte(lo>>8) >> 2
		fields[l+1] = byte(lo>>4) & 0x3F
		fields[l+2] = byte(hi>>6) & 0x3F
		fields[l+3] = byte(hi) & 0x3F
	}

	for i, v := range fields {
		dst[i] = encodeChar(v)
	}
}

// encodeChar maps a 6-bit value to its character. Exactly one of the
// five masks is set for any v in [0, 64).
func encodeChar(v byte) byte {
	upper := lt(v, 26)
	lower := lt(v, 52) &^ upper
	digit := lt(v, 62) &^ (upper | lower)
	plus := eq(v, 62)
	slash := ^(upper | lower | digit | plus)

	return upper&(v+'A') |
		lower&(v+'a'-26) |
		digit&(v+'0'-52) |
		plus&'+' |
		slash&'/'
}
