package hexfmt

import "strconv"

const hexdigits = "0123456789abcdef"

// Digits returns the number of hex digits for an offset gutter spanning
// size bytes, at least 4 and always even.
func Digits(size int64) int {
	n := 0
	for v := size - 1; v > 0; v >>= 4 {
		n++
	}
	if n < 4 {
		n = 4
	}
	if n%2 != 0 {
		n++
	}
	return n
}

// Offset formats off as a zero-padded lowercase hex offset with the
// given digit count.
func Offset(off int64, digits int) string {
	s := strconv.FormatInt(off, 16)
	if len(s) >= digits {
		return s
	}
	pad := make([]byte, digits-len(s))
	for i := range pad {
		pad[i] = '0'
	}
	return string(pad) + s
}

// Byte returns the two-character hex encoding of b.
func Byte(b byte) string {
	return string([]byte{hexdigits[b>>4], hexdigits[b&0x0F]})
}

// Printable returns b for the ASCII column when it is a printable ASCII
// character, and '.' otherwise.
func Printable(b byte) byte {
	if b >= 0x20 && b <= 0x7E {
		return b
	}
	return '.'
}
