package spintax

import "unicode/utf16"

// Hash maps a seed string to a non-negative integer.
//
// It folds the UTF-16 code units of seed with hash = hash*31 + unit using
// 32-bit two's-complement wraparound and returns the absolute value of the
// final 32-bit result. The empty string hashes to 0.
func Hash(seed string) uint32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(seed)) {
		h = h*31 + int32(unit)
	}
	if h < 0 {
		// -MinInt32 does not fit in int32
		return uint32(-int64(h))
	}
	return uint32(h)
}
