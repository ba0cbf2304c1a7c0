package literal

// Hex-floats follow the C grammar: the binary exponent is mandatory and its
// digits are decimal. Each fractional hex digit moves the point by 4 bits.
var hexGrammar = grammar{
	base:          Hex,
	prefix:        2,
	radix:         16,
	digit:         hexValue,
	marker:        func(b byte) bool { return b == 'p' || b == 'P' },
	shift:         4,
	needsExponent: true,
	fail:          MalformedHex,
}

func hexValue(b byte) (uint64, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint64(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint64(b-'A') + 10, true
	}
	return 0, false
}
