package literal

var decimalGrammar = grammar{
	base:   Decimal,
	radix:  10,
	digit:  decValue,
	marker: func(b byte) bool { return b == 'e' || b == 'E' },
	shift:  1,
	fail:   MalformedDecimal,
}

func decValue(b byte) (uint64, bool) {
	if isDec(b) {
		return uint64(b - '0'), true
	}
	return 0, false
}
