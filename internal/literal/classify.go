package literal

// Base identifies the grammar a literal is written in.
type Base uint8

const (
	Decimal Base = iota
	Hex
)

func (b Base) String() string {
	if b == Hex {
		return "hex"
	}
	return "decimal"
}

// Radix returns the base the net exponent is applied to: 10 for decimal
// literals, 2 for hex-floats.
func (b Base) Radix() int64 {
	if b == Hex {
		return 2
	}
	return 10
}

// Classify reports Hex iff text starts with "0x" or "0X". It never fails;
// grammar errors surface only while scanning.
func Classify(text string) Base {
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return Hex
	}
	return Decimal
}
