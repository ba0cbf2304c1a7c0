package literal

import "fmt"

// Phase is the scanner's position within the literal grammar.
type Phase uint8

const (
	PrePoint Phase = iota
	PostPoint
	ExponentSign
	ExponentDigits
)

func (p Phase) String() string {
	switch p {
	case PrePoint:
		return "PrePoint"
	case PostPoint:
		return "PostPoint"
	case ExponentSign:
		return "ExponentSign"
	case ExponentDigits:
		return "ExponentDigits"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// maxExponent caps the written exponent; anything larger is far outside
// every supported precision and assembles to overflow or zero anyway.
const maxExponent = 1 << 30

// State is the accumulator carried through a scan. It is a plain value;
// each accepted character yields the next State.
type State struct {
	Base  Base
	Phase Phase

	Mantissa Mantissa
	// Digits counts mantissa digits on both sides of the point.
	Digits int
	// PointShift is the exponent adjustment implied by fractional digits:
	// -1 per decimal digit, -4 per hex digit.
	PointShift int64

	// Negative is the written exponent's sign.
	Negative bool
	// Exponent is the written exponent's magnitude, saturated at 2^30.
	Exponent  int64
	ExpDigits int
}

// NetExponent returns PointShift plus the signed written exponent. The
// literal's value is Mantissa × Base.Radix()^NetExponent.
func (s State) NetExponent() int64 {
	exp := s.Exponent
	if s.Negative {
		exp = -exp
	}
	return s.PointShift + exp
}

func (s State) String() string {
	sign := "+"
	if s.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s{mantissa=%s shift=%d exp=%s%d phase=%s}",
		s.Base, s.Mantissa, s.PointShift, sign, s.Exponent, s.Phase)
}

func pushExponent(exp int64, digit byte) int64 {
	exp = exp*10 + int64(digit-'0')
	return min(exp, maxExponent)
}
