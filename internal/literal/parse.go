package literal

import (
	"fmt"

	"safefloat/internal/exact"
)

// Scan classifies text and runs the matching grammar. The returned State is
// meaningful only when err is nil.
func Scan(text string) (State, error) {
	if Classify(text) == Hex {
		return hexGrammar.scan(text)
	}
	return decimalGrammar.scan(text)
}

// Parse validates text and returns its value rendered in p. Any failure is
// an *Error whose Kind tells a malformed literal from a value that is not a
// positive power of one-half.
func Parse(text string, p exact.Precision) (exact.Value, error) {
	st, err := Scan(text)
	if err != nil {
		return exact.Value{}, err
	}
	return Evaluate(text, st, p)
}

// Evaluate assembles a scanned State and validates the value.
func Evaluate(text string, st State, p exact.Precision) (exact.Value, error) {
	if !p.Valid() {
		return exact.Value{}, fmt.Errorf("literal: invalid precision %v", p)
	}
	v := exact.Assemble(st.Mantissa.Int(), st.Base.Radix(), st.NetExponent(), p)
	// a hex mantissa must itself be a power of two
	if st.Base == Hex && st.Mantissa.OnesCount() != 1 {
		return exact.Value{}, notPowerOfHalf(text, v)
	}
	if !exact.IsPowerOfHalf(v) {
		return exact.Value{}, notPowerOfHalf(text, v)
	}
	return v, nil
}

// Valid reports whether text is accepted in precision p.
func Valid(text string, p exact.Precision) bool {
	_, err := Parse(text, p)
	return err == nil
}
