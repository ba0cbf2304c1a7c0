// Package literal recognises decimal and hexadecimal floating-point literals
// and accepts only those whose value is a positive integer power of one-half.
//
// # Pipeline
//
//   - Classify picks the grammar: a "0x"/"0X" prefix selects the hex-float
//     grammar, everything else (including a lone "0") is decimal.
//   - Scan walks the characters left to right through the phases PrePoint,
//     PostPoint, ExponentSign and ExponentDigits, accumulating a State.
//   - Parse hands the State to package exact, which assembles the value in
//     the requested precision and runs the power-of-one-half check.
//
// The first violation stops processing and is returned as an *Error carrying
// one of three Kinds. Their messages are fixed and user visible.
//
// # Grammars
//
//	decimal   digits ['.' digits] [('e'|'E') ['+'|'-'] digits]
//	hex-float '0x' hexdigits ['.' hexdigits] ('p'|'P') ['+'|'-'] digits
//
// At least one mantissa digit is required in both grammars; digits may appear
// on either side of the point. The exponent part is optional for decimals and
// mandatory for hex-floats, whose exponent digits are decimal. A hex-float
// mantissa must additionally have exactly one set bit.
//
// Everything here is pure: no state is shared between literals, so callers
// may validate any number of literals concurrently.
package literal
