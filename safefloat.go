// Package safefloat parses decimal and hexadecimal floating point literals
// and accepts only those whose value, rounded to the target precision, is
// exactly a positive integer power of one-half: 0.5, 0.25, 0x1p-20 and so on.
//
// Malformed literals and values that miss the power-of-one-half set are both
// reported as *Error. Use errors.Is with ErrMalformedDecimal, ErrMalformedHex
// or ErrNotPowerOfHalf to tell them apart.
package safefloat

import (
	"safefloat/internal/exact"
	"safefloat/internal/literal"
)

// Precision selects the representation a literal is rounded into.
type Precision = exact.Precision

// Value is a validated literal in its Precision.
type Value = exact.Value

// Error describes a rejected literal.
type Error = literal.Error

// Kind classifies a rejected literal.
type Kind = literal.Kind

const (
	Float32Precision  = exact.Float32
	Float64Precision  = exact.Float64
	ExtendedPrecision = exact.Extended
)

const (
	MalformedDecimal = literal.MalformedDecimal
	MalformedHex     = literal.MalformedHex
	NotPowerOfHalf   = literal.NotPowerOfHalf
)

var (
	ErrMalformedDecimal = literal.ErrMalformedDecimal
	ErrMalformedHex     = literal.ErrMalformedHex
	ErrNotPowerOfHalf   = literal.ErrNotPowerOfHalf
)

// ParsePrecision maps "sf", "sd", "sld" (and the longer spellings
// "float32", "float64", "extended") to a Precision.
func ParsePrecision(s string) (Precision, error) {
	return exact.ParsePrecision(s)
}

// Parse validates text and returns its value in p.
func Parse(text string, p Precision) (Value, error) {
	return literal.Parse(text, p)
}

// Valid reports whether text is a power of one-half in p.
func Valid(text string, p Precision) bool {
	return literal.Valid(text, p)
}

// Float32 parses text as a binary32 power of one-half.
func Float32(text string) (float32, error) {
	v, err := literal.Parse(text, exact.Float32)
	if err != nil {
		return 0, err
	}
	return v.Float32(), nil
}

// Float64 parses text as a binary64 power of one-half.
func Float64(text string) (float64, error) {
	v, err := literal.Parse(text, exact.Float64)
	if err != nil {
		return 0, err
	}
	return v.Float64(), nil
}

// MustFloat32 is like Float32 but panics with the *Error. It is meant for
// package-level variables initialised from constant strings, which
// `safefloat scan` checks ahead of time.
func MustFloat32(text string) float32 {
	f, err := Float32(text)
	if err != nil {
		panic(err)
	}
	return f
}

// MustFloat64 is like Float64 but panics with the *Error.
func MustFloat64(text string) float64 {
	f, err := Float64(text)
	if err != nil {
		panic(err)
	}
	return f
}

// IsPowerOfHalf32 reports whether f is 2^-k for some k >= 1.
func IsPowerOfHalf32(f float32) bool {
	return exact.IsPowerOfHalf(exact.FromFloat32(f))
}

// IsPowerOfHalf64 reports whether f is 2^-k for some k >= 1.
func IsPowerOfHalf64(f float64) bool {
	return exact.IsPowerOfHalf(exact.FromFloat64(f))
}
