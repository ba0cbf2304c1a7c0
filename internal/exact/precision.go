package exact

import (
	"fmt"
	"strings"
)

// Precision selects the floating-point representation a literal is rendered
// into before validation.
type Precision uint8

const (
	// PrecisionInvalid is the zero value; Assemble refuses it.
	PrecisionInvalid Precision = iota
	// Float32 is IEEE-754 binary32 (suffix "sf").
	Float32
	// Float64 is IEEE-754 binary64 (suffix "sd").
	Float64
	// Extended emulates the x87 80-bit long double (suffix "sld").
	Extended
)

// format описывает параметры представления.
type format struct {
	name   string
	suffix string
	// significand bits, including the leading one
	bits int64
	// values >= 2^maxExp overflow to +Inf
	maxExp int64
	// exponent of the smallest subnormal, 2^minExp
	minExp int64
	// coarse decimal bounds: 10^(overflowDec-1) is already >= 2^maxExp and
	// 10^underflowDec is already < 2^(minExp-1); used to skip huge powers.
	overflowDec  int64
	underflowDec int64
}

var formats = [...]format{
	Float32:  {name: "float32", suffix: "sf", bits: 24, maxExp: 128, minExp: -149, overflowDec: 40, underflowDec: -47},
	Float64:  {name: "float64", suffix: "sd", bits: 53, maxExp: 1024, minExp: -1074, overflowDec: 310, underflowDec: -326},
	Extended: {name: "extended", suffix: "sld", bits: 64, maxExp: 16384, minExp: -16445, overflowDec: 4934, underflowDec: -4953},
}

// Valid reports whether p names a supported representation.
func (p Precision) Valid() bool {
	return p >= Float32 && p <= Extended
}

func (p Precision) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
	return formats[p].name
}

// Suffix returns the literal suffix the representation was historically
// spelled with ("sf", "sd", "sld").
func (p Precision) Suffix() string {
	if !p.Valid() {
		return ""
	}
	return formats[p].suffix
}

// Bits returns the significand width in bits.
func (p Precision) Bits() int {
	if !p.Valid() {
		return 0
	}
	return int(formats[p].bits)
}

// MinExp returns k such that 2^k is the smallest positive (subnormal) value.
func (p Precision) MinExp() int {
	if !p.Valid() {
		return 0
	}
	return int(formats[p].minExp)
}

// ParsePrecision accepts a suffix ("sf", "sd", "sld"), a short name
// ("f32", "f64", "ext") or a full name ("float32", "float64", "extended").
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sf", "f32", "float32", "float":
		return Float32, nil
	case "sd", "f64", "float64", "double":
		return Float64, nil
	case "sld", "ext", "extended", "long double":
		return Extended, nil
	}
	return PrecisionInvalid, fmt.Errorf("unknown precision %q (want sf|sd|sld)", s)
}
