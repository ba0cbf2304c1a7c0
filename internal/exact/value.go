package exact

import (
	"math"
	"math/big"
	"strconv"
)

// Value is a literal's value rendered into a Precision. Float32 and Float64
// values are held natively; Extended values are held as a 64-bit big.Float.
type Value struct {
	prec Precision
	f    float64
	x    *big.Float
}

// FromFloat32 wraps an existing float32, e.g. to re-validate it.
func FromFloat32(f float32) Value {
	return Value{prec: Float32, f: float64(f)}
}

// FromFloat64 wraps an existing float64.
func FromFloat64(f float64) Value {
	return Value{prec: Float64, f: f}
}

// FromBig wraps x rounded to the Extended precision.
func FromBig(x *big.Float) Value {
	if x == nil {
		return Value{prec: Extended, x: new(big.Float).SetPrec(uint(formats[Extended].bits))}
	}
	if x.IsInf() {
		return Value{prec: Extended, x: new(big.Float).SetPrec(uint(formats[Extended].bits)).SetInf(x.Signbit())}
	}
	f := formats[Extended]
	if x.Sign() == 0 {
		return zero(Extended)
	}
	// outside the x87 range there is nothing to round
	if exp := int64(x.MantExp(nil)); exp-1 >= f.maxExp {
		return Value{prec: Extended, x: new(big.Float).SetPrec(uint(f.bits)).SetInf(x.Signbit())}
	} else if exp <= f.minExp-1 {
		return zero(Extended)
	}
	r, _ := x.Rat(nil)
	return Value{prec: Extended, x: roundExtended(r)}
}

// Precision reports the representation v was rounded into.
func (v Value) Precision() Precision { return v.prec }

// Float32 returns v as a float32. Extended values are rounded.
func (v Value) Float32() float32 {
	if v.prec == Extended {
		f, _ := v.big().Float32()
		return f
	}
	return float32(v.f)
}

// Float64 returns v as a float64. Extended values are rounded.
func (v Value) Float64() float64 {
	if v.prec == Extended {
		f, _ := v.big().Float64()
		return f
	}
	return v.f
}

// Big returns a copy of v as a big.Float carrying the precision's width.
func (v Value) Big() *big.Float {
	if v.prec == Extended {
		return new(big.Float).Copy(v.big())
	}
	return new(big.Float).SetPrec(uint(v.prec.Bits())).SetFloat64(v.f)
}

func (v Value) big() *big.Float {
	if v.x == nil {
		return new(big.Float).SetPrec(uint(formats[Extended].bits))
	}
	return v.x
}

// IsZero reports whether v rendered as exactly zero (including underflow).
func (v Value) IsZero() bool {
	if v.prec == Extended {
		return v.big().Sign() == 0
	}
	return v.f == 0
}

// IsInf reports whether v overflowed its representation.
func (v Value) IsInf() bool {
	if v.prec == Extended {
		return v.big().IsInf()
	}
	return math.IsInf(v.f, 0)
}

// Text renders v as an exact hexadecimal floating-point literal that is
// also valid Go syntax, e.g. "0x1p-20".
func (v Value) Text() string {
	switch v.prec {
	case Float32:
		return strconv.FormatFloat(v.f, 'x', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.f, 'x', -1, 64)
	case Extended:
		return v.big().Text('x', -1)
	}
	return "<invalid>"
}

// Decimal renders v in the shortest decimal form that parses back to the
// same value in its precision. Extended values fall back to Text.
func (v Value) Decimal() string {
	switch v.prec {
	case Float32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return v.Text()
}

func (v Value) String() string {
	return v.Text() + "_" + v.prec.Suffix()
}
