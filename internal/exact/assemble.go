package exact

import (
	"fmt"
	"math"
	"math/big"
)

// Assemble computes mantissa × radix^exp exactly and rounds the result once,
// ties-to-even, into p. Radix is 10 for decimal literals and 2 for
// hexadecimal floats (whose point shift is already expressed in bits).
//
// Powers are built by exact integer exponentiation; when the magnitude is
// provably outside p's range the result short-circuits to +Inf or zero
// without materialising the power.
func Assemble(mantissa *big.Int, radix int64, exp int64, p Precision) Value {
	if !p.Valid() {
		panic(fmt.Sprintf("exact: assemble with invalid precision %d", p))
	}
	if radix != 2 && radix != 10 {
		panic(fmt.Sprintf("exact: unsupported radix %d", radix))
	}
	if mantissa == nil || mantissa.Sign() == 0 {
		return zero(p)
	}
	m := new(big.Int).Abs(mantissa)

	switch outOfRange(m, radix, exp, p) {
	case 1:
		return inf(p)
	case -1:
		return zero(p)
	}

	r := new(big.Rat)
	pow := new(big.Int).Exp(big.NewInt(radix), big.NewInt(absInt64(exp)), nil)
	if exp >= 0 {
		r.SetInt(pow.Mul(pow, m))
	} else {
		r.SetFrac(m, pow)
	}
	return round(r, p)
}

// outOfRange returns 1 when the value certainly overflows p, -1 when it
// certainly rounds to zero and 0 when it must be computed.
func outOfRange(m *big.Int, radix, exp int64, p Precision) int {
	f := formats[p]
	switch radix {
	case 2:
		// value lies in [2^(mag-1), 2^mag)
		mag := int64(m.BitLen()) + exp
		if mag-1 >= f.maxExp {
			return 1
		}
		if mag <= f.minExp-1 {
			return -1
		}
	case 10:
		// value lies in [10^(mag-1), 10^mag)
		mag := int64(len(m.String())) + exp
		if mag-1 >= f.overflowDec {
			return 1
		}
		if mag <= f.underflowDec {
			return -1
		}
	}
	return 0
}

func round(r *big.Rat, p Precision) Value {
	switch p {
	case Float32:
		f, _ := r.Float32()
		return Value{prec: p, f: float64(f)}
	case Float64:
		f, _ := r.Float64()
		return Value{prec: p, f: f}
	default:
		return Value{prec: p, x: roundExtended(r)}
	}
}

// roundExtended rounds a non-negative rational to a 64-bit significand with
// the x87 exponent range, subnormals included.
func roundExtended(r *big.Rat) *big.Float {
	f := formats[Extended]
	out := new(big.Float).SetPrec(uint(f.bits))
	if r.Sign() == 0 {
		return out
	}
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()

	// 2^(e-1) <= r < 2^e
	e := int64(num.BitLen() - den.BitLen())
	if cmpScaled(num, den, e) >= 0 {
		e++
	}

	// ulp exponent: full significand for normals, clamped for subnormals
	q := max(e-f.bits, f.minExp)

	sn, sd := new(big.Int).Set(num), new(big.Int).Set(den)
	if q < 0 {
		sn.Lsh(sn, uint(-q))
	} else {
		sd.Lsh(sd, uint(q))
	}
	n, rem := new(big.Int).QuoRem(sn, sd, new(big.Int))
	rem.Lsh(rem, 1)
	if c := rem.Cmp(sd); c > 0 || (c == 0 && n.Bit(0) == 1) {
		n.Add(n, big.NewInt(1))
	}
	if n.Sign() == 0 {
		return out
	}
	out.SetInt(n)
	out.SetMantExp(out, int(q))
	if int64(out.MantExp(nil)) > f.maxExp {
		return out.SetInf(r.Sign() < 0)
	}
	if r.Sign() < 0 {
		out.Neg(out)
	}
	return out
}

// cmpScaled compares num with den·2^e.
func cmpScaled(num, den *big.Int, e int64) int {
	a, b := num, den
	if e >= 0 {
		b = new(big.Int).Lsh(den, uint(e))
	} else {
		a = new(big.Int).Lsh(num, uint(-e))
	}
	return a.Cmp(b)
}

func zero(p Precision) Value {
	if p == Extended {
		return Value{prec: p, x: new(big.Float).SetPrec(uint(formats[p].bits))}
	}
	return Value{prec: p}
}

func inf(p Precision) Value {
	if p == Extended {
		return Value{prec: p, x: new(big.Float).SetPrec(uint(formats[p].bits)).SetInf(false)}
	}
	return Value{prec: p, f: math.Inf(1)}
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
