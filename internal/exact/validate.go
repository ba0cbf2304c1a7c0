package exact

import "math/big"

// IsPowerOfHalf reports whether v is exactly 2^-k for an integer k >= 1.
//
// The check doubles the value until it reaches 1 (success), exceeds 1 or is
// zero (failure), starting from 2v. One itself therefore fails: 2·1 > 1.
// The answer depends only on v's bit pattern.
func IsPowerOfHalf(v Value) bool {
	switch v.prec {
	case Float32:
		return halves(float32(v.f))
	case Float64:
		return halves(v.f)
	case Extended:
		return halvesBig(v.big())
	}
	return false
}

func halves[F float32 | float64](v F) bool {
	for x := 2 * v; ; x *= 2 {
		switch {
		case x == 1:
			return true
		// !(x > 0) also catches negatives and NaN, which never converge
		case x > 1, !(x > 0):
			return false
		}
	}
}

func halvesBig(v *big.Float) bool {
	one := big.NewFloat(1)
	two := big.NewFloat(2)
	x := new(big.Float).SetPrec(v.Prec()).Mul(v, two)
	for {
		c := x.Cmp(one)
		switch {
		case c == 0:
			return true
		case c > 0, x.Sign() <= 0:
			return false
		}
		x.Mul(x, two)
	}
}
