package exact

import "math/big"

// NearestPowerOfHalf returns the power of one-half closest to v within v's
// precision. Values at or above 1 map to 0.5. It reports false for zero,
// overflowed and negative values, which have no meaningful neighbour.
func NearestPowerOfHalf(v Value) (Value, bool) {
	if !v.prec.Valid() || v.IsZero() || v.IsInf() {
		return Value{}, false
	}
	b := v.Big()
	if b.Sign() < 0 {
		return Value{}, false
	}
	mant := new(big.Float)
	exp := b.MantExp(mant) // v = mant·2^exp, mant in [0.5, 1)

	k := int64(1 - exp)
	if mant.Cmp(big.NewFloat(0.75)) > 0 {
		k--
	}
	k = max(k, 1)
	k = min(k, -formats[v.prec].minExp)
	return Assemble(big.NewInt(1), 2, -k, v.prec), true
}
