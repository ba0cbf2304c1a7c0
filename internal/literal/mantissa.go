package literal

import (
	"math/big"
	"math/bits"
)

// Mantissa accumulates digits in a uint64 and widens to a big.Int on the
// first overflow, so over-long literals never wrap. Values are immutable:
// push returns a new Mantissa and never mutates a shared big.Int.
type Mantissa struct {
	small uint64
	wide  *big.Int
}

func (m Mantissa) push(radix, digit uint64) Mantissa {
	if m.wide == nil {
		hi, lo := bits.Mul64(m.small, radix)
		sum, carry := bits.Add64(lo, digit, 0)
		if hi == 0 && carry == 0 {
			return Mantissa{small: sum}
		}
		m.wide = new(big.Int).SetUint64(m.small)
	}
	w := new(big.Int).Mul(m.wide, new(big.Int).SetUint64(radix))
	w.Add(w, new(big.Int).SetUint64(digit))
	return Mantissa{wide: w}
}

// IsZero reports whether every digit seen so far was zero.
func (m Mantissa) IsZero() bool {
	if m.wide != nil {
		return m.wide.Sign() == 0
	}
	return m.small == 0
}

// Wide reports whether the mantissa outgrew 64 bits.
func (m Mantissa) Wide() bool { return m.wide != nil }

// Uint64 returns the mantissa if it fits in 64 bits.
func (m Mantissa) Uint64() (uint64, bool) {
	if m.wide != nil {
		return 0, false
	}
	return m.small, true
}

// Int returns a fresh big.Int holding the mantissa.
func (m Mantissa) Int() *big.Int {
	if m.wide != nil {
		return new(big.Int).Set(m.wide)
	}
	return new(big.Int).SetUint64(m.small)
}

// OnesCount returns the number of set bits.
func (m Mantissa) OnesCount() int {
	if m.wide == nil {
		return bits.OnesCount64(m.small)
	}
	n := 0
	for _, w := range m.wide.Bits() {
		n += bits.OnesCount(uint(w))
	}
	return n
}

// BitLen returns the minimum number of bits needed to hold the mantissa.
func (m Mantissa) BitLen() int {
	if m.wide != nil {
		return m.wide.BitLen()
	}
	return bits.Len64(m.small)
}

func (m Mantissa) String() string {
	return m.Int().String()
}
