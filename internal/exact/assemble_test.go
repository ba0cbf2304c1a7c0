package exact

import (
	"math"
	"math/big"
	"testing"
)

func TestAssembleDecimalExact(t *testing.T) {
	tests := []struct {
		name string
		mant int64
		exp  int64
		want float64
	}{
		{"half", 5, -1, 0.5},
		{"quarter", 25, -2, 0.25},
		{"2^-20", 95367431640625, -20, math.Ldexp(1, -20)},
		{"125e-3", 125, -3, 0.125},
		{"0.005e2", 5, -1, 0.5},
		{"integer", 3, 0, 3},
		{"scaled up", 15, 2, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Assemble(big.NewInt(tt.mant), 10, tt.exp, Float64)
			if got := v.Float64(); got != tt.want {
				t.Errorf("Assemble(%d, 10, %d) = %v, want %v", tt.mant, tt.exp, got, tt.want)
			}
		})
	}
}

func TestAssembleHexExact(t *testing.T) {
	// 0x8.0p-98: mantissa 0x80, point shift -4, exponent -98
	v := Assemble(big.NewInt(0x80), 2, -4-98, Float64)
	if got, want := v.Float64(), math.Ldexp(1, -95); got != want {
		t.Errorf("got %v, want 2^-95 (%v)", got, want)
	}
	if v.Text() != "0x1p-95" {
		t.Errorf("Text() = %q, want 0x1p-95", v.Text())
	}
}

func TestAssembleRoundsOnce(t *testing.T) {
	// 0.1 is not exactly representable; it must round to the nearest float
	// in each precision, not drift from repeated multiplication.
	v32 := Assemble(big.NewInt(1), 10, -1, Float32)
	if v32.Float32() != float32(0.1) {
		t.Errorf("float32 0.1 = %v", v32.Float32())
	}
	v64 := Assemble(big.NewInt(1), 10, -1, Float64)
	if v64.Float64() != 0.1 {
		t.Errorf("float64 0.1 = %v", v64.Float64())
	}
}

func TestAssembleOverflowUnderflow(t *testing.T) {
	if v := Assemble(big.NewInt(1), 10, 400, Float64); !v.IsInf() {
		t.Errorf("1e400 should overflow float64, got %v", v.Float64())
	}
	if v := Assemble(big.NewInt(1), 10, 40, Float32); !v.IsInf() {
		t.Errorf("1e40 should overflow float32")
	}
	if v := Assemble(big.NewInt(1), 10, -400, Float64); !v.IsZero() {
		t.Errorf("1e-400 should underflow float64, got %v", v.Float64())
	}
	if v := Assemble(big.NewInt(1), 2, -150, Float32); !v.IsZero() {
		t.Errorf("2^-150 should round to zero in float32, got %v", v.Float32())
	}
	if v := Assemble(big.NewInt(1), 2, -149, Float32); v.Float32() != math.SmallestNonzeroFloat32 {
		t.Errorf("2^-149 should be the smallest float32 subnormal, got %v", v.Float32())
	}
	// huge exponents never materialise the power
	if v := Assemble(big.NewInt(1), 10, 1<<30, Extended); !v.IsInf() {
		t.Errorf("1e(2^30) should overflow extended")
	}
	if v := Assemble(big.NewInt(1), 10, -(1 << 30), Extended); !v.IsZero() {
		t.Errorf("1e-(2^30) should underflow extended")
	}
}

func TestAssembleZero(t *testing.T) {
	for _, p := range []Precision{Float32, Float64, Extended} {
		if v := Assemble(new(big.Int), 10, 5, p); !v.IsZero() {
			t.Errorf("%s: zero mantissa should assemble to zero", p)
		}
	}
}

func TestAssembleExtendedRange(t *testing.T) {
	// smallest x87 subnormal
	v := Assemble(big.NewInt(1), 2, -16445, Extended)
	if v.IsZero() {
		t.Fatal("2^-16445 should be representable in extended precision")
	}
	mant := new(big.Float)
	if exp := v.Big().MantExp(mant); exp != -16444 || mant.Cmp(big.NewFloat(0.5)) != 0 {
		t.Errorf("unexpected rendering %s", v.Text())
	}
	if v := Assemble(big.NewInt(1), 2, -16446, Extended); !v.IsZero() {
		t.Errorf("2^-16446 is a tie with zero and rounds to even (zero)")
	}
	if v := Assemble(big.NewInt(1), 2, 16383, Extended); v.IsInf() {
		t.Errorf("2^16383 fits extended precision")
	}
	if v := Assemble(big.NewInt(1), 2, 16384, Extended); !v.IsInf() {
		t.Errorf("2^16384 overflows extended precision")
	}
}

func TestAssembleExtendedRounding(t *testing.T) {
	// 2^64 + 1 needs 65 bits; ties-to-even drops the low bit
	m := new(big.Int).Lsh(big.NewInt(1), 64)
	m.Add(m, big.NewInt(1))
	v := Assemble(m, 2, 0, Extended)
	want := new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 64))
	if v.Big().Cmp(want) != 0 {
		t.Errorf("got %s, want 0x1p+64", v.Text())
	}

	// 2^64 + 3 rounds up to 2^64 + 4
	m.Add(m, big.NewInt(2))
	v = Assemble(m, 2, 0, Extended)
	want.SetInt(new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(4)))
	if v.Big().Cmp(want) != 0 {
		t.Errorf("got %s, want 2^64+4", v.Text())
	}
}

func TestAssembleExtendedDecimal(t *testing.T) {
	// 9.5367431640626e-07 is one unit in the 14th digit away from 2^-20;
	// the 64-bit significand resolves it.
	v := Assemble(big.NewInt(95367431640626), 10, -20, Extended)
	if v.Big().Cmp(big.NewFloat(math.Ldexp(1, -20))) == 0 {
		t.Error("expected a value distinct from 2^-20")
	}
}
