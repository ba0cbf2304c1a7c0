package literal_test

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"safefloat/internal/exact"
	"safefloat/internal/literal"
)

// expectValue проверяет, что литерал принят и равен want
func expectValue(t *testing.T, text string, p exact.Precision, want float64) {
	t.Helper()
	v, err := literal.Parse(text, p)
	if err != nil {
		t.Fatalf("Parse(%q, %s) failed: %v", text, p, err)
	}
	if got := v.Float64(); got != want {
		t.Errorf("Parse(%q, %s) = %v, want %v", text, p, got, want)
	}
	if v.Precision() != p {
		t.Errorf("Parse(%q, %s) returned precision %s", text, p, v.Precision())
	}
}

// expectKind проверяет, что литерал отклонён с ошибкой нужного вида
func expectKind(t *testing.T, text string, p exact.Precision, want literal.Kind) *literal.Error {
	t.Helper()
	_, err := literal.Parse(text, p)
	if err == nil {
		t.Fatalf("Parse(%q, %s) succeeded, want %s", text, p, want)
	}
	var lerr *literal.Error
	if !errors.As(err, &lerr) {
		t.Fatalf("Parse(%q) returned %T, want *literal.Error", text, err)
	}
	if lerr.Kind != want {
		t.Fatalf("Parse(%q) kind = %s, want %s (%v)", text, lerr.Kind, want, err)
	}
	if !errors.Is(err, want) {
		t.Errorf("errors.Is(err, %s) = false", want)
	}
	if lerr.Literal != text {
		t.Errorf("error literal = %q, want %q", lerr.Literal, text)
	}
	return lerr
}

func TestAcceptsPowersOfHalf(t *testing.T) {
	tests := []struct {
		text string
		p    exact.Precision
		want float64
	}{
		{"0.5", exact.Float32, 0.5},
		{"0.25", exact.Float32, 0.25},
		{".03125", exact.Float64, .03125},
		{"62.5e-3", exact.Extended, 62.5e-3},
		{"9.5367431640625e-07", exact.Float64, 9.5367431640625e-07},
		{"125.e-3", exact.Float32, 125.e-3},
		{"0.005e2", exact.Extended, 0.005e2},
		{"0x1p-1", exact.Float32, 0x1p-1},
		{"0x8.0p-98", exact.Float64, 0x8.0p-98},
		{"0x.00004p+3", exact.Extended, 0x.00004p+3},
		{"0X1P-1", exact.Float64, 0.5},
		{"5E-1", exact.Float64, 0.5},
		{"0.5e+0", exact.Float64, 0.5},
		{"00000.5", exact.Float64, 0.5},
		{"0x0.8p0", exact.Float64, 0.5},
		{"0x2p-3", exact.Float64, 0.25},
		{"8.470329472543003390683225006796419620513916015625E-22", exact.Float64, math.Ldexp(1, -70)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			expectValue(t, tt.text, tt.p, tt.want)
		})
	}
}

func TestRejectsNonPowers(t *testing.T) {
	tests := []struct {
		text string
		p    exact.Precision
	}{
		{"3", exact.Float32},
		{"0.26", exact.Float64},
		{"9.5367431640626e-07", exact.Float64},
		{"1.0", exact.Extended},
		{"1", exact.Float64},
		{"0x1p0", exact.Float64},
		{"0x3.0p-7", exact.Float32},
		{"0", exact.Float32},
		{"0x0p0", exact.Float64},
		{"0.75", exact.Float64},
		{"2e-1", exact.Float64},
		{"1e400", exact.Float64},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			lerr := expectKind(t, tt.text, tt.p, literal.NotPowerOfHalf)
			if lerr.Error() != fmt.Sprintf("%s: %q", literal.MsgNotPowerOfHalf, tt.text) {
				t.Errorf("unexpected message %q", lerr.Error())
			}
			if start, end := lerr.Span(); start != 0 || end != len(tt.text) {
				t.Errorf("value error should span the whole literal, got [%d,%d)", start, end)
			}
		})
	}
}

func TestRejectsMalformedDecimal(t *testing.T) {
	tests := []struct {
		text   string
		offset int
	}{
		{"", 0},
		{".", 1},
		{".e5", 1},
		{"1e", 2},
		{"1e+", 3},
		{"1e-", 3},
		{"1.2.3", 3},
		{"1x", 1},
		{"-0.5", 0},
		{"+0.5", 0},
		{"0.5f", 3},
		{"1e5.0", 3},
		{"1e+-2", 3},
		{"0b101", 1},
		{"0.5 ", 3},
		{"1_000", 1},
		{"0x1p-1"[1:], 0}, // "x1p-1"
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			lerr := expectKind(t, tt.text, exact.Float64, literal.MalformedDecimal)
			if lerr.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", lerr.Offset, tt.offset)
			}
			if lerr.Rest != tt.text[tt.offset:] {
				t.Errorf("rest = %q, want %q", lerr.Rest, tt.text[tt.offset:])
			}
			if !strings.HasPrefix(lerr.Error(), literal.MsgMalformedDecimal) {
				t.Errorf("message %q lacks fixed prefix", lerr.Error())
			}
		})
	}
}

func TestRejectsMalformedHex(t *testing.T) {
	tests := []struct {
		text   string
		offset int
	}{
		{"0x", 2},
		{"0x4", 3},
		{"0x1", 3},
		{"0x1.8", 5},
		{"0xp1", 2},
		{"0x.p1", 3},
		{"0x1p", 4},
		{"0x1p+", 5},
		{"0x1pa", 4},
		{"0xg", 2},
		{"0x1p1.5", 5},
		{"0x1.0.0p1", 5},
		{"0x1p-1f", 6},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			lerr := expectKind(t, tt.text, exact.Float32, literal.MalformedHex)
			if lerr.Offset != tt.offset {
				t.Errorf("offset = %d, want %d", lerr.Offset, tt.offset)
			}
			if !strings.HasPrefix(lerr.Error(), literal.MsgMalformedHex) {
				t.Errorf("message %q lacks fixed prefix", lerr.Error())
			}
		})
	}
}

func TestRepresentationBoundaries(t *testing.T) {
	expectValue(t, "0x1p-149", exact.Float32, math.Ldexp(1, -149))
	expectKind(t, "0x1p-150", exact.Float32, literal.NotPowerOfHalf)
	expectValue(t, "0x1p-1074", exact.Float64, math.Ldexp(1, -1074))
	expectKind(t, "0x1p-1075", exact.Float64, literal.NotPowerOfHalf)

	v, err := literal.Parse("0x1p-16445", exact.Extended)
	if err != nil {
		t.Fatalf("extended subnormal rejected: %v", err)
	}
	want := new(big.Float).SetMantExp(big.NewFloat(1), -16445)
	if v.Big().Cmp(want) != 0 {
		t.Errorf("got %s, want 0x1p-16445", v.Text())
	}
	expectKind(t, "0x1p-16446", exact.Extended, literal.NotPowerOfHalf)

	// the one-ULP neighbour of 2^-20 is only distinguishable with enough bits
	expectKind(t, "9.5367431640626e-07", exact.Extended, literal.NotPowerOfHalf)
	expectValue(t, "9.5367431640626e-07", exact.Float32, math.Ldexp(1, -20))
}

func TestEveryPowerOfHalfRoundTrips(t *testing.T) {
	for k := 1; k <= 1074; k++ {
		want := math.Ldexp(1, -k)

		hex := fmt.Sprintf("0x1p-%d", k)
		v, err := literal.Parse(hex, exact.Float64)
		if err != nil {
			t.Fatalf("Parse(%q): %v", hex, err)
		}
		if math.Float64bits(v.Float64()) != math.Float64bits(want) {
			t.Fatalf("Parse(%q) = %v, want %v", hex, v.Float64(), want)
		}

		// exact decimal expansion of 2^-k has k fractional digits
		dec := strings.TrimRight(big.NewFloat(want).Text('f', k), "0")
		v, err = literal.Parse(dec, exact.Float64)
		if err != nil {
			t.Fatalf("Parse(2^-%d decimal): %v", k, err)
		}
		if math.Float64bits(v.Float64()) != math.Float64bits(want) {
			t.Fatalf("decimal 2^-%d parsed to %v", k, v.Float64())
		}

		if k <= 1022 {
			next := strconv64(math.Nextafter(want, 1))
			if literal.Valid(next, exact.Float64) {
				t.Fatalf("neighbour %s of 2^-%d accepted", next, k)
			}
		}
	}
}

func TestLongMantissaWidens(t *testing.T) {
	text := "0.5" + strings.Repeat("0", 100)
	expectValue(t, text, exact.Float64, 0.5)

	text = "0x0." + strings.Repeat("0", 40) + "8p+160"
	expectValue(t, text, exact.Float64, 0.5)

	st, err := literal.Scan("0x" + strings.Repeat("f", 20) + "p0")
	if err != nil {
		t.Fatal(err)
	}
	if !st.Mantissa.Wide() {
		t.Error("20 hex digits should widen the mantissa")
	}
	if st.Mantissa.BitLen() != 80 || st.Mantissa.OnesCount() != 80 {
		t.Errorf("unexpected wide mantissa %s", st.Mantissa)
	}
}

func TestInvalidPrecision(t *testing.T) {
	if _, err := literal.Parse("0.5", exact.PrecisionInvalid); err == nil {
		t.Fatal("expected error for invalid precision")
	}
}

func strconv64(f float64) string {
	return fmt.Sprintf("%.17g", f)
}
