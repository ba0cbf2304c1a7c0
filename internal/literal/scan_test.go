package literal

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := map[string]Base{
		"0x1p-1": Hex,
		"0X1P-1": Hex,
		"0":      Decimal,
		"0.5":    Decimal,
		"x1p1":   Decimal,
		"00x1":   Decimal,
		"":       Decimal,
	}
	for in, want := range cases {
		if got := Classify(in); got != want {
			t.Errorf("Classify(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestCursorRest(t *testing.T) {
	c := newCursor("0x1p", 2)
	if c.Peek() != '1' {
		t.Fatalf("Peek = %q", c.Peek())
	}
	if b := c.Bump(); b != '1' {
		t.Fatalf("Bump = %q", b)
	}
	if c.Rest() != "p" {
		t.Errorf("Rest = %q, want p", c.Rest())
	}
	c.Bump()
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 || c.Rest() != "" {
		t.Error("cursor past the end should be inert")
	}
}

func TestScanDecimalState(t *testing.T) {
	st, err := Scan("62.5e-3")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := st.Mantissa.Uint64(); !ok || v != 625 {
		t.Errorf("mantissa = %s, want 625", st.Mantissa)
	}
	if st.PointShift != -1 || !st.Negative || st.Exponent != 3 {
		t.Errorf("unexpected state %s", st)
	}
	if st.NetExponent() != -4 {
		t.Errorf("NetExponent = %d, want -4", st.NetExponent())
	}
	if st.Phase != ExponentDigits || st.Digits != 3 {
		t.Errorf("unexpected phase/digits %s %d", st.Phase, st.Digits)
	}
}

func TestScanDecimalPhases(t *testing.T) {
	tests := []struct {
		text  string
		phase Phase
	}{
		{"5", PrePoint},
		{"5.", PostPoint},
		{"5.5", PostPoint},
		{"5e1", ExponentDigits},
		{"5e+1", ExponentDigits},
	}
	for _, tt := range tests {
		st, err := Scan(tt.text)
		if err != nil {
			t.Errorf("Scan(%q): %v", tt.text, err)
			continue
		}
		if st.Phase != tt.phase {
			t.Errorf("Scan(%q) phase = %s, want %s", tt.text, st.Phase, tt.phase)
		}
	}
}

func TestScanHexState(t *testing.T) {
	st, err := Scan("0x.00004p+3")
	if err != nil {
		t.Fatal(err)
	}
	if st.Base != Hex {
		t.Fatalf("base = %s", st.Base)
	}
	if v, _ := st.Mantissa.Uint64(); v != 4 {
		t.Errorf("mantissa = %d, want 4", v)
	}
	// five fractional hex digits move the point by 20 bits
	if st.PointShift != -20 || st.NetExponent() != -17 {
		t.Errorf("unexpected state %s", st)
	}
}

func TestExponentSaturates(t *testing.T) {
	st, err := Scan("1e99999999999999999999")
	if err != nil {
		t.Fatal(err)
	}
	if st.Exponent != maxExponent {
		t.Errorf("exponent = %d, want saturation at %d", st.Exponent, maxExponent)
	}
}

func TestMantissaPushOverflow(t *testing.T) {
	m := Mantissa{small: math.MaxUint64 / 10}
	m = m.push(10, 5)
	if m.Wide() {
		t.Fatalf("%s should still fit 64 bits", m)
	}
	m = m.push(10, 0)
	if !m.Wide() {
		t.Fatal("expected widening past 64 bits")
	}
	want := "184467440737095516150"
	if m.String() != want {
		t.Errorf("mantissa = %s, want %s", m, want)
	}

	// push never mutates the receiver's big.Int
	before := m.String()
	_ = m.push(10, 9)
	if m.String() != before {
		t.Error("push mutated the receiver")
	}
}

func TestKindStrings(t *testing.T) {
	if MalformedHex.String() != "MalformedHex" || NotPowerOfHalf.Message() != MsgNotPowerOfHalf {
		t.Error("unexpected kind metadata")
	}
	if MalformedDecimal.Error() != "Not a valid decimal floating point number literal" {
		t.Errorf("message drifted: %q", MalformedDecimal.Error())
	}
	if MalformedHex.Error() != "Not a valid hex floating point number literal" {
		t.Errorf("message drifted: %q", MalformedHex.Error())
	}
	if NotPowerOfHalf.Error() != "Floating point number isn't a positive power of 0.5" {
		t.Errorf("message drifted: %q", NotPowerOfHalf.Error())
	}
}

func TestErrorSpan(t *testing.T) {
	e := &Error{Kind: MalformedDecimal, Literal: "1x", Offset: 1, Rest: "x"}
	if s, en := e.Span(); s != 1 || en != 2 {
		t.Errorf("span = [%d,%d)", s, en)
	}
	e = &Error{Kind: MalformedHex, Literal: "0x1", Offset: 3}
	if s, en := e.Span(); s != 3 || en != 3 {
		t.Errorf("end-of-input span = [%d,%d)", s, en)
	}
}
