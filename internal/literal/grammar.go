package literal

// grammar describes one literal syntax. Decimal and hex-float literals share
// the same phases and differ only in the parameters below.
type grammar struct {
	base Base
	// bytes of prefix to skip ("0x")
	prefix int
	// mantissa digit radix and classifier
	radix uint64
	digit func(byte) (uint64, bool)
	// exponent marker ('e'/'E' or 'p'/'P')
	marker func(byte) bool
	// point shift per fractional digit
	shift int64
	// whether the exponent part is mandatory
	needsExponent bool
	// error kind for grammar violations
	fail Kind
}

// scan walks text through the phases and returns the final State, or the
// first grammar violation.
func (g *grammar) scan(text string) (State, error) {
	c := newCursor(text, g.prefix)
	st := State{Base: g.base, Phase: PrePoint}

	for !c.EOF() {
		ch := c.Peek()
		switch st.Phase {
		case PrePoint, PostPoint:
			d, isDigit := g.digit(ch)
			switch {
			case isDigit:
				st.Mantissa = st.Mantissa.push(g.radix, d)
				st.Digits++
				if st.Phase == PostPoint {
					st.PointShift -= g.shift
				}
			case ch == '.' && st.Phase == PrePoint:
				st.Phase = PostPoint
			case g.marker(ch) && st.Digits > 0:
				st.Phase = ExponentSign
			default:
				return st, g.errorAt(&c)
			}

		case ExponentSign:
			switch {
			case isDec(ch):
				st.Exponent = int64(ch - '0')
				st.ExpDigits = 1
			case ch == '+':
			case ch == '-':
				st.Negative = true
			default:
				return st, g.errorAt(&c)
			}
			st.Phase = ExponentDigits

		case ExponentDigits:
			if !isDec(ch) {
				return st, g.errorAt(&c)
			}
			st.Exponent = pushExponent(st.Exponent, ch)
			st.ExpDigits++
		}
		c.Bump()
	}

	// конец ввода: проверяем, что фаза допускает завершение
	switch {
	case st.Digits == 0,
		st.Phase == ExponentSign,
		st.Phase == ExponentDigits && st.ExpDigits == 0,
		g.needsExponent && st.Phase < ExponentSign:
		return st, g.errorAt(&c)
	}
	return st, nil
}

func (g *grammar) errorAt(c *cursor) *Error {
	return &Error{
		Kind:    g.fail,
		Literal: c.text,
		Offset:  c.off,
		Rest:    c.Rest(),
	}
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
