package driver

import (
	"errors"
	"fmt"

	"safefloat/internal/diag"
	"safefloat/internal/exact"
	"safefloat/internal/literal"
	"safefloat/internal/source"
)

// Literal is one checked literal occurrence.
type Literal struct {
	Span      source.Span
	Text      string
	Precision exact.Precision
	Value     exact.Value
	Err       error
}

// OK reports whether the literal was accepted.
func (l Literal) OK() bool { return l.Err == nil }

// CheckLiteral parses text in precision p and reports any failure to r.
// span covers text in its source; when exactSpan is false (the source spells
// the literal differently, e.g. with escapes) diagnostics point at the whole
// span and carry no edits.
func CheckLiteral(r diag.Reporter, span source.Span, text string, p exact.Precision, exactSpan bool) Literal {
	v, err := literal.Parse(text, p)
	lit := Literal{Span: span, Text: text, Precision: p, Value: v, Err: err}
	if err == nil {
		return lit
	}

	var lerr *literal.Error
	if !errors.As(err, &lerr) {
		diag.ReportError(r, diag.UnknownCode, span, err.Error()).Emit()
		return lit
	}

	sub := func(start, end int) source.Span {
		if !exactSpan {
			return span
		}
		return span.Sub(start, end)
	}

	switch lerr.Kind {
	case literal.MalformedDecimal, literal.MalformedHex:
		code := diag.LitMalformedDecimal
		if lerr.Kind == literal.MalformedHex {
			code = diag.LitMalformedHex
		}
		start, end := lerr.Span()
		b := diag.ReportError(r, code, sub(start, end), lerr.Kind.Message())
		if lerr.Rest != "" {
			b.WithNote(sub(lerr.Offset, len(text)), fmt.Sprintf("unparsed suffix %q", lerr.Rest))
		} else {
			b.WithNote(sub(len(text), len(text)), "literal ends early")
		}
		b.Emit()

	case literal.NotPowerOfHalf:
		b := diag.ReportError(r, diag.ValNotPowerOfHalf, span, lerr.Kind.Message())
		val := lerr.Value
		if val.Precision().Valid() {
			b.WithNote(span, fmt.Sprintf("value in %s is %s", p, describe(val)))
			if near, ok := exact.NearestPowerOfHalf(val); ok {
				repl := suggestion(text, near)
				title := fmt.Sprintf("use the nearest power of one-half %s", repl)
				if exactSpan {
					b.WithFix(title, diag.FixEdit{Span: span, NewText: repl, OldText: text})
				} else {
					b.WithFix(title)
				}
			}
		}
		b.Emit()
	}
	return lit
}

func describe(v exact.Value) string {
	switch {
	case v.IsZero():
		return "zero"
	case v.IsInf():
		return "infinite (overflow)"
	}
	return v.Text()
}

// suggestion spells near in the same base as text.
func suggestion(text string, near exact.Value) string {
	if literal.Classify(text) == literal.Hex {
		return near.Text()
	}
	return near.Decimal()
}
