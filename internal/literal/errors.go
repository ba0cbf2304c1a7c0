package literal

import (
	"fmt"

	"safefloat/internal/exact"
)

// Kind classifies why a literal was rejected. Kind implements error so that
// errors.Is(err, literal.NotPowerOfHalf) matches any *Error of that kind.
type Kind uint8

const (
	// MalformedDecimal: the text does not match the decimal grammar.
	MalformedDecimal Kind = iota + 1
	// MalformedHex: the text does not match the hex-float grammar.
	MalformedHex
	// NotPowerOfHalf: the grammar matched but the value is not 2^-k, k >= 1.
	NotPowerOfHalf
)

// Sentinels for errors.Is.
var (
	ErrMalformedDecimal error = MalformedDecimal
	ErrMalformedHex     error = MalformedHex
	ErrNotPowerOfHalf   error = NotPowerOfHalf
)

// Fixed, user-visible messages. Keep verbatim.
const (
	MsgMalformedDecimal = "Not a valid decimal floating point number literal"
	MsgMalformedHex     = "Not a valid hex floating point number literal"
	MsgNotPowerOfHalf   = "Floating point number isn't a positive power of 0.5"
)

// Message returns the fixed diagnostic text for k.
func (k Kind) Message() string {
	switch k {
	case MalformedDecimal:
		return MsgMalformedDecimal
	case MalformedHex:
		return MsgMalformedHex
	case NotPowerOfHalf:
		return MsgNotPowerOfHalf
	}
	return fmt.Sprintf("unknown literal error %d", uint8(k))
}

func (k Kind) Error() string { return k.Message() }

func (k Kind) String() string {
	switch k {
	case MalformedDecimal:
		return "MalformedDecimal"
	case MalformedHex:
		return "MalformedHex"
	case NotPowerOfHalf:
		return "NotPowerOfHalf"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is a rejected literal.
type Error struct {
	Kind    Kind
	Literal string
	// Offset is the byte index of the first rejected character, or
	// len(Literal) when the input ended too early. Zero for NotPowerOfHalf.
	Offset int
	// Rest is the unparsed suffix starting at Offset.
	Rest string
	// Value is the assembled value for NotPowerOfHalf, when one was built.
	Value exact.Value
}

func (e *Error) Error() string {
	switch {
	case e.Kind == NotPowerOfHalf:
		return fmt.Sprintf("%s: %q", e.Kind.Message(), e.Literal)
	case e.Rest == "":
		return fmt.Sprintf("%s: %q: unexpected end of literal", e.Kind.Message(), e.Literal)
	default:
		return fmt.Sprintf("%s: %q: unexpected %q at offset %d", e.Kind.Message(), e.Literal, e.Rest[:1], e.Offset)
	}
}

// Is matches a bare Kind target.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Span returns the byte range [start, end) of the literal the error points
// at: the offending character, an empty range at the end of input, or the
// whole literal for value errors.
func (e *Error) Span() (start, end int) {
	switch {
	case e.Kind == NotPowerOfHalf:
		return 0, len(e.Literal)
	case e.Offset >= len(e.Literal):
		return len(e.Literal), len(e.Literal)
	default:
		return e.Offset, e.Offset + 1
	}
}

func notPowerOfHalf(text string, v exact.Value) *Error {
	return &Error{Kind: NotPowerOfHalf, Literal: text, Value: v}
}
