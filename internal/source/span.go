package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Sub returns the span of bytes [start, end) relative to s.Start, clamped
// to s. Literal errors use it to point inside a literal's span.
func (s Span) Sub(start, end int) Span {
	lo, err := safecast.Conv[uint32](max(start, 0))
	if err != nil {
		panic(fmt.Errorf("sub-span start overflow: %w", err))
	}
	hi, err := safecast.Conv[uint32](max(end, start, 0))
	if err != nil {
		panic(fmt.Errorf("sub-span end overflow: %w", err))
	}
	out := Span{File: s.File, Start: s.Start + lo, End: s.Start + hi}
	out.Start = min(out.Start, s.End)
	out.End = min(out.End, s.End)
	return out
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	s.Start = min(s.Start, other.Start)
	s.End = max(s.End, other.End)
	return s
}
