package span

import "fmt"

// SourceID is an opaque handle naming one source file within a session.
// The source store assigns them; zero means "no source".
type SourceID uint32

// Span is a half-open byte range [Start, End) within a single source.
type Span struct {
	Src   SourceID
	Start int
	End   int
}

// New constructs a span over [start, end). Callers must pass start <= end;
// a reversed range is normalized so downstream length math stays sane.
func New(src SourceID, start, end int) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Src: src, Start: start, End: end}
}

// Merge returns the smallest span covering both s and other. Both spans must
// name the same source; merging across sources is a programming error.
func (s Span) Merge(other Span) Span {
	if s.Src != other.Src {
		panic(fmt.Sprintf("span: cannot merge spans from different sources (%d and %d)", s.Src, other.Src))
	}

	merged := s
	if other.Start < merged.Start {
		merged.Start = other.Start
	}
	if other.End > merged.End {
		merged.End = other.End
	}
	return merged
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// Range projects the span into the (offset, length) pair renderers consume.
func (s Span) Range() (offset, length int) {
	return s.Start, s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Spanned pairs a value with the span it was read from.
type Spanned[T any] struct {
	Inner T
	Span  Span
}

// NewSpanned wraps value with sp.
func NewSpanned[T any](value T, sp Span) Spanned[T] {
	return Spanned[T]{Inner: value, Span: sp}
}

// WithSpan returns a copy of s with its span replaced.
func (s Spanned[T]) WithSpan(sp Span) Spanned[T] {
	s.Span = sp
	return s
}

// Map transforms the inner value while preserving the span. It is the only
// way to change the value without touching the location.
func Map[T, U any](s Spanned[T], f func(T) U) Spanned[U] {
	return Spanned[U]{Inner: f(s.Inner), Span: s.Span}
}
