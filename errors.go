package iobes

import "fmt"

// MalformedTagError reports a raw tag string that does not decode under a
// scheme: an unknown marker letter, a missing or empty type, or a type on the
// outside marker. It is never repaired by any parse policy.
type MalformedTagError struct {
	Tag    string
	Scheme Scheme
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("malformed %s tag %q", e.Scheme, e.Tag)
}

// InvalidTransitionError reports a decodable tag that violates the scheme's
// transition grammar. Prev is empty at the start of the sequence; Cur is
// empty when a still-open span hits the end of the sequence, in which case
// Index equals the sequence length.
type InvalidTransitionError struct {
	Scheme Scheme
	Index  int
	Prev   string
	Cur    string
}

func (e *InvalidTransitionError) Error() string {
	switch {
	case e.Prev == "":
		return fmt.Sprintf("invalid %s transition at index %d: sequence may not start with %q", e.Scheme, e.Index, e.Cur)
	case e.Cur == "":
		return fmt.Sprintf("invalid %s transition at index %d: sequence may not end with %q", e.Scheme, e.Index, e.Prev)
	default:
		return fmt.Sprintf("invalid %s transition at index %d: %q may not follow %q", e.Scheme, e.Index, e.Cur, e.Prev)
	}
}

// OverlapError reports two spans handed to the writer that share a token
// index. This is a programming error by the caller, not messy input, so no
// coercion policy applies.
type OverlapError struct {
	First  Span
	Second Span
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("span %s[%d, %d) overlaps span %s[%d, %d)",
		e.First.Type, e.First.Start, e.First.End,
		e.Second.Type, e.Second.Start, e.Second.End)
}

// OutOfRangeError reports a span handed to the writer that does not fit in
// the token sequence: a negative start, an end past the sequence length, or
// a start past the end.
type OutOfRangeError struct {
	Span   Span
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("span %s[%d, %d) out of range for a sequence of %d tokens",
		e.Span.Type, e.Span.Start, e.Span.End, e.Length)
}

// UnknownSchemeError reports a scheme name or value outside the supported
// set.
type UnknownSchemeError struct {
	Name string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("unknown span encoding scheme %q", e.Name)
}
