package iobes

import "github.com/pkg/errors"

// WriteTags renders spans over a sequence of n tokens into raw tags for the
// target scheme. Tokens covered by no span get the outside marker. The spans
// may arrive in any order but must fit in [0, n) and must not overlap: an
// OutOfRangeError or OverlapError reports a caller bug and is never coerced.
func WriteTags(spans []Span, n int, scheme Scheme) ([]string, error) {
	if scheme == Token {
		return nil, errors.Errorf("cannot write tags for the %s pseudo-scheme", scheme)
	}
	def, err := scheme.def()
	if err != nil {
		return nil, err
	}
	sorted := SortSpans(spans)
	for i, span := range sorted {
		if span.Start < 0 || span.End > n || span.Start > span.End {
			return nil, &OutOfRangeError{Span: span, Length: n}
		}
		if i > 0 && sorted[i-1].End > span.Start {
			return nil, &OverlapError{First: sorted[i-1], Second: span}
		}
	}
	tags := make([]string, n)
	for i := range tags {
		tags[i] = Tag{Marker: Outside}.String()
	}
	if scheme == IOB {
		writeIOB(tags, sorted)
		return tags, nil
	}
	endMarker, singleMarker := def.end, def.single
	if def.lookahead {
		// BIO has no explicit end or singleton letters.
		endMarker, singleMarker = def.inside, def.begin
	}
	for _, span := range sorted {
		if span.Start == span.End {
			continue
		}
		if span.End-span.Start == 1 {
			tags[span.Start] = Tag{Marker: singleMarker, Type: span.Type}.String()
			continue
		}
		tags[span.Start] = Tag{Marker: def.begin, Type: span.Type}.String()
		tags[span.End-1] = Tag{Marker: endMarker, Type: span.Type}.String()
		for i := span.Start + 1; i < span.End-1; i++ {
			tags[i] = Tag{Marker: def.inside, Type: span.Type}.String()
		}
	}
	return tags, nil
}

// writeIOB marks every span token I and then upgrades a span's first token to
// B only when the previous token ends an adjacent span of the same type,
// which is the only place IOB needs B to keep the boundary unambiguous.
func writeIOB(tags []string, sorted []Span) {
	for _, span := range sorted {
		for i := span.Start; i < span.End; i++ {
			tags[i] = Tag{Marker: Inside, Type: span.Type}.String()
		}
	}
	for i := 1; i < len(sorted); i++ {
		prev, span := sorted[i-1], sorted[i]
		if prev.Start == prev.End || span.Start == span.End {
			continue
		}
		if prev.End == span.Start && prev.Type == span.Type {
			tags[span.Start] = Tag{Marker: Begin, Type: span.Type}.String()
		}
	}
}

// WriteTagsAuto is WriteTags with the sequence length inferred as the largest
// span end, matching callers that only care about the covered prefix.
func WriteTagsAuto(spans []Span, scheme Scheme) ([]string, error) {
	n := 0
	for _, span := range spans {
		if span.End > n {
			n = span.End
		}
	}
	return WriteTags(spans, n, scheme)
}
