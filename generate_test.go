package iobes

import "math/rand"

// Shared randomized fixtures: random span layouts plus an independent
// renderer per scheme, so the parser and writer are checked against each
// other without either one vouching for itself.

const trials = 100

var spanTypes = []string{"A", "B", "C", "AA"}

// randomSpans lays out up to five non-overlapping spans with random types,
// lengths, and gaps, returning them with a total token count that may leave
// trailing outside tokens.
func randomSpans(r *rand.Rand, types []string) ([]Span, int) {
	const (
		maxSpans   = 5
		maxSpanLen = 4
		maxGap     = 3
	)
	var spans []Span
	next := 0
	for s := r.Intn(maxSpans + 1); s > 0; s-- {
		typ := types[r.Intn(len(types))]
		start := next + r.Intn(maxGap+1)
		end := start + 1 + r.Intn(maxSpanLen)
		spans = append(spans, NewSpan(typ, start, end))
		next = end
	}
	return spans, next + r.Intn(maxGap+1)
}

func blankTags(n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = "O"
	}
	return tags
}

func renderExplicit(spans []Span, n int, begin, inside, end, single byte) []string {
	tags := blankTags(n)
	for _, s := range spans {
		if s.End-s.Start == 1 {
			tags[s.Start] = string(single) + "-" + s.Type
			continue
		}
		tags[s.Start] = string(begin) + "-" + s.Type
		tags[s.End-1] = string(end) + "-" + s.Type
		for i := s.Start + 1; i < s.End-1; i++ {
			tags[i] = string(inside) + "-" + s.Type
		}
	}
	return tags
}

func renderBIO(spans []Span, n int) []string {
	tags := blankTags(n)
	for _, s := range spans {
		tags[s.Start] = "B-" + s.Type
		for i := s.Start + 1; i < s.End; i++ {
			tags[i] = "I-" + s.Type
		}
	}
	return tags
}

// renderIOB marks every span token I, then upgrades span starts to B exactly
// where the preceding token already carries the same type.
func renderIOB(spans []Span, n int) []string {
	tags := blankTags(n)
	for _, s := range spans {
		for i := s.Start; i < s.End; i++ {
			tags[i] = "I-" + s.Type
		}
	}
	for _, s := range spans {
		if s.Start > 0 && ExtractType(tags[s.Start-1]) == s.Type {
			tags[s.Start] = "B-" + s.Type
		}
	}
	return tags
}

func renderTags(spans []Span, n int, scheme Scheme) []string {
	switch scheme {
	case IOB:
		return renderIOB(spans, n)
	case BIO:
		return renderBIO(spans, n)
	case IOBES:
		return renderExplicit(spans, n, 'B', 'I', 'E', 'S')
	case BILOU:
		return renderExplicit(spans, n, 'B', 'I', 'L', 'U')
	case BMEWO:
		return renderExplicit(spans, n, 'B', 'M', 'E', 'W')
	}
	panic("no renderer for scheme " + scheme.String())
}

var allSchemes = []Scheme{IOB, BIO, IOBES, BILOU, BMEWO}
