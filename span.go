package iobes

import "sort"

// Span is one labeled, contiguous run of tokens. Start is inclusive and End
// exclusive, so Tokens is always the range [Start, End) in ascending order.
// Spans are plain values; the parser never returns overlapping ones.
type Span struct {
	Type   string
	Start  int
	End    int
	Tokens []int
}

// NewSpan builds a span over the half-open token range [start, end).
func NewSpan(typ string, start, end int) Span {
	tokens := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		tokens = append(tokens, i)
	}
	return Span{Type: typ, Start: start, End: end, Tokens: tokens}
}

// SortSpans returns a copy of spans stably ordered by start index.
func SortSpans(spans []Span) []Span {
	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}
