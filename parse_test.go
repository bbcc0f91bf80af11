package iobes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpansBIO(t *testing.T) {
	tags := []string{"O", "B-PER", "I-PER", "O", "B-LOC"}
	result, err := ParseSpans(tags, BIO, Strict)
	require.NoError(t, err)
	assert.Equal(t, []Span{NewSpan("PER", 1, 3), NewSpan("LOC", 4, 5)}, result.Spans)
	assert.Empty(t, result.Repairs)
}

func TestParseSpansIOBStartsWithInside(t *testing.T) {
	// IOB legally opens spans with I; the same tags are a grammar violation
	// under BIO.
	tags := []string{"I-PER", "I-PER"}

	result, err := ParseSpans(tags, IOB, Strict)
	require.NoError(t, err)
	assert.Equal(t, []Span{NewSpan("PER", 0, 2)}, result.Spans)

	_, err = ParseSpans(tags, BIO, Strict)
	var transErr *InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, 0, transErr.Index)
	assert.Equal(t, "", transErr.Prev)
	assert.Equal(t, "I-PER", transErr.Cur)

	result, err = ParseSpans(tags, BIO, Coerce)
	require.NoError(t, err)
	assert.Equal(t, []Span{NewSpan("PER", 0, 2)}, result.Spans)
	assert.Empty(t, result.Repairs)
}

func TestParseSpansIOBAdjacentSameType(t *testing.T) {
	tags := []string{"I-PER", "B-PER", "I-PER", "O", "I-LOC"}
	result, err := ParseSpans(tags, IOB, Strict)
	require.NoError(t, err)
	assert.Equal(t, []Span{
		NewSpan("PER", 0, 1),
		NewSpan("PER", 1, 3),
		NewSpan("LOC", 4, 5),
	}, result.Spans)
}

func TestParseSpansIOBDanglingBegin(t *testing.T) {
	// B is only legal between two same-type spans in IOB.
	tags := []string{"O", "B-PER"}
	_, err := ParseSpans(tags, IOB, Strict)
	var transErr *InvalidTransitionError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, 1, transErr.Index)
	assert.Equal(t, "O", transErr.Prev)
	assert.Equal(t, "B-PER", transErr.Cur)

	result, err := ParseSpans(tags, IOB, KeepGoing)
	require.NoError(t, err)
	assert.Equal(t, []Span{NewSpan("PER", 1, 2)}, result.Spans)
	assert.Equal(t, []Repair{{Index: 1, Kind: RepairOpen, Tag: "B-PER"}}, result.Repairs)
}

func TestParseSpansMalformedTag(t *testing.T) {
	for _, policy := range []Policy{Strict, Coerce, KeepGoing} {
		_, err := ParseSpans([]string{"O", "X-PER"}, BIO, policy)
		var malformed *MalformedTagError
		require.ErrorAs(t, err, &malformed, "policy %s", policy)
		assert.Equal(t, "X-PER", malformed.Tag)
	}
}

func TestParseSpansMalformedShapes(t *testing.T) {
	for _, raw := range []string{"B-", "-PER", "B", "PER", "O-PER", "BB-PER", ""} {
		_, err := ParseSpans([]string{raw}, IOBES, Coerce)
		var malformed *MalformedTagError
		assert.ErrorAs(t, err, &malformed, "tag %q", raw)
	}
}

func TestParseSpansAllOutside(t *testing.T) {
	tags := []string{"O", "O", "O"}
	for _, scheme := range allSchemes {
		result, err := ParseSpans(tags, scheme, Strict)
		require.NoError(t, err, "scheme %s", scheme)
		assert.Empty(t, result.Spans, "scheme %s", scheme)
	}
}

func TestParseSpansIOBESStrictErrors(t *testing.T) {
	tests := []struct {
		name  string
		tags  []string
		index int
		prev  string
		cur   string
	}{
		{"inside opens", []string{"I-PER"}, 0, "", "I-PER"},
		{"end opens", []string{"E-PER"}, 0, "", "E-PER"},
		{"outside cuts", []string{"B-PER", "O"}, 1, "B-PER", "O"},
		{"begin cuts", []string{"B-PER", "B-LOC"}, 1, "B-PER", "B-LOC"},
		{"single cuts", []string{"B-PER", "S-LOC"}, 1, "B-PER", "S-LOC"},
		{"type mismatch inside", []string{"B-PER", "I-LOC"}, 1, "B-PER", "I-LOC"},
		{"type mismatch end", []string{"B-PER", "E-LOC"}, 1, "B-PER", "E-LOC"},
		{"unclosed at sequence end", []string{"B-PER", "I-PER"}, 2, "I-PER", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpans(tt.tags, IOBES, Strict)
			var transErr *InvalidTransitionError
			require.ErrorAs(t, err, &transErr)
			assert.Equal(t, tt.index, transErr.Index)
			assert.Equal(t, tt.prev, transErr.Prev)
			assert.Equal(t, tt.cur, transErr.Cur)
		})
	}
}

func TestParseSpansIOBESRepairs(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		spans   []Span
		repairs []Repair
	}{
		{
			"stray inside opens a span",
			[]string{"I-PER", "E-PER"},
			[]Span{NewSpan("PER", 0, 2)},
			[]Repair{{Index: 0, Kind: RepairOpen, Tag: "I-PER"}},
		},
		{
			"dangling end becomes a singleton",
			[]string{"O", "E-PER"},
			[]Span{NewSpan("PER", 1, 2)},
			[]Repair{{Index: 1, Kind: RepairSingle, Tag: "E-PER"}},
		},
		{
			"outside cuts an open span",
			[]string{"B-PER", "O"},
			[]Span{NewSpan("PER", 0, 1)},
			[]Repair{{Index: 1, Kind: RepairClose, Tag: "O"}},
		},
		{
			"sequence end cuts an open span",
			[]string{"B-PER", "I-PER"},
			[]Span{NewSpan("PER", 0, 2)},
			[]Repair{{Index: 2, Kind: RepairClose, Tag: ""}},
		},
		{
			"mismatched end drops the open span",
			[]string{"B-PER", "I-PER", "E-LOC"},
			[]Span{NewSpan("LOC", 2, 3)},
			[]Repair{{Index: 2, Kind: RepairSingle, Tag: "E-LOC"}},
		},
		{
			"single cuts an open span",
			[]string{"B-PER", "S-LOC"},
			[]Span{NewSpan("PER", 0, 1), NewSpan("LOC", 1, 2)},
			[]Repair{{Index: 1, Kind: RepairClose, Tag: "S-LOC"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSpans(tt.tags, IOBES, KeepGoing)
			require.NoError(t, err)
			assert.Equal(t, tt.spans, result.Spans)
			assert.Equal(t, tt.repairs, result.Repairs)

			// Coerce produces the same spans but discards the diagnostics.
			coerced, err := ParseSpans(tt.tags, IOBES, Coerce)
			require.NoError(t, err)
			assert.Equal(t, tt.spans, coerced.Spans)
			assert.Empty(t, coerced.Repairs)
		})
	}
}

func TestParseSpansToken(t *testing.T) {
	result, err := ParseSpans([]string{"DET", "NOUN", "VERB"}, Token, Strict)
	require.NoError(t, err)
	assert.Equal(t, []Span{
		NewSpan("DET", 0, 1),
		NewSpan("NOUN", 1, 2),
		NewSpan("VERB", 2, 3),
	}, result.Spans)
}

func TestParseSpansUnknownScheme(t *testing.T) {
	_, err := ParseSpans([]string{"O"}, Scheme(42), Strict)
	var unknown *UnknownSchemeError
	assert.ErrorAs(t, err, &unknown)
}

func TestParseSpansRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, scheme := range allSchemes {
		t.Run(scheme.String(), func(t *testing.T) {
			for i := 0; i < trials; i++ {
				spans, n := randomSpans(r, spanTypes)
				tags := renderTags(spans, n, scheme)
				result, err := ParseSpans(tags, scheme, Strict)
				require.NoError(t, err, "tags %v", tags)
				assert.Equal(t, spans, result.Spans, "tags %v", tags)
				assert.Empty(t, result.Repairs)
			}
		})
	}
}

func TestParsePolicyNames(t *testing.T) {
	for _, name := range []string{"strict", "coerce", "keep-going", " Strict ", "KEEP-GOING"} {
		_, err := ParsePolicy(name)
		assert.NoError(t, err, "name %q", name)
	}
	_, err := ParsePolicy("lenient")
	assert.Error(t, err)
}
