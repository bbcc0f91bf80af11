package iobes

import (
	"fmt"
	"strings"
)

// Marker is the single-letter structural prefix of a tag, telling you what
// role the token plays inside a span.
type Marker byte

const (
	Outside Marker = 'O'
	Begin   Marker = 'B'
	Inside  Marker = 'I'
	Middle  Marker = 'M'
	End     Marker = 'E'
	Last    Marker = 'L'
	Single  Marker = 'S'
	Unit    Marker = 'U'
	Whole   Marker = 'W'
)

func (m Marker) String() string {
	return string(byte(m))
}

// Tag is one decoded token label: a structural marker plus the entity type it
// applies to. Type is empty if and only if the marker is Outside.
type Tag struct {
	Marker Marker
	Type   string
}

// String renders the tag back to its raw form, "O" or "<marker>-<type>".
func (t Tag) String() string {
	if t.Marker == Outside {
		return string(byte(Outside))
	}
	return fmt.Sprintf("%c-%s", byte(t.Marker), t.Type)
}

// DecodeTag parses a raw tag string under the given scheme. The raw form is
// either the bare outside marker "O" or "<marker>-<type>", split on the first
// "-" so types may themselves contain dashes. A MalformedTagError is returned
// when the marker is not part of the scheme's alphabet or the type is empty.
func DecodeTag(raw string, scheme Scheme) (Tag, error) {
	def, err := scheme.def()
	if err != nil {
		return Tag{}, err
	}
	marker, typ, found := strings.Cut(raw, "-")
	if !found {
		if raw == string(byte(Outside)) {
			return Tag{Marker: Outside}, nil
		}
		return Tag{}, &MalformedTagError{Tag: raw, Scheme: scheme}
	}
	if len(marker) != 1 || typ == "" {
		return Tag{}, &MalformedTagError{Tag: raw, Scheme: scheme}
	}
	m := Marker(marker[0])
	// The outside marker never carries a type.
	if m == Outside || !def.inAlphabet(m) {
		return Tag{}, &MalformedTagError{Tag: raw, Scheme: scheme}
	}
	return Tag{Marker: m, Type: typ}, nil
}

// ExtractType returns the type portion of a raw tag, or the tag itself when
// it carries no "-" separator. It performs no scheme validation.
func ExtractType(tag string) string {
	if _, typ, found := strings.Cut(tag, "-"); found {
		return typ
	}
	return tag
}

// ExtractMarker returns the marker portion of a raw tag, or the tag itself
// when it carries no "-" separator. It performs no scheme validation.
func ExtractMarker(tag string) string {
	marker, _, _ := strings.Cut(tag, "-")
	return marker
}
