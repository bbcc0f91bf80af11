package iobes

import "github.com/pkg/errors"

// Transition is one (previous, next) pair from a scheme's legality table.
// Source and Target are raw tags, or the caller's start/end sentinels.
type Transition struct {
	Source string
	Target string
	Valid  bool
}

// transRole extends the marker roles with the synthetic sequence boundaries
// used only by transition queries.
type transRole int

const (
	transOutside transRole = iota
	transBegin
	transInside
	transEnd
	transSingle
	transStart
	transStop
)

var roleToTrans = map[role]transRole{
	roleOutside: transOutside,
	roleBegin:   transBegin,
	roleInside:  transInside,
	roleEnd:     transEnd,
	roleSingle:  transSingle,
}

type transTag struct {
	role transRole
	typ  string
}

// Transitions builds the full transition legality table for a scheme over
// the given tag vocabulary plus a start-of-sequence and end-of-sequence
// sentinel (e.g. "<GO>" and "<EOS>"). The table has one row per ordered pair
// and is the shape constrained decoders consume. Vocabulary entries must
// decode under the scheme.
func Transitions(vocab []string, start, end string, scheme Scheme) ([]Transition, error) {
	if scheme == Token {
		return nil, errors.Errorf("no transition table for the %s pseudo-scheme", scheme)
	}
	all := make([]string, 0, len(vocab)+2)
	all = append(all, vocab...)
	all = append(all, start, end)
	decoded := make([]transTag, len(all))
	for i, raw := range all {
		t, err := decodeTransTag(raw, start, end, scheme)
		if err != nil {
			return nil, err
		}
		decoded[i] = t
	}
	table := make([]Transition, 0, len(all)*len(all))
	for i, src := range all {
		for j, tgt := range all {
			table = append(table, Transition{
				Source: src,
				Target: tgt,
				Valid:  validPair(decoded[i], decoded[j], scheme),
			})
		}
	}
	return table, nil
}

// ValidTransition reports whether tag cur may legally follow tag prev under
// the scheme's grammar. Both must be real tags; use ValidStart and ValidEnd
// for the sequence boundaries.
func ValidTransition(prev, cur string, scheme Scheme) (bool, error) {
	src, err := decodeTransTag(prev, "", "", scheme)
	if err != nil {
		return false, err
	}
	tgt, err := decodeTransTag(cur, "", "", scheme)
	if err != nil {
		return false, err
	}
	return validPair(src, tgt, scheme), nil
}

// ValidStart reports whether a sequence may legally begin with tag.
func ValidStart(tag string, scheme Scheme) (bool, error) {
	tgt, err := decodeTransTag(tag, "", "", scheme)
	if err != nil {
		return false, err
	}
	return validPair(transTag{role: transStart}, tgt, scheme), nil
}

// ValidEnd reports whether a sequence may legally end with tag.
func ValidEnd(tag string, scheme Scheme) (bool, error) {
	src, err := decodeTransTag(tag, "", "", scheme)
	if err != nil {
		return false, err
	}
	return validPair(src, transTag{role: transStop}, scheme), nil
}

func decodeTransTag(raw, start, end string, scheme Scheme) (transTag, error) {
	switch {
	case start != "" && raw == start:
		return transTag{role: transStart}, nil
	case end != "" && raw == end:
		return transTag{role: transStop}, nil
	}
	def, err := scheme.def()
	if err != nil {
		return transTag{}, err
	}
	t, err := DecodeTag(raw, scheme)
	if err != nil {
		return transTag{}, err
	}
	return transTag{role: roleToTrans[def.role(t.Marker)], typ: t.Type}, nil
}

// validPair is the per-scheme transition grammar. The lookahead schemes only
// restrict one marker each: IOB's B must sit between two same-type spans, and
// BIO's I must continue a same-type span. The explicit schemes additionally
// require every opened span to be closed before anything else happens.
func validPair(src, tgt transTag, scheme Scheme) bool {
	if tgt.role == transStart || src.role == transStop {
		return false
	}
	switch scheme {
	case IOB:
		if tgt.role == transBegin {
			return (src.role == transBegin || src.role == transInside) && src.typ == tgt.typ
		}
		return true
	case BIO:
		if tgt.role == transInside {
			return (src.role == transBegin || src.role == transInside) && src.typ == tgt.typ
		}
		return true
	default:
		// IOBES, BILOU, and BMEWO share one grammar once markers are
		// reduced to roles.
		switch src.role {
		case transBegin, transInside:
			return (tgt.role == transInside || tgt.role == transEnd) && src.typ == tgt.typ
		default:
			return tgt.role != transInside && tgt.role != transEnd
		}
	}
}
