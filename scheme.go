package iobes

import "strings"

// Scheme selects one of the supported span encodings.
//
// Token is a pseudo-scheme in which every tag is its own single-token span
// with the whole tag string as the type. It is accepted by the parser only;
// the writer and the transition tables reject it.
type Scheme int

const (
	IOB Scheme = iota + 1 // legacy IOB1: B only disambiguates adjacent same-type spans
	BIO                   // IOB2: every span starts with B
	IOBES
	BILOU
	BMEWO
	Token
)

var schemeNames = map[Scheme]string{
	IOB:   "IOB",
	BIO:   "BIO",
	IOBES: "IOBES",
	BILOU: "BILOU",
	BMEWO: "BMEWO",
	Token: "TOKEN",
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseScheme resolves a scheme name. Matching is case-insensitive and
// accepts the common aliases "iob2" for BIO and "bmeow" for BMEWO. An
// UnknownSchemeError is returned for anything else.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iob":
		return IOB, nil
	case "bio", "iob2":
		return BIO, nil
	case "iobes":
		return IOBES, nil
	case "bilou":
		return BILOU, nil
	case "bmewo", "bmeow":
		return BMEWO, nil
	case "token":
		return Token, nil
	}
	return 0, &UnknownSchemeError{Name: name}
}

// role is a marker's structural meaning, independent of which letter a
// particular scheme spells it with.
type role int

const (
	roleOutside role = iota
	roleBegin
	roleInside
	roleEnd
	roleSingle
)

// schemeDef is the per-scheme constant descriptor: which marker letter plays
// each role, and whether span ends are inferred from the next tag (lookahead
// family: IOB, BIO) instead of being marked explicitly.
type schemeDef struct {
	begin     Marker
	inside    Marker
	end       Marker // zero in the lookahead family
	single    Marker // zero in the lookahead family
	lookahead bool
}

var schemeDefs = map[Scheme]*schemeDef{
	IOB:   {begin: Begin, inside: Inside, lookahead: true},
	BIO:   {begin: Begin, inside: Inside, lookahead: true},
	IOBES: {begin: Begin, inside: Inside, end: End, single: Single},
	BILOU: {begin: Begin, inside: Inside, end: Last, single: Unit},
	BMEWO: {begin: Begin, inside: Middle, end: End, single: Whole},
	Token: {},
}

func (s Scheme) def() (*schemeDef, error) {
	if def, ok := schemeDefs[s]; ok {
		return def, nil
	}
	return nil, &UnknownSchemeError{Name: s.String()}
}

func (d *schemeDef) inAlphabet(m Marker) bool {
	return m == Outside || m == d.begin || m == d.inside ||
		(d.end != 0 && m == d.end) || (d.single != 0 && m == d.single)
}

// role maps a marker to its structural meaning. The marker must already be in
// the scheme's alphabet.
func (d *schemeDef) role(m Marker) role {
	switch m {
	case d.begin:
		return roleBegin
	case d.inside:
		return roleInside
	case d.end:
		return roleEnd
	case d.single:
		return roleSingle
	default:
		return roleOutside
	}
}

// marker is the inverse of role, spelling a structural role in this scheme's
// alphabet.
func (d *schemeDef) marker(r role) Marker {
	switch r {
	case roleBegin:
		return d.begin
	case roleInside:
		return d.inside
	case roleEnd:
		return d.end
	case roleSingle:
		return d.single
	default:
		return Outside
	}
}
