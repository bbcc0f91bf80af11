package iobes

import (
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Policy controls how the parser reacts to tags that violate the scheme's
// transition grammar. Malformed tags (see MalformedTagError) are fatal under
// every policy.
type Policy int

const (
	// Strict fails the whole parse on the first invalid transition.
	Strict Policy = iota
	// Coerce repairs invalid transitions the way span-evaluation scripts do
	// and always succeeds.
	Coerce
	// KeepGoing repairs like Coerce but reports every repair applied.
	KeepGoing
)

var policyNames = map[Policy]string{
	Strict:    "strict",
	Coerce:    "coerce",
	KeepGoing: "keep-going",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePolicy resolves a policy name, one of "strict", "coerce", or
// "keep-going".
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strict":
		return Strict, nil
	case "coerce":
		return Coerce, nil
	case "keep-going":
		return KeepGoing, nil
	}
	return 0, errors.Errorf("unknown parse policy %q", name)
}

// RepairKind names the fix applied to one invalid transition.
type RepairKind int

const (
	// RepairOpen: a continuation marker with no matching open span was
	// treated as a span start.
	RepairOpen RepairKind = iota
	// RepairClose: an open span was closed without its explicit end marker.
	RepairClose
	// RepairSingle: an end marker with no matching open span was emitted as
	// a single-token span of its own type.
	RepairSingle
)

var repairKindNames = map[RepairKind]string{
	RepairOpen:   "open",
	RepairClose:  "close",
	RepairSingle: "single",
}

func (k RepairKind) String() string {
	if name, ok := repairKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Repair records one coercion applied during a KeepGoing parse. Tag is the
// raw tag that triggered it, empty when the repair happened at the end of the
// sequence (Index is then the sequence length).
type Repair struct {
	Index int
	Kind  RepairKind
	Tag   string
}

// ParseResult carries the parsed spans together with the repairs that were
// applied to produce them. Repairs is empty under Strict (a strict parse that
// would need a repair fails instead) and under Coerce (which discards them).
type ParseResult struct {
	Spans   []Span
	Repairs []Repair
}

// ParseSpans decodes a token-aligned tag sequence into the spans it encodes.
// The returned spans are ordered by start index and never overlap. Under
// Strict the first grammar violation fails the parse with an
// InvalidTransitionError; under Coerce and KeepGoing violations are repaired
// and the parse always succeeds for decodable input.
func ParseSpans(tags []string, scheme Scheme, policy Policy) (ParseResult, error) {
	if scheme == Token {
		spans := make([]Span, 0, len(tags))
		for i, t := range tags {
			spans = append(spans, NewSpan(t, i, i+1))
		}
		return ParseResult{Spans: spans}, nil
	}
	def, err := scheme.def()
	if err != nil {
		return ParseResult{}, err
	}
	p := &spanParser{scheme: scheme, def: def, policy: policy}
	if def.lookahead {
		err = p.scanLookahead(tags)
	} else {
		err = p.scanExplicit(tags)
	}
	if err != nil {
		return ParseResult{}, err
	}
	if policy == Coerce {
		p.repairs = nil
	}
	return ParseResult{Spans: p.spans, Repairs: p.repairs}, nil
}

// spanParser accumulates spans over one left-to-right scan. At most one span
// is open at a time; openType/openStart describe it while open is true.
type spanParser struct {
	scheme  Scheme
	def     *schemeDef
	policy  Policy
	spans   []Span
	repairs []Repair

	open      bool
	openType  string
	openStart int
	prevRaw   string
}

// invalid handles one grammar violation at index i: fatal under Strict,
// recorded as a repair otherwise. raw is empty at the end of the sequence.
func (p *spanParser) invalid(i int, kind RepairKind, raw string) error {
	if p.policy == Strict {
		return &InvalidTransitionError{Scheme: p.scheme, Index: i, Prev: p.prevRaw, Cur: raw}
	}
	klog.V(2).Infof("iobes: %s repair (%s) at index %d on tag %q", p.scheme, kind, i, raw)
	p.repairs = append(p.repairs, Repair{Index: i, Kind: kind, Tag: raw})
	return nil
}

// closeAt emits the open span, if any, ending just before token index end.
func (p *spanParser) closeAt(end int) {
	if p.open {
		p.spans = append(p.spans, NewSpan(p.openType, p.openStart, end))
		p.open = false
	}
}

func (p *spanParser) startAt(typ string, i int) {
	p.open = true
	p.openType = typ
	p.openStart = i
}

// scanLookahead parses the IOB and BIO families, where a span's end is only
// visible from the next tag. The two differ in where a span may legally
// start: BIO opens every span with B, while IOB opens with I and reserves B
// for the second of two adjacent same-type spans.
func (p *spanParser) scanLookahead(tags []string) error {
	for i, raw := range tags {
		t, err := DecodeTag(raw, p.scheme)
		if err != nil {
			return err
		}
		switch p.def.role(t.Marker) {
		case roleBegin:
			if p.scheme == IOB && !(p.open && p.openType == t.Type) {
				if err := p.invalid(i, RepairOpen, raw); err != nil {
					return err
				}
			}
			p.closeAt(i)
			p.startAt(t.Type, i)
		case roleInside:
			switch {
			case p.open && p.openType == t.Type:
				// Extends the open span.
			case p.scheme == IOB:
				// IOB spans legally start (and switch type) with I.
				p.closeAt(i)
				p.startAt(t.Type, i)
			default:
				if err := p.invalid(i, RepairOpen, raw); err != nil {
					return err
				}
				p.closeAt(i)
				p.startAt(t.Type, i)
			}
		default:
			p.closeAt(i)
		}
		p.prevRaw = raw
	}
	p.closeAt(len(tags))
	return nil
}

// scanExplicit parses the IOBES, BILOU, and BMEWO family, where every marker
// states its role outright. The repair rules mirror the ones span-evaluation
// scripts apply: a stray continuation opens a span, a stray end becomes a
// single-token span, and a span cut short is emitted with the tokens seen so
// far. An end marker of the wrong type drops the open span entirely and
// keeps only the single-token span it names.
func (p *spanParser) scanExplicit(tags []string) error {
	for i, raw := range tags {
		t, err := DecodeTag(raw, p.scheme)
		if err != nil {
			return err
		}
		switch p.def.role(t.Marker) {
		case roleBegin:
			if p.open {
				if err := p.invalid(i, RepairClose, raw); err != nil {
					return err
				}
				p.closeAt(i)
			}
			p.startAt(t.Type, i)
		case roleSingle:
			if p.open {
				if err := p.invalid(i, RepairClose, raw); err != nil {
					return err
				}
				p.closeAt(i)
			}
			p.spans = append(p.spans, NewSpan(t.Type, i, i+1))
		case roleInside:
			switch {
			case p.open && p.openType == t.Type:
				// Extends the open span.
			case p.open:
				if err := p.invalid(i, RepairOpen, raw); err != nil {
					return err
				}
				p.closeAt(i)
				p.startAt(t.Type, i)
			default:
				if err := p.invalid(i, RepairOpen, raw); err != nil {
					return err
				}
				p.startAt(t.Type, i)
			}
		case roleEnd:
			switch {
			case p.open && p.openType == t.Type:
				p.closeAt(i + 1)
			case p.open:
				if err := p.invalid(i, RepairSingle, raw); err != nil {
					return err
				}
				p.open = false
				p.spans = append(p.spans, NewSpan(t.Type, i, i+1))
			default:
				if err := p.invalid(i, RepairSingle, raw); err != nil {
					return err
				}
				p.spans = append(p.spans, NewSpan(t.Type, i, i+1))
			}
		default:
			if p.open {
				if err := p.invalid(i, RepairClose, raw); err != nil {
					return err
				}
				p.closeAt(i)
			}
		}
		p.prevRaw = raw
	}
	if p.open {
		if err := p.invalid(len(tags), RepairClose, ""); err != nil {
			return err
		}
		p.closeAt(len(tags))
	}
	return nil
}
