// Package iobes parses, writes, and converts token-level span encodings.
//
// Sequence-labeling models emit one tag per token using prefix conventions
// like BIO ("B-PER", "I-PER", "O") to mark entity spans. This package turns
// those flat tag sequences into structured Span values, renders Spans back
// into tags, and converts between the supported encodings: IOB, BIO (also
// known as IOB2), IOBES, BILOU, and BMEWO.
//
// Parsing is controlled by a Policy. Strict fails on the first tag that
// violates the encoding's transition grammar; Coerce repairs invalid
// transitions the way common span-evaluation scripts do and always succeeds;
// KeepGoing applies the same repairs but reports each one so data quality
// can be audited.
//
// Everything in this package is a pure function over its inputs and a set of
// immutable per-encoding tables, so all operations are safe for concurrent
// use without locking.
package iobes
