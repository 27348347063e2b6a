// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package identifiers recognizes and normalizes scholarly-metadata
// identifiers (DOI, ORCID, ROR, ISBN) and generic URIs from free-form text.
//
// Parse is total: every input maps to exactly one identifier kind, with an
// opaque-string kind as the universal fallback. Each recognized kind carries
// its canonical in-memory form (checksum-validated, case- and
// encoding-normalized), and the stable-string forms round-trip: parsing a
// stable string reproduces the identifier that produced it.
package identifiers

import (
	"fmt"
	"log"
)

// Kind tags the identifier variants. The numeric values are persisted by
// callers as database keys and must never be reassigned or reused.
type Kind int

const (
	KindDOI    Kind = 1
	KindORCID  Kind = 2
	KindROR    Kind = 3
	KindURI    Kind = 4
	KindString Kind = 5
	KindISBN   Kind = 6
)

func (k Kind) String() string {
	switch k {
	case KindDOI:
		return "doi"
	case KindORCID:
		return "orcid"
	case KindROR:
		return "ror"
	case KindURI:
		return "uri"
	case KindString:
		return "string"
	case KindISBN:
		return "isbn"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Identifier is a closed tagged union over identifier kinds.
//
// The payload is the canonical in-memory form of the kind, not the URI form:
//   - DOI: prefix ("10." plus digits) and suffix (lower-cased, percent-decoded
//     Unicode). Equality is defined on the decoded suffix, never on any
//     particular URL encoding of it.
//   - ORCID: the 19-character upper-case id, e.g. "0000-0002-1694-233X".
//   - ROR: the 9-character lower-case code, e.g. "02twcfp32".
//   - ISBN: 13 digits with no separators. 10-digit input is normalized up.
//   - URI: the normalized string form of a parsed URI; the fallback for
//     anything URI-shaped that matched no more specific kind.
//   - String: the raw input verbatim; the fallback for everything else.
//
// Values are constructed by Parse or ParseKindTagged and are immutable.
type Identifier struct {
	kind Kind

	// prefix is populated for DOI only.
	prefix string
	value  string
}

// recognizer attempts to claim an input for one identifier kind.
type recognizer func(in parseInput) (Identifier, bool)

// Recognizers in precedence order. Order is a correctness requirement:
// DOI syntax is a superset that the URI fallback would otherwise claim, and
// the URI recognizer is greedy so it must run last.
var recognizers = []recognizer{
	parseDOI,
	parseORCID,
	parseISBN,
	parseROR,
	parseURI,
}

// Parse recognizes input as an identifier. It always succeeds: input that
// matches no known kind is returned as a KindString identifier wrapping the
// input verbatim.
func Parse(input string) Identifier {
	in := newParseInput(input)
	for _, try := range recognizers {
		if id, ok := try(in); ok {
			return id
		}
	}
	return Identifier{kind: KindString, value: input}
}

// ParseKindTagged reconstructs an identifier from a value previously produced
// by KindTagged, re-running only the recognizer for the given kind. It reports
// false when the kind tag is unknown or the value no longer parses as that
// kind, either of which signals corruption of the persisted pair.
func ParseKindTagged(value string, kind Kind) (Identifier, bool) {
	switch kind {
	case KindDOI:
		return parseDOI(newParseInput(value))
	case KindORCID:
		return parseORCID(newParseInput(value))
	case KindROR:
		return parseROR(newParseInput(value))
	case KindURI:
		return parseURI(newParseInput(value))
	case KindString:
		return Identifier{kind: KindString, value: value}, true
	case KindISBN:
		return parseISBN(newParseInput(value))
	default:
		log.Printf("identifiers: unrecognized kind tag %d for %q", int(kind), value)
		return Identifier{}, false
	}
}

// Kind returns the tag identifying which variant this identifier is.
func (id Identifier) Kind() Kind {
	return id.kind
}

// Value returns the canonical in-memory payload: the decoded "prefix/suffix"
// for DOI, and the single canonical string for every other kind.
func (id Identifier) Value() string {
	if id.kind == KindDOI {
		return id.prefix + "/" + id.value
	}
	return id.value
}

// Equal reports whether two identifiers have the same kind and canonical
// payload. DOI comparison is on the decoded suffix, so differently encoded
// URL forms of one DOI compare equal once parsed.
func (id Identifier) Equal(other Identifier) bool {
	return id == other
}

// URI returns the resolvable URI form, if the kind has one. KindString never
// does, and ISBN has no natural resolvable URL, so both report false.
func (id Identifier) URI() (string, bool) {
	switch id.kind {
	case KindDOI:
		return doiURI(id.prefix, id.value), true
	case KindORCID:
		return orcidURI(id.value), true
	case KindROR:
		return rorURI(id.value), true
	case KindURI:
		return id.value, true
	case KindString, KindISBN:
		return "", false
	default:
		return "", false
	}
}

// StableString returns the canonical persisted form, suitable for use as a
// storage or lookup key. Parsing the result reproduces the identifier. For
// DOI, ORCID, and ROR the stable form is the URI form; for the rest it is the
// canonical payload itself.
func (id Identifier) StableString() string {
	switch id.kind {
	case KindDOI:
		return doiURI(id.prefix, id.value)
	case KindORCID:
		return orcidURI(id.value)
	case KindROR:
		return rorURI(id.value)
	case KindURI, KindString, KindISBN:
		return id.value
	default:
		// Reachable only through an internal defect, e.g. a kind added
		// without updating this switch.
		log.Printf("identifiers: no stable form for %v", id)
		return id.String()
	}
}

// KindTagged returns the stable string paired with the permanent numeric kind
// tag. ParseKindTagged inverts it.
func (id Identifier) KindTagged() (string, Kind) {
	switch id.kind {
	case KindDOI, KindORCID, KindROR, KindURI, KindString, KindISBN:
		return id.StableString(), id.kind
	default:
		log.Printf("identifiers: no kind tag for %v", id)
		return id.String(), KindString
	}
}

// String is a debug rendering. It is not a stable form; use StableString.
func (id Identifier) String() string {
	return fmt.Sprintf("%s(%q)", id.kind, id.Value())
}
