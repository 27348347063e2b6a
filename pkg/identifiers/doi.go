// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package identifiers

import (
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// A DOI (Digital Object Identifier) is a persistent scholarly identifier and
// a subset of the Handle system. A raw DOI starts with "10.", followed by
// digits, a slash, and a suffix of any printable Unicode. DOIs are also
// written as resolver URLs ("https://doi.org/..."), in which case the suffix
// is percent-encoded; this package parses both and stores the decoded form.
//
// Encoding back to a URL follows the "DOI Name Encoding Rules for URL
// Presentation" of the DOI handbook:
// https://www.doi.org/doi-handbook/HTML/encoding-rules-for-urls.html
var (
	// URI schemes seen in front of DOIs in the wild. Forms like
	// "http://doi.org/urn:doi:10.5555/12345678" occur, so schemes are
	// stripped from both the start of the string and the start of the path.
	doiSchemeRE = regexp.MustCompile(`^(https://|http://|doi:|urn:doi:|info:doi:)`)

	// Hostnames of DOI resolvers.
	doiHostRE = regexp.MustCompile(`^(dx\.doi\.org/|doi\.org/)`)

	// A potential DOI allowing an encoded slash, anchored to the start.
	// Inputs are lower-cased before matching, so "%2f" covers "%2F".
	doiEncodedRE = regexp.MustCompile(`^10\.\d+(/|%2f)`)

	// A strict raw DOI, anchored to the whole string.
	doiStrictRE = regexp.MustCompile(`^(10\.\d+)/(.+)$`)
)

// doiSafeBytes are the characters left unencoded in a DOI URL: RFC 3986
// unreserved characters plus the reserved characters the DOI handbook permits
// unencoded. Every other byte is rendered as upper-hex %XX.
var doiSafeBytes = func() (t [128]bool) {
	const unreserved = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~"
	const reserved = "!$&'()*,/:;=@"
	for i := 0; i < len(unreserved); i++ {
		t[unreserved[i]] = true
	}
	for i := 0; i < len(reserved); i++ {
		t[reserved[i]] = true
	}
	return
}()

// parseDOI recognizes raw DOIs and DOI resolver URLs.
//
// The raw form is tried first. A DOI suffix may contain any printable Unicode,
// so there is no middle ground: an input that already matches the raw shape
// must be taken literally and never percent-decoded, otherwise a raw DOI whose
// suffix happens to contain "%" would be corrupted.
//
// A URL form whose suffix decodes to invalid UTF-8 is declined outright rather
// than repaired: a guessed DOI would not resolve, which is worse than
// reporting the input as unrecognized.
func parseDOI(in parseInput) (Identifier, bool) {
	// DOIs are case-insensitive by definition.
	lower := strings.ToLower(in.raw)

	if doiStrictRE.MatchString(lower) {
		return constructDOI(lower)
	}

	stripped := stripDOIPrefixes(lower)
	if !doiEncodedRE.MatchString(stripped) {
		return Identifier{}, false
	}
	decoded, err := url.PathUnescape(stripped)
	if err != nil {
		log.Printf("identifiers: undecodable DOI %q: %v", stripped, err)
		return Identifier{}, false
	}
	if !utf8.ValidString(decoded) {
		log.Printf("identifiers: DOI %q decodes to invalid UTF-8", stripped)
		return Identifier{}, false
	}
	return constructDOI(decoded)
}

func constructDOI(raw string) (Identifier, bool) {
	m := doiStrictRE.FindStringSubmatch(raw)
	if m == nil {
		return Identifier{}, false
	}
	// The suffix may contain characters whose percent-encoded forms survived
	// the initial lower-casing (e.g. "%41" decoding to "A"), so fold again.
	return Identifier{kind: KindDOI, prefix: m[1], value: strings.ToLower(m[2])}, true
}

// stripDOIPrefixes removes a leading URI scheme, then a leading resolver
// host, then a second leading scheme to cover doubled forms like
// "http://doi.org/urn:doi:10.5555/12345678".
func stripDOIPrefixes(lower string) string {
	s := doiSchemeRE.ReplaceAllString(lower, "")
	s = doiHostRE.ReplaceAllString(s, "")
	return doiSchemeRE.ReplaceAllString(s, "")
}

// encodeDOISuffix percent-encodes a decoded DOI suffix for URL presentation.
// This is one fixed minimal policy, not a reproduction of whatever encoding an
// input happened to use. Bytes outside doiSafeBytes, including every byte of a
// multi-byte UTF-8 sequence, become upper-hex %XX.
func encodeDOISuffix(suffix string) string {
	var b strings.Builder
	for i := 0; i < len(suffix); i++ {
		c := suffix[i]
		if c < utf8.RuneSelf && doiSafeBytes[c] {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// doiURI renders the resolver URL, which is also the DOI's stable form.
func doiURI(prefix, suffix string) string {
	return "https://doi.org/" + prefix + "/" + encodeDOISuffix(suffix)
}
