// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package identifiers

import (
	"regexp"
	"strconv"
	"strings"
)

// A ROR id identifies a research organization: a leading "0", six characters
// of a restricted base-32 alphabet, and a two-digit mod-97 checksum. Unlike
// DOI and ORCID, ROR ids are case-sensitive and always lower case.

const rorHost = "ror.org"

// Group 1 is the base-32 portion, group 2 the two checksum digits.
var rorPathRE = regexp.MustCompile(`^(0[0-9a-hj-km-np-tv-z]{6})([0-9]{2})$`)

// Crockford's base-32 alphabet, excluding i, l, o, and u.
// See https://www.crockford.com/base32.html
const rorAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// parseROR recognizes ROR resolver URLs. The path is taken case-preserved: an
// upper-cased code is a decline, which distinguishes ROR from the
// case-insensitive kinds and routes such input to the generic URI kind.
func parseROR(in parseInput) (Identifier, bool) {
	host, ok := in.hostLower()
	if !ok || host != rorHost {
		return Identifier{}, false
	}
	path, ok := in.pathNoSlash()
	if !ok || !validROR(path) {
		return Identifier{}, false
	}
	return Identifier{kind: KindROR, value: path}, true
}

func validROR(path string) bool {
	m := rorPathRE.FindStringSubmatch(path)
	if m == nil {
		return false
	}
	check, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return false
	}
	return rorCheckDigits(m[1]) == check
}

// rorCheckDigits decodes the 7-character base-32 portion and derives the
// expected two-digit checksum.
func rorCheckDigits(code string) uint64 {
	var value uint64
	for i := 0; i < len(code); i++ {
		idx := strings.IndexByte(rorAlphabet, code[i])
		if idx < 0 {
			// The shape regexp already restricts the alphabet; anything
			// unrecognized decodes as zero.
			idx = 0
		}
		value = value*32 + uint64(idx)
	}
	return 98 - ((value * 100) % 97)
}

// rorURI renders the resolver URL, which is also the ROR's stable form.
func rorURI(code string) string {
	return "https://ror.org/" + code
}
