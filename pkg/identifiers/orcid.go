// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package identifiers

import (
	"regexp"
	"strconv"
)

// An ORCID iD identifies an individual researcher. The canonical form is four
// hyphen-separated groups of four characters, where the final character is a
// MOD 11-2 check digit rendered as "X" when its value is ten.
// See https://support.orcid.org/hc/en-us/articles/360006897674

const orcidHost = "orcid.org"

var orcidRE = regexp.MustCompile(`^(\d{4})-(\d{4})-(\d{4})-(\d{3})([0-9X])$`)

// parseORCID recognizes ORCID resolver URLs. The host must be orcid.org and
// the path must carry a checksum-valid iD. A syntactically ORCID-shaped path
// with a bad check digit is declined, not rejected: the dispatcher then tags
// the input as a generic URI.
func parseORCID(in parseInput) (Identifier, bool) {
	host, ok := in.hostLower()
	if !ok || host != orcidHost {
		return Identifier{}, false
	}
	path, ok := in.pathNoSlashUpper()
	if !ok || !validORCID(path) {
		return Identifier{}, false
	}
	return Identifier{kind: KindORCID, value: path}, true
}

func validORCID(id string) bool {
	m := orcidRE.FindStringSubmatch(id)
	if m == nil {
		return false
	}
	// Groups 1-4 are the base digits; group 5 is the supplied check digit.
	want, ok := orcidCheckDigit(m[1] + m[2] + m[3] + m[4])
	return ok && want == m[5]
}

// orcidCheckDigit computes the MOD 11-2 check character over the 15 base
// digits.
func orcidCheckDigit(digits string) (string, bool) {
	total := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return "", false
		}
		total = (total + int(c-'0')) * 2
	}
	result := (12 - total%11) % 11
	if result == 10 {
		return "X", true
	}
	return strconv.Itoa(result), true
}

// orcidURI renders the resolver URL, which is also the ORCID's stable form.
func orcidURI(id string) string {
	return "https://orcid.org/" + id
}
