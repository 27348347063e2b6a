// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package identifiers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseROR(t *testing.T) {
	tests := []struct {
		input string
		want  Identifier
	}{
		{"https://ror.org/02mhbdp94", Identifier{kind: KindROR, value: "02mhbdp94"}},
		{"https://ror.org/02twcfp32", Identifier{kind: KindROR, value: "02twcfp32"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, Parse(tc.input)); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

// ROR codes are case-sensitive: an upper-cased code is not normalized, it
// falls through to the URI kind.
func TestParseRORCaseSensitive(t *testing.T) {
	inputs := []string{
		"https://ror.org/02Mhbdp94",
		"https://ror.org/02twcfP32",
	}
	for _, input := range inputs {
		want := Identifier{kind: KindURI, value: input}
		if diff := cmp.Diff(want, Parse(input)); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", input, diff)
		}
	}
}

// Mutating either the identifier or its checksum digits invalidates the code.
func TestParseRORChecksum(t *testing.T) {
	inputs := []string{
		"https://ror.org/03mhbdp94", // digit changed in the identifier
		"https://ror.org/02mhbdp99", // checksum changed
		"https://ror.org/02tw3fp32", // digit changed in the identifier
		"https://ror.org/02twcfp39", // checksum changed
	}
	for _, input := range inputs {
		want := Identifier{kind: KindURI, value: input}
		if diff := cmp.Diff(want, Parse(input)); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestRORURI(t *testing.T) {
	uri, ok := Parse("https://ror.org/02mhbdp94").URI()
	if !ok || uri != "https://ror.org/02mhbdp94" {
		t.Errorf("URI() = %q, %v; want the resolver URL back", uri, ok)
	}
}
