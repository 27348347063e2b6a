// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package identifiers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseISBN10(t *testing.T) {
	// Ten-digit ISBNs are converted to thirteen, whatever the hyphenation.
	inputs := []string{
		"0306406152",
		"0-306406152",
		"03-06406152",
		"030-6406152",
		"0306-406152",
		"0-3064-06152",
		"03-0640-6152",
		"030-6406-152",
		"0306-4061-52",
		"03064-0615-2",
		"0 306 40615 2",
		"urn:isbn:0306406152",
		"URN:ISBN:0306406152",
	}
	want := Identifier{kind: KindISBN, value: "9780306406157"}
	for _, input := range inputs {
		if diff := cmp.Diff(want, Parse(input)); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestParseISBN13(t *testing.T) {
	inputs := []string{
		"9780306406157",
		"978-0306406157",
		"978-0306-406157",
		"97803-0640-6157",
		"urn:isbn:9780306406157",
	}
	want := Identifier{kind: KindISBN, value: "9780306406157"}
	for _, input := range inputs {
		if diff := cmp.Diff(want, Parse(input)); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", input, diff)
		}
	}

	others := []string{
		"9781566199094",
		"9780123456472",
		"9781413304541",
	}
	for _, input := range others {
		want := Identifier{kind: KindISBN, value: input}
		if diff := cmp.Diff(want, Parse(input)); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", input, diff)
		}
	}
}

// The ten- and thirteen-digit forms of one logical ISBN compare equal once
// parsed.
func TestISBNEquivalence(t *testing.T) {
	if a, b := Parse("0306406152"), Parse("9780306406157"); !a.Equal(b) {
		t.Errorf("Parse(%q) = %v and Parse(%q) = %v should be equal", "0306406152", a, "9780306406157", b)
	}
}

// A failed checksum is a decline, not an error: the input falls through to a
// looser kind and is never tagged ISBN.
func TestParseISBNBadChecksum(t *testing.T) {
	inputs := []string{
		"0306406150", // last digit altered
		"0306406159",
		"9780306406150", // last digit altered
		"9781413304549",
	}
	for _, input := range inputs {
		got := Parse(input)
		if got.Kind() == KindISBN {
			t.Errorf("Parse(%q) = %v, want anything but an ISBN", input, got)
		}
		if got.Value() != input {
			t.Errorf("Parse(%q) fell through to %v; want the input preserved verbatim", input, got)
		}
	}
}

func TestParseISBNCharset(t *testing.T) {
	// Any character outside digits, X, spaces, and hyphens disqualifies the
	// input entirely.
	inputs := []string{
		"97803.06406157",
		"0306_406152",
		"isbn 0306406152",
	}
	for _, input := range inputs {
		if got := Parse(input); got.Kind() == KindISBN {
			t.Errorf("Parse(%q) = %v, want anything but an ISBN", input, got)
		}
	}
}

// ISBN deliberately has no URI form; the stable string is the bare digits.
func TestISBNStableForms(t *testing.T) {
	id := Parse("0306406152")
	if uri, ok := id.URI(); ok {
		t.Errorf("ISBN URI() = %q, want absent", uri)
	}
	if got := id.StableString(); got != "9780306406157" {
		t.Errorf("ISBN StableString() = %q, want %q", got, "9780306406157")
	}
}
