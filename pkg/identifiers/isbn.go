// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package identifiers

import "strings"

// An ISBN identifies a book and is written in a 10- or 13-digit form, each
// with its own check-digit algorithm. Both forms are recognized, optionally
// hyphenated or spaced and optionally carrying a "urn:isbn:" label, but the
// canonical form is always the 13-digit digit string: it is the superset of
// what can be recorded, and the 10-to-13 conversion is lossless. No 13-to-10
// reduction is provided.

// Weights for the positions of a 10-digit ISBN.
var isbn10Weights = [...]int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

// Weights for the positions of a 13-digit ISBN.
var isbn13Weights = [...]int{1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1}

// parseISBN recognizes 10- and 13-digit ISBNs. A digit string that fails both
// checksums is declined, not an error; the dispatcher moves on to the next
// kind.
func parseISBN(in parseInput) (Identifier, bool) {
	s := in.raw
	if len(s) >= 9 && strings.EqualFold(s[:9], "urn:isbn:") {
		s = s[9:]
	}
	digits, ok := isbnDigits(s)
	if !ok {
		return Identifier{}, false
	}
	switch {
	case validISBN10(digits):
		return Identifier{kind: KindISBN, value: isbnString(isbn10To13(digits))}, true
	case validISBN13(digits):
		return Identifier{kind: KindISBN, value: isbnString(digits)}, true
	default:
		return Identifier{}, false
	}
}

// isbnDigits extracts digit values, dropping hyphen and space separators.
// "X", worth ten, is only arithmetically valid as a 10-digit check digit. Any
// character outside [0-9Xx -] disqualifies the whole input.
func isbnDigits(s string) ([]int, bool) {
	digits := make([]int, 0, 13)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits = append(digits, int(c-'0'))
		case c == 'X' || c == 'x':
			digits = append(digits, 10)
		case c == ' ' || c == '-':
		default:
			return nil, false
		}
	}
	return digits, true
}

func isbnString(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		if d == 10 {
			b[i] = 'X'
		} else {
			b[i] = byte('0' + d)
		}
	}
	return string(b)
}

// isbn10Check computes the check value over the first nine digits.
func isbn10Check(digits []int) int {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * isbn10Weights[i]
	}
	return 11 - (sum % 11)
}

func validISBN10(digits []int) bool {
	return len(digits) == 10 && isbn10Check(digits) == digits[9]
}

// isbn13Check computes the check value over the first twelve digits.
func isbn13Check(digits []int) int {
	sum := 0
	for i := 0; i < 12; i++ {
		sum += digits[i] * isbn13Weights[i]
	}
	return 10 - (sum % 10)
}

func validISBN13(digits []int) bool {
	return len(digits) == 13 && isbn13Check(digits) == digits[12]
}

// isbn10To13 converts by prepending the 978 bookland prefix to the first nine
// digits and recomputing the check digit.
func isbn10To13(digits []int) []int {
	out := make([]int, 0, 13)
	out = append(out, 9, 7, 8)
	out = append(out, digits[:9]...)
	return append(out, isbn13Check(out))
}
