// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package identifiers

// parseURI accepts anything the preprocessor could parse as an absolute URI.
// It is greedy and makes no attempt to avoid other URI-shaped kinds (DOI,
// ORCID, ROR); it relies on running after them. Input without a URI view
// falls through to the opaque-string kind.
func parseURI(in parseInput) (Identifier, bool) {
	if in.uri == nil {
		return Identifier{}, false
	}
	return Identifier{kind: KindURI, value: in.uri.String()}, true
}
