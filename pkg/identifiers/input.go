// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package identifiers

import (
	"net/url"
	"strings"
)

// uriBytes are the bytes RFC 3986 permits to appear anywhere in a URI:
// unreserved, gen-delims, sub-delims, and the percent sign.
var uriBytes = func() (t [256]bool) {
	const allowed = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
		"0123456789-._~" + ":/?#[]@" + "!$&'()*+,;=" + "%"
	for i := 0; i < len(allowed); i++ {
		t[allowed[i]] = true
	}
	return
}()

// parseInput is a read-only derived view of one raw input string, built once
// per parse attempt and shared across all recognizers.
type parseInput struct {
	raw string

	// uri is the generic URI view, nil when the input is not an absolute URI
	// under RFC 3986 grammar. A missing view is not an error; recognizers
	// that need one simply decline.
	uri *url.URL
}

func newParseInput(raw string) parseInput {
	in := parseInput{raw: raw}
	in.uri = parseAbsoluteURI(raw)
	return in
}

// parseAbsoluteURI parses raw as an absolute URI, or returns nil. net/url
// accepts unencoded non-ASCII and other characters RFC 3986 forbids, so the
// grammar's character set is enforced up front.
func parseAbsoluteURI(raw string) *url.URL {
	for i := 0; i < len(raw); i++ {
		if !uriBytes[raw[i]] {
			return nil
		}
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// hostLower returns the URI's host, lower-cased, without any port.
func (in parseInput) hostLower() (string, bool) {
	if in.uri == nil {
		return "", false
	}
	return strings.ToLower(in.uri.Hostname()), true
}

// pathNoSlash returns the URI's path, case and encoding preserved, with one
// leading slash stripped if present.
func (in parseInput) pathNoSlash() (string, bool) {
	if in.uri == nil {
		return "", false
	}
	return strings.TrimPrefix(in.uri.EscapedPath(), "/"), true
}

// pathNoSlashUpper is pathNoSlash upper-cased, for the case-insensitive kinds.
func (in parseInput) pathNoSlashUpper() (string, bool) {
	path, ok := in.pathNoSlash()
	if !ok {
		return "", false
	}
	return strings.ToUpper(path), true
}
