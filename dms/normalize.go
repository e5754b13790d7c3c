// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

// Package dms converts geographic coordinate text written in
// Degrees-Minutes-Seconds notation into signed decimal degrees.
package dms

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field notes, GPS exports and scanned documents mix typographic marks
// freely: primes instead of quotes, curly apostrophes, backticks. They all
// mean the same minute/second separators, so we fold them to plain ASCII.
var markFolder = runes.Map(func(r rune) rune {
	switch r {
	case '′', '’', '‘', '`', '´':
		return '\''
	case '″', '“', '”', '„':
		return '"'
	}

	return r
})

// Normalize canonicalizes raw coordinate text: it trims the input, folds
// Unicode prime and apostrophe variants to ASCII ' and ", applies NFKC
// compatibility normalization (fullwidth digits and friends), and collapses
// whitespace runs to a single space. It never fails and is idempotent.
//
// The mark folding runs before NFKC on purpose: NFKC decomposes a double
// prime into two single primes, which would turn seconds into minutes.
func Normalize(s string) string {
	s, _, _ = transform.String(
		transform.Chain(markFolder, norm.NFKC),
		strings.TrimSpace(s),
	)

	return strings.Join(strings.Fields(s), " ")
}
