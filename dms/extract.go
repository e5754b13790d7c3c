// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package dms

import (
	"regexp"
	"strings"
)

var (
	// A self-contained coordinate token: digits, then anything that is not a
	// hemisphere letter, closed by the hemisphere letter itself. Matches
	// both `35°45'30"N` and `35 45 30 N`.
	pairTokenPattern = regexp.MustCompile(`(?i)\d+[^NSEW]*[NSEW]`)
	pairSplitPattern = regexp.MustCompile(`[,;/]`)
)

// ExtractPair locates a latitude/longitude pair inside one line of text.
//
// The primary strategy looks for hemisphere-terminated tokens; the first two
// found, scanning left to right, are returned as the latitude and longitude
// candidates and anything after them is discarded. When fewer than two such
// tokens exist, the line is split on comma, semicolon or slash and accepted
// only if exactly two non-empty pieces remain, which covers plain decimal
// pairs like "35.758, -82.3".
//
// ok is false when no pair was found. The pair is positional: no check is
// made that the first token is actually tagged N/S, callers that care must
// look at the hemisphere letters themselves.
func ExtractPair(line string) (lat, lon string, ok bool) {
	s := Normalize(line)

	if tokens := pairTokenPattern.FindAllString(s, 2); len(tokens) == 2 {
		return strings.TrimSpace(tokens[0]), strings.TrimSpace(tokens[1]), true
	}

	var parts []string

	for _, p := range pairSplitPattern.Split(s, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) == 2 {
		return parts[0], parts[1], true
	}

	return "", "", false
}
