// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package dms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims", "  40 44 N  ", "40 44 N"},
		{"collapses whitespace", "40\t 44 \n 55  N", "40 44 55 N"},
		{"prime to apostrophe", "35°45′30″N", `35°45'30"N`},
		{"curly apostrophe", "35°45’30”N", `35°45'30"N`},
		{"backtick", "35°45`30N", "35°45'30N"},
		{"fullwidth digits", "４０ Ｎ", "40 N"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  40 44 55 N ",
		"35°45′30″N 82°18′45″W",
		"35 45 30 N, 82 18 45 W",
		"-82.3",
		"",
		"not a coordinate",
	}

	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize is not idempotent for %q", s)
	}
}
