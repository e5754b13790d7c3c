// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package dms

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern     = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	hemispherePattern = regexp.MustCompile(`(?i)[NSEW]`)
)

// Components holds the fields extracted from one coordinate string.
// HasMinutes and HasSeconds distinguish an omitted field from an explicit
// zero; both cases currently convert identically, but the distinction is
// kept for callers that want to validate notation completeness.
type Components struct {
	Degrees    float64 // sign preserved as written
	Minutes    float64
	Seconds    float64
	HasMinutes bool
	HasSeconds bool
	Hemisphere byte // one of 'N', 'S', 'E', 'W'; 0 when absent
}

// Value computes the signed decimal degrees for the components. A southern
// or western hemisphere letter wins over a written minus sign: the letter is
// the explicit statement of intent, the sign is kept only for inputs that
// carry no letter at all.
func (c Components) Value() float64 {
	v := math.Abs(c.Degrees) + c.Minutes/60 + c.Seconds/3600

	switch c.Hemisphere {
	case 'S', 'W':
		return -v
	case 'N', 'E':
		return v
	}

	if math.Signbit(c.Degrees) {
		return -v
	}

	return v
}

// Splits a normalized coordinate string into numeric runs and the first
// hemisphere letter. A dash between numbers ("40-44-55N") is a separator,
// not a sign, so minutes and seconds are taken by magnitude.
func parseComponents(s string) (Components, bool) {
	nums := numberPattern.FindAllString(s, 3)
	if len(nums) == 0 {
		return Components{}, false
	}

	var c Components

	c.Degrees, _ = strconv.ParseFloat(nums[0], 64)

	if len(nums) > 1 {
		m, _ := strconv.ParseFloat(nums[1], 64)
		c.Minutes, c.HasMinutes = math.Abs(m), true
	}

	if len(nums) > 2 {
		sec, _ := strconv.ParseFloat(nums[2], 64)
		c.Seconds, c.HasSeconds = math.Abs(sec), true
	}

	if h := hemispherePattern.FindString(s); h != "" {
		c.Hemisphere = strings.ToUpper(h)[0]
	}

	return c, true
}

// ParseCoordinate converts one coordinate string to signed decimal degrees.
//
// Inputs that are already a plain decimal number (a comma accepted as the
// decimal separator) pass through unchanged, sign included. Everything else
// goes through tolerant component extraction: the first three numeric runs
// become degrees, minutes and seconds, missing fields default to zero, and
// the first N/S/E/W letter decides the sign. The result of the component
// path is rounded to 6 decimal places, about 0.11 m at the equator.
func ParseCoordinate(text string) (float64, error) {
	s := strings.ReplaceAll(Normalize(text), ",", ".")
	if s == "" {
		return 0, &ParseError{Input: text, Err: ErrNoComponents}
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v, nil
	}

	c, ok := parseComponents(s)
	if !ok {
		return 0, &ParseError{Input: text, Err: ErrNoComponents}
	}

	return round6(c.Value()), nil
}

// MustParse is a convenience for tests and fixtures; it panics on failure.
func MustParse(text string) float64 {
	v, err := ParseCoordinate(text)
	if err != nil {
		panic(fmt.Sprintf("dms: %v", err))
	}

	return v
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
