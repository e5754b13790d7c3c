// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package dms

import (
	"fmt"
	"strconv"
)

// Axis selects which hemisphere letters Format uses.
type Axis int

const (
	// Latitude renders N/S letters.
	Latitude Axis = iota
	// Longitude renders E/W letters.
	Longitude
)

// resolution of the seconds field when formatting: 1/10000 of an arcsecond,
// fine enough that Format/ParseCoordinate round-trips within 1e-6 degrees.
const secondsResolution = 10000

// Format renders a decimal degree value in D°M'S"H notation, e.g.
// `40°44'55.38"N`. The hemisphere letter carries the sign, so the numeric
// fields are always non-negative.
func Format(dd float64, axis Axis) string {
	var hemisphere byte

	switch {
	case axis == Latitude && dd < 0:
		hemisphere = 'S'
	case axis == Latitude:
		hemisphere = 'N'
	case dd < 0:
		hemisphere = 'W'
	default:
		hemisphere = 'E'
	}

	if dd < 0 {
		dd = -dd
	}

	// Work in integer units to keep 60.0 seconds from ever appearing.
	units := int64(dd*3600*secondsResolution + 0.5)
	deg := units / (3600 * secondsResolution)
	units -= deg * 3600 * secondsResolution
	minutes := units / (60 * secondsResolution)
	units -= minutes * 60 * secondsResolution
	seconds := float64(units) / secondsResolution

	return fmt.Sprintf(
		`%d°%d'%s"%c`,
		deg,
		minutes,
		strconv.FormatFloat(seconds, 'f', -1, 64),
		hemisphere,
	)
}
