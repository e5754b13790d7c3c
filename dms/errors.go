// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package dms

import (
	"errors"
	"fmt"
)

// ErrNoComponents is returned when a string holds nothing that looks like a
// coordinate.
var ErrNoComponents = errors.New("no coordinate components found")

// ParseError reports a coordinate string that could not be converted. It
// keeps the offending input so callers can surface it to the user.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v in %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
