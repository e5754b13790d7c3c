// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nprieto/coordconv/dms"
)

// Column names used by the free-text reader.
const (
	LatColumn = "Latitude"
	LonColumn = "Longitude"
)

// ReadLines scans free-form text, one candidate coordinate pair per line.
// Lines where no pair can be located contribute nothing: pasted input
// routinely contains headings, prose and blank lines, and those are not
// errors.
func ReadLines(r io.Reader) (*Table, error) {
	t := &Table{Headers: []string{LatColumn, LonColumn}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lat, lon, ok := dms.ExtractPair(scanner.Text())
		if !ok {
			continue
		}

		t.Rows = append(t.Rows, dms.Row{LatColumn: lat, LonColumn: lon})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}

	return t, nil
}
