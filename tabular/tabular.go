// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

// Package tabular reads and writes tables of named text columns: CSV and
// XLSX files, free-form text with one coordinate pair per line, and HTML
// documents carrying a data table. It only moves text around; all
// coordinate interpretation happens in package dms.
package tabular

import (
	"fmt"
	"strings"

	"github.com/nprieto/coordconv/dms"
)

// Table is an ordered collection of rows with named columns.
type Table struct {
	Headers []string
	Rows    []dms.Row
}

// Column returns the header whose name matches case-insensitively.
func (t *Table) Column(name string) (string, bool) {
	for _, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return h, true
		}
	}

	return "", false
}

// ResolveColumn maps a user-requested column name onto the table. An empty
// request falls back to the first candidate present, so files that already
// carry a "Latitude"/"Longitude" style header need no flags at all.
func ResolveColumn(t *Table, requested string, candidates ...string) (string, error) {
	if requested != "" {
		if h, ok := t.Column(requested); ok {
			return h, nil
		}

		return "", fmt.Errorf("column %q not found, available: %s", requested, strings.Join(t.Headers, ", "))
	}

	for _, candidate := range candidates {
		if h, ok := t.Column(candidate); ok {
			return h, nil
		}
	}

	return "", fmt.Errorf(
		"could not detect a %s column, available: %s",
		strings.Join(candidates, "/"),
		strings.Join(t.Headers, ", "),
	)
}

// Builds the row maps from one record, tolerating records shorter or longer
// than the header.
func rowFromRecord(headers, record []string) dms.Row {
	row := make(dms.Row, len(headers))

	for i, h := range headers {
		if i < len(record) {
			row[h] = strings.TrimSpace(record[i])
		}
	}

	return row
}
