// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nprieto/coordconv/dms"
)

// Header used by the conversion writers.
var conversionHeader = []string{
	"Original Latitude",
	"Original Longitude",
	"Decimal Latitude",
	"Decimal Longitude",
}

// ReadCSV loads a CSV document whose first record is the header row.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // coordinate exports are frequently ragged
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	if len(records) == 0 {
		return nil, errors.New("csv has no header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	t := &Table{
		Headers: headers,
		Rows:    make([]dms.Row, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		t.Rows = append(t.Rows, rowFromRecord(headers, record))
	}

	return t, nil
}

// WriteCSV renders converted rows with a fixed four-column header, decimal
// values formatted to 6 places.
func WriteCSV(w io.Writer, conversions []dms.Conversion) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(conversionHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, c := range conversions {
		record := []string{
			c.OriginalLat,
			c.OriginalLon,
			strconv.FormatFloat(c.Lat, 'f', 6, 64),
			strconv.FormatFloat(c.Lon, 'f', 6, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
