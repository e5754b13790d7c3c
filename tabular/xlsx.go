// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nprieto/coordconv/dms"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads one sheet of a spreadsheet; an empty sheet name selects the
// first sheet. The first row is the header.
func ReadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	if len(records) == 0 {
		return nil, errors.New("sheet has no header row")
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

// WriteXLSX saves converted rows as a single-sheet spreadsheet.
func WriteXLSX(path string, conversions []dms.Conversion) error {
	f := excelize.NewFile()

	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(conversionHeader))
	for i, h := range conversionHeader {
		header[i] = h
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range conversions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}

		row := []interface{}{c.OriginalLat, c.OriginalLon, c.Lat, c.Lon}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving spreadsheet: %w", err)
	}

	return nil
}
