// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package dms

import (
	"fmt"
	"runtime"
	"sync"
)

// Row is one table row: a mapping from column name to raw text value.
type Row map[string]string

// Conversion is one successfully converted row. The original texts travel
// with the decimal values so the caller can render both side by side.
type Conversion struct {
	OriginalLat string  `json:"original_lat"`
	OriginalLon string  `json:"original_lng"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lng"`
}

// RowError reports a row whose latitude or longitude failed to parse.
type RowError struct {
	Row         int    `json:"row"` // 1-based position in the input
	OriginalLat string `json:"original_lat"`
	OriginalLon string `json:"original_lng"`
	Reason      error  `json:"-"`
}

func (e *RowError) Error() string {
	return fmt.Sprintf(
		"row %d: could not process (%s, %s): %v",
		e.Row, e.OriginalLat, e.OriginalLon, e.Reason,
	)
}

func (e *RowError) Unwrap() error {
	return e.Reason
}

// ConvertRow converts one row; it succeeds only when both fields parse.
// nr identifies the row in failure reports.
func ConvertRow(nr int, latText, lonText string) (Conversion, *RowError) {
	lat, latErr := ParseCoordinate(latText)
	lon, lonErr := ParseCoordinate(lonText)

	err := latErr
	if err == nil {
		err = lonErr
	}

	if err != nil {
		return Conversion{}, &RowError{
			Row:         nr,
			OriginalLat: latText,
			OriginalLon: lonText,
			Reason:      err,
		}
	}

	return Conversion{
		OriginalLat: latText,
		OriginalLon: lonText,
		Lat:         lat,
		Lon:         lon,
	}, nil
}

// ConvertRows converts the latField and lonField columns of every row. A
// failing row is recorded once and never stops the batch; both result
// slices preserve the input order.
func ConvertRows(rows []Row, latField, lonField string) ([]Conversion, []*RowError) {
	conversions := make([]Conversion, 0, len(rows))

	var failures []*RowError

	for i, row := range rows {
		c, rowErr := ConvertRow(i+1, row[latField], row[lonField])
		if rowErr != nil {
			failures = append(failures, rowErr)

			continue
		}

		conversions = append(conversions, c)
	}

	return conversions, failures
}

// ConvertRowsParallel behaves exactly like ConvertRows but fans the rows out
// across at most maxProcs goroutines; zero means one per CPU. Each row is an
// independent pure computation, so the only extra work is collapsing the
// results back to input order, which downstream consumers rely on for the
// positional row identifiers.
func ConvertRowsParallel(rows []Row, latField, lonField string, maxProcs int) ([]Conversion, []*RowError) {
	if maxProcs <= 0 {
		maxProcs = runtime.NumCPU()
	}

	type outcome struct {
		conversion Conversion
		failure    *RowError
	}

	outcomes := make([]outcome, len(rows))
	semaphore := make(chan struct{}, maxProcs)

	var wg sync.WaitGroup

	for i, row := range rows {
		wg.Add(1)

		go func(i int, row Row) {
			defer wg.Done()
			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			c, rowErr := ConvertRow(i+1, row[latField], row[lonField])
			outcomes[i] = outcome{conversion: c, failure: rowErr}
		}(i, row)
	}

	wg.Wait()

	conversions := make([]Conversion, 0, len(rows))

	var failures []*RowError

	for _, o := range outcomes {
		if o.failure != nil {
			failures = append(failures, o.failure)

			continue
		}

		conversions = append(conversions, o.conversion)
	}

	return conversions, failures
}
