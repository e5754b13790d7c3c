// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package dms

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRowsIsolation(t *testing.T) {
	rows := []Row{
		{"Latitude": "40 44 55 N", "Longitude": "73 59 11 W"},
		{"Latitude": "garbage", "Longitude": "82 18 45 W"},
		{"Latitude": "35 45 30 S", "Longitude": "82.3"},
	}

	conversions, failures := ConvertRows(rows, "Latitude", "Longitude")

	require.Len(t, conversions, 2)
	require.Len(t, failures, 1)

	assert.InDelta(t, 40.748611, conversions[0].Lat, 1e-9)
	assert.InDelta(t, -73.986389, conversions[0].Lon, 1e-9)
	assert.Equal(t, "40 44 55 N", conversions[0].OriginalLat)

	assert.InDelta(t, -35.758333, conversions[1].Lat, 1e-9)
	assert.InDelta(t, 82.3, conversions[1].Lon, 1e-9)

	failure := failures[0]
	assert.Equal(t, 2, failure.Row)
	assert.Equal(t, "garbage", failure.OriginalLat)
	assert.Equal(t, "82 18 45 W", failure.OriginalLon)
	assert.ErrorIs(t, failure, ErrNoComponents)
	assert.Contains(t, failure.Error(), "row 2")
}

func TestConvertRowsBothFieldsMustParse(t *testing.T) {
	rows := []Row{
		{"lat": "40 N", "lng": "junk"},
		{"lat": "junk", "lng": "junk"},
	}

	conversions, failures := ConvertRows(rows, "lat", "lng")
	assert.Empty(t, conversions)
	require.Len(t, failures, 2)
	// one error per row, even when both fields fail
	assert.Equal(t, 1, failures[0].Row)
	assert.Equal(t, 2, failures[1].Row)
}

func TestConvertRowsMissingColumn(t *testing.T) {
	rows := []Row{
		{"Latitude": "40 N", "Longitude": "82 W"},
	}

	conversions, failures := ConvertRows(rows, "lat", "lon")
	assert.Empty(t, conversions)
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], ErrNoComponents)
}

func TestConvertRowsEmpty(t *testing.T) {
	conversions, failures := ConvertRows(nil, "lat", "lon")
	assert.Empty(t, conversions)
	assert.Empty(t, failures)
}

func TestConvertRowsParallelMatchesSequential(t *testing.T) {
	var rows []Row

	for i := range 200 {
		row := Row{
			"lat": fmt.Sprintf("35 %d 30 N", i%60),
			"lng": fmt.Sprintf("82 %d 45 W", i%60),
		}
		if i%7 == 0 {
			row["lat"] = "not a coordinate"
		}

		rows = append(rows, row)
	}

	wantConversions, wantFailures := ConvertRows(rows, "lat", "lng")

	for _, maxProcs := range []int{0, 1, 4, 32} {
		gotConversions, gotFailures := ConvertRowsParallel(rows, "lat", "lng", maxProcs)

		if diff := cmp.Diff(wantConversions, gotConversions); diff != "" {
			t.Errorf("maxProcs=%d conversions mismatch (-want +got):\n%s", maxProcs, diff)
		}

		require.Len(t, gotFailures, len(wantFailures))

		for i, failure := range gotFailures {
			assert.Equal(t, wantFailures[i].Row, failure.Row)
			assert.Equal(t, wantFailures[i].OriginalLat, failure.OriginalLat)
		}
	}
}
