// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"

	"github.com/uber/h3-go/v4"
)

// H3Resolutions is the resolution range covered by Cells, coarse country
// scale down to city-block scale.
const H3Resolutions = 8

// Cells returns the H3 cell index of p at resolutions 1 through
// H3Resolutions, so converted points can be aggregated at several zoom
// levels without recomputing indexes per query.
func Cells(p Point) ([H3Resolutions]uint64, error) {
	var cells [H3Resolutions]uint64

	latLng := h3.NewLatLng(p.Lat, p.Lng)

	for res := 1; res <= H3Resolutions; res++ {
		cell, err := h3.LatLngToCell(latLng, res)
		if err != nil {
			return cells, fmt.Errorf("converting to h3 cell at res %d: %w", res, err)
		}

		cells[res-1] = uint64(cell)
	}

	return cells, nil
}
