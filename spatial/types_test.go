// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"testing"
)

func TestPointString(t *testing.T) {
	p := Point{Lat: -34.9, Lng: -56.2}
	if got, want := p.String(), "POINT(-56.200000 -34.900000)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPointScan(t *testing.T) {
	var p Point

	if err := p.Scan([]byte("POINT (-56.2 -34.9)")); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if p.Lat != -34.9 || p.Lng != -56.2 {
		t.Errorf("Scan() = %+v, want lat=-34.9 lng=-56.2", p)
	}

	if err := p.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}

	if p.Lat != 0 || p.Lng != 0 {
		t.Errorf("Scan(nil) should zero the point, got %+v", p)
	}

	if err := p.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
}

func TestHaversineDistance(t *testing.T) {
	// Plaza Independencia to Punta del Este, roughly 115 km
	montevideo := Point{Lat: -34.9066, Lng: -56.1996}
	puntaDelEste := Point{Lat: -34.9608, Lng: -54.9435}

	d := montevideo.HaversineDistance(&puntaDelEste)
	if d < 100e3 || d > 130e3 {
		t.Errorf("HaversineDistance() = %f meters, expected between 100 and 130 km", d)
	}

	if self := montevideo.HaversineDistance(&montevideo); self != 0 {
		t.Errorf("distance to self = %f, want 0", self)
	}
}

func TestCells(t *testing.T) {
	p := Point{Lat: -34.9066, Lng: -56.1996}

	cells, err := Cells(p)
	if err != nil {
		t.Fatalf("Cells() error = %v", err)
	}

	seen := make(map[uint64]bool)

	for i, cell := range cells {
		if cell == 0 {
			t.Errorf("resolution %d: cell is zero", i+1)
		}

		if seen[cell] {
			t.Errorf("resolution %d: duplicate cell %d", i+1, cell)
		}

		seen[cell] = true
	}
}
