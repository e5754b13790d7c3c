// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

// Package store persists conversion batches in DuckDB so converted datasets
// can be queried and aggregated later.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/nprieto/coordconv/dms"
	"github.com/nprieto/coordconv/spatial"
)

// ConversionRepository defines the interface for database operations.
type ConversionRepository interface {
	// CreateSchema creates the database schema.
	CreateSchema() error
	// SaveBatch stores one conversion run: the successes, the per-row
	// failures, and the source they came from.
	SaveBatch(source string, conversions []dms.Conversion, failures []*dms.RowError) error
	// CountConversions returns the number of stored conversions.
	CountConversions() (int, error)
}

type sqlConversionRepository struct {
	db *sql.DB
}

// NewSQLConversionRepository creates a DuckDB-backed repository.
func NewSQLConversionRepository(db *sql.DB) ConversionRepository {
	return &sqlConversionRepository{db: db}
}

func (r *sqlConversionRepository) CreateSchema() error {
	statements := []string{
		`CREATE SEQUENCE IF NOT EXISTS conversions_id_seq`,
		`CREATE TABLE IF NOT EXISTS conversions (
			id BIGINT PRIMARY KEY DEFAULT nextval('conversions_id_seq'),
			source VARCHAR NOT NULL,
			row_nr INTEGER NOT NULL,
			original_lat VARCHAR NOT NULL,
			original_lng VARCHAR NOT NULL,
			lat DOUBLE NOT NULL,
			lng DOUBLE NOT NULL,
			h3_res1 UBIGINT,
			h3_res2 UBIGINT,
			h3_res3 UBIGINT,
			h3_res4 UBIGINT,
			h3_res5 UBIGINT,
			h3_res6 UBIGINT,
			h3_res7 UBIGINT,
			h3_res8 UBIGINT,
			created_at TIMESTAMP DEFAULT current_timestamp
		)`,
		`CREATE TABLE IF NOT EXISTS conversion_errors (
			source VARCHAR NOT NULL,
			row_nr INTEGER NOT NULL,
			original_lat VARCHAR,
			original_lng VARCHAR,
			reason VARCHAR NOT NULL,
			created_at TIMESTAMP DEFAULT current_timestamp
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	return nil
}

func (r *sqlConversionRepository) SaveBatch(
	source string,
	conversions []dms.Conversion,
	failures []*dms.RowError,
) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rolling back: %w", rbErr))
			}
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO conversions (
			source, row_nr, original_lat, original_lng, lat, lng,
			h3_res1, h3_res2, h3_res3, h3_res4, h3_res5, h3_res6, h3_res7, h3_res8
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}

	defer stmt.Close()

	for i, c := range conversions {
		cells, cellsErr := spatial.Cells(spatial.Point{Lat: c.Lat, Lng: c.Lon})
		if cellsErr != nil {
			// out-of-range values can't be indexed; keep the row, zero the cells
			log.Printf("h3 indexing failed for (%f, %f): %v", c.Lat, c.Lon, cellsErr)

			cells = [spatial.H3Resolutions]uint64{}
		}

		_, err = stmt.Exec(
			source, i+1, c.OriginalLat, c.OriginalLon, c.Lat, c.Lon,
			cells[0], cells[1], cells[2], cells[3], cells[4], cells[5], cells[6], cells[7],
		)
		if err != nil {
			return fmt.Errorf("inserting conversion %d: %w", i+1, err)
		}
	}

	for _, failure := range failures {
		_, err = tx.Exec(
			`INSERT INTO conversion_errors (source, row_nr, original_lat, original_lng, reason)
			 VALUES (?, ?, ?, ?, ?)`,
			source, failure.Row, failure.OriginalLat, failure.OriginalLon, failure.Reason.Error(),
		)
		if err != nil {
			return fmt.Errorf("inserting error for row %d: %w", failure.Row, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}

	return nil
}

func (r *sqlConversionRepository) CountConversions() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT count(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting conversions: %w", err)
	}

	return n, nil
}
