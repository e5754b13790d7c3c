// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nprieto/coordconv/dms"
	"github.com/nprieto/coordconv/store"
	"github.com/nprieto/coordconv/tabular"
)

var convertOptions struct {
	LatColumn string
	LonColumn string
	Sheet     string
	Out       string
	DbPath    string
	MaxProcs  int
}

func init() {
	convertCmd.Flags().StringVar(&convertOptions.LatColumn, "lat", "",
		"latitude column name (defaults to a Latitude/Lat header)")
	convertCmd.Flags().StringVar(&convertOptions.LonColumn, "lon", "",
		"longitude column name (defaults to a Longitude/Lon/Lng header)")
	convertCmd.Flags().StringVar(&convertOptions.Sheet, "sheet", "",
		"sheet name for xlsx input (defaults to the first sheet)")
	convertCmd.Flags().StringVarP(&convertOptions.Out, "out", "o", "",
		"output file, .csv or .xlsx (defaults to csv on stdout)")
	convertCmd.Flags().StringVar(&convertOptions.DbPath, "db", "",
		"also persist the batch to a DuckDB database at this path")
	convertCmd.Flags().IntVar(&convertOptions.MaxProcs, "max-procs", 1,
		"maximum concurrent conversions, 0 means one per CPU")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Batch convert a csv, xlsx, txt or html file",
	Long: `
convert reads a tabular file, converts its coordinate columns to decimal
degrees and writes the result as csv or xlsx. Rows that fail to parse are
reported on stderr and never stop the batch.

Plain text input is scanned line by line for coordinate pairs instead of
being read as a table.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		input := args[0]

		table, err := readTable(input)
		if err != nil {
			return err
		}

		latField, err := tabular.ResolveColumn(table, convertOptions.LatColumn,
			tabular.LatColumn, "Lat")
		if err != nil {
			return err
		}

		lonField, err := tabular.ResolveColumn(table, convertOptions.LonColumn,
			tabular.LonColumn, "Lon", "Lng")
		if err != nil {
			return err
		}

		conversions, failures := convertTable(table, latField, lonField)

		for _, failure := range failures {
			log.Print(failure)
		}

		if convertOptions.DbPath != "" {
			if err := persistBatch(filepath.Base(input), conversions, failures); err != nil {
				return err
			}
		}

		if err := writeResult(conversions); err != nil {
			return err
		}

		log.Printf("Converted %d of %d rows, %d failures.",
			len(conversions), len(table.Rows), len(failures))

		if len(failures) > 0 {
			return fmt.Errorf("%d rows could not be processed", len(failures))
		}

		return nil
	},
}

func readTable(path string) (*tabular.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return tabular.ReadXLSX(path, convertOptions.Sheet)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".csv":
		return tabular.ReadCSV(f)
	case ".html", ".htm":
		return tabular.ReadHTML(f)
	default:
		return tabular.ReadLines(f)
	}
}

func convertTable(table *tabular.Table, latField, lonField string) ([]dms.Conversion, []*dms.RowError) {
	if convertOptions.MaxProcs != 1 {
		return dms.ConvertRowsParallel(table.Rows, latField, lonField, convertOptions.MaxProcs)
	}

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(table.Rows),
			progressbar.OptionSetDescription("Converting"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	conversions := make([]dms.Conversion, 0, len(table.Rows))

	var failures []*dms.RowError

	for i, row := range table.Rows {
		c, rowErr := dms.ConvertRow(i+1, row[latField], row[lonField])
		if rowErr != nil {
			failures = append(failures, rowErr)
		} else {
			conversions = append(conversions, c)
		}

		if bar != nil {
			if err := bar.Add(1); err != nil {
				log.Printf("updating progress bar: %v", err)
			}
		}
	}

	return conversions, failures
}

func persistBatch(source string, conversions []dms.Conversion, failures []*dms.RowError) error {
	db, err := sql.Open("duckdb", convertOptions.DbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	repo := store.NewSQLConversionRepository(db)
	if err := repo.CreateSchema(); err != nil {
		return err
	}

	return repo.SaveBatch(source, conversions, failures)
}

func writeResult(conversions []dms.Conversion) error {
	if convertOptions.Out == "" {
		return tabular.WriteCSV(os.Stdout, conversions)
	}

	if strings.ToLower(filepath.Ext(convertOptions.Out)) == ".xlsx" {
		return tabular.WriteXLSX(convertOptions.Out, conversions)
	}

	f, err := os.Create(convertOptions.Out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", convertOptions.Out, err)
	}
	defer f.Close()

	return tabular.WriteCSV(f, conversions)
}
