// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/spf13/cobra"

	"github.com/nprieto/coordconv/server"
	"github.com/nprieto/coordconv/store"
)

var serveOptions struct {
	Addr   string
	DbPath string
}

func init() {
	serveCmd.Flags().StringVar(&serveOptions.Addr, "addr", "localhost:8080",
		"address to listen on")
	serveCmd.Flags().StringVar(&serveOptions.DbPath, "db", "",
		"persist conversion batches to a DuckDB database at this path")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversion HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var repo store.ConversionRepository

		if serveOptions.DbPath != "" {
			db, err := sql.Open("duckdb", serveOptions.DbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			repo = store.NewSQLConversionRepository(db)
			if err := repo.CreateSchema(); err != nil {
				return err
			}
		}

		log.Printf("Listening on %s", serveOptions.Addr)

		return server.NewServer(repo).Run(serveOptions.Addr)
	},
}
