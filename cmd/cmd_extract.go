// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nprieto/coordconv/dms"
)

var extractConvert bool

func init() {
	extractCmd.Flags().BoolVar(&extractConvert, "convert", false,
		"also convert the extracted pair to decimal degrees")
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract coordinate pairs from free-form text on stdin",
	Long: `
extract reads lines from stdin and writes one tab-separated pair per line
that contains one. Lines without a recognizable pair are skipped.
`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		scanner := bufio.NewScanner(os.Stdin)

		nr := 0
		for scanner.Scan() {
			nr++

			lat, lon, ok := dms.ExtractPair(scanner.Text())
			if !ok {
				continue
			}

			if !extractConvert {
				fmt.Printf("%s\t%s\n", lat, lon)

				continue
			}

			c, rowErr := dms.ConvertRow(nr, lat, lon)
			if rowErr != nil {
				log.Print(rowErr)

				continue
			}

			fmt.Printf("%s\t%s\t%f\t%f\n", lat, lon, c.Lat, c.Lon)
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}

		return nil
	},
}
