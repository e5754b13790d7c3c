// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/nprieto/coordconv/dms"
)

var parseAxis string

func init() {
	parseCmd.Flags().StringVar(&parseAxis, "axis", "lat",
		"axis used when rendering the sexagesimal form: lat or lon")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <coordinate>...",
	Short: "Convert coordinate values to decimal degrees",
	Example: `  coordconv parse "35°45'30\"N"
  coordconv parse --axis lon "74 00 10 W" "-73,985656"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		axis := dms.Latitude
		if parseAxis == "lon" || parseAxis == "lng" {
			axis = dms.Longitude
		}

		failed := 0

		for _, arg := range args {
			dd, err := dms.ParseCoordinate(arg)
			if err != nil {
				log.Printf("could not process %q: %v", arg, err)

				failed++

				continue
			}

			fmt.Printf("%s\t%f\t%s\n", arg, dd, dms.Format(dd, axis))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d values could not be processed", failed, len(args))
		}

		return nil
	},
}
