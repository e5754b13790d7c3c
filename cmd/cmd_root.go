// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "coordconv",
	Short: "tolerant geographic coordinate conversion",
	Long: `
coordconv converts geographic coordinates written in degrees, minutes and
seconds into decimal degrees. It tolerates the notation found in real-world
datasets: unicode degree and prime marks, decimal commas, missing components
and hemisphere letters in any casing.
`,
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
