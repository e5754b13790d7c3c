// Copyright 2025 The CoordConv Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/nprieto/coordconv/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
