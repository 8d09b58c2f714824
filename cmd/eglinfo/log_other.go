// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package main

import (
	"io"
	"os"
)

func logOutput() io.Writer {
	return os.Stderr
}
