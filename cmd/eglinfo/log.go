// SPDX-License-Identifier: Unlicense OR MIT

package main

import "log/slog"

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(logOutput(), &slog.HandlerOptions{Level: level}))
}
