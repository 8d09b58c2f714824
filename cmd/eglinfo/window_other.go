// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package main

import (
	"errors"

	"eglwgl.org/egl"
)

func createWindow(width, height int) (egl.NativeWindowType, func(), error) {
	return 0, nil, errors.New("probing needs a Windows window")
}
