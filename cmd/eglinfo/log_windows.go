// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"io"
	"os"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

type debugView struct{}

var (
	kernel32           = syscall.NewLazySystemDLL("kernel32")
	outputDebugStringW = kernel32.NewProc("OutputDebugStringW")
)

// logOutput returns stderr, or the debugger output when the process has
// no console.
func logOutput() io.Writer {
	if syscall.Stderr == 0 {
		return debugView{}
	}
	return os.Stderr
}

func (debugView) Write(buf []byte) (int, error) {
	p, err := syscall.UTF16PtrFromString(string(buf))
	if err != nil {
		return 0, err
	}
	outputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
	return len(buf), nil
}
