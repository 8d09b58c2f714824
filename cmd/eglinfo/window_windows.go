// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"unsafe"

	syscall "golang.org/x/sys/windows"

	"eglwgl.org/egl"
)

const _WS_POPUP = 0x80000000

var (
	user32          = syscall.NewLazySystemDLL("user32.dll")
	_CreateWindowEx = user32.NewProc("CreateWindowExW")
	_DestroyWindow  = user32.NewProc("DestroyWindow")
)

// createWindow creates a hidden popup window of the predefined STATIC
// class.
func createWindow(width, height int) (egl.NativeWindowType, func(), error) {
	class := syscall.StringToUTF16Ptr("STATIC")
	title := syscall.StringToUTF16Ptr("eglinfo")
	hwnd, _, err := _CreateWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(class)),
		uintptr(unsafe.Pointer(title)),
		_WS_POPUP,
		0, 0, uintptr(width), uintptr(height),
		0,
		0,
		0,
		0)
	if hwnd == 0 {
		return 0, nil, fmt.Errorf("CreateWindowEx failed: %v", err)
	}
	destroy := func() {
		_DestroyWindow.Call(hwnd)
	}
	return egl.NativeWindowType(hwnd), destroy, nil
}
