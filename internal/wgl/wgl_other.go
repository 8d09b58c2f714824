// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows

package wgl

type gateway struct{}

// NewGateway returns a gateway whose every call fails with
// ErrUnsupported.
func NewGateway() Gateway {
	return gateway{}
}

func (gateway) CreateWindow() (HWND, error) { return nilHWND, ErrUnsupported }

func (gateway) DestroyWindow(HWND) {}

func (gateway) WindowSize(HWND) (int, int, error) { return 0, 0, ErrUnsupported }

func (gateway) GetDC(HWND) (HDC, error) { return nilHDC, ErrUnsupported }

func (gateway) ReleaseDC(HWND, HDC) {}

func (gateway) SetLegacyPixelFormat(HDC) error { return ErrUnsupported }

func (gateway) CreateLegacyContext(HDC) (HGLRC, error) { return nilHGLRC, ErrUnsupported }

func (gateway) LoadExtensions() error { return ErrUnsupported }

func (gateway) PixelFormatAttrib(HDC, int, int32) (int32, error) { return 0, ErrUnsupported }

func (gateway) ChoosePixelFormat(HDC, []int32, int) ([]int, error) { return nil, ErrUnsupported }

func (gateway) DescribePixelFormat(HDC, int) (PixelFormatDescriptor, error) {
	return PixelFormatDescriptor{}, ErrUnsupported
}

func (gateway) SetPixelFormat(HDC, int, *PixelFormatDescriptor) error { return ErrUnsupported }

func (gateway) CreateContext(HDC, HGLRC, []int32) (HGLRC, error) { return nilHGLRC, ErrUnsupported }

func (gateway) DeleteContext(HGLRC) error { return ErrUnsupported }

func (gateway) MakeCurrent(HDC, HGLRC) error { return ErrUnsupported }

func (gateway) SwapBuffers(HDC) error { return ErrUnsupported }

func (gateway) SwapInterval(int) error { return ErrUnsupported }

func (gateway) GetProcAddress(string) uintptr { return 0 }
