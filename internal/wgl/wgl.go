// SPDX-License-Identifier: Unlicense OR MIT

// Package wgl is the narrow gateway to the native WGL pixel format and
// context API. Nothing here reimplements format selection; every call is
// a pass-through to the platform.
package wgl

import "errors"

type (
	HWND  uintptr
	HDC   uintptr
	HGLRC uintptr
)

var (
	nilHWND  HWND
	nilHDC   HDC
	nilHGLRC HGLRC
)

const (
	NUMBER_PIXEL_FORMATS_ARB    = 0x2000
	DRAW_TO_WINDOW_ARB          = 0x2001
	DRAW_TO_BITMAP_ARB          = 0x2002
	ACCELERATION_ARB            = 0x2003
	TRANSPARENT_ARB             = 0x200A
	SUPPORT_OPENGL_ARB          = 0x2010
	DOUBLE_BUFFER_ARB           = 0x2011
	PIXEL_TYPE_ARB              = 0x2013
	COLOR_BITS_ARB              = 0x2014
	RED_BITS_ARB                = 0x2015
	GREEN_BITS_ARB              = 0x2017
	BLUE_BITS_ARB               = 0x2019
	ALPHA_BITS_ARB              = 0x201B
	DEPTH_BITS_ARB              = 0x2022
	STENCIL_BITS_ARB            = 0x2023
	TYPE_RGBA_ARB               = 0x202B
	TYPE_COLORINDEX_ARB         = 0x202C
	MAX_PBUFFER_PIXELS_ARB      = 0x202E
	MAX_PBUFFER_WIDTH_ARB       = 0x202F
	MAX_PBUFFER_HEIGHT_ARB      = 0x2030
	TRANSPARENT_RED_VALUE_ARB   = 0x2037
	TRANSPARENT_GREEN_VALUE_ARB = 0x2038
	TRANSPARENT_BLUE_VALUE_ARB  = 0x2039
	SAMPLE_BUFFERS_ARB          = 0x2041
	SAMPLES_ARB                 = 0x2042
	BIND_TO_TEXTURE_RGB_ARB     = 0x2070
	BIND_TO_TEXTURE_RGBA_ARB    = 0x2071

	CONTEXT_MAJOR_VERSION_ARB               = 0x2091
	CONTEXT_MINOR_VERSION_ARB               = 0x2092
	CONTEXT_LAYER_PLANE_ARB                 = 0x2093
	CONTEXT_FLAGS_ARB                       = 0x2094
	CONTEXT_PROFILE_MASK_ARB                = 0x9126
	CONTEXT_RESET_NOTIFICATION_STRATEGY_ARB = 0x8256

	CONTEXT_DEBUG_BIT_ARB                 = 0x0001
	CONTEXT_FORWARD_COMPATIBLE_BIT_ARB    = 0x0002
	CONTEXT_ROBUST_ACCESS_BIT_ARB         = 0x0004
	CONTEXT_CORE_PROFILE_BIT_ARB          = 0x0001
	CONTEXT_COMPATIBILITY_PROFILE_BIT_ARB = 0x0002
	NO_RESET_NOTIFICATION_ARB             = 0x8261
	LOSE_CONTEXT_ON_RESET_ARB             = 0x8252

	GL_FALSE = 0
	GL_TRUE  = 1
)

// Flags of PixelFormatDescriptor.Flags.
const (
	PFD_DOUBLEBUFFER   = 0x00000001
	PFD_DRAW_TO_WINDOW = 0x00000004
	PFD_SUPPORT_OPENGL = 0x00000020
	PFD_TYPE_RGBA      = 0
	PFD_MAIN_PLANE     = 0
)

// PixelFormatDescriptor mirrors the Win32 PIXELFORMATDESCRIPTOR layout.
type PixelFormatDescriptor struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      uint8
	ColorBits      uint8
	RedBits        uint8
	RedShift       uint8
	GreenBits      uint8
	GreenShift     uint8
	BlueBits       uint8
	BlueShift      uint8
	AlphaBits      uint8
	AlphaShift     uint8
	AccumBits      uint8
	AccumRedBits   uint8
	AccumGreenBits uint8
	AccumBlueBits  uint8
	AccumAlphaBits uint8
	DepthBits      uint8
	StencilBits    uint8
	AuxBuffers     uint8
	LayerType      uint8
	Reserved       uint8
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

// ErrUnsupported is returned by the gateway on platforms without WGL.
var ErrUnsupported = errors.New("wgl: not supported on this platform")

// Gateway is the set of native calls the EGL layer is built on.
//
// Handles returned by one call are only meaningful to the same Gateway.
// Calls are not synchronized; a Gateway is driven by one caller at a time.
type Gateway interface {
	// CreateWindow creates a hidden, zero sized window used only to own a
	// device context.
	CreateWindow() (HWND, error)
	DestroyWindow(w HWND)
	// WindowSize returns the client area size of w.
	WindowSize(w HWND) (width, height int, err error)

	GetDC(w HWND) (HDC, error)
	ReleaseDC(w HWND, hdc HDC)

	// SetLegacyPixelFormat sets a 32 bit RGBA, 24 bit depth, 8 bit stencil,
	// double buffered format through the core GDI selection path.
	SetLegacyPixelFormat(hdc HDC) error
	// CreateLegacyContext creates a context with wglCreateContext.
	CreateLegacyContext(hdc HDC) (HGLRC, error)
	// LoadExtensions resolves the ARB/EXT entry points. A context must be
	// current.
	LoadExtensions() error

	// PixelFormatAttrib queries one attribute of a pixel format (1-based).
	PixelFormatAttrib(hdc HDC, format int, attrib int32) (int32, error)
	// ChoosePixelFormat returns up to max formats matching the zero
	// terminated attribute array.
	ChoosePixelFormat(hdc HDC, attribs []int32, max int) ([]int, error)
	DescribePixelFormat(hdc HDC, format int) (PixelFormatDescriptor, error)
	SetPixelFormat(hdc HDC, format int, pfd *PixelFormatDescriptor) error

	// CreateContext creates a context with wglCreateContextAttribsARB.
	// share may be zero.
	CreateContext(hdc HDC, share HGLRC, attribs []int32) (HGLRC, error)
	DeleteContext(ctx HGLRC) error
	// MakeCurrent binds ctx to hdc on the calling thread. Zero for both
	// releases the current context.
	MakeCurrent(hdc HDC, ctx HGLRC) error
	SwapBuffers(hdc HDC) error
	SwapInterval(interval int) error
	GetProcAddress(name string) uintptr
}
