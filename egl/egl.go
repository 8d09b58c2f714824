// SPDX-License-Identifier: Unlicense OR MIT

/*
Package egl implements the EGL 1.5 display, config, surface and context
life cycle on top of the WGL pixel format and context API.

Configs are enumerated once, when a display is initialized, from the
native pixel formats that support OpenGL and RGBA color. Window surfaces
negotiate a native pixel format that exactly matches their config, and
contexts are created with WGL_ARB_create_context.

Operations report failures as an error wrapping one of the EGL error
codes. The code of the last failure is also kept per display and
returned by GetError, as eglGetError does.

A context is current on an OS thread. Callers of MakeCurrent, SwapBuffers
and SwapInterval must have locked their goroutine to its thread with
runtime.LockOSThread.
*/
package egl

import "eglwgl.org/internal/egldef"

type (
	Int = int32

	// NativeDisplayType identifies a display. DefaultDisplay is the only
	// value with meaning on Windows; other values get displays of their own.
	NativeDisplayType uintptr
	// NativeWindowType is a window handle (HWND).
	NativeWindowType uintptr

	// Error is an EGL error code.
	Error = egldef.Error
)

const DefaultDisplay NativeDisplayType = 0

const (
	False    = egldef.False
	True     = egldef.True
	DontCare = egldef.DontCare
	None     = egldef.None
)

const (
	Success           = egldef.Success
	NotInitialized    = egldef.NotInitialized
	BadAccess         = egldef.BadAccess
	BadAlloc          = egldef.BadAlloc
	BadAttribute      = egldef.BadAttribute
	BadConfig         = egldef.BadConfig
	BadContext        = egldef.BadContext
	BadCurrentSurface = egldef.BadCurrentSurface
	BadDisplay        = egldef.BadDisplay
	BadMatch          = egldef.BadMatch
	BadNativePixmap   = egldef.BadNativePixmap
	BadNativeWindow   = egldef.BadNativeWindow
	BadParameter      = egldef.BadParameter
	BadSurface        = egldef.BadSurface
	ContextLost       = egldef.ContextLost
)

// Config attributes.
const (
	BufferSize            = egldef.BufferSize
	AlphaSize             = egldef.AlphaSize
	BlueSize              = egldef.BlueSize
	GreenSize             = egldef.GreenSize
	RedSize               = egldef.RedSize
	DepthSize             = egldef.DepthSize
	StencilSize           = egldef.StencilSize
	ConfigCaveat          = egldef.ConfigCaveat
	ConfigID              = egldef.ConfigID
	Level                 = egldef.Level
	MaxPbufferHeight      = egldef.MaxPbufferHeight
	MaxPbufferPixels      = egldef.MaxPbufferPixels
	MaxPbufferWidth       = egldef.MaxPbufferWidth
	NativeRenderable      = egldef.NativeRenderable
	NativeVisualID        = egldef.NativeVisualID
	NativeVisualType      = egldef.NativeVisualType
	Samples               = egldef.Samples
	SampleBuffers         = egldef.SampleBuffers
	SurfaceType           = egldef.SurfaceType
	TransparentType       = egldef.TransparentType
	TransparentBlueValue  = egldef.TransparentBlueValue
	TransparentGreenValue = egldef.TransparentGreenValue
	TransparentRedValue   = egldef.TransparentRedValue
	BindToTextureRGB      = egldef.BindToTextureRGB
	BindToTextureRGBA     = egldef.BindToTextureRGBA
	MinSwapInterval       = egldef.MinSwapInterval
	MaxSwapInterval       = egldef.MaxSwapInterval
	LuminanceSize         = egldef.LuminanceSize
	AlphaMaskSize         = egldef.AlphaMaskSize
	ColorBufferType       = egldef.ColorBufferType
	RenderableType        = egldef.RenderableType
	Conformant            = egldef.Conformant

	SlowConfig          = egldef.SlowConfig
	NonConformantConfig = egldef.NonConformantConfig
	TransparentRGB      = egldef.TransparentRGB
	RGBBuffer           = egldef.RGBBuffer

	PbufferBit = egldef.PbufferBit
	PixmapBit  = egldef.PixmapBit
	WindowBit  = egldef.WindowBit
	OpenGLBit  = egldef.OpenGLBit
)

// Surface attributes.
const (
	Height             = egldef.Height
	Width              = egldef.Width
	RenderBuffer       = egldef.RenderBuffer
	BackBuffer         = egldef.BackBuffer
	SingleBuffer       = egldef.SingleBuffer
	VGColorspace       = egldef.VGColorspace
	VGAlphaFormat      = egldef.VGAlphaFormat
	GLColorspace       = egldef.GLColorspace
	GLColorspaceSRGB   = egldef.GLColorspaceSRGB
	GLColorspaceLinear = egldef.GLColorspaceLinear
)

// Context attributes.
const (
	ContextMajorVersion                    = egldef.ContextMajorVersion
	ContextMinorVersion                    = egldef.ContextMinorVersion
	ContextOpenGLProfileMask               = egldef.ContextOpenGLProfileMask
	ContextOpenGLResetNotificationStrategy = egldef.ContextOpenGLResetNotificationStrategy
	ContextOpenGLDebug                     = egldef.ContextOpenGLDebug
	ContextOpenGLForwardCompatible         = egldef.ContextOpenGLForwardCompatible
	ContextOpenGLRobustAccess              = egldef.ContextOpenGLRobustAccess

	ContextOpenGLCoreProfileBit          = egldef.ContextOpenGLCoreProfileBit
	ContextOpenGLCompatibilityProfileBit = egldef.ContextOpenGLCompatibilityProfileBit
	NoResetNotification                  = egldef.NoResetNotification
	LoseContextOnReset                   = egldef.LoseContextOnReset
)

const (
	OpenGLESAPI = egldef.OpenGLESAPI
	OpenVGAPI   = egldef.OpenVGAPI
	OpenGLAPI   = egldef.OpenGLAPI

	Vendor     = egldef.Vendor
	Version    = egldef.Version
	Extensions = egldef.Extensions
	ClientAPIs = egldef.ClientAPIs

	Draw = egldef.Draw
	Read = egldef.Read
)
