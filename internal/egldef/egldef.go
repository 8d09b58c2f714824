// SPDX-License-Identifier: Unlicense OR MIT

// Package egldef holds the EGL enumerants shared by the translation
// layer and the public egl package.
package egldef

import "fmt"

const (
	False = 0
	True  = 1

	DontCare = -1
)

// Error is an EGL error code.
type Error int32

const (
	Success           Error = 0x3000
	NotInitialized    Error = 0x3001
	BadAccess         Error = 0x3002
	BadAlloc          Error = 0x3003
	BadAttribute      Error = 0x3004
	BadConfig         Error = 0x3005
	BadContext        Error = 0x3006
	BadCurrentSurface Error = 0x3007
	BadDisplay        Error = 0x3008
	BadMatch          Error = 0x3009
	BadNativePixmap   Error = 0x300A
	BadNativeWindow   Error = 0x300B
	BadParameter      Error = 0x300C
	BadSurface        Error = 0x300D
	ContextLost       Error = 0x300E
)

var errorNames = map[Error]string{
	Success:           "EGL_SUCCESS",
	NotInitialized:    "EGL_NOT_INITIALIZED",
	BadAccess:         "EGL_BAD_ACCESS",
	BadAlloc:          "EGL_BAD_ALLOC",
	BadAttribute:      "EGL_BAD_ATTRIBUTE",
	BadConfig:         "EGL_BAD_CONFIG",
	BadContext:        "EGL_BAD_CONTEXT",
	BadCurrentSurface: "EGL_BAD_CURRENT_SURFACE",
	BadDisplay:        "EGL_BAD_DISPLAY",
	BadMatch:          "EGL_BAD_MATCH",
	BadNativePixmap:   "EGL_BAD_NATIVE_PIXMAP",
	BadNativeWindow:   "EGL_BAD_NATIVE_WINDOW",
	BadParameter:      "EGL_BAD_PARAMETER",
	BadSurface:        "EGL_BAD_SURFACE",
	ContextLost:       "EGL_CONTEXT_LOST",
}

func (e Error) Error() string {
	if n, ok := errorNames[e]; ok {
		return n
	}
	return fmt.Sprintf("EGL error 0x%x", int32(e))
}

// Config attributes.
const (
	BufferSize            = 0x3020
	AlphaSize             = 0x3021
	BlueSize              = 0x3022
	GreenSize             = 0x3023
	RedSize               = 0x3024
	DepthSize             = 0x3025
	StencilSize           = 0x3026
	ConfigCaveat          = 0x3027
	ConfigID              = 0x3028
	Level                 = 0x3029
	MaxPbufferHeight      = 0x302A
	MaxPbufferPixels      = 0x302B
	MaxPbufferWidth       = 0x302C
	NativeRenderable      = 0x302D
	NativeVisualID        = 0x302E
	NativeVisualType      = 0x302F
	Samples               = 0x3031
	SampleBuffers         = 0x3032
	SurfaceType           = 0x3033
	TransparentType       = 0x3034
	TransparentBlueValue  = 0x3035
	TransparentGreenValue = 0x3036
	TransparentRedValue   = 0x3037
	None                  = 0x3038
	BindToTextureRGB      = 0x3039
	BindToTextureRGBA     = 0x303A
	MinSwapInterval       = 0x303B
	MaxSwapInterval       = 0x303C
	LuminanceSize         = 0x303D
	AlphaMaskSize         = 0x303E
	ColorBufferType       = 0x303F
	RenderableType        = 0x3040
	MatchNativePixmap     = 0x3041
	Conformant            = 0x3042
)

// Config attribute values.
const (
	SlowConfig          = 0x3050
	NonConformantConfig = 0x3051
	TransparentRGB      = 0x3052
	RGBBuffer           = 0x308E
	LuminanceBuffer     = 0x308F
)

// Surface type and renderable type bits.
const (
	PbufferBit = 0x0001
	PixmapBit  = 0x0002
	WindowBit  = 0x0004

	OpenGLESBit  = 0x0001
	OpenVGBit    = 0x0002
	OpenGLES2Bit = 0x0004
	OpenGLBit    = 0x0008
	OpenGLES3Bit = 0x0040
)

// QueryString names.
const (
	Vendor     = 0x3053
	Version    = 0x3054
	Extensions = 0x3055
	ClientAPIs = 0x308D
)

// Surface attributes and values.
const (
	Height             = 0x3056
	Width              = 0x3057
	LargestPbuffer     = 0x3058
	RenderBuffer       = 0x3086
	VGColorspace       = 0x3087
	VGAlphaFormat      = 0x3088
	BackBuffer         = 0x3084
	SingleBuffer       = 0x3085
	GLColorspace       = 0x309D
	GLColorspaceSRGB   = 0x3089
	GLColorspaceLinear = 0x308A
)

// Client APIs.
const (
	OpenGLESAPI = 0x30A0
	OpenVGAPI   = 0x30A1
	OpenGLAPI   = 0x30A2
)

// Context attributes and values.
const (
	ContextMajorVersion                    = 0x3098
	ContextMinorVersion                    = 0x30FB
	ContextOpenGLProfileMask               = 0x30FD
	ContextOpenGLResetNotificationStrategy = 0x31BD
	ContextOpenGLDebug                     = 0x31B0
	ContextOpenGLForwardCompatible         = 0x31B1
	ContextOpenGLRobustAccess              = 0x31B2

	ContextOpenGLCoreProfileBit          = 0x0001
	ContextOpenGLCompatibilityProfileBit = 0x0002

	NoResetNotification = 0x31BE
	LoseContextOnReset  = 0x31BF
)

// Draw and Read select the surface in GetCurrentSurface.
const (
	Draw = 0x3059
	Read = 0x305A
)
