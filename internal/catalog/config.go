// SPDX-License-Identifier: Unlicense OR MIT

package catalog

import "eglwgl.org/internal/egldef"

// Config describes one selectable pixel format. Once enumerated it is
// never modified.
type Config struct {
	// ConfigID is the native pixel format index the config was built from.
	ConfigID int32

	BufferSize    int32
	RedSize       int32
	GreenSize     int32
	BlueSize      int32
	AlphaSize     int32
	LuminanceSize int32
	AlphaMaskSize int32
	DepthSize     int32
	StencilSize   int32

	DoubleBuffer  bool
	DrawToWindow  bool
	DrawToPixmap  bool
	DrawToPbuffer bool

	SampleBuffers int32
	Samples       int32

	TransparentType       int32
	TransparentRedValue   int32
	TransparentGreenValue int32
	TransparentBlueValue  int32

	MaxPbufferPixels int32
	MaxPbufferWidth  int32
	MaxPbufferHeight int32

	BindToTextureRGB  bool
	BindToTextureRGBA bool

	// SurfaceType is the OR of the bits of the DrawTo* flags.
	SurfaceType     int32
	Conformant      int32
	RenderableType  int32
	ColorBufferType int32
	ConfigCaveat    int32
	Level           int32

	MinSwapInterval int32
	MaxSwapInterval int32

	NativeRenderable bool
	NativeVisualID   int32
	NativeVisualType int32
}

// defaultConfig returns a config with every field at its EGL default.
func defaultConfig() Config {
	return Config{
		ColorBufferType:  egldef.RGBBuffer,
		ConfigCaveat:     egldef.None,
		TransparentType:  egldef.None,
		NativeVisualType: egldef.None,
		MinSwapInterval:  1,
		MaxSwapInterval:  1,
	}
}

func eglBool(b bool) int32 {
	if b {
		return egldef.True
	}
	return egldef.False
}

// surfaceType derives the EGL surface type bits from the DrawTo* flags.
func (c *Config) surfaceType() int32 {
	var t int32
	if c.DrawToWindow {
		t |= egldef.WindowBit
	}
	if c.DrawToPixmap {
		t |= egldef.PixmapBit
	}
	if c.DrawToPbuffer {
		t |= egldef.PbufferBit
	}
	return t
}

// Attrib returns the value of the EGL config attribute key.
func (c *Config) Attrib(key int32) (int32, bool) {
	switch key {
	case egldef.ConfigID:
		return c.ConfigID, true
	case egldef.BufferSize:
		return c.BufferSize, true
	case egldef.RedSize:
		return c.RedSize, true
	case egldef.GreenSize:
		return c.GreenSize, true
	case egldef.BlueSize:
		return c.BlueSize, true
	case egldef.AlphaSize:
		return c.AlphaSize, true
	case egldef.LuminanceSize:
		return c.LuminanceSize, true
	case egldef.AlphaMaskSize:
		return c.AlphaMaskSize, true
	case egldef.DepthSize:
		return c.DepthSize, true
	case egldef.StencilSize:
		return c.StencilSize, true
	case egldef.SampleBuffers:
		return c.SampleBuffers, true
	case egldef.Samples:
		return c.Samples, true
	case egldef.TransparentType:
		return c.TransparentType, true
	case egldef.TransparentRedValue:
		return c.TransparentRedValue, true
	case egldef.TransparentGreenValue:
		return c.TransparentGreenValue, true
	case egldef.TransparentBlueValue:
		return c.TransparentBlueValue, true
	case egldef.MaxPbufferPixels:
		return c.MaxPbufferPixels, true
	case egldef.MaxPbufferWidth:
		return c.MaxPbufferWidth, true
	case egldef.MaxPbufferHeight:
		return c.MaxPbufferHeight, true
	case egldef.BindToTextureRGB:
		return eglBool(c.BindToTextureRGB), true
	case egldef.BindToTextureRGBA:
		return eglBool(c.BindToTextureRGBA), true
	case egldef.SurfaceType:
		return c.SurfaceType, true
	case egldef.Conformant:
		return c.Conformant, true
	case egldef.RenderableType:
		return c.RenderableType, true
	case egldef.ColorBufferType:
		return c.ColorBufferType, true
	case egldef.ConfigCaveat:
		return c.ConfigCaveat, true
	case egldef.Level:
		return c.Level, true
	case egldef.MinSwapInterval:
		return c.MinSwapInterval, true
	case egldef.MaxSwapInterval:
		return c.MaxSwapInterval, true
	case egldef.NativeRenderable:
		return eglBool(c.NativeRenderable), true
	case egldef.NativeVisualID:
		return c.NativeVisualID, true
	case egldef.NativeVisualType:
		return c.NativeVisualType, true
	}
	return 0, false
}
