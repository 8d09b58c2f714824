// SPDX-License-Identifier: Unlicense OR MIT

// Package attrib translates EGL attribute lists into WGL attribute
// arrays.
//
// A generic list is a sequence of key, value pairs ended by EGL_NONE. A
// nil or empty list requests nothing, and a list without EGL_NONE ends
// at the end of the slice. Pairs are processed strictly in order, so
// only the last occurrence of a key takes effect.
package attrib

import (
	"eglwgl.org/internal/egldef"
	"eglwgl.org/internal/wgl"
)

const (
	// MaxContextPairs is the number of context attribute pairs accepted
	// before EGL_NONE.
	MaxContextPairs = 7
	// MaxSurfacePairs is the number of window surface attribute pairs
	// accepted before EGL_NONE.
	MaxSurfacePairs = 4

	contextSlots = 6
	windowSlots  = 13
)

// walk calls fn for each pair of list, stopping at the first error.
func walk(list []int32, maxPairs int, fn func(key, val int32) error) error {
	pairs := 0
	for i := 0; i < len(list) && list[i] != egldef.None; i += 2 {
		if pairs == maxPairs || i+1 == len(list) {
			return egldef.BadAttribute
		}
		if err := fn(list[i], list[i+1]); err != nil {
			return err
		}
		pairs++
	}
	return nil
}

// boolFlag sets or clears bit in flags according to an EGL boolean.
func boolFlag(flags *int32, bit int32, val int32) error {
	switch val {
	case egldef.True:
		*flags |= bit
	case egldef.False:
		*flags &^= bit
	default:
		return egldef.BadAttribute
	}
	return nil
}

// TranslateContext converts an EGL context attribute list into a zero
// terminated WGL_ARB_create_context attribute array. Attributes left at
// their default value are omitted from the result.
func TranslateContext(list []int32) ([]int32, error) {
	var major, minor, layer, flags, profile, reset int32
	err := walk(list, MaxContextPairs, func(key, val int32) error {
		switch key {
		case egldef.ContextMajorVersion:
			if val < 1 {
				return egldef.BadAttribute
			}
			major = val
		case egldef.ContextMinorVersion:
			if val < 0 {
				return egldef.BadAttribute
			}
			minor = val
		case egldef.ContextOpenGLProfileMask:
			switch val {
			case egldef.ContextOpenGLCoreProfileBit:
				profile = wgl.CONTEXT_CORE_PROFILE_BIT_ARB
			case egldef.ContextOpenGLCompatibilityProfileBit:
				profile = wgl.CONTEXT_COMPATIBILITY_PROFILE_BIT_ARB
			default:
				return egldef.BadAttribute
			}
		case egldef.ContextOpenGLDebug:
			return boolFlag(&flags, wgl.CONTEXT_DEBUG_BIT_ARB, val)
		case egldef.ContextOpenGLForwardCompatible:
			return boolFlag(&flags, wgl.CONTEXT_FORWARD_COMPATIBLE_BIT_ARB, val)
		case egldef.ContextOpenGLRobustAccess:
			return boolFlag(&flags, wgl.CONTEXT_ROBUST_ACCESS_BIT_ARB, val)
		case egldef.ContextOpenGLResetNotificationStrategy:
			switch val {
			case egldef.NoResetNotification:
				reset = wgl.NO_RESET_NOTIFICATION_ARB
			case egldef.LoseContextOnReset:
				reset = wgl.LOSE_CONTEXT_ON_RESET_ARB
			default:
				return egldef.BadAttribute
			}
		default:
			return egldef.BadAttribute
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	n := NewNative(contextSlots)
	for _, a := range [...]struct{ key, val int32 }{
		{wgl.CONTEXT_MAJOR_VERSION_ARB, major},
		{wgl.CONTEXT_MINOR_VERSION_ARB, minor},
		{wgl.CONTEXT_LAYER_PLANE_ARB, layer},
		{wgl.CONTEXT_FLAGS_ARB, flags},
		{wgl.CONTEXT_PROFILE_MASK_ARB, profile},
		{wgl.CONTEXT_RESET_NOTIFICATION_STRATEGY_ARB, reset},
	} {
		if a.val == 0 {
			continue
		}
		if err := n.Set(a.key, a.val); err != nil {
			return nil, err
		}
	}
	return n.Array(), nil
}

// WindowTemplate returns the native pixel format request every window
// surface starts from: an OpenGL capable, double buffered RGBA window
// format. The buffering and bit depth entries are placeholders meant to be
// overwritten from the chosen config. The entries always fit windowSlots.
func WindowTemplate() *Native {
	n := NewNative(windowSlots)
	for _, a := range [...]struct{ key, val int32 }{
		{wgl.DRAW_TO_WINDOW_ARB, wgl.GL_TRUE},
		{wgl.SUPPORT_OPENGL_ARB, wgl.GL_TRUE},
		{wgl.PIXEL_TYPE_ARB, wgl.TYPE_RGBA_ARB},
		{wgl.DOUBLE_BUFFER_ARB, wgl.GL_TRUE},
		{wgl.COLOR_BITS_ARB, 32},
		{wgl.RED_BITS_ARB, 8},
		{wgl.GREEN_BITS_ARB, 8},
		{wgl.BLUE_BITS_ARB, 8},
		{wgl.ALPHA_BITS_ARB, 8},
		{wgl.DEPTH_BITS_ARB, 24},
		{wgl.STENCIL_BITS_ARB, 8},
		{wgl.SAMPLE_BUFFERS_ARB, 0},
		{wgl.SAMPLES_ARB, 0},
	} {
		if err := n.Set(a.key, a.val); err != nil {
			panic(err)
		}
	}
	return n
}

// TranslateSurface applies an EGL window surface attribute list to the
// native request n. On error n is left untouched.
func TranslateSurface(list []int32, n *Native) error {
	next := n.Clone()
	err := walk(list, MaxSurfacePairs, func(key, val int32) error {
		switch key {
		case egldef.GLColorspace:
			switch val {
			case egldef.GLColorspaceLinear:
				return nil
			case egldef.GLColorspaceSRGB:
				return egldef.BadMatch
			default:
				return egldef.BadAttribute
			}
		case egldef.RenderBuffer:
			switch val {
			case egldef.SingleBuffer:
				return next.Set(wgl.DOUBLE_BUFFER_ARB, wgl.GL_FALSE)
			case egldef.BackBuffer:
				return next.Set(wgl.DOUBLE_BUFFER_ARB, wgl.GL_TRUE)
			default:
				return egldef.BadAttribute
			}
		case egldef.VGAlphaFormat, egldef.VGColorspace:
			return egldef.BadMatch
		default:
			return egldef.BadAttribute
		}
	})
	if err != nil {
		return err
	}
	*n = *next
	return nil
}
