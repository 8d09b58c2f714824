// SPDX-License-Identifier: Unlicense OR MIT

// Package catalog enumerates the native pixel formats into an ordered,
// immutable set of EGL configs.
package catalog

import (
	"fmt"
	"log/slog"

	"eglwgl.org/internal/egldef"
	"eglwgl.org/internal/wgl"
)

// Querier is the part of the gateway enumeration needs.
type Querier interface {
	PixelFormatAttrib(hdc wgl.HDC, format int, attrib int32) (int32, error)
}

// Catalog is the ordered set of configs of one display. The order is the
// native pixel format order.
type Catalog struct {
	configs []Config
	byID    map[int32]int
}

// queryError reports a failed mandatory query. It unwraps to
// NotInitialized.
func queryError(format int, attrib int32, err error) error {
	return fmt.Errorf("%w: pixel format %d attribute 0x%x: %v", egldef.NotInitialized, format, attrib, err)
}

// Enumerate walks pixel formats 1..N of hdc, keeping the OpenGL capable
// RGBA ones. Any failed mandatory query aborts the whole enumeration.
// The bind-to-texture queries are optional. A nil log discards output.
func Enumerate(q Querier, hdc wgl.HDC, log *slog.Logger) (*Catalog, error) {
	n, err := q.PixelFormatAttrib(hdc, 1, wgl.NUMBER_PIXEL_FORMATS_ARB)
	if err != nil {
		return nil, queryError(1, wgl.NUMBER_PIXEL_FORMATS_ARB, err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	c := &Catalog{byID: make(map[int32]int)}
	for f := 1; f <= int(n); f++ {
		cfg, ok, err := enumerateFormat(q, hdc, f)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Debug("skipping pixel format", "format", f)
			continue
		}
		c.byID[cfg.ConfigID] = len(c.configs)
		c.configs = append(c.configs, cfg)
	}
	log.Debug("enumerated configs", "formats", n, "configs", len(c.configs))
	return c, nil
}

func enumerateFormat(q Querier, hdc wgl.HDC, f int) (Config, bool, error) {
	query := func(attrib int32) (int32, error) {
		v, err := q.PixelFormatAttrib(hdc, f, attrib)
		if err != nil {
			return 0, queryError(f, attrib, err)
		}
		return v, nil
	}
	v, err := query(wgl.SUPPORT_OPENGL_ARB)
	if err != nil || v == 0 {
		return Config{}, false, err
	}
	v, err = query(wgl.PIXEL_TYPE_ARB)
	if err != nil || v != wgl.TYPE_RGBA_ARB {
		return Config{}, false, err
	}

	c := defaultConfig()
	var drawToWindow, drawToPixmap, doubleBuffer int32
	for _, a := range [...]struct {
		attrib int32
		dst    *int32
	}{
		{wgl.DRAW_TO_WINDOW_ARB, &drawToWindow},
		{wgl.DRAW_TO_BITMAP_ARB, &drawToPixmap},
		{wgl.DOUBLE_BUFFER_ARB, &doubleBuffer},
		{wgl.COLOR_BITS_ARB, &c.BufferSize},
		{wgl.RED_BITS_ARB, &c.RedSize},
		{wgl.GREEN_BITS_ARB, &c.GreenSize},
		{wgl.BLUE_BITS_ARB, &c.BlueSize},
		{wgl.ALPHA_BITS_ARB, &c.AlphaSize},
		{wgl.DEPTH_BITS_ARB, &c.DepthSize},
		{wgl.STENCIL_BITS_ARB, &c.StencilSize},
		{wgl.SAMPLE_BUFFERS_ARB, &c.SampleBuffers},
		{wgl.SAMPLES_ARB, &c.Samples},
	} {
		if *a.dst, err = query(a.attrib); err != nil {
			return Config{}, false, err
		}
	}
	c.DrawToWindow = drawToWindow != 0
	c.DrawToPixmap = drawToPixmap != 0
	c.DoubleBuffer = doubleBuffer != 0

	if v, err := q.PixelFormatAttrib(hdc, f, wgl.BIND_TO_TEXTURE_RGB_ARB); err == nil {
		c.BindToTextureRGB = v != 0
	}
	if v, err := q.PixelFormatAttrib(hdc, f, wgl.BIND_TO_TEXTURE_RGBA_ARB); err == nil {
		c.BindToTextureRGBA = v != 0
	}

	for _, a := range [...]struct {
		attrib int32
		dst    *int32
	}{
		{wgl.MAX_PBUFFER_PIXELS_ARB, &c.MaxPbufferPixels},
		{wgl.MAX_PBUFFER_WIDTH_ARB, &c.MaxPbufferWidth},
		{wgl.MAX_PBUFFER_HEIGHT_ARB, &c.MaxPbufferHeight},
	} {
		if *a.dst, err = query(a.attrib); err != nil {
			return Config{}, false, err
		}
	}

	transparent, err := query(wgl.TRANSPARENT_ARB)
	if err != nil {
		return Config{}, false, err
	}
	if transparent != 0 {
		c.TransparentType = egldef.TransparentRGB
		for _, a := range [...]struct {
			attrib int32
			dst    *int32
		}{
			{wgl.TRANSPARENT_RED_VALUE_ARB, &c.TransparentRedValue},
			{wgl.TRANSPARENT_GREEN_VALUE_ARB, &c.TransparentGreenValue},
			{wgl.TRANSPARENT_BLUE_VALUE_ARB, &c.TransparentBlueValue},
		} {
			if *a.dst, err = query(a.attrib); err != nil {
				return Config{}, false, err
			}
		}
	}

	c.SurfaceType = c.surfaceType()
	c.ColorBufferType = egldef.RGBBuffer
	c.ConfigID = int32(f)
	c.Conformant = egldef.OpenGLBit
	c.RenderableType = egldef.OpenGLBit
	return c, true, nil
}

// Len returns the number of configs.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.configs)
}

// At returns the i'th config in enumeration order.
func (c *Catalog) At(i int) *Config {
	return &c.configs[i]
}

// First returns up to max configs in enumeration order. A negative max
// returns all of them.
func (c *Catalog) First(max int) []*Config {
	n := c.Len()
	if max >= 0 && max < n {
		n = max
	}
	res := make([]*Config, n)
	for i := range res {
		res[i] = &c.configs[i]
	}
	return res
}

// Lookup returns the config with the given id.
func (c *Catalog) Lookup(id int32) (*Config, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.configs[i], true
}

// Contains reports whether cfg belongs to the catalog.
func (c *Catalog) Contains(cfg *Config) bool {
	if c == nil || cfg == nil {
		return false
	}
	i, ok := c.byID[cfg.ConfigID]
	return ok && &c.configs[i] == cfg
}
