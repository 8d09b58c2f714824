// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"

	"eglwgl.org/internal/attrib"
	"eglwgl.org/internal/catalog"
	"eglwgl.org/internal/wgl"
)

// Surface is a window surface.
type Surface struct {
	disp *Display
	cfg  *Config

	win    wgl.HWND
	hdc    wgl.HDC
	format int

	doubleBuffer bool
	drawToWindow bool
	// scratch surfaces own their window.
	scratch bool
}

var nilHDC wgl.HDC

// buildSurface negotiates a native pixel format exactly matching cfg on
// the device context of win and sets it. The device context is released
// on every failure.
func buildSurface(gw wgl.Gateway, cfg *catalog.Config, win wgl.HWND, attribs []Int) (*Surface, error) {
	hdc, err := gw.GetDC(win)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", BadNativeWindow, err)
	}
	s, err := negotiate(gw, cfg, hdc, attribs)
	if err != nil {
		gw.ReleaseDC(win, hdc)
		return nil, err
	}
	s.win = win
	return s, nil
}

func negotiate(gw wgl.Gateway, cfg *catalog.Config, hdc wgl.HDC, attribs []Int) (*Surface, error) {
	req := attrib.WindowTemplate()
	db := int32(wgl.GL_FALSE)
	if cfg.DoubleBuffer {
		db = wgl.GL_TRUE
	}
	// RenderBuffer may override the buffering of cfg.
	if err := req.Set(wgl.DOUBLE_BUFFER_ARB, db); err != nil {
		return nil, err
	}
	if err := attrib.TranslateSurface(attribs, req); err != nil {
		return nil, err
	}
	for _, a := range [...]struct{ key, val int32 }{
		{wgl.COLOR_BITS_ARB, cfg.BufferSize},
		{wgl.RED_BITS_ARB, cfg.RedSize},
		{wgl.GREEN_BITS_ARB, cfg.GreenSize},
		{wgl.BLUE_BITS_ARB, cfg.BlueSize},
		{wgl.ALPHA_BITS_ARB, cfg.AlphaSize},
		{wgl.DEPTH_BITS_ARB, cfg.DepthSize},
		{wgl.STENCIL_BITS_ARB, cfg.StencilSize},
		{wgl.SAMPLE_BUFFERS_ARB, cfg.SampleBuffers},
		{wgl.SAMPLES_ARB, cfg.Samples},
	} {
		if err := req.Set(a.key, a.val); err != nil {
			return nil, err
		}
	}
	formats, err := gw.ChoosePixelFormat(hdc, req.Array(), 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", BadMatch, err)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: no pixel format matches config %d", BadMatch, cfg.ConfigID)
	}
	format := formats[0]
	pfd, err := gw.DescribePixelFormat(hdc, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", BadMatch, err)
	}
	if err := gw.SetPixelFormat(hdc, format, &pfd); err != nil {
		return nil, fmt.Errorf("%w: %v", BadMatch, err)
	}
	Logger().Debug("pixel format set", "config", cfg.ConfigID, "format", format)
	db, _ = req.Get(wgl.DOUBLE_BUFFER_ARB)
	dw, _ := req.Get(wgl.DRAW_TO_WINDOW_ARB)
	return &Surface{
		hdc:          hdc,
		format:       format,
		doubleBuffer: db != wgl.GL_FALSE,
		drawToWindow: dw != wgl.GL_FALSE,
	}, nil
}

// release gives back the device context, and the window of scratch
// surfaces. Releasing twice is a no-op.
func (s *Surface) release() {
	if s.hdc == nilHDC {
		return
	}
	gw := s.disp.gw
	gw.ReleaseDC(s.win, s.hdc)
	s.hdc = nilHDC
	if s.scratch {
		gw.DestroyWindow(s.win)
	}
}

// CreateWindowSurface creates a surface for the window win with the
// pixel format of cfg. The supported attributes are RenderBuffer and
// GLColorspace (linear only).
func (d *Display) CreateWindowSurface(cfg *Config, win NativeWindowType, attribs []Int) (*Surface, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if !d.ownsConfig(cfg) {
		return nil, d.fail(BadConfig)
	}
	if !cfg.cfg.DrawToWindow {
		return nil, d.errorf(BadMatch, "config %d cannot draw to windows", cfg.cfg.ConfigID)
	}
	s, err := buildSurface(d.gw, cfg.cfg, wgl.HWND(win), attribs)
	if err != nil {
		return nil, d.fail(err)
	}
	s.disp, s.cfg = d, cfg
	d.surfaces[s] = struct{}{}
	return s, nil
}

func (d *Display) ownsSurface(s *Surface) bool {
	if s == nil || s.disp != d {
		return false
	}
	_, ok := d.surfaces[s]
	return ok
}

// DestroySurface releases s. If s is current, the current context is
// released first.
func (d *Display) DestroySurface(s *Surface) error {
	if err := d.check(); err != nil {
		return err
	}
	if !d.ownsSurface(s) {
		return d.fail(BadSurface)
	}
	if d.currentSurface == s {
		d.dropCurrent()
	}
	s.release()
	delete(d.surfaces, s)
	return nil
}

// QuerySurface returns a surface attribute: ConfigID, RenderBuffer,
// GLColorspace, Width or Height.
func (d *Display) QuerySurface(s *Surface, attr Int) (Int, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	if !d.ownsSurface(s) {
		return 0, d.fail(BadSurface)
	}
	switch attr {
	case ConfigID:
		return s.cfg.cfg.ConfigID, nil
	case RenderBuffer:
		if s.doubleBuffer {
			return BackBuffer, nil
		}
		return SingleBuffer, nil
	case GLColorspace:
		return GLColorspaceLinear, nil
	case Width, Height:
		w, h, err := d.gw.WindowSize(s.win)
		if err != nil {
			return 0, d.errorf(BadNativeWindow, "%v", err)
		}
		if attr == Width {
			return Int(w), nil
		}
		return Int(h), nil
	}
	return 0, d.fail(BadAttribute)
}

// SwapBuffers posts the back buffer of s to its window. Swapping a single
// buffered surface has no effect.
func (d *Display) SwapBuffers(s *Surface) error {
	if err := d.check(); err != nil {
		return err
	}
	if !d.ownsSurface(s) {
		return d.fail(BadSurface)
	}
	if !s.doubleBuffer {
		return nil
	}
	if err := d.gw.SwapBuffers(s.hdc); err != nil {
		return d.errorf(BadNativeWindow, "%v", err)
	}
	return nil
}
