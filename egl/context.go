// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"

	"eglwgl.org/internal/attrib"
	"eglwgl.org/internal/wgl"
)

// Context is an OpenGL rendering context.
type Context struct {
	disp *Display
	cfg  *Config
	ctx  wgl.HGLRC
}

var nilHGLRC wgl.HGLRC

func (d *Display) ownsContext(c *Context) bool {
	if c == nil || c.disp != d || c.ctx == nilHGLRC {
		return false
	}
	_, ok := d.contexts[c]
	return ok
}

// CreateContext creates an OpenGL context for surfaces of cfg, sharing
// objects with share unless it is nil.
//
// The supported attributes are the context version, the profile mask,
// the debug, forward compatible and robust access flags and the reset
// notification strategy.
func (d *Display) CreateContext(cfg *Config, share *Context, attribs []Int) (*Context, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if !d.ownsConfig(cfg) {
		return nil, d.fail(BadConfig)
	}
	if !cfg.cfg.DrawToWindow {
		return nil, d.errorf(BadMatch, "config %d cannot draw to windows", cfg.cfg.ConfigID)
	}
	shareCtx := nilHGLRC
	if share != nil {
		if !d.ownsContext(share) {
			return nil, d.fail(BadContext)
		}
		shareCtx = share.ctx
	}
	native, err := attrib.TranslateContext(attribs)
	if err != nil {
		return nil, d.fail(err)
	}
	// WGL creates contexts against a device context with a pixel format
	// set. Use a scratch window with the exact format of cfg.
	win, err := d.gw.CreateWindow()
	if err != nil {
		return nil, d.errorf(BadAlloc, "%v", err)
	}
	s, err := buildSurface(d.gw, cfg.cfg, win, nil)
	if err != nil {
		d.gw.DestroyWindow(win)
		return nil, d.fail(err)
	}
	s.disp, s.scratch = d, true
	defer s.release()
	ctx, err := d.gw.CreateContext(s.hdc, shareCtx, native)
	if err != nil {
		return nil, d.fail(fmt.Errorf("%w: %v", BadAlloc, err))
	}
	c := &Context{disp: d, cfg: cfg, ctx: ctx}
	d.contexts[c] = struct{}{}
	Logger().Debug("context created", "config", cfg.cfg.ConfigID, "shared", share != nil)
	return c, nil
}

// deleteContext releases the native context and clears its handle.
func (d *Display) deleteContext(c *Context) error {
	delete(d.contexts, c)
	if c.ctx == nilHGLRC {
		return nil
	}
	err := d.gw.DeleteContext(c.ctx)
	c.ctx = nilHGLRC
	if err != nil {
		Logger().Warn("deleting context failed", "error", err)
	}
	return err
}

// DestroyContext destroys c. If c is current, it is released first.
func (d *Display) DestroyContext(c *Context) error {
	if err := d.check(); err != nil {
		return err
	}
	if !d.ownsContext(c) {
		return d.fail(BadContext)
	}
	if d.currentContext == c {
		d.dropCurrent()
	}
	if err := d.deleteContext(c); err != nil {
		return d.errorf(BadContext, "%v", err)
	}
	return nil
}

func (d *Display) releaseCurrent() error {
	if err := d.gw.MakeCurrent(nilHDC, nilHGLRC); err != nil {
		Logger().Warn("releasing current context failed", "error", err)
		return err
	}
	d.currentSurface, d.currentContext = nil, nil
	return nil
}

// dropCurrent releases the current context before one of its objects is
// destroyed. The current state is cleared even if the release fails.
func (d *Display) dropCurrent() {
	d.releaseCurrent()
	d.currentSurface, d.currentContext = nil, nil
}

// MakeCurrent binds ctx to the surface draw on the calling OS thread.
// draw and read must be the same surface. Passing nil for all three
// releases the current context.
func (d *Display) MakeCurrent(draw, read *Surface, ctx *Context) error {
	if err := d.check(); err != nil {
		return err
	}
	if draw == nil && read == nil && ctx == nil {
		if err := d.releaseCurrent(); err != nil {
			return d.errorf(BadAccess, "%v", err)
		}
		return nil
	}
	if draw != read {
		return d.errorf(BadMatch, "separate draw and read surfaces")
	}
	if ctx == nil {
		return d.fail(BadContext)
	}
	if draw == nil {
		return d.errorf(BadMatch, "surfaceless contexts are not supported")
	}
	if !d.ownsSurface(draw) {
		return d.fail(BadSurface)
	}
	if !d.ownsContext(ctx) {
		return d.fail(BadContext)
	}
	if err := d.gw.MakeCurrent(draw.hdc, ctx.ctx); err != nil {
		return d.errorf(BadMatch, "%v", err)
	}
	d.currentSurface, d.currentContext = draw, ctx
	return nil
}

// GetCurrentContext returns the context made current through d, or nil.
func (d *Display) GetCurrentContext() *Context {
	if d == nil {
		return nil
	}
	return d.currentContext
}

// GetCurrentSurface returns the current Draw or Read surface, or nil.
func (d *Display) GetCurrentSurface(which Int) *Surface {
	if d == nil || which != Draw && which != Read {
		return nil
	}
	return d.currentSurface
}

// SwapInterval sets the minimum number of video frames between buffer
// swaps of the current context.
func (d *Display) SwapInterval(interval int) error {
	if err := d.check(); err != nil {
		return err
	}
	if err := d.gw.SwapInterval(interval); err != nil {
		return d.errorf(BadContext, "%v", err)
	}
	return nil
}
