// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/ebitengine/purego"

	"eglwgl.org/egl"
)

const (
	_GL_VENDOR   = 0x1F00
	_GL_RENDERER = 0x1F01
	_GL_VERSION  = 0x1F02
)

// probe runs the surface and context life cycle on a hidden window with
// cfg and tears everything down again.
func probe(log *slog.Logger, d *egl.Display, cfg *egl.Config, attribs []egl.Int) error {
	win, destroy, err := createWindow(64, 64)
	if err != nil {
		return err
	}
	defer destroy()

	surf, err := d.CreateWindowSurface(cfg, win, nil)
	if err != nil {
		return fmt.Errorf("CreateWindowSurface: %w", err)
	}
	defer d.DestroySurface(surf)
	log.Info("created window surface", "config", cfg.ID())

	ctx, err := d.CreateContext(cfg, nil, attribs)
	if err != nil {
		return fmt.Errorf("CreateContext: %w", err)
	}
	defer d.DestroyContext(ctx)
	log.Info("created context")

	if err := d.MakeCurrent(surf, surf, ctx); err != nil {
		return fmt.Errorf("MakeCurrent: %w", err)
	}
	defer d.MakeCurrent(nil, nil, nil)

	w, err := d.QuerySurface(surf, egl.Width)
	if err != nil {
		return fmt.Errorf("QuerySurface: %w", err)
	}
	h, err := d.QuerySurface(surf, egl.Height)
	if err != nil {
		return fmt.Errorf("QuerySurface: %w", err)
	}
	log.Info("made context current", "width", w, "height", h)

	if addr := egl.GetProcAddress("glGetString"); addr != 0 {
		var glGetString func(name uint32) string
		purego.RegisterFunc(&glGetString, addr)
		fmt.Printf("\nGL_VENDOR:   %s\n", glGetString(_GL_VENDOR))
		fmt.Printf("GL_RENDERER: %s\n", glGetString(_GL_RENDERER))
		fmt.Printf("GL_VERSION:  %s\n", glGetString(_GL_VERSION))
	}

	if err := d.SwapInterval(1); err != nil {
		log.Warn("SwapInterval failed", "error", err)
	}
	if err := d.SwapBuffers(surf); err != nil {
		return fmt.Errorf("SwapBuffers: %w", err)
	}
	log.Info("swapped buffers")
	return nil
}
