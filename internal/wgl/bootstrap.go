// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"errors"
	"fmt"
	"sync"
)

// ErrClosed is returned by Bootstrap.Init after Close.
var ErrClosed = errors.New("wgl: bootstrap already torn down")

type bootState uint8

const (
	bootFresh bootState = iota
	bootReady
	bootClosed
)

// Bootstrap owns the throwaway window, device context and legacy
// rendering context needed to resolve the WGL extension entry points.
// It is created lazily by Init and torn down exactly once by Close; a
// closed Bootstrap cannot be revived.
type Bootstrap struct {
	gw Gateway

	mu    sync.Mutex
	state bootState
	hwnd  HWND
	hdc   HDC
	ctx   HGLRC
}

func NewBootstrap(gw Gateway) *Bootstrap {
	return &Bootstrap{gw: gw}
}

// Gateway returns the gateway the bootstrap drives.
func (b *Bootstrap) Gateway() Gateway {
	return b.gw
}

// Init creates the dummy window, device and context and loads the
// extensions, unless that already happened. It returns the dummy device
// context, which carries a pixel format and a current context.
func (b *Bootstrap) Init() (HDC, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case bootReady:
		return b.hdc, nil
	case bootClosed:
		return nilHDC, ErrClosed
	}
	if b.hdc != nilHDC || b.ctx != nilHGLRC {
		return nilHDC, errors.New("wgl: bootstrap partially initialized")
	}
	hwnd, err := b.gw.CreateWindow()
	if err != nil {
		return nilHDC, err
	}
	hdc, err := b.gw.GetDC(hwnd)
	if err != nil {
		b.gw.DestroyWindow(hwnd)
		return nilHDC, err
	}
	if err := b.gw.SetLegacyPixelFormat(hdc); err != nil {
		b.gw.ReleaseDC(hwnd, hdc)
		b.gw.DestroyWindow(hwnd)
		return nilHDC, err
	}
	ctx, err := b.gw.CreateLegacyContext(hdc)
	if err != nil {
		b.gw.ReleaseDC(hwnd, hdc)
		b.gw.DestroyWindow(hwnd)
		return nilHDC, err
	}
	if err := b.gw.MakeCurrent(hdc, ctx); err != nil {
		b.gw.DeleteContext(ctx)
		b.gw.ReleaseDC(hwnd, hdc)
		b.gw.DestroyWindow(hwnd)
		return nilHDC, err
	}
	if err := b.gw.LoadExtensions(); err != nil {
		b.gw.MakeCurrent(nilHDC, nilHGLRC)
		b.gw.DeleteContext(ctx)
		b.gw.ReleaseDC(hwnd, hdc)
		b.gw.DestroyWindow(hwnd)
		return nilHDC, fmt.Errorf("wgl: loading extensions: %w", err)
	}
	b.hwnd, b.hdc, b.ctx = hwnd, hdc, ctx
	b.state = bootReady
	return hdc, nil
}

// Ready reports whether Init has completed and Close has not been called.
func (b *Bootstrap) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == bootReady
}

// Close releases the dummy handles. Closing a fresh Bootstrap only marks
// it closed.
func (b *Bootstrap) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == bootClosed {
		return ErrClosed
	}
	var err error
	if b.state == bootReady {
		b.gw.MakeCurrent(nilHDC, nilHGLRC)
		if b.ctx != nilHGLRC {
			err = b.gw.DeleteContext(b.ctx)
		}
		if b.hdc != nilHDC {
			b.gw.ReleaseDC(b.hwnd, b.hdc)
		}
		if b.hwnd != nilHWND {
			b.gw.DestroyWindow(b.hwnd)
		}
	}
	b.hwnd, b.hdc, b.ctx = nilHWND, nilHDC, nilHGLRC
	b.state = bootClosed
	return err
}
