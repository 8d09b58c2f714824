// SPDX-License-Identifier: Unlicense OR MIT

// Package wgltest provides a scripted wgl.Gateway for tests.
package wgltest

import (
	"errors"
	"fmt"

	"eglwgl.org/internal/wgl"
)

// Format is the attribute table of one pixel format. Attributes missing
// from the table fail to query.
type Format map[int32]int32

// RGBA returns a window capable, OpenGL capable RGBA format with the
// given sizes. Bind-to-texture attributes are left out.
func RGBA(color, red, green, blue, alpha, depth, stencil int32, double bool) Format {
	db := int32(0)
	if double {
		db = 1
	}
	return Format{
		wgl.SUPPORT_OPENGL_ARB:     1,
		wgl.PIXEL_TYPE_ARB:         wgl.TYPE_RGBA_ARB,
		wgl.DRAW_TO_WINDOW_ARB:     1,
		wgl.DRAW_TO_BITMAP_ARB:     0,
		wgl.DOUBLE_BUFFER_ARB:      db,
		wgl.COLOR_BITS_ARB:         color,
		wgl.RED_BITS_ARB:           red,
		wgl.GREEN_BITS_ARB:         green,
		wgl.BLUE_BITS_ARB:          blue,
		wgl.ALPHA_BITS_ARB:         alpha,
		wgl.DEPTH_BITS_ARB:         depth,
		wgl.STENCIL_BITS_ARB:       stencil,
		wgl.SAMPLE_BUFFERS_ARB:     0,
		wgl.SAMPLES_ARB:            0,
		wgl.MAX_PBUFFER_PIXELS_ARB: 0,
		wgl.MAX_PBUFFER_WIDTH_ARB:  0,
		wgl.MAX_PBUFFER_HEIGHT_ARB: 0,
		wgl.TRANSPARENT_ARB:        0,
	}
}

// With returns a copy of f with the given attribute set.
func (f Format) With(attrib, val int32) Format {
	c := make(Format, len(f)+1)
	for k, v := range f {
		c[k] = v
	}
	c[attrib] = val
	return c
}

// Without returns a copy of f lacking attrib.
func (f Format) Without(attrib int32) Format {
	c := f.With(attrib, 0)
	delete(c, attrib)
	return c
}

// ErrInjected is the error returned for operations listed in Fake.Fail
// with a nil error.
var ErrInjected = errors.New("wgltest: injected failure")

// Fake is a wgl.Gateway over a table of pixel formats. It records what
// it is asked to do.
type Fake struct {
	// Formats holds pixel formats 1..len(Formats).
	Formats []Format
	// Fail makes the named Gateway method fail.
	Fail map[string]error
	// FailQuery makes single PixelFormatAttrib calls fail.
	FailQuery func(format int, attrib int32) bool
	// Choose, if set, replaces the default pixel format matching.
	Choose func(attribs []int32) []int

	// Calls lists the Gateway methods called, in order.
	Calls []string
	// Chosen records the attribute arrays passed to ChoosePixelFormat.
	Chosen [][]int32
	// Released counts ReleaseDC calls.
	Released int
	// Contexts maps live contexts to their creation attributes.
	Contexts map[wgl.HGLRC][]int32
	// Shared maps contexts to the context they share with.
	Shared map[wgl.HGLRC]wgl.HGLRC
	// CurrentDC and CurrentContext are the last MakeCurrent arguments.
	CurrentDC      wgl.HDC
	CurrentContext wgl.HGLRC
	// Interval is the last swap interval.
	Interval int
	// Swaps counts SwapBuffers calls per device.
	Swaps map[wgl.HDC]int
	// PixelFormats maps devices to the format set on them.
	PixelFormats map[wgl.HDC]int
	// Procs are the addresses GetProcAddress resolves.
	Procs map[string]uintptr

	windows map[wgl.HWND]bool
	dcs     map[wgl.HDC]wgl.HWND
	next    uintptr
}

func (f *Fake) handle() uintptr {
	f.next += 0x10
	return f.next
}

func (f *Fake) call(name string) error {
	f.Calls = append(f.Calls, name)
	if err, ok := f.Fail[name]; ok {
		if err == nil {
			err = ErrInjected
		}
		return err
	}
	return nil
}

// Called reports whether the named method was called.
func (f *Fake) Called(name string) bool {
	for _, c := range f.Calls {
		if c == name {
			return true
		}
	}
	return false
}

// AddWindow makes a window handle known to the fake, as if the
// application created it.
func (f *Fake) AddWindow() wgl.HWND {
	if f.windows == nil {
		f.windows = make(map[wgl.HWND]bool)
	}
	w := wgl.HWND(f.handle())
	f.windows[w] = true
	return w
}

// Windows returns the number of live windows.
func (f *Fake) Windows() int {
	return len(f.windows)
}

// OutstandingDCs returns the number of device contexts not yet released.
func (f *Fake) OutstandingDCs() int {
	return len(f.dcs)
}

func (f *Fake) CreateWindow() (wgl.HWND, error) {
	if err := f.call("CreateWindow"); err != nil {
		return 0, err
	}
	return f.AddWindow(), nil
}

func (f *Fake) DestroyWindow(w wgl.HWND) {
	f.Calls = append(f.Calls, "DestroyWindow")
	delete(f.windows, w)
}

func (f *Fake) WindowSize(w wgl.HWND) (int, int, error) {
	if err := f.call("WindowSize"); err != nil {
		return 0, 0, err
	}
	if !f.windows[w] {
		return 0, 0, fmt.Errorf("WindowSize: unknown window %#x", w)
	}
	return 640, 480, nil
}

func (f *Fake) GetDC(w wgl.HWND) (wgl.HDC, error) {
	if err := f.call("GetDC"); err != nil {
		return 0, err
	}
	if !f.windows[w] {
		return 0, fmt.Errorf("GetDC: unknown window %#x", w)
	}
	if f.dcs == nil {
		f.dcs = make(map[wgl.HDC]wgl.HWND)
	}
	hdc := wgl.HDC(f.handle())
	f.dcs[hdc] = w
	return hdc, nil
}

func (f *Fake) ReleaseDC(w wgl.HWND, hdc wgl.HDC) {
	f.Calls = append(f.Calls, "ReleaseDC")
	f.Released++
	delete(f.dcs, hdc)
}

func (f *Fake) SetLegacyPixelFormat(hdc wgl.HDC) error {
	return f.call("SetLegacyPixelFormat")
}

func (f *Fake) CreateLegacyContext(hdc wgl.HDC) (wgl.HGLRC, error) {
	if err := f.call("CreateLegacyContext"); err != nil {
		return 0, err
	}
	return f.newContext(nil, 0), nil
}

func (f *Fake) LoadExtensions() error {
	return f.call("LoadExtensions")
}

func (f *Fake) PixelFormatAttrib(hdc wgl.HDC, format int, attrib int32) (int32, error) {
	if f.FailQuery != nil && f.FailQuery(format, attrib) {
		return 0, ErrInjected
	}
	if attrib == wgl.NUMBER_PIXEL_FORMATS_ARB {
		return int32(len(f.Formats)), nil
	}
	if format < 1 || format > len(f.Formats) {
		return 0, fmt.Errorf("no pixel format %d", format)
	}
	v, ok := f.Formats[format-1][attrib]
	if !ok {
		return 0, fmt.Errorf("pixel format %d has no attribute 0x%x", format, attrib)
	}
	return v, nil
}

// exactAttribs must match exactly; every other requested attribute is
// a minimum.
var exactAttribs = map[int32]bool{
	wgl.DRAW_TO_WINDOW_ARB: true,
	wgl.SUPPORT_OPENGL_ARB: true,
	wgl.PIXEL_TYPE_ARB:     true,
	wgl.DOUBLE_BUFFER_ARB:  true,
}

func (f *Fake) match(attribs []int32) []int {
	var res []int
formats:
	for i, fm := range f.Formats {
		for j := 0; j+1 < len(attribs) && attribs[j] != 0; j += 2 {
			k, v := attribs[j], attribs[j+1]
			if exactAttribs[k] && fm[k] != v || !exactAttribs[k] && fm[k] < v {
				continue formats
			}
		}
		res = append(res, i+1)
	}
	return res
}

func (f *Fake) ChoosePixelFormat(hdc wgl.HDC, attribs []int32, max int) ([]int, error) {
	f.Chosen = append(f.Chosen, append([]int32(nil), attribs...))
	if err := f.call("ChoosePixelFormat"); err != nil {
		return nil, err
	}
	var res []int
	if f.Choose != nil {
		res = f.Choose(attribs)
	} else {
		res = f.match(attribs)
	}
	if len(res) > max {
		res = res[:max]
	}
	return res, nil
}

func (f *Fake) DescribePixelFormat(hdc wgl.HDC, format int) (wgl.PixelFormatDescriptor, error) {
	if err := f.call("DescribePixelFormat"); err != nil {
		return wgl.PixelFormatDescriptor{}, err
	}
	if format < 1 || format > len(f.Formats) {
		return wgl.PixelFormatDescriptor{}, fmt.Errorf("no pixel format %d", format)
	}
	fm := f.Formats[format-1]
	pfd := wgl.PixelFormatDescriptor{
		Version:     1,
		ColorBits:   uint8(fm[wgl.COLOR_BITS_ARB]),
		RedBits:     uint8(fm[wgl.RED_BITS_ARB]),
		GreenBits:   uint8(fm[wgl.GREEN_BITS_ARB]),
		BlueBits:    uint8(fm[wgl.BLUE_BITS_ARB]),
		AlphaBits:   uint8(fm[wgl.ALPHA_BITS_ARB]),
		DepthBits:   uint8(fm[wgl.DEPTH_BITS_ARB]),
		StencilBits: uint8(fm[wgl.STENCIL_BITS_ARB]),
	}
	if fm[wgl.DOUBLE_BUFFER_ARB] != 0 {
		pfd.Flags |= wgl.PFD_DOUBLEBUFFER
	}
	if fm[wgl.DRAW_TO_WINDOW_ARB] != 0 {
		pfd.Flags |= wgl.PFD_DRAW_TO_WINDOW
	}
	if fm[wgl.SUPPORT_OPENGL_ARB] != 0 {
		pfd.Flags |= wgl.PFD_SUPPORT_OPENGL
	}
	return pfd, nil
}

func (f *Fake) SetPixelFormat(hdc wgl.HDC, format int, pfd *wgl.PixelFormatDescriptor) error {
	if err := f.call("SetPixelFormat"); err != nil {
		return err
	}
	if f.PixelFormats == nil {
		f.PixelFormats = make(map[wgl.HDC]int)
	}
	f.PixelFormats[hdc] = format
	return nil
}

func (f *Fake) newContext(attribs []int32, share wgl.HGLRC) wgl.HGLRC {
	if f.Contexts == nil {
		f.Contexts = make(map[wgl.HGLRC][]int32)
		f.Shared = make(map[wgl.HGLRC]wgl.HGLRC)
	}
	ctx := wgl.HGLRC(f.handle())
	f.Contexts[ctx] = append([]int32(nil), attribs...)
	if share != 0 {
		f.Shared[ctx] = share
	}
	return ctx
}

func (f *Fake) CreateContext(hdc wgl.HDC, share wgl.HGLRC, attribs []int32) (wgl.HGLRC, error) {
	if err := f.call("CreateContext"); err != nil {
		return 0, err
	}
	if _, ok := f.dcs[hdc]; !ok {
		return 0, fmt.Errorf("CreateContext: unknown device %#x", hdc)
	}
	if _, ok := f.PixelFormats[hdc]; !ok {
		return 0, errors.New("CreateContext: device has no pixel format")
	}
	if share != 0 {
		if _, ok := f.Contexts[share]; !ok {
			return 0, fmt.Errorf("CreateContext: unknown share context %#x", share)
		}
	}
	return f.newContext(attribs, share), nil
}

func (f *Fake) DeleteContext(ctx wgl.HGLRC) error {
	if err := f.call("DeleteContext"); err != nil {
		return err
	}
	if _, ok := f.Contexts[ctx]; !ok {
		return fmt.Errorf("DeleteContext: unknown context %#x", ctx)
	}
	delete(f.Contexts, ctx)
	delete(f.Shared, ctx)
	return nil
}

func (f *Fake) MakeCurrent(hdc wgl.HDC, ctx wgl.HGLRC) error {
	if err := f.call("MakeCurrent"); err != nil {
		return err
	}
	f.CurrentDC, f.CurrentContext = hdc, ctx
	return nil
}

func (f *Fake) SwapBuffers(hdc wgl.HDC) error {
	if err := f.call("SwapBuffers"); err != nil {
		return err
	}
	if f.Swaps == nil {
		f.Swaps = make(map[wgl.HDC]int)
	}
	f.Swaps[hdc]++
	return nil
}

func (f *Fake) SwapInterval(interval int) error {
	if err := f.call("SwapInterval"); err != nil {
		return err
	}
	f.Interval = interval
	return nil
}

func (f *Fake) GetProcAddress(name string) uintptr {
	f.Calls = append(f.Calls, "GetProcAddress")
	return f.Procs[name]
}

var _ wgl.Gateway = (*Fake)(nil)
