// SPDX-License-Identifier: Unlicense OR MIT

//go:build windows

package wgl

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	syscall "golang.org/x/sys/windows"
)

type wndClassEx struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CnClsExtra    int32
	CbWndExtra    int32
	HInstance     syscall.Handle
	HIcon         syscall.Handle
	HCursor       syscall.Handle
	HbrBackground syscall.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       syscall.Handle
}

type rect struct {
	Left, Top, Right, Bottom int32
}

const _CS_OWNDC = 0x0020

var (
	kernel32          = syscall.NewLazySystemDLL("kernel32.dll")
	_GetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	user32            = syscall.NewLazySystemDLL("user32.dll")
	_CreateWindowEx   = user32.NewProc("CreateWindowExW")
	_DefWindowProc    = user32.NewProc("DefWindowProcW")
	_DestroyWindow    = user32.NewProc("DestroyWindow")
	_GetClientRect    = user32.NewProc("GetClientRect")
	_GetDC            = user32.NewProc("GetDC")
	_RegisterClassExW = user32.NewProc("RegisterClassExW")
	_ReleaseDC        = user32.NewProc("ReleaseDC")
	_UnregisterClass  = user32.NewProc("UnregisterClassW")

	gdi32                = syscall.NewLazySystemDLL("gdi32.dll")
	_ChoosePixelFormat   = gdi32.NewProc("ChoosePixelFormat")
	_DescribePixelFormat = gdi32.NewProc("DescribePixelFormat")
	_SetPixelFormat      = gdi32.NewProc("SetPixelFormat")
	_SwapBuffers         = gdi32.NewProc("SwapBuffers")

	opengl32           = syscall.NewLazySystemDLL("opengl32.dll")
	_wglCreateContext  = opengl32.NewProc("wglCreateContext")
	_wglDeleteContext  = opengl32.NewProc("wglDeleteContext")
	_wglGetProcAddress = opengl32.NewProc("wglGetProcAddress")
	_wglMakeCurrent    = opengl32.NewProc("wglMakeCurrent")
)

// extensions are the WGL entry points only reachable through
// wglGetProcAddress with a current context.
type extensions struct {
	getPixelFormatAttribiv func(hdc uintptr, format, layer int32, n uint32, attribs, values *int32) int32
	choosePixelFormat      func(hdc uintptr, iattribs *int32, fattribs *float32, max uint32, formats *int32, n *uint32) int32
	createContextAttribs   func(hdc, share uintptr, attribs *int32) uintptr
	// Optional, WGL_EXT_swap_control.
	swapInterval func(interval int32) int32
}

type gateway struct {
	mu      sync.Mutex
	class   uint16
	inst    syscall.Handle
	windows int

	ext    extensions
	loaded bool
}

var className = syscall.StringToUTF16Ptr("EGLWGLWindow")

// NewGateway returns the WGL gateway of the running process.
func NewGateway() Gateway {
	return new(gateway)
}

func (g *gateway) registerClass() error {
	h, _, err := _GetModuleHandleW.Call(uintptr(0))
	if h == 0 {
		return fmt.Errorf("GetModuleHandleW failed: %v", err)
	}
	if err := _DefWindowProc.Find(); err != nil {
		return err
	}
	wcls := wndClassEx{
		CbSize:        uint32(unsafe.Sizeof(wndClassEx{})),
		Style:         _CS_OWNDC,
		LpfnWndProc:   _DefWindowProc.Addr(),
		HInstance:     syscall.Handle(h),
		LpszClassName: className,
	}
	a, _, err := _RegisterClassExW.Call(uintptr(unsafe.Pointer(&wcls)))
	if a == 0 {
		return fmt.Errorf("RegisterClassExW failed: %v", err)
	}
	g.class = uint16(a)
	g.inst = syscall.Handle(h)
	return nil
}

func (g *gateway) CreateWindow() (HWND, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.class == 0 {
		if err := g.registerClass(); err != nil {
			return nilHWND, err
		}
	}
	title := syscall.StringToUTF16Ptr("")
	hwnd, _, err := _CreateWindowEx.Call(
		0,
		uintptr(g.class),
		uintptr(unsafe.Pointer(title)),
		0,
		0, 0, 0, 0,
		0,
		0,
		uintptr(g.inst),
		0)
	if hwnd == 0 {
		return nilHWND, fmt.Errorf("CreateWindowEx failed: %v", err)
	}
	g.windows++
	return HWND(hwnd), nil
}

func (g *gateway) DestroyWindow(w HWND) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_DestroyWindow.Call(uintptr(w))
	g.windows--
	if g.windows == 0 && g.class != 0 {
		_UnregisterClass.Call(uintptr(g.class), uintptr(g.inst))
		g.class = 0
	}
}

func (g *gateway) WindowSize(w HWND) (int, int, error) {
	var r rect
	ok, _, err := _GetClientRect.Call(uintptr(w), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return 0, 0, fmt.Errorf("GetClientRect failed: %v", err)
	}
	return int(r.Right - r.Left), int(r.Bottom - r.Top), nil
}

func (g *gateway) GetDC(w HWND) (HDC, error) {
	// GetDC(NULL) is the screen; never hand that out for a window.
	if w == nilHWND {
		return nilHDC, errors.New("GetDC: nil window")
	}
	hdc, _, err := _GetDC.Call(uintptr(w))
	if hdc == 0 {
		return nilHDC, fmt.Errorf("GetDC failed: %v", err)
	}
	return HDC(hdc), nil
}

func (g *gateway) ReleaseDC(w HWND, hdc HDC) {
	_ReleaseDC.Call(uintptr(w), uintptr(hdc))
}

func (g *gateway) SetLegacyPixelFormat(hdc HDC) error {
	pfd := PixelFormatDescriptor{
		Size:        uint16(unsafe.Sizeof(PixelFormatDescriptor{})),
		Version:     1,
		Flags:       PFD_DRAW_TO_WINDOW | PFD_SUPPORT_OPENGL | PFD_DOUBLEBUFFER,
		PixelType:   PFD_TYPE_RGBA,
		ColorBits:   32,
		DepthBits:   24,
		StencilBits: 8,
		LayerType:   PFD_MAIN_PLANE,
	}
	f, _, err := _ChoosePixelFormat.Call(uintptr(hdc), uintptr(unsafe.Pointer(&pfd)))
	if f == 0 {
		return fmt.Errorf("ChoosePixelFormat failed: %v", err)
	}
	return g.SetPixelFormat(hdc, int(f), &pfd)
}

func (g *gateway) CreateLegacyContext(hdc HDC) (HGLRC, error) {
	ctx, _, err := _wglCreateContext.Call(uintptr(hdc))
	if ctx == 0 {
		return nilHGLRC, fmt.Errorf("wglCreateContext failed: %v", err)
	}
	return HGLRC(ctx), nil
}

func (g *gateway) LoadExtensions() error {
	if g.loaded {
		return nil
	}
	procs := map[string]any{
		"wglGetPixelFormatAttribivARB": &g.ext.getPixelFormatAttribiv,
		"wglChoosePixelFormatARB":      &g.ext.choosePixelFormat,
		"wglCreateContextAttribsARB":   &g.ext.createContextAttribs,
	}
	for name, fn := range procs {
		addr := wglGetProcAddress(name)
		if addr == 0 {
			return fmt.Errorf("failed to resolve %s", name)
		}
		purego.RegisterFunc(fn, addr)
	}
	if addr := wglGetProcAddress("wglSwapIntervalEXT"); addr != 0 {
		purego.RegisterFunc(&g.ext.swapInterval, addr)
	}
	g.loaded = true
	return nil
}

var errNotLoaded = errors.New("wgl: extensions not loaded")

func (g *gateway) PixelFormatAttrib(hdc HDC, format int, attrib int32) (int32, error) {
	if g.ext.getPixelFormatAttribiv == nil {
		return 0, errNotLoaded
	}
	var v int32
	if g.ext.getPixelFormatAttribiv(uintptr(hdc), int32(format), 0, 1, &attrib, &v) == 0 {
		return 0, fmt.Errorf("wglGetPixelFormatAttribivARB(%d, 0x%x) failed", format, attrib)
	}
	return v, nil
}

func (g *gateway) ChoosePixelFormat(hdc HDC, attribs []int32, max int) ([]int, error) {
	if g.ext.choosePixelFormat == nil {
		return nil, errNotLoaded
	}
	if len(attribs) == 0 || attribs[len(attribs)-1] != 0 {
		return nil, errors.New("wglChoosePixelFormatARB: attribute list not terminated")
	}
	if max < 1 {
		return nil, nil
	}
	formats := make([]int32, max)
	var n uint32
	if g.ext.choosePixelFormat(uintptr(hdc), &attribs[0], nil, uint32(max), &formats[0], &n) == 0 {
		return nil, errors.New("wglChoosePixelFormatARB failed")
	}
	if int(n) < max {
		formats = formats[:n]
	}
	res := make([]int, len(formats))
	for i, f := range formats {
		res[i] = int(f)
	}
	return res, nil
}

func (g *gateway) DescribePixelFormat(hdc HDC, format int) (PixelFormatDescriptor, error) {
	var pfd PixelFormatDescriptor
	r, _, err := _DescribePixelFormat.Call(uintptr(hdc), uintptr(format), unsafe.Sizeof(pfd), uintptr(unsafe.Pointer(&pfd)))
	if r == 0 {
		return pfd, fmt.Errorf("DescribePixelFormat failed: %v", err)
	}
	return pfd, nil
}

func (g *gateway) SetPixelFormat(hdc HDC, format int, pfd *PixelFormatDescriptor) error {
	r, _, err := _SetPixelFormat.Call(uintptr(hdc), uintptr(format), uintptr(unsafe.Pointer(pfd)))
	if r == 0 {
		return fmt.Errorf("SetPixelFormat failed: %v", err)
	}
	return nil
}

func (g *gateway) CreateContext(hdc HDC, share HGLRC, attribs []int32) (HGLRC, error) {
	if g.ext.createContextAttribs == nil {
		return nilHGLRC, errNotLoaded
	}
	var a *int32
	if len(attribs) > 0 {
		a = &attribs[0]
	}
	ctx := g.ext.createContextAttribs(uintptr(hdc), uintptr(share), a)
	if ctx == 0 {
		return nilHGLRC, errors.New("wglCreateContextAttribsARB failed")
	}
	return HGLRC(ctx), nil
}

func (g *gateway) DeleteContext(ctx HGLRC) error {
	r, _, err := _wglDeleteContext.Call(uintptr(ctx))
	if r == 0 {
		return fmt.Errorf("wglDeleteContext failed: %v", err)
	}
	return nil
}

func (g *gateway) MakeCurrent(hdc HDC, ctx HGLRC) error {
	r, _, err := _wglMakeCurrent.Call(uintptr(hdc), uintptr(ctx))
	if r == 0 {
		return fmt.Errorf("wglMakeCurrent failed: %v", err)
	}
	return nil
}

func (g *gateway) SwapBuffers(hdc HDC) error {
	r, _, err := _SwapBuffers.Call(uintptr(hdc))
	if r == 0 {
		return fmt.Errorf("SwapBuffers failed: %v", err)
	}
	return nil
}

func (g *gateway) SwapInterval(interval int) error {
	if g.ext.swapInterval == nil {
		return errors.New("wglSwapIntervalEXT not available")
	}
	if g.ext.swapInterval(int32(interval)) == 0 {
		return errors.New("wglSwapIntervalEXT failed")
	}
	return nil
}

func (g *gateway) GetProcAddress(name string) uintptr {
	if addr := wglGetProcAddress(name); addr != 0 {
		return addr
	}
	// OpenGL 1.1 entry points are only exported by opengl32.dll itself.
	p := opengl32.NewProc(name)
	if p.Find() != nil {
		return 0
	}
	return p.Addr()
}

func wglGetProcAddress(name string) uintptr {
	cname, err := syscall.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	addr, _, _ := _wglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	// Some drivers return small sentinel values instead of NULL.
	switch addr {
	case 1, 2, 3, ^uintptr(0):
		return 0
	}
	return addr
}
