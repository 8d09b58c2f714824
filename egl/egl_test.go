// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"eglwgl.org/internal/wgl"
	"eglwgl.org/internal/wgltest"
)

var (
	format8888   = wgltest.RGBA(32, 8, 8, 8, 8, 24, 8, true)
	format565    = wgltest.RGBA(16, 5, 6, 5, 0, 16, 0, true)
	// formatSingle is a single buffered window format.
	formatSingle = wgltest.RGBA(32, 8, 8, 8, 8, 24, 8, false)
)

func newTestDisplay(t *testing.T, formats ...wgltest.Format) (*Display, *wgltest.Fake) {
	t.Helper()
	if len(formats) == 0 {
		formats = []wgltest.Format{format8888, format565}
	}
	f := &wgltest.Fake{Formats: formats}
	d := newDisplay(f, wgl.NewBootstrap(f))
	if _, _, err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	return d, f
}

func expectCode(t *testing.T, err error, code Error) {
	t.Helper()
	if !errors.Is(err, code) {
		t.Errorf("got %v, expected %v", err, code)
	}
}

// pairs returns the attributes of a zero terminated native array.
func pairs(a []int32) map[int32]int32 {
	m := make(map[int32]int32)
	for i := 0; i+1 < len(a) && a[i] != 0; i += 2 {
		m[a[i]] = a[i+1]
	}
	return m
}

func config(t *testing.T, d *Display, id Int) *Config {
	t.Helper()
	cfgs, err := d.ChooseConfig([]Int{ConfigID, id, None}, 1)
	if err != nil || len(cfgs) != 1 {
		t.Fatalf("config %d: %v, %v", id, cfgs, err)
	}
	return cfgs[0]
}

func TestInitialize(t *testing.T) {
	d, f := newTestDisplay(t)
	n, err := d.NumConfigs()
	if err != nil || n != 2 {
		t.Errorf("NumConfigs() = %d, %v", n, err)
	}
	calls := len(f.Calls)
	major, minor, err := d.Initialize()
	if err != nil || major != 1 || minor != 5 {
		t.Errorf("Initialize() = %d, %d, %v", major, minor, err)
	}
	if len(f.Calls) != calls {
		t.Errorf("second Initialize called %v", f.Calls[calls:])
	}
	for name, exp := range map[Int]string{
		Vendor:     "eglwgl",
		Version:    "1.5 WGL",
		Extensions: "EGL_KHR_create_context EGL_KHR_gl_colorspace",
		ClientAPIs: "OpenGL",
	} {
		if s, err := d.QueryString(name); err != nil || s != exp {
			t.Errorf("QueryString(%#x) = %q, %v, expected %q", name, s, err, exp)
		}
	}
	_, err = d.QueryString(Width)
	expectCode(t, err, BadParameter)
}

func TestInitializeFailure(t *testing.T) {
	tests := []struct {
		name string
		fake *wgltest.Fake
	}{
		{"bootstrap", &wgltest.Fake{Fail: map[string]error{"LoadExtensions": nil}}},
		{"enumeration", &wgltest.Fake{
			Formats:   []wgltest.Format{format8888},
			FailQuery: func(_ int, a int32) bool { return a == wgl.STENCIL_BITS_ARB },
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := newDisplay(test.fake, wgl.NewBootstrap(test.fake))
			_, _, err := d.Initialize()
			expectCode(t, err, NotInitialized)
			if code := d.GetError(); code != NotInitialized {
				t.Errorf("GetError() = %v", code)
			}
			_, err = d.GetConfigs(-1)
			expectCode(t, err, NotInitialized)
		})
	}
}

func TestGetError(t *testing.T) {
	d, _ := newTestDisplay(t)
	if code := d.GetError(); code != Success {
		t.Errorf("got %v, expected %v", code, Success)
	}
	d.GetConfigAttrib(nil, RedSize)
	if code := d.GetError(); code != BadConfig {
		t.Errorf("got %v, expected %v", code, BadConfig)
	}
	if code := d.GetError(); code != Success {
		t.Errorf("error not reset: %v", code)
	}
	var nilDisplay *Display
	_, _, err := nilDisplay.Initialize()
	expectCode(t, err, BadDisplay)
}

func TestConfigs(t *testing.T) {
	d, _ := newTestDisplay(t)
	cfgs, err := d.GetConfigs(-1)
	if err != nil || len(cfgs) != 2 {
		t.Fatalf("GetConfigs(-1) = %v, %v", cfgs, err)
	}
	if cfgs[0].ID() != 1 || cfgs[1].ID() != 2 {
		t.Errorf("got ids %d, %d", cfgs[0].ID(), cfgs[1].ID())
	}
	if first, _ := d.GetConfigs(1); len(first) != 1 || first[0] != cfgs[0] {
		t.Errorf("GetConfigs(1) = %v", first)
	}
	v, err := d.GetConfigAttrib(cfgs[1], GreenSize)
	if err != nil || v != 6 {
		t.Errorf("GetConfigAttrib(GreenSize) = %d, %v", v, err)
	}
	_, err = d.GetConfigAttrib(cfgs[1], RenderBuffer)
	expectCode(t, err, BadAttribute)

	other, _ := newTestDisplay(t)
	foreign, _ := other.GetConfigs(1)
	_, err = d.GetConfigAttrib(foreign[0], RedSize)
	expectCode(t, err, BadConfig)

	chosen, err := d.ChooseConfig([]Int{AlphaSize, 1, None}, -1)
	if err != nil || len(chosen) != 1 || chosen[0] != cfgs[0] {
		t.Errorf("ChooseConfig(alpha) = %v, %v", chosen, err)
	}
	_, err = d.ChooseConfig([]Int{Height, 1, None}, -1)
	expectCode(t, err, BadAttribute)
}

func TestWindowSurfaceRequestsConfig(t *testing.T) {
	d, f := newTestDisplay(t)
	for _, id := range []Int{1, 2} {
		cfg := config(t, d, id)
		s, err := d.CreateWindowSurface(cfg, NativeWindowType(f.AddWindow()), nil)
		if err != nil {
			t.Fatal(err)
		}
		req := pairs(f.Chosen[len(f.Chosen)-1])
		for _, a := range []struct {
			native int32
			egl    Int
		}{
			{wgl.COLOR_BITS_ARB, BufferSize},
			{wgl.RED_BITS_ARB, RedSize},
			{wgl.GREEN_BITS_ARB, GreenSize},
			{wgl.BLUE_BITS_ARB, BlueSize},
			{wgl.ALPHA_BITS_ARB, AlphaSize},
			{wgl.DEPTH_BITS_ARB, DepthSize},
			{wgl.STENCIL_BITS_ARB, StencilSize},
			{wgl.SAMPLE_BUFFERS_ARB, SampleBuffers},
			{wgl.SAMPLES_ARB, Samples},
		} {
			exp, _ := d.GetConfigAttrib(cfg, a.egl)
			if got := req[a.native]; got != exp {
				t.Errorf("config %d: requested 0x%x = %d, expected %d", id, a.native, got, exp)
			}
		}
		if req[wgl.DRAW_TO_WINDOW_ARB] != wgl.GL_TRUE || req[wgl.SUPPORT_OPENGL_ARB] != wgl.GL_TRUE {
			t.Errorf("config %d: request is not a window OpenGL format", id)
		}
		if got, _ := d.QuerySurface(s, ConfigID); got != id {
			t.Errorf("QuerySurface(ConfigID) = %d, expected %d", got, id)
		}
	}
}

func TestWindowSurfaceSRGB(t *testing.T) {
	d, f := newTestDisplay(t)
	dcs := f.OutstandingDCs()
	_, err := d.CreateWindowSurface(config(t, d, 1), NativeWindowType(f.AddWindow()), []Int{GLColorspace, GLColorspaceSRGB, None})
	expectCode(t, err, BadMatch)
	if n := f.OutstandingDCs(); n != dcs {
		t.Errorf("%d device contexts leaked", n-dcs)
	}
	if len(f.Chosen) != 0 {
		t.Error("pixel format negotiated for a rejected request")
	}
}

func TestWindowSurfaceBadNativeWindow(t *testing.T) {
	d, f := newTestDisplay(t)
	_, err := d.CreateWindowSurface(config(t, d, 1), 0xdead, nil)
	expectCode(t, err, BadNativeWindow)
	if code := d.GetError(); code != BadNativeWindow {
		t.Errorf("GetError() = %v", code)
	}
	if f.Called("ChoosePixelFormat") {
		t.Error("pixel format negotiated without a device context")
	}
}

func TestWindowSurfaceNegotiationFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *wgltest.Fake)
	}{
		{"no match", func(f *wgltest.Fake) { f.Choose = func([]int32) []int { return nil } }},
		{"choose", func(f *wgltest.Fake) { f.Fail = map[string]error{"ChoosePixelFormat": nil} }},
		{"describe", func(f *wgltest.Fake) { f.Fail = map[string]error{"DescribePixelFormat": nil} }},
		{"set", func(f *wgltest.Fake) { f.Fail = map[string]error{"SetPixelFormat": nil} }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, f := newTestDisplay(t)
			cfg := config(t, d, 1)
			test.setup(f)
			released, dcs := f.Released, f.OutstandingDCs()
			_, err := d.CreateWindowSurface(cfg, NativeWindowType(f.AddWindow()), nil)
			expectCode(t, err, BadMatch)
			if n := f.Released - released; n != 1 {
				t.Errorf("device context released %d times, expected once", n)
			}
			if f.OutstandingDCs() != dcs {
				t.Error("device context leaked")
			}
		})
	}
}

func TestWindowSurfaceRenderBuffer(t *testing.T) {
	d, f := newTestDisplay(t, formatSingle)
	s, err := d.CreateWindowSurface(config(t, d, 1), NativeWindowType(f.AddWindow()), []Int{
		RenderBuffer, SingleBuffer,
		GLColorspace, GLColorspaceLinear,
		None,
	})
	if err != nil {
		t.Fatal(err)
	}
	if req := pairs(f.Chosen[0]); req[wgl.DOUBLE_BUFFER_ARB] != wgl.GL_FALSE {
		t.Errorf("requested double buffer %d", req[wgl.DOUBLE_BUFFER_ARB])
	}
	if v, _ := d.QuerySurface(s, RenderBuffer); v != SingleBuffer {
		t.Errorf("QuerySurface(RenderBuffer) = %#x", v)
	}
	if v, _ := d.QuerySurface(s, GLColorspace); v != GLColorspaceLinear {
		t.Errorf("QuerySurface(GLColorspace) = %#x", v)
	}
	if w, _ := d.QuerySurface(s, Width); w != 640 {
		t.Errorf("QuerySurface(Width) = %d", w)
	}
	if err := d.SwapBuffers(s); err != nil {
		t.Error(err)
	}
	if f.Called("SwapBuffers") {
		t.Error("single buffered surface swapped")
	}
}

func TestWindowSurfaceBuffering(t *testing.T) {
	d, f := newTestDisplay(t, format8888, formatSingle)
	single := config(t, d, 2)
	if v, _ := d.GetConfigAttrib(single, SurfaceType); v&WindowBit == 0 {
		t.Fatalf("single buffered config lacks WindowBit: %#x", v)
	}
	s, err := d.CreateWindowSurface(single, NativeWindowType(f.AddWindow()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if req := pairs(f.Chosen[len(f.Chosen)-1]); req[wgl.DOUBLE_BUFFER_ARB] != wgl.GL_FALSE {
		t.Errorf("requested double buffer %d for a single buffered config", req[wgl.DOUBLE_BUFFER_ARB])
	}
	if v, _ := d.QuerySurface(s, RenderBuffer); v != SingleBuffer {
		t.Errorf("QuerySurface(RenderBuffer) = %#x, expected SingleBuffer", v)
	}
	if f.PixelFormats[s.hdc] != 2 {
		t.Errorf("pixel format %d, expected 2", f.PixelFormats[s.hdc])
	}

	double := config(t, d, 1)
	s, err = d.CreateWindowSurface(double, NativeWindowType(f.AddWindow()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := d.QuerySurface(s, RenderBuffer); v != BackBuffer {
		t.Errorf("QuerySurface(RenderBuffer) = %#x, expected BackBuffer", v)
	}
}

func TestDestroySurface(t *testing.T) {
	d, f := newTestDisplay(t)
	dcs := f.OutstandingDCs()
	s, err := d.CreateWindowSurface(config(t, d, 1), NativeWindowType(f.AddWindow()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.DestroySurface(s); err != nil {
		t.Fatal(err)
	}
	if f.OutstandingDCs() != dcs {
		t.Error("device context not released")
	}
	released := f.Released
	expectCode(t, d.DestroySurface(s), BadSurface)
	if f.Released != released {
		t.Error("device context released twice")
	}
	expectCode(t, d.SwapBuffers(s), BadSurface)
}

func TestCreateContext(t *testing.T) {
	d, f := newTestDisplay(t)
	windows, dcs := f.Windows(), f.OutstandingDCs()
	cfg := config(t, d, 1)
	ctx, err := d.CreateContext(cfg, nil, []Int{
		ContextMajorVersion, 4,
		ContextMinorVersion, 0,
		ContextOpenGLProfileMask, ContextOpenGLCoreProfileBit,
		None,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := f.Contexts[ctx.ctx]
	exp := []int32{
		wgl.CONTEXT_MAJOR_VERSION_ARB, 4,
		wgl.CONTEXT_PROFILE_MASK_ARB, wgl.CONTEXT_CORE_PROFILE_BIT_ARB,
		0,
	}
	if len(got) != len(exp) {
		t.Fatalf("got %v, expected %v", got, exp)
	}
	for i := range got {
		if got[i] != exp[i] {
			t.Fatalf("got %v, expected %v", got, exp)
		}
	}
	if f.Windows() != windows || f.OutstandingDCs() != dcs {
		t.Error("scratch window or device context leaked")
	}

	shared, err := d.CreateContext(cfg, ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Shared[shared.ctx] != ctx.ctx {
		t.Error("context not shared")
	}
}

func TestCreateContextFailure(t *testing.T) {
	d, f := newTestDisplay(t)
	cfg := config(t, d, 1)
	calls := len(f.Calls)
	_, err := d.CreateContext(cfg, nil, []Int{ContextOpenGLDebug, 2, None})
	expectCode(t, err, BadAttribute)
	if len(f.Calls) != calls {
		t.Errorf("rejected attributes reached the gateway: %v", f.Calls[calls:])
	}
	_, err = d.CreateContext(nil, nil, nil)
	expectCode(t, err, BadConfig)
	_, err = d.CreateContext(cfg, &Context{disp: d}, nil)
	expectCode(t, err, BadContext)

	windows, dcs := f.Windows(), f.OutstandingDCs()
	pd, pf := newTestDisplay(t, format8888.With(wgl.DRAW_TO_WINDOW_ARB, 0))
	pcalls := len(pf.Calls)
	_, err = pd.CreateContext(config(t, pd, 1), nil, nil)
	expectCode(t, err, BadMatch)
	if len(pf.Calls) != pcalls {
		t.Errorf("config without window support reached the gateway: %v", pf.Calls[pcalls:])
	}

	f.Fail = map[string]error{"CreateContext": nil}
	_, err = d.CreateContext(cfg, nil, nil)
	expectCode(t, err, BadAlloc)
	if f.Windows() != windows || f.OutstandingDCs() != dcs {
		t.Error("scratch window or device context leaked")
	}
}

func TestMakeCurrent(t *testing.T) {
	d, f := newTestDisplay(t)
	cfg := config(t, d, 1)
	s, err := d.CreateWindowSurface(cfg, NativeWindowType(f.AddWindow()), nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, err := d.CreateContext(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.MakeCurrent(s, s, ctx); err != nil {
		t.Fatal(err)
	}
	if f.CurrentDC != s.hdc || f.CurrentContext != ctx.ctx {
		t.Error("context not bound to the surface")
	}
	if d.GetCurrentContext() != ctx || d.GetCurrentSurface(Draw) != s {
		t.Error("current state not recorded")
	}
	if err := d.SwapBuffers(s); err != nil {
		t.Error(err)
	}
	if f.Swaps[s.hdc] != 1 {
		t.Errorf("got %d swaps, expected 1", f.Swaps[s.hdc])
	}
	if err := d.SwapInterval(0); err != nil || f.Interval != 0 {
		t.Errorf("SwapInterval(0) = %v, interval %d", err, f.Interval)
	}

	other, _ := d.CreateWindowSurface(cfg, NativeWindowType(f.AddWindow()), nil)
	expectCode(t, d.MakeCurrent(s, other, ctx), BadMatch)
	expectCode(t, d.MakeCurrent(s, s, nil), BadContext)

	// A failed bind leaves the current state alone.
	f.Fail = map[string]error{"MakeCurrent": nil}
	expectCode(t, d.MakeCurrent(other, other, ctx), BadMatch)
	if d.GetCurrentSurface(Draw) != s {
		t.Error("failed MakeCurrent changed the current surface")
	}
	f.Fail = nil

	if err := d.MakeCurrent(nil, nil, nil); err != nil {
		t.Fatal(err)
	}
	if f.CurrentContext != 0 || d.GetCurrentContext() != nil {
		t.Error("context still current")
	}
}

func TestDestroyContext(t *testing.T) {
	d, f := newTestDisplay(t)
	cfg := config(t, d, 1)
	s, _ := d.CreateWindowSurface(cfg, NativeWindowType(f.AddWindow()), nil)
	ctx, err := d.CreateContext(cfg, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.MakeCurrent(s, s, ctx); err != nil {
		t.Fatal(err)
	}
	native := ctx.ctx
	if err := d.DestroyContext(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.ctx != 0 {
		t.Error("handle not cleared")
	}
	if _, ok := f.Contexts[native]; ok {
		t.Error("native context not deleted")
	}
	if f.CurrentContext != 0 || d.GetCurrentContext() != nil {
		t.Error("destroyed context still current")
	}
	expectCode(t, d.DestroyContext(ctx), BadContext)
	expectCode(t, d.MakeCurrent(s, s, ctx), BadContext)
}

func TestTerminate(t *testing.T) {
	d, f := newTestDisplay(t)
	dcs := f.OutstandingDCs()
	cfg := config(t, d, 1)
	s, _ := d.CreateWindowSurface(cfg, NativeWindowType(f.AddWindow()), nil)
	ctx, _ := d.CreateContext(cfg, nil, nil)
	d.MakeCurrent(s, s, ctx)
	if err := d.Terminate(); err != nil {
		t.Fatal(err)
	}
	// Only the bootstrap context and device remain.
	if len(f.Contexts) != 1 || f.OutstandingDCs() != dcs {
		t.Errorf("%d contexts, %d devices left", len(f.Contexts), f.OutstandingDCs())
	}
	_, err := d.GetConfigs(-1)
	expectCode(t, err, NotInitialized)
	if err := d.Terminate(); err != nil {
		t.Errorf("second Terminate: %v", err)
	}
	if _, _, err := d.Initialize(); err != nil {
		t.Fatal(err)
	}
	_, err = d.GetConfigAttrib(cfg, RedSize)
	expectCode(t, err, BadConfig)
}

func TestBindAPI(t *testing.T) {
	if err := BindAPI(OpenGLAPI); err != nil {
		t.Error(err)
	}
	expectCode(t, BindAPI(OpenGLESAPI), BadParameter)
	if api := QueryAPI(); api != OpenGLAPI {
		t.Errorf("QueryAPI() = %#x", api)
	}
}

func TestSetLogger(t *testing.T) {
	l := slog.New(slog.DiscardHandler)
	SetLogger(l)
	if Logger() != l {
		t.Error("logger not installed")
	}
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
