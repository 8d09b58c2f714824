// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"fmt"
	"sync"

	"eglwgl.org/internal/catalog"
	"eglwgl.org/internal/wgl"
)

const (
	versionMajor = 1
	versionMinor = 5

	vendorString     = "eglwgl"
	versionString    = "1.5 WGL"
	extensionsString = "EGL_KHR_create_context EGL_KHR_gl_colorspace"
	clientAPIsString = "OpenGL"
)

// Display is an EGL display. Its methods must not be called
// concurrently.
type Display struct {
	gw   wgl.Gateway
	boot *wgl.Bootstrap

	catalog *catalog.Catalog
	configs map[Int]*Config

	surfaces map[*Surface]struct{}
	contexts map[*Context]struct{}

	currentSurface *Surface
	currentContext *Context

	lastErr Error
}

// process holds the state shared by every display: the native gateway
// and the bootstrap that resolves the WGL extensions.
var process struct {
	mu       sync.Mutex
	gw       wgl.Gateway
	boot     *wgl.Bootstrap
	displays map[NativeDisplayType]*Display
}

func processGateway() wgl.Gateway {
	process.mu.Lock()
	defer process.mu.Unlock()
	if process.gw == nil {
		process.gw = wgl.NewGateway()
	}
	return process.gw
}

// GetDisplay returns the display for a native display value. The same
// value always yields the same Display until ReleaseProcess.
func GetDisplay(native NativeDisplayType) *Display {
	process.mu.Lock()
	defer process.mu.Unlock()
	if process.gw == nil {
		process.gw = wgl.NewGateway()
	}
	if process.boot == nil {
		process.boot = wgl.NewBootstrap(process.gw)
	}
	if d, ok := process.displays[native]; ok {
		return d
	}
	if process.displays == nil {
		process.displays = make(map[NativeDisplayType]*Display)
	}
	d := newDisplay(process.gw, process.boot)
	process.displays[native] = d
	return d
}

// ReleaseProcess terminates every display and tears down the extension
// bootstrap. Displays obtained earlier must not be used afterwards.
func ReleaseProcess() error {
	process.mu.Lock()
	defer process.mu.Unlock()
	var errs []error
	for native, d := range process.displays {
		if err := d.Terminate(); err != nil {
			errs = append(errs, err)
		}
		delete(process.displays, native)
	}
	if process.boot != nil {
		if err := process.boot.Close(); err != nil && !errors.Is(err, wgl.ErrClosed) {
			errs = append(errs, err)
		}
		process.boot = nil
	}
	return errors.Join(errs...)
}

func newDisplay(gw wgl.Gateway, boot *wgl.Bootstrap) *Display {
	return &Display{
		gw:      gw,
		boot:    boot,
		lastErr: Success,
	}
}

// fail records the EGL code carried by err as the last error.
func (d *Display) fail(err error) error {
	var code Error
	if !errors.As(err, &code) {
		code = BadAlloc
	}
	d.lastErr = code
	return err
}

func (d *Display) check() error {
	if d == nil {
		return BadDisplay
	}
	if d.catalog == nil {
		return d.fail(NotInitialized)
	}
	return nil
}

// GetError returns the code of the last failed operation on d and resets
// it to Success.
func (d *Display) GetError() Error {
	if d == nil {
		return BadDisplay
	}
	err := d.lastErr
	d.lastErr = Success
	return err
}

// Initialize runs the process bootstrap if needed and enumerates the
// display configs. Initializing an initialized display only returns the
// version.
func (d *Display) Initialize() (major, minor int, err error) {
	if d == nil {
		return 0, 0, BadDisplay
	}
	if d.catalog != nil {
		return versionMajor, versionMinor, nil
	}
	hdc, err := d.boot.Init()
	if err != nil {
		return 0, 0, d.fail(fmt.Errorf("%w: %v", NotInitialized, err))
	}
	cat, err := catalog.Enumerate(d.gw, hdc, Logger())
	if err != nil {
		return 0, 0, d.fail(err)
	}
	d.catalog = cat
	d.configs = make(map[Int]*Config, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		c := cat.At(i)
		d.configs[c.ConfigID] = &Config{disp: d, cfg: c}
	}
	d.surfaces = make(map[*Surface]struct{})
	d.contexts = make(map[*Context]struct{})
	Logger().Info("display initialized", "configs", cat.Len())
	return versionMajor, versionMinor, nil
}

// Terminate destroys every surface and context of the display and drops
// its configs. The display can be initialized again.
func (d *Display) Terminate() error {
	if d == nil {
		return BadDisplay
	}
	if d.catalog == nil {
		return nil
	}
	if d.currentContext != nil {
		d.dropCurrent()
	}
	for c := range d.contexts {
		d.deleteContext(c)
	}
	for s := range d.surfaces {
		s.release()
	}
	d.surfaces, d.contexts = nil, nil
	d.catalog, d.configs = nil, nil
	Logger().Info("display terminated")
	return nil
}

// QueryString returns one of the Vendor, Version, Extensions or
// ClientAPIs strings.
func (d *Display) QueryString(name Int) (string, error) {
	if err := d.check(); err != nil {
		return "", err
	}
	switch name {
	case Vendor:
		return vendorString, nil
	case Version:
		return versionString, nil
	case Extensions:
		return extensionsString, nil
	case ClientAPIs:
		return clientAPIsString, nil
	}
	return "", d.fail(BadParameter)
}

// BindAPI selects the client API. Only OpenGLAPI is supported.
func BindAPI(api Int) error {
	if api != OpenGLAPI {
		return BadParameter
	}
	return nil
}

// QueryAPI returns the client API, which is always OpenGLAPI.
func QueryAPI() Int {
	return OpenGLAPI
}

func (d *Display) errorf(code Error, format string, args ...any) error {
	return d.fail(fmt.Errorf("%w: %s", code, fmt.Sprintf(format, args...)))
}
