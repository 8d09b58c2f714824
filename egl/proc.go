// SPDX-License-Identifier: Unlicense OR MIT

package egl

// GetProcAddress returns the address of an OpenGL or WGL extension
// function, or 0 if there is none. Core OpenGL 1.1 functions are
// resolved from opengl32.dll. Extension addresses are only valid for
// contexts with the pixel format of the context current when they were
// resolved.
func GetProcAddress(name string) uintptr {
	return processGateway().GetProcAddress(name)
}
