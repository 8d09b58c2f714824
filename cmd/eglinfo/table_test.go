// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"eglwgl.org/egl"
)

type fakeConfigs map[*egl.Config]map[egl.Int]egl.Int

func (f fakeConfigs) GetConfigAttrib(c *egl.Config, attr egl.Int) (egl.Int, error) {
	attrs, ok := f[c]
	if !ok {
		return 0, egl.BadConfig
	}
	return attrs[attr], nil
}

func TestPrintConfigs(t *testing.T) {
	a, b := new(egl.Config), new(egl.Config)
	g := fakeConfigs{
		a: {egl.ConfigID: 1, egl.RedSize: 8, egl.SurfaceType: egl.WindowBit | egl.PbufferBit},
		b: {egl.ConfigID: 7, egl.RedSize: 5, egl.TransparentType: egl.TransparentRGB},
	}
	var buf bytes.Buffer
	if err := printConfigs(&buf, g, []*egl.Config{a, b}, 0); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "pbuf-w") {
		t.Errorf("wide columns missing from %q", lines[0])
	}
	if f := strings.Fields(lines[1]); f[0] != "1" || f[2] != "8" || f[9] != "win,pbuf" {
		t.Errorf("got row %q", lines[1])
	}
	if f := strings.Fields(lines[2]); f[0] != "7" || f[9] != "-" || f[10] != "rgb" {
		t.Errorf("got row %q", lines[2])
	}

	buf.Reset()
	if err := printConfigs(&buf, g, []*egl.Config{a}, 80); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "pbuf-w") {
		t.Error("wide columns on a narrow terminal")
	}
}

func TestPrintConfigsError(t *testing.T) {
	err := printConfigs(new(bytes.Buffer), fakeConfigs{}, []*egl.Config{new(egl.Config)}, 0)
	if !errors.Is(err, egl.BadConfig) {
		t.Errorf("got %v, expected %v", err, egl.BadConfig)
	}
}

func TestSurfaceTypes(t *testing.T) {
	tests := []struct {
		bits egl.Int
		exp  string
	}{
		{0, "-"},
		{egl.WindowBit, "win"},
		{egl.WindowBit | egl.PixmapBit | egl.PbufferBit, "win,pix,pbuf"},
	}
	for _, test := range tests {
		if got := surfaceTypes(test.bits); got != test.exp {
			t.Errorf("surfaceTypes(%#x) = %q, expected %q", test.bits, got, test.exp)
		}
	}
}
