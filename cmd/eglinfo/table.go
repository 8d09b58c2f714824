// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"eglwgl.org/egl"
)

type column struct {
	name string
	attr egl.Int
	// wide columns are left out on narrow terminals.
	wide bool
}

var columns = []column{
	{name: "id", attr: egl.ConfigID},
	{name: "buf", attr: egl.BufferSize},
	{name: "r", attr: egl.RedSize},
	{name: "g", attr: egl.GreenSize},
	{name: "b", attr: egl.BlueSize},
	{name: "a", attr: egl.AlphaSize},
	{name: "depth", attr: egl.DepthSize},
	{name: "stencil", attr: egl.StencilSize},
	{name: "ms", attr: egl.Samples},
	{name: "surfaces", attr: egl.SurfaceType},
	{name: "transp", attr: egl.TransparentType, wide: true},
	{name: "tex-rgb", attr: egl.BindToTextureRGB, wide: true},
	{name: "tex-rgba", attr: egl.BindToTextureRGBA, wide: true},
	{name: "pbuf-w", attr: egl.MaxPbufferWidth, wide: true},
	{name: "pbuf-h", attr: egl.MaxPbufferHeight, wide: true},
}

// wideWidth is the narrowest terminal showing every column.
const wideWidth = 100

type attribGetter interface {
	GetConfigAttrib(c *egl.Config, attr egl.Int) (egl.Int, error)
}

// termWidth returns the width of the terminal on stdout, or 0 when
// stdout is not a terminal.
func termWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// printConfigs writes one row per config. A zero width means no limit.
func printConfigs(w io.Writer, g attribGetter, cfgs []*egl.Config, width int) error {
	if len(cfgs) == 0 {
		return nil
	}
	var cols []column
	for _, c := range columns {
		if !c.wide || width == 0 || width >= wideWidth {
			cols = append(cols, c)
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	for _, c := range cols {
		fmt.Fprintf(tw, "%s\t", c.name)
	}
	fmt.Fprintln(tw)
	for _, cfg := range cfgs {
		for _, c := range cols {
			v, err := g.GetConfigAttrib(cfg, c.attr)
			if err != nil {
				return fmt.Errorf("GetConfigAttrib(0x%x): %w", c.attr, err)
			}
			fmt.Fprintf(tw, "%s\t", formatAttrib(c.attr, v))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func formatAttrib(attr, v egl.Int) string {
	switch attr {
	case egl.SurfaceType:
		return surfaceTypes(v)
	case egl.TransparentType:
		if v == egl.TransparentRGB {
			return "rgb"
		}
		return "-"
	case egl.BindToTextureRGB, egl.BindToTextureRGBA:
		if v == egl.True {
			return "y"
		}
		return "n"
	}
	return fmt.Sprint(v)
}

func surfaceTypes(bits egl.Int) string {
	var names []string
	for _, t := range []struct {
		bit  egl.Int
		name string
	}{
		{egl.WindowBit, "win"},
		{egl.PixmapBit, "pix"},
		{egl.PbufferBit, "pbuf"},
	} {
		if bits&t.bit != 0 {
			names = append(names, t.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
