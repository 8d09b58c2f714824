// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"eglwgl.org/egl"
)

// config selects the configs to list and the context to probe with.
type config struct {
	MaxConfigs int            `toml:"max_configs"`
	Config     configSection  `toml:"config"`
	Context    contextSection `toml:"context"`
}

type configSection struct {
	RedSize     int32 `toml:"red_size"`
	GreenSize   int32 `toml:"green_size"`
	BlueSize    int32 `toml:"blue_size"`
	AlphaSize   int32 `toml:"alpha_size"`
	DepthSize   int32 `toml:"depth_size"`
	StencilSize int32 `toml:"stencil_size"`
	Samples     int32 `toml:"samples"`
}

type contextSection struct {
	MajorVersion int32  `toml:"major_version"`
	MinorVersion int32  `toml:"minor_version"`
	Profile      string `toml:"profile"`
	Debug        bool   `toml:"debug"`
}

const configFile = "eglinfo.toml"

func defaultConfig() *config {
	return &config{
		MaxConfigs: 8,
		Config: configSection{
			RedSize:   8,
			GreenSize: 8,
			BlueSize:  8,
			DepthSize: 24,
		},
		Context: contextSection{
			MajorVersion: 3,
			MinorVersion: 2,
			Profile:      "core",
		},
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return configFile
	}
	return filepath.Join(dir, "eglwgl", configFile)
}

// readConfig decodes the file at path over the defaults. A missing file
// is only an error if it was named explicitly.
func readConfig(path string, explicit bool) (*config, error) {
	conf := defaultConfig()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

func writeConfig(path string, conf *config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (c *config) validate() error {
	switch c.Context.Profile {
	case "", "core", "compatibility":
	default:
		return fmt.Errorf("invalid context profile %q", c.Context.Profile)
	}
	if c.Context.MajorVersion < 0 || c.Context.MinorVersion < 0 {
		return errors.New("negative context version")
	}
	return nil
}

// criteria returns the ChooseConfig attribute list. Zero sizes are left
// out.
func (c *config) criteria() []egl.Int {
	attrs := []egl.Int{egl.SurfaceType, egl.WindowBit}
	for _, a := range []struct {
		key egl.Int
		val int32
	}{
		{egl.RedSize, c.Config.RedSize},
		{egl.GreenSize, c.Config.GreenSize},
		{egl.BlueSize, c.Config.BlueSize},
		{egl.AlphaSize, c.Config.AlphaSize},
		{egl.DepthSize, c.Config.DepthSize},
		{egl.StencilSize, c.Config.StencilSize},
		{egl.Samples, c.Config.Samples},
	} {
		if a.val != 0 {
			attrs = append(attrs, a.key, a.val)
		}
	}
	return append(attrs, egl.None)
}

// contextAttribs returns the CreateContext attribute list.
func (c *config) contextAttribs() []egl.Int {
	var attrs []egl.Int
	if v := c.Context.MajorVersion; v > 0 {
		attrs = append(attrs, egl.ContextMajorVersion, v, egl.ContextMinorVersion, c.Context.MinorVersion)
	}
	switch c.Context.Profile {
	case "core":
		attrs = append(attrs, egl.ContextOpenGLProfileMask, egl.ContextOpenGLCoreProfileBit)
	case "compatibility":
		attrs = append(attrs, egl.ContextOpenGLProfileMask, egl.ContextOpenGLCompatibilityProfileBit)
	}
	if c.Context.Debug {
		attrs = append(attrs, egl.ContextOpenGLDebug, egl.True)
	}
	return append(attrs, egl.None)
}
