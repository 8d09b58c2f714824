// SPDX-License-Identifier: Unlicense OR MIT

package egl

import "eglwgl.org/internal/catalog"

// Config is an opaque frame buffer configuration. It is valid until its
// display is terminated.
type Config struct {
	disp *Display
	cfg  *catalog.Config
}

func (d *Display) ownsConfig(c *Config) bool {
	return c != nil && c.disp == d && d.catalog.Contains(c.cfg)
}

func (d *Display) wrap(cfgs []*catalog.Config) []*Config {
	res := make([]*Config, len(cfgs))
	for i, c := range cfgs {
		res[i] = d.configs[c.ConfigID]
	}
	return res
}

// GetConfigs returns the first max configs of the display, in native
// pixel format order. A negative max returns every config.
func (d *Display) GetConfigs(max int) ([]*Config, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	return d.wrap(d.catalog.First(max)), nil
}

// NumConfigs returns the number of configs of the display.
func (d *Display) NumConfigs() (int, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	return d.catalog.Len(), nil
}

// ChooseConfig returns up to max configs matching the attribute list,
// in native pixel format order. A negative max means no limit.
//
// Size attributes are minimums, SurfaceType, RenderableType and
// Conformant are bit masks and the remaining attributes must match
// exactly. Attributes not in the list, or set to DontCare, match every
// config.
func (d *Display) ChooseConfig(attribs []Int, max int) ([]*Config, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	cfgs, err := d.catalog.Choose(attribs, max)
	if err != nil {
		return nil, d.fail(err)
	}
	Logger().Debug("chose configs", "matches", len(cfgs))
	return d.wrap(cfgs), nil
}

// GetConfigAttrib returns the value of a config attribute.
func (d *Display) GetConfigAttrib(c *Config, attr Int) (Int, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	if !d.ownsConfig(c) {
		return 0, d.fail(BadConfig)
	}
	v, ok := c.cfg.Attrib(attr)
	if !ok {
		return 0, d.fail(BadAttribute)
	}
	return v, nil
}

// ID returns the config id, which is the native pixel format index.
func (c *Config) ID() Int {
	return c.cfg.ConfigID
}
