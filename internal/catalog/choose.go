// SPDX-License-Identifier: Unlicense OR MIT

package catalog

import "eglwgl.org/internal/egldef"

type matchRule uint8

const (
	atLeast matchRule = iota
	exact
	mask
	ignored
)

var rules = map[int32]matchRule{
	egldef.BufferSize:            atLeast,
	egldef.RedSize:               atLeast,
	egldef.GreenSize:             atLeast,
	egldef.BlueSize:              atLeast,
	egldef.AlphaSize:             atLeast,
	egldef.LuminanceSize:         atLeast,
	egldef.AlphaMaskSize:         atLeast,
	egldef.DepthSize:             atLeast,
	egldef.StencilSize:           atLeast,
	egldef.SampleBuffers:         atLeast,
	egldef.Samples:               atLeast,
	egldef.ConfigID:              exact,
	egldef.ColorBufferType:       exact,
	egldef.ConfigCaveat:          exact,
	egldef.Level:                 exact,
	egldef.NativeRenderable:      exact,
	egldef.NativeVisualType:      exact,
	egldef.TransparentType:       exact,
	egldef.TransparentRedValue:   exact,
	egldef.TransparentGreenValue: exact,
	egldef.TransparentBlueValue:  exact,
	egldef.BindToTextureRGB:      exact,
	egldef.BindToTextureRGBA:     exact,
	egldef.MinSwapInterval:       exact,
	egldef.MaxSwapInterval:       exact,
	egldef.SurfaceType:           mask,
	egldef.RenderableType:        mask,
	egldef.Conformant:            mask,
	egldef.MaxPbufferWidth:       ignored,
	egldef.MaxPbufferHeight:      ignored,
	egldef.MaxPbufferPixels:      ignored,
	egldef.NativeVisualID:        ignored,
}

type criterion struct {
	key, val int32
	rule     matchRule
}

// parseCriteria reads an EGL config attribute list. A key repeated later
// in the list replaces the earlier value.
func parseCriteria(list []int32) ([]criterion, error) {
	var crit []criterion
	idx := make(map[int32]int)
	for i := 0; i < len(list) && list[i] != egldef.None; i += 2 {
		if i+1 == len(list) {
			return nil, egldef.BadAttribute
		}
		key, val := list[i], list[i+1]
		r, ok := rules[key]
		if !ok {
			return nil, egldef.BadAttribute
		}
		if j, seen := idx[key]; seen {
			crit[j].val = val
			continue
		}
		idx[key] = len(crit)
		crit = append(crit, criterion{key: key, val: val, rule: r})
	}
	// The transparent channel values only apply to transparent requests.
	if j, ok := idx[egldef.TransparentType]; !ok || crit[j].val != egldef.TransparentRGB {
		for i := range crit {
			switch crit[i].key {
			case egldef.TransparentRedValue, egldef.TransparentGreenValue, egldef.TransparentBlueValue:
				crit[i].rule = ignored
			}
		}
	}
	return crit, nil
}

func (c *Config) matches(crit []criterion) bool {
	for _, cr := range crit {
		if cr.rule == ignored || cr.val == egldef.DontCare {
			continue
		}
		v, _ := c.Attrib(cr.key)
		switch cr.rule {
		case atLeast:
			if v < cr.val {
				return false
			}
		case exact:
			if v != cr.val {
				return false
			}
		case mask:
			if v&cr.val != cr.val {
				return false
			}
		}
	}
	return true
}

// Choose returns up to max configs matching the EGL attribute list, in
// catalog order. A negative max means no limit. Unlisted attributes
// match any config. When EGL_CONFIG_ID is given every other criterion is
// ignored.
func (c *Catalog) Choose(list []int32, max int) ([]*Config, error) {
	crit, err := parseCriteria(list)
	if err != nil {
		return nil, err
	}
	for _, cr := range crit {
		if cr.key == egldef.ConfigID && cr.val != egldef.DontCare {
			cfg, ok := c.Lookup(cr.val)
			if !ok || max == 0 {
				return nil, nil
			}
			return []*Config{cfg}, nil
		}
	}
	var res []*Config
	for i := 0; i < c.Len(); i++ {
		if max >= 0 && len(res) == max {
			break
		}
		if cfg := c.At(i); cfg.matches(crit) {
			res = append(res, cfg)
		}
	}
	return res, nil
}
