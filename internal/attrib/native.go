// SPDX-License-Identifier: Unlicense OR MIT

package attrib

import (
	"golang.org/x/exp/slices"

	"eglwgl.org/internal/egldef"
)

// Native is an ordered native key/value mapping with a fixed capacity.
// Setting an existing key overwrites its value in place; the order of
// first insertion is the order of the serialized array.
type Native struct {
	keys []int32
	vals []int32
	max  int
}

// NewNative returns an empty mapping holding at most maxPairs keys.
func NewNative(maxPairs int) *Native {
	return &Native{
		keys: make([]int32, 0, maxPairs),
		vals: make([]int32, 0, maxPairs),
		max:  maxPairs,
	}
}

// Set stores val under key. Adding a key to a full mapping fails with
// BadAttribute.
func (n *Native) Set(key, val int32) error {
	if i := slices.Index(n.keys, key); i >= 0 {
		n.vals[i] = val
		return nil
	}
	if len(n.keys) == n.max {
		return egldef.BadAttribute
	}
	n.keys = append(n.keys, key)
	n.vals = append(n.vals, val)
	return nil
}

func (n *Native) Get(key int32) (int32, bool) {
	i := slices.Index(n.keys, key)
	if i < 0 {
		return 0, false
	}
	return n.vals[i], true
}

func (n *Native) Len() int {
	return len(n.keys)
}

// Clone returns an independent copy with the same capacity.
func (n *Native) Clone() *Native {
	return &Native{
		keys: append(make([]int32, 0, n.max), n.keys...),
		vals: append(make([]int32, 0, n.max), n.vals...),
		max:  n.max,
	}
}

// Array serializes the mapping to the zero terminated key, value, ...
// shape the WGL calls expect.
func (n *Native) Array() []int32 {
	a := make([]int32, 0, 2*len(n.keys)+1)
	for i, k := range n.keys {
		a = append(a, k, n.vals[i])
	}
	return append(a, 0)
}
