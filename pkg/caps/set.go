// ABOUTME: Set is the immutable result of parsing one terminal description.
// ABOUTME: Parse converts an xo/terminfo description into bool/num/string maps keyed by Capability.

package caps

import (
	"maps"
	"slices"

	"github.com/xo/terminfo"
)

// Set holds the capabilities of one terminal type. A Set never changes once
// built; re-resolution produces a new Set. All lookups are safe on a nil Set.
type Set struct {
	name    string
	bools   map[Capability]struct{}
	nums    map[Capability]int
	strings map[Capability]string
}

// NewSet builds a Set from explicit values. The maps are copied.
func NewSet(name string, bools []Capability, nums map[Capability]int, strs map[Capability]string) *Set {
	s := &Set{
		name:    name,
		bools:   make(map[Capability]struct{}, len(bools)),
		nums:    maps.Clone(nums),
		strings: maps.Clone(strs),
	}
	for _, b := range bools {
		s.bools[b] = struct{}{}
	}
	if s.nums == nil {
		s.nums = map[Capability]int{}
	}
	if s.strings == nil {
		s.strings = map[Capability]string{}
	}
	return s
}

// Parse converts a decoded terminfo description. Absent and cancelled
// entries are dropped, so only supported capabilities appear in the Set.
func Parse(ti *terminfo.Terminfo) *Set {
	s := &Set{
		bools:   make(map[Capability]struct{}),
		nums:    make(map[Capability]int),
		strings: make(map[Capability]string),
	}
	if ti == nil {
		return s
	}
	if len(ti.Names) > 0 {
		s.name = ti.Names[0]
	}

	for i, v := range ti.Bools {
		if v && i >= 0 && i < terminfo.CapCountBool {
			s.bools[Capability(terminfo.BoolCapNameShort(i))] = struct{}{}
		}
	}
	for i, v := range ti.ExtBools {
		if v {
			s.bools[Capability(ti.ExtBoolNames[i])] = struct{}{}
		}
	}

	for i, v := range ti.Nums {
		if v >= 0 && i >= 0 && i < terminfo.CapCountNum {
			s.nums[Capability(terminfo.NumCapNameShort(i))] = v
		}
	}
	for i, v := range ti.ExtNums {
		if v >= 0 {
			s.nums[Capability(ti.ExtNumNames[i])] = v
		}
	}

	for i, v := range ti.Strings {
		if len(v) > 0 && i >= 0 && i < terminfo.CapCountString {
			s.strings[Capability(terminfo.StringCapNameShort(i))] = string(v)
		}
	}
	for i, v := range ti.ExtStrings {
		if len(v) > 0 {
			s.strings[Capability(ti.ExtStringNames[i])] = string(v)
		}
	}
	return s
}

// Name returns the primary terminal name of the description.
func (s *Set) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Bool reports whether c is a supported boolean capability.
func (s *Set) Bool(c Capability) bool {
	if s == nil {
		return false
	}
	_, ok := s.bools[c]
	return ok
}

// Num returns the value of numeric capability c.
func (s *Set) Num(c Capability) (int, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.nums[c]
	return v, ok
}

// String returns the unexpanded template of string capability c.
func (s *Set) String(c Capability) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.strings[c]
	return v, ok
}

// Bools returns the supported boolean capabilities, sorted.
func (s *Set) Bools() []Capability {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.bools))
}

// Nums returns the numeric capability names, sorted.
func (s *Set) Nums() []Capability {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.nums))
}

// Strings returns the string capability names, sorted.
func (s *Set) Strings() []Capability {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.strings))
}
