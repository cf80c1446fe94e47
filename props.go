// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ComponentProps holds the configurable properties of a schematic component.
// A zero value means "not set".
//
type ComponentProps struct {
	// Name is the HDL port name of an I/O terminal.
	Name string
	// Width is the bit width of the component data path.
	Width int
}

// BlockProps holds the configurable properties of an IP block.
// A zero value means "not set".
//
type BlockProps struct {
	// Name is the module name of a custom IP.
	Name         string
	SizeMB       int
	SizeKB       int
	NumPins      int
	BaudRate     int
	NumMasters   int
	NumSlaves    int
	FrequencyMHz int
}

// PropType is the value type of a property.
//
type PropType int

// Property value types.
//
const (
	PropNumber PropType = iota
	PropString
	PropBool
)

func (t PropType) String() string {
	switch t {
	case PropString:
		return "string"
	case PropBool:
		return "boolean"
	}
	return "number"
}

// PropSpec describes one configurable property of a catalog entry.
//
type PropSpec struct {
	Name    string
	Type    PropType
	Default interface{}
	Label   string
}

// property keys
const (
	PropName         = "name"
	PropWidth        = "width"
	PropSizeMB       = "size_mb"
	PropSizeKB       = "size_kb"
	PropNumPins      = "num_pins"
	PropBaudRate     = "baud_rate"
	PropNumMasters   = "num_masters"
	PropNumSlaves    = "num_slaves"
	PropFrequencyMHz = "frequency_mhz"
)

// ComponentPropsFrom converts a loosely typed property map into
// ComponentProps. Only the keys listed in specs are accepted; unknown keys and
// values of the wrong type are reported as errors.
//
func ComponentPropsFrom(m map[string]interface{}, specs []PropSpec) (ComponentProps, error) {
	var p ComponentProps
	err := eachProp(m, specs, func(key string, v interface{}) error {
		switch key {
		case PropName:
			s, ok := v.(string)
			if !ok {
				return errors.Errorf("property %q: expected string, got %T", key, v)
			}
			p.Name = s
		case PropWidth:
			n, err := toInt(v)
			if err != nil {
				return errors.Wrapf(err, "property %q", key)
			}
			if n < 1 {
				return errors.Errorf("property %q: width must be >= 1, got %d", key, n)
			}
			p.Width = n
		default:
			return errors.Errorf("property %q not supported by schematic components", key)
		}
		return nil
	})
	return p, err
}

// BlockPropsFrom converts a loosely typed property map into BlockProps.
// Only the keys listed in specs are accepted.
//
func BlockPropsFrom(m map[string]interface{}, specs []PropSpec) (BlockProps, error) {
	var p BlockProps
	err := eachProp(m, specs, func(key string, v interface{}) error {
		if key == PropName {
			s, ok := v.(string)
			if !ok {
				return errors.Errorf("property %q: expected string, got %T", key, v)
			}
			p.Name = s
			return nil
		}
		n, err := toInt(v)
		if err != nil {
			return errors.Wrapf(err, "property %q", key)
		}
		switch key {
		case PropSizeMB:
			p.SizeMB = n
		case PropSizeKB:
			p.SizeKB = n
		case PropNumPins:
			p.NumPins = n
		case PropBaudRate:
			p.BaudRate = n
		case PropNumMasters:
			p.NumMasters = n
		case PropNumSlaves:
			p.NumSlaves = n
		case PropFrequencyMHz:
			p.FrequencyMHz = n
		default:
			return errors.Errorf("property %q not supported by IP blocks", key)
		}
		return nil
	})
	return p, err
}

// Map returns the set properties as a loosely typed map, the inverse of
// ComponentPropsFrom. It returns nil if no property is set.
//
func (p ComponentProps) Map() map[string]interface{} {
	m := make(map[string]interface{})
	if p.Name != "" {
		m[PropName] = p.Name
	}
	if p.Width > 0 {
		m[PropWidth] = p.Width
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// Map returns the set properties as a loosely typed map.
//
func (p BlockProps) Map() map[string]interface{} {
	m := make(map[string]interface{})
	if p.Name != "" {
		m[PropName] = p.Name
	}
	for _, kv := range []struct {
		k string
		v int
	}{
		{PropSizeMB, p.SizeMB},
		{PropSizeKB, p.SizeKB},
		{PropNumPins, p.NumPins},
		{PropBaudRate, p.BaudRate},
		{PropNumMasters, p.NumMasters},
		{PropNumSlaves, p.NumSlaves},
		{PropFrequencyMHz, p.FrequencyMHz},
	} {
		if kv.v != 0 {
			m[kv.k] = kv.v
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// eachProp calls fn for every key of m in sorted order after checking that the
// key is declared in specs.
func eachProp(m map[string]interface{}, specs []PropSpec, fn func(key string, v interface{}) error) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !hasProp(specs, k) {
			return errors.Errorf("unknown property %q", k)
		}
		if err := fn(k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func hasProp(specs []PropSpec, name string) bool {
	for i := range specs {
		if specs[i].Name == name {
			return true
		}
	}
	return false
}

// toInt accepts the integer representations produced by the JSON and YAML
// decoders.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, errors.Errorf("expected integer, got %v", n)
		}
		return int(n), nil
	}
	return 0, errors.Errorf("expected number, got %T", v)
}
