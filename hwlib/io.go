// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/hwgen"

// I/O terminals.
//
var (
	Input  = hw.InputPort
	Output = hw.OutputPort
)

var custom = &hw.PartSpec{
	Kind:     hw.CUSTOM,
	Label:    "Custom Component",
	Category: hw.CatCustom,
	Props: []hw.PropSpec{
		{Name: hw.PropName, Type: hw.PropString, Default: "custom", Label: "Module Name"},
	},
}

// Custom returns a custom component with the given ports. The ports of the
// returned part are not shared with the catalog entry.
//
func Custom(ports ...hw.PortSpec) hw.NewPartFn {
	sp := *custom
	sp.Ports = append([]hw.PortSpec(nil), ports...)
	return sp.NewPart
}
