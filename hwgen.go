// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

// A Category groups catalog entries in the editor palette.
//
type Category string

// Component and block categories.
//
const (
	CatLogic       Category = "logic"
	CatSequential  Category = "sequential"
	CatArithmetic  Category = "arithmetic"
	CatMux         Category = "mux"
	CatRegister    Category = "register"
	CatIO          Category = "io"
	CatCPUCore     Category = "cpu_core"
	CatCPUMemory   Category = "cpu_memory"
	CatCPUControl  Category = "cpu_control"
	CatCPUOptional Category = "cpu_optional"
	CatCustom      Category = "custom"

	CatProcessor    Category = "processor"
	CatMemory       Category = "memory"
	CatPeripheral   Category = "peripheral"
	CatInterconnect Category = "interconnect"
	CatClock        Category = "clock"
)

// PortSpec is the template of a component port.
//
type PortSpec struct {
	Name  string
	Dir   Direction
	Width int
}

// A PartSpec wraps a component specification (its blueprint): the port
// template cloned into every instance and the properties it accepts.
//
// Catalog parts are defined in the hwlib package. Custom parts are created
// the same way:
//
//	notSpec := &hwgen.PartSpec{
//		Kind:     hwgen.NOT,
//		Label:    "NOT Gate",
//		Category: hwgen.CatLogic,
//		Ports: []hwgen.PortSpec{
//			{Name: "in", Dir: hwgen.DirInput, Width: 1},
//			{Name: "out", Dir: hwgen.DirOutput, Width: 1},
//		},
//	}
//
// Then get a NewPartFn for that PartSpec:
//
//	var notGate = notSpec.NewPart
//
// Which can then be used when building schematics:
//
//	d, _ := hwgen.Schematic("dummy", hwgen.In("a"), hwgen.Out("b"), hwgen.Parts{
//		notGate("in=a, out=b"),
//	})
//
type PartSpec struct {
	Kind     ComponentKind
	Label    string
	Category Category
	// Ports is the default port template, in declaration order.
	Ports []PortSpec
	// DataWidth is the width of the data path ports in the template. When an
	// instance sets the width property, ports of that width are resized.
	// Zero for parts without a configurable width.
	DataWidth int
	// Props lists the properties accepted by the part.
	Props []PropSpec
}

// Port returns the template of the named port.
//
func (p *PartSpec) Port(name string) (PortSpec, bool) {
	for _, ps := range p.Ports {
		if ps.Name == name {
			return ps, true
		}
	}
	return PortSpec{}, false
}

// Instantiate returns a new component instance of p. Ports are cloned from
// the template and get the ids "<id>.<port name>".
//
func (p *PartSpec) Instantiate(id, label string, props ComponentProps) Component {
	c := Component{
		ID:    id,
		Kind:  p.Kind,
		Label: label,
		Ports: make([]Port, len(p.Ports)),
		Props: props,
	}
	for i, ps := range p.Ports {
		w := ps.Width
		if props.Width > 0 && p.DataWidth > 0 && w == p.DataWidth {
			w = props.Width
		}
		c.Ports[i] = Port{
			ID:    id + "." + ps.Name,
			Name:  ps.Name,
			Dir:   ps.Dir,
			Width: w,
		}
	}
	return c
}

// NewPart is a NewPartFn that wraps p with the given bindings into a Part.
// It panics if the binding string cannot be parsed. See ParseBindings for the
// syntax.
//
func (p *PartSpec) NewPart(bindings string) Part {
	bs, err := ParseBindings(bindings)
	if err != nil {
		panic(err)
	}
	return Part{PartSpec: p, Bindings: bs}
}

// A NewPartFn is a function that takes a binding string and returns a new
// Part.
//
type NewPartFn func(bindings string) Part

// A Part wraps a part specification together with the nets its ports are
// bound to within a schematic.
//
type Part struct {
	*PartSpec
	Bindings []Binding
	// Props overrides the default properties of the part.
	Props ComponentProps
	// Name is the instance label. Defaults to the spec label.
	Name string
}

// WithWidth returns a copy of p with its width property set.
//
func (p Part) WithWidth(w int) Part {
	p.Props.Width = w
	return p
}

// Named returns a copy of p with a custom instance label.
//
func (p Part) Named(label string) Part {
	p.Name = label
	return p
}

// Parts is a convenience wrapper for []Part.
//
type Parts []Part

// BlockSpec is the blueprint of an IP block.
//
type BlockSpec struct {
	Kind       BlockKind
	Label      string
	Category   Category
	Interfaces []InterfaceSpec
	Props      []PropSpec
}

// InterfaceSpec is the template of a block interface.
//
type InterfaceSpec struct {
	Name string
	Type Protocol
	Role Role
	// DataWidth in bits.
	DataWidth int
	// AddressWidth in bits, 0 if the interface has no address bus.
	AddressWidth int
}

// Instantiate returns a new block instance of b. Interfaces get the ids
// "<id>.<interface name>".
//
func (b *BlockSpec) Instantiate(id, name string, props BlockProps) Block {
	blk := Block{
		ID:         id,
		Kind:       b.Kind,
		Name:       name,
		Interfaces: make([]Interface, len(b.Interfaces)),
		Props:      props,
	}
	for i, is := range b.Interfaces {
		blk.Interfaces[i] = Interface{
			ID:           id + "." + is.Name,
			Name:         is.Name,
			Type:         is.Type,
			Role:         is.Role,
			DataWidth:    is.DataWidth,
			AddressWidth: is.AddressWidth,
		}
	}
	return blk
}
