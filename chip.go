// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"strings"

	"github.com/pkg/errors"
)

// I/O terminal specs. The hwlib package exposes them as hwlib.Input and
// hwlib.Output.
//
var (
	InputPort = &PartSpec{
		Kind:      INPUT,
		Label:     "Input Port",
		Category:  CatIO,
		Ports:     []PortSpec{{Name: "port", Dir: DirOutput, Width: 1}},
		DataWidth: 1,
		Props: []PropSpec{
			{Name: PropName, Type: PropString, Default: "input", Label: "Port Name"},
			{Name: PropWidth, Type: PropNumber, Default: 1, Label: "Bit Width"},
		},
	}
	OutputPort = &PartSpec{
		Kind:      OUTPUT,
		Label:     "Output Port",
		Category:  CatIO,
		Ports:     []PortSpec{{Name: "port", Dir: DirInput, Width: 1}},
		DataWidth: 1,
		Props: []PropSpec{
			{Name: PropName, Type: PropString, Default: "output", Label: "Port Name"},
			{Name: PropWidth, Type: PropNumber, Default: 1, Label: "Bit Width"},
		},
	}
)

// TerminalPort is the name of the single port of I/O terminals.
//
const TerminalPort = "port"

type net struct {
	name   string
	ports  []string
	width  int
	driver string
}

type netlist struct {
	nets  []*net
	index map[string]*net
}

func (nl *netlist) add(name string, p *Port) error {
	n := nl.index[name]
	if n == nil {
		n = &net{name: name, width: p.Width}
		nl.index[name] = n
		nl.nets = append(nl.nets, n)
	}
	if n.width != p.Width {
		return errors.Errorf("net %s: width mismatch: %d bits, port %s is %d bits", name, n.width, p.ID, p.Width)
	}
	if p.Dir == DirOutput {
		if n.driver != "" {
			return errors.Errorf("net %s: driven by both %s and %s", name, n.driver, p.ID)
		}
		n.driver = p.ID
	}
	n.ports = append(n.ports, p.ID)
	return nil
}

// Schematic composes parts into a new design. The pin names specified as
// inputs and outputs become the ports of the generated module and are
// materialized as INPUT and OUTPUT terminals with the ids "in_<name>" and
// "out_<name>".
//
// A half adder could be created like this:
//
//	d, err := Schematic(
//		"half_adder",
//		In("a, b"),
//		Out("sum, carry"),
//		Parts{
//			hwlib.Xor("a=a, b=b, out=sum"),
//			hwlib.And("a=a, b=b, out=carry"),
//		})
//
// Every net becomes a set of wires labelled with the net name, linking the
// first port bound to the net to each of the others. Ports left unbound get
// no wire.
//
func Schematic(name string, inputs, outputs IO, parts Parts) (*Design, error) {
	d := NewDesign(name)
	nl := &netlist{index: make(map[string]*net)}

	seen := make(map[string]bool, len(inputs)+len(outputs))
	addIO := func(spec *PartSpec, prefix string, pins IO) error {
		for _, pin := range pins {
			if seen[pin.Name] {
				return errors.Errorf("duplicate I/O pin name %s", pin.Name)
			}
			seen[pin.Name] = true
			id := prefix + pin.Name
			d.Components = append(d.Components, spec.Instantiate(id, pin.Name, ComponentProps{Name: pin.Name, Width: pin.Width}))
			c := &d.Components[len(d.Components)-1]
			if err := nl.add(pin.Name, &c.Ports[0]); err != nil {
				return err
			}
		}
		return nil
	}
	if err := addIO(InputPort, "in_", inputs); err != nil {
		return nil, errors.Wrap(err, name)
	}
	if err := addIO(OutputPort, "out_", outputs); err != nil {
		return nil, errors.Wrap(err, name)
	}

	for _, p := range parts {
		if p.PartSpec == nil {
			return nil, errors.Errorf("%s: part with nil spec", name)
		}
		label := p.Name
		if label == "" {
			label = p.Label
		}
		id := d.newID(strings.ToLower(p.Kind.String()) + "_")
		d.Components = append(d.Components, p.Instantiate(id, label, p.Props))
		c := &d.Components[len(d.Components)-1]
		bound := make(map[string]bool, len(p.Bindings))
		for _, b := range p.Bindings {
			port, ok := c.Port(b.Port)
			if !ok {
				return nil, errors.Errorf("%s: invalid pin name %s for part %s", name, b.Port, p.Kind)
			}
			if bound[b.Port] {
				return nil, errors.Errorf("%s: pin %s of %s bound more than once", name, b.Port, id)
			}
			bound[b.Port] = true
			if err := nl.add(b.Net, port); err != nil {
				return nil, errors.Wrap(err, name)
			}
		}
	}

	for _, n := range nl.nets {
		for _, other := range n.ports[1:] {
			if _, err := d.Connect(n.ports[0], other, n.name); err != nil {
				return nil, errors.Wrap(err, name)
			}
		}
	}
	return d, nil
}
