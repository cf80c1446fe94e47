// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Position is an editor canvas position. It is carried through but never used
// by code generation.
//
type Position struct {
	X, Y float64
}

// Metadata of a design aggregate.
//
type Metadata struct {
	Created     time.Time
	Modified    time.Time
	Author      string
	Description string
}

// A Port belongs to exactly one component instance.
//
type Port struct {
	ID       string
	Name     string
	Dir      Direction
	Width    int
	Position Position
}

// A Component is an instance of a schematic part.
//
type Component struct {
	ID       string
	Kind     ComponentKind
	Label    string
	Position Position
	// Ports is nil when the kind template has not been materialized yet.
	Ports []Port
	Props ComponentProps
}

// Port returns the port of c with the given name.
//
func (c *Component) Port(name string) (*Port, bool) {
	for i := range c.Ports {
		if c.Ports[i].Name == name {
			return &c.Ports[i], true
		}
	}
	return nil, false
}

// PortName returns the HDL name of an I/O terminal: its name property if set,
// its label otherwise.
//
func (c *Component) PortName() string {
	if c.Props.Name != "" {
		return c.Props.Name
	}
	return c.Label
}

// A Wire connects two ports by id. Wires are undirected for generation
// purposes. Label, if not empty, is used verbatim as the signal name.
//
type Wire struct {
	ID     string
	Source string
	Target string
	Label  string
}

// Design is a schematic: the aggregate root of components and wires.
//
type Design struct {
	ID         string
	Name       string
	Components []Component
	Wires      []Wire
	Metadata   Metadata
}

// NewDesign returns a new empty design.
//
func NewDesign(name string) *Design {
	return &Design{ID: name, Name: name}
}

// Component returns the component with the given id.
//
func (d *Design) Component(id string) (*Component, bool) {
	for i := range d.Components {
		if d.Components[i].ID == id {
			return &d.Components[i], true
		}
	}
	return nil, false
}

// Port returns the port with the given id and its owner.
//
func (d *Design) Port(id string) (*Port, *Component, bool) {
	for i := range d.Components {
		c := &d.Components[i]
		for j := range c.Ports {
			if c.Ports[j].ID == id {
				return &c.Ports[j], c, true
			}
		}
	}
	return nil, nil, false
}

// AddComponent instantiates spec into d and returns the new component id.
// Ids are generated from the kind name: "and_0", "and_1", ...
//
func (d *Design) AddComponent(spec *PartSpec, label string, props ComponentProps) string {
	id := d.newID(strings.ToLower(spec.Kind.String()) + "_")
	if label == "" {
		label = spec.Label
	}
	d.Components = append(d.Components, spec.Instantiate(id, label, props))
	return id
}

// Connect adds a wire between two port ids and returns its id. Both ports
// must exist in d.
//
func (d *Design) Connect(source, target, label string) (string, error) {
	if _, _, ok := d.Port(source); !ok {
		return "", errors.Errorf("connect %s-%s: no such port %s", source, target, source)
	}
	if _, _, ok := d.Port(target); !ok {
		return "", errors.Errorf("connect %s-%s: no such port %s", source, target, target)
	}
	id := "w" + strconv.Itoa(len(d.Wires))
	for d.hasWire(id) {
		id += "_"
	}
	d.Wires = append(d.Wires, Wire{ID: id, Source: source, Target: target, Label: label})
	return id, nil
}

func (d *Design) hasWire(id string) bool {
	for i := range d.Wires {
		if d.Wires[i].ID == id {
			return true
		}
	}
	return false
}

func (d *Design) newID(prefix string) string {
	for n := 0; ; n++ {
		id := prefix + strconv.Itoa(n)
		if _, ok := d.Component(id); !ok {
			return id
		}
	}
}

// Problems is a list of structural problems found in an aggregate.
//
type Problems []string

func (p Problems) Error() string {
	return strings.Join(p, "; ")
}

// Check performs a strict structural validation of d: component, port and
// wire ids must be unique, port names unique within their component, and
// every wire must link two distinct existing ports.
//
// Code generators never call Check: they treat any unresolvable endpoint as
// unconnected. It returns nil or a Problems error.
//
func (d *Design) Check() error {
	var ps Problems
	comps := make(map[string]bool, len(d.Components))
	ports := make(map[string]bool)
	for i := range d.Components {
		c := &d.Components[i]
		if c.ID == "" {
			ps = append(ps, "component #"+strconv.Itoa(i)+" has no id")
		} else if comps[c.ID] {
			ps = append(ps, "duplicate component id "+c.ID)
		}
		comps[c.ID] = true
		if !c.Kind.Valid() {
			ps = append(ps, "component "+c.ID+": invalid kind")
		}
		names := make(map[string]bool, len(c.Ports))
		for _, p := range c.Ports {
			if ports[p.ID] {
				ps = append(ps, "duplicate port id "+p.ID)
			}
			ports[p.ID] = true
			if names[p.Name] {
				ps = append(ps, "component "+c.ID+": duplicate port name "+p.Name)
			}
			names[p.Name] = true
			if p.Width < 1 {
				ps = append(ps, "port "+p.ID+": invalid width "+strconv.Itoa(p.Width))
			}
		}
	}
	wires := make(map[string]bool, len(d.Wires))
	for _, w := range d.Wires {
		if wires[w.ID] {
			ps = append(ps, "duplicate wire id "+w.ID)
		}
		wires[w.ID] = true
		if !ports[w.Source] {
			ps = append(ps, "wire "+w.ID+": unresolved source "+w.Source)
		}
		if !ports[w.Target] {
			ps = append(ps, "wire "+w.ID+": unresolved target "+w.Target)
		}
		if w.Source == w.Target {
			ps = append(ps, "wire "+w.ID+": connects port "+w.Source+" to itself")
		}
	}
	if len(ps) > 0 {
		return ps
	}
	return nil
}
