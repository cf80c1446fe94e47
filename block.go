// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// An Interface is a bus endpoint of a block instance.
//
type Interface struct {
	ID           string
	Name         string
	Type         Protocol
	Role         Role
	DataWidth    int
	AddressWidth int
}

// A Block is an IP block instance.
//
type Block struct {
	ID         string
	Kind       BlockKind
	Name       string
	Position   Position
	Interfaces []Interface
	Props      BlockProps
	// SchematicID references the schematic implementing a custom IP, if any.
	SchematicID string
}

// Interface returns the interface of b with the given name.
//
func (b *Block) Interface(name string) (*Interface, bool) {
	for i := range b.Interfaces {
		if b.Interfaces[i].Name == name {
			return &b.Interfaces[i], true
		}
	}
	return nil, false
}

// A Connection links two interfaces by id. Type selects the signal bundle
// synthesized for it.
//
type Connection struct {
	ID     string
	Source string
	Target string
	Type   Protocol
}

// AddressMapEntry maps a slave interface to an address window. Addresses are
// kept as the hex strings entered by the user.
//
type AddressMapEntry struct {
	BlockID     string
	InterfaceID string
	BaseAddress string
	Size        string
}

// BlockDiagram is the aggregate root of IP blocks and bus connections.
//
type BlockDiagram struct {
	ID          string
	Name        string
	Blocks      []Block
	Connections []Connection
	AddressMap  []AddressMapEntry
	Metadata    Metadata
}

// NewBlockDiagram returns a new empty block diagram.
//
func NewBlockDiagram(name string) *BlockDiagram {
	return &BlockDiagram{ID: name, Name: name}
}

// Block returns the block with the given id.
//
func (d *BlockDiagram) Block(id string) (*Block, bool) {
	for i := range d.Blocks {
		if d.Blocks[i].ID == id {
			return &d.Blocks[i], true
		}
	}
	return nil, false
}

// Interface returns the interface with the given id and its owner.
//
func (d *BlockDiagram) Interface(id string) (*Interface, *Block, bool) {
	for i := range d.Blocks {
		b := &d.Blocks[i]
		for j := range b.Interfaces {
			if b.Interfaces[j].ID == id {
				return &b.Interfaces[j], b, true
			}
		}
	}
	return nil, nil, false
}

// AddBlock instantiates spec into d and returns the new block id.
//
func (d *BlockDiagram) AddBlock(spec *BlockSpec, name string, props BlockProps) string {
	prefix := strings.ToLower(spec.Kind.String()) + "_"
	var id string
	for n := 0; ; n++ {
		id = prefix + strconv.Itoa(n)
		if _, ok := d.Block(id); !ok {
			break
		}
	}
	if name == "" {
		name = spec.Label
	}
	d.Blocks = append(d.Blocks, spec.Instantiate(id, name, props))
	return id
}

// Connect links two interface ids and returns the new connection id. The
// connection type is the protocol of the source interface.
//
func (d *BlockDiagram) Connect(source, target string) (string, error) {
	src, _, ok := d.Interface(source)
	if !ok {
		return "", errors.Errorf("connect %s-%s: no such interface %s", source, target, source)
	}
	dst, _, ok := d.Interface(target)
	if !ok {
		return "", errors.Errorf("connect %s-%s: no such interface %s", source, target, target)
	}
	if src.Type != dst.Type {
		return "", errors.Errorf("connect %s-%s: protocol mismatch %s/%s", source, target, src.Type, dst.Type)
	}
	id := "c" + strconv.Itoa(len(d.Connections))
	for d.hasConnection(id) {
		id += "_"
	}
	d.Connections = append(d.Connections, Connection{ID: id, Source: source, Target: target, Type: src.Type})
	return id, nil
}

func (d *BlockDiagram) hasConnection(id string) bool {
	for i := range d.Connections {
		if d.Connections[i].ID == id {
			return true
		}
	}
	return false
}

// Check performs a strict structural validation of d. See Design.Check.
//
func (d *BlockDiagram) Check() error {
	var ps Problems
	blocks := make(map[string]bool, len(d.Blocks))
	ifaces := make(map[string]bool)
	for i := range d.Blocks {
		b := &d.Blocks[i]
		if b.ID == "" {
			ps = append(ps, "block #"+strconv.Itoa(i)+" has no id")
		} else if blocks[b.ID] {
			ps = append(ps, "duplicate block id "+b.ID)
		}
		blocks[b.ID] = true
		if !b.Kind.Valid() {
			ps = append(ps, "block "+b.ID+": invalid kind")
		}
		for _, it := range b.Interfaces {
			if ifaces[it.ID] {
				ps = append(ps, "duplicate interface id "+it.ID)
			}
			ifaces[it.ID] = true
			if !it.Type.Valid() {
				ps = append(ps, "interface "+it.ID+": unknown protocol "+string(it.Type))
			}
		}
	}
	conns := make(map[string]bool, len(d.Connections))
	for _, c := range d.Connections {
		if conns[c.ID] {
			ps = append(ps, "duplicate connection id "+c.ID)
		}
		conns[c.ID] = true
		if !ifaces[c.Source] {
			ps = append(ps, "connection "+c.ID+": unresolved source "+c.Source)
		}
		if !ifaces[c.Target] {
			ps = append(ps, "connection "+c.ID+": unresolved target "+c.Target)
		}
		if c.Source == c.Target {
			ps = append(ps, "connection "+c.ID+": connects interface "+c.Source+" to itself")
		}
	}
	for _, e := range d.AddressMap {
		if !blocks[e.BlockID] {
			ps = append(ps, "address map: unknown block "+e.BlockID)
		}
		if !ifaces[e.InterfaceID] {
			ps = append(ps, "address map: unknown interface "+e.InterfaceID)
		}
	}
	if len(ps) > 0 {
		return ps
	}
	return nil
}
