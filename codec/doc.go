// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package codec

import (
	hw "github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwlib"
	"github.com/pkg/errors"
)

type position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type metadataDoc struct {
	Created     string `json:"created,omitempty" yaml:"created,omitempty"`
	Modified    string `json:"modified,omitempty" yaml:"modified,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (m *metadataDoc) metadata() (md hw.Metadata, err error) {
	if md.Created, err = parseTime(m.Created); err != nil {
		return md, errors.Wrap(err, "metadata.created")
	}
	if md.Modified, err = parseTime(m.Modified); err != nil {
		return md, errors.Wrap(err, "metadata.modified")
	}
	md.Author = m.Author
	md.Description = m.Description
	return md, nil
}

func fromMetadata(md hw.Metadata) metadataDoc {
	return metadataDoc{
		Created:     formatTime(md.Created),
		Modified:    formatTime(md.Modified),
		Author:      md.Author,
		Description: md.Description,
	}
}

// schematic documents

type portDoc struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Type     hw.Direction `json:"type" yaml:"type"`
	Width    int          `json:"width" yaml:"width"`
	Position position     `json:"position" yaml:"position"`
}

type componentDoc struct {
	ID         string                 `json:"id" yaml:"id"`
	Type       hw.ComponentKind       `json:"type" yaml:"type"`
	Label      string                 `json:"label" yaml:"label"`
	Position   position               `json:"position" yaml:"position"`
	Ports      []portDoc              `json:"ports" yaml:"ports"`
	Properties map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type wireDoc struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

type designDoc struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	Components []componentDoc `json:"components" yaml:"components"`
	Wires      []wireDoc      `json:"wires" yaml:"wires"`
	Metadata   metadataDoc    `json:"metadata" yaml:"metadata"`
}

func (dd *designDoc) design() (*hw.Design, error) {
	d := &hw.Design{
		ID:         dd.ID,
		Name:       dd.Name,
		Components: make([]hw.Component, 0, len(dd.Components)),
		Wires:      make([]hw.Wire, 0, len(dd.Wires)),
	}
	for _, cd := range dd.Components {
		props, err := hwlib.ParseComponentProps(cd.Type, cd.Properties)
		if err != nil {
			return nil, errors.Wrapf(err, "component %s", cd.ID)
		}
		c := hw.Component{
			ID:       cd.ID,
			Kind:     cd.Type,
			Label:    cd.Label,
			Position: hw.Position{X: cd.Position.X, Y: cd.Position.Y},
			Props:    props,
		}
		if cd.Ports != nil {
			c.Ports = make([]hw.Port, len(cd.Ports))
			for i, pd := range cd.Ports {
				c.Ports[i] = hw.Port{
					ID:       pd.ID,
					Name:     pd.Name,
					Dir:      pd.Type,
					Width:    pd.Width,
					Position: hw.Position{X: pd.Position.X, Y: pd.Position.Y},
				}
			}
		}
		d.Components = append(d.Components, c)
	}
	for _, wd := range dd.Wires {
		d.Wires = append(d.Wires, hw.Wire(wd))
	}
	md, err := dd.Metadata.metadata()
	if err != nil {
		return nil, err
	}
	d.Metadata = md
	return d, nil
}

func fromDesign(d *hw.Design) (*designDoc, error) {
	dd := &designDoc{
		ID:         d.ID,
		Name:       d.Name,
		Components: make([]componentDoc, 0, len(d.Components)),
		Wires:      make([]wireDoc, 0, len(d.Wires)),
		Metadata:   fromMetadata(d.Metadata),
	}
	for i := range d.Components {
		c := &d.Components[i]
		if !c.Kind.Valid() {
			return nil, errors.Errorf("component %s: invalid kind %s", c.ID, c.Kind)
		}
		cd := componentDoc{
			ID:         c.ID,
			Type:       c.Kind,
			Label:      c.Label,
			Position:   position{c.Position.X, c.Position.Y},
			Ports:      make([]portDoc, len(c.Ports)),
			Properties: c.Props.Map(),
		}
		for j, p := range c.Ports {
			cd.Ports[j] = portDoc{
				ID:       p.ID,
				Name:     p.Name,
				Type:     p.Dir,
				Width:    p.Width,
				Position: position{p.Position.X, p.Position.Y},
			}
		}
		dd.Components = append(dd.Components, cd)
	}
	for _, w := range d.Wires {
		dd.Wires = append(dd.Wires, wireDoc(w))
	}
	return dd, nil
}

// block diagram documents

type interfaceDoc struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Type         hw.Protocol `json:"type" yaml:"type"`
	Role         hw.Role     `json:"role" yaml:"role"`
	DataWidth    int         `json:"dataWidth" yaml:"dataWidth"`
	AddressWidth int         `json:"addressWidth,omitempty" yaml:"addressWidth,omitempty"`
}

type blockDoc struct {
	ID          string                 `json:"id" yaml:"id"`
	Type        hw.BlockKind           `json:"type" yaml:"type"`
	Name        string                 `json:"name" yaml:"name"`
	Position    position               `json:"position" yaml:"position"`
	Interfaces  []interfaceDoc         `json:"interfaces" yaml:"interfaces"`
	Properties  map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
	SchematicID string                 `json:"schematicId,omitempty" yaml:"schematicId,omitempty"`
}

type connectionDoc struct {
	ID     string      `json:"id" yaml:"id"`
	Source string      `json:"source" yaml:"source"`
	Target string      `json:"target" yaml:"target"`
	Type   hw.Protocol `json:"type" yaml:"type"`
}

type addressDoc struct {
	BlockID     string `json:"blockId" yaml:"blockId"`
	InterfaceID string `json:"interfaceId" yaml:"interfaceId"`
	BaseAddress string `json:"baseAddress" yaml:"baseAddress"`
	Size        string `json:"size" yaml:"size"`
}

type diagramDoc struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Blocks      []blockDoc      `json:"blocks" yaml:"blocks"`
	Connections []connectionDoc `json:"connections" yaml:"connections"`
	AddressMap  []addressDoc    `json:"addressMap,omitempty" yaml:"addressMap,omitempty"`
	Metadata    metadataDoc     `json:"metadata" yaml:"metadata"`
}

func (dd *diagramDoc) diagram() (*hw.BlockDiagram, error) {
	d := &hw.BlockDiagram{
		ID:          dd.ID,
		Name:        dd.Name,
		Blocks:      make([]hw.Block, 0, len(dd.Blocks)),
		Connections: make([]hw.Connection, 0, len(dd.Connections)),
	}
	for _, bd := range dd.Blocks {
		props, err := hwlib.ParseBlockProps(bd.Type, bd.Properties)
		if err != nil {
			return nil, errors.Wrapf(err, "block %s", bd.ID)
		}
		b := hw.Block{
			ID:          bd.ID,
			Kind:        bd.Type,
			Name:        bd.Name,
			Position:    hw.Position{X: bd.Position.X, Y: bd.Position.Y},
			Interfaces:  make([]hw.Interface, len(bd.Interfaces)),
			Props:       props,
			SchematicID: bd.SchematicID,
		}
		for i, id := range bd.Interfaces {
			b.Interfaces[i] = hw.Interface(id)
		}
		d.Blocks = append(d.Blocks, b)
	}
	for _, cd := range dd.Connections {
		d.Connections = append(d.Connections, hw.Connection(cd))
	}
	for _, ad := range dd.AddressMap {
		d.AddressMap = append(d.AddressMap, hw.AddressMapEntry(ad))
	}
	md, err := dd.Metadata.metadata()
	if err != nil {
		return nil, err
	}
	d.Metadata = md
	return d, nil
}

func fromDiagram(d *hw.BlockDiagram) *diagramDoc {
	dd := &diagramDoc{
		ID:          d.ID,
		Name:        d.Name,
		Blocks:      make([]blockDoc, 0, len(d.Blocks)),
		Connections: make([]connectionDoc, 0, len(d.Connections)),
		Metadata:    fromMetadata(d.Metadata),
	}
	for i := range d.Blocks {
		b := &d.Blocks[i]
		bd := blockDoc{
			ID:          b.ID,
			Type:        b.Kind,
			Name:        b.Name,
			Position:    position{b.Position.X, b.Position.Y},
			Interfaces:  make([]interfaceDoc, len(b.Interfaces)),
			Properties:  b.Props.Map(),
			SchematicID: b.SchematicID,
		}
		for j, it := range b.Interfaces {
			bd.Interfaces[j] = interfaceDoc(it)
		}
		dd.Blocks = append(dd.Blocks, bd)
	}
	for _, c := range d.Connections {
		dd.Connections = append(dd.Connections, connectionDoc(c))
	}
	for _, e := range d.AddressMap {
		dd.AddressMap = append(dd.AddressMap, addressDoc(e))
	}
	return dd
}
