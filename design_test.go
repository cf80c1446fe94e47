// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen_test

import (
	"strings"
	"testing"

	hw "github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwlib"
)

func TestDesign_edit(t *testing.T) {
	d := hw.NewDesign("top")
	a := d.AddComponent(hwlib.Input, "a", hw.ComponentProps{Name: "a"})
	g := d.AddComponent(hwlib.Input, "", hw.ComponentProps{})
	if a != "input_0" || g != "input_1" {
		t.Errorf("got ids %s, %s", a, g)
	}
	c, _ := d.Component(g)
	if c.Label != "Input Port" {
		t.Errorf("default label: got %q", c.Label)
	}
	n := d.AddComponent(hwlib.Not("").PartSpec, "inv", hw.ComponentProps{})
	id, err := d.Connect(a+".port", n+".in", "x")
	if err != nil {
		t.Fatal(err)
	}
	if id != "w0" {
		t.Errorf("wire id: got %s", id)
	}
	if _, err = d.Connect(a+".port", "nope.in", ""); err == nil {
		t.Error("connected to a missing port")
	}
	if p, owner, ok := d.Port(n + ".in"); !ok || owner.ID != n || p.Name != "in" {
		t.Errorf("Port lookup failed: %v %v %v", p, owner, ok)
	}
	if err = d.Check(); err != nil {
		t.Error(err)
	}
}

func TestDesign_check(t *testing.T) {
	d := &hw.Design{
		Name: "bad",
		Components: []hw.Component{
			{ID: "a", Kind: hw.AND, Ports: []hw.Port{{ID: "a.x", Name: "x", Width: 1}, {ID: "a.x", Name: "x", Width: 0}}},
			{ID: "a", Kind: hw.ComponentKind(999)},
		},
		Wires: []hw.Wire{
			{ID: "w", Source: "a.x", Target: "a.x"},
			{ID: "w", Source: "ghost", Target: "a.x"},
		},
	}
	err := d.Check()
	ps, ok := err.(hw.Problems)
	if !ok {
		t.Fatalf("got %T, expected hw.Problems", err)
	}
	for _, exp := range []string{
		"duplicate port id a.x",
		"component a: duplicate port name x",
		"port a.x: invalid width 0",
		"duplicate component id a",
		"component a: invalid kind",
		"wire w: connects port a.x to itself",
		"duplicate wire id w",
		"wire w: unresolved source ghost",
	} {
		if !strings.Contains(ps.Error(), exp) {
			t.Errorf("missing problem %q in %v", exp, ps)
		}
	}
}

func TestBlockDiagram_edit(t *testing.T) {
	d := hw.NewBlockDiagram("soc")
	cpu := d.AddBlock(hwlib.RISCV, "", hw.BlockProps{})
	uart := d.AddBlock(hwlib.UART, "UART0", hw.BlockProps{BaudRate: 9600})
	mem := d.AddBlock(hwlib.SRAMController, "SRAM", hw.BlockProps{SizeKB: 128})
	if cpu != "riscv_0" {
		t.Errorf("got id %s", cpu)
	}
	b, _ := d.Block(cpu)
	if b.Name != "RISC-V Core" {
		t.Errorf("default name: got %q", b.Name)
	}
	if _, err := d.Connect(cpu+".axi_master", uart+".apb_slave"); err == nil {
		t.Error("connected AXI4 to APB")
	}
	if _, err := d.Connect(cpu+".axi_master", mem+".axi_slave"); err == nil {
		t.Error("connected AXI4 to AXI4_LITE")
	}
	dma := d.AddBlock(hwlib.DMAEngine, "", hw.BlockProps{})
	id, err := d.Connect(dma+".apb_slave", uart+".apb_slave")
	if err != nil {
		t.Fatal(err)
	}
	if d.Connections[0].ID != id || d.Connections[0].Type != hw.APB {
		t.Errorf("got connection %+v", d.Connections[0])
	}
	d.AddressMap = append(d.AddressMap, hw.AddressMapEntry{BlockID: uart, InterfaceID: uart + ".apb_slave", BaseAddress: "0x40000000", Size: "0x1000"})
	if err = d.Check(); err != nil {
		t.Error(err)
	}
	d.AddressMap = append(d.AddressMap, hw.AddressMapEntry{BlockID: "x", InterfaceID: "y"})
	d.Connections = append(d.Connections, hw.Connection{ID: id, Source: "q", Target: "q"})
	err = d.Check()
	for _, exp := range []string{
		"duplicate connection id " + id,
		"connection " + id + ": unresolved source q",
		"connects interface q to itself",
		"address map: unknown block x",
		"address map: unknown interface y",
	} {
		if err == nil || !strings.Contains(err.Error(), exp) {
			t.Errorf("missing problem %q in %v", exp, err)
		}
	}
}
