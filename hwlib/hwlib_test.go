// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	hw "github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwlib"
)

func TestCatalog_complete(t *testing.T) {
	for _, k := range hw.ComponentKinds() {
		p, ok := hwlib.Lookup(k)
		if !ok {
			t.Errorf("no catalog entry for %s", k)
			continue
		}
		if p.Kind != k || p.Label == "" || p.Category == "" {
			t.Errorf("%s: bad entry %+v", k, p)
		}
		names := make(map[string]bool)
		for _, ps := range p.Ports {
			if names[ps.Name] {
				t.Errorf("%s: duplicate port %s", k, ps.Name)
			}
			names[ps.Name] = true
			if ps.Width < 1 {
				t.Errorf("%s: port %s has width %d", k, ps.Name, ps.Width)
			}
		}
	}
	for _, k := range hw.BlockKinds() {
		b, ok := hwlib.LookupBlock(k)
		if !ok {
			t.Errorf("no catalog entry for %s", k)
			continue
		}
		if b.Kind != k || b.Label == "" || b.Category == "" {
			t.Errorf("%s: bad entry %+v", k, b)
		}
	}
	if len(hwlib.Parts()) != len(hw.ComponentKinds()) {
		t.Errorf("got %d parts, expected %d", len(hwlib.Parts()), len(hw.ComponentKinds()))
	}
	if len(hwlib.Blocks()) != len(hw.BlockKinds()) {
		t.Errorf("got %d blocks, expected %d", len(hwlib.Blocks()), len(hw.BlockKinds()))
	}
}

func TestCatalog_categories(t *testing.T) {
	data := []struct {
		c     hw.Category
		kinds []hw.ComponentKind
	}{
		{hw.CatLogic, []hw.ComponentKind{hw.AND, hw.OR, hw.NOT, hw.XOR, hw.NAND, hw.NOR, hw.XNOR}},
		{hw.CatMux, []hw.ComponentKind{hw.MUX2, hw.MUX4, hw.MUX8, hw.DEMUX}},
		{hw.CatIO, []hw.ComponentKind{hw.INPUT, hw.OUTPUT}},
	}
	for _, d := range data {
		ps := hwlib.PartsByCategory(d.c)
		if len(ps) != len(d.kinds) {
			t.Errorf("%s: got %d entries, expected %d", d.c, len(ps), len(d.kinds))
			continue
		}
		for i, p := range ps {
			if p.Kind != d.kinds[i] {
				t.Errorf("%s[%d]: got %s, expected %s", d.c, i, p.Kind, d.kinds[i])
			}
		}
	}
	if bs := hwlib.BlocksByCategory(hw.CatProcessor); len(bs) != 4 || bs[3] != hwlib.RISCV {
		t.Errorf("bad processor list: %v", bs)
	}
}

func TestCatalog_copies(t *testing.T) {
	ps := hwlib.Parts()
	ps[0] = nil
	if hwlib.Parts()[0] == nil {
		t.Error("Parts returned the catalog slice itself")
	}
}

func TestWidth(t *testing.T) {
	data := []struct {
		name  string
		part  hw.Part
		ports map[string]int
	}{
		{"register", hwlib.Register("d=x, q=y"), map[string]int{"d": 8, "q": 8, "clk": 1}},
		{"register16", hwlib.RegisterN(16)("d=x"), map[string]int{"d": 16, "q": 16, "clk": 1}},
		{"adder4", hwlib.AdderN(4)(""), map[string]int{"a": 4, "b": 4, "sum": 4, "carry": 1}},
		{"mux2x32", hwlib.Mux2N(32)(""), map[string]int{"in0": 32, "in1": 32, "sel": 1, "out": 32}},
		{"and", hwlib.And(""), map[string]int{"a": 1, "b": 1, "out": 1}},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			c := d.part.Instantiate("x", d.name, d.part.Props)
			for name, w := range d.ports {
				p, ok := c.Port(name)
				if !ok {
					t.Errorf("no port %s", name)
					continue
				}
				if p.Width != w {
					t.Errorf("port %s: got width %d, expected %d", name, p.Width, w)
				}
			}
		})
	}
}

func TestWidth_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RegisterN(0) did not panic")
		}
	}()
	hwlib.RegisterN(0)
}

func TestNew(t *testing.T) {
	p := hwlib.New(hw.XOR, "a=x, b=y, out=z")
	if p.Kind != hw.XOR || len(p.Bindings) != 3 || p.Bindings[2] != (hw.Binding{Port: "out", Net: "z"}) {
		t.Errorf("got %+v", p)
	}
	defer func() {
		if recover() == nil {
			t.Error("New did not panic on an invalid kind")
		}
	}()
	hwlib.New(hw.ComponentKind(-1), "")
}

func TestCustom(t *testing.T) {
	fn := hwlib.Custom(hw.PortSpec{Name: "x", Dir: hw.DirInput, Width: 3})
	p := fn("x=n")
	if len(p.Ports) != 1 {
		t.Fatalf("got ports %v", p.Ports)
	}
	if s, _ := hwlib.Lookup(hw.CUSTOM); len(s.Ports) != 0 {
		t.Errorf("Custom modified the catalog entry: %v", s.Ports)
	}
}

func TestParseProps(t *testing.T) {
	data := []struct {
		kind hw.ComponentKind
		in   map[string]interface{}
		out  hw.ComponentProps
		err  string
	}{
		{hw.INPUT, map[string]interface{}{"name": "a", "width": 8.0}, hw.ComponentProps{Name: "a", Width: 8}, ""},
		{hw.REGISTER, map[string]interface{}{"width": 16}, hw.ComponentProps{Width: 16}, ""},
		{hw.AND, nil, hw.ComponentProps{}, ""},
		{hw.AND, map[string]interface{}{"width": 4}, hw.ComponentProps{}, `AND: unknown property "width"`},
		{hw.REGISTER, map[string]interface{}{"width": 1.5}, hw.ComponentProps{}, `REGISTER: property "width": expected integer, got 1.5`},
		{hw.REGISTER, map[string]interface{}{"width": 0}, hw.ComponentProps{}, `REGISTER: property "width": width must be >= 1, got 0`},
		{hw.OUTPUT, map[string]interface{}{"name": 3}, hw.ComponentProps{}, `OUTPUT: property "name": expected string, got int`},
	}
	for _, d := range data {
		p, err := hwlib.ParseComponentProps(d.kind, d.in)
		if err == nil && d.err != "" || err != nil && err.Error() != d.err {
			t.Errorf("%s %v: got error %v, expected %q", d.kind, d.in, err, d.err)
			continue
		}
		if err == nil && p != d.out {
			t.Errorf("%s %v: got %+v, expected %+v", d.kind, d.in, p, d.out)
		}
	}

	bp, err := hwlib.ParseBlockProps(hw.DDR_CONTROLLER, map[string]interface{}{"size_mb": uint64(512)})
	if err != nil || bp.SizeMB != 512 {
		t.Errorf("got %+v, %v", bp, err)
	}
	if _, err = hwlib.ParseBlockProps(hw.UART, map[string]interface{}{"size_mb": 1}); err == nil {
		t.Error("accepted size_mb on UART")
	}
	if m := bp.Map(); len(m) != 1 || m[hw.PropSizeMB] != 512 {
		t.Errorf("Map: got %v", m)
	}
}
