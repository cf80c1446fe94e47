// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen_test

import (
	"testing"

	hw "github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwlib"
)

func TestSchematic_errors(t *testing.T) {
	data := []struct {
		name  string
		in    hw.IO
		out   hw.IO
		parts hw.Parts
		err   string
	}{
		{"multi_out", hw.In("a, b"), hw.Out("out"), hw.Parts{
			hwlib.Nand("a=a, b=b, out=a"),
			hwlib.Nand("a=a, b=b, out=out"),
		}, "multi_out: net a: driven by both in_a.port and nand_0.out"},
		{"multi_out2", hw.In("a, b"), hw.Out("out"), hw.Parts{
			hwlib.Nand("a=a, b=b, out=x"),
			hwlib.Nand("a=a, b=b, out=x"),
			hwlib.Not("in=x, out=out"),
		}, "multi_out2: net x: driven by both nand_0.out and nand_1.out"},
		{"width", hw.In("a[4], b"), hw.Out("out"), hw.Parts{
			hwlib.Nand("a=a, b=b, out=out"),
		}, "width: net a: width mismatch: 4 bits, port nand_0.a is 1 bits"},
		{"dup_io", hw.In("a, b"), hw.Out("a"), hw.Parts{}, "dup_io: duplicate I/O pin name a"},
		{"unknown_pin", hw.In("a, b"), hw.Out("out"), hw.Parts{
			hwlib.Nand("a=a, typo=b, out=out"),
		}, "unknown_pin: invalid pin name typo for part NAND"},
		{"twice", hw.In("a, b"), hw.Out("out"), hw.Parts{
			hwlib.Nand("a=a, a=b, out=out"),
		}, "twice: pin a of nand_0 bound more than once"},
		{"unconnected_in", hw.In("a, b"), hw.Out("out"), hw.Parts{}, ""},
		{"ok", hw.In("a, b"), hw.Out("out"), hw.Parts{
			hwlib.Nand("a=a, b=b, out=out"),
		}, ""},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := hw.Schematic(d.name, d.in, d.out, d.parts)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Errorf("Got error %q, expected %q", err, d.err)
			}
		})
	}
}

func TestSchematic_wiring(t *testing.T) {
	d, err := hw.Schematic("half_adder", hw.In("a, b"), hw.Out("s, c"), hw.Parts{
		hwlib.Xor("a=a, b=b, out=s"),
		hwlib.And("a=a, b=b, out=c"),
	})
	if err != nil {
		t.Fatal(err)
	}
	ids := []string{"in_a", "in_b", "out_s", "out_c", "xor_0", "and_0"}
	if len(d.Components) != len(ids) {
		t.Fatalf("got %d components, expected %d", len(d.Components), len(ids))
	}
	for i, id := range ids {
		if d.Components[i].ID != id {
			t.Errorf("component %d: got id %s, expected %s", i, d.Components[i].ID, id)
		}
	}
	exp := []hw.Wire{
		{ID: "w0", Source: "in_a.port", Target: "xor_0.a", Label: "a"},
		{ID: "w1", Source: "in_a.port", Target: "and_0.a", Label: "a"},
		{ID: "w2", Source: "in_b.port", Target: "xor_0.b", Label: "b"},
		{ID: "w3", Source: "in_b.port", Target: "and_0.b", Label: "b"},
		{ID: "w4", Source: "out_s.port", Target: "xor_0.out", Label: "s"},
		{ID: "w5", Source: "out_c.port", Target: "and_0.out", Label: "c"},
	}
	if len(d.Wires) != len(exp) {
		t.Fatalf("got %d wires, expected %d: %v", len(d.Wires), len(exp), d.Wires)
	}
	for i := range exp {
		if d.Wires[i] != exp[i] {
			t.Errorf("wire %d: got %v, expected %v", i, d.Wires[i], exp[i])
		}
	}
	if err := d.Check(); err != nil {
		t.Errorf("built design fails check: %v", err)
	}
	c, _ := d.Component("in_a")
	if c.Props.Name != "a" || c.Ports[0].Dir != hw.DirOutput {
		t.Errorf("bad input terminal: %+v", c)
	}
}

func TestSchematic_width(t *testing.T) {
	d, err := hw.Schematic("acc", hw.In("x[16], y[16]"), hw.Out("s[16], co"), hw.Parts{
		hwlib.AdderN(16)("a=x, b=y, sum=s, carry=co").Named("Acc"),
	})
	if err != nil {
		t.Fatal(err)
	}
	c, ok := d.Component("adder_0")
	if !ok {
		t.Fatal("adder_0 not found")
	}
	if c.Label != "Acc" || c.Props.Width != 16 {
		t.Errorf("got label %q width %d", c.Label, c.Props.Width)
	}
	for _, p := range c.Ports {
		exp := 16
		if p.Name == "carry" {
			exp = 1
		}
		if p.Width != exp {
			t.Errorf("port %s: got width %d, expected %d", p.Name, p.Width, exp)
		}
	}
}

func TestSchematic_empty(t *testing.T) {
	d, err := hw.Schematic("no_inputs", hw.In(""), hw.Out("y"), hw.Parts{
		hwlib.And(""),
		hwlib.AdderN(4)(" "),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Components) != 3 {
		t.Fatalf("got %d components, expected 3", len(d.Components))
	}
	for i, id := range []string{"out_y", "and_0", "adder_0"} {
		if d.Components[i].ID != id {
			t.Errorf("component %d: got id %s, expected %s", i, d.Components[i].ID, id)
		}
	}
	if len(d.Wires) != 0 {
		t.Errorf("got %d wires, expected none", len(d.Wires))
	}
}
