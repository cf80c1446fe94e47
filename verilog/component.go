// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package verilog

import (
	"strconv"
	"strings"

	hw "github.com/db47h/hwgen"
)

func itoa(i int) string { return strconv.Itoa(i) }

// emitComponent writes the code of the logic component plugged into s.
func emitComponent(sb *strings.Builder, s *hw.Socket, inst string, ws *Warnings) {
	c := s.Component()
	switch c.Kind {
	case hw.AND:
		gate(sb, s, "&", false)
	case hw.OR:
		gate(sb, s, "|", false)
	case hw.XOR:
		gate(sb, s, "^", false)
	case hw.NAND:
		gate(sb, s, "&", true)
	case hw.NOR:
		gate(sb, s, "|", true)
	case hw.NOT:
		sb.WriteString("    assign " + s.Pin("out") + " = ~" + s.Pin("in") + ";\n")
	case hw.DFF:
		dff(sb, s)
	case hw.REGISTER:
		register(sb, s, inst)
	case hw.ADDER:
		sb.WriteString("    assign {" + s.Pin("carry") + ", " + s.Pin("sum") + "} = " + s.Pin("a") + " + " + s.Pin("b") + ";\n")
	case hw.MUX2:
		sb.WriteString("    assign " + s.Pin("out") + " = " + s.Pin("sel") + " ? " + s.Pin("in1") + " : " + s.Pin("in0") + ";\n")
	default:
		sb.WriteString("    // TODO: Implement " + c.Kind.String() + "\n")
		ws.add("component " + c.ID + ": no code generation rule for " + c.Kind.String() + ", placeholder emitted")
	}
}

func gate(sb *strings.Builder, s *hw.Socket, op string, inverted bool) {
	a, b, out := s.Pin("a"), s.Pin("b"), s.Pin("out")
	if inverted {
		sb.WriteString("    assign " + out + " = ~(" + a + " " + op + " " + b + ");\n")
		return
	}
	sb.WriteString("    assign " + out + " = " + a + " " + op + " " + b + ";\n")
}

func dff(sb *strings.Builder, s *hw.Socket) {
	d, clk, rst, q := s.Pin("d"), s.Pin("clk"), s.Pin("rst"), s.Pin("q")
	sb.WriteString("    always @(posedge " + clk + " or posedge " + rst + ") begin\n")
	sb.WriteString("        if (" + rst + ")\n")
	sb.WriteString("            " + q + " <= 1'b0;\n")
	sb.WriteString("        else\n")
	sb.WriteString("            " + q + " <= " + d + ";\n")
	sb.WriteString("    end\n")
}

func register(sb *strings.Builder, s *hw.Socket, inst string) {
	w := s.Component().Props.Width
	if w <= 0 {
		w = s.Width("d", 8)
	}
	d, clk, rst, en, q := s.Pin("d"), s.Pin("clk"), s.Pin("rst"), s.Pin("en"), s.Pin("q")
	state := inst + "_reg"
	sb.WriteString("    reg [" + itoa(w-1) + ":0] " + state + ";\n")
	sb.WriteString("    always @(posedge " + clk + " or posedge " + rst + ") begin\n")
	sb.WriteString("        if (" + rst + ")\n")
	sb.WriteString("            " + state + " <= " + itoa(w) + "'b0;\n")
	sb.WriteString("        else if (" + en + ")\n")
	sb.WriteString("            " + state + " <= " + d + ";\n")
	sb.WriteString("    end\n")
	sb.WriteString("    assign " + q + " = " + state + ";\n")
}
