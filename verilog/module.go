// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package verilog

import (
	"strings"

	hw "github.com/db47h/hwgen"
)

// Port is a module port derived from an I/O terminal.
//
type Port struct {
	Name  string
	Width int
}

// Result is the output of Module.
//
type Result struct {
	Module string
	// Testbench is empty unless Options.IncludeTestbench is set.
	Testbench string
	Warnings  Warnings
}

// Terminals returns the module ports declared by the INPUT and OUTPUT
// terminals of d, each group in component order.
//
func Terminals(d *hw.Design) (inputs, outputs []Port) {
	var ws Warnings
	return terminals(d, &ws)
}

func terminals(d *hw.Design, ws *Warnings) (inputs, outputs []Port) {
	for i := range d.Components {
		c := &d.Components[i]
		if !c.Kind.IsIO() {
			continue
		}
		p := Port{Name: c.PortName(), Width: 1}
		if len(c.Ports) > 0 && c.Ports[0].Width > 0 {
			p.Width = c.Ports[0].Width
		} else {
			ws.add("terminal " + c.ID + " (" + c.Kind.String() + ") has no port, assuming 1 bit")
		}
		if c.Kind == hw.INPUT {
			inputs = append(inputs, p)
		} else {
			outputs = append(outputs, p)
		}
	}
	return inputs, outputs
}

// Module generates a Verilog module from the schematic d.
//
// The module ports are the I/O terminals of d, every distinct wire label is
// declared as an internal wire, and every other component is lowered by the
// code generation rule of its kind. Kinds without a rule are emitted as a
// placeholder comment and reported in the result warnings.
//
func Module(d *hw.Design, opts Options) *Result {
	var (
		r  Result
		sb strings.Builder
	)
	wr := hw.NewWiring(d.Wires)

	if opts.IncludeComments {
		sb.WriteString(banner)
		sb.WriteString("// Module: " + d.Name + "\n")
		sb.WriteString("// Generated from schematic design\n")
		if ts := opts.timestamp(); ts != "" {
			sb.WriteString("// Date: " + ts + "\n")
		}
		sb.WriteString(banner + "\n")
	}

	inputs, outputs := terminals(d, &r.Warnings)
	sb.WriteString("module " + d.Name + " (\n")
	decls := make([]string, 0, len(inputs)+len(outputs))
	for _, p := range inputs {
		decls = append(decls, portDecl("input ", p))
	}
	for _, p := range outputs {
		decls = append(decls, portDecl("output", p))
	}
	sb.WriteString(strings.Join(decls, ",\n"))
	sb.WriteString("\n);\n\n")

	if labels := wr.Labels(); len(labels) > 0 {
		if opts.IncludeComments {
			sb.WriteString("    // Internal wires\n")
		}
		widths := labelWidths(d)
		for _, l := range labels {
			if rg := rangeOf(widths[l]); rg != "" {
				sb.WriteString("    wire " + rg + " " + l + ";\n")
			} else {
				sb.WriteString("    wire " + l + ";\n")
			}
		}
		sb.WriteByte('\n')
	}

	var n int
	for i := range d.Components {
		c := &d.Components[i]
		if c.Kind.IsIO() {
			continue
		}
		if n == 0 && opts.IncludeComments {
			sb.WriteString("    // Component instantiations\n")
		}
		if opts.IncludeComments {
			sb.WriteString("    // " + c.Label + "\n")
		}
		s := wr.Socket(c)
		emitComponent(&sb, s, instanceName(c, n), &r.Warnings)
		for _, m := range s.Missing() {
			r.Warnings.add("component " + c.ID + " (" + c.Kind.String() + "): missing port " + m)
		}
		n++
	}

	sb.WriteString("\nendmodule\n")
	r.Module = sb.String()

	if opts.IncludeTestbench {
		r.Testbench = Testbench(d, inputs, outputs)
	}
	return &r
}

func portDecl(dir string, p Port) string {
	if rg := rangeOf(p.Width); rg != "" {
		return "    " + dir + " " + rg + " " + p.Name
	}
	return "    " + dir + " " + p.Name
}

// instanceName returns the instance name of the n-th logic component.
func instanceName(c *hw.Component, n int) string {
	return strings.ToLower(c.Kind.String()) + "_" + itoa(n)
}

// labelWidths returns the declared width of each wire label: the widest
// resolvable port among the endpoints of the wires carrying it.
func labelWidths(d *hw.Design) map[string]int {
	ports := make(map[string]int)
	for i := range d.Components {
		for _, p := range d.Components[i].Ports {
			ports[p.ID] = p.Width
		}
	}
	ws := make(map[string]int)
	for _, w := range d.Wires {
		if w.Label == "" {
			continue
		}
		for _, id := range [...]string{w.Source, w.Target} {
			if pw := ports[id]; pw > ws[w.Label] {
				ws[w.Label] = pw
			}
		}
	}
	return ws
}
