// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package verilog

import (
	"strings"
	"unicode"

	hw "github.com/db47h/hwgen"
)

// Wrapper generates the top level Verilog module of the block diagram d.
//
// The module only has clk and rst_n ports. One signal bundle is declared per
// connection whose protocol has one (AXI4, AXI4_LITE and APB) and whose
// endpoints both resolve to a block of d. Every block is instantiated with
// its connected interfaces bound to their bundle; other interfaces are left
// unbound.
//
func Wrapper(d *hw.BlockDiagram, opts Options) (string, Warnings) {
	var (
		sb strings.Builder
		ws Warnings
	)

	if opts.IncludeComments {
		sb.WriteString(banner)
		sb.WriteString("// Top-Level Module: " + d.Name + "\n")
		sb.WriteString("// Generated from block diagram\n")
		if ts := opts.timestamp(); ts != "" {
			sb.WriteString("// Date: " + ts + "\n")
		}
		sb.WriteString(banner + "\n")
	}

	sb.WriteString("module " + d.Name + "_top (\n")
	sb.WriteString("    input  wire clk,\n")
	sb.WriteString("    input  wire rst_n\n")
	sb.WriteString(");\n\n")

	if opts.IncludeComments {
		sb.WriteString("    // Clock and Reset\n")
	}
	sb.WriteString("    wire sys_clk = clk;\n")
	sb.WriteString("    wire sys_rst = ~rst_n;\n\n")

	if opts.IncludeComments {
		sb.WriteString("    // Interconnect Signals\n")
	}
	bundles := make([]*bundle, len(d.Connections))
	for i := range d.Connections {
		c := &d.Connections[i]
		src, from, ok1 := d.Interface(c.Source)
		_, to, ok2 := d.Interface(c.Target)
		if !ok1 || !ok2 {
			ws.add("connection " + c.ID + ": dangling endpoint, skipped")
			continue
		}
		if opts.IncludeComments {
			sb.WriteString("    // " + from.Name + " -> " + to.Name + "\n")
		}
		b := newBundle(i, c, src)
		if b == nil {
			ws.add("connection " + c.ID + ": no signal bundle for protocol " + string(c.Type))
			continue
		}
		b.declare(&sb, opts.IncludeComments)
		bundles[i] = b
	}
	sb.WriteByte('\n')

	if opts.IncludeComments && len(d.AddressMap) > 0 {
		sb.WriteString("    // Address Map\n")
		for _, e := range d.AddressMap {
			sb.WriteString("    //   " + addressMapTarget(d, &e) + ": " + e.BaseAddress + " (size " + e.Size + ")\n")
		}
		sb.WriteByte('\n')
	}

	if opts.IncludeComments {
		sb.WriteString("    // IP Block Instantiations\n")
	}
	idx := hw.NewConnectionIndex(d.Connections)
	for i := range d.Blocks {
		instantiate(&sb, &d.Blocks[i], idx, bundles, opts.IncludeComments)
	}

	sb.WriteString("\nendmodule\n")
	return sb.String(), ws
}

func instantiate(sb *strings.Builder, b *hw.Block, idx *hw.ConnectionIndex, bundles []*bundle, comments bool) {
	if comments {
		sb.WriteString("    // " + b.Name + "\n")
	}
	sb.WriteString("    " + moduleName(b) + " " + instName(b.Name) + " (\n")
	sb.WriteString("        .clk(sys_clk),\n")
	sb.WriteString("        .rst(sys_rst)")
	for _, it := range b.Interfaces {
		n, _, ok := idx.Lookup(it.ID)
		if !ok || bundles[n] == nil {
			continue
		}
		sb.WriteString(",\n")
		if comments {
			sb.WriteString("        // " + it.Name + "\n")
		}
		sb.WriteString(strings.Join(bundles[n].bind(it.Name), ",\n"))
	}
	sb.WriteString("\n    );\n\n")
}

// moduleName returns the name of the module implementing b.
func moduleName(b *hw.Block) string {
	if b.Kind == hw.CUSTOM_IP && b.Props.Name != "" {
		return b.Props.Name
	}
	return strings.ToLower(b.Kind.String())
}

// instName returns the instance name of a block: its lowercased name with
// runs of white space replaced by underscores.
func instName(name string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(name), unicode.IsSpace), "_") + "_inst"
}

func addressMapTarget(d *hw.BlockDiagram, e *hw.AddressMapEntry) string {
	name := e.BlockID
	if b, ok := d.Block(e.BlockID); ok {
		name = b.Name
	}
	if it, _, ok := d.Interface(e.InterfaceID); ok {
		return name + "." + it.Name
	}
	return name + "." + e.InterfaceID
}
