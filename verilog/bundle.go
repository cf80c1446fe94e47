// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package verilog

import (
	"fmt"
	"strings"

	hw "github.com/db47h/hwgen"
)

// signal widths
const (
	wData = -1 - iota
	wAddr
	wStrb
	wResp
)

type signal struct {
	name  string
	width int // fixed width or one of the w* placeholders
}

// AXI4 and AXI4-Lite: write address, write data, write response, read
// address and read data channels.
var axiSignals = []signal{
	{"awaddr", wAddr}, {"awvalid", 1}, {"awready", 1},
	{"wdata", wData}, {"wstrb", wStrb}, {"wvalid", 1}, {"wready", 1},
	{"bresp", wResp}, {"bvalid", 1}, {"bready", 1},
	{"araddr", wAddr}, {"arvalid", 1}, {"arready", 1},
	{"rdata", wData}, {"rresp", wResp}, {"rvalid", 1}, {"rready", 1},
}

var apbSignals = []signal{
	{"paddr", wAddr}, {"psel", 1}, {"penable", 1}, {"pwrite", 1},
	{"pwdata", wData}, {"prdata", wData}, {"pready", 1},
}

// A bundle is the set of wires synthesized for one connection.
type bundle struct {
	prefix  string
	title   string
	signals []signal
	data    int
	addr    int
}

// newBundle returns the bundle of the n-th connection c, sized after its
// source interface src. It returns nil if no bundle exists for the
// connection protocol.
func newBundle(n int, c *hw.Connection, src *hw.Interface) *bundle {
	b := &bundle{data: src.DataWidth, addr: src.AddressWidth}
	if b.data <= 0 {
		b.data = 32
	}
	if b.addr <= 0 {
		b.addr = 32
	}
	switch c.Type {
	case hw.AXI4, hw.AXI4Lite:
		b.prefix, b.title, b.signals = "axi_"+itoa(n), "AXI Interface "+itoa(n), axiSignals
	case hw.APB:
		b.prefix, b.title, b.signals = "apb_"+itoa(n), "APB Interface "+itoa(n), apbSignals
	default:
		return nil
	}
	return b
}

func (b *bundle) width(s signal) int {
	switch s.width {
	case wData:
		return b.data
	case wAddr:
		return b.addr
	case wStrb:
		if b.data < 8 {
			return 1
		}
		return b.data / 8
	case wResp:
		return 2
	}
	return s.width
}

// declare writes the wire declarations of b, preceded by its title if
// comments is set.
func (b *bundle) declare(sb *strings.Builder, comments bool) {
	if comments {
		sb.WriteString("    // " + b.title + "\n")
	}
	for _, s := range b.signals {
		fmt.Fprintf(sb, "    wire %-6s %s_%s;\n", rangeOf(b.width(s)), b.prefix, s.name)
	}
	sb.WriteByte('\n')
}

// bind returns the port bindings of the interface named iface to b.
func (b *bundle) bind(iface string) []string {
	out := make([]string, len(b.signals))
	for i, s := range b.signals {
		out[i] = "        ." + iface + "_" + s.name + "(" + b.prefix + "_" + s.name + ")"
	}
	return out
}
