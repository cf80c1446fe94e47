// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	hw "github.com/db47h/hwgen"
)

// muxPorts returns the ports of a n-way multiplexer of the given data width.
func muxPorts(n, selBits, width int) []hw.PortSpec {
	ps := make([]hw.PortSpec, 0, n+2)
	for i := 0; i < n; i++ {
		ps = append(ps, in(pIn+strconv.Itoa(i), width))
	}
	return append(ps, in(pSel, selBits), out(pOut, width))
}

var (
	mux2 = &hw.PartSpec{
		Kind:      hw.MUX2,
		Label:     "2:1 Multiplexer",
		Category:  hw.CatMux,
		Ports:     muxPorts(2, 1, 8),
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
	mux4 = &hw.PartSpec{
		Kind:      hw.MUX4,
		Label:     "4:1 Multiplexer",
		Category:  hw.CatMux,
		Ports:     muxPorts(4, 2, 8),
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
	mux8 = &hw.PartSpec{
		Kind:      hw.MUX8,
		Label:     "8:1 Multiplexer",
		Category:  hw.CatMux,
		Ports:     muxPorts(8, 3, 8),
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
	demux = &hw.PartSpec{
		Kind:      hw.DEMUX,
		Label:     "1:2 Demultiplexer",
		Category:  hw.CatMux,
		Ports:     []hw.PortSpec{in(pIn, 8), in(pSel, 1), out("out0", 8), out("out1", 8)},
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
)

// Mux2 returns an 8 bits 2:1 multiplexer.
//
//	Inputs: in0[8], in1[8], sel
//	Outputs: out[8]
//	Function: out = sel ? in1 : in0
//
func Mux2(w string) hw.Part { return mux2.NewPart(w) }

// Mux2N returns a N bits 2:1 multiplexer.
//
//	Inputs: in0[bits], in1[bits], sel
//	Outputs: out[bits]
//	Function: out = sel ? in1 : in0
//
func Mux2N(bits int) hw.NewPartFn { return withWidth(mux2, bits) }

// Mux4 returns an 8 bits 4:1 multiplexer.
//
//	Inputs: in0[8], in1[8], in2[8], in3[8], sel[2]
//	Outputs: out[8]
//
func Mux4(w string) hw.Part { return mux4.NewPart(w) }

// Mux8 returns an 8 bits 8:1 multiplexer.
//
//	Inputs: in0[8]...in7[8], sel[3]
//	Outputs: out[8]
//
func Mux8(w string) hw.Part { return mux8.NewPart(w) }

// Demux returns an 8 bits 1:2 demultiplexer.
//
//	Inputs: in[8], sel
//	Outputs: out0[8], out1[8]
//
func Demux(w string) hw.Part { return demux.NewPart(w) }
