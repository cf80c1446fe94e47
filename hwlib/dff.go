// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	hw "github.com/db47h/hwgen"
)

var (
	dff = &hw.PartSpec{
		Kind:     hw.DFF,
		Label:    "D Flip-Flop",
		Category: hw.CatSequential,
		Ports:    []hw.PortSpec{in(pD, 1), in(pClk, 1), in(pRst, 1), out(pQ, 1)},
	}
	tff = &hw.PartSpec{
		Kind:     hw.TFF,
		Label:    "T Flip-Flop",
		Category: hw.CatSequential,
		Ports:    []hw.PortSpec{in("t", 1), in(pClk, 1), in(pRst, 1), out(pQ, 1)},
	}
	jkff = &hw.PartSpec{
		Kind:     hw.JKFF,
		Label:    "JK Flip-Flop",
		Category: hw.CatSequential,
		Ports:    []hw.PortSpec{in("j", 1), in("k", 1), in(pClk, 1), in(pRst, 1), out(pQ, 1)},
	}
	latch = &hw.PartSpec{
		Kind:     hw.LATCH,
		Label:    "D Latch",
		Category: hw.CatSequential,
		Ports:    []hw.PortSpec{in(pD, 1), in(pEn, 1), out(pQ, 1)},
	}

	register = &hw.PartSpec{
		Kind:      hw.REGISTER,
		Label:     "Register",
		Category:  hw.CatRegister,
		Ports:     []hw.PortSpec{in(pD, 8), in(pClk, 1), in(pRst, 1), in(pEn, 1), out(pQ, 8)},
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
	counter = &hw.PartSpec{
		Kind:      hw.COUNTER,
		Label:     "Counter",
		Category:  hw.CatRegister,
		Ports:     []hw.PortSpec{in(pClk, 1), in(pRst, 1), in(pEn, 1), out(pQ, 8)},
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
)

// DFF returns a data flip flop with asynchronous active-high reset.
//
//	Inputs: d, clk, rst
//	Outputs: q
//	Function: q = rst ? 0 : d on the rising edge of clk
//
func DFF(w string) hw.Part { return dff.NewPart(w) }

// TFF returns a toggle flip flop.
//
//	Inputs: t, clk, rst
//	Outputs: q
//
func TFF(w string) hw.Part { return tff.NewPart(w) }

// JKFF returns a JK flip flop.
//
//	Inputs: j, k, clk, rst
//	Outputs: q
//
func JKFF(w string) hw.Part { return jkff.NewPart(w) }

// Latch returns a D latch.
//
//	Inputs: d, en
//	Outputs: q
//
func Latch(w string) hw.Part { return latch.NewPart(w) }

// Register returns an 8 bits register.
//
//	Inputs: d[8], clk, rst, en
//	Outputs: q[8]
//	Function: q = rst ? 0 : en ? d : q on the rising edge of clk
//
func Register(w string) hw.Part { return register.NewPart(w) }

// RegisterN returns a N bits register.
//
//	Inputs: d[bits], clk, rst, en
//	Outputs: q[bits]
//	Function: q = rst ? 0 : en ? d : q on the rising edge of clk
//
func RegisterN(bits int) hw.NewPartFn {
	return withWidth(register, bits)
}

// Counter returns an 8 bits counter.
//
//	Inputs: clk, rst, en
//	Outputs: q[8]
//
func Counter(w string) hw.Part { return counter.NewPart(w) }

// CounterN returns a N bits counter.
//
func CounterN(bits int) hw.NewPartFn {
	return withWidth(counter, bits)
}

// withWidth returns a NewPartFn for sp with its width property set.
func withWidth(sp *hw.PartSpec, bits int) hw.NewPartFn {
	if bits < 1 {
		panic("invalid bit width " + strconv.Itoa(bits) + " for " + sp.Kind.String())
	}
	return func(w string) hw.Part {
		return sp.NewPart(w).WithWidth(bits)
	}
}
