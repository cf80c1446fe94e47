// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the catalogs of schematic parts and IP blocks for
// hwgen.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	hw "github.com/db47h/hwgen"
)

// common pin names
const (
	pA     = "a"
	pB     = "b"
	pIn    = "in"
	pSel   = "sel"
	pOut   = "out"
	pClk   = "clk"
	pRst   = "rst"
	pEn    = "en"
	pD     = "d"
	pQ     = "q"
	pAddr  = "addr"
	pWData = "wdata"
	pRData = "rdata"
	pWe    = "we"
)

func in(name string, width int) hw.PortSpec {
	return hw.PortSpec{Name: name, Dir: hw.DirInput, Width: width}
}

func out(name string, width int) hw.PortSpec {
	return hw.PortSpec{Name: name, Dir: hw.DirOutput, Width: width}
}

func widthProp(def int) hw.PropSpec {
	return hw.PropSpec{Name: hw.PropWidth, Type: hw.PropNumber, Default: def, Label: "Bit Width"}
}

func newGate(kind hw.ComponentKind, label string) *hw.PartSpec {
	return &hw.PartSpec{
		Kind:     kind,
		Label:    label,
		Category: hw.CatLogic,
		Ports:    []hw.PortSpec{in(pA, 1), in(pB, 1), out(pOut, 1)},
	}
}

var (
	notGate = &hw.PartSpec{
		Kind:     hw.NOT,
		Label:    "NOT Gate",
		Category: hw.CatLogic,
		Ports:    []hw.PortSpec{in(pIn, 1), out(pOut, 1)},
	}

	and  = newGate(hw.AND, "AND Gate")
	or   = newGate(hw.OR, "OR Gate")
	xor  = newGate(hw.XOR, "XOR Gate")
	nand = newGate(hw.NAND, "NAND Gate")
	nor  = newGate(hw.NOR, "NOR Gate")
	xnor = newGate(hw.XNOR, "XNOR Gate")
)

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = ~in
//
func Not(w string) hw.Part { return notGate.NewPart(w) }

// And returns a AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a & b
//
func And(w string) hw.Part { return and.NewPart(w) }

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ~(a & b)
//
func Nand(w string) hw.Part { return nand.NewPart(w) }

// Or returns a OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a | b
//
func Or(w string) hw.Part { return or.NewPart(w) }

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ~(a | b)
//
func Nor(w string) hw.Part { return nor.NewPart(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a ^ b
//
func Xor(w string) hw.Part { return xor.NewPart(w) }

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ~(a ^ b)
//
func Xnor(w string) hw.Part { return xnor.NewPart(w) }
