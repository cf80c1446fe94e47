// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/hwgen"

var (
	adder = &hw.PartSpec{
		Kind:      hw.ADDER,
		Label:     "Adder",
		Category:  hw.CatArithmetic,
		Ports:     []hw.PortSpec{in(pA, 8), in(pB, 8), out("sum", 8), out("carry", 1)},
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
	subtractor = &hw.PartSpec{
		Kind:      hw.SUBTRACTOR,
		Label:     "Subtractor",
		Category:  hw.CatArithmetic,
		Ports:     []hw.PortSpec{in(pA, 8), in(pB, 8), out("diff", 8), out("borrow", 1)},
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
	multiplier = &hw.PartSpec{
		Kind:     hw.MULTIPLIER,
		Label:    "Multiplier",
		Category: hw.CatArithmetic,
		Ports:    []hw.PortSpec{in(pA, 8), in(pB, 8), out("prod", 16)},
	}
	comparator = &hw.PartSpec{
		Kind:      hw.COMPARATOR,
		Label:     "Comparator",
		Category:  hw.CatArithmetic,
		Ports:     []hw.PortSpec{in(pA, 8), in(pB, 8), out("eq", 1), out("gt", 1), out("lt", 1)},
		DataWidth: 8,
		Props:     []hw.PropSpec{widthProp(8)},
	}
)

// Adder returns an 8 bits adder.
//
//	Inputs: a[8], b[8]
//	Outputs: sum[8], carry
//	Function: {carry, sum} = a + b
//
func Adder(w string) hw.Part { return adder.NewPart(w) }

// AdderN returns a N bits adder.
//
//	Inputs: a[bits], b[bits]
//	Outputs: sum[bits], carry
//	Function: {carry, sum} = a + b
//
func AdderN(bits int) hw.NewPartFn { return withWidth(adder, bits) }

// Subtractor returns an 8 bits subtractor.
//
//	Inputs: a[8], b[8]
//	Outputs: diff[8], borrow
//
func Subtractor(w string) hw.Part { return subtractor.NewPart(w) }

// Multiplier returns an 8x8 bits multiplier.
//
//	Inputs: a[8], b[8]
//	Outputs: prod[16]
//
func Multiplier(w string) hw.Part { return multiplier.NewPart(w) }

// Comparator returns an 8 bits comparator.
//
//	Inputs: a[8], b[8]
//	Outputs: eq, gt, lt
//
func Comparator(w string) hw.Part { return comparator.NewPart(w) }
