// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwgen"
	"github.com/pkg/errors"
)

// parts in palette order.
var parts = []*hw.PartSpec{
	and, or, notGate, xor, nand, nor, xnor,
	dff, tff, jkff, latch,
	adder, subtractor, multiplier, comparator,
	mux2, mux4, mux8, demux,
	register, counter,
	Input, Output,
	cpuPC, cpuBranch, cpuRegFile, cpuALU, cpuPipeReg,
	cpuIMem, cpuDMem,
	cpuControl,
	cpuMul, cpuHazard, cpuPredictor, cpuBus, cpuPeripheral,
	custom,
}

var blocks = []*hw.BlockSpec{
	CortexM0, CortexM3, CortexA9, RISCV,
	DDRController, SRAMController, ROM, DMAEngine,
	GPIO, UART, SPI, I2C, Timer, InterruptCtrl,
	AXIInterconnect, AHBBus, APBBridge,
	ClockGen, ResetCtrl,
	CustomIP,
}

var (
	partIndex  = make(map[hw.ComponentKind]*hw.PartSpec, len(parts))
	blockIndex = make(map[hw.BlockKind]*hw.BlockSpec, len(blocks))
)

func init() {
	for _, p := range parts {
		partIndex[p.Kind] = p
	}
	for _, b := range blocks {
		blockIndex[b.Kind] = b
	}
}

// Lookup returns the catalog entry of the given component kind.
//
func Lookup(k hw.ComponentKind) (*hw.PartSpec, bool) {
	p, ok := partIndex[k]
	return p, ok
}

// LookupBlock returns the catalog entry of the given block kind.
//
func LookupBlock(k hw.BlockKind) (*hw.BlockSpec, bool) {
	b, ok := blockIndex[k]
	return b, ok
}

// Parts returns the component catalog in palette order.
//
func Parts() []*hw.PartSpec {
	return append([]*hw.PartSpec(nil), parts...)
}

// Blocks returns the IP block catalog in palette order.
//
func Blocks() []*hw.BlockSpec {
	return append([]*hw.BlockSpec(nil), blocks...)
}

// PartsByCategory returns the catalog entries of the given category.
//
func PartsByCategory(c hw.Category) []*hw.PartSpec {
	var out []*hw.PartSpec
	for _, p := range parts {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// BlocksByCategory returns the IP block catalog entries of the given category.
//
func BlocksByCategory(c hw.Category) []*hw.BlockSpec {
	var out []*hw.BlockSpec
	for _, b := range blocks {
		if b.Category == c {
			out = append(out, b)
		}
	}
	return out
}

// New returns a new part of the given kind, bound with w.
// It panics if k is not in the catalog or if w cannot be parsed.
//
func New(k hw.ComponentKind, w string) hw.Part {
	p, ok := Lookup(k)
	if !ok {
		panic("no catalog entry for component kind " + k.String())
	}
	return p.NewPart(w)
}

// ParseComponentProps converts the loosely typed property map of a component
// of kind k into typed properties. Keys not declared by the catalog entry are
// rejected.
//
func ParseComponentProps(k hw.ComponentKind, m map[string]interface{}) (hw.ComponentProps, error) {
	p, ok := Lookup(k)
	if !ok {
		return hw.ComponentProps{}, errors.Errorf("no catalog entry for component kind %s", k)
	}
	props, err := hw.ComponentPropsFrom(m, p.Props)
	return props, errors.Wrap(err, k.String())
}

// ParseBlockProps converts the loosely typed property map of a block of kind
// k into typed properties.
//
func ParseBlockProps(k hw.BlockKind, m map[string]interface{}) (hw.BlockProps, error) {
	b, ok := LookupBlock(k)
	if !ok {
		return hw.BlockProps{}, errors.Errorf("no catalog entry for block kind %s", k)
	}
	props, err := hw.BlockPropsFrom(m, b.Props)
	return props, errors.Wrap(err, k.String())
}
