// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package verilog lowers hwgen designs and block diagrams to Verilog and XDC
// constraint text.
//
// All generators are pure functions of their input: they never mutate it,
// never fail, and produce byte-identical output for identical input. Non
// fatal conditions, such as components without a code generation rule, are
// reported as warnings.
//
package verilog

import (
	"strconv"
	"time"
)

// Defaults for the block diagram generators.
//
const (
	DefaultClockPeriod     = 10.0
	DefaultResetIOStandard = "LVCMOS33"
)

// Options control code generation.
//
type Options struct {
	// IncludeComments enables section banners and per instance comments.
	IncludeComments bool
	// IncludeTestbench makes Module also generate a testbench.
	IncludeTestbench bool
	// Timestamp, if not zero, is written in header comments.
	Timestamp time.Time
	// ClockPeriod of sys_clk in ns. Zero means DefaultClockPeriod.
	ClockPeriod float64
	// ResetIOStandard is the IO standard of the reset port. Empty means
	// DefaultResetIOStandard.
	ResetIOStandard string
}

// DefaultOptions returns the default generator options: comments on,
// testbench off, no timestamp.
//
func DefaultOptions() Options {
	return Options{
		IncludeComments: true,
		ClockPeriod:     DefaultClockPeriod,
		ResetIOStandard: DefaultResetIOStandard,
	}
}

func (o *Options) clockPeriod() string {
	p := o.ClockPeriod
	if p <= 0 {
		p = DefaultClockPeriod
	}
	return strconv.FormatFloat(p, 'f', 3, 64)
}

func (o *Options) resetIOStandard() string {
	if o.ResetIOStandard == "" {
		return DefaultResetIOStandard
	}
	return o.ResetIOStandard
}

// timestamp returns the header timestamp or an empty string.
func (o *Options) timestamp() string {
	if o.Timestamp.IsZero() {
		return ""
	}
	return o.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// Warnings is a list of non-fatal generation problems.
//
type Warnings []string

func (w *Warnings) add(msg string) {
	*w = append(*w, msg)
}

const banner = "//============================================================================\n"

// rangeOf returns the bit range declaration of a signal of width w: "" for
// single bits, "[w-1:0]" otherwise.
func rangeOf(w int) string {
	if w <= 1 {
		return ""
	}
	return "[" + strconv.Itoa(w-1) + ":0]"
}
