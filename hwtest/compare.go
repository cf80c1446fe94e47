// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing code generators.
//
package hwtest

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	hw "github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwlib"
)

// CompareText compares got against want line by line and reports the first
// differing line.
//
func CompareText(t testing.TB, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	gl, wl := strings.Split(got, "\n"), strings.Split(want, "\n")
	for i := 0; i < len(gl) || i < len(wl); i++ {
		var g, w string
		if i < len(gl) {
			g = gl[i]
		}
		if i < len(wl) {
			w = wl[i]
		}
		if g != w || i >= len(gl) || i >= len(wl) {
			t.Errorf("line %d: got %q, expected %q\n--- got:\n%s\n--- expected:\n%s", i+1, g, w, got, want)
			return
		}
	}
}

// Deterministic calls gen n times and checks that it always returns the same
// text.
//
func Deterministic(t testing.TB, n int, gen func() string) {
	t.Helper()
	first := gen()
	for i := 1; i < n; i++ {
		if s := gen(); s != first {
			t.Errorf("call %d returned different output", i+1)
			CompareText(t, s, first)
			return
		}
	}
}

var labels = []string{"", "", "x", "y", "data", "sel_n", "bus"}

// RandomDesign returns a design of ncomp random catalog components linked by
// nwire random wires. Some wires have unresolvable endpoints and some
// components have no ports.
//
func RandomDesign(r *rand.Rand, ncomp, nwire int) *hw.Design {
	d := hw.NewDesign("rnd_" + strconv.Itoa(r.Intn(1000)))
	ps := hwlib.Parts()
	var ports []string
	for i := 0; i < ncomp; i++ {
		sp := ps[r.Intn(len(ps))]
		var props hw.ComponentProps
		if sp.Kind.IsIO() {
			props.Name = "io" + strconv.Itoa(i)
		}
		if sp.DataWidth > 0 && r.Intn(2) == 0 {
			props.Width = 1 + r.Intn(32)
		}
		id := d.AddComponent(sp, "", props)
		c, _ := d.Component(id)
		if r.Intn(10) == 0 {
			c.Ports = nil
		}
		for _, p := range c.Ports {
			ports = append(ports, p.ID)
		}
	}
	endpoint := func() string {
		if len(ports) == 0 || r.Intn(8) == 0 {
			return "ghost." + strconv.Itoa(r.Intn(100))
		}
		return ports[r.Intn(len(ports))]
	}
	for i := 0; i < nwire; i++ {
		d.Wires = append(d.Wires, hw.Wire{
			ID:     "w" + strconv.Itoa(i),
			Source: endpoint(),
			Target: endpoint(),
			Label:  labels[r.Intn(len(labels))],
		})
	}
	return d
}

// RandomDiagram returns a block diagram of nblock random catalog blocks
// linked by nconn random connections of random protocols.
//
func RandomDiagram(r *rand.Rand, nblock, nconn int) *hw.BlockDiagram {
	d := hw.NewBlockDiagram("soc_" + strconv.Itoa(r.Intn(1000)))
	bs := hwlib.Blocks()
	var ifaces []string
	for i := 0; i < nblock; i++ {
		id := d.AddBlock(bs[r.Intn(len(bs))], "", hw.BlockProps{})
		b, _ := d.Block(id)
		for _, it := range b.Interfaces {
			ifaces = append(ifaces, it.ID)
		}
	}
	endpoint := func() string {
		if len(ifaces) == 0 || r.Intn(8) == 0 {
			return "ghost." + strconv.Itoa(r.Intn(100))
		}
		return ifaces[r.Intn(len(ifaces))]
	}
	for i := 0; i < nconn; i++ {
		d.Connections = append(d.Connections, hw.Connection{
			ID:     "c" + strconv.Itoa(i),
			Source: endpoint(),
			Target: endpoint(),
			Type:   hw.Protocols[r.Intn(len(hw.Protocols))],
		})
	}
	return d
}
