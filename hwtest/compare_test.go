// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest_test

import (
	"math/rand"
	"testing"

	hw "github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwtest"
)

func TestRandomDesign(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		d := hwtest.RandomDesign(r, 10, 15)
		if len(d.Components) != 10 {
			t.Fatalf("got %d components, expected 10", len(d.Components))
		}
		if len(d.Wires) != 15 {
			t.Fatalf("got %d wires, expected 15", len(d.Wires))
		}
		for _, c := range d.Components {
			if !c.Kind.Valid() {
				t.Errorf("component %s: invalid kind %v", c.ID, c.Kind)
			}
		}
	}
}

func TestRandomDiagram(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	d := hwtest.RandomDiagram(r, 6, 8)
	if len(d.Blocks) != 6 || len(d.Connections) != 8 {
		t.Fatalf("got %d blocks, %d connections", len(d.Blocks), len(d.Connections))
	}
	for _, c := range d.Connections {
		if !c.Type.Valid() {
			t.Errorf("connection %s: invalid protocol %q", c.ID, c.Type)
		}
	}
}

func TestDeterministic(t *testing.T) {
	hwtest.Deterministic(t, 5, func() string {
		return hw.SignalName("x.y", nil)
	})
}
