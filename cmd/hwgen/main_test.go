// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const andGate = `{
  "id": "and_gate", "name": "and_gate",
  "components": [
    {"id": "a", "type": "INPUT", "label": "a", "position": {"x": 0, "y": 0},
     "ports": [{"id": "a.port", "name": "port", "type": "output", "width": 1}]},
    {"id": "g", "type": "AND", "label": "g", "position": {"x": 0, "y": 0},
     "ports": [{"id": "g.a", "name": "a", "type": "input", "width": 1}]}
  ],
  "wires": [{"id": "w0", "source": "a.port", "target": "g.a", "label": "a"}]
}`

const soc = `name: soc
blocks:
  - id: cpu
    type: RISCV
    name: Core
    interfaces:
      - {id: cpu.m, name: axi_master, type: AXI4, role: master, dataWidth: 32}
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	design := filepath.Join(dir, "and.json")
	diagram := filepath.Join(dir, "soc.yml")
	if err := os.WriteFile(design, []byte(andGate), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(diagram, []byte(soc), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{"module", "-comments=false", design}, nil, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "module and_gate (\n") {
		t.Errorf("unexpected module:\n%s", out.String())
	}

	v := filepath.Join(dir, "and.v")
	if err := run([]string{"module", "-tb", "-o", v, design}, nil, &out); err != nil {
		t.Fatal(err)
	}
	tb, err := os.ReadFile(filepath.Join(dir, "and_tb.v"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(tb), "module and_gate_tb;") {
		t.Errorf("unexpected testbench:\n%s", tb)
	}

	out.Reset()
	if err := run([]string{"xdc", diagram}, nil, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "# Constraints for soc\n") {
		t.Errorf("unexpected constraints:\n%s", out.String())
	}

	out.Reset()
	if err := run([]string{"wrapper", "-format", "yaml", "-"}, strings.NewReader(soc), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "riscv core_inst (") {
		t.Errorf("unexpected wrapper:\n%s", out.String())
	}
}

func TestRun_errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name": "x", "wires": [{"id": "w", "source": "p", "target": "q"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	for _, args := range [][]string{
		nil,
		{"synth", bad},
		{"module"},
		{"module", "-nope", bad},
		{"module", filepath.Join(dir, "missing.json")},
		{"module", "-strict", bad},
		{"wrapper", bad},
		{"module", "-format", "ini", bad},
	} {
		var out bytes.Buffer
		if err := run(args, nil, &out); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestTestbenchFile(t *testing.T) {
	for in, exp := range map[string]string{
		"top.v":       "top_tb.v",
		"dir/top.sv":  "dir/top_tb.sv",
		"noextension": "noextension_tb",
	} {
		if got := testbenchFile(in); got != exp {
			t.Errorf("%s: got %s, expected %s", in, got, exp)
		}
	}
}
