// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package verilog

import (
	"strings"
	"text/template"

	hw "github.com/db47h/hwgen"
)

var tbTpl = template.Must(template.New("testbench").Parse(banner +
	`// Testbench for {{.Name}}
` + banner + "\n`timescale 1ns/1ps\n" + `
module {{.Name}}_tb;

{{range .Inputs}}    reg {{with .Range}}{{.}} {{end}}{{.Name}};
{{end}}{{range .Outputs}}    wire {{with .Range}}{{.}} {{end}}{{.Name}};
{{end}}
    // Instantiate DUT
    {{.Name}} dut (
{{.Bindings}}
    );

    // Test stimulus
    initial begin
        $dumpfile("{{.Name}}_tb.vcd");
        $dumpvars(0, {{.Name}}_tb);

        // Initialize inputs
{{range .Inputs}}        {{.Name}} = 0;
{{end}}        #100;

        // Add your test cases here

        #1000 $finish;
    end

endmodule
`))

type tbSignal struct {
	Name  string
	Range string
}

type tbData struct {
	Name     string
	Inputs   []tbSignal
	Outputs  []tbSignal
	Bindings string
}

// Testbench generates a stimulus harness for the module generated from d,
// given its input and output ports.
//
// Every input is driven by a register and every output is observed through
// a wire of the same name. All inputs are zeroed, then the simulation runs
// for a fixed duration.
//
func Testbench(d *hw.Design, inputs, outputs []Port) string {
	data := tbData{Name: d.Name}
	var bs []string
	for _, p := range inputs {
		data.Inputs = append(data.Inputs, tbSignal{p.Name, rangeOf(p.Width)})
		bs = append(bs, "        ."+p.Name+"("+p.Name+")")
	}
	for _, p := range outputs {
		data.Outputs = append(data.Outputs, tbSignal{p.Name, rangeOf(p.Width)})
		bs = append(bs, "        ."+p.Name+"("+p.Name+")")
	}
	data.Bindings = strings.Join(bs, ",\n")

	var sb strings.Builder
	if err := tbTpl.Execute(&sb, &data); err != nil {
		// the template only reads string fields
		panic(err)
	}
	return sb.String()
}
