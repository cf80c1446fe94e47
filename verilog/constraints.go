// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package verilog

import (
	"strings"
	"text/template"

	hw "github.com/db47h/hwgen"
)

var xdcTpl = template.Must(template.New("xdc").Parse(
	`# Constraints for {{.Name}}
{{with .Timestamp}}# Generated: {{.}}
{{end}}
# Clock constraint
create_clock -period {{.Period}} -name sys_clk [get_ports clk]

# Reset constraint
set_property IOSTANDARD {{.IOStandard}} [get_ports rst_n]
set_false_path -from [get_ports rst_n]

`))

// Constraints generates the XDC timing constraints of the wrapper generated
// from d: a clock on clk, and the IO standard and a false path on rst_n.
//
// The output depends only on the diagram name and opts, never on its blocks
// or connections.
//
func Constraints(d *hw.BlockDiagram, opts Options) string {
	var sb strings.Builder
	err := xdcTpl.Execute(&sb, struct {
		Name       string
		Timestamp  string
		Period     string
		IOStandard string
	}{
		d.Name,
		opts.timestamp(),
		opts.clockPeriod(),
		opts.resetIOStandard(),
	})
	if err != nil {
		panic(err)
	}
	return sb.String()
}
