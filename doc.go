/*
Package hwgen provides the design graph model used by visual hardware editors
and the tools to build one from Go code.

A schematic Design is a set of component instances (logic gates, flip flops,
arithmetic units, I/O terminals, microarchitecture blocks) whose ports are
linked by wires. A BlockDiagram is a set of IP blocks whose bus interfaces are
linked by connections. Both aggregates are plain data: the code generators in
the verilog sub-package lower them to Verilog and constraint text without
mutating them.

Wire resolution, the only semantic pass over the graph, binds every port to a
signal name: the label of the first wire touching that port or, when there is
none, a synthetic name derived from the port id. Resolution never fails; a
floating port is a normal state of a design being edited.

The API used to compose designs from Go mimics the one of a hardware
description language. Parts from the hwlib sub-package are bound to nets with
connection strings:

	d, err := hwgen.Schematic("half_adder", hwgen.In("a, b"), hwgen.Out("s, c"), hwgen.Parts{
		hwlib.Xor("a=a, b=b, out=s"),
		hwlib.And("a=a, b=b, out=c"),
	})

*/
package hwgen
