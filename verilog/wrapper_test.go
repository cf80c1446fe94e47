// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package verilog_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	hw "github.com/db47h/hwgen"
	"github.com/db47h/hwgen/hwlib"
	"github.com/db47h/hwgen/hwtest"
	"github.com/db47h/hwgen/verilog"
)

var axiChannels = []string{
	"awaddr", "awvalid", "awready",
	"wdata", "wstrb", "wvalid", "wready",
	"bresp", "bvalid", "bready",
	"araddr", "arvalid", "arready",
	"rdata", "rresp", "rvalid", "rready",
}

func cpuMemDiagram(t *testing.T) *hw.BlockDiagram {
	d := hw.NewBlockDiagram("soc")
	cpu := d.AddBlock(hwlib.CortexA9, "CPU", hw.BlockProps{})
	mem := d.AddBlock(hwlib.DDRController, "DDR Memory", hw.BlockProps{SizeMB: 512})
	if _, err := d.Connect(cpu+".axi_master", mem+".axi_slave"); err != nil {
		t.Fatal(err)
	}
	return d
}

func instantiation(out, inst string) string {
	i := strings.Index(out, inst+" (")
	if i < 0 {
		return ""
	}
	j := strings.Index(out[i:], ");")
	return out[i : i+j]
}

func TestWrapper_axi(t *testing.T) {
	d := cpuMemDiagram(t)
	out, ws := verilog.Wrapper(d, noComments())
	if len(ws) != 0 {
		t.Errorf("unexpected warnings: %v", ws)
	}
	if !strings.HasPrefix(out, "module soc_top (\n    input  wire clk,\n    input  wire rst_n\n);\n\n") {
		t.Errorf("bad module declaration:\n%s", out)
	}
	for _, s := range []string{"    wire sys_clk = clk;\n", "    wire sys_rst = ~rst_n;\n"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q", s)
		}
	}
	for _, ch := range axiChannels {
		if n := strings.Count(out, " axi_0_"+ch+";\n"); n != 1 {
			t.Errorf("axi_0_%s declared %d times", ch, n)
		}
	}
	for _, decl := range []string{
		"    wire [31:0] axi_0_awaddr;\n",
		"    wire [63:0] axi_0_wdata;\n",
		"    wire [7:0]  axi_0_wstrb;\n",
		"    wire [1:0]  axi_0_bresp;\n",
		"    wire        axi_0_rready;\n",
	} {
		if !strings.Contains(out, decl) {
			t.Errorf("missing %q in\n%s", decl, out)
		}
	}

	cpu := instantiation(out, "arm_cortex_a9 cpu_inst")
	mem := instantiation(out, "ddr_controller ddr_memory_inst")
	if cpu == "" || mem == "" {
		t.Fatalf("missing instantiation in\n%s", out)
	}
	for _, ch := range axiChannels {
		if !strings.Contains(cpu, ".axi_master_"+ch+"(axi_0_"+ch+")") {
			t.Errorf("cpu: %s not bound", ch)
		}
		if !strings.Contains(mem, ".axi_slave_"+ch+"(axi_0_"+ch+")") {
			t.Errorf("mem: %s not bound", ch)
		}
	}
	if strings.Contains(cpu, ".axi_slave_") {
		t.Errorf("unconnected interface bound:\n%s", cpu)
	}
	if !strings.HasSuffix(out, "\nendmodule\n") {
		t.Errorf("incomplete wrapper:\n%s", out)
	}
	if strings.Contains(out, "//") {
		t.Errorf("comments emitted with comments disabled:\n%s", out)
	}
}

func TestWrapper_apb(t *testing.T) {
	d := hw.NewBlockDiagram("periph")
	br := d.AddBlock(hwlib.APBBridge, "Bridge", hw.BlockProps{})
	uart := d.AddBlock(hwlib.UART, "UART0", hw.BlockProps{BaudRate: 9600})
	if _, err := d.Connect(br+".apb_master", uart+".apb_slave"); err != nil {
		t.Fatal(err)
	}
	out, _ := verilog.Wrapper(d, noComments())
	for _, s := range []string{
		"    wire [31:0] apb_0_paddr;\n",
		"    wire        apb_0_psel;\n",
		"    wire [31:0] apb_0_prdata;\n",
		"        .apb_master_penable(apb_0_penable),\n",
		"        .apb_slave_pready(apb_0_pready)\n",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in\n%s", s, out)
		}
	}
	if strings.Contains(out, "axi_0") {
		t.Errorf("AXI bundle emitted for APB connection:\n%s", out)
	}
}

func TestWrapper_noBundle(t *testing.T) {
	d := &hw.BlockDiagram{
		Name: "wb",
		Blocks: []hw.Block{
			{ID: "m", Kind: hw.CUSTOM_IP, Name: "Wb Master", Props: hw.BlockProps{Name: "wb_master"},
				Interfaces: []hw.Interface{{ID: "m.bus", Name: "bus", Type: hw.Wishbone, Role: hw.Master, DataWidth: 32}}},
			{ID: "s", Kind: hw.GPIO, Name: "Gpio",
				Interfaces: []hw.Interface{{ID: "s.bus", Name: "bus", Type: hw.Wishbone, Role: hw.Slave, DataWidth: 32}}},
		},
		Connections: []hw.Connection{{ID: "c0", Source: "m.bus", Target: "s.bus", Type: hw.Wishbone}},
	}
	out, ws := verilog.Wrapper(d, noComments())
	hwtest.CompareText(t, out, `module wb_top (
    input  wire clk,
    input  wire rst_n
);

    wire sys_clk = clk;
    wire sys_rst = ~rst_n;


    wb_master wb_master_inst (
        .clk(sys_clk),
        .rst(sys_rst)
    );

    gpio gpio_inst (
        .clk(sys_clk),
        .rst(sys_rst)
    );


endmodule
`)
	if len(ws) != 1 || !strings.Contains(ws[0], "WISHBONE") {
		t.Errorf("got warnings %v, expected one naming WISHBONE", ws)
	}
}

func TestWrapper_dangling(t *testing.T) {
	d := cpuMemDiagram(t)
	d.Connections = append(d.Connections, hw.Connection{ID: "x", Source: "nowhere", Target: d.Blocks[0].Interfaces[1].ID, Type: hw.AXI4})
	out, ws := verilog.Wrapper(d, noComments())
	if strings.Contains(out, "axi_1_") {
		t.Errorf("bundle emitted for dangling connection:\n%s", out)
	}
	if len(ws) != 1 || !strings.Contains(ws[0], "dangling") {
		t.Errorf("got warnings %v", ws)
	}
	if cpu := instantiation(out, "arm_cortex_a9 cpu_inst"); strings.Contains(cpu, ".axi_slave_") {
		t.Errorf("interface bound to dangling connection:\n%s", cpu)
	}
}

func TestWrapper_comments(t *testing.T) {
	d := cpuMemDiagram(t)
	d.AddressMap = []hw.AddressMapEntry{{BlockID: d.Blocks[1].ID, InterfaceID: d.Blocks[1].Interfaces[0].ID, BaseAddress: "0x80000000", Size: "0x20000000"}}
	opts := verilog.DefaultOptions()
	opts.Timestamp = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out, _ := verilog.Wrapper(d, opts)
	for _, s := range []string{
		"// Top-Level Module: soc\n",
		"// Date: 2024-03-01T00:00:00.000Z\n",
		"    // Clock and Reset\n",
		"    // Interconnect Signals\n",
		"    // CPU -> DDR Memory\n",
		"    // AXI Interface 0\n",
		"    //   DDR Memory.axi_slave: 0x80000000 (size 0x20000000)\n",
		"    // IP Block Instantiations\n",
		"    // CPU\n    arm_cortex_a9 cpu_inst (\n",
		"        .rst(sys_rst),\n        // axi_master\n",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in\n%s", s, out)
		}
	}
}

func TestWrapper_totality(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		d := hwtest.RandomDiagram(r, r.Intn(8), r.Intn(10))
		hwtest.Deterministic(t, 2, func() string {
			out, ws := verilog.Wrapper(d, verilog.DefaultOptions())
			return out + strings.Join(ws, "\n")
		})
		out, _ := verilog.Wrapper(d, verilog.DefaultOptions())
		if !strings.HasSuffix(out, "\nendmodule\n") {
			t.Fatalf("incomplete wrapper:\n%s", out)
		}
	}
}

func TestConstraints(t *testing.T) {
	d1 := cpuMemDiagram(t)
	d2 := hw.NewBlockDiagram("soc")
	d2.AddBlock(hwlib.ClockGen, "", hw.BlockProps{FrequencyMHz: 200})

	opts := verilog.DefaultOptions()
	x1, x2 := verilog.Constraints(d1, opts), verilog.Constraints(d2, opts)
	if x1 != x2 {
		t.Errorf("constraints depend on diagram contents:\n%s\n---\n%s", x1, x2)
	}
	hwtest.CompareText(t, x1, `# Constraints for soc

# Clock constraint
create_clock -period 10.000 -name sys_clk [get_ports clk]

# Reset constraint
set_property IOSTANDARD LVCMOS33 [get_ports rst_n]
set_false_path -from [get_ports rst_n]

`)

	opts.Timestamp = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	opts.ClockPeriod = 8
	opts.ResetIOStandard = "LVCMOS18"
	x := verilog.Constraints(d1, opts)
	for _, s := range []string{
		"# Constraints for soc\n# Generated: 2024-03-01T00:00:00.000Z\n\n",
		"create_clock -period 8.000 -name sys_clk [get_ports clk]\n",
		"set_property IOSTANDARD LVCMOS18 [get_ports rst_n]\n",
	} {
		if !strings.Contains(x, s) {
			t.Errorf("missing %q in\n%s", s, x)
		}
	}
	if verilog.Constraints(d1, verilog.Options{}) != x1 {
		t.Error("zero options do not select the defaults")
	}
}
