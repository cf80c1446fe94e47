// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/hwgen"

// Microarchitecture components. They have no code generation rule and are
// emitted as placeholders.
//
var (
	cpuPC = &hw.PartSpec{
		Kind:     hw.CPU_PC,
		Label:    "Program Counter",
		Category: hw.CatCPUCore,
		Ports:    []hw.PortSpec{in(pClk, 1), in(pRst, 1), in("next_pc", 32), out("pc", 32)},
	}
	cpuBranch = &hw.PartSpec{
		Kind:     hw.CPU_BRANCH_LOGIC,
		Label:    "Branch Logic",
		Category: hw.CatCPUCore,
		Ports:    []hw.PortSpec{in("pc", 32), in("offset", 32), in("condition", 1), out("next_pc", 32)},
	}
	cpuRegFile = &hw.PartSpec{
		Kind:     hw.CPU_REGISTER_FILE,
		Label:    "Register File",
		Category: hw.CatCPUCore,
		Ports: []hw.PortSpec{
			in(pClk, 1), in(pWe, 1),
			in("rs1", 5), in("rs2", 5), in("rd", 5),
			in(pWData, 32),
			out("rdata1", 32), out("rdata2", 32),
		},
	}
	cpuALU = &hw.PartSpec{
		Kind:     hw.CPU_ALU,
		Label:    "ALU",
		Category: hw.CatCPUCore,
		Ports:    []hw.PortSpec{in(pA, 32), in(pB, 32), in("op", 4), out("result", 32), out("zero", 1)},
	}
	cpuPipeReg = &hw.PartSpec{
		Kind:      hw.CPU_PIPELINE_REGISTER,
		Label:     "Pipeline Reg",
		Category:  hw.CatCPUCore,
		Ports:     []hw.PortSpec{in(pClk, 1), in(pRst, 1), in(pIn, 32), out(pOut, 32)},
		DataWidth: 32,
		Props:     []hw.PropSpec{widthProp(32)},
	}
	cpuIMem = &hw.PartSpec{
		Kind:     hw.CPU_INSTRUCTION_MEMORY,
		Label:    "Instr Memory",
		Category: hw.CatCPUMemory,
		Ports:    []hw.PortSpec{in(pAddr, 32), out("instr", 32)},
	}
	cpuDMem = &hw.PartSpec{
		Kind:     hw.CPU_DATA_MEMORY,
		Label:    "Data Memory",
		Category: hw.CatCPUMemory,
		Ports:    []hw.PortSpec{in(pClk, 1), in(pWe, 1), in(pAddr, 32), in(pWData, 32), out(pRData, 32)},
	}
	cpuControl = &hw.PartSpec{
		Kind:     hw.CPU_CONTROL_UNIT,
		Label:    "Control Unit",
		Category: hw.CatCPUControl,
		Ports: []hw.PortSpec{
			in("opcode", 7), in("funct3", 3), in("funct7", 7),
			out("alu_op", 4), out("reg_we", 1), out("mem_we", 1), out("branch", 1),
		},
	}
	cpuMul = &hw.PartSpec{
		Kind:     hw.CPU_MULTIPLIER,
		Label:    "Multiplier",
		Category: hw.CatCPUOptional,
		Ports:    []hw.PortSpec{in(pA, 32), in(pB, 32), out("prod", 64)},
	}
	cpuHazard = &hw.PartSpec{
		Kind:     hw.CPU_HAZARD_LOGIC,
		Label:    "Hazard Unit",
		Category: hw.CatCPUOptional,
		Ports:    []hw.PortSpec{in("rs1", 5), in("rs2", 5), out("stall", 1), out("flush", 1)},
	}
	cpuPredictor = &hw.PartSpec{
		Kind:     hw.CPU_PREDICTOR,
		Label:    "Branch Predictor",
		Category: hw.CatCPUOptional,
		Ports:    []hw.PortSpec{in("pc", 32), out("taken", 1)},
	}
	cpuBus = &hw.PartSpec{
		Kind:     hw.CPU_BUS,
		Label:    "Bus Interconnect",
		Category: hw.CatCPUOptional,
		Ports:    []hw.PortSpec{in(pAddr, 32), in("data", 32)},
	}
	cpuPeripheral = &hw.PartSpec{
		Kind:     hw.CPU_PERIPHERAL,
		Label:    "Peripheral",
		Category: hw.CatCPUOptional,
		Ports:    []hw.PortSpec{in(pClk, 1), in(pAddr, 32), in(pWData, 32), out(pRData, 32)},
	}
)

// ALU returns a 32 bits ALU.
//
//	Inputs: a[32], b[32], op[4]
//	Outputs: result[32], zero
//
func ALU(w string) hw.Part { return cpuALU.NewPart(w) }

// ProgramCounter returns a 32 bits program counter.
//
//	Inputs: clk, rst, next_pc[32]
//	Outputs: pc[32]
//
func ProgramCounter(w string) hw.Part { return cpuPC.NewPart(w) }

// RegisterFile returns a 32x32 bits register file with two read ports.
//
//	Inputs: clk, we, rs1[5], rs2[5], rd[5], wdata[32]
//	Outputs: rdata1[32], rdata2[32]
//
func RegisterFile(w string) hw.Part { return cpuRegFile.NewPart(w) }
