// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwgen

import (
	"strconv"

	"github.com/pkg/errors"
)

// A ComponentKind identifies the type of a schematic component.
//
type ComponentKind int

// Schematic component kinds.
//
const (
	KindInvalid ComponentKind = iota

	// logic gates
	AND
	OR
	NOT
	XOR
	NAND
	NOR
	XNOR

	// sequential elements
	DFF
	TFF
	JKFF
	LATCH

	// arithmetic
	ADDER
	SUBTRACTOR
	MULTIPLIER
	COMPARATOR

	// multiplexers
	MUX2
	MUX4
	MUX8
	DEMUX

	// registers and counters
	REGISTER
	COUNTER

	// I/O terminals
	INPUT
	OUTPUT

	// CPU microarchitecture
	CPU_PC
	CPU_BRANCH_LOGIC
	CPU_INSTRUCTION_MEMORY
	CPU_REGISTER_FILE
	CPU_ALU
	CPU_CONTROL_UNIT
	CPU_DATA_MEMORY
	CPU_PIPELINE_REGISTER
	CPU_MULTIPLIER
	CPU_HAZARD_LOGIC
	CPU_PREDICTOR
	CPU_BUS
	CPU_PERIPHERAL

	CUSTOM

	kindCount
)

var kindNames = [...]string{
	KindInvalid:            "",
	AND:                    "AND",
	OR:                     "OR",
	NOT:                    "NOT",
	XOR:                    "XOR",
	NAND:                   "NAND",
	NOR:                    "NOR",
	XNOR:                   "XNOR",
	DFF:                    "DFF",
	TFF:                    "TFF",
	JKFF:                   "JKFF",
	LATCH:                  "LATCH",
	ADDER:                  "ADDER",
	SUBTRACTOR:             "SUBTRACTOR",
	MULTIPLIER:             "MULTIPLIER",
	COMPARATOR:             "COMPARATOR",
	MUX2:                   "MUX2",
	MUX4:                   "MUX4",
	MUX8:                   "MUX8",
	DEMUX:                  "DEMUX",
	REGISTER:               "REGISTER",
	COUNTER:                "COUNTER",
	INPUT:                  "INPUT",
	OUTPUT:                 "OUTPUT",
	CPU_PC:                 "CPU_PC",
	CPU_BRANCH_LOGIC:       "CPU_BRANCH_LOGIC",
	CPU_INSTRUCTION_MEMORY: "CPU_INSTRUCTION_MEMORY",
	CPU_REGISTER_FILE:      "CPU_REGISTER_FILE",
	CPU_ALU:                "CPU_ALU",
	CPU_CONTROL_UNIT:       "CPU_CONTROL_UNIT",
	CPU_DATA_MEMORY:        "CPU_DATA_MEMORY",
	CPU_PIPELINE_REGISTER:  "CPU_PIPELINE_REGISTER",
	CPU_MULTIPLIER:         "CPU_MULTIPLIER",
	CPU_HAZARD_LOGIC:       "CPU_HAZARD_LOGIC",
	CPU_PREDICTOR:          "CPU_PREDICTOR",
	CPU_BUS:                "CPU_BUS",
	CPU_PERIPHERAL:         "CPU_PERIPHERAL",
	CUSTOM:                 "CUSTOM",
}

// ComponentKinds returns all valid component kinds in declaration order.
//
func ComponentKinds() []ComponentKind {
	ks := make([]ComponentKind, 0, kindCount-1)
	for k := AND; k < kindCount; k++ {
		ks = append(ks, k)
	}
	return ks
}

func (k ComponentKind) String() string {
	if k < 0 || k >= kindCount {
		return "ComponentKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Valid returns true if k is one of the declared component kinds.
//
func (k ComponentKind) Valid() bool { return k > KindInvalid && k < kindCount }

// IsIO returns true for I/O terminals.
//
func (k ComponentKind) IsIO() bool { return k == INPUT || k == OUTPUT }

// ParseComponentKind returns the component kind with the given name.
//
func ParseComponentKind(s string) (ComponentKind, error) {
	for k := AND; k < kindCount; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindInvalid, errors.Errorf("unknown component kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
//
func (k ComponentKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Errorf("invalid component kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (k *ComponentKind) UnmarshalText(b []byte) (err error) {
	*k, err = ParseComponentKind(string(b))
	return err
}

// A BlockKind identifies the type of an IP block in a block diagram.
//
type BlockKind int

// IP block kinds.
//
const (
	BlockInvalid BlockKind = iota

	// processors
	ARM_CORTEX_M0
	ARM_CORTEX_M3
	ARM_CORTEX_A9
	RISCV

	// memory
	DDR_CONTROLLER
	SRAM_CONTROLLER
	ROM

	DMA_ENGINE

	// peripherals
	GPIO
	UART
	SPI
	I2C
	TIMER
	INTERRUPT_CTRL

	// interconnect
	AXI_INTERCONNECT
	AHB_BUS
	APB_BRIDGE

	// clock and reset
	CLOCK_GEN
	RESET_CTRL

	CUSTOM_IP

	blockCount
)

var blockNames = [...]string{
	BlockInvalid:     "",
	ARM_CORTEX_M0:    "ARM_CORTEX_M0",
	ARM_CORTEX_M3:    "ARM_CORTEX_M3",
	ARM_CORTEX_A9:    "ARM_CORTEX_A9",
	RISCV:            "RISCV",
	DDR_CONTROLLER:   "DDR_CONTROLLER",
	SRAM_CONTROLLER:  "SRAM_CONTROLLER",
	ROM:              "ROM",
	DMA_ENGINE:       "DMA_ENGINE",
	GPIO:             "GPIO",
	UART:             "UART",
	SPI:              "SPI",
	I2C:              "I2C",
	TIMER:            "TIMER",
	INTERRUPT_CTRL:   "INTERRUPT_CTRL",
	AXI_INTERCONNECT: "AXI_INTERCONNECT",
	AHB_BUS:          "AHB_BUS",
	APB_BRIDGE:       "APB_BRIDGE",
	CLOCK_GEN:        "CLOCK_GEN",
	RESET_CTRL:       "RESET_CTRL",
	CUSTOM_IP:        "CUSTOM_IP",
}

// BlockKinds returns all valid block kinds in declaration order.
//
func BlockKinds() []BlockKind {
	ks := make([]BlockKind, 0, blockCount-1)
	for k := ARM_CORTEX_M0; k < blockCount; k++ {
		ks = append(ks, k)
	}
	return ks
}

func (k BlockKind) String() string {
	if k < 0 || k >= blockCount {
		return "BlockKind(" + strconv.Itoa(int(k)) + ")"
	}
	return blockNames[k]
}

// Valid returns true if k is one of the declared block kinds.
//
func (k BlockKind) Valid() bool { return k > BlockInvalid && k < blockCount }

// ParseBlockKind returns the block kind with the given name.
//
func ParseBlockKind(s string) (BlockKind, error) {
	for k := ARM_CORTEX_M0; k < blockCount; k++ {
		if blockNames[k] == s {
			return k, nil
		}
	}
	return BlockInvalid, errors.Errorf("unknown block kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
//
func (k BlockKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Errorf("invalid block kind %d", int(k))
	}
	return []byte(blockNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (k *BlockKind) UnmarshalText(b []byte) (err error) {
	*k, err = ParseBlockKind(string(b))
	return err
}

// A Protocol is the bus protocol of an interface or connection.
//
type Protocol string

// Bus protocols.
//
const (
	AXI4      Protocol = "AXI4"
	AXI4Lite  Protocol = "AXI4_LITE"
	AXIStream Protocol = "AXI_STREAM"
	AHB       Protocol = "AHB"
	APB       Protocol = "APB"
	Wishbone  Protocol = "WISHBONE"
	CustomBus Protocol = "CUSTOM"
)

// Protocols lists all known bus protocols.
//
var Protocols = []Protocol{AXI4, AXI4Lite, AXIStream, AHB, APB, Wishbone, CustomBus}

// Valid returns true if p is a known protocol.
//
func (p Protocol) Valid() bool {
	for _, v := range Protocols {
		if p == v {
			return true
		}
	}
	return false
}

// ParseProtocol returns the protocol with the given name.
//
func ParseProtocol(s string) (Protocol, error) {
	if p := Protocol(s); p.Valid() {
		return p, nil
	}
	return "", errors.Errorf("unknown bus protocol %q", s)
}

// Direction is the direction of a port, seen from the component that owns it.
//
type Direction int

// Port directions.
//
const (
	DirInput Direction = iota
	DirOutput
)

func (d Direction) String() string {
	if d == DirOutput {
		return "output"
	}
	return "input"
}

// ParseDirection parses "input" or "output".
//
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "input":
		return DirInput, nil
	case "output":
		return DirOutput, nil
	}
	return DirInput, errors.Errorf("invalid port direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
//
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
//
func (d *Direction) UnmarshalText(b []byte) (err error) {
	*d, err = ParseDirection(string(b))
	return err
}

// Role is the role of a bus interface.
//
type Role string

// Interface roles.
//
const (
	Master Role = "master"
	Slave  Role = "slave"
)

// ParseRole parses "master" or "slave".
//
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Master, Slave:
		return Role(s), nil
	}
	return "", errors.Errorf("invalid interface role %q", s)
}
