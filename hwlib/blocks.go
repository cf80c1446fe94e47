// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import hw "github.com/db47h/hwgen"

func iface(name string, p hw.Protocol, r hw.Role, data, addr int) hw.InterfaceSpec {
	return hw.InterfaceSpec{Name: name, Type: p, Role: r, DataWidth: data, AddressWidth: addr}
}

func numProp(name string, def int, label string) hw.PropSpec {
	return hw.PropSpec{Name: name, Type: hw.PropNumber, Default: def, Label: label}
}

func apbPeripheral(kind hw.BlockKind, label string, props ...hw.PropSpec) *hw.BlockSpec {
	return &hw.BlockSpec{
		Kind:       kind,
		Label:      label,
		Category:   hw.CatPeripheral,
		Interfaces: []hw.InterfaceSpec{iface("apb_slave", hw.APB, hw.Slave, 32, 0)},
		Props:      props,
	}
}

// IP block catalog entries.
//
var (
	CortexM0 = &hw.BlockSpec{
		Kind:     hw.ARM_CORTEX_M0,
		Label:    "ARM Cortex-M0",
		Category: hw.CatProcessor,
		Interfaces: []hw.InterfaceSpec{
			iface("axi_master", hw.AXI4Lite, hw.Master, 32, 32),
			iface("debug", hw.CustomBus, hw.Slave, 32, 0),
		},
	}
	CortexM3 = &hw.BlockSpec{
		Kind:     hw.ARM_CORTEX_M3,
		Label:    "ARM Cortex-M3",
		Category: hw.CatProcessor,
		Interfaces: []hw.InterfaceSpec{
			iface("axi_master", hw.AXI4Lite, hw.Master, 32, 32),
			iface("debug", hw.CustomBus, hw.Slave, 32, 0),
		},
	}
	CortexA9 = &hw.BlockSpec{
		Kind:     hw.ARM_CORTEX_A9,
		Label:    "ARM Cortex-A9",
		Category: hw.CatProcessor,
		Interfaces: []hw.InterfaceSpec{
			iface("axi_master", hw.AXI4, hw.Master, 64, 32),
			iface("axi_slave", hw.AXI4, hw.Slave, 64, 32),
		},
	}
	RISCV = &hw.BlockSpec{
		Kind:       hw.RISCV,
		Label:      "RISC-V Core",
		Category:   hw.CatProcessor,
		Interfaces: []hw.InterfaceSpec{iface("axi_master", hw.AXI4, hw.Master, 32, 32)},
	}

	DDRController = &hw.BlockSpec{
		Kind:       hw.DDR_CONTROLLER,
		Label:      "DDR Memory Controller",
		Category:   hw.CatMemory,
		Interfaces: []hw.InterfaceSpec{iface("axi_slave", hw.AXI4, hw.Slave, 64, 32)},
		Props:      []hw.PropSpec{numProp(hw.PropSizeMB, 512, "Memory Size (MB)")},
	}
	SRAMController = &hw.BlockSpec{
		Kind:       hw.SRAM_CONTROLLER,
		Label:      "SRAM Controller",
		Category:   hw.CatMemory,
		Interfaces: []hw.InterfaceSpec{iface("axi_slave", hw.AXI4Lite, hw.Slave, 32, 16)},
		Props:      []hw.PropSpec{numProp(hw.PropSizeKB, 64, "Memory Size (KB)")},
	}
	ROM = &hw.BlockSpec{
		Kind:       hw.ROM,
		Label:      "Boot ROM",
		Category:   hw.CatMemory,
		Interfaces: []hw.InterfaceSpec{iface("axi_slave", hw.AXI4Lite, hw.Slave, 32, 16)},
		Props:      []hw.PropSpec{numProp(hw.PropSizeKB, 16, "Memory Size (KB)")},
	}
	DMAEngine = &hw.BlockSpec{
		Kind:     hw.DMA_ENGINE,
		Label:    "DMA Engine",
		Category: hw.CatMemory,
		Interfaces: []hw.InterfaceSpec{
			iface("axi_master", hw.AXI4, hw.Master, 32, 32),
			iface("apb_slave", hw.APB, hw.Slave, 32, 0),
		},
	}

	GPIO          = apbPeripheral(hw.GPIO, "GPIO Controller", numProp(hw.PropNumPins, 32, "Number of Pins"))
	UART          = apbPeripheral(hw.UART, "UART Controller", numProp(hw.PropBaudRate, 115200, "Baud Rate"))
	SPI           = apbPeripheral(hw.SPI, "SPI Controller")
	I2C           = apbPeripheral(hw.I2C, "I2C Controller")
	Timer         = apbPeripheral(hw.TIMER, "Timer")
	InterruptCtrl = apbPeripheral(hw.INTERRUPT_CTRL, "Interrupt Controller")

	AXIInterconnect = &hw.BlockSpec{
		Kind:     hw.AXI_INTERCONNECT,
		Label:    "AXI Interconnect",
		Category: hw.CatInterconnect,
		Interfaces: []hw.InterfaceSpec{
			iface("axi_slave_0", hw.AXI4, hw.Slave, 64, 32),
			iface("axi_master_0", hw.AXI4, hw.Master, 64, 32),
			iface("axi_master_1", hw.AXI4, hw.Master, 64, 32),
		},
		Props: []hw.PropSpec{
			numProp(hw.PropNumMasters, 2, "Number of Masters"),
			numProp(hw.PropNumSlaves, 1, "Number of Slaves"),
		},
	}
	AHBBus = &hw.BlockSpec{
		Kind:     hw.AHB_BUS,
		Label:    "AHB Bus",
		Category: hw.CatInterconnect,
		Interfaces: []hw.InterfaceSpec{
			iface("ahb_slave", hw.AHB, hw.Slave, 32, 32),
			iface("ahb_master", hw.AHB, hw.Master, 32, 32),
		},
	}
	APBBridge = &hw.BlockSpec{
		Kind:     hw.APB_BRIDGE,
		Label:    "APB Bridge",
		Category: hw.CatInterconnect,
		Interfaces: []hw.InterfaceSpec{
			iface("axi_slave", hw.AXI4Lite, hw.Slave, 32, 0),
			iface("apb_master", hw.APB, hw.Master, 32, 0),
		},
	}

	ClockGen = &hw.BlockSpec{
		Kind:     hw.CLOCK_GEN,
		Label:    "Clock Generator",
		Category: hw.CatClock,
		Props:    []hw.PropSpec{numProp(hw.PropFrequencyMHz, 100, "Frequency (MHz)")},
	}
	ResetCtrl = &hw.BlockSpec{
		Kind:     hw.RESET_CTRL,
		Label:    "Reset Controller",
		Category: hw.CatClock,
	}

	CustomIP = &hw.BlockSpec{
		Kind:       hw.CUSTOM_IP,
		Label:      "Custom IP Block",
		Category:   hw.CatCustom,
		Interfaces: []hw.InterfaceSpec{iface("axi_slave", hw.AXI4Lite, hw.Slave, 32, 0)},
		Props: []hw.PropSpec{
			{Name: hw.PropName, Type: hw.PropString, Default: "my_custom_ip", Label: "IP Name"},
		},
	}
)
