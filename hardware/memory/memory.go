// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"github.com/jetsetilly/gopher64/curated"
	"github.com/jetsetilly/gopher64/environment"
	"github.com/jetsetilly/gopher64/hardware/memory/memorymap"
)

// Chip is implemented by devices that appear in the I/O area of the address
// space. Addresses are relative to the origin of the area the chip is
// attached to (see the memorymap package).
type Chip interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Expansion is implemented by devices attached to the expansion port.
type Expansion interface {
	Chip

	// WriteFF00 is called whenever the CPU writes to address 0xff00. The
	// write to RAM has already happened. DMA writes to the address do not
	// call the function.
	WriteFF00()
}

// FloatingBus returns the value left on the data bus by the last device to
// drive it.
type FloatingBus interface {
	FloatingBus() uint8
}

// Sentinal error returned by LoadCharROM().
const (
	InvalidCharROM = "memory: character ROM must be %d bytes"
)

// CharROMSize is the size of the character ROM in bytes.
const CharROMSize = 0x1000

// Memory is the C64 memory system.
type Memory struct {
	env *environment.Environment

	RAM     DRAM
	Color   ColorRAM
	CharROM [CharROMSize]uint8

	// CIA2 port A and the data direction register for the port. Only the two
	// bits used for VIC-II bank selection are meaningful
	cia2PortA uint8
	cia2DDRA  uint8

	vicii     Chip
	floating  FloatingBus
	expansion Expansion
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment) *Memory {
	mem := &Memory{env: env}
	mem.Reset()
	return mem
}

// Reset memory to the power-on state. The character ROM is not changed.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
	for i := range mem.Color.data {
		mem.Color.data[i] = uint8(mem.env.Random.Intn(16))
	}
	mem.cia2PortA = 0x3f
	mem.cia2DDRA = 0x00
}

// LoadCharROM copies data into the character ROM.
func (mem *Memory) LoadCharROM(data []byte) error {
	if len(data) != CharROMSize {
		return curated.Errorf(InvalidCharROM, CharROMSize)
	}
	copy(mem.CharROM[:], data)
	return nil
}

// AttachVICII connects the VIC-II to the I/O area. If the chip implements the
// FloatingBus interface then it is also used for reads from unconnected
// areas.
func (mem *Memory) AttachVICII(vic Chip) {
	mem.vicii = vic
	if f, ok := vic.(FloatingBus); ok {
		mem.floating = f
	}
}

// AttachExpansion connects a device to the expansion port. A nil argument
// removes any existing device.
func (mem *Memory) AttachExpansion(exp Expansion) {
	mem.expansion = exp
}

// Bank returns the VIC-II bank number, as selected by CIA2.
func (mem *Memory) Bank() int {
	return int(^(mem.cia2PortA | ^mem.cia2DDRA) & 0x03)
}

func (mem *Memory) floatingBus() uint8 {
	if mem.floating == nil {
		return 0xff
	}
	return mem.floating.FloatingBus()
}

// VideoRead is an implementation of bus.VideoBus.
func (mem *Memory) VideoRead(address uint16) uint8 {
	address &= 0x3fff
	bank := mem.Bank()
	if bank&0x01 == 0x00 && address&0x3000 == 0x1000 {
		return mem.CharROM[address&0x0fff]
	}
	return mem.RAM.data[uint16(bank)<<14|address]
}

// ColorRead is an implementation of bus.VideoBus.
func (mem *Memory) ColorRead(address uint16) uint8 {
	return mem.Color.data[address&0x3ff]
}

// Read is an implementation of bus.CPUBus.
func (mem *Memory) Read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.data[ma]
	case memorymap.VICII:
		if mem.vicii != nil {
			return mem.vicii.Read(ma)
		}
	case memorymap.ColorRAM:
		// the upper nibble of colour RAM is not connected
		return mem.Color.data[ma] | (mem.floatingBus() & 0xf0)
	case memorymap.CIA2:
		switch ma {
		case 0x00:
			return mem.cia2PortA | ^mem.cia2DDRA
		case 0x02:
			return mem.cia2DDRA
		}
	case memorymap.IO1, memorymap.IO2:
		if mem.expansion != nil && area == memorymap.IO2 {
			return mem.expansion.Read(ma)
		}
	}

	return mem.floatingBus()
}

// Write is an implementation of bus.CPUBus.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.write(address, data, true)
}

func (mem *Memory) write(address uint16, data uint8, cpu bool) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM.data[ma] = data
		if cpu && address == memorymap.FF00 && mem.expansion != nil {
			mem.expansion.WriteFF00()
		}
	case memorymap.VICII:
		if mem.vicii != nil {
			mem.vicii.Write(ma, data)
		}
	case memorymap.ColorRAM:
		mem.Color.data[ma] = data & 0x0f
	case memorymap.CIA2:
		switch ma {
		case 0x00:
			mem.cia2PortA = data
		case 0x02:
			mem.cia2DDRA = data
		}
	case memorymap.IO2:
		if mem.expansion != nil {
			mem.expansion.Write(ma, data)
		}
	}
}

// DMARead is an implementation of bus.DMABus.
func (mem *Memory) DMARead(address uint16) uint8 {
	return mem.Read(address)
}

// DMAWrite is an implementation of bus.DMABus.
func (mem *Memory) DMAWrite(address uint16, data uint8) {
	mem.write(address, data, false)
}

// Peek is an implementation of bus.DebugBus.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.RAM.Peek(address)
}

// Poke is an implementation of bus.DebugBus.
func (mem *Memory) Poke(address uint16, value uint8) error {
	return mem.RAM.Poke(address, value)
}
