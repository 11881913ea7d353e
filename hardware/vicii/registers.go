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

package vicii

import (
	"github.com/jetsetilly/gopher64/hardware/memory/addresses"
	"github.com/jetsetilly/gopher64/hardware/vicii/cycles"
)

// bits in control register 1
const (
	cr1YScroll = uint8(0x07)
	cr1RSEL    = uint8(0x08)
	cr1DEN     = uint8(0x10)
	cr1BMM     = uint8(0x20)
	cr1ECM     = uint8(0x40)
	cr1RST8    = uint8(0x80)
)

// bits in control register 2
const (
	cr2CSEL = uint8(0x08)
	cr2MCM  = uint8(0x10)
)

// peek returns the value of the register as seen by the CPU, without any
// side-effects. The address should already be masked to the size of the
// mirror.
func (vic *VICII) peek(reg addresses.ChipRegister) uint8 {
	if reg >= addresses.NumVICIIRegisters {
		return 0xff
	}

	var v uint8

	switch reg {
	case addresses.CR1:
		v = vic.Registers[reg] &^ cr1RST8
		if vic.RasterLine&0x100 == 0x100 {
			v |= cr1RST8
		}
	case addresses.RASTER:
		v = uint8(vic.RasterLine)
	case addresses.LPX:
		v = vic.LightPen.X
	case addresses.LPY:
		v = vic.LightPen.Y
	case addresses.IRQ:
		v = vic.IRQStatus & 0x0f
		if vic.IRQ() {
			v |= irqAny
		}
	case addresses.IRQEN:
		v = vic.IRQMask
	case addresses.MXM:
		v = vic.SpriteSpriteCollisions
	case addresses.MXD:
		v = vic.SpriteBackgroundCollisions
	default:
		v = vic.Registers[reg]
	}

	return v | ^addresses.DataMasks[reg]
}

// Peek returns the value of a register without side-effects.
func (vic *VICII) Peek(address uint16) uint8 {
	return vic.peek(addresses.ChipRegister(address % addresses.VICIIMirror))
}

// Read is an implementation of memory.Chip. Reading one of the collision
// registers clears it.
func (vic *VICII) Read(address uint16) uint8 {
	reg := addresses.ChipRegister(address % addresses.VICIIMirror)
	v := vic.peek(reg)

	switch reg {
	case addresses.MXM:
		vic.SpriteSpriteCollisions = 0
	case addresses.MXD:
		vic.SpriteBackgroundCollisions = 0
	}

	vic.LastBusPhi2 = v

	return v
}

// Write is an implementation of memory.Chip.
func (vic *VICII) Write(address uint16, data uint8) {
	reg := addresses.ChipRegister(address % addresses.VICIIMirror)

	vic.LastBusPhi2 = data

	if reg >= addresses.NumVICIIRegisters {
		return
	}

	switch reg {
	case addresses.CR1:
		vic.Registers[reg] = data
		vic.YSmooth = data & cr1YScroll
		vic.setRasterIRQLine(vic.RasterIRQLine&0xff | int(data&cr1RST8)<<1)
	case addresses.RASTER:
		vic.Registers[reg] = data
		vic.setRasterIRQLine(vic.RasterIRQLine&0x100 | int(data))
	case addresses.LPX, addresses.LPY:
		// read only
	case addresses.MXYE:
		vic.writeMXYE(data, vic.desc.Is(cycles.SpriteCrunch))
	case addresses.IRQ:
		// writing a one to a bit acknowledges the interrupt
		vic.IRQStatus &^= data & 0x0f
	case addresses.IRQEN:
		vic.IRQMask = data & 0x0f
	case addresses.MXM, addresses.MXD:
		// read only
	default:
		vic.Registers[reg] = data
	}
}

// FloatingBus is an implementation of memory.FloatingBus. Returns the value
// last read by the VIC-II in phi1.
func (vic *VICII) FloatingBus() uint8 {
	return vic.LastReadPhi1
}
