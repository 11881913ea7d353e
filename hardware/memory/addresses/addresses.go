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

package addresses

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQVector is the address where the interrupt address is stored.
const IRQVector = uint16(0xfffe)

// CanonicalVICIISymbols lists the canonical names of the VIC-II registers.
// The map is only used to create the more suitable VICII array.
var CanonicalVICIISymbols = map[ChipRegister]string{
	M0X:    "M0X",
	M0Y:    "M0Y",
	M1X:    "M1X",
	M1Y:    "M1Y",
	M2X:    "M2X",
	M2Y:    "M2Y",
	M3X:    "M3X",
	M3Y:    "M3Y",
	M4X:    "M4X",
	M4Y:    "M4Y",
	M5X:    "M5X",
	M5Y:    "M5Y",
	M6X:    "M6X",
	M6Y:    "M6Y",
	M7X:    "M7X",
	M7Y:    "M7Y",
	MSBX:   "MSBX",
	CR1:    "CR1",
	RASTER: "RASTER",
	LPX:    "LPX",
	LPY:    "LPY",
	MXE:    "MXE",
	CR2:    "CR2",
	MXYE:   "MXYE",
	VMCB:   "VMCB",
	IRQ:    "IRQ",
	IRQEN:  "IRQEN",
	MXDP:   "MXDP",
	MXMC:   "MXMC",
	MXXE:   "MXXE",
	MXM:    "MXM",
	MXD:    "MXD",
	EC:     "EC",
	B0C:    "B0C",
	B1C:    "B1C",
	B2C:    "B2C",
	B3C:    "B3C",
	MM0:    "MM0",
	MM1:    "MM1",
	M0C:    "M0C",
	M1C:    "M1C",
	M2C:    "M2C",
	M3C:    "M3C",
	M4C:    "M4C",
	M5C:    "M5C",
	M6C:    "M6C",
	M7C:    "M7C",
}

// CanonicalREUSymbols lists the canonical names of the REU registers.
var CanonicalREUSymbols = map[ChipRegister]string{
	STATUS:    "STATUS",
	COMMAND:   "COMMAND",
	C64ADDRLO: "C64ADDRLO",
	C64ADDRHI: "C64ADDRHI",
	REUADDRLO: "REUADDRLO",
	REUADDRHI: "REUADDRHI",
	REUBANK:   "REUBANK",
	LENLO:     "LENLO",
	LENHI:     "LENHI",
	IRQMASK:   "IRQMASK",
	ADDRCTRL:  "ADDRCTRL",
}

// VICII is a sparse array containing the canonical labels for the VIC-II
// registers, covering the entire mirror. Unconnected offsets are the empty
// string.
var VICII []string

// REU is a sparse array containing the canonical labels for the REU
// registers. Unconnected offsets are the empty string.
var REU []string

func init() {
	VICII = make([]string, VICIIMirror)
	for k, v := range CanonicalVICIISymbols {
		VICII[k] = v
	}

	REU = make([]string, 0x100)
	for k, v := range CanonicalREUSymbols {
		REU[k] = v
	}
}
