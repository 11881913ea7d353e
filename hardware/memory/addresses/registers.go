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

// ChipRegister specifies the offset of a chip register in the chip's address
// space.
type ChipRegister int

// VIC-II registers.
const (
	M0X ChipRegister = iota
	M0Y
	M1X
	M1Y
	M2X
	M2Y
	M3X
	M3Y
	M4X
	M4Y
	M5X
	M5Y
	M6X
	M6Y
	M7X
	M7Y
	MSBX
	CR1
	RASTER
	LPX
	LPY
	MXE
	CR2
	MXYE
	VMCB
	IRQ
	IRQEN
	MXDP
	MXMC
	MXXE
	MXM
	MXD
	EC
	B0C
	B1C
	B2C
	B3C
	MM0
	MM1
	M0C
	M1C
	M2C
	M3C
	M4C
	M5C
	M6C
	M7C

	// NumVICIIRegisters is the number of named registers in the VIC-II.
	// Offsets from here to the top of the mirror are unconnected.
	NumVICIIRegisters
)

// VICIIMirror is the size of the VIC-II address space before it is mirrored.
const VICIIMirror = 0x40

// REU registers.
const (
	STATUS ChipRegister = iota
	COMMAND
	C64ADDRLO
	C64ADDRHI
	REUADDRLO
	REUADDRHI
	REUBANK
	LENLO
	LENHI
	IRQMASK
	ADDRCTRL

	// NumREURegisters is the number of named registers in the REU. Offsets
	// from here to the top of the I/O area are unconnected.
	NumREURegisters
)
