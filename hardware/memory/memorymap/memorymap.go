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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case VICII:
		return "VIC-II"
	case SID:
		return "SID"
	case ColorRAM:
		return "Colour RAM"
	case CIA1:
		return "CIA1"
	case CIA2:
		return "CIA2"
	case IO1:
		return "I/O 1"
	case IO2:
		return "I/O 2"
	}

	return "undefined"
}

// The different memory areas in the C64
const (
	Undefined Area = iota
	RAM
	VICII
	SID
	ColorRAM
	CIA1
	CIA2
	IO1
	IO2
)

// The origin and memory top for each area of memory in the I/O region.
// Everything outside of the I/O region is RAM.
const (
	OriginIO       = uint16(0xd000)
	MemtopIO       = uint16(0xdfff)
	OriginVICII    = uint16(0xd000)
	MemtopVICII    = uint16(0xd3ff)
	OriginSID      = uint16(0xd400)
	MemtopSID      = uint16(0xd7ff)
	OriginColorRAM = uint16(0xd800)
	MemtopColorRAM = uint16(0xdbff)
	OriginCIA1     = uint16(0xdc00)
	MemtopCIA1     = uint16(0xdcff)
	OriginCIA2     = uint16(0xdd00)
	MemtopCIA2     = uint16(0xddff)
	OriginIO1      = uint16(0xde00)
	MemtopIO1      = uint16(0xdeff)
	OriginIO2      = uint16(0xdf00)
	MemtopIO2      = uint16(0xdfff)
)

// Memtop is the top most address of memory in the C64.
const Memtop = uint16(0xffff)

// Chips in the I/O region are mirrored throughout their area. The masks keep
// only the relevant bits of an address. Should only be applied to addresses
// that are definitely in the area of the chip.
const (
	MaskVICII    = uint16(0x003f)
	MaskSID      = uint16(0x001f)
	MaskColorRAM = uint16(0x03ff)
	MaskCIA      = uint16(0x000f)
	MaskIO       = uint16(0x00ff)
)

// FF00 is the address that triggers a DMA transfer on the REU when the
// transfer has been armed without the FF00 option being disabled.
const FF00 = uint16(0xff00)

// MapAddress translates the address argument from mirror space to primary
// space. The returned address is relative to the origin of the area, except
// for RAM where the address is unchanged.
func MapAddress(address uint16) (uint16, Area) {
	if address < OriginIO || address > MemtopIO {
		return address, RAM
	}

	switch {
	case address <= MemtopVICII:
		return address & MaskVICII, VICII
	case address <= MemtopSID:
		return address & MaskSID, SID
	case address <= MemtopColorRAM:
		return address & MaskColorRAM, ColorRAM
	case address <= MemtopCIA1:
		return address & MaskCIA, CIA1
	case address <= MemtopCIA2:
		return address & MaskCIA, CIA2
	case address <= MemtopIO1:
		return address & MaskIO, IO1
	}

	return address & MaskIO, IO2
}

// IsArea returns true if the address is in the specificied area
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
