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

package bus

// VideoBus defines the operations for the memory system when accessed from
// the VIC-II.
type VideoBus interface {
	// VideoRead reads from the VIC-II address space. Only the low 14 bits of
	// the address are significant. The memory implementation adds the bank
	// bits and decides whether the access hits RAM or the character ROM.
	VideoRead(address uint16) uint8

	// ColorRead reads from the colour RAM. Only the low 10 bits of the address
	// are significant and only the low nibble of the result.
	ColorRead(address uint16) uint8
}

// DMABus defines the operations for the memory system when accessed by a DMA
// device on the expansion port. The address space is the same as seen by the
// CPU, including I/O.
type DMABus interface {
	DMARead(address uint16) uint8
	DMAWrite(address uint16, data uint8)
}

// CPUBus defines the operations for the memory system when accessed from the
// CPU.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebugBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine. Access through the DebugBus goes directly to the
// underlying DRAM, ignoring I/O and ROM.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// BALow is the shared bus-available flag. Each bit of the flag represents a
// different holder of the bus.
type BALow uint8

// List of bus holders.
const (
	BALowVICII BALow = 0x01
	BALowDMA   BALow = 0x02
)

// Held returns true if any of the bits in the mask are set.
func (b BALow) Held(mask BALow) bool {
	return b&mask != 0
}

// Update the flag for the bits in the mask.
func (b *BALow) Update(mask BALow, low bool) {
	if low {
		*b |= mask
	} else {
		*b &^= mask
	}
}
