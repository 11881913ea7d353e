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

package reu

// the REC chip addresses 512K. larger units latch the upper bits of the bank
// register
const (
	recWrap     = uint32(0x80000)
	recMask     = uint32(0x07ffff)
	latchedMask = uint32(0xf80000)
)

// ram is the memory of the REU and the address wrapping rules for the size
// of the unit.
type ram struct {
	data []uint8

	// address where the REC wraps around
	wrap uint32

	// address where the DRAM address space wraps around
	dramWrap uint32

	// mask applied to the REU address when it is written back to the
	// registers
	storeMask uint32

	// bits of the bank register that are unused and read as one
	bankUnused uint8

	// preset bits of the status register
	statusPreset uint8

	// the last value read from a valid address. returned by reads from
	// addresses not backed by DRAM
	floating uint8
}

func newRAM(sizeKB int) ram {
	size := uint32(sizeKB) << 10
	r := ram{
		data:         make([]uint8, size),
		wrap:         recWrap,
		dramWrap:     recWrap,
		storeMask:    recWrap - 1,
		bankUnused:   0xf8,
		statusPreset: status256K,
		floating:     0xff,
	}

	switch {
	case sizeKB == 128:
		// the 1700 uses 64K chips and wraps at 128K
		r.statusPreset = 0
		r.wrap = 0x20000
		r.dramWrap = 0x20000
	case sizeKB > 512:
		r.bankUnused = 0
		r.dramWrap = size
		r.storeMask = size - 1
	}

	r.powerOn()

	return r
}

// powerOn fills the RAM with the pattern observed on a real 1764. Bytes
// alternate in pairs between $ff and $00, inverted every 256 bytes, with
// additional inverted blocks in every 256K.
func (r *ram) powerOn() {
	for i := range r.data {
		v := uint8(0xff)
		if (i+1)&0x02 == 0x02 {
			v ^= 0xff
		}
		if i&0x100 == 0x100 {
			v ^= 0xff
		}
		r.data[i] = v
	}

	invert := func(addr uint32, n uint32) {
		for a := addr; a < addr+n && a < uint32(len(r.data)); a++ {
			r.data[a] ^= 0xff
		}
	}

	for b := uint32(0); b < uint32(len(r.data))>>16; b += 4 {
		for i := range uint32(2) {
			invert(0x002a00+((i+b)<<16), 0x2a00)
			invert(0x008000+((i+b)<<16), 0x2c00)
			invert(0x00d600+((i+b)<<16), 0x2a00)
		}
		for i := range uint32(2) {
			invert(0x020000+((i+b)<<16), 0x2a00)
			invert(0x025400+((i+b)<<16), 0x2c00)
			invert(0x02ac00+((i+b)<<16), 0x2a00)
		}
	}
}

// increment the REU address. only the bits addressed by the REC are changed.
func (r *ram) increment(addr uint32, step uint32) uint32 {
	next := addr&recMask + step
	if next == r.wrap {
		next = 0
	}
	return addr&latchedMask | next
}

// writes to addresses not backed by DRAM are lost.
func (r *ram) write(addr uint32, data uint8) {
	addr &= r.dramWrap - 1
	if addr < uint32(len(r.data)) {
		r.data[addr] = data
	}
}

func (r *ram) read(addr uint32) uint8 {
	addr &= r.dramWrap - 1
	if addr < uint32(len(r.data)) {
		return r.data[addr]
	}
	return r.floating
}
