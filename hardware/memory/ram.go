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
	"fmt"
	"strings"
)

// DRAM is the 64K of dynamic RAM in the C64.
type DRAM struct {
	data [0x10000]uint8
}

// Reset DRAM to the power-on pattern. The pattern is alternate blocks of 64
// bytes of 0x00 and 0xff.
func (ram *DRAM) Reset() {
	for i := range ram.data {
		if i&0x40 == 0x40 {
			ram.data[i] = 0xff
		} else {
			ram.data[i] = 0x00
		}
	}
}

// Peek is an implementation of bus.DebugBus.
func (ram *DRAM) Peek(address uint16) (uint8, error) {
	return ram.data[address], nil
}

// Poke is an implementation of bus.DebugBus.
func (ram *DRAM) Poke(address uint16, value uint8) error {
	ram.data[address] = value
	return nil
}

// Dump returns a hex dump of the page containing the address.
func (ram *DRAM) Dump(page uint8) string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	origin := uint16(page) << 8
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%02X%X- | ", page, y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.data[origin+uint16((y*16)+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// ColorRAM is the 1K x 4bit static colour RAM.
type ColorRAM struct {
	data [0x400]uint8
}

// Peek is an implementation of bus.DebugBus. Only the low 10 bits of the
// address are significant.
func (ram *ColorRAM) Peek(address uint16) (uint8, error) {
	return ram.data[address&0x3ff], nil
}

// Poke is an implementation of bus.DebugBus. Only the low 10 bits of the
// address and the low nibble of the value are significant.
func (ram *ColorRAM) Poke(address uint16, value uint8) error {
	ram.data[address&0x3ff] = value & 0x0f
	return nil
}
