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

// Package addresses contains all information about C64 chip addresses and
// registers, as used by the emulation.
//
// The canonical symbol maps, CanonicalVICIISymbols and CanonicalREUSymbols,
// name every register of the two chips. The names are those used in the
// data sheets for the chips.
//
// In addition to the canonical symbol maps, there are two sparse arrays,
// VICII and REU, created from the canonical maps at run time. These arrays
// are used by the emulator for speed purposes.
//
// DataMasks are the bits that are driven by the VIC-II when a register is
// read. Unused bits in a VIC-II register always read as one. For example,
// the border colour register is four bits wide and so reading it will always
// return a value with the upper nibble set:
//
//	poke 53280,0
//	print peek(53280)
//	 240
//
// Registers outside the range of named registers (0x2f to 0x3f) read as
// 0xff.
package addresses
