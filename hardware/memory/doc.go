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

// Package memory implements the C64 memory system. The memory is accessed
// through one of the buses defined in the bus package:
//
//	                              VIC-II
//	                                |
//	                            video bus
//	                                |
//	    CPU ---- cpu bus ---- MEMORY ---- dma bus ---- REU
//	                                |
//	                           debug bus
//	                                |
//	                            DEBUGGER
//
// The VIC-II sees a 16K bank of the address space. The bank is selected by
// the lowest two bits of CIA2 port A, which are inverted. In banks zero and
// two the character ROM is seen at offsets 0x1000 to 0x1fff in place of RAM.
//
// The CPU and DMA buses see the map described in the memorymap package.
// Reads from areas that have nothing attached return the value last seen on
// the data bus by the VIC-II.
//
// The debug bus accesses DRAM directly, regardless of what is mapped at the
// address for the CPU.
package memory
