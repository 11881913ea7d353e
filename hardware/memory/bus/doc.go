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

// Package bus is used to define access patterns for different areas of the
// emulation to the C64 memory. For example, the VIC-II sees memory very
// differently to the CPU. It sees a 16K window of the address space with
// the character ROM mirrored into two of the four possible banks, and it has
// a private four bit bus to the colour RAM. By restricting access from the
// VIC-II to the VideoBus interface, we prevent the chip from accessing parts
// of the machine it has no connection to.
//
// The DebugBus is for the exclusive use of debuggers and for those parts of
// the emulation that model analogue side-effects (the VSP bug for example).
// Accesses through the DebugBus have no side-effects on chip state.
//
// The BALow type is the shared bus-available flag. The flag is owned by the
// VIC-II, which is the only writer. Other devices on the bus (the CPU, DMA
// peers) read it to decide whether they may use the bus.
package bus
