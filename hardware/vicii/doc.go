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

// Package vicii implements the timing engine of the PAL VIC-II video chip.
//
// The engine is advanced by one cycle every time Step() is called. The
// function performs the memory accesses of the cycle, maintains the raster
// position, the graphics and sprite counters, the border flip-flops and the
// interrupt latches, and returns the state of the BA (bus available) line.
// When BA is low the CPU must not use the bus in the cycle.
//
// The operation of each cycle is decided by a descriptor table built by the
// cycles package. Step() itself contains no cycle numbers.
//
// Pixel synthesis is not the job of this package. A Renderer can be attached
// which is given the state of the chip every cycle and at the end of every
// line. Collisions detected by the Renderer are reported back with
// ReportCollisions().
//
// Other devices capable of DMA, such as the REU, are registered with
// RegisterDMAPeer(). The registered peer is given an Arbiter which it uses to
// advance the clock and to wait for the VIC-II to release the bus.
//
// The VICII type is not safe for concurrent use. Step() should be called from
// the emulation goroutine only. Building with the assertions tag will panic
// if this rule is broken.
package vicii
