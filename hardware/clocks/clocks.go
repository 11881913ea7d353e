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

// Package clocks defines the speed of the main clock for the supported video
// standards and the shared cycle counter that every chip in the machine is
// synchronised to.
package clocks

// Clock rates in MHz. Derived from the colour carrier frequency of the
// respective video standard.
const (
	PAL  = 0.985248
	NTSC = 1.022727
)

// Clock is the shared system clock. It is advanced by the CPU collaborator
// once per cycle, and by a DMA peer while it holds the bus.
//
// The Clock is not safe for concurrent use. It is advanced from the
// emulation goroutine only.
type Clock struct {
	cycles uint64
}

// Tick advances the clock by one cycle.
func (c *Clock) Tick() {
	c.cycles++
}

// Now returns the number of cycles since the last reset.
func (c *Clock) Now() uint64 {
	return c.cycles
}

// Reset the clock to zero.
func (c *Clock) Reset() {
	c.cycles = 0
}
