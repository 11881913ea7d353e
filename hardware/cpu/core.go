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

package cpu

// Core is implemented by the CPU collaborator. The machine calls Cycle() once
// for every system clock cycle that has not been taken by a DMA device on the
// expansion port.
type Core interface {
	// Cycle advances the CPU by one cycle. The ba argument is true if the
	// VIC-II is holding BA low. A read cycle must not be performed if ba is
	// true. The irq argument is the level of the IRQ line, true if asserted.
	Cycle(ba bool, irq bool)

	// Reset the CPU to its power-on state.
	Reset()
}

// Clock is the source of the current system clock value.
type Clock interface {
	Now() uint64
}

// LightPen is implemented by the chip that latches the light pen position.
type LightPen interface {
	SetLightPenState(low bool)
}

// Idle is a Core that never accesses the bus.
type Idle struct {
	Cycles uint64
	Stalls uint64
}

// Cycle implements the Core interface.
func (c *Idle) Cycle(ba bool, _ bool) {
	c.Cycles++
	if ba {
		c.Stalls++
	}
}

// Reset implements the Core interface.
func (c *Idle) Reset() {
	c.Cycles = 0
	c.Stalls = 0
}
