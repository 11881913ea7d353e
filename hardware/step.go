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

package hardware

import (
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
)

// Step the emulation by one cycle.
//
// The VIC-II is stepped first. The remainder of the cycle is given to the REU
// if a transfer is waiting for the bus, otherwise to the CPU.
//
// A waiting transfer does not start in a cycle where the VIC-II is holding BA
// low. The CPU sees BA low for those cycles, the same as it would without the
// REU.
//
// An REU transfer is performed in its entirety before Step() returns. The
// transfer advances the clock and the VIC-II itself, through the bus arbiter,
// and leaves the machine in a cycle that has been stepped by the VIC-II but
// not yet used. That cycle is given to the CPU.
func (c64 *C64) Step() {
	c64.Clock.Tick()
	ba := c64.VIC.Step()

	if c64.REU != nil && c64.REU.Pending() && !c64.BA.Held(bus.BALowVICII) {
		c64.REU.Transfer()
		ba = c64.BA.Held(bus.BALowVICII)
	}

	c64.CPU.Cycle(ba, c64.IRQ())
}

// StepLine steps the emulation until the start of the next raster line.
func (c64 *C64) StepLine() {
	line := c64.VIC.RasterLine
	for line == c64.VIC.RasterLine {
		c64.Step()
	}
}

// StepFrame steps the emulation until the start of the next frame.
func (c64 *C64) StepFrame() {
	frame := c64.VIC.Frame
	for frame == c64.VIC.Frame {
		c64.Step()
	}
}
