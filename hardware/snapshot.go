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
	"github.com/jetsetilly/gopher64/hardware/clocks"
	"github.com/jetsetilly/gopher64/hardware/memory"
	"github.com/jetsetilly/gopher64/hardware/memory/bus"
	"github.com/jetsetilly/gopher64/hardware/reu"
	"github.com/jetsetilly/gopher64/hardware/vicii"
)

// State stores the C64 sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function
//
// Note in particular that the CPU is not part of the snapshot process.
type State struct {
	Clock clocks.Clock
	Mem   *memory.Memory
	VIC   vicii.ChipState
	REU   *reu.REU
	BA    bus.BALow
}

// Snapshot the state of the C64 sub-systems.
func (c64 *C64) Snapshot() *State {
	s := &State{
		Clock: *c64.Clock,
		Mem:   c64.Mem.Snapshot(),
		VIC:   c64.VIC.State(),
		BA:    c64.BA,
	}
	if c64.REU != nil {
		s.REU = c64.REU.Snapshot()
	}
	return s
}

// Plumb a previously snapshotted system. The state must have been taken from
// a C64 with the same VIC-II configuration and REU size.
func (c64 *C64) Plumb(state *State) {
	if state == nil {
		panic("c64: cannot plumb in a nil state")
	}

	*c64.Clock = state.Clock
	c64.Mem.Plumb(state.Mem)
	c64.VIC.Plumb(state.VIC)
	if c64.REU != nil && state.REU != nil {
		c64.REU.Plumb(state.REU)
	}
	c64.BA = state.BA
}
