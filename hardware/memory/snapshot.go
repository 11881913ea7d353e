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

// Snapshot creates a copy of the memory. Attached chips are not copied.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Plumb the contents of a previously snapshotted memory into this memory.
// Attached chips are not changed.
func (mem *Memory) Plumb(state *Memory) {
	mem.RAM = state.RAM
	mem.Color = state.Color
	mem.CharROM = state.CharROM
	mem.cia2PortA = state.cia2PortA
	mem.cia2DDRA = state.cia2DDRA
}
